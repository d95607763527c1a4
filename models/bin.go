package models

// BinCategory is the waste stream a smart bin accepts.
type BinCategory string

const (
	BinCategoryGeneral   BinCategory = "GENERAL"
	BinCategoryRecycling BinCategory = "RECYCLING"
	BinCategoryCompost   BinCategory = "COMPOST"
)

// Bin is a sensor-equipped public waste bin.
type Bin struct {
	ID           string      `db:"id" json:"id"`
	LocationName string      `db:"location_name" json:"locationName"`
	X            float64     `db:"x" json:"x"`
	Y            float64     `db:"y" json:"y"`
	FillLevel    float64     `db:"fill_level" json:"fillLevel"`
	BatteryLevel float64     `db:"battery_level" json:"batteryLevel"`
	LastServiced string      `db:"last_serviced" json:"lastServiced"` // YYYY-MM-DD
	Category     BinCategory `db:"category" json:"type"`
}
