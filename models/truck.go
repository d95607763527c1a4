package models

// TruckStatus represents the operating state of a collection truck.
type TruckStatus string

const (
	TruckStatusIdle        TruckStatus = "IDLE"
	TruckStatusEnRoute     TruckStatus = "EN_ROUTE"
	TruckStatusOffline     TruckStatus = "OFFLINE"
	TruckStatusMaintenance TruckStatus = "MAINTENANCE"
)

// Truck is a collection vehicle shown on the fleet map.
type Truck struct {
	ID          string      `db:"id" json:"id" yaml:"id"`
	PlateNumber string      `db:"plate_number" json:"plateNumber" yaml:"plateNumber"`
	DriverName  string      `db:"driver_name" json:"driverName" yaml:"driverName"`
	Status      TruckStatus `db:"status" json:"status" yaml:"status"`
	X           float64     `db:"x" json:"x" yaml:"x"`
	Y           float64     `db:"y" json:"y" yaml:"y"`
	Heading     float64     `db:"heading" json:"heading" yaml:"heading"`        // degrees, 0-360
	FuelLevel   float64     `db:"fuel_level" json:"fuelLevel" yaml:"fuelLevel"` // percent, 0-100
	Capacity    float64     `db:"capacity" json:"capacity" yaml:"capacity"`     // percent full, 0-100
}
