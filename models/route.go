package models

// RouteStatus represents the progress of a collection route.
type RouteStatus string

const (
	RouteStatusPending   RouteStatus = "PENDING"
	RouteStatusActive    RouteStatus = "ACTIVE"
	RouteStatusCompleted RouteStatus = "COMPLETED"
)

// Route links a truck to a named run of stops. Nothing ties its stop count
// to the truck's simulated position.
type Route struct {
	ID          string      `db:"id" json:"id" yaml:"id"`
	TruckID     string      `db:"truck_id" json:"truckId" yaml:"truckId"`
	Name        string      `db:"name" json:"name" yaml:"name"`
	Stops       int         `db:"stops" json:"stops" yaml:"stops"`
	Progress    float64     `db:"progress" json:"progress" yaml:"progress"`
	Status      RouteStatus `db:"status" json:"status" yaml:"status"`
	CompletedAt *string     `db:"completed_at" json:"completedAt,omitempty" yaml:"completedAt"`
}
