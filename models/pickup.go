package models

// PickupType is the kind of waste a citizen asks to have collected.
type PickupType string

const (
	PickupTypeRegular   PickupType = "REGULAR"
	PickupTypeBulky     PickupType = "BULKY"
	PickupTypeHazardous PickupType = "HAZARDOUS"
)

// PickupStatus represents the progress of a pickup request.
type PickupStatus string

const (
	PickupStatusRequested  PickupStatus = "REQUESTED"
	PickupStatusScheduled  PickupStatus = "SCHEDULED"
	PickupStatusInProgress PickupStatus = "IN_PROGRESS"
	PickupStatusCompleted  PickupStatus = "COMPLETED"
	PickupStatusCancelled  PickupStatus = "CANCELLED"
)

// IsPending reports whether the pickup still needs a truck.
func (s PickupStatus) IsPending() bool {
	switch s {
	case PickupStatusRequested, PickupStatusScheduled, PickupStatusInProgress:
		return true
	}
	return false
}

// PickupRequest is a citizen's request for a collection at an address.
// X and Y are map coordinates on the 1000x600 dashboard grid.
type PickupRequest struct {
	ID          string       `db:"id" json:"id"`
	CitizenName string       `db:"citizen_name" json:"citizenName"`
	Address     string       `db:"address" json:"address"`
	Type        PickupType   `db:"type" json:"type"`
	Status      PickupStatus `db:"status" json:"status"`
	RequestedAt string       `db:"requested_at" json:"requestedAt"`
	// ScheduledFor and CompletedAt are nullable; pointers distinguish null from "".
	ScheduledFor *string `db:"scheduled_for" json:"scheduledFor,omitempty"`
	CompletedAt  *string `db:"completed_at" json:"completedAt,omitempty"`
	X            float64 `db:"x" json:"x"`
	Y            float64 `db:"y" json:"y"`
}
