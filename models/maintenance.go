package models

// MaintenanceStatus represents the progress of a maintenance request.
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "PENDING"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusResolved   MaintenanceStatus = "RESOLVED"
)

// MaintenancePriority labels urgency. Values outside the constants below are
// stored as given; the AI triage and clients may write anything.
type MaintenancePriority string

const (
	MaintenancePriorityLow       MaintenancePriority = "LOW"
	MaintenancePriorityMedium    MaintenancePriority = "MEDIUM"
	MaintenancePriorityHigh      MaintenancePriority = "HIGH"
	MaintenancePriorityEmergency MaintenancePriority = "EMERGENCY"
)

// MaintenanceRequest is a tenant-reported issue at a property.
type MaintenanceRequest struct {
	ID          string              `db:"id" json:"id"`
	TenantID    string              `db:"tenant_id" json:"tenantId"`
	PropertyID  string              `db:"property_id" json:"propertyId"`
	Title       string              `db:"title" json:"title"`
	Description string              `db:"description" json:"description"`
	Status      MaintenanceStatus   `db:"status" json:"status"`
	Priority    MaintenancePriority `db:"priority" json:"priority"`
	CreatedAt   string              `db:"created_at" json:"createdAt"`
	ResolvedAt  *string             `db:"resolved_at" json:"resolvedAt,omitempty"`
	AIAnalysis  *string             `db:"ai_analysis" json:"aiAnalysis,omitempty"`
}
