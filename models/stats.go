package models

// FleetStats is the headline summary of the waste dashboard.
type FleetStats struct {
	TotalPickups      int `json:"totalPickups"`
	ActiveTrucks      int `json:"activeTrucks"`
	IdleTrucks        int `json:"idleTrucks"`
	MaintenanceTrucks int `json:"maintenanceTrucks"`
	CriticalBins      int `json:"criticalBins"`
	PendingRequests   int `json:"pendingRequests"`
}

// PortalStats is the headline summary of the property portal. The My* fields
// are only filled for tenant viewers.
type PortalStats struct {
	TotalProperties    int     `json:"totalProperties"`
	OccupiedProperties int     `json:"occupiedProperties"`
	OpenRequests       int     `json:"openRequests"`
	TotalRevenue       float64 `json:"totalRevenue"`
	MyOpenRequests     int     `json:"myOpenRequests,omitempty"`
	MyPendingPayments  int     `json:"myPendingPayments,omitempty"`
}
