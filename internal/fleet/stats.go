package fleet

import "cityOps/models"

// CriticalFillThreshold is the fill percentage above which a bin needs service.
const CriticalFillThreshold = 80.0

// ComputeStats reduces the current records to the dashboard headline numbers.
func ComputeStats(pickups []models.PickupRequest, trucks []models.Truck, bins []models.Bin) models.FleetStats {
	st := models.FleetStats{TotalPickups: len(pickups)}
	for _, p := range pickups {
		if p.Status == models.PickupStatusRequested {
			st.PendingRequests++
		}
	}
	for _, t := range trucks {
		switch t.Status {
		case models.TruckStatusEnRoute:
			st.ActiveTrucks++
		case models.TruckStatusIdle:
			st.IdleTrucks++
		case models.TruckStatusMaintenance:
			st.MaintenanceTrucks++
		}
	}
	for _, b := range bins {
		if b.FillLevel > CriticalFillThreshold {
			st.CriticalBins++
		}
	}
	return st
}
