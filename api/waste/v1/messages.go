// Package wastev1 defines the waste.v1.WasteService gRPC contract. Messages
// are plain structs carried by the JSON codec registered in codec.go.
package wastev1

import "cityOps/models"

type ListPickupsRequest struct {
	// Filter is ALL, PENDING or COMPLETED. Empty means ALL.
	Filter string `json:"filter,omitempty"`
}

type ListPickupsResponse struct {
	Pickups []models.PickupRequest `json:"pickups"`
}

type CreatePickupRequest struct {
	CitizenName  string  `json:"citizenName" validate:"required"`
	Address      string  `json:"address" validate:"required"`
	Type         string  `json:"type" validate:"omitempty,oneof=REGULAR BULKY HAZARDOUS"`
	ScheduledFor *string `json:"scheduledFor,omitempty"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

type CreatePickupResponse struct {
	Pickup *models.PickupRequest `json:"pickup"`
}

type UpdatePickupStatusRequest struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type UpdatePickupStatusResponse struct {
	Pickup *models.PickupRequest `json:"pickup"`
}

type ListTrucksRequest struct{}

type ListTrucksResponse struct {
	Trucks []models.Truck `json:"trucks"`
}

type UpdateTruckStatusRequest struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type UpdateTruckStatusResponse struct {
	Truck *models.Truck `json:"truck"`
}

type ListBinsRequest struct{}

type ListBinsResponse struct {
	Bins []models.Bin `json:"bins"`
}

type ListRoutesRequest struct{}

type ListRoutesResponse struct {
	Routes []models.Route `json:"routes"`
}

type UpdateRouteStatusRequest struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type UpdateRouteStatusResponse struct {
	Route *models.Route `json:"route"`
}

type GetStatsRequest struct{}

type GetStatsResponse struct {
	Stats models.FleetStats `json:"stats"`
}

func (x *ListPickupsRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

func (x *UpdatePickupStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdatePickupStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UpdateTruckStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateTruckStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UpdateRouteStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateRouteStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}
