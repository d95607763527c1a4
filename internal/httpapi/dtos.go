package httpapi

import (
	"time"

	"cityOps/internal/ai"
	"cityOps/internal/portal"
	"cityOps/models"
)

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PropertyRequest struct {
	LandlordID  string  `json:"landlordId"`
	Title       string  `json:"title" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	Description string  `json:"description"`
	RentAmount  float64 `json:"rentAmount" validate:"gte=0"`
	Bedrooms    int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms   float64 `json:"bathrooms" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable *bool   `json:"isAvailable"`
}

func (p PropertyRequest) input() portal.PropertyInput {
	return portal.PropertyInput{
		LandlordID:  p.LandlordID,
		Title:       p.Title,
		Address:     p.Address,
		Description: p.Description,
		RentAmount:  p.RentAmount,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		ImageURL:    p.ImageURL,
		IsAvailable: p.IsAvailable,
	}
}

type DescriptionRequest struct {
	Features     string  `json:"features"`
	PropertyType string  `json:"type"`
	Bedrooms     int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms    float64 `json:"bathrooms" validate:"gte=0"`
	Location     string  `json:"location"`
}

func (d DescriptionRequest) input() ai.DescriptionInput {
	return ai.DescriptionInput{
		Features:     d.Features,
		PropertyType: d.PropertyType,
		Bedrooms:     d.Bedrooms,
		Bathrooms:    d.Bathrooms,
		Location:     d.Location,
	}
}

type DescriptionResponse struct {
	Description string `json:"description"`
}

type MaintenanceRequest struct {
	PropertyID  string                     `json:"propertyId" validate:"required"`
	Title       string                     `json:"title" validate:"required"`
	Description string                     `json:"description" validate:"required"`
	Priority    models.MaintenancePriority `json:"priority"`
}

type StatusRequest struct {
	Status models.MaintenanceStatus `json:"status" validate:"required"`
}

// PaymentView is a payment with its derived overdue flag.
type PaymentView struct {
	models.Payment
	IsOverdue bool `json:"isOverdue"`
}

func newPaymentViews(ps []models.Payment, now time.Time) []PaymentView {
	out := make([]PaymentView, 0, len(ps))
	for _, p := range ps {
		out = append(out, PaymentView{Payment: p, IsOverdue: p.IsOverdue(now)})
	}
	return out
}

type HealthResponse struct {
	Status string `json:"status"`
}
