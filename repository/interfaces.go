package repository

import (
	"context"

	"cityOps/models"
)

// PickupRepositoryI defines operations on PickupRequest entities.
type PickupRepositoryI interface {
	Create(ctx context.Context, p *models.PickupRequest) (*models.PickupRequest, error)
	GetByID(ctx context.Context, id string) (*models.PickupRequest, error)
	List(ctx context.Context) ([]models.PickupRequest, error)
	ListByStatuses(ctx context.Context, statuses ...models.PickupStatus) ([]models.PickupRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.PickupStatus, completedAt *string) error
}

// TruckRepositoryI defines operations on Truck entities.
type TruckRepositoryI interface {
	Create(ctx context.Context, t *models.Truck) (*models.Truck, error)
	GetByID(ctx context.Context, id string) (*models.Truck, error)
	List(ctx context.Context) ([]models.Truck, error)
	UpdateStatus(ctx context.Context, id string, status models.TruckStatus) error
	UpdatePosition(ctx context.Context, id string, x, y, fuel float64) error
}

// BinRepositoryI defines operations on Bin entities.
type BinRepositoryI interface {
	Create(ctx context.Context, b *models.Bin) (*models.Bin, error)
	GetByID(ctx context.Context, id string) (*models.Bin, error)
	List(ctx context.Context) ([]models.Bin, error)
}

// RouteRepositoryI defines operations on Route entities.
type RouteRepositoryI interface {
	Create(ctx context.Context, r *models.Route) (*models.Route, error)
	GetByID(ctx context.Context, id string) (*models.Route, error)
	List(ctx context.Context) ([]models.Route, error)
	UpdateStatus(ctx context.Context, id string, status models.RouteStatus, completedAt *string) error
}

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

// PropertyRepositoryI defines operations on Property entities.
type PropertyRepositoryI interface {
	Create(ctx context.Context, p *models.Property) (*models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	List(ctx context.Context) ([]models.Property, error)
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id string) error
}

// MaintenanceRepositoryI defines operations on MaintenanceRequest entities.
type MaintenanceRepositoryI interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) (*models.MaintenanceRequest, error)
	GetByID(ctx context.Context, id string) (*models.MaintenanceRequest, error)
	List(ctx context.Context, tenantID string) ([]models.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.MaintenanceStatus, resolvedAt *string) error
}

// PaymentRepositoryI defines operations on Payment entities.
type PaymentRepositoryI interface {
	Create(ctx context.Context, p *models.Payment) (*models.Payment, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context, tenantID string) ([]models.Payment, error)
	MarkPaid(ctx context.Context, id string, paidDate string) error
}

var (
	_ PickupRepositoryI      = (*PickupRepository)(nil)
	_ TruckRepositoryI       = (*TruckRepository)(nil)
	_ BinRepositoryI         = (*BinRepository)(nil)
	_ RouteRepositoryI       = (*RouteRepository)(nil)
	_ UserRepositoryI        = (*UserRepository)(nil)
	_ PropertyRepositoryI    = (*PropertyRepository)(nil)
	_ MaintenanceRepositoryI = (*MaintenanceRepository)(nil)
	_ PaymentRepositoryI     = (*PaymentRepository)(nil)
)
