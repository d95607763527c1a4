// Package seed loads the initial dashboard dataset into an empty store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"cityOps/internal/logging"
	"cityOps/models"
	"cityOps/repository"
)

//go:embed dataset.yaml
var embedded []byte

// Dataset is the seed file layout.
type Dataset struct {
	Users       []models.User        `yaml:"users"`
	Pickups     []Pickup             `yaml:"pickups"`
	Trucks      []models.Truck       `yaml:"trucks"`
	Bins        []Bin                `yaml:"bins"`
	Routes      []models.Route       `yaml:"routes"`
	Properties  []models.Property    `yaml:"properties"`
	Maintenance []MaintenanceRequest `yaml:"maintenance"`
	Payments    []Payment            `yaml:"payments"`
}

// Pickup mirrors models.PickupRequest with flat coordinates.
type Pickup struct {
	ID           string              `yaml:"id"`
	CitizenName  string              `yaml:"citizenName"`
	Address      string              `yaml:"address"`
	Type         models.PickupType   `yaml:"type"`
	Status       models.PickupStatus `yaml:"status"`
	RequestedAt  string              `yaml:"requestedAt"`
	ScheduledFor *string             `yaml:"scheduledFor"`
	CompletedAt  *string             `yaml:"completedAt"`
	X            float64             `yaml:"x"`
	Y            float64             `yaml:"y"`
}

// Bin mirrors models.Bin; the category key is "type" as in the API.
type Bin struct {
	ID           string             `yaml:"id"`
	LocationName string             `yaml:"locationName"`
	X            float64            `yaml:"x"`
	Y            float64            `yaml:"y"`
	FillLevel    float64            `yaml:"fillLevel"`
	BatteryLevel float64            `yaml:"batteryLevel"`
	LastServiced string             `yaml:"lastServiced"`
	Type         models.BinCategory `yaml:"type"`
}

// MaintenanceRequest dates its creation relative to the seeding time.
type MaintenanceRequest struct {
	ID          string                     `yaml:"id"`
	TenantID    string                     `yaml:"tenantId"`
	PropertyID  string                     `yaml:"propertyId"`
	Title       string                     `yaml:"title"`
	Description string                     `yaml:"description"`
	Status      models.MaintenanceStatus   `yaml:"status"`
	Priority    models.MaintenancePriority `yaml:"priority"`
	CreatedDays int                        `yaml:"createdDays"`
	AIAnalysis  *string                    `yaml:"aiAnalysis"`
}

// Payment dates are day offsets; a nil PaidDays means unpaid.
type Payment struct {
	ID         string               `yaml:"id"`
	TenantID   string               `yaml:"tenantId"`
	PropertyID string               `yaml:"propertyId"`
	Amount     float64              `yaml:"amount"`
	DueDays    int                  `yaml:"dueDays"`
	PaidDays   *int                 `yaml:"paidDays"`
	Status     models.PaymentStatus `yaml:"status"`
}

// Repos groups the repositories the seeder writes to.
type Repos struct {
	Users       repository.UserRepositoryI
	Pickups     repository.PickupRepositoryI
	Trucks      repository.TruckRepositoryI
	Bins        repository.BinRepositoryI
	Routes      repository.RouteRepositoryI
	Properties  repository.PropertyRepositoryI
	Maintenance repository.MaintenanceRepositoryI
	Payments    repository.PaymentRepositoryI
}

// Load parses the dataset at path, or the embedded one when path is empty.
func Load(path string) (*Dataset, error) {
	raw := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &ds, nil
}

// Apply inserts every record that is not stored yet. Records whose id
// already exists are skipped, so Apply can run on every start.
func Apply(ctx context.Context, r Repos, ds *Dataset, now time.Time) error {
	now = now.UTC()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(time.RFC3339)
	}
	n := 0

	for i := range ds.Users {
		u := ds.Users[i]
		ok, err := insertIfMissing(ctx, "user", u.ID, func(ctx context.Context) (bool, error) {
			got, err := r.Users.GetByID(ctx, u.ID)
			return got != nil, err
		}, func(ctx context.Context) error {
			_, err := r.Users.Create(ctx, &u)
			return err
		})
		if err != nil {
			return err
		}
		n += ok
	}

	for _, p := range ds.Pickups {
		rec := models.PickupRequest{
			ID: p.ID, CitizenName: p.CitizenName, Address: p.Address, Type: p.Type, Status: p.Status,
			RequestedAt: p.RequestedAt, ScheduledFor: p.ScheduledFor, CompletedAt: p.CompletedAt, X: p.X, Y: p.Y,
		}
		ok, err := insertIfMissing(ctx, "pickup", p.ID, func(ctx context.Context) (bool, error) {
			got, err := r.Pickups.GetByID(ctx, rec.ID)
			return got != nil, err
		}, func(ctx context.Context) error {
			_, err := r.Pickups.Create(ctx, &rec)
			return err
		})
		if err != nil {
			return err
		}
		n += ok
	}

	for i := range ds.Trucks {
		t := ds.Trucks[i]
		ok, err := insertIfMissing(ctx, "truck", t.ID, func(ctx context.Context) (bool, error) {
			got, err := r.Trucks.GetByID(ctx, t.ID)
			return got != nil, err
		}, func(ctx context.Context) error {
			_, err := r.Trucks.Create(ctx, &t)
			return err
		})
		if err != nil {
			return err
		}
		n += ok
	}

	for _, b := range ds.Bins {
		rec := models.Bin{
			ID: b.ID, LocationName: b.LocationName, X: b.X, Y: b.Y, FillLevel: b.FillLevel,
			BatteryLevel: b.BatteryLevel, LastServiced: b.LastServiced, Category: b.Type,
		}
		ok, err := insertIfMissing(ctx, "bin", b.ID, func(ctx context.Context) (bool, error) {
			got, err := r.Bins.GetByID(ctx, rec.ID)
			return got != nil, err
		}, func(ctx context.Context) error {
			_, err := r.Bins.Create(ctx, &rec)
			return err
		})
		if err != nil {
			return err
		}
		n += ok
	}

	for i := range ds.Routes {
		rt := ds.Routes[i]
		ok, err := insertIfMissing(ctx, "route", rt.ID, func(ctx context.Context) (bool, error) {
			got, err := r.Routes.GetByID(ctx, rt.ID)
			return got != nil, err
		}, func(ctx context.Context) error {
			_, err := r.Routes.Create(ctx, &rt)
			return err
		})
		if err != nil {
			return err
		}
		n += ok
	}

	for i := range ds.Properties {
		p := ds.Properties[i]
		ok, err := insertIfMissing(ctx, "property", p.ID, func(ctx context.Context) (bool, error) {
			got, err := r.Properties.GetByID(ctx, p.ID)
			return got != nil, err
		}, func(ctx context.Context) error {
			_, err := r.Properties.Create(ctx, &p)
			return err
		})
		if err != nil {
			return err
		}
		n += ok
	}

	for _, m := range ds.Maintenance {
		rec := models.MaintenanceRequest{
			ID: m.ID, TenantID: m.TenantID, PropertyID: m.PropertyID, Title: m.Title, Description: m.Description,
			Status: m.Status, Priority: m.Priority, CreatedAt: day(m.CreatedDays), AIAnalysis: m.AIAnalysis,
		}
		ok, err := insertIfMissing(ctx, "maintenance request", m.ID, func(ctx context.Context) (bool, error) {
			got, err := r.Maintenance.GetByID(ctx, rec.ID)
			return got != nil, err
		}, func(ctx context.Context) error {
			_, err := r.Maintenance.Create(ctx, &rec)
			return err
		})
		if err != nil {
			return err
		}
		n += ok
	}

	for _, p := range ds.Payments {
		rec := models.Payment{
			ID: p.ID, TenantID: p.TenantID, PropertyID: p.PropertyID, Amount: p.Amount,
			DueDate: day(p.DueDays), Status: p.Status,
		}
		if p.PaidDays != nil {
			paid := day(*p.PaidDays)
			rec.PaidDate = &paid
		}
		ok, err := insertIfMissing(ctx, "payment", p.ID, func(ctx context.Context) (bool, error) {
			got, err := r.Payments.GetByID(ctx, rec.ID)
			return got != nil, err
		}, func(ctx context.Context) error {
			_, err := r.Payments.Create(ctx, &rec)
			return err
		})
		if err != nil {
			return err
		}
		n += ok
	}

	logging.Logger.WithField("inserted", n).Info("Seed dataset applied")
	return nil
}

func insertIfMissing(ctx context.Context, kind, id string, exists func(context.Context) (bool, error), create func(context.Context) error) (int, error) {
	found, err := exists(ctx)
	if err != nil {
		return 0, fmt.Errorf("error checking for existing %s %s: %w", kind, id, err)
	}
	if found {
		logging.Logger.Debugf("%s %s already exists; skipping seed.", kind, id)
		return 0, nil
	}
	if err := create(ctx); err != nil {
		return 0, fmt.Errorf("failed to insert %s %s: %w", kind, id, err)
	}
	return 1, nil
}
