// Package waste implements the fleet and bin monitor store: pickups,
// trucks, bins, routes and their aggregates.
package waste

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cityOps/internal/fleet"
	"cityOps/internal/latency"
	"cityOps/internal/logging"
	"cityOps/models"
	"cityOps/repository"
)

// ErrNotFound is returned when an id does not match a stored record.
var ErrNotFound = errors.New("not found")

// PickupFilter selects pickups by lifecycle stage.
type PickupFilter string

const (
	FilterAll       PickupFilter = "ALL"
	FilterPending   PickupFilter = "PENDING"
	FilterCompleted PickupFilter = "COMPLETED"
)

// ParsePickupFilter accepts a filter name in any case; empty means ALL.
func ParsePickupFilter(s string) (PickupFilter, error) {
	switch f := PickupFilter(strings.ToUpper(strings.TrimSpace(s))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending, FilterCompleted:
		return f, nil
	default:
		return "", fmt.Errorf("unknown pickup filter %q", s)
	}
}

var pendingStatuses = []models.PickupStatus{
	models.PickupStatusRequested,
	models.PickupStatusScheduled,
	models.PickupStatusInProgress,
}

// NewPickup is the citizen-supplied part of a pickup request.
type NewPickup struct {
	CitizenName  string
	Address      string
	Type         models.PickupType
	ScheduledFor *string
	X, Y         float64
}

// Service is safe for concurrent use.
type Service struct {
	db      *sql.DB
	pickups repository.PickupRepositoryI
	trucks  *repository.TruckRepository
	bins    repository.BinRepositoryI
	routes  repository.RouteRepositoryI

	sim    *fleet.Simulator
	delays latency.Profile
	now    func() time.Time

	// moveMu serialises simulation steps.
	moveMu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithLatency sets the per-operation delays. Default is latency.Default.
func WithLatency(p latency.Profile) Option {
	return func(s *Service) { s.delays = p }
}

// WithSimulator replaces the truck movement simulator.
func WithSimulator(sim *fleet.Simulator) Option {
	return func(s *Service) { s.sim = sim }
}

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(d *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:      d,
		pickups: repository.NewPickupRepository(d),
		trucks:  repository.NewTruckRepository(d),
		bins:    repository.NewBinRepository(d),
		routes:  repository.NewRouteRepository(d),
		sim:     fleet.NewSimulator(),
		delays:  latency.Default,
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// ListPickups returns the pickups matching filter in creation order.
func (s *Service) ListPickups(ctx context.Context, filter PickupFilter) ([]models.PickupRequest, error) {
	if err := s.delays.Wait(ctx, latency.ListPickups); err != nil {
		return nil, err
	}
	switch filter {
	case FilterPending:
		return s.pickups.ListByStatuses(ctx, pendingStatuses...)
	case FilterCompleted:
		return s.pickups.ListByStatuses(ctx, models.PickupStatusCompleted)
	default:
		return s.pickups.List(ctx)
	}
}

// CreatePickup files a new REQUESTED pickup.
func (s *Service) CreatePickup(ctx context.Context, in NewPickup) (*models.PickupRequest, error) {
	typ := in.Type
	if typ == "" {
		typ = models.PickupTypeRegular
	}
	p, err := s.pickups.Create(ctx, &models.PickupRequest{
		ID:           uuid.NewString(),
		CitizenName:  in.CitizenName,
		Address:      in.Address,
		Type:         typ,
		Status:       models.PickupStatusRequested,
		RequestedAt:  s.timestamp(),
		ScheduledFor: in.ScheduledFor,
		X:            in.X,
		Y:            in.Y,
	})
	if err != nil {
		return nil, fmt.Errorf("create pickup: %w", err)
	}
	logging.Logger.WithFields(logrus.Fields{"pickup": p.ID, "type": p.Type}).Info("Pickup requested")
	return p, nil
}

// UpdatePickupStatus writes status without checking the transition.
// Moving to COMPLETED stamps CompletedAt; other targets leave it as is.
func (s *Service) UpdatePickupStatus(ctx context.Context, id string, status models.PickupStatus) (*models.PickupRequest, error) {
	if err := s.delays.Wait(ctx, latency.UpdatePickupStatus); err != nil {
		return nil, err
	}
	p, err := s.pickups.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get pickup: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("pickup %s: %w", id, ErrNotFound)
	}
	var completedAt *string
	if status == models.PickupStatusCompleted {
		ts := s.timestamp()
		completedAt = &ts
	}
	if err := s.pickups.UpdateStatus(ctx, id, status, completedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pickup %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update pickup: %w", err)
	}
	p.Status = status
	if completedAt != nil {
		p.CompletedAt = completedAt
	}
	logging.Logger.WithFields(logrus.Fields{"pickup": id, "status": status}).Info("Pickup status updated")
	return p, nil
}

// ListTrucks advances the movement simulation by one step and returns the
// resulting fleet. The step is applied in a single transaction.
func (s *Service) ListTrucks(ctx context.Context) ([]models.Truck, error) {
	if err := s.delays.Wait(ctx, latency.ListTrucks); err != nil {
		return nil, err
	}
	s.moveMu.Lock()
	defer s.moveMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin fleet step: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	repo := s.trucks.WithTx(tx)
	current, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	next, moved := s.sim.Advance(current)
	for _, i := range moved {
		t := next[i]
		if err := repo.UpdatePosition(ctx, t.ID, t.X, t.Y, t.FuelLevel); err != nil {
			return nil, fmt.Errorf("move truck %s: %w", t.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit fleet step: %w", err)
	}
	logging.Logger.WithField("moved", len(moved)).Debug("Fleet step applied")
	return next, nil
}

// UpdateTruckStatus writes status without checking the transition.
func (s *Service) UpdateTruckStatus(ctx context.Context, id string, status models.TruckStatus) (*models.Truck, error) {
	s.moveMu.Lock()
	defer s.moveMu.Unlock()
	if err := s.trucks.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("truck %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update truck: %w", err)
	}
	t, err := s.trucks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get truck: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("truck %s: %w", id, ErrNotFound)
	}
	logging.Logger.WithFields(logrus.Fields{"truck": id, "status": status}).Info("Truck status updated")
	return t, nil
}

func (s *Service) ListBins(ctx context.Context) ([]models.Bin, error) {
	if err := s.delays.Wait(ctx, latency.ListBins); err != nil {
		return nil, err
	}
	return s.bins.List(ctx)
}

func (s *Service) ListRoutes(ctx context.Context) ([]models.Route, error) {
	if err := s.delays.Wait(ctx, latency.ListRoutes); err != nil {
		return nil, err
	}
	return s.routes.List(ctx)
}

// UpdateRouteStatus writes status; COMPLETED stamps CompletedAt.
func (s *Service) UpdateRouteStatus(ctx context.Context, id string, status models.RouteStatus) (*models.Route, error) {
	var completedAt *string
	if status == models.RouteStatusCompleted {
		ts := s.timestamp()
		completedAt = &ts
	}
	if err := s.routes.UpdateStatus(ctx, id, status, completedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("route %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update route: %w", err)
	}
	r, err := s.routes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("route %s: %w", id, ErrNotFound)
	}
	logging.Logger.WithFields(logrus.Fields{"route": id, "status": status}).Info("Route status updated")
	return r, nil
}

// Stats summarises the current store. It reads trucks without stepping the
// simulation.
func (s *Service) Stats(ctx context.Context) (models.FleetStats, error) {
	if err := s.delays.Wait(ctx, latency.Stats); err != nil {
		return models.FleetStats{}, err
	}
	pickups, err := s.pickups.List(ctx)
	if err != nil {
		return models.FleetStats{}, fmt.Errorf("list pickups: %w", err)
	}
	trucks, err := s.trucks.List(ctx)
	if err != nil {
		return models.FleetStats{}, fmt.Errorf("list trucks: %w", err)
	}
	bins, err := s.bins.List(ctx)
	if err != nil {
		return models.FleetStats{}, fmt.Errorf("list bins: %w", err)
	}
	return fleet.ComputeStats(pickups, trucks, bins), nil
}
