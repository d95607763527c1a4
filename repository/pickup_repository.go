package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cityOps/models"
)

const pickupColumns = `id, citizen_name, address, type, status, requested_at, scheduled_for, completed_at, x, y`

// PickupRepository persists citizen pickup requests.
type PickupRepository struct {
	db *sql.DB
}

func NewPickupRepository(db *sql.DB) *PickupRepository {
	return &PickupRepository{db: db}
}

// Create inserts a new pickup. Status defaults to REQUESTED if empty.
func (r *PickupRepository) Create(ctx context.Context, p *models.PickupRequest) (*models.PickupRequest, error) {
	if p == nil {
		return nil, errors.New("pickup is nil")
	}
	if p.ID == "" {
		return nil, errors.New("pickup id is required")
	}
	if p.Status == "" {
		p.Status = models.PickupStatusRequested
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO pickups (`+pickupColumns+`, seq)
VALUES (?,?,?,?,?,?,?,?,?,?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM pickups))`,
		p.ID, p.CitizenName, p.Address, string(p.Type), string(p.Status), p.RequestedAt,
		nullable(p.ScheduledFor), nullable(p.CompletedAt), p.X, p.Y)
	if err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

// GetByID fetches a pickup by its ID. It returns (nil, nil) when absent.
func (r *PickupRepository) GetByID(ctx context.Context, id string) (*models.PickupRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	p, err := scanPickup(r.db.QueryRowContext(ctx, `SELECT `+pickupColumns+` FROM pickups WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// List returns every pickup in insertion order.
func (r *PickupRepository) List(ctx context.Context) ([]models.PickupRequest, error) {
	return r.ListByStatuses(ctx)
}

// ListByStatuses returns pickups whose status is one of statuses, in insertion
// order. No statuses means no filter.
func (r *PickupRepository) ListByStatuses(ctx context.Context, statuses ...models.PickupStatus) ([]models.PickupRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	query := `SELECT ` + pickupColumns + ` FROM pickups`
	args := make([]any, 0, len(statuses))
	if len(statuses) > 0 {
		ph := make([]string, 0, len(statuses))
		for _, s := range statuses {
			ph = append(ph, "?")
			args = append(args, string(s))
		}
		query += ` WHERE status IN (` + strings.Join(ph, ",") + `)`
	}
	query += ` ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.PickupRequest, 0)
	for rows.Next() {
		p, err := scanPickup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus writes the status as given. completedAt replaces the stored
// completion time only when non-nil. Returns sql.ErrNoRows if id is unknown.
func (r *PickupRepository) UpdateStatus(ctx context.Context, id string, status models.PickupStatus, completedAt *string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE pickups SET status = ?, completed_at = COALESCE(?, completed_at) WHERE id = ?`,
		string(status), nullable(completedAt), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPickup(row rowScanner) (*models.PickupRequest, error) {
	var p models.PickupRequest
	var typ, status string
	var scheduled, completed sql.NullString
	if err := row.Scan(&p.ID, &p.CitizenName, &p.Address, &typ, &status, &p.RequestedAt, &scheduled, &completed, &p.X, &p.Y); err != nil {
		return nil, err
	}
	p.Type = models.PickupType(typ)
	p.Status = models.PickupStatus(status)
	p.ScheduledFor = fromNull(scheduled)
	p.CompletedAt = fromNull(completed)
	return &p, nil
}
