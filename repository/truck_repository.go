package repository

import (
	"context"
	"database/sql"
	"errors"

	"cityOps/models"
)

const truckColumns = `id, plate_number, driver_name, status, x, y, heading, fuel_level, capacity`

// TruckRepository persists fleet vehicles.
type TruckRepository struct {
	db querier
}

func NewTruckRepository(db *sql.DB) *TruckRepository {
	return &TruckRepository{db: db}
}

// WithTx returns a repository bound to tx. The caller commits or rolls back.
func (r *TruckRepository) WithTx(tx *sql.Tx) *TruckRepository {
	return &TruckRepository{db: tx}
}

// Create inserts a new truck. Status defaults to IDLE if empty.
func (r *TruckRepository) Create(ctx context.Context, t *models.Truck) (*models.Truck, error) {
	if t == nil {
		return nil, errors.New("truck is nil")
	}
	if t.ID == "" {
		return nil, errors.New("truck id is required")
	}
	if t.Status == "" {
		t.Status = models.TruckStatusIdle
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO trucks (`+truckColumns+`, seq)
VALUES (?,?,?,?,?,?,?,?,?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM trucks))`,
		t.ID, t.PlateNumber, t.DriverName, string(t.Status), t.X, t.Y, t.Heading, t.FuelLevel, t.Capacity)
	if err != nil {
		return nil, err
	}
	out := *t
	return &out, nil
}

// GetByID fetches a truck. It returns (nil, nil) when absent.
func (r *TruckRepository) GetByID(ctx context.Context, id string) (*models.Truck, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	t, err := scanTruck(r.db.QueryRowContext(ctx, `SELECT `+truckColumns+` FROM trucks WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// List returns the whole fleet in insertion order.
func (r *TruckRepository) List(ctx context.Context) ([]models.Truck, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+truckColumns+` FROM trucks ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Truck, 0)
	for rows.Next() {
		t, err := scanTruck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus sets the operating status. Returns sql.ErrNoRows if id is unknown.
func (r *TruckRepository) UpdateStatus(ctx context.Context, id string, status models.TruckStatus) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE trucks SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// UpdatePosition stores a simulated position and fuel level.
func (r *TruckRepository) UpdatePosition(ctx context.Context, id string, x, y, fuel float64) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE trucks SET x = ?, y = ?, fuel_level = ? WHERE id = ?`, x, y, fuel, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanTruck(row rowScanner) (*models.Truck, error) {
	var t models.Truck
	var status string
	if err := row.Scan(&t.ID, &t.PlateNumber, &t.DriverName, &status, &t.X, &t.Y, &t.Heading, &t.FuelLevel, &t.Capacity); err != nil {
		return nil, err
	}
	t.Status = models.TruckStatus(status)
	return &t, nil
}
