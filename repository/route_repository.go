package repository

import (
	"context"
	"database/sql"
	"errors"

	"cityOps/models"
)

const routeColumns = `id, truck_id, name, stops, progress, status, completed_at`

// RouteRepository persists collection routes.
type RouteRepository struct {
	db *sql.DB
}

func NewRouteRepository(db *sql.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// Create inserts a new route. Status defaults to PENDING if empty.
func (r *RouteRepository) Create(ctx context.Context, rt *models.Route) (*models.Route, error) {
	if rt == nil {
		return nil, errors.New("route is nil")
	}
	if rt.ID == "" {
		return nil, errors.New("route id is required")
	}
	if rt.Status == "" {
		rt.Status = models.RouteStatusPending
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO routes (`+routeColumns+`, seq)
VALUES (?,?,?,?,?,?,?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM routes))`,
		rt.ID, rt.TruckID, rt.Name, rt.Stops, rt.Progress, string(rt.Status), nullable(rt.CompletedAt))
	if err != nil {
		return nil, err
	}
	out := *rt
	return &out, nil
}

func (r *RouteRepository) GetByID(ctx context.Context, id string) (*models.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	rt, err := scanRoute(r.db.QueryRowContext(ctx, `SELECT `+routeColumns+` FROM routes WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rt, nil
}

func (r *RouteRepository) List(ctx context.Context) ([]models.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `SELECT `+routeColumns+` FROM routes ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Route, 0)
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus writes the status; completedAt replaces the stored value only when non-nil.
func (r *RouteRepository) UpdateStatus(ctx context.Context, id string, status models.RouteStatus, completedAt *string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE routes SET status = ?, completed_at = COALESCE(?, completed_at) WHERE id = ?`,
		string(status), nullable(completedAt), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanRoute(row rowScanner) (*models.Route, error) {
	var rt models.Route
	var status string
	var completed sql.NullString
	if err := row.Scan(&rt.ID, &rt.TruckID, &rt.Name, &rt.Stops, &rt.Progress, &status, &completed); err != nil {
		return nil, err
	}
	rt.Status = models.RouteStatus(status)
	rt.CompletedAt = fromNull(completed)
	return &rt, nil
}
