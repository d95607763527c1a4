package repository

import (
	"context"
	"database/sql"
	"errors"

	"cityOps/models"
)

const maintenanceColumns = `id, tenant_id, property_id, title, description, status, priority, created_at, resolved_at, ai_analysis`

// MaintenanceRepository persists tenant maintenance requests.
type MaintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Create inserts a request. Status defaults to PENDING; priority is stored as given.
func (r *MaintenanceRepository) Create(ctx context.Context, m *models.MaintenanceRequest) (*models.MaintenanceRequest, error) {
	if m == nil {
		return nil, errors.New("maintenance request is nil")
	}
	if m.ID == "" {
		return nil, errors.New("maintenance request id is required")
	}
	if m.Status == "" {
		m.Status = models.MaintenanceStatusPending
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO maintenance_requests (`+maintenanceColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?)`,
		m.ID, m.TenantID, m.PropertyID, m.Title, m.Description, string(m.Status), string(m.Priority), m.CreatedAt,
		nullable(m.ResolvedAt), nullable(m.AIAnalysis))
	if err != nil {
		return nil, err
	}
	out := *m
	return &out, nil
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id string) (*models.MaintenanceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	m, err := scanMaintenance(r.db.QueryRowContext(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// List returns requests newest first. A non-empty tenantID restricts the
// result to that tenant's requests.
func (r *MaintenanceRepository) List(ctx context.Context, tenantID string) ([]models.MaintenanceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests`
	var args []any
	if tenantID != "" {
		query += ` WHERE tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.MaintenanceRequest, 0)
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus writes the status as given; resolvedAt replaces the stored value only when non-nil.
func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id string, status models.MaintenanceStatus, resolvedAt *string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE maintenance_requests SET status = ?, resolved_at = COALESCE(?, resolved_at) WHERE id = ?`,
		string(status), nullable(resolvedAt), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanMaintenance(row rowScanner) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	var status, priority string
	var resolved, analysis sql.NullString
	if err := row.Scan(&m.ID, &m.TenantID, &m.PropertyID, &m.Title, &m.Description, &status, &priority, &m.CreatedAt, &resolved, &analysis); err != nil {
		return nil, err
	}
	m.Status = models.MaintenanceStatus(status)
	m.Priority = models.MaintenancePriority(priority)
	m.ResolvedAt = fromNull(resolved)
	m.AIAnalysis = fromNull(analysis)
	return &m, nil
}
