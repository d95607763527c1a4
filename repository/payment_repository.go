package repository

import (
	"context"
	"database/sql"
	"errors"

	"cityOps/models"
)

const paymentColumns = `id, tenant_id, property_id, amount, due_date, paid_date, status`

// PaymentRepository persists rent payments.
type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if p == nil {
		return nil, errors.New("payment is nil")
	}
	if p.ID == "" {
		return nil, errors.New("payment id is required")
	}
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO payments (`+paymentColumns+`) VALUES (?,?,?,?,?,?,?)`,
		p.ID, p.TenantID, p.PropertyID, p.Amount, p.DueDate, nullable(p.PaidDate), string(p.Status))
	if err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	p, err := scanPayment(r.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// List returns payments ordered by due date. A non-empty tenantID restricts
// the result to that tenant.
func (r *PaymentRepository) List(ctx context.Context, tenantID string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	query := `SELECT ` + paymentColumns + ` FROM payments`
	var args []any
	if tenantID != "" {
		query += ` WHERE tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` ORDER BY due_date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
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

// MarkPaid sets the payment to PAID with the given paid date.
func (r *PaymentRepository) MarkPaid(ctx context.Context, id string, paidDate string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE payments SET status = ?, paid_date = ? WHERE id = ?`,
		string(models.PaymentStatusPaid), paidDate, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	var p models.Payment
	var status string
	var paid sql.NullString
	if err := row.Scan(&p.ID, &p.TenantID, &p.PropertyID, &p.Amount, &p.DueDate, &paid, &status); err != nil {
		return nil, err
	}
	p.Status = models.PaymentStatus(status)
	p.PaidDate = fromNull(paid)
	return &p, nil
}
