package models

import "time"

// PaymentStatus represents the state of a rent payment.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusOverdue PaymentStatus = "OVERDUE"
)

// Payment is a rent installment owed by a tenant for a property.
type Payment struct {
	ID         string        `db:"id" json:"id"`
	TenantID   string        `db:"tenant_id" json:"tenantId"`
	PropertyID string        `db:"property_id" json:"propertyId"`
	Amount     float64       `db:"amount" json:"amount"`
	DueDate    string        `db:"due_date" json:"dueDate"`
	PaidDate   *string       `db:"paid_date" json:"paidDate,omitempty"`
	Status     PaymentStatus `db:"status" json:"status"`
}

// IsOverdue reports whether an unpaid payment is past its due date. A stored
// OVERDUE status always counts; unparseable due dates never do.
func (p Payment) IsOverdue(now time.Time) bool {
	if p.Status == PaymentStatusPaid {
		return false
	}
	if p.Status == PaymentStatusOverdue {
		return true
	}
	due, err := time.Parse(time.RFC3339, p.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now)
}
