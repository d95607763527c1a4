// Package portal implements the property management store: users,
// listings, maintenance requests and rent payments.
package portal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cityOps/internal/ai"
	"cityOps/internal/auth"
	"cityOps/internal/logging"
	"cityOps/models"
	"cityOps/repository"
)

var (
	// ErrNotFound is returned when an id or email does not match a stored record.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when a tenant touches another tenant's record.
	ErrForbidden = errors.New("forbidden")
)

// Assistant is the AI surface the portal relies on. *ai.Client satisfies it.
type Assistant interface {
	GeneratePropertyDescription(ctx context.Context, in ai.DescriptionInput) string
	AnalyzeMaintenanceRequest(ctx context.Context, title, description string) ai.Triage
}

// Viewer is the user on whose behalf a call is made.
type Viewer struct {
	ID   string
	Role models.Role
}

func (v Viewer) isTenant() bool { return v.Role == models.RoleTenant }

// TokenConfig controls login tokens.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// Session is the result of a successful login.
type Session struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// PropertyInput carries the editable fields of a listing. Nil pointers take
// the defaults on create and keep the stored value on update.
type PropertyInput struct {
	LandlordID  string
	Title       string
	Address     string
	Description string
	RentAmount  float64
	Bedrooms    int
	Bathrooms   float64
	ImageURL    string
	IsAvailable *bool
}

// MaintenanceInput is a tenant's new request. An empty Priority asks the
// assistant for a triage.
type MaintenanceInput struct {
	PropertyID  string
	Title       string
	Description string
	Priority    models.MaintenancePriority
}

type Service struct {
	users       repository.UserRepositoryI
	properties  repository.PropertyRepositoryI
	maintenance repository.MaintenanceRepositoryI
	payments    repository.PaymentRepositoryI

	assistant Assistant
	tokens    TokenConfig
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(d *sql.DB, assistant Assistant, tokens TokenConfig, opts ...Option) *Service {
	s := &Service{
		users:       repository.NewUserRepository(d),
		properties:  repository.NewPropertyRepository(d),
		maintenance: repository.NewMaintenanceRepository(d),
		payments:    repository.NewPaymentRepository(d),
		assistant:   assistant,
		tokens:      tokens,
		now:         time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Users exposes the user store for callers that verify token roles.
func (s *Service) Users() repository.UserRepositoryI {
	return s.users
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// Login looks the user up by email and issues a token. There is no password.
func (s *Service) Login(ctx context.Context, email string) (*Session, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user %q: %w", email, ErrNotFound)
	}
	tok, exp, err := auth.Issue(s.tokens.Secret, u, s.tokens.TTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	logging.Logger.WithFields(logrus.Fields{"user": u.ID, "role": u.Role}).Info("User logged in")
	return &Session{User: u, Token: tok, ExpiresAt: exp}, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx, 1000, 0)
}

func (s *Service) ListProperties(ctx context.Context) ([]models.Property, error) {
	return s.properties.List(ctx)
}

// AddProperty lists a new unit. The landlord defaults to the viewer.
func (s *Service) AddProperty(ctx context.Context, v Viewer, in PropertyInput) (*models.Property, error) {
	id := uuid.NewString()
	p := &models.Property{
		ID:          id,
		LandlordID:  in.LandlordID,
		Title:       in.Title,
		Address:     in.Address,
		Description: in.Description,
		RentAmount:  in.RentAmount,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		ImageURL:    in.ImageURL,
		IsAvailable: true,
	}
	if p.LandlordID == "" {
		p.LandlordID = v.ID
	}
	if p.ImageURL == "" {
		p.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", id)
	}
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
	out, err := s.properties.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	logging.Logger.WithFields(logrus.Fields{"property": id, "landlord": p.LandlordID}).Info("Property added")
	return out, nil
}

// UpdateProperty replaces the listing's fields.
func (s *Service) UpdateProperty(ctx context.Context, id string, in PropertyInput) (*models.Property, error) {
	cur, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	if cur == nil {
		return nil, fmt.Errorf("property %s: %w", id, ErrNotFound)
	}
	next := *cur
	next.Title = in.Title
	next.Address = in.Address
	next.Description = in.Description
	next.RentAmount = in.RentAmount
	next.Bedrooms = in.Bedrooms
	next.Bathrooms = in.Bathrooms
	if in.LandlordID != "" {
		next.LandlordID = in.LandlordID
	}
	if in.ImageURL != "" {
		next.ImageURL = in.ImageURL
	}
	if in.IsAvailable != nil {
		next.IsAvailable = *in.IsAvailable
	}
	if err := s.properties.Update(ctx, &next); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("property %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update property: %w", err)
	}
	logging.Logger.WithField("property", id).Info("Property updated")
	return &next, nil
}

// DeleteProperty removes a listing. Linked requests and payments stay.
func (s *Service) DeleteProperty(ctx context.Context, id string) error {
	if err := s.properties.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("property %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete property: %w", err)
	}
	logging.Logger.WithField("property", id).Info("Property deleted")
	return nil
}

// GenerateDescription drafts listing copy. It never fails.
func (s *Service) GenerateDescription(ctx context.Context, in ai.DescriptionInput) string {
	return s.assistant.GeneratePropertyDescription(ctx, in)
}

// ListMaintenance returns requests newest first; tenants only see their own.
func (s *Service) ListMaintenance(ctx context.Context, v Viewer) ([]models.MaintenanceRequest, error) {
	tenant := ""
	if v.isTenant() {
		tenant = v.ID
	}
	return s.maintenance.List(ctx, tenant)
}

// SubmitMaintenance files a PENDING request for the viewer. Without a
// priority the assistant's triage supplies priority and analysis, stored
// as returned.
func (s *Service) SubmitMaintenance(ctx context.Context, v Viewer, in MaintenanceInput) (*models.MaintenanceRequest, error) {
	m := &models.MaintenanceRequest{
		ID:          uuid.NewString(),
		TenantID:    v.ID,
		PropertyID:  in.PropertyID,
		Title:       in.Title,
		Description: in.Description,
		Status:      models.MaintenanceStatusPending,
		Priority:    in.Priority,
		CreatedAt:   s.timestamp(),
	}
	if m.Priority == "" {
		t := s.assistant.AnalyzeMaintenanceRequest(ctx, in.Title, in.Description)
		m.Priority = t.Priority
		analysis := t.Analysis
		m.AIAnalysis = &analysis
	}
	out, err := s.maintenance.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("create maintenance request: %w", err)
	}
	logging.Logger.WithFields(logrus.Fields{"request": m.ID, "tenant": v.ID, "priority": m.Priority}).Info("Maintenance request submitted")
	return out, nil
}

// UpdateMaintenanceStatus writes status as given; RESOLVED stamps ResolvedAt.
func (s *Service) UpdateMaintenanceStatus(ctx context.Context, id string, status models.MaintenanceStatus) (*models.MaintenanceRequest, error) {
	var resolvedAt *string
	if status == models.MaintenanceStatusResolved {
		ts := s.timestamp()
		resolvedAt = &ts
	}
	if err := s.maintenance.UpdateStatus(ctx, id, status, resolvedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("maintenance request %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update maintenance request: %w", err)
	}
	m, err := s.maintenance.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get maintenance request: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("maintenance request %s: %w", id, ErrNotFound)
	}
	logging.Logger.WithFields(logrus.Fields{"request": id, "status": status}).Info("Maintenance status updated")
	return m, nil
}

// ListPayments returns payments by due date; tenants only see their own.
func (s *Service) ListPayments(ctx context.Context, v Viewer) ([]models.Payment, error) {
	tenant := ""
	if v.isTenant() {
		tenant = v.ID
	}
	return s.payments.List(ctx, tenant)
}

// MarkPaymentPaid records a payment. A tenant may only pay their own.
func (s *Service) MarkPaymentPaid(ctx context.Context, v Viewer, id string) (*models.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("payment %s: %w", id, ErrNotFound)
	}
	if v.isTenant() && p.TenantID != v.ID {
		return nil, fmt.Errorf("payment %s: %w", id, ErrForbidden)
	}
	paid := s.timestamp()
	if err := s.payments.MarkPaid(ctx, id, paid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("mark payment paid: %w", err)
	}
	p.Status = models.PaymentStatusPaid
	p.PaidDate = &paid
	logging.Logger.WithFields(logrus.Fields{"payment": id, "amount": p.Amount}).Info("Payment marked paid")
	return p, nil
}

// Stats summarises the portal for the viewer. Tenants also get their own
// open request and pending payment counts.
func (s *Service) Stats(ctx context.Context, v Viewer) (models.PortalStats, error) {
	props, err := s.properties.List(ctx)
	if err != nil {
		return models.PortalStats{}, fmt.Errorf("list properties: %w", err)
	}
	reqs, err := s.maintenance.List(ctx, "")
	if err != nil {
		return models.PortalStats{}, fmt.Errorf("list maintenance requests: %w", err)
	}
	pays, err := s.payments.List(ctx, "")
	if err != nil {
		return models.PortalStats{}, fmt.Errorf("list payments: %w", err)
	}

	st := models.PortalStats{TotalProperties: len(props)}
	for _, p := range props {
		if !p.IsAvailable {
			st.OccupiedProperties++
		}
	}
	for _, m := range reqs {
		if m.Status == models.MaintenanceStatusResolved {
			continue
		}
		st.OpenRequests++
		if v.isTenant() && m.TenantID == v.ID {
			st.MyOpenRequests++
		}
	}
	for _, p := range pays {
		if p.Status == models.PaymentStatusPaid {
			st.TotalRevenue += p.Amount
		}
		if v.isTenant() && p.TenantID == v.ID && p.Status == models.PaymentStatusPending {
			st.MyPendingPayments++
		}
	}
	return st, nil
}
