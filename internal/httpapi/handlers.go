package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"cityOps/internal/portal"
)

var validate = validator.New()

// Handlers serves the portal routes.
type Handlers struct {
	portal *portal.Service
	now    func() time.Time
}

func NewHandlers(svc *portal.Service) *Handlers {
	return &Handlers{portal: svc, now: time.Now}
}

// decode reads a JSON body into dst and validates it.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &AppError{StatusCode: http.StatusBadRequest, Code: ErrCodeInvalidPayload, Message: "Invalid request", Err: err}
	}
	if err := validate.Struct(dst); err != nil {
		return &AppError{StatusCode: http.StatusBadRequest, Code: ErrCodeValidation, Message: "Validation error", Err: err}
	}
	return nil
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decode(r, &req); err != nil {
		HandleAppError(w, err)
		return
	}
	sess, err := h.portal.Login(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, portal.ErrNotFound) {
			RespondErrorWithCode(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Login failed", nil, err)
			return
		}
		HandleAppError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, sess)
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.portal.ListUsers(r.Context())
	if err != nil {
		HandleAppError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, users)
}

func (h *Handlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	props, err := h.portal.ListProperties(r.Context())
	if err != nil {
		HandleAppError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, props)
}

func (h *Handlers) AddProperty(w http.ResponseWriter, r *http.Request) {
	v, _ := viewerFrom(r.Context())
	var req PropertyRequest
	if err := decode(r, &req); err != nil {
		HandleAppError(w, err)
		return
	}
	p, err := h.portal.AddProperty(r.Context(), v, req.input())
	if err != nil {
		HandleAppError(w, fromService(err))
		return
	}
	RespondWithJSON(w, http.StatusCreated, p)
}

func (h *Handlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	var req PropertyRequest
	if err := decode(r, &req); err != nil {
		HandleAppError(w, err)
		return
	}
	p, err := h.portal.UpdateProperty(r.Context(), mux.Vars(r)["id"], req.input())
	if err != nil {
		HandleAppError(w, fromService(err))
		return
	}
	RespondWithJSON(w, http.StatusOK, p)
}

func (h *Handlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.portal.DeleteProperty(r.Context(), mux.Vars(r)["id"]); err != nil {
		HandleAppError(w, fromService(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req DescriptionRequest
	if err := decode(r, &req); err != nil {
		HandleAppError(w, err)
		return
	}
	text := h.portal.GenerateDescription(r.Context(), req.input())
	RespondWithJSON(w, http.StatusOK, DescriptionResponse{Description: text})
}

func (h *Handlers) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	v, _ := viewerFrom(r.Context())
	reqs, err := h.portal.ListMaintenance(r.Context(), v)
	if err != nil {
		HandleAppError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, reqs)
}

func (h *Handlers) SubmitMaintenance(w http.ResponseWriter, r *http.Request) {
	v, _ := viewerFrom(r.Context())
	var req MaintenanceRequest
	if err := decode(r, &req); err != nil {
		HandleAppError(w, err)
		return
	}
	m, err := h.portal.SubmitMaintenance(r.Context(), v, portal.MaintenanceInput{
		PropertyID:  req.PropertyID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		HandleAppError(w, fromService(err))
		return
	}
	RespondWithJSON(w, http.StatusCreated, m)
}

func (h *Handlers) UpdateMaintenanceStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := decode(r, &req); err != nil {
		HandleAppError(w, err)
		return
	}
	m, err := h.portal.UpdateMaintenanceStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		HandleAppError(w, fromService(err))
		return
	}
	RespondWithJSON(w, http.StatusOK, m)
}

func (h *Handlers) ListPayments(w http.ResponseWriter, r *http.Request) {
	v, _ := viewerFrom(r.Context())
	pays, err := h.portal.ListPayments(r.Context(), v)
	if err != nil {
		HandleAppError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, newPaymentViews(pays, h.now()))
}

func (h *Handlers) PayPayment(w http.ResponseWriter, r *http.Request) {
	v, _ := viewerFrom(r.Context())
	p, err := h.portal.MarkPaymentPaid(r.Context(), v, mux.Vars(r)["id"])
	if err != nil {
		HandleAppError(w, fromService(err))
		return
	}
	RespondWithJSON(w, http.StatusOK, PaymentView{Payment: *p, IsOverdue: p.IsOverdue(h.now())})
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	v, _ := viewerFrom(r.Context())
	st, err := h.portal.Stats(r.Context(), v)
	if err != nil {
		HandleAppError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, st)
}
