package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"cityOps/internal/logging"
	"cityOps/internal/portal"
)

const (
	ErrCodeInvalidPayload = "invalid_payload"
	ErrCodeValidation     = "validation_error"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeForbidden      = "forbidden"
	ErrCodeNotFound       = "not_found"
	ErrCodeInternal       = "internal_server_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// AppError carries the HTTP shape of a failure from a handler helper up to
// HandleAppError.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// RespondWithJSON writes payload as JSON with the given status.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Logger.WithError(err).Error("Failed to encode response")
	}
}

// RespondErrorWithCode writes an ErrorResponse. details is omitted when nil;
// devErr is only logged.
func RespondErrorWithCode(w http.ResponseWriter, status int, code, publicMessage string, details any, devErr ...error) {
	RespondWithJSON(w, status, ErrorResponse{Code: code, Message: publicMessage, Details: details})

	fields := logrus.Fields{"status": status, "code": code}
	if len(devErr) > 0 && devErr[0] != nil {
		fields["error"] = devErr[0].Error()
	}
	entry := logging.Logger.WithFields(fields)
	if status >= http.StatusInternalServerError {
		entry.Error(publicMessage)
	} else {
		entry.Warn(publicMessage)
	}
}

// HandleAppError responds with err's AppError shape, or 500 for anything else.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
		return
	}
	RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
}

// fromService maps portal sentinels onto AppErrors.
func fromService(err error) error {
	switch {
	case errors.Is(err, portal.ErrNotFound):
		return &AppError{StatusCode: http.StatusNotFound, Code: ErrCodeNotFound, Message: "Not found", Err: err}
	case errors.Is(err, portal.ErrForbidden):
		return &AppError{StatusCode: http.StatusForbidden, Code: ErrCodeForbidden, Message: "Forbidden", Err: err}
	default:
		return err
	}
}
