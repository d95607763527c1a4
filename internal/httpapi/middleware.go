package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"cityOps/internal/auth"
	"cityOps/internal/logging"
	"cityOps/internal/portal"
	"cityOps/models"
	"cityOps/repository"
)

type contextKey string

const contextKeyViewer = contextKey("viewer")

func withViewer(ctx context.Context, v portal.Viewer) context.Context {
	return context.WithValue(ctx, contextKeyViewer, v)
}

// viewerFrom returns the viewer stored by AuthMiddleware.
func viewerFrom(ctx context.Context) (portal.Viewer, bool) {
	v, ok := ctx.Value(contextKeyViewer).(portal.Viewer)
	return v, ok
}

// AuthMiddleware rejects requests without a valid Bearer token. The viewer's
// role is read from the user store, so a token outliving a role change
// carries the current role.
func AuthMiddleware(secret string, users repository.UserRepositoryI) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := auth.ParseBearer(r.Header.Get("Authorization"), secret)
			if err != nil {
				msg := "Invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "Token expired"
				}
				RespondErrorWithCode(w, http.StatusUnauthorized, ErrCodeUnauthorized, msg, nil, err)
				return
			}
			u, err := users.GetByID(r.Context(), p.Name)
			if err != nil {
				RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to load user", nil, err)
				return
			}
			if u == nil {
				RespondErrorWithCode(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Unknown user", nil)
				return
			}
			ctx := withViewer(r.Context(), portal.Viewer{ID: u.ID, Role: u.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles only lets viewers holding one of roles through.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, ok := viewerFrom(r.Context())
			if !ok {
				RespondErrorWithCode(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Unauthenticated", nil)
				return
			}
			for _, role := range roles {
				if v.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			RespondErrorWithCode(w, http.StatusForbidden, ErrCodeForbidden, "Insufficient role", nil)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// logRequests logs one line per request at debug level.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.Logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("HTTP request")
	})
}
