// Package httpapi exposes the property portal over JSON/HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"cityOps/internal/config"
	"cityOps/internal/logging"
	"cityOps/internal/portal"
	"cityOps/models"
)

const (
	RouteHealth            = "/health"
	RouteLogin             = "/api/v1/auth/login"
	RouteUsers             = "/api/v1/users"
	RouteProperties        = "/api/v1/properties"
	RouteProperty          = "/api/v1/properties/{id}"
	RouteDescription       = "/api/v1/properties/description"
	RouteMaintenance       = "/api/v1/maintenance"
	RouteMaintenanceStatus = "/api/v1/maintenance/{id}/status"
	RoutePayments          = "/api/v1/payments"
	RoutePay               = "/api/v1/payments/{id}/pay"
	RouteStats             = "/api/v1/stats"
)

var managerRoles = []models.Role{models.RoleLandlord, models.RoleAdmin}

// NewRouter wires every portal route. Everything except health and login
// requires a Bearer token.
func NewRouter(svc *portal.Service, secret string) *mux.Router {
	h := NewHandlers(svc)
	router := mux.NewRouter()
	router.Use(logRequests)

	// Public Routes
	router.HandleFunc(RouteHealth, h.Health).Methods(http.MethodGet)
	router.HandleFunc(RouteLogin, h.Login).Methods(http.MethodPost)

	secured := router.NewRoute().Subrouter()
	secured.Use(AuthMiddleware(secret, svc.Users()))
	secured.HandleFunc(RouteUsers, h.ListUsers).Methods(http.MethodGet)
	secured.HandleFunc(RouteProperties, h.ListProperties).Methods(http.MethodGet)
	secured.HandleFunc(RouteMaintenance, h.ListMaintenance).Methods(http.MethodGet)
	secured.HandleFunc(RouteMaintenance, h.SubmitMaintenance).Methods(http.MethodPost)
	secured.HandleFunc(RoutePayments, h.ListPayments).Methods(http.MethodGet)
	secured.HandleFunc(RoutePay, h.PayPayment).Methods(http.MethodPost)
	secured.HandleFunc(RouteStats, h.Stats).Methods(http.MethodGet)

	// Landlord and admin only.
	managed := secured.NewRoute().Subrouter()
	managed.Use(RequireRoles(managerRoles...))
	managed.HandleFunc(RouteDescription, h.GenerateDescription).Methods(http.MethodPost)
	managed.HandleFunc(RouteProperties, h.AddProperty).Methods(http.MethodPost)
	managed.HandleFunc(RouteProperty, h.UpdateProperty).Methods(http.MethodPut)
	managed.HandleFunc(RouteProperty, h.DeleteProperty).Methods(http.MethodDelete)
	managed.HandleFunc(RouteMaintenanceStatus, h.UpdateMaintenanceStatus).Methods(http.MethodPatch)

	return router
}

// NewHandler is NewRouter behind the CORS policy from cfg.
func NewHandler(cfg *config.Config, svc *portal.Service) http.Handler {
	co := cors.New(cors.Options{
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return co.Handler(NewRouter(svc, cfg.Auth.JWTSecret))
}

// StartHTTP serves the portal on the configured address and returns a shutdown function.
func StartHTTP(cfg *config.Config, svc *portal.Service) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}
	addr := cfg.HTTP.Address
	if addr == "" {
		addr = ":8080"
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Handler:           NewHandler(cfg, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.WithError(err).Error("HTTP server stopped")
		}
	}()
	logging.Logger.WithField("addr", lis.Addr().String()).Info("HTTP server listening")
	return srv.Shutdown, nil
}
