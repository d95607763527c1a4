package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cityOps/internal/ai"
	"cityOps/internal/config"
	"cityOps/internal/db"
	grpcserver "cityOps/internal/grpc"
	"cityOps/internal/httpapi"
	"cityOps/internal/latency"
	"cityOps/internal/logging"
	"cityOps/internal/portal"
	"cityOps/internal/seed"
	"cityOps/internal/waste"
	"cityOps/repository"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		logging.Logger.Fatalf("load config: %v", err)
	}
	logging.Init("cityops", cfg.LogLevel)
	logging.Logger.Infof("Configuration loaded: %v", cfg)

	// Open DB
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		logging.Logger.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			logging.Logger.WithError(err).Error("close db")
		}
	}()

	users := repository.NewUserRepository(d)

	ds, err := seed.Load(cfg.Database.SeedFile)
	if err != nil {
		logging.Logger.Fatalf("load seed: %v", err)
	}
	if err := seed.Apply(context.Background(), seed.Repos{
		Users:       users,
		Pickups:     repository.NewPickupRepository(d),
		Trucks:      repository.NewTruckRepository(d),
		Bins:        repository.NewBinRepository(d),
		Routes:      repository.NewRouteRepository(d),
		Properties:  repository.NewPropertyRepository(d),
		Maintenance: repository.NewMaintenanceRepository(d),
		Payments:    repository.NewPaymentRepository(d),
	}, ds, time.Now()); err != nil {
		logging.Logger.Fatalf("apply seed: %v", err)
	}

	delays := latency.Default
	if !cfg.Mock.Latency {
		delays = latency.None
	}
	wasteSvc := waste.NewService(d, waste.WithLatency(delays))

	assistant := ai.NewClient(ai.Config{APIKey: cfg.AI.APIKey, BaseURL: cfg.AI.BaseURL, Model: cfg.AI.Model})
	if !assistant.Enabled() {
		logging.Logger.Warn("AI_API_KEY not set; descriptions and triage return placeholders")
	}
	portalSvc := portal.NewService(d, assistant, portal.TokenConfig{Secret: cfg.Auth.JWTSecret, TTL: cfg.Auth.TokenTTL})

	// Start gRPC
	stopGRPC, err := grpcserver.StartGRPC(cfg, grpcserver.NewWasteServer(wasteSvc, users))
	if err != nil {
		logging.Logger.Fatalf("start grpc: %v", err)
	}

	// Start HTTP
	stopHTTP, err := httpapi.StartHTTP(cfg, portalSvc)
	if err != nil {
		logging.Logger.Fatalf("start http: %v", err)
	}

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := stopHTTP(ctx); err != nil {
		logging.Logger.WithError(err).Error("http shutdown")
	}
	if err := stopGRPC(ctx); err != nil {
		logging.Logger.WithError(err).Error("grpc shutdown")
	}
}
