package grpcserver

import (
	"context"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	wastev1 "cityOps/api/waste/v1"
	"cityOps/internal/auth"
	"cityOps/internal/config"
	"cityOps/internal/logging"
)

const healthCheckMethod = "/grpc.health.v1.Health/Check"

// NewServer builds a gRPC server with WasteService and the health service
// registered. Every method except the health check requires a Bearer JWT.
func NewServer(secret string, ws *WasteServer) *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		logUnary,
		auth.NewUnaryAuthInterceptor(secret, healthCheckMethod),
	))
	wastev1.RegisterWasteServiceServer(srv, ws)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(wastev1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}

// StartGRPC starts the gRPC server on the configured address and returns a shutdown function.
func StartGRPC(cfg *config.Config, ws *WasteServer) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.GRPC.Address
	if addr == "" {
		addr = ":50051"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	// Plaintext; terminate TLS in front of the process.
	srv := NewServer(cfg.Auth.JWTSecret, ws)
	go func() {
		if err := srv.Serve(lis); err != nil {
			logging.Logger.WithError(err).Error("gRPC server stopped")
		}
	}()
	logging.Logger.WithField("addr", lis.Addr().String()).Info("gRPC server listening")

	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() { srv.GracefulStop(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return ctx.Err()
		}
	}, nil
}

func logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	entry := logging.Logger.WithFields(logrus.Fields{
		"method":   info.FullMethod,
		"code":     status.Code(err).String(),
		"duration": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("gRPC call failed")
	} else {
		entry.Debug("gRPC call")
	}
	return resp, err
}
