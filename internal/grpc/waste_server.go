package grpcserver

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	wastev1 "cityOps/api/waste/v1"
	"cityOps/internal/auth"
	"cityOps/internal/waste"
	"cityOps/models"
	"cityOps/repository"
)

// staffRoles may change pickup, truck and route status.
var staffRoles = []models.Role{models.RoleAdmin, models.RoleOperator, models.RoleDriver}

// WasteServer implements WasteService on top of waste.Service.
type WasteServer struct {
	wastev1.UnimplementedWasteServiceServer
	Waste    *waste.Service
	Users    repository.UserRepositoryI
	validate *validator.Validate
}

func NewWasteServer(svc *waste.Service, users repository.UserRepositoryI) *WasteServer {
	return &WasteServer{Waste: svc, Users: users, validate: validator.New()}
}

func (s *WasteServer) ListPickups(ctx context.Context, req *wastev1.ListPickupsRequest) (*wastev1.ListPickupsResponse, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	filter, err := waste.ParsePickupFilter(req.GetFilter())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	pickups, err := s.Waste.ListPickups(ctx, filter)
	if err != nil {
		return nil, toStatus(err, "list pickups")
	}
	return &wastev1.ListPickupsResponse{Pickups: pickups}, nil
}

func (s *WasteServer) CreatePickup(ctx context.Context, req *wastev1.CreatePickupRequest) (*wastev1.CreatePickupResponse, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid pickup: %v", err)
	}
	p, err := s.Waste.CreatePickup(ctx, waste.NewPickup{
		CitizenName:  req.CitizenName,
		Address:      req.Address,
		Type:         models.PickupType(strings.ToUpper(req.Type)),
		ScheduledFor: req.ScheduledFor,
		X:            req.X,
		Y:            req.Y,
	})
	if err != nil {
		return nil, toStatus(err, "create pickup")
	}
	return &wastev1.CreatePickupResponse{Pickup: p}, nil
}

func (s *WasteServer) UpdatePickupStatus(ctx context.Context, req *wastev1.UpdatePickupStatusRequest) (*wastev1.UpdatePickupStatusResponse, error) {
	if err := requireIDAndStatus(req.GetId(), req.GetStatus()); err != nil {
		return nil, err
	}
	if _, err := auth.RequireUserRole(ctx, s.Users, staffRoles...); err != nil {
		return nil, err
	}
	p, err := s.Waste.UpdatePickupStatus(ctx, req.Id, models.PickupStatus(req.Status))
	if err != nil {
		return nil, toStatus(err, "update pickup")
	}
	return &wastev1.UpdatePickupStatusResponse{Pickup: p}, nil
}

func (s *WasteServer) ListTrucks(ctx context.Context, _ *wastev1.ListTrucksRequest) (*wastev1.ListTrucksResponse, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	trucks, err := s.Waste.ListTrucks(ctx)
	if err != nil {
		return nil, toStatus(err, "list trucks")
	}
	return &wastev1.ListTrucksResponse{Trucks: trucks}, nil
}

func (s *WasteServer) UpdateTruckStatus(ctx context.Context, req *wastev1.UpdateTruckStatusRequest) (*wastev1.UpdateTruckStatusResponse, error) {
	if err := requireIDAndStatus(req.GetId(), req.GetStatus()); err != nil {
		return nil, err
	}
	if _, err := auth.RequireUserRole(ctx, s.Users, staffRoles...); err != nil {
		return nil, err
	}
	t, err := s.Waste.UpdateTruckStatus(ctx, req.Id, models.TruckStatus(req.Status))
	if err != nil {
		return nil, toStatus(err, "update truck")
	}
	return &wastev1.UpdateTruckStatusResponse{Truck: t}, nil
}

func (s *WasteServer) ListBins(ctx context.Context, _ *wastev1.ListBinsRequest) (*wastev1.ListBinsResponse, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	bins, err := s.Waste.ListBins(ctx)
	if err != nil {
		return nil, toStatus(err, "list bins")
	}
	return &wastev1.ListBinsResponse{Bins: bins}, nil
}

func (s *WasteServer) ListRoutes(ctx context.Context, _ *wastev1.ListRoutesRequest) (*wastev1.ListRoutesResponse, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	routes, err := s.Waste.ListRoutes(ctx)
	if err != nil {
		return nil, toStatus(err, "list routes")
	}
	return &wastev1.ListRoutesResponse{Routes: routes}, nil
}

func (s *WasteServer) UpdateRouteStatus(ctx context.Context, req *wastev1.UpdateRouteStatusRequest) (*wastev1.UpdateRouteStatusResponse, error) {
	if err := requireIDAndStatus(req.GetId(), req.GetStatus()); err != nil {
		return nil, err
	}
	if _, err := auth.RequireUserRole(ctx, s.Users, staffRoles...); err != nil {
		return nil, err
	}
	r, err := s.Waste.UpdateRouteStatus(ctx, req.Id, models.RouteStatus(req.Status))
	if err != nil {
		return nil, toStatus(err, "update route")
	}
	return &wastev1.UpdateRouteStatusResponse{Route: r}, nil
}

func (s *WasteServer) GetStats(ctx context.Context, _ *wastev1.GetStatsRequest) (*wastev1.GetStatsResponse, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}
	st, err := s.Waste.Stats(ctx)
	if err != nil {
		return nil, toStatus(err, "stats")
	}
	return &wastev1.GetStatsResponse{Stats: st}, nil
}

func requireIDAndStatus(id, st string) error {
	if strings.TrimSpace(id) == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}
	if strings.TrimSpace(st) == "" {
		return status.Error(codes.InvalidArgument, "status is required")
	}
	return nil
}

// toStatus maps service errors onto gRPC codes.
func toStatus(err error, op string) error {
	switch {
	case errors.Is(err, waste.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, op+": canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, op+": deadline exceeded")
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}
