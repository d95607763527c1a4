package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	wastev1 "cityOps/api/waste/v1"
	"cityOps/internal/latency"
	"cityOps/internal/seed"
	"cityOps/internal/testutil"
	"cityOps/internal/waste"
	"cityOps/repository"
)

const testSecret = "grpc-secret"

type harness struct {
	client wastev1.WasteServiceClient
	health healthpb.HealthClient
}

func newHarness(t *testing.T, name string) *harness {
	t.Helper()
	d := testutil.OpenInMemoryDB(t, name)
	users := repository.NewUserRepository(d)
	ds, err := seed.Load("")
	require.NoError(t, err)
	require.NoError(t, seed.Apply(context.Background(), seed.Repos{
		Users:       users,
		Pickups:     repository.NewPickupRepository(d),
		Trucks:      repository.NewTruckRepository(d),
		Bins:        repository.NewBinRepository(d),
		Routes:      repository.NewRouteRepository(d),
		Properties:  repository.NewPropertyRepository(d),
		Maintenance: repository.NewMaintenanceRepository(d),
		Payments:    repository.NewPaymentRepository(d),
	}, ds, time.Now()))

	svc := waste.NewService(d, waste.WithLatency(latency.None))
	srv := NewServer(testSecret, NewWasteServer(svc, users))
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return &harness{client: wastev1.NewWasteServiceClient(conn), health: healthpb.NewHealthClient(conn)}
}

func asUser(t *testing.T, id, kind string) context.Context {
	return testutil.OutgoingBearer(context.Background(), testutil.GenerateJWTHS256(t, testSecret, id, kind))
}

func TestHealth_IsPublic(t *testing.T) {
	h := newHarness(t, "grpchealth")
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: wastev1.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestWasteService_RequiresToken(t *testing.T) {
	h := newHarness(t, "grpcnotoken")
	_, err := h.client.ListBins(context.Background(), &wastev1.ListBinsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestWasteService_ReadsOverJSONCodec(t *testing.T) {
	h := newHarness(t, "grpcreads")
	ctx := asUser(t, "w4", "citizen")

	pickups, err := h.client.ListPickups(ctx, &wastev1.ListPickupsRequest{Filter: "pending"})
	require.NoError(t, err)
	assert.Len(t, pickups.Pickups, 4)

	trucks, err := h.client.ListTrucks(ctx, &wastev1.ListTrucksRequest{})
	require.NoError(t, err)
	require.Len(t, trucks.Trucks, 4)
	assert.Equal(t, "KLN-101", trucks.Trucks[0].PlateNumber)

	bins, err := h.client.ListBins(ctx, &wastev1.ListBinsRequest{})
	require.NoError(t, err)
	assert.Len(t, bins.Bins, 5)

	routes, err := h.client.ListRoutes(ctx, &wastev1.ListRoutesRequest{})
	require.NoError(t, err)
	assert.Len(t, routes.Routes, 3)

	st, err := h.client.GetStats(ctx, &wastev1.GetStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 5, st.Stats.TotalPickups)
	assert.Equal(t, 2, st.Stats.CriticalBins)

	_, err = h.client.ListPickups(ctx, &wastev1.ListPickupsRequest{Filter: "someday"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestWasteService_CreatePickup(t *testing.T) {
	h := newHarness(t, "grpccreate")
	ctx := asUser(t, "w4", "citizen")

	resp, err := h.client.CreatePickup(ctx, &wastev1.CreatePickupRequest{CitizenName: "Dana", Address: "9 Elm", Type: "bulky", X: 5, Y: 6})
	require.NoError(t, err)
	assert.Equal(t, "REQUESTED", string(resp.Pickup.Status))
	assert.Equal(t, "BULKY", string(resp.Pickup.Type))

	_, err = h.client.CreatePickup(ctx, &wastev1.CreatePickupRequest{Address: "no name"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestWasteService_StatusMutations(t *testing.T) {
	h := newHarness(t, "grpcmutate")

	citizen := asUser(t, "w4", "citizen")
	_, err := h.client.UpdatePickupStatus(citizen, &wastev1.UpdatePickupStatusRequest{Id: "p1", Status: "COMPLETED"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	// Token claims driver but w4 is stored as a citizen.
	spoofed := asUser(t, "w4", "driver")
	_, err = h.client.UpdatePickupStatus(spoofed, &wastev1.UpdatePickupStatusRequest{Id: "p1", Status: "COMPLETED"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	driver := asUser(t, "w3", "driver")
	resp, err := h.client.UpdatePickupStatus(driver, &wastev1.UpdatePickupStatusRequest{Id: "p1", Status: "COMPLETED"})
	require.NoError(t, err)
	require.NotNil(t, resp.Pickup.CompletedAt)

	_, err = h.client.UpdatePickupStatus(driver, &wastev1.UpdatePickupStatusRequest{Id: "nope", Status: "COMPLETED"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.client.UpdatePickupStatus(driver, &wastev1.UpdatePickupStatusRequest{Id: "p1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	operator := asUser(t, "w2", "operator")
	tr, err := h.client.UpdateTruckStatus(operator, &wastev1.UpdateTruckStatusRequest{Id: "t4", Status: "IDLE"})
	require.NoError(t, err)
	assert.Equal(t, "IDLE", string(tr.Truck.Status))

	admin := asUser(t, "w1", "admin")
	rt, err := h.client.UpdateRouteStatus(admin, &wastev1.UpdateRouteStatusRequest{Id: "r2", Status: "COMPLETED"})
	require.NoError(t, err)
	require.NotNil(t, rt.Route.CompletedAt)

	st, err := h.client.GetStats(admin, &wastev1.GetStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, st.Stats.IdleTrucks)
	assert.Equal(t, 0, st.Stats.MaintenanceTrucks)
	assert.Equal(t, 1, st.Stats.PendingRequests)
}
