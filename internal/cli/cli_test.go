package cli

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"cityOps/internal/auth"
	"cityOps/internal/geo"
	grpcserver "cityOps/internal/grpc"
	"cityOps/internal/latency"
	"cityOps/internal/logging"
	"cityOps/internal/seed"
	"cityOps/internal/testutil"
	"cityOps/internal/waste"
	"cityOps/models"
	"cityOps/repository"
)

const testSecret = "cli-secret"

// serve starts a seeded waste server on an in-memory listener and returns a
// dialer for it.
func serve(t *testing.T, name string) DialFunc {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
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

	srv := grpcserver.NewServer(testSecret, grpcserver.NewWasteServer(waste.NewService(d, waste.WithLatency(latency.None)), users))
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return func(string) (*grpc.ClientConn, error) {
		return grpc.NewClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
	}
}

func run(t *testing.T, dial DialFunc, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(dial)
	cmd.SetArgs(append(args, "--log-level", "error"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	logging.Silence()
	return out.String(), err
}

func TestToken_SignsWithConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	out, err := run(t, defaultDial, "token", "--user", "w2", "--role", "operator")
	require.NoError(t, err)

	p, err := auth.ParseBearer("Bearer "+strings.TrimSpace(out), testSecret)
	require.NoError(t, err)
	assert.Equal(t, "w2", p.Name)
	assert.Equal(t, models.RoleOperator, p.Role())
}

func TestStats(t *testing.T) {
	dial := serve(t, "clistats")
	out, err := run(t, dial, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total pickups")
	assert.Regexp(t, `Total pickups\s+5`, out)
}

func TestPickups_ListAndSetStatus(t *testing.T) {
	dial := serve(t, "clipickups")

	out, err := run(t, dial, "pickups", "list", "--filter", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "p3")
	assert.NotContains(t, out, "p1 ")

	out, err = run(t, dial, "pickups", "set-status", "p1", "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, "p1 -> COMPLETED\n", out)

	out, err = run(t, dial, "pickups", "list", "-f", "COMPLETED")
	require.NoError(t, err)
	assert.Contains(t, out, "p1")
}

func TestPickups_SetStatusNeedsStaffRole(t *testing.T) {
	dial := serve(t, "clicitizen")
	_, err := run(t, dial, "pickups", "set-status", "p1", "COMPLETED", "--user", "w4", "--role", "citizen")
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = run(t, dial, "pickups", "set-status", "p1")
	assert.Error(t, err)
}

func TestFleet_List(t *testing.T) {
	dial := serve(t, "clifleet")
	out, err := run(t, dial, "fleet", "list")
	require.NoError(t, err)
	for _, id := range []string{"t1", "t2", "t3", "t4"} {
		assert.Contains(t, out, id)
	}
}

func TestFleet_WatchStopsAfterCount(t *testing.T) {
	dial := serve(t, "cliwatch")
	out, err := run(t, dial, "fleet", "watch", "--interval", "1s", "--count", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "poll 1 at")
	assert.Contains(t, out, "poll 2 at")
	assert.NotContains(t, out, "poll 3 at")
}

func TestFleet_WatchRejectsSubSecondInterval(t *testing.T) {
	_, err := run(t, defaultDial, "fleet", "watch", "--interval", "500ms")
	assert.ErrorContains(t, err, "at least 1s")
}

func TestWatcher_TrackMeasuresMovement(t *testing.T) {
	w := &watcher{last: map[string]geo.Point{}}
	first := w.track([]models.Truck{{ID: "t1", X: 0, Y: 0}})
	assert.Empty(t, first)

	moved := w.track([]models.Truck{{ID: "t1", X: 3, Y: 4}, {ID: "t9", X: 1, Y: 1}})
	assert.InDelta(t, 5.0, moved["t1"], 1e-9)
	_, seen := moved["t9"]
	assert.False(t, seen)
}
