package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWait_NoneReturnsImmediately(t *testing.T) {
	start := time.Now()
	require.NoError(t, None.Wait(context.Background(), ListPickups))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestWait_SleepsForConfiguredDelay(t *testing.T) {
	p := Profile{ListBins: 30 * time.Millisecond}
	start := time.Now()
	require.NoError(t, p.Wait(context.Background(), ListBins))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestWait_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := Default.Wait(ctx, Stats)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDefault_MatchesDashboardTimings(t *testing.T) {
	assert.Equal(t, 600*time.Millisecond, Default[ListPickups])
	assert.Equal(t, 400*time.Millisecond, Default[UpdatePickupStatus])
	assert.Equal(t, 300*time.Millisecond, Default[ListTrucks])
	assert.Equal(t, 500*time.Millisecond, Default[ListBins])
	assert.Equal(t, 400*time.Millisecond, Default[ListRoutes])
	assert.Equal(t, 600*time.Millisecond, Default[Stats])
}
