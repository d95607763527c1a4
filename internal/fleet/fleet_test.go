package fleet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityOps/internal/geo"
	"cityOps/models"
)

func seq(vals ...float64) RandFunc {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func TestStep_MovesOnlyEnRoute(t *testing.T) {
	sim := NewSimulator(WithRand(seq(1, 0)))
	moving := models.Truck{ID: "t1", Status: models.TruckStatusEnRoute, X: 250, Y: 320, Heading: 45, FuelLevel: 78}
	got := sim.Step(moving)
	assert.InDelta(t, 260, got.X, 1e-9)
	assert.InDelta(t, 310, got.Y, 1e-9)
	assert.InDelta(t, 77.9, got.FuelLevel, 1e-9)
	assert.Equal(t, 45.0, got.Heading)

	for _, st := range []models.TruckStatus{models.TruckStatusIdle, models.TruckStatusOffline, models.TruckStatusMaintenance} {
		still := models.Truck{ID: "t2", Status: st, X: 100, Y: 100, FuelLevel: 10}
		assert.Equal(t, still, sim.Step(still))
	}
}

func TestStep_ClampsToBoundsAndFloorsFuel(t *testing.T) {
	sim := NewSimulator(WithRand(seq(0.999, 0.999)))
	got := sim.Step(models.Truck{Status: models.TruckStatusEnRoute, X: 999, Y: 599, FuelLevel: 0.05})
	assert.Equal(t, 1000.0, got.X)
	assert.Equal(t, 600.0, got.Y)
	assert.Equal(t, 0.0, got.FuelLevel)

	sim = NewSimulator(WithRand(seq(0, 0)), WithBounds(geo.Bounds{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}))
	got = sim.Step(models.Truck{Status: models.TruckStatusEnRoute, X: 12, Y: 12, FuelLevel: 5})
	assert.Equal(t, geo.Point{X: 10, Y: 10}, geo.Point{X: got.X, Y: got.Y})
}

func TestAdvance_StaysInBoundsOverManySteps(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	sim := NewSimulator(WithRand(r.Float64))
	trucks := []models.Truck{
		{ID: "t1", Status: models.TruckStatusEnRoute, X: 1, Y: 1, FuelLevel: 78},
		{ID: "t2", Status: models.TruckStatusIdle, X: 100, Y: 100, FuelLevel: 95},
		{ID: "t3", Status: models.TruckStatusEnRoute, X: 999, Y: 599, FuelLevel: 32},
	}
	initial := append([]models.Truck(nil), trucks...)
	for n := 0; n < 2000; n++ {
		next, moved := sim.Advance(trucks)
		require.Equal(t, []int{0, 2}, moved)
		for i := range next {
			assert.True(t, geo.CityBounds.Contains(geo.Point{X: next[i].X, Y: next[i].Y}), "truck %s out of bounds", next[i].ID)
			assert.LessOrEqual(t, next[i].FuelLevel, trucks[i].FuelLevel)
			assert.GreaterOrEqual(t, next[i].FuelLevel, 0.0)
		}
		trucks = next
	}
	assert.Equal(t, initial[1], trucks[1])
	assert.Equal(t, 0.0, trucks[2].FuelLevel)
	assert.Equal(t, 1.0, initial[0].X, "input must not be mutated")
}

func TestComputeStats(t *testing.T) {
	pickups := []models.PickupRequest{
		{Status: models.PickupStatusRequested},
		{Status: models.PickupStatusScheduled},
		{Status: models.PickupStatusRequested},
		{Status: models.PickupStatusCompleted},
	}
	trucks := []models.Truck{
		{Status: models.TruckStatusEnRoute},
		{Status: models.TruckStatusIdle},
		{Status: models.TruckStatusEnRoute},
		{Status: models.TruckStatusMaintenance},
		{Status: models.TruckStatusOffline},
	}
	bins := []models.Bin{{FillLevel: 85}, {FillLevel: 80}, {FillLevel: 92}, {FillLevel: 15}}

	got := ComputeStats(pickups, trucks, bins)
	assert.Equal(t, models.FleetStats{
		TotalPickups:      4,
		ActiveTrucks:      2,
		IdleTrucks:        1,
		MaintenanceTrucks: 1,
		CriticalBins:      2,
		PendingRequests:   2,
	}, got)
	assert.Equal(t, models.FleetStats{}, ComputeStats(nil, nil, nil))
}
