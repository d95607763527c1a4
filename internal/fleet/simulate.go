// Package fleet holds the truck movement simulation and the waste dashboard
// aggregates.
package fleet

import (
	"math"
	"math/rand"

	"cityOps/internal/geo"
	"cityOps/models"
)

const (
	// MaxStep is the widest jitter applied to each axis per step.
	MaxStep = 20.0
	// FuelPerStep is the fuel burned by a moving truck per step.
	FuelPerStep = 0.1
)

// RandFunc returns a uniform value in [0, 1).
type RandFunc func() float64

// Simulator moves EN_ROUTE trucks by a bounded random walk.
type Simulator struct {
	rnd    RandFunc
	bounds geo.Bounds
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRand replaces the random source.
func WithRand(f RandFunc) Option {
	return func(s *Simulator) { s.rnd = f }
}

// WithBounds replaces the map bounds.
func WithBounds(b geo.Bounds) Option {
	return func(s *Simulator) { s.bounds = b }
}

// NewSimulator returns a simulator over geo.CityBounds using math/rand.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{rnd: rand.Float64, bounds: geo.CityBounds}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Step returns t after one tick. Only EN_ROUTE trucks move or burn fuel;
// heading is left as is.
func (s *Simulator) Step(t models.Truck) models.Truck {
	if t.Status != models.TruckStatusEnRoute {
		return t
	}
	dx := (s.rnd() - 0.5) * MaxStep
	dy := (s.rnd() - 0.5) * MaxStep
	p := s.bounds.Clamp(geo.Point{X: t.X + dx, Y: t.Y + dy})
	t.X, t.Y = p.X, p.Y
	t.FuelLevel = math.Max(0, t.FuelLevel-FuelPerStep)
	return t
}

// Advance steps every truck and returns the new snapshot along with the
// indexes of the trucks that moved. The input slice is not modified.
func (s *Simulator) Advance(trucks []models.Truck) ([]models.Truck, []int) {
	out := make([]models.Truck, len(trucks))
	moved := make([]int, 0, len(trucks))
	for i, t := range trucks {
		out[i] = s.Step(t)
		if t.Status == models.TruckStatusEnRoute {
			moved = append(moved, i)
		}
	}
	return out, moved
}
