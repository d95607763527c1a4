// Package latency adds the artificial per-operation delays of the mock store.
package latency

import (
	"context"
	"time"
)

// Op names a store operation that carries a delay.
type Op string

const (
	ListPickups        Op = "list_pickups"
	UpdatePickupStatus Op = "update_pickup_status"
	ListTrucks         Op = "list_trucks"
	ListBins           Op = "list_bins"
	ListRoutes         Op = "list_routes"
	Stats              Op = "stats"
)

// Profile maps operations to delays. Operations without an entry do not wait.
type Profile map[Op]time.Duration

// Default mirrors the response times of the dashboard mock API.
var Default = Profile{
	ListPickups:        600 * time.Millisecond,
	UpdatePickupStatus: 400 * time.Millisecond,
	ListTrucks:         300 * time.Millisecond,
	ListBins:           500 * time.Millisecond,
	ListRoutes:         400 * time.Millisecond,
	Stats:              600 * time.Millisecond,
}

// None disables every delay.
var None = Profile{}

// Wait blocks for the delay of op or until ctx is done.
func (p Profile) Wait(ctx context.Context, op Op) error {
	d := p[op]
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
