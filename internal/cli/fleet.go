package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	wastev1 "cityOps/api/waste/v1"
	"cityOps/internal/geo"
	"cityOps/models"
)

func fleetCmd(o *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "fleet",
		Short: "Watch the truck fleet",
	}
	c.AddCommand(fleetListCmd(o), fleetWatchCmd(o))
	return c
}

func fleetListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trucks. Each call advances the simulation one step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, func(ctx context.Context, c wastev1.WasteServiceClient) error {
				resp, err := c.ListTrucks(ctx, &wastev1.ListTrucksRequest{})
				if err != nil {
					return err
				}
				return printTrucks(cmd.OutOrStdout(), resp.Trucks, nil)
			})
		},
	}
}

func fleetWatchCmd(o *options) *cobra.Command {
	var (
		interval time.Duration
		count    int
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the fleet on a schedule and show how far each truck moved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interval < time.Second {
				return fmt.Errorf("interval must be at least 1s, got %s", interval)
			}
			client, ctx, done, err := o.client(cmd.Context())
			if err != nil {
				return err
			}
			defer done()
			w := &watcher{client: client, out: cmd.OutOrStdout(), timeout: o.timeout, last: map[string]geo.Point{}}
			return w.run(ctx, "@every "+interval.String(), count)
		},
	}
	cmd.Flags().DurationVarP(&interval, "interval", "i", 2*time.Second, "poll interval")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after n polls (0 runs until interrupted)")
	return cmd
}

type watcher struct {
	client  wastev1.WasteServiceClient
	out     io.Writer
	timeout time.Duration

	mu    sync.Mutex
	polls int
	last  map[string]geo.Point
	err   error
}

// run polls on schedule until count polls have printed, a poll fails or ctx ends.
func (w *watcher) run(ctx context.Context, schedule string, count int) error {
	stop := make(chan struct{})
	var once sync.Once
	finish := func() { once.Do(func() { close(stop) }) }

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(schedule, func() {
		if !w.poll(ctx) || (count > 0 && w.pollCount() >= count) {
			finish()
		}
	}); err != nil {
		return fmt.Errorf("schedule %q: %w", schedule, err)
	}
	c.Start()

	select {
	case <-stop:
	case <-ctx.Done():
	}
	<-c.Stop().Done()

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *watcher) pollCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.polls
}

// poll fetches the fleet once and prints it. It reports false on error.
func (w *watcher) poll(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	resp, err := w.client.ListTrucks(ctx, &wastev1.ListTrucksRequest{})

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.err = err
		return false
	}
	w.polls++
	moved := w.track(resp.Trucks)
	fmt.Fprintf(w.out, "poll %d at %s\n", w.polls, time.Now().Format(time.TimeOnly))
	if err := printTrucks(w.out, resp.Trucks, moved); err != nil {
		w.err = err
		return false
	}
	return true
}

// track returns the distance each truck covered since the previous poll and
// remembers the new positions.
func (w *watcher) track(trucks []models.Truck) map[string]float64 {
	moved := make(map[string]float64, len(trucks))
	for _, t := range trucks {
		p := geo.Point{X: t.X, Y: t.Y}
		if prev, ok := w.last[t.ID]; ok {
			moved[t.ID] = geo.Distance(prev, p)
		}
		w.last[t.ID] = p
	}
	return moved
}
