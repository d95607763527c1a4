package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	wastev1 "cityOps/api/waste/v1"
	"cityOps/models"
)

func tokenCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for --user/--role with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, exp, err := o.signToken()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.Format(time.RFC3339))
			return nil
		},
	}
}

// call runs fn against a connected client with the per-call timeout applied.
func (o *options) call(cmd *cobra.Command, fn func(context.Context, wastev1.WasteServiceClient) error) error {
	client, ctx, done, err := o.client(cmd.Context())
	if err != nil {
		return err
	}
	defer done()
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return fn(ctx, client)
}

func statsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the fleet headline numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, func(ctx context.Context, c wastev1.WasteServiceClient) error {
				resp, err := c.GetStats(ctx, &wastev1.GetStatsRequest{})
				if err != nil {
					return err
				}
				st := resp.Stats
				tw := newTable(cmd.OutOrStdout())
				fmt.Fprintf(tw, "Total pickups\t%d\n", st.TotalPickups)
				fmt.Fprintf(tw, "Pending requests\t%d\n", st.PendingRequests)
				fmt.Fprintf(tw, "Active trucks\t%d\n", st.ActiveTrucks)
				fmt.Fprintf(tw, "Idle trucks\t%d\n", st.IdleTrucks)
				fmt.Fprintf(tw, "In maintenance\t%d\n", st.MaintenanceTrucks)
				fmt.Fprintf(tw, "Critical bins\t%d\n", st.CriticalBins)
				return tw.Flush()
			})
		},
	}
}

func pickupsCmd(o *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "pickups",
		Short: "Inspect and update pickup requests",
	}
	c.AddCommand(pickupsListCmd(o), pickupsSetStatusCmd(o))
	return c
}

func pickupsListCmd(o *options) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pickup requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.call(cmd, func(ctx context.Context, c wastev1.WasteServiceClient) error {
				resp, err := c.ListPickups(ctx, &wastev1.ListPickupsRequest{Filter: filter})
				if err != nil {
					return err
				}
				if len(resp.Pickups) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "(no pickups)")
					return nil
				}
				tw := newTable(cmd.OutOrStdout())
				fmt.Fprintln(tw, "ID\tSTATUS\tTYPE\tCITIZEN\tADDRESS")
				for _, p := range resp.Pickups {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Status, p.Type, p.CitizenName, p.Address)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "ALL", "ALL, PENDING or COMPLETED")
	return cmd
}

func pickupsSetStatusCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change a pickup's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.call(cmd, func(ctx context.Context, c wastev1.WasteServiceClient) error {
				resp, err := c.UpdatePickupStatus(ctx, &wastev1.UpdatePickupStatusRequest{Id: args[0], Status: args[1]})
				if err != nil {
					return err
				}
				p := resp.Pickup
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", p.ID, p.Status)
				return nil
			})
		},
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printTrucks(w io.Writer, trucks []models.Truck, moved map[string]float64) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tPLATE\tDRIVER\tSTATUS\tX\tY\tFUEL\tMOVED")
	for _, t := range trucks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\n",
			t.ID, t.PlateNumber, t.DriverName, t.Status, t.X, t.Y, t.FuelLevel, moved[t.ID])
	}
	return tw.Flush()
}
