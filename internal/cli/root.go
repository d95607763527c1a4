// Package cli implements cityctl, an operator console for the waste gRPC API.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	wastev1 "cityOps/api/waste/v1"
	"cityOps/internal/auth"
	"cityOps/internal/config"
	"cityOps/internal/logging"
	"cityOps/models"
)

// DialFunc opens a client connection to addr.
type DialFunc func(addr string) (*grpc.ClientConn, error)

func defaultDial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

type options struct {
	addr     string
	token    string
	user     string
	role     string
	logLevel string
	timeout  time.Duration

	secret string
	ttl    time.Duration
	dial   DialFunc
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd(defaultDial).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(dial DialFunc) *cobra.Command {
	o := &options{dial: dial}

	cmd := &cobra.Command{
		Use:          "cityctl",
		Short:        "Operator console for the waste fleet API",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logging.Init("cityctl", o.logLevel)
			cfg, err := config.LoadWithDefaults()
			if err != nil {
				return err
			}
			o.secret = cfg.Auth.JWTSecret
			o.ttl = cfg.Auth.TokenTTL
			if o.addr == "" {
				o.addr = cfg.GRPC.Address
			}
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&o.addr, "addr", "", "gRPC address (default GRPC_ADDRESS or :50051)")
	f.StringVar(&o.token, "token", "", "Bearer token; signed locally from --user/--role when empty")
	f.StringVar(&o.user, "user", "w1", "user id to sign tokens for")
	f.StringVar(&o.role, "role", string(models.RoleAdmin), "role to sign tokens with")
	f.StringVar(&o.logLevel, "log-level", "warn", "log level")
	f.DurationVar(&o.timeout, "timeout", 10*time.Second, "per-call timeout")

	cmd.AddCommand(tokenCmd(o), statsCmd(o), pickupsCmd(o), fleetCmd(o))
	return cmd
}

// signToken issues a token for --user/--role with the configured secret.
func (o *options) signToken() (string, time.Time, error) {
	return auth.Issue(o.secret, &models.User{ID: o.user, Role: models.RoleFromKind(o.role)}, o.ttl)
}

// client dials the server and returns a context that carries the bearer
// token. The returned close func releases the connection.
func (o *options) client(ctx context.Context) (wastev1.WasteServiceClient, context.Context, func(), error) {
	tok := o.token
	if tok == "" {
		var err error
		if tok, _, err = o.signToken(); err != nil {
			return nil, nil, nil, fmt.Errorf("sign token: %w", err)
		}
	}
	conn, err := o.dial(o.addr)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("dial %s: %w", o.addr, err)
	}
	return wastev1.NewWasteServiceClient(conn), auth.WithBearer(ctx, tok), func() { _ = conn.Close() }, nil
}
