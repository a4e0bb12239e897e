package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alextanhongpin/gcd/config"
	"github.com/alextanhongpin/gcd/http/handler"
	"github.com/alextanhongpin/gcd/http/middleware"
	"github.com/alextanhongpin/gcd/http/server"
	"github.com/alextanhongpin/gcd/metrics"
	"github.com/alextanhongpin/gcd/telemetry"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// Version labels the request metrics. Overridden at build time with
// -ldflags "-X github.com/alextanhongpin/gcd/cli.Version=...".
var Version = "dev"

// ExecuteServer runs the server with the process arguments until SIGINT or
// SIGTERM, and exits with its status code.
func ExecuteServer() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := RunServer(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

// RunServer parses the flags in args, then serves the calculator until ctx
// is done. It returns the process exit code.
func RunServer(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newServerCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, Message(err))
		return 1
	}

	return 0
}

// NewHandler returns the calculator routes wrapped in the request
// middleware. Recovery is outermost: the access log and the metrics record
// a panicking request as a 500 and pass the panic on to it.
func NewHandler(logger *slog.Logger, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()
	handler.NewGCD(logger, m).Register(mux)

	return middleware.Chain(mux,
		middleware.Recovery(logger),
		middleware.RequestID(RequestIDHeader, uuid.NewString),
		middleware.Logger(logger),
		m.Middleware,
	)
}

func newServerCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "gcd-server",
		Short:         "Serve the GCD calculator over HTTP",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			return serve(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Addr, "addr", cfg.Addr, "address of the calculator listener")
	f.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "address of the Prometheus listener, disabled when empty")
	f.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "maximum duration for reading a request")
	f.DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "maximum duration for writing a response")
	f.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "grace period for in-flight requests on shutdown")
	f.Int64Var(&cfg.MaxBodyBytes, "max-body-bytes", cfg.MaxBodyBytes, "maximum size of a request body")
	f.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log at debug level with source locations")

	return cmd
}

func serve(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	logger := telemetry.NewLogger(stderr, cfg.Debug)
	slog.SetDefault(logger)

	m := metrics.New(Version)

	opts := []server.Option{
		server.ReadTimeout(cfg.ReadTimeout),
		server.WriteTimeout(cfg.WriteTimeout),
		server.ErrorLog{Logger: logger},
	}

	servers := []*http.Server{
		server.New(cfg.Addr, NewHandler(logger, m), append(opts, server.MaxBytes(cfg.MaxBodyBytes))...),
	}
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("GET /metrics", m.Handler())
		servers = append(servers, server.New(cfg.MetricsAddr, mux, opts...))
	}

	lns, err := server.Listen(servers...)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Serving on http://%s...\n", cfg.Addr)

	return server.Serve(ctx, cfg.ShutdownTimeout, servers, lns)
}
