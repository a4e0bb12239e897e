// Package server runs HTTP servers with sane timeouts and a graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	writeTimeout      = 5 * time.Second
	readTimeout       = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// New returns a new server with the default settings, then applies opts in
// order.
func New(addr string, handler http.Handler, opts ...Option) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		Handler:           handler,
	}

	for _, opt := range opts {
		opt.Apply(srv)
	}

	return srv
}

// Run binds every server to its address and serves them until ctx is done.
// See Serve.
func Run(ctx context.Context, shutdownTimeout time.Duration, servers ...*http.Server) error {
	lns, err := Listen(servers...)
	if err != nil {
		return err
	}

	return Serve(ctx, shutdownTimeout, servers, lns)
}

// Listen binds the address of every server. On failure the listeners
// already bound are closed.
func Listen(servers ...*http.Server) ([]net.Listener, error) {
	lns := make([]net.Listener, 0, len(servers))
	for _, srv := range servers {
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			for _, l := range lns {
				l.Close()
			}

			return nil, err
		}

		lns = append(lns, ln)
	}

	return lns, nil
}

// Serve serves servers[i] on lns[i] until ctx is done or any server fails.
// All servers are then shut down, and in-flight requests get
// shutdownTimeout to complete.
func Serve(ctx context.Context, shutdownTimeout time.Duration, servers []*http.Server, lns []net.Listener) error {
	if len(servers) != len(lns) {
		return errors.New("server: servers and listeners differ in length")
	}

	g, gctx := errgroup.WithContext(ctx)

	for i, srv := range servers {
		ln := lns[i]
		if srv.BaseContext == nil {
			srv.BaseContext = func(_ net.Listener) context.Context {
				// https://www.rudderstack.com/blog/implementing-graceful-shutdown-in-go/
				// Pass the main ctx as the context for every request.
				return ctx
			}
		}

		g.Go(func() error {
			slog.Default().InfoContext(ctx, "Server started",
				slog.String("addr", ln.Addr().String()))

			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Default().ErrorContext(ctx, "Error starting server",
					slog.String("err", err.Error()),
					slog.String("addr", ln.Addr().String()))

				return err
			}

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(ctx); err != nil {
				slog.Default().WarnContext(ctx, "Error shutting down server",
					slog.String("err", err.Error()),
					slog.String("addr", srv.Addr))

				errs = append(errs, err)
			}
		}

		return errors.Join(errs...)
	})

	return g.Wait()
}
