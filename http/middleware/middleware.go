// Package middleware provides the access log, panic recovery and request id
// middleware wrapped around the application mux.
package middleware

import (
	"cmp"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/alextanhongpin/gcd/http/requestid"
	"github.com/alextanhongpin/gcd/http/response"
)

// Logger logs one line per request with the method, path, matched pattern,
// status, response size, duration and request id. A panicking request is
// logged with status 500 before the panic continues.
//
// Example:
//
//	handler = middleware.Logger(slog.Default())(handler)
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wr := response.NewResponseWriterRecorder(w)

			defer func(start time.Time) {
				code := wr.StatusCode()
				rec := recover()
				if rec != nil {
					code = http.StatusInternalServerError
				}

				reqID, _ := requestid.Context.Value(r.Context())
				level := slog.LevelInfo
				if code >= http.StatusInternalServerError {
					level = slog.LevelError
				}

				logger.LogAttrs(r.Context(), level, "HTTP request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("pattern", cmp.Or(r.Pattern, "-")),
					slog.String("remote_addr", r.RemoteAddr),
					slog.String("user_agent", r.UserAgent()),
					slog.String("request_id", reqID),
					slog.Int("status", code),
					slog.Int("size", wr.Size()),
					slog.Duration("duration", time.Since(start)),
				)

				// Re-panic to let Recovery or the server handle it.
				if rec != nil {
					panic(rec)
				}
			}(time.Now())

			next.ServeHTTP(wr, r)
		})
	}
}

// Recovery turns a handler panic into a logged 500 Internal Server Error.
// Nothing is written when the handler already sent its status line.
//
// Example:
//
//	handler = middleware.Recovery(slog.Default())(handler)
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wr := response.NewResponseWriterRecorder(w)

			defer func() {
				err := recover()
				if err == nil {
					return
				}
				if err == http.ErrAbortHandler {
					panic(err)
				}

				logger.ErrorContext(r.Context(), "HTTP handler panic",
					slog.Any("panic", err),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				if !wr.WroteHeader() {
					response.Text(wr, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(wr, r)
		})
	}
}
