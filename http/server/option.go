package server

import (
	"log/slog"
	"net/http"
	"time"
)

type Option interface {
	Apply(s *http.Server)
}

type WriteTimeout time.Duration

func (r WriteTimeout) Apply(s *http.Server) {
	s.WriteTimeout = time.Duration(r)
}

type ReadTimeout time.Duration

func (r ReadTimeout) Apply(s *http.Server) {
	s.ReadTimeout = time.Duration(r)
}

type ReadHeaderTimeout time.Duration

func (r ReadHeaderTimeout) Apply(s *http.Server) {
	s.ReadHeaderTimeout = time.Duration(r)
}

// MaxBytes limits the size of request bodies. Reading past the limit fails
// with *http.MaxBytesError.
type MaxBytes int64

func (r MaxBytes) Apply(s *http.Server) {
	s.Handler = http.MaxBytesHandler(s.Handler, int64(r))
}

// ErrorLog routes the server's internal errors, such as TLS handshake or
// connection errors, to the logger at the error level.
type ErrorLog struct {
	Logger *slog.Logger
}

func (r ErrorLog) Apply(s *http.Server) {
	s.ErrorLog = slog.NewLogLogger(r.Logger.Handler(), slog.LevelError)
}
