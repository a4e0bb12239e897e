// Package telemetry builds the structured logger of the server and links its
// records to OpenTelemetry traces.
package telemetry

import (
	"io"
	"log/slog"
	"time"
)

// NewLogger returns a JSON logger writing to w. Timestamps are UTC in
// RFC3339Nano. Debug enables the debug level and source locations.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	addSource := false
	if debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}

			return a
		},
	})

	return slog.New(NewTraceHandler(h))
}
