// Package cli implements the sketchboard command-line interface.
//
// Commands:
//   - run: open the drawing window
//   - render: replay a JSON input script headlessly and write PNG or PDF
//
// All commands accept --verbose (-v) for debug logging and --config for a
// TOML settings file. The logger travels through the command context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns a timestamped logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
