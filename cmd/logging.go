package cmd

import (
	"io"
	"log/slog"
)

// newLogger returns the diagnostic logger. Diagnostics go to stderr so that
// command output on stdout stays machine-readable.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
