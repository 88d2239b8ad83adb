// Package logger builds the slog logger used across the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a configured slog.Logger writing to stderr.
// When verbose is true, the logger emits debug-level logs; otherwise the
// level comes from level (debug, info, warn, error), defaulting to info.
func New(verbose bool, level string) *slog.Logger {
	return NewWithWriter(os.Stderr, verbose, level)
}

// NewWithWriter is New with a custom writer.
func NewWithWriter(w io.Writer, verbose bool, level string) *slog.Logger {
	lvl := ParseLevel(level)
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
