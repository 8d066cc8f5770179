// Package logger provides structured logging configuration for the duedate tool.
// It configures log/slog with JSON output and source location tracking so the
// driver's log lines stay machine-parseable next to the human-readable result.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Setup initializes the global slog logger with JSON output written to w.
func Setup(w io.Writer, level slog.Level) {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a string log level to slog.Level.
// Valid values: "debug", "info", "warn", "error".
// Unrecognized values default to info level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
