// Package logging provides structured logging configuration for scripthost.
//
// Logs are JSON on stderr so a host application embedding the plugin can
// keep its own stdout clean; levels come from the config file. The
// configured logger is installed as the slog default and also returned
// for explicit passing.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogger creates and configures a structured JSON logger at the
// given level ("debug", "info", "warn", "error", case-insensitive;
// anything else means "info") and installs it as the slog default.
func SetupLogger(level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)

	return logger
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent returns a logger tagging all records with a component
// attribute, e.g. "procrun" or "env".
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(slog.String("component", component))
}
