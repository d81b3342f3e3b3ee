package config

import (
	"io"
	"log/slog"
)

// DefaultLogLevel returns the level used by the demo's logger.
func DefaultLogLevel() slog.Level {
	return slog.LevelInfo
}

// NewLogger creates a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
