package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured slog.Logger writing JSON to stdout. Debug
// mode lowers the level so session transitions and skipped ticks are visible.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
