package utils

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger: JSON lines in release mode, text
// otherwise. It is also installed as the slog default.
func NewLogger(ginMode string) *slog.Logger {
	var handler slog.Handler
	if ginMode == "release" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
