package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog so call sites can log key-value pairs without caring about
// handler setup.
type Logger struct {
	*slog.Logger
}

func NewLogger(level string) *Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return &Logger{slog.New(handler)}
}
