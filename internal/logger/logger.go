package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the shared structured logger.
// It is safe for concurrent use.
var Logger *slog.Logger

func init() {
	Setup(os.Stderr, os.Getenv("LOG_LEVEL"))
}

// Setup replaces the shared logger. level is debug|info|warn|error.
func Setup(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	}
	Logger = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(Logger)
	return Logger
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
