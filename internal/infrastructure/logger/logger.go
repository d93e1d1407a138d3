package logger

import (
	"io"
	"log/slog"
	"os"

	ports "gh-pr-mirror/internal/domain/ports/output"
)

var _ ports.Logger = (*Logger)(nil)

type Logger struct {
	*slog.Logger
}

// New builds a logger for env: text at debug for dev/local, JSON at info for
// prod, warnings only for test.
func New(env string) *Logger {
	var h slog.Handler
	switch env {
	case "prod", "production":
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	case "test":
		h = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn})
	default:
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return &Logger{Logger: slog.New(h)}
}

func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{Logger: slog.New(h)}
}

func (l *Logger) With(args ...any) ports.Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}
