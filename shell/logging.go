package shell

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging contract the domain packages depend on. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

const envLogLevel = "LOG_LEVEL"

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog.Level. Anything else yields info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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

// NewLogger builds a text logger writing to w with the level taken from LOG_LEVEL.
func NewLogger(w io.Writer) *slog.Logger {
	return NewLoggerWithLevel(w, ParseLevel(os.Getenv(envLogLevel)))
}

// NewLoggerWithLevel builds a text logger writing to w with an explicit level.
func NewLoggerWithLevel(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
