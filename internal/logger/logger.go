// Package logger builds the structured logger shared by all binaries
// and provides attribute helpers for the recurring log fields.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config - logger settings loaded from environment.
type Config struct {
	// Level - one of debug, info, warn, error
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format - text or json
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// New - builds logger writing to stdout.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg)
}

// NewWithWriter - builds logger writing to w.
func NewWithWriter(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard - returns logger which drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
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
