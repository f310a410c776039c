package config

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// Logger builds the process logger at the given level: colored text while
// developing, JSON otherwise.
func (c *Config) Logger(w io.Writer, level slog.Level) *slog.Logger {
	if c.Development {
		return slog.New(tint.NewHandler(w, &tint.Options{Level: level}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
