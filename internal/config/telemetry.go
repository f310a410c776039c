package config

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/vancomm/minesweeper/internal/mines"
)

// TelemetryAttributes describes the game setup for the trace resource.
func (c *Config) TelemetryAttributes() []attribute.KeyValue {
	names := make([]string, 0, len(c.Presets))
	for _, p := range c.Presets {
		names = append(names, p.Name+"="+p.Params().String())
	}
	return []attribute.KeyValue{
		attribute.StringSlice("mines.presets", names),
		attribute.Int("mines.max_size", mines.MaxSize),
		attribute.Bool("mines.seeded", c.Seed != 0),
		attribute.Bool("mines.journal", c.Journal.Enabled()),
		attribute.Bool("mines.development", c.Development),
	}
}
