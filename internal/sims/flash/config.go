package flash

import (
	"strconv"

	"flash-ca/internal/core"
)

// Config controls the dimensions and seed of a randomly filled swarm.
type Config struct {
	Width  int
	Height int
	Seed   int64
}

// DefaultConfig returns the standard 10x10 configuration.
func DefaultConfig() Config {
	return Config{Width: 10, Height: 10, Seed: 1}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Invalid values keep their defaults, as does a width and height pair
// whose product exceeds core.MaxCells.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if core.CheckDimensions(c.Width, c.Height) != nil {
		d := DefaultConfig()
		c.Width, c.Height = d.Width, d.Height
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed != 0 {
			c.Seed = parsed
		}
	}
	return c
}
