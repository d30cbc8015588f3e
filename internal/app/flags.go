package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"flash-ca/internal/core"
	"flash-ca/internal/sims/flash"
	"flash-ca/internal/textgrid"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Sim    string
	File   string
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "flash", Width: 10, Height: 10, Scale: 24, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.File, "file", c.File, "digit grid to load instead of a seeded grid")
	fs.IntVar(&c.Width, "w", c.Width, "grid width for seeded grids")
	fs.IntVar(&c.Height, "h", c.Height, "grid height for seeded grids")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for seeded grids")
}

// BuildSim constructs the simulation the configuration asks for. A grid file
// takes precedence over the registry.
func BuildSim(c *Config) (core.Sim, error) {
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return nil, fmt.Errorf("open grid: %w", err)
		}
		defer f.Close()
		g, err := textgrid.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("grid %s: %w", c.File, err)
		}
		return flash.New(g), nil
	}

	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", c.Sim, core.SimNames())
	}
	return factory(map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}), nil
}
