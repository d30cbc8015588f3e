// Package scenario loads YAML run descriptions for the command-line tools.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"flash-ca/internal/core"
	"flash-ca/internal/sims/flash"
	"flash-ca/internal/textgrid"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid scenario")

// Scenario describes the starting grid of a run and how long to run it.
type Scenario struct {
	Name string `yaml:"name,omitempty"`

	// Grid holds the starting levels as digit rows. When empty the grid is
	// filled from Seed using Width and Height.
	Grid   string `yaml:"grid,omitempty"`
	Seed   int64  `yaml:"seed,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`

	Steps     int  `yaml:"steps"`
	FindSync  bool `yaml:"find_sync,omitempty"`
	SyncLimit int  `yaml:"sync_limit,omitempty"`

	// OnTick, when set, is called after every tick of Run.
	OnTick func(tick, flashes int) `yaml:"-"`
}

// Load reads and validates the scenario stored at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the run settings and that a starting grid can be built.
func (s *Scenario) Validate() error {
	if s.Steps < 0 {
		return fmt.Errorf("%w: steps must not be negative, got %d", ErrInvalid, s.Steps)
	}
	if s.SyncLimit < 0 {
		return fmt.Errorf("%w: sync_limit must not be negative, got %d", ErrInvalid, s.SyncLimit)
	}
	if strings.TrimSpace(s.Grid) != "" {
		if _, err := textgrid.ParseString(s.Grid); err != nil {
			return fmt.Errorf("%w: grid: %w", ErrInvalid, err)
		}
		return nil
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: either grid or positive width and height are required", ErrInvalid)
	}
	if err := core.CheckDimensions(s.Width, s.Height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Build constructs the swarm the scenario starts from.
func (s *Scenario) Build() (*flash.Swarm, error) {
	if strings.TrimSpace(s.Grid) == "" {
		return flash.NewWithConfig(flash.Config{Width: s.Width, Height: s.Height, Seed: s.Seed}), nil
	}
	g, err := textgrid.ParseString(s.Grid)
	if err != nil {
		return nil, fmt.Errorf("scenario grid: %w", err)
	}
	return flash.New(g), nil
}

// Result summarises a scenario run.
type Result struct {
	Steps        int
	TotalFlashes int
	SyncTick     int
	Synced       bool
}

// Run builds the swarm, runs Steps ticks and, when FindSync is set, keeps
// stepping until the first synchronised tick or SyncLimit further ticks.
// SyncTick counts from the start of the run.
func (s *Scenario) Run() (*flash.Swarm, Result, error) {
	swarm, err := s.Build()
	if err != nil {
		return nil, Result{}, err
	}
	res := Result{Steps: s.Steps}
	cells := swarm.Grid().Len()
	for i := 0; i < s.Steps; i++ {
		n := s.step(swarm)
		res.TotalFlashes += n
		if n == cells && !res.Synced {
			res.Synced = true
			res.SyncTick = swarm.Tick()
		}
	}
	if s.FindSync && !res.Synced {
		limit := s.SyncLimit
		if limit == 0 {
			limit = DefaultSyncLimit
		}
		if tick, ok := flash.FirstSync(observed{swarm, s}, limit); ok {
			res.Synced = true
			res.SyncTick = s.Steps + tick
		}
	}
	return swarm, res, nil
}

func (s *Scenario) step(swarm *flash.Swarm) int {
	n := swarm.Step()
	if s.OnTick != nil {
		s.OnTick(swarm.Tick(), n)
	}
	return n
}

// observed routes FirstSync's ticks through the scenario's OnTick hook.
type observed struct {
	*flash.Swarm
	sc *Scenario
}

func (o observed) Step() int { return o.sc.step(o.Swarm) }

// DefaultSyncLimit bounds the synchronisation search when the scenario does
// not set sync_limit.
const DefaultSyncLimit = 10000
