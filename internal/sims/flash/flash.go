// Package flash implements the energy flash automaton: every tick each cell
// gains one unit of energy, cells above core.MaxLevel flash once and feed
// their neighbours, and flashed cells drain to zero once the cascade settles.
package flash

import (
	"flash-ca/internal/core"
	pcore "flash-ca/pkg/core"
)

// Swarm drives a flash grid tick by tick.
type Swarm struct {
	grid    *core.Grid
	initial *core.Grid
	seed    int64
	display []uint8

	neighbors []core.Point

	tick        int
	lastFlashes int
	total       int

	// enqueued counts cascade queue pushes during the last tick.
	enqueued int
}

// New returns a swarm that takes ownership of g. Reset(0) restores the
// levels g holds now.
func New(g *core.Grid) *Swarm {
	s := &Swarm{
		grid:      g,
		initial:   g.Clone(),
		display:   make([]uint8, g.Len()),
		neighbors: make([]core.Point, 0, 8),
	}
	s.rebuildDisplay()
	return s
}

// NewWithConfig returns a swarm whose levels are drawn from cfg.Seed.
// Non-positive dimensions are raised to 1; a grid larger than core.MaxCells
// falls back to the default dimensions.
func NewWithConfig(cfg Config) *Swarm {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if core.CheckDimensions(w, h) != nil {
		d := DefaultConfig()
		w, h = d.Width, d.Height
	}
	levels := make([]int, w*h)
	pcore.FillLevels(pcore.NewRNG(cfg.Seed).Source(), levels, core.MaxLevel)
	g, err := core.NewGrid(w, h, levels)
	if err != nil {
		// Dimensions and levels are valid by construction.
		panic(err)
	}
	s := New(g)
	s.seed = cfg.Seed
	return s
}

// Name returns the simulation identifier.
func (s *Swarm) Name() string { return "flash" }

// Size returns the grid dimensions.
func (s *Swarm) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Cells exposes the display buffer: one byte per cell holding its level.
func (s *Swarm) Cells() []uint8 { return s.display }

// Grid exposes the owned grid for read access between ticks.
func (s *Swarm) Grid() *core.Grid { return s.grid }

// LevelAt returns the level at (x, y).
func (s *Swarm) LevelAt(x, y int) (int, bool) {
	c, ok := s.grid.Get(x, y)
	return c.Level, ok
}

// Tick returns the number of ticks run since construction or the last Reset.
func (s *Swarm) Tick() int { return s.tick }

// LastFlashes returns the flash count of the most recent tick.
func (s *Swarm) LastFlashes() int { return s.lastFlashes }

// TotalFlashes returns the flashes summed over every tick since the last Reset.
func (s *Swarm) TotalFlashes() int { return s.total }

// Seed returns the seed that produced the current levels, 0 for a grid
// supplied by the caller.
func (s *Swarm) Seed() int64 { return s.seed }

// Reset clears the counters. A zero seed restores the initial grid; any
// other seed refills every level uniformly from [0, core.MaxLevel].
func (s *Swarm) Reset(seed int64) {
	cells := s.grid.Cells()
	if seed == 0 {
		copy(cells, s.initial.Cells())
		s.seed = 0
	} else {
		levels := make([]int, len(cells))
		pcore.FillLevels(pcore.NewRNG(seed).Source(), levels, core.MaxLevel)
		for i, lvl := range levels {
			cells[i] = core.Cell{Level: lvl}
		}
		s.seed = seed
	}
	s.tick = 0
	s.lastFlashes = 0
	s.total = 0
	s.enqueued = 0
	s.rebuildDisplay()
}

// Step advances the grid by one tick and returns how many cells flashed.
func (s *Swarm) Step() int {
	return s.step(nil)
}

// step runs the increment, cascade and reset phases. A non-nil order lists
// the cell indices in the sequence the increment phase visits them.
func (s *Swarm) step(order []int) int {
	cells := s.grid.Cells()

	if order == nil {
		for i := range cells {
			cells[i].IncreaseLevel()
		}
	} else {
		for _, i := range order {
			cells[i].IncreaseLevel()
		}
	}

	queue := make([]int, 0, len(cells))
	for i := range cells {
		if cells[i].CanFlash() {
			queue = append(queue, i)
		}
	}
	s.enqueued = len(queue)

	flashes := 0
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if !cells[idx].CanFlash() {
			continue
		}
		cells[idx].Flash()
		flashes++

		s.neighbors = s.grid.AppendNeighbors(s.neighbors[:0], idx%s.grid.W, idx/s.grid.W)
		for _, p := range s.neighbors {
			n := s.grid.Index(p.X, p.Y)
			cells[n].IncreaseLevel()
			// Only the crossing increment enqueues, so each cell enters
			// the queue at most once per tick.
			if cells[n].Level == core.MaxLevel+1 && !cells[n].Flashed {
				queue = append(queue, n)
				s.enqueued++
			}
		}
	}

	for i := range cells {
		cells[i].Reset()
	}
	s.checkInvariants(flashes)

	s.tick++
	s.lastFlashes = flashes
	s.total += flashes
	s.rebuildDisplay()
	return flashes
}

func (s *Swarm) rebuildDisplay() {
	for i, c := range s.grid.Cells() {
		lvl := c.Level
		if lvl < 0 {
			lvl = 0
		}
		if lvl > 255 {
			lvl = 255
		}
		s.display[i] = uint8(lvl)
	}
}

func init() {
	core.Register("flash", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
