package flash

import (
	"fmt"

	"flash-ca/internal/core"
)

// checkInvariants panics when a settled grid violates the post-tick rules.
// It only runs in builds tagged flashdebug.
func (s *Swarm) checkInvariants(flashes int) {
	if !debugInvariants {
		return
	}
	if err := verifySettled(s.grid, flashes); err != nil {
		panic(err)
	}
}

// verifySettled reports the first post-tick rule broken by g.
func verifySettled(g *core.Grid, flashes int) error {
	if flashes < 0 || flashes > g.Len() {
		return fmt.Errorf("flash: %d flashes on a %d-cell grid", flashes, g.Len())
	}
	zeros := 0
	for i, c := range g.Cells() {
		if c.Flashed {
			return fmt.Errorf("flash: cell (%d,%d) still latched after reset", i%g.W, i/g.W)
		}
		if c.Level < 0 || c.Level > core.MaxLevel {
			return fmt.Errorf("flash: cell (%d,%d) settled at level %d", i%g.W, i/g.W, c.Level)
		}
		if c.Level == 0 {
			zeros++
		}
	}
	if zeros < flashes {
		return fmt.Errorf("flash: %d flashes but only %d drained cells", flashes, zeros)
	}
	return nil
}
