package core

// MaxLevel is the highest energy level a cell can hold between ticks. A cell
// whose level rises above it flashes.
const MaxLevel = 9

// Cell is the per-position state of the flash grid.
type Cell struct {
	Level   int
	Flashed bool
}

// IncreaseLevel adds one unit of energy.
func (c *Cell) IncreaseLevel() { c.Level++ }

// OverThreshold reports whether the level exceeds MaxLevel.
func (c Cell) OverThreshold() bool { return c.Level > MaxLevel }

// CanFlash reports whether the cell is over threshold and has not flashed yet
// during the current tick.
func (c Cell) CanFlash() bool { return !c.Flashed && c.OverThreshold() }

// Flash latches the cell for the rest of the tick.
func (c *Cell) Flash() { c.Flashed = true }

// Reset drains a flashed cell back to zero and clears the latch. Cells that
// did not flash keep their level.
func (c *Cell) Reset() {
	if !c.Flashed {
		return
	}
	c.Flashed = false
	c.Level = 0
}
