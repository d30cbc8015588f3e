package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when the level sequence does not fill
	// a w*h grid exactly, the dimensions are not positive or w*h exceeds
	// MaxCells.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")
	// ErrLevelRange is returned when an initial level lies outside [0, MaxLevel].
	ErrLevelRange = errors.New("core: level out of range")
	// ErrOutOfBounds is returned by Set for coordinates outside the grid.
	ErrOutOfBounds = errors.New("core: position out of bounds")
)

// MaxCells bounds w*h so the cell count always fits in memory and in an int.
const MaxCells = 1 << 26

// CheckDimensions reports whether a w*h grid can be built.
func CheckDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d grid", ErrDimensionMismatch, w, h)
	}
	if h > MaxCells/w {
		return fmt.Errorf("%w: %dx%d grid exceeds %d cells", ErrDimensionMismatch, w, h, MaxCells)
	}
	return nil
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Grid stores the flash cells in row-major order.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid builds a w*h grid whose cells start at the given row-major levels.
func NewGrid(w, h int, levels []int) (*Grid, error) {
	if err := CheckDimensions(w, h); err != nil {
		return nil, err
	}
	if len(levels) != w*h {
		return nil, fmt.Errorf("%w: %d levels for %dx%d grid", ErrDimensionMismatch, len(levels), w, h)
	}
	cells := make([]Cell, len(levels))
	for i, lvl := range levels {
		if lvl < 0 || lvl > MaxLevel {
			return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrLevelRange, lvl, i%w, i/w)
		}
		cells[i] = Cell{Level: lvl}
	}
	return &Grid{W: w, H: h, cells: cells}, nil
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice so callers can mutate cells by index.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y). It does not
// check bounds.
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns a copy of the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.Index(x, y)], true
}

// Set overwrites the cell at (x, y). Negative levels are rejected.
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.W, g.H)
	}
	if c.Level < 0 {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrLevelRange, c.Level, x, y)
	}
	g.cells[g.Index(x, y)] = c
	return nil
}

// Neighbors returns the in-bounds Moore neighbourhood of (x, y).
func (g *Grid) Neighbors(x, y int) []Point {
	return g.AppendNeighbors(make([]Point, 0, 8), x, y)
}

// AppendNeighbors appends the in-bounds Moore neighbourhood of (x, y) to dst,
// scanning rows top to bottom and columns left to right.
func (g *Grid) AppendNeighbors(dst []Point, x, y int) []Point {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			dst = append(dst, Point{X: nx, Y: ny})
		}
	}
	return dst
}

// Levels returns a row-major copy of every cell level.
func (g *Grid) Levels() []int {
	out := make([]int, len(g.cells))
	for i, c := range g.cells {
		out[i] = c.Level
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, cells: append([]Cell(nil), g.cells...)}
}
