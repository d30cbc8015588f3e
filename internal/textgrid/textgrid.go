// Package textgrid converts between blocks of digit text and flash grids.
package textgrid

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"flash-ca/internal/core"
)

var (
	// ErrEmpty is reported when the input holds no rows.
	ErrEmpty = errors.New("empty grid")
	// ErrNonDigit is reported for any character outside '0'..'9'.
	ErrNonDigit = errors.New("non-digit character")
	// ErrRaggedRow is reported when a row differs in length from the first.
	ErrRaggedRow = errors.New("inconsistent row length")
)

// ParseError locates a malformed input. Line and Col are 1-based; Col is 0
// when the whole line is at fault.
type ParseError struct {
	Line int
	Col  int
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return "textgrid: " + e.Err.Error()
	case e.Col == 0:
		return fmt.Sprintf("textgrid: line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("textgrid: line %d col %d: %v", e.Line, e.Col, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a rectangular block of digits, one row per line.
func Parse(r io.Reader) (*core.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("textgrid: read: %w", err)
	}
	return ParseString(string(data))
}

// ParseString parses a rectangular block of digits. Blank lines around the
// block and whitespace around each row are ignored.
func ParseString(s string) (*core.Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, &ParseError{Err: ErrEmpty}
	}

	width := len(strings.TrimSpace(lines[0]))
	levels := make([]int, 0, width*len(lines))
	for i, line := range lines {
		row := strings.TrimSpace(line)
		if len(row) != width {
			return nil, &ParseError{Line: i + 1, Err: fmt.Errorf("%w: got %d, want %d", ErrRaggedRow, len(row), width)}
		}
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch < '0' || ch > '9' {
				return nil, &ParseError{Line: i + 1, Col: j + 1, Err: fmt.Errorf("%w %q", ErrNonDigit, ch)}
			}
			levels = append(levels, int(ch-'0'))
		}
	}

	g, err := core.NewGrid(width, len(lines), levels)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return g, nil
}

// Format renders one line per row and one digit per cell. Levels above
// core.MaxLevel, which only exist in the middle of a tick, render as '*'.
func Format(g *core.Grid) string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			b.WriteByte(levelByte(cells[g.Index(x, y)].Level))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Write renders g to w in the Format layout.
func Write(w io.Writer, g *core.Grid) error {
	_, err := io.WriteString(w, Format(g))
	return err
}

func levelByte(level int) byte {
	if level < 0 || level > core.MaxLevel {
		return '*'
	}
	return byte('0' + level)
}
