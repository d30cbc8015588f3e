package flash

import "flash-ca/internal/core"

// Run advances s by n ticks and returns the flashes summed over them.
func Run(s core.Sim, n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += s.Step()
	}
	return total
}

// FirstSync steps s until every cell flashes in the same tick and returns
// how many ticks that took. It gives up after limit ticks; a non-positive
// limit searches until a synchronised tick is found.
func FirstSync(s core.Sim, limit int) (int, bool) {
	size := s.Size()
	cells := size.W * size.H
	for i := 1; limit <= 0 || i <= limit; i++ {
		if s.Step() == cells {
			return i, true
		}
	}
	return 0, false
}
