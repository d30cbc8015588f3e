// Package term renders a flash simulation in a terminal using tcell.
package term

import (
	"fmt"
	"time"

	"flash-ca/internal/core"

	"github.com/gdamore/tcell/v2"
)

var levelColors = [core.MaxLevel + 1]tcell.Color{
	tcell.ColorWhite,
	tcell.ColorNavy,
	tcell.ColorBlue,
	tcell.ColorTeal,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorYellow,
	tcell.ColorOrange,
	tcell.ColorRed,
	tcell.ColorMaroon,
}

// Viewer draws a simulation grid with a status line and handles keys.
type Viewer struct {
	screen tcell.Screen
	sim    core.Sim
	clock  *core.FixedStep

	paused   bool
	tickOnce bool
}

// NewViewer binds a viewer to an initialised screen.
func NewViewer(screen tcell.Screen, sim core.Sim, tps int) *Viewer {
	return &Viewer{screen: screen, sim: sim, clock: core.NewFixedStep(tps)}
}

// Paused reports whether automatic ticking is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// HandleEvent applies a terminal event and reports whether the viewer should
// keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			v.paused = false
			v.clock.Restart()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
				v.clock.Restart()
			case 'n':
				v.tickOnce = true
			case 'r':
				v.sim.Reset(0)
			case 's':
				v.sim.Reset(time.Now().UnixNano())
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Advance steps the simulation when the clock releases a tick or a single
// step was requested. It reports whether a tick ran.
func (v *Viewer) Advance() bool {
	if v.tickOnce {
		v.tickOnce = false
		v.sim.Step()
		return true
	}
	if v.paused || !v.clock.ShouldStep() {
		return false
	}
	v.sim.Step()
	return true
}

// Draw paints the grid, one digit per cell, followed by the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	size := v.sim.Size()
	cells := v.sim.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			lvl := int(cells[y*size.W+x])
			v.screen.SetContent(x, y, levelRune(lvl), nil, levelStyle(lvl))
		}
	}
	v.drawText(0, size.H+1, v.status(), tcell.StyleDefault.Foreground(tcell.ColorSilver))
	v.drawText(0, size.H+2, "space pause  n step  r reset  s reseed  q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	v.screen.Show()
}

// Run polls events and redraws until the user quits.
func (v *Viewer) Run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(v.pollInterval())
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return
			}
			v.Advance()
			v.Draw()
		case <-ticker.C:
			if v.Advance() {
				v.Draw()
			}
		}
	}
}

// minPoll keeps the redraw ticker from spinning at very high tick rates.
const minPoll = time.Millisecond

// pollInterval is how often Run checks the clock: twice per tick, but no
// more often than minPoll.
func (v *Viewer) pollInterval() time.Duration {
	return max(v.clock.Interval()/2, minPoll)
}

func (v *Viewer) status() string {
	state := "running"
	if v.paused {
		state = "paused"
	}
	line := v.sim.Name() + " " + state
	if p, ok := v.sim.(core.ParameterProvider); ok {
		snap := p.Parameters()
		tick, _ := snap.Lookup("tick")
		last, _ := snap.Lookup("last")
		total, _ := snap.Lookup("total")
		line += fmt.Sprintf("  tick %s  flashes %s  total %s", tick, last, total)
	}
	return line
}

func (v *Viewer) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func levelRune(lvl int) rune {
	if lvl > core.MaxLevel {
		return '*'
	}
	return rune('0' + lvl)
}

func levelStyle(lvl int) tcell.Style {
	if lvl > core.MaxLevel {
		lvl = core.MaxLevel
	}
	style := tcell.StyleDefault.Foreground(levelColors[lvl])
	if lvl == 0 {
		style = style.Bold(true)
	}
	return style
}
