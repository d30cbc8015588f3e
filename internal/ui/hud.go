//go:build ebiten

package ui

import (
	"image/color"

	"flash-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	lines []hudLine
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Update refreshes the cached snapshot lines.
func (h *HUD) Update() {
	h.lines = snapshotLines(h.sim)
}

// Draw paints the panel at offsetX on screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h.width == 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for _, line := range h.lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line.header {
			clr = color.RGBA{R: 200, G: 200, B: 120, A: 255}
		}
		text.Draw(h.panel, line.text, face, panelPadding, y, clr)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
