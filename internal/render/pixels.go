package render

import (
	"image/color"

	"flash-ca/internal/core"
)

var levelPalette = buildLevelPalette()

// Palette returns one colour per energy level. Level 0, the colour of a cell
// that has just flashed, is white; 1..MaxLevel ramp from dark navy to amber.
func Palette() []color.RGBA { return levelPalette }

func buildLevelPalette() []color.RGBA {
	palette := make([]color.RGBA, core.MaxLevel+1)
	palette[0] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	low := color.RGBA{R: 12, G: 18, B: 48, A: 255}
	high := color.RGBA{R: 230, G: 160, B: 40, A: 255}
	for lvl := 1; lvl <= core.MaxLevel; lvl++ {
		t := float64(lvl-1) / float64(core.MaxLevel-1)
		palette[lvl] = lerp(low, high, t)
	}
	return palette
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x)*(1-t) + float64(y)*t + 0.5) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last colour. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
