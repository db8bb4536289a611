package ui

import (
	"math"

	"github.com/ftahirops/procgraph/model"
)

// Palette is an ordered set of glyphs from empty to full.
type Palette []rune

var (
	paletteLow    = Palette{' ', '█'}
	paletteMedium = Palette{' ', '▄', '█'}
	paletteHigh   = Palette{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
)

// PaletteFor returns the glyph set for a quality level.
func PaletteFor(q model.Quality) Palette {
	switch q {
	case model.QualityLow:
		return paletteLow
	case model.QualityMedium:
		return paletteMedium
	default:
		return paletteHigh
	}
}

// Levels returns the number of distinct glyphs.
func (p Palette) Levels() int { return len(p) }

// Level maps value within [bottom, top] to a glyph index. A degenerate
// range maps everything to the full glyph.
func (p Palette) Level(value, bottom, top float64) int {
	last := len(p) - 1
	if top <= bottom {
		return last
	}
	idx := int(math.Round((value - bottom) / (top - bottom) * float64(last)))
	if idx < 0 {
		return 0
	}
	if idx > last {
		return last
	}
	return idx
}

// Glyph returns the glyph for value within [bottom, top].
func (p Palette) Glyph(value, bottom, top float64) rune {
	return p[p.Level(value, bottom, top)]
}

// cellFill returns how much of row (0 = bottom) a column filled up to
// height rows covers, in [0, 1].
func cellFill(height float64, row int) float64 {
	f := height - float64(row)
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 1
	}
	return f
}
