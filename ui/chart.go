package ui

import (
	"strings"

	"github.com/ftahirops/procgraph/engine"
	"github.com/ftahirops/procgraph/model"
)

// chartBody renders window as rows of glyphs, top row first. Points are
// right-aligned so the newest sample is always in the last column, and
// every cell is quantized over its own [0,1] fill.
//
//	  ▂▄
//	▁▆███▇▅
func chartBody(window []model.Point, axis engine.Axis, rows, cols int, pal Palette) []string {
	if len(window) > cols {
		window = window[len(window)-cols:]
	}
	start := cols - len(window)

	heights := make([]float64, len(window))
	span := axis.Top - axis.Bottom
	for i, p := range window {
		if span <= 0 {
			heights[i] = float64(rows)
			continue
		}
		heights[i] = (p.Value - axis.Bottom) / span * float64(rows)
	}

	out := make([]string, rows)
	line := make([]rune, cols)
	for r := rows - 1; r >= 0; r-- {
		for c := range line {
			line[c] = ' '
		}
		for i, h := range heights {
			line[start+i] = pal.Glyph(cellFill(h, r), 0, 1)
		}
		out[rows-1-r] = string(line)
	}
	return out
}

// markers returns one rune per column: '+' where the value rose from the
// previous point, '-' where it fell, blank otherwise.
func markers(window []model.Point, cols int) []rune {
	if len(window) > cols {
		window = window[len(window)-cols:]
	}
	out := []rune(strings.Repeat(" ", cols))
	start := cols - len(window)
	for i := 1; i < len(window); i++ {
		switch {
		case window[i].Value > window[i-1].Value:
			out[start+i] = '+'
		case window[i].Value < window[i-1].Value:
			out[start+i] = '-'
		}
	}
	return out
}
