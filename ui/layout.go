package ui

import "github.com/ftahirops/procgraph/model"

const (
	// MinWidth and MinHeight are the smallest usable terminal size.
	MinWidth  = 30
	MinHeight = 10

	labelWidth     = 6 // "1023M│"
	headerLines    = 2 // title and IO lines of a block
	minGraphRows   = 2
	labelRows      = 5 // top, current, delta, max, bottom
	sideMinColumns = 30
)

// geometry is the placement of process blocks for one terminal size.
type geometry struct {
	width   int
	side    bool // CPU and MEM graphs next to each other
	rows    int  // graph rows per metric, marker line excluded
	blockH  int
	visible int // blocks that fit on screen

	cpuCols int // graph body columns
	memCols int
	memX    int // first column of the MEM label in side mode
}

// computeGeometry lays out total blocks in a width x height terminal with
// one summary line on top.
func computeGeometry(width, height, total int, pack model.PackMode) geometry {
	g := geometry{width: width}
	avail := height - 1
	if avail < 1 {
		avail = 1
	}

	half := (width - 1) / 2
	switch pack {
	case model.PackSide:
		g.side = true
	case model.PackStack:
		// Stacked graphs too short for every label row go side by side.
		g.side = avail < stackedBlock(labelRows)
	default:
		g.side = half-labelWidth >= sideMinColumns || avail < stackedBlock(labelRows)
	}

	if g.side {
		g.cpuCols = half - labelWidth
		g.memX = half + 1
		g.memCols = width - g.memX - labelWidth
	} else {
		g.cpuCols = width - labelWidth
		g.memCols = g.cpuCols
	}
	if g.cpuCols < 1 {
		g.cpuCols = 1
	}
	if g.memCols < 1 {
		g.memCols = 1
	}

	if total == 0 {
		return g
	}
	minBlock := g.block(labelRows)
	g.visible = avail / minBlock
	if g.visible < 1 {
		g.visible = 1
	}
	if g.visible > total {
		g.visible = total
	}

	per := avail / g.visible
	if g.side {
		g.rows = per - headerLines - 1
	} else {
		g.rows = (per-headerLines)/2 - 1
	}
	if g.rows < minGraphRows {
		g.rows = minGraphRows
	}
	g.blockH = g.block(g.rows)
	return g
}

func (g geometry) block(rows int) int {
	if g.side {
		return sideBlock(rows)
	}
	return stackedBlock(rows)
}

func sideBlock(rows int) int    { return headerLines + rows + 1 }
func stackedBlock(rows int) int { return headerLines + 2*(rows+1) }

// capacity is the number of points a history needs to fill a graph.
func (g geometry) capacity() int {
	if g.cpuCols > g.memCols {
		return g.cpuCols
	}
	return g.memCols
}

// hidden returns how many of total blocks are off screen.
func (g geometry) hidden(total int) int {
	return total - g.visible
}

// clampScroll bounds offset to [0, total - visible].
func clampScroll(offset, total, visible int) int {
	maxOff := total - visible
	if maxOff < 0 {
		maxOff = 0
	}
	if offset > maxOff {
		return maxOff
	}
	if offset < 0 {
		return 0
	}
	return offset
}
