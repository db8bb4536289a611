package ui

import (
	"testing"

	"github.com/ftahirops/procgraph/model"
)

func TestComputeGeometry(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		total         int
		pack          model.PackMode
		side          bool
		visible       int
	}{
		{"wide auto goes side", 120, 40, 3, model.PackAuto, true, 3},
		{"narrow auto stacks", 60, 40, 3, model.PackAuto, false, 2},
		{"minimum terminal", MinWidth, MinHeight, 4, model.PackAuto, true, 1},
		{"forced stack", 120, 40, 3, model.PackStack, false, 2},
		{"forced side", 60, 40, 3, model.PackSide, true, 3},
		{"forced stack on a short terminal", 120, MinHeight, 3, model.PackStack, true, 1},
		{"empty registry", 80, 24, 0, model.PackAuto, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := computeGeometry(tt.width, tt.height, tt.total, tt.pack)
			if g.side != tt.side {
				t.Errorf("side = %v, want %v", g.side, tt.side)
			}
			if g.visible != tt.visible {
				t.Errorf("visible = %d, want %d", g.visible, tt.visible)
			}
			if g.visible > 0 && 1+g.visible*g.blockH > tt.height {
				t.Errorf("%d blocks of %d lines overflow height %d", g.visible, g.blockH, tt.height)
			}
			if g.visible > 0 && g.rows < labelRows {
				t.Errorf("rows = %d, too few for %d labels", g.rows, labelRows)
			}
			if g.side && g.memX+labelWidth+g.memCols != tt.width {
				t.Errorf("side graphs span %d columns, want %d", g.memX+labelWidth+g.memCols, tt.width)
			}
		})
	}
}

func TestClampScroll(t *testing.T) {
	tests := []struct {
		off, total, visible, want int
	}{
		{0, 10, 3, 0},
		{-4, 10, 3, 0},
		{5, 10, 3, 5},
		{9, 10, 3, 7},
		{2, 2, 3, 0},
		{1, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := clampScroll(tt.off, tt.total, tt.visible); got != tt.want {
			t.Errorf("clampScroll(%d, %d, %d) = %d, want %d", tt.off, tt.total, tt.visible, got, tt.want)
		}
	}
}

func TestHistoryCapacity(t *testing.T) {
	side := HistoryCapacity(120, 40, model.PackAuto)
	stacked := HistoryCapacity(120, 40, model.PackStack)
	if stacked <= side {
		t.Fatalf("stacked graphs should hold more history: side=%d stacked=%d", side, stacked)
	}
}
