package engine

import (
	"math"

	"github.com/ftahirops/procgraph/model"
)

// Axis is the displayed numeric range of a graph.
type Axis struct {
	Bottom float64
	Top    float64
}

// CPUAxis returns 0..top where top is the smallest multiple of 100 not
// below the visible maximum, and never below 100.
func CPUAxis(window []model.Point) Axis {
	_, hi := Range(window)
	return Axis{Bottom: 0, Top: RoundToHundred(math.Max(hi, 100))}
}

// MemAxis returns the memory range for the visible window. Bounds are
// rounded to 1024-based units; the range is never empty.
func MemAxis(window []model.Point, mode model.ScaleMode) Axis {
	lo, hi := Range(window)
	topVal, topUnit := ShortRound(toBytes(hi), false)
	top := float64(topVal * topUnit)
	if mode == model.ScaleZero {
		if top <= 0 {
			top = 1
		}
		return Axis{Bottom: 0, Top: top}
	}
	botVal, botUnit := ShortRound(toBytes(lo), true)
	bottom := float64(botVal * botUnit)
	if bottom >= top {
		top = bottom + float64(topUnit)
	}
	return Axis{Bottom: bottom, Top: top}
}

// RoundToHundred rounds v up to a multiple of 100.
func RoundToHundred(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Ceil(v/100) * 100
}

// ShortRound expresses val as n*unit with unit a power of 1024 and
// n < 1024 (or val itself below 1024), rounding down or up at every step.
// The result n*unit brackets val from the requested side.
func ShortRound(val uint64, down bool) (n, unit uint64) {
	if val < 1024 {
		return val, 1
	}
	unit = 1
	for val >= 1024 {
		unit *= 1024
		rem := val % 1024
		val /= 1024
		if !down && rem != 0 {
			val++
		}
	}
	return val, unit
}

func toBytes(v float64) uint64 {
	if v <= 0 {
		return 0
	}
	return uint64(math.Ceil(v))
}
