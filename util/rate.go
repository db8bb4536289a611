package util

import "time"

// Delta returns curr - prev, or 0 if curr < prev (counter reset).
func Delta(prev, curr uint64) uint64 {
	if curr < prev {
		return 0
	}
	return curr - prev
}

// CPUPct converts two cumulative CPU-second readings taken dt apart into a
// usage percentage. 100 means one fully busy core. Negative deltas and
// non-positive dt yield 0.
func CPUPct(prevSec, currSec float64, dt time.Duration) float64 {
	if dt <= 0 || currSec <= prevSec {
		return 0
	}
	return (currSec - prevSec) / dt.Seconds() * 100
}
