package model

import "time"

// ProcInfo identifies one tracked process.
type ProcInfo struct {
	PID        int32
	Name       string
	Exe        string // full binary path, may be empty for kernel threads
	Cmdline    string
	CreateTime int64 // ms since epoch, used to detect PID reuse
}

// Reading is a point-in-time raw reading of one process.
// CPUTime, ReadBytes and WriteBytes are cumulative counters.
type Reading struct {
	CPUTime    float64 // user+system seconds
	MemBytes   uint64  // resident set size
	ReadBytes  uint64
	WriteBytes uint64
	IOValid    bool // false when /proc/PID/io was unreadable
}

// Sample holds the metrics derived for one process in one tick.
type Sample struct {
	At           time.Time
	CPUPercent   float64
	MemBytes     uint64
	IOReadDelta  uint64
	IOWriteDelta uint64
}

// Point is one historical value of a single metric.
type Point struct {
	At    time.Time
	Value float64
}

// Totals is the system-wide usage shown in the summary line.
type Totals struct {
	CPUPct float64
	MemPct float64
}
