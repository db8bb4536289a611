package engine

import (
	"time"

	"github.com/ftahirops/procgraph/model"
)

// Status is the lifecycle state of a tracked process.
type Status int

const (
	StatusAlive Status = iota
	StatusDead
)

// String returns "alive" or "dead".
func (s Status) String() string {
	if s == StatusDead {
		return "dead"
	}
	return "alive"
}

// Entry is everything known about one tracked process.
type Entry struct {
	Info      model.ProcInfo
	FirstSeen time.Time
	Status    Status
	DiedAt    time.Time // set once, at the tick the process vanished

	CPU *History // percent, 100 = one core
	Mem *History // resident bytes

	Last    model.Sample // most recent derived sample
	IORead  uint64       // cumulative counters from the last reading
	IOWrite uint64
	IOValid bool

	MaxCPU float64 // all-time maxima
	MaxMem float64

	prev   *model.Reading
	prevAt time.Time
	mark   *baseline
}

// baseline holds the values captured when the user set a mark.
type baseline struct {
	cpu, mem float64
	set      bool // false until the entry has a sample to capture
}

// Alive reports whether the process is still being sampled.
func (e *Entry) Alive() bool { return e.Status == StatusAlive }

// Registry owns every tracked process in discovery order. Entries are
// never removed; dead ones stay frozen for the session.
type Registry struct {
	entries  []*Entry
	index    map[int32]int // PID -> newest entry with that PID
	capacity int
	markAt   time.Time
}

// NewRegistry creates an empty registry whose histories hold capacity points.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		index:    make(map[int32]int),
		capacity: capacity,
	}
}

// Add starts tracking info. It returns false when the same process is
// already tracked. A recycled PID (different create time) of a dead entry
// gets a fresh entry.
func (r *Registry) Add(info model.ProcInfo, now time.Time) (*Entry, bool) {
	if i, ok := r.index[info.PID]; ok {
		old := r.entries[i]
		if old.Alive() || old.Info.CreateTime == info.CreateTime {
			return old, false
		}
	}
	e := &Entry{
		Info:      info,
		FirstSeen: now,
		Status:    StatusAlive,
		CPU:       NewHistory(r.capacity),
		Mem:       NewHistory(r.capacity),
	}
	if !r.markAt.IsZero() {
		e.mark = &baseline{}
	}
	r.index[info.PID] = len(r.entries)
	r.entries = append(r.entries, e)
	return e, true
}

// Get returns the newest entry for pid.
func (r *Registry) Get(pid int32) (*Entry, bool) {
	i, ok := r.index[pid]
	if !ok {
		return nil, false
	}
	return r.entries[i], true
}

// Entries returns all entries in discovery order. Callers must not modify
// the slice.
func (r *Registry) Entries() []*Entry { return r.entries }

// Len returns the number of tracked processes, dead ones included.
func (r *Registry) Len() int { return len(r.entries) }

// Dead returns how many tracked processes have exited.
func (r *Registry) Dead() int {
	n := 0
	for _, e := range r.entries {
		if !e.Alive() {
			n++
		}
	}
	return n
}

// Targets returns the identities of all live entries, safe to hand to a
// collection goroutine.
func (r *Registry) Targets() []model.ProcInfo {
	out := make([]model.ProcInfo, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Alive() {
			out = append(out, e.Info)
		}
	}
	return out
}

// Capacity returns the per-metric history capacity.
func (r *Registry) Capacity() int { return r.capacity }

// Resize changes every history's capacity, keeping the newest points.
func (r *Registry) Resize(capacity int) {
	if capacity < 1 || capacity == r.capacity {
		return
	}
	r.capacity = capacity
	for _, e := range r.entries {
		e.CPU.Resize(capacity)
		e.Mem.Resize(capacity)
	}
}

// ResetMax lowers e's all-time maxima to the maxima of its visible
// windows. Dead entries keep their frozen values.
func (r *Registry) ResetMax(e *Entry, cpuWidth, memWidth int) {
	if !e.Alive() {
		return
	}
	_, e.MaxCPU = Range(e.CPU.Window(cpuWidth))
	_, e.MaxMem = Range(e.Mem.Window(memWidth))
}
