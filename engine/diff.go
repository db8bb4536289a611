package engine

import "time"

// Metric selects one of an entry's histories.
type Metric int

const (
	MetricCPU Metric = iota
	MetricMem
)

func (e *Entry) history(m Metric) *History {
	if m == MetricCPU {
		return e.CPU
	}
	return e.Mem
}

// Delta returns the change shown under the current value: against the
// previous sample, or against the mark baseline while a mark is set.
// ok is false when there is nothing to compare.
func (r *Registry) Delta(e *Entry, m Metric) (delta float64, ok bool) {
	h := e.history(m)
	last, ok := h.Latest()
	if !ok {
		return 0, false
	}
	if !r.markAt.IsZero() {
		if e.mark == nil || !e.mark.set {
			return 0, false
		}
		base := e.mark.cpu
		if m == MetricMem {
			base = e.mark.mem
		}
		return last.Value - base, true
	}
	prev, ok := h.Previous()
	if !ok {
		return 0, false
	}
	return last.Value - prev.Value, true
}

// ToggleMark sets a session-wide mark at now, capturing every entry's
// latest values as its baseline, or clears the mark if one is set.
// It returns whether a mark is now active.
func (r *Registry) ToggleMark(now time.Time) bool {
	if !r.markAt.IsZero() {
		r.markAt = time.Time{}
		for _, e := range r.entries {
			e.mark = nil
		}
		return false
	}
	r.markAt = now
	for _, e := range r.entries {
		b := &baseline{}
		cpu, okC := e.CPU.Latest()
		mem, okM := e.Mem.Latest()
		if okC && okM {
			*b = baseline{cpu: cpu.Value, mem: mem.Value, set: true}
		}
		e.mark = b
	}
	return true
}

// Marked reports whether a mark is active.
func (r *Registry) Marked() bool { return !r.markAt.IsZero() }

// MarkSince returns how long ago the mark was set, or 0 without a mark.
func (r *Registry) MarkSince(now time.Time) time.Duration {
	if r.markAt.IsZero() {
		return 0
	}
	d := now.Sub(r.markAt)
	if d < 0 {
		return 0
	}
	return d
}
