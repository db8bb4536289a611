package engine

import "github.com/ftahirops/procgraph/model"

// History is a fixed-capacity ring buffer of one metric's points.
// Pushing into a full buffer evicts the oldest point.
type History struct {
	buf  []model.Point
	head int // next write position
	size int
	cap  int
}

// NewHistory creates a ring buffer with the given capacity (at least 1).
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		buf: make([]model.Point, capacity),
		cap: capacity,
	}
}

// Push appends p as the newest point.
func (h *History) Push(p model.Point) {
	h.buf[h.head] = p
	h.head = (h.head + 1) % h.cap
	if h.size < h.cap {
		h.size++
	}
}

// Len returns the number of points stored.
func (h *History) Len() int { return h.size }

// Cap returns the capacity.
func (h *History) Cap() int { return h.cap }

// Get returns the point at position i (0 = oldest in buffer).
func (h *History) Get(i int) (model.Point, bool) {
	if i < 0 || i >= h.size {
		return model.Point{}, false
	}
	return h.buf[(h.head-h.size+i+h.cap)%h.cap], true
}

// Latest returns the most recent point.
func (h *History) Latest() (model.Point, bool) {
	return h.Get(h.size - 1)
}

// Previous returns the point before the most recent one.
func (h *History) Previous() (model.Point, bool) {
	return h.Get(h.size - 2)
}

// Window returns the most recent min(width, Len()) points, oldest first.
// Only the returned slice is allocated.
func (h *History) Window(width int) []model.Point {
	n := width
	if n > h.size {
		n = h.size
	}
	if n <= 0 {
		return nil
	}
	out := make([]model.Point, n)
	start := h.size - n
	for i := range out {
		out[i] = h.buf[(h.head-h.size+start+i+h.cap)%h.cap]
	}
	return out
}

// Resize changes the capacity, keeping the most recent points.
func (h *History) Resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	if capacity == h.cap {
		return
	}
	kept := h.Window(capacity)
	h.buf = make([]model.Point, capacity)
	h.cap = capacity
	h.head = 0
	h.size = 0
	for _, p := range kept {
		h.Push(p)
	}
}

// Range returns the min and max value of a window, or (0, 0) when empty.
func Range(window []model.Point) (lo, hi float64) {
	if len(window) == 0 {
		return 0, 0
	}
	lo, hi = window[0].Value, window[0].Value
	for _, p := range window[1:] {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}
	return lo, hi
}
