package engine

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/ftahirops/procgraph/collector"
	"github.com/ftahirops/procgraph/model"
	"github.com/ftahirops/procgraph/util"
)

// Batch is one tick's worth of collected data, produced off the event loop
// and applied by the single owner of the Registry.
type Batch struct {
	At      time.Time
	Results map[int32]collector.Result
	Found   []model.ProcInfo // newly discovered processes (rescan mode)
	Totals  model.Totals
}

// ApplyStats summarises what one Apply did.
type ApplyStats struct {
	Sampled int
	Died    int
	Missed  int
	Added   int
}

// Sampler turns raw readings into samples and detects process death.
type Sampler struct {
	logger *slog.Logger
}

// NewSampler creates a Sampler. If logger is nil, a no-op logger is used.
func NewSampler(logger *slog.Logger) *Sampler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sampler{logger: logger}
}

// Apply folds b into reg.
func (s *Sampler) Apply(reg *Registry, b Batch) ApplyStats {
	var st ApplyStats
	for _, e := range reg.Entries() {
		if !e.Alive() {
			continue
		}
		res, ok := b.Results[e.Info.PID]
		if !ok {
			continue
		}
		switch {
		case errors.Is(res.Err, collector.ErrNotFound):
			if e.markDead(b.At) {
				st.Died++
				s.logger.Info("process exited", "pid", e.Info.PID, "name", e.Info.Name)
			}
		case res.Err != nil:
			st.Missed++
			s.logger.Debug("sample missed", "pid", e.Info.PID, "err", res.Err)
		default:
			e.record(res.Reading, b.At)
			st.Sampled++
		}
	}

	for _, info := range b.Found {
		res, read := b.Results[info.PID]
		if read && errors.Is(res.Err, collector.ErrNotFound) {
			// Exited between discovery and its first reading.
			continue
		}
		e, added := reg.Add(info, b.At)
		if !added {
			continue
		}
		st.Added++
		s.logger.Info("tracking new process", "pid", info.PID, "name", info.Name)
		if read && res.Err == nil {
			e.record(res.Reading, b.At)
		}
	}
	return st
}

// record derives a sample from r and appends it. No-op once dead.
func (e *Entry) record(r model.Reading, at time.Time) {
	if !e.Alive() || at.IsZero() {
		return
	}
	s := derive(e.prev, e.prevAt, r, at)

	e.CPU.Push(model.Point{At: at, Value: s.CPUPercent})
	e.Mem.Push(model.Point{At: at, Value: float64(s.MemBytes)})
	e.Last = s
	e.IORead, e.IOWrite, e.IOValid = r.ReadBytes, r.WriteBytes, r.IOValid

	if s.CPUPercent > e.MaxCPU {
		e.MaxCPU = s.CPUPercent
	}
	if m := float64(s.MemBytes); m > e.MaxMem {
		e.MaxMem = m
	}
	if e.mark != nil && !e.mark.set {
		*e.mark = baseline{cpu: s.CPUPercent, mem: float64(s.MemBytes), set: true}
	}

	reading := r
	e.prev = &reading
	e.prevAt = at
}

// derive computes rate metrics from two consecutive readings. Without a
// previous reading CPU and IO deltas are 0.
func derive(prev *model.Reading, prevAt time.Time, r model.Reading, at time.Time) model.Sample {
	s := model.Sample{At: at, MemBytes: r.MemBytes}
	if prev == nil {
		return s
	}
	s.CPUPercent = util.CPUPct(prev.CPUTime, r.CPUTime, at.Sub(prevAt))
	if prev.IOValid && r.IOValid {
		s.IOReadDelta = util.Delta(prev.ReadBytes, r.ReadBytes)
		s.IOWriteDelta = util.Delta(prev.WriteBytes, r.WriteBytes)
	}
	return s
}

// markDead freezes the entry. It returns false if it was already dead.
func (e *Entry) markDead(at time.Time) bool {
	if !e.Alive() {
		return false
	}
	e.Status = StatusDead
	e.DiedAt = at
	return true
}
