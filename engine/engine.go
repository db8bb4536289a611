package engine

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ftahirops/procgraph/collector"
	"github.com/ftahirops/procgraph/model"
)

// Finder re-discovers processes matching the user's selection.
type Finder interface {
	Find(ctx context.Context) ([]model.ProcInfo, error)
}

// TotalsFunc reads host-wide CPU and memory usage.
type TotalsFunc func(ctx context.Context) (model.Totals, error)

// Options configures an Engine. Only Source is required.
type Options struct {
	Source   collector.Source
	Finder   Finder // nil keeps the tracked set fixed
	Totals   TotalsFunc
	Capacity int
	Logger   *slog.Logger
	Now      func() time.Time
}

// Engine owns the registry and knows how to collect a tick.
//
// Collect only touches fields that are fixed at construction and may run on
// any goroutine. Apply and everything reading Registry must run on the
// single owning goroutine.
type Engine struct {
	Registry *Registry
	Totals   model.Totals

	source  collector.Source
	finder  Finder
	totals  TotalsFunc
	sampler *Sampler
	logger  *slog.Logger
	now     func() time.Time
}

// New creates an engine tracking the initially discovered processes.
func New(initial []model.ProcInfo, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	capacity := opts.Capacity
	if capacity < 1 {
		capacity = 1
	}
	reg := NewRegistry(capacity)
	t := now()
	for _, info := range initial {
		reg.Add(info, t)
	}
	return &Engine{
		Registry: reg,
		source:   opts.Source,
		finder:   opts.Finder,
		totals:   opts.Totals,
		sampler:  NewSampler(logger),
		logger:   logger,
		now:      now,
	}
}

// Collect reads every target and, in rescan mode, looks for new matches.
// It performs blocking OS calls and never touches the Registry.
//
// Tracked processes are read before the rescan so a slow process-table
// walk can only cost the newcomers their first reading.
func (e *Engine) Collect(ctx context.Context, targets []model.ProcInfo) Batch {
	b := Batch{At: e.now()}
	b.Results = collector.ReadAll(ctx, e.source, targets)

	if e.totals != nil {
		t, err := e.totals(ctx)
		if err != nil {
			e.logger.Debug("system totals unavailable", "err", err)
		}
		b.Totals = t
	}

	if e.finder != nil {
		found, err := e.finder.Find(ctx)
		if err != nil {
			e.logger.Warn("rescan failed", "err", err)
		}
		b.Found = newProcs(targets, found)
		for pid, res := range collector.ReadAll(ctx, e.source, b.Found) {
			b.Results[pid] = res
		}
	}
	return b
}

// Apply folds a collected batch into the registry.
func (e *Engine) Apply(b Batch) ApplyStats {
	st := e.sampler.Apply(e.Registry, b)
	e.Totals = b.Totals
	return st
}

// newProcs returns the found processes whose PID is not a current target.
// A recycled PID is picked up on the rescan after the old owner dies.
func newProcs(targets, found []model.ProcInfo) []model.ProcInfo {
	known := make(map[int32]bool, len(targets))
	for _, t := range targets {
		known[t.PID] = true
	}
	var out []model.ProcInfo
	for _, f := range found {
		if known[f.PID] {
			continue
		}
		out = append(out, f)
	}
	return out
}
