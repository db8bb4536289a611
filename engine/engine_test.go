package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ftahirops/procgraph/collector"
	"github.com/ftahirops/procgraph/model"
)

// scriptSource returns readings from a per-PID script, one per call.
type scriptSource struct {
	script map[int32][]collector.Result
	calls  map[int32]int
}

func (s *scriptSource) Read(_ context.Context, p model.ProcInfo) (model.Reading, error) {
	steps := s.script[p.PID]
	i := s.calls[p.PID]
	s.calls[p.PID]++
	if i >= len(steps) {
		return model.Reading{}, collector.ErrNotFound
	}
	return steps[i].Reading, steps[i].Err
}

type staticFinder []model.ProcInfo

func (f staticFinder) Find(context.Context) ([]model.ProcInfo, error) { return f, nil }

type failingFinder struct{}

func (failingFinder) Find(context.Context) ([]model.ProcInfo, error) {
	return nil, errors.New("boom")
}

// slowFinder blocks until the tick's deadline passes.
type slowFinder struct{}

func (slowFinder) Find(ctx context.Context) ([]model.ProcInfo, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// tick runs one collect/apply cycle the way the UI does.
func tick(ctx context.Context, eng *Engine) ApplyStats {
	return eng.Apply(eng.Collect(ctx, eng.Registry.Targets()))
}

func fakeClock(step time.Duration) func() time.Time {
	now := t0
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestEngineTicks(t *testing.T) {
	src := &scriptSource{
		script: map[int32][]collector.Result{
			1: {ok(0, 100), ok(0.5, 200), ok(1.0, 300)},
			2: {ok(0, 50)},
		},
		calls: map[int32]int{},
	}
	eng := New([]model.ProcInfo{{PID: 1}, {PID: 2}}, Options{
		Source:   src,
		Capacity: 8,
		Now:      fakeClock(time.Second),
		Totals: func(context.Context) (model.Totals, error) {
			return model.Totals{CPUPct: 12, MemPct: 34}, nil
		},
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		tick(ctx, eng)
	}

	p1, _ := eng.Registry.Get(1)
	if p1.CPU.Len() != 3 {
		t.Fatalf("pid 1 samples = %d", p1.CPU.Len())
	}
	if last, _ := p1.CPU.Latest(); last.Value != 50 {
		t.Fatalf("pid 1 cpu = %v", last.Value)
	}
	p2, _ := eng.Registry.Get(2)
	if p2.Alive() || p2.Mem.Len() != 1 {
		t.Fatalf("pid 2 should have died after one sample: alive=%v len=%d", p2.Alive(), p2.Mem.Len())
	}
	if src.calls[2] != 2 {
		t.Fatalf("dead process must not be read again, calls=%d", src.calls[2])
	}
	if eng.Totals.CPUPct != 12 || eng.Totals.MemPct != 34 {
		t.Fatalf("totals %+v", eng.Totals)
	}
}

func TestEngineCollectDoesNotMutate(t *testing.T) {
	src := &scriptSource{
		script: map[int32][]collector.Result{1: {ok(0, 100)}},
		calls:  map[int32]int{},
	}
	eng := New([]model.ProcInfo{{PID: 1}}, Options{Source: src, Capacity: 4})
	b := eng.Collect(context.Background(), eng.Registry.Targets())

	e, _ := eng.Registry.Get(1)
	if e.Mem.Len() != 0 {
		t.Fatal("Collect must not touch the registry")
	}
	eng.Apply(b)
	if e.Mem.Len() != 1 {
		t.Fatal("Apply must record the sample")
	}
}

func TestEngineRescan(t *testing.T) {
	src := &scriptSource{
		script: map[int32][]collector.Result{
			1: {ok(0, 1), ok(0, 1)},
			9: {ok(0, 900), ok(0, 950)},
		},
		calls: map[int32]int{},
	}
	finder := staticFinder{{PID: 1}, {PID: 9, Name: "newcomer"}}
	eng := New([]model.ProcInfo{{PID: 1}}, Options{Source: src, Finder: finder, Capacity: 4})

	st := tick(context.Background(), eng)
	if st.Added != 1 || eng.Registry.Len() != 2 {
		t.Fatalf("stats %+v len %d", st, eng.Registry.Len())
	}
	st = tick(context.Background(), eng)
	if st.Added != 0 {
		t.Fatalf("known process re-added: %+v", st)
	}
	e, _ := eng.Registry.Get(9)
	if e.Mem.Len() != 2 {
		t.Fatalf("newcomer samples = %d", e.Mem.Len())
	}
}

func TestEngineRescanFailureKeepsSampling(t *testing.T) {
	src := &scriptSource{
		script: map[int32][]collector.Result{1: {ok(0, 1)}},
		calls:  map[int32]int{},
	}
	eng := New([]model.ProcInfo{{PID: 1}}, Options{Source: src, Finder: failingFinder{}, Capacity: 4})
	st := tick(context.Background(), eng)
	if st.Sampled != 1 {
		t.Fatalf("stats %+v", st)
	}
}

func TestEngineSlowRescanKeepsSampling(t *testing.T) {
	src := &scriptSource{
		script: map[int32][]collector.Result{1: {ok(0, 10), ok(0.01, 20), ok(0.02, 30)}},
		calls:  map[int32]int{},
	}
	eng := New([]model.ProcInfo{{PID: 1}}, Options{Source: src, Finder: slowFinder{}, Capacity: 4})

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		st := tick(ctx, eng)
		cancel()
		if st.Sampled != 1 || st.Missed != 0 {
			t.Fatalf("tick %d: %+v", i, st)
		}
	}
	e, _ := eng.Registry.Get(1)
	if e.Mem.Len() != 3 {
		t.Fatalf("samples after 3 ticks = %d", e.Mem.Len())
	}
}

func TestEngineRescanSkipsExitedNewcomer(t *testing.T) {
	src := &scriptSource{
		script: map[int32][]collector.Result{1: {ok(0, 1)}},
		calls:  map[int32]int{},
	}
	finder := staticFinder{{PID: 7, Name: "short-lived"}}
	eng := New([]model.ProcInfo{{PID: 1}}, Options{Source: src, Finder: finder, Capacity: 4})

	st := tick(context.Background(), eng)
	if st.Added != 0 || eng.Registry.Len() != 1 {
		t.Fatalf("exited newcomer was tracked: %+v len %d", st, eng.Registry.Len())
	}
	if _, ok := eng.Registry.Get(7); ok {
		t.Fatal("pid 7 must not be in the registry")
	}
}

func TestNewProcsSkipsKnownPIDs(t *testing.T) {
	targets := []model.ProcInfo{{PID: 1, CreateTime: 10}}
	found := []model.ProcInfo{{PID: 1, CreateTime: 10}, {PID: 1, CreateTime: 20}, {PID: 2}}
	got := newProcs(targets, found)
	if len(got) != 1 || got[0].PID != 2 {
		t.Fatalf("newProcs = %v", got)
	}
}
