package collector

import (
	"context"
	"errors"

	"github.com/ftahirops/procgraph/model"
)

// ErrNotFound means the process is no longer in the OS process table.
// It is the only signal that turns a tracked process dead.
var ErrNotFound = errors.New("process not found")

// Source returns raw readings for tracked processes.
type Source interface {
	Read(ctx context.Context, p model.ProcInfo) (model.Reading, error)
}

// Result is the outcome of one Read. Err is nil, ErrNotFound, or a
// transient failure that must not affect the process status.
type Result struct {
	Reading model.Reading
	Err     error
}

// ReadAll reads every target in order. A failure for one process never
// aborts the others. Targets not reached before ctx expires are reported
// with ctx.Err(), which callers treat as a transient miss.
func ReadAll(ctx context.Context, src Source, targets []model.ProcInfo) map[int32]Result {
	out := make(map[int32]Result, len(targets))
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			out[t.PID] = Result{Err: err}
			continue
		}
		r, err := src.Read(ctx, t)
		out[t.PID] = Result{Reading: r, Err: err}
	}
	return out
}
