package collector

import (
	"context"
	"errors"
	"fmt"

	"github.com/ftahirops/procgraph/model"
	"github.com/shirou/gopsutil/v3/process"
)

// ProcSource reads per-PID counters through gopsutil.
type ProcSource struct{}

// Read returns the CPU time, RSS and IO counters of info's process, or
// ErrNotFound once it has exited or its PID was reused.
func (ProcSource) Read(ctx context.Context, info model.ProcInfo) (model.Reading, error) {
	var r model.Reading
	p, err := process.NewProcessWithContext(ctx, info.PID)
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return r, ErrNotFound
		}
		return r, fmt.Errorf("open pid %d: %w", info.PID, err)
	}

	// A different create time means the PID was recycled by another process.
	if info.CreateTime != 0 {
		if ct, err := p.CreateTimeWithContext(ctx); err == nil && ct != info.CreateTime {
			return r, ErrNotFound
		}
	}
	if st, err := p.StatusWithContext(ctx); err == nil && isZombie(st) {
		return r, ErrNotFound
	}

	times, err := p.TimesWithContext(ctx)
	if err != nil {
		return r, classify(ctx, info.PID, "cpu times", err)
	}
	r.CPUTime = times.User + times.System

	mem, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return r, classify(ctx, info.PID, "memory", err)
	}
	r.MemBytes = mem.RSS

	// /proc/PID/io needs ptrace access; keep CPU and memory when it is denied.
	if io, err := p.IOCountersWithContext(ctx); err == nil {
		r.ReadBytes = io.ReadBytes
		r.WriteBytes = io.WriteBytes
		r.IOValid = true
	}
	return r, nil
}

// classify turns a read failure into ErrNotFound when the process exited
// mid-read, otherwise into a transient error.
func classify(ctx context.Context, pid int32, what string, err error) error {
	if ok, perr := process.PidExistsWithContext(ctx, pid); perr == nil && !ok {
		return ErrNotFound
	}
	return fmt.Errorf("read %s of pid %d: %w", what, pid, err)
}

func isZombie(status []string) bool {
	for _, s := range status {
		if s == process.Zombie {
			return true
		}
	}
	return false
}
