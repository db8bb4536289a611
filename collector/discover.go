package collector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/ftahirops/procgraph/model"
	"github.com/ftahirops/procgraph/util"
	"github.com/shirou/gopsutil/v3/process"
)

// Selector chooses which processes to track: an explicit PID list or a
// case-insensitive pattern matched against the full binary path.
type Selector struct {
	PIDs    []int32
	Pattern *regexp.Regexp
}

// ParseSelector turns the positional NAME|PID argument into a Selector.
func ParseSelector(arg string) (Selector, error) {
	if arg == "" {
		return Selector{}, errors.New("missing process name or PID list")
	}
	if util.IsPIDList(arg) {
		pids, err := util.ParsePIDList(arg)
		if err != nil {
			return Selector{}, err
		}
		return Selector{PIDs: pids}, nil
	}
	re, err := regexp.Compile("(?i)" + arg)
	if err != nil {
		return Selector{}, fmt.Errorf("invalid pattern %q: %w", arg, err)
	}
	return Selector{Pattern: re}, nil
}

// IsPattern reports whether the selector matches by regular expression.
func (s Selector) IsPattern() bool { return s.Pattern != nil }

// Matches reports whether a process with the given binary path and name
// is selected by the pattern.
func (s Selector) Matches(exe, name string) bool {
	if s.Pattern == nil {
		return false
	}
	return s.Pattern.MatchString(exe + " " + name)
}

// Discover returns the processes currently selected, ordered by PID.
// PIDs from an explicit list that do not exist are skipped, and so are
// zombies: they have already exited.
func Discover(ctx context.Context, sel Selector) ([]model.ProcInfo, error) {
	if !sel.IsPattern() {
		var out []model.ProcInfo
		for _, pid := range sel.PIDs {
			p, err := process.NewProcessWithContext(ctx, pid)
			if err != nil || defunct(ctx, p) {
				continue
			}
			out = append(out, describe(ctx, p))
		}
		return out, nil
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	self := int32(os.Getpid())
	var out []model.ProcInfo
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		exe, _ := p.ExeWithContext(ctx)
		name, _ := p.NameWithContext(ctx)
		if !sel.Matches(exe, name) || defunct(ctx, p) {
			continue
		}
		out = append(out, describe(ctx, p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out, nil
}

// defunct reports whether p has exited and only waits for its parent.
func defunct(ctx context.Context, p *process.Process) bool {
	st, err := p.StatusWithContext(ctx)
	return err == nil && isZombie(st)
}

func describe(ctx context.Context, p *process.Process) model.ProcInfo {
	info := model.ProcInfo{PID: p.Pid}
	info.Name, _ = p.NameWithContext(ctx)
	info.Exe, _ = p.ExeWithContext(ctx)
	info.Cmdline, _ = p.CmdlineWithContext(ctx)
	info.CreateTime, _ = p.CreateTimeWithContext(ctx)
	return info
}

// Finder re-runs discovery for a fixed selector.
type Finder struct {
	Selector Selector
}

// Find returns the processes the selector matches right now.
func (f Finder) Find(ctx context.Context) ([]model.ProcInfo, error) {
	return Discover(ctx, f.Selector)
}
