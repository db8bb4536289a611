package collector

import (
	"context"
	"fmt"

	"github.com/ftahirops/procgraph/model"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemTotals returns host-wide CPU usage since the previous call and the
// share of used memory.
func SystemTotals(ctx context.Context) (model.Totals, error) {
	var t model.Totals
	pct, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return t, fmt.Errorf("cpu percent: %w", err)
	}
	if len(pct) > 0 {
		t.CPUPct = pct[0]
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return t, fmt.Errorf("virtual memory: %w", err)
	}
	t.MemPct = vm.UsedPercent
	return t, nil
}
