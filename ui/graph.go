package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ftahirops/procgraph/engine"
	"github.com/ftahirops/procgraph/model"
)

// blockRenderer draws process blocks for one frame.
type blockRenderer struct {
	reg   *engine.Registry
	geo   geometry
	title model.TitleMode
	scale model.ScaleMode
	pal   Palette
	now   time.Time
}

// render returns the lines of e's block; n is its 1-based position.
func (b blockRenderer) render(e *engine.Entry, n int) []string {
	lines := make([]string, 0, b.geo.blockH)
	lines = append(lines, b.titleLine(e, n), b.ioLine(e))

	cpu := b.metric(e, engine.MetricCPU, b.geo.cpuCols)
	mem := b.metric(e, engine.MetricMem, b.geo.memCols)
	if b.geo.side {
		for i := range cpu {
			gap := b.geo.memX - lipgloss.Width(cpu[i])
			if gap < 1 {
				gap = 1
			}
			lines = append(lines, cpu[i]+strings.Repeat(" ", gap)+mem[i])
		}
		return lines
	}
	lines = append(lines, cpu...)
	return append(lines, mem...)
}

// titleLine centers "[n]-[pid] title" between dashes.
func (b blockRenderer) titleLine(e *engine.Entry, n int) string {
	width := b.geo.width
	prefix := fmt.Sprintf("[%d]-[%d] ", n, e.Info.PID)
	maxw := width - len(prefix)
	if maxw < 0 {
		return prefix[:width]
	}
	name := fadeLeft(b.title.Title(e.Info), maxw)
	spare := maxw - runewidth.StringWidth(name)
	left := spare / 2
	line := strings.Repeat("-", left) + prefix + name + strings.Repeat("-", spare-left)
	if !e.Alive() {
		return deadStyle.Render(line)
	}
	return titleStyle.Render(line)
}

// ioLine shows cumulative read/write totals with the last tick's deltas.
func (b blockRenderer) ioLine(e *engine.Entry) string {
	var s string
	switch {
	case !e.IOValid:
		s = "IO: n/a"
	case b.geo.width < 40:
		s = fmt.Sprintf("R: %s(%s) W: %s(%s)",
			formatBytes(e.IORead), formatBytes(e.Last.IOReadDelta),
			formatBytes(e.IOWrite), formatBytes(e.Last.IOWriteDelta))
	default:
		s = fmt.Sprintf("IO: Read %s(%s), Write %s(%s)",
			formatTotal(e.IORead), formatBytes(e.Last.IOReadDelta),
			formatTotal(e.IOWrite), formatBytes(e.Last.IOWriteDelta))
	}
	return padRight(runewidth.Truncate(s, b.geo.width, ellipsis), b.geo.width)
}

// metric renders one graph: rows lines of label column plus body, then
// the marker line.
func (b blockRenderer) metric(e *engine.Entry, m engine.Metric, cols int) []string {
	rows := b.geo.rows
	var (
		window []model.Point
		axis   engine.Axis
		labels []string
		style  lipgloss.Style
	)
	delta, hasDelta := b.reg.Delta(e, m)

	if m == engine.MetricCPU {
		window = e.CPU.Window(cols)
		axis = engine.CPUAxis(window)
		last, _ := e.CPU.Latest()
		labels = []string{formatCPU(axis.Top), formatCPU(last.Value), "-", "", formatCPU(axis.Bottom)}
		if hasDelta {
			labels[2] = formatCPUDiff(delta)
		}
		if e.MaxCPU > 0 {
			labels[3] = formatCPU(e.MaxCPU)
		}
		style = cpuStyle
	} else {
		window = e.Mem.Window(cols)
		axis = engine.MemAxis(window, b.scale)
		last, _ := e.Mem.Latest()
		labels = []string{formatMem(axis.Top), formatMem(last.Value), "-", "", formatMem(axis.Bottom)}
		if hasDelta {
			labels[2] = formatMemDiff(delta)
		}
		if e.MaxMem > 0 {
			labels[3] = formatMem(e.MaxMem)
		}
		style = memStyle
	}

	chart := chartBody(window, axis, rows, cols, b.pal)
	out := make([]string, 0, rows+1)
	for r := 0; r < rows; r++ {
		out = append(out, labelCell(labels, r, rows)+style.Render(chart[r]))
	}
	if m == engine.MetricCPU && !e.Alive() {
		msg := "Exited " + formatDuration(b.now.Sub(e.DiedAt)) + " ago"
		msg = padRight(runewidth.Truncate(msg, cols, ""), cols)
		return append(out, strings.Repeat(" ", labelWidth)+exitedStyle.Render(msg))
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", labelWidth))
	for _, r := range markers(window, cols) {
		sb.WriteString(markerRune(r))
	}
	return append(out, sb.String())
}

// labelCell returns the label column for row r. The bottom axis label
// takes the last row when there is room for all five labels.
func labelCell(labels []string, r, rows int) string {
	text := ""
	switch {
	case r == rows-1 && rows >= labelRows:
		text = labels[4]
	case r < 4:
		text = labels[r]
	}
	cell := fmt.Sprintf("%*s", labelWidth-1, text)
	if r == 1 {
		return currentStyle.Render(cell) + labelStyle.Render("│")
	}
	return labelStyle.Render(cell + "│")
}
