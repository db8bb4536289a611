package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ftahirops/procgraph/model"
)

// summary holds the numbers shown in the top line.
type summary struct {
	totals              model.Totals
	total, hidden, dead int
	marked              bool
	since               time.Duration
}

// summaryLine renders aggregate usage and process counts. Terminals
// narrower than 60 columns get the compact form.
func summaryLine(s summary, width int) string {
	cpu := int(math.Round(s.totals.CPUPct))
	mem := int(math.Round(s.totals.MemPct))
	var line string
	if width < 60 {
		line = fmt.Sprintf("%3d%%:%3d%% | %3d:%3d:%3d", cpu, mem, s.total, s.hidden, s.dead)
		if s.marked {
			line += "  D: " + formatDuration(s.since)
		}
	} else {
		line = fmt.Sprintf("CPU: %3d%%  MEM: %3d%% | Total: %d  Hidden: %d  Dead: %d",
			cpu, mem, s.total, s.hidden, s.dead)
		if s.marked {
			line += "  Delta for last " + formatDuration(s.since)
		}
	}
	return padRight(runewidth.Truncate(line, width, ellipsis), width)
}

// newHelp returns a help model that renders the tooltip bar.
func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = " | "
	plain := lipgloss.NewStyle()
	h.Styles.ShortKey = plain
	h.Styles.ShortDesc = plain
	h.Styles.ShortSeparator = plain
	h.Styles.Ellipsis = plain
	return h
}

// helpBar renders the key tooltip across the full width.
func helpBar(h help.Model, width int) string {
	h.Width = width
	return helpBarStyle.Render(padRight(h.ShortHelpView(keys.ShortHelp()), width))
}

// tooSmall is shown instead of graphs when the terminal is below the
// minimum size.
func tooSmall(width, height int) string {
	return fmt.Sprintf("Requires terminal width at least %d and height at least %d characters (now %dx%d)",
		MinWidth, MinHeight, width, height)
}

// frame joins lines and cuts them to the terminal height.
func frame(lines []string, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
