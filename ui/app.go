package ui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/procgraph/engine"
	"github.com/ftahirops/procgraph/model"
)

const statusTTL = 5 * time.Second

type tickMsg time.Time

// collectMsg carries one tick's readings back to the event loop.
type collectMsg engine.Batch

// Options configures the monitor UI.
type Options struct {
	Refresh time.Duration
	Quality model.Quality
	Scale   model.ScaleMode
	Title   model.TitleMode
	Pack    model.PackMode
	ShotDir string // where F2 screenshots go; "" is the working directory
	Logger  *slog.Logger
	Now     func() time.Time
}

// Model is the bubbletea model. It is the single owner of the engine's
// registry: samples are collected by commands and applied in Update.
type Model struct {
	engine  *engine.Engine
	refresh time.Duration
	shotDir string
	logger  *slog.Logger
	now     func() time.Time
	help    help.Model

	width  int
	height int

	quality model.Quality
	scale   model.ScaleMode
	title   model.TitleMode
	pack    model.PackMode
	scroll  int
	tooltip bool

	status    string
	statusErr bool
	statusAt  time.Time
}

// NewModel creates the UI around eng.
func NewModel(eng *engine.Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = time.Second
	}
	shotDir := opts.ShotDir
	if shotDir == "" {
		shotDir = "."
	}
	return Model{
		engine:  eng,
		refresh: refresh,
		shotDir: shotDir,
		logger:  logger,
		now:     now,
		help:    newHelp(),
		quality: opts.Quality,
		scale:   opts.Scale,
		title:   opts.Title,
		pack:    opts.Pack,
	}
}

// HistoryCapacity returns how many points per metric a terminal of the
// given size can display.
func HistoryCapacity(width, height int, pack model.PackMode) int {
	return computeGeometry(width, height, 1, pack).capacity()
}

// Init starts the first collection.
func (m Model) Init() tea.Cmd {
	return m.collect()
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// collect reads the current targets off the event loop. The target list is
// copied here so the command never touches the registry.
func (m Model) collect() tea.Cmd {
	eng, timeout := m.engine, m.refresh
	targets := eng.Registry.Targets()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return collectMsg(eng.Collect(ctx, targets))
	}
}

// Update applies collected batches, key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.tooSmall() {
			m.engine.Registry.Resize(m.geometry().capacity())
		}
		m.clampScroll()

	case tickMsg:
		return m, m.collect()

	case collectMsg:
		st := m.engine.Apply(engine.Batch(msg))
		if st.Missed > 0 {
			m.logger.Debug("tick applied", "sampled", st.Sampled, "missed", st.Missed)
		}
		m.clampScroll()
		// Next tick only after this one is applied: samples never overlap.
		return m, tick(m.refresh)

	case shotMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
			m.logger.Warn("screenshot failed", "err", msg.err)
		} else {
			m.setStatus("Saved "+msg.path, false)
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	reg := m.engine.Registry
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Tooltip):
		m.tooltip = !m.tooltip
	case key.Matches(msg, keys.Shot):
		return m, saveShot(m.View(), m.shotDir, m.now())
	case key.Matches(msg, keys.Quality):
		m.quality = m.quality.Next()
	case key.Matches(msg, keys.Title):
		m.title = m.title.Next()
	case key.Matches(msg, keys.Scale):
		m.scale = m.scale.Toggle()
	case key.Matches(msg, keys.Reset):
		m.resetMax()
	case key.Matches(msg, keys.Mark):
		reg.ToggleMark(m.now())
	case key.Matches(msg, keys.Up):
		m.scroll--
	case key.Matches(msg, keys.Down):
		m.scroll++
	case key.Matches(msg, keys.PageUp):
		m.scroll -= m.page()
	case key.Matches(msg, keys.PageDown):
		m.scroll += m.page()
	case key.Matches(msg, keys.Home):
		m.scroll = 0
	case key.Matches(msg, keys.End):
		m.scroll = reg.Len()
	}
	m.clampScroll()
	return m, nil
}

func (m Model) geometry() geometry {
	return computeGeometry(m.width, m.height, m.engine.Registry.Len(), m.pack)
}

func (m Model) tooSmall() bool {
	return m.width < MinWidth || m.height < MinHeight
}

// page is the number of blocks on one screen.
func (m Model) page() int {
	if p := m.geometry().visible; p > 0 {
		return p
	}
	return 1
}

func (m *Model) clampScroll() {
	m.scroll = clampScroll(m.scroll, m.engine.Registry.Len(), m.geometry().visible)
}

// resetMax lowers the maxima of the blocks on screen to what their graphs
// currently show.
func (m *Model) resetMax() {
	if m.tooSmall() {
		return
	}
	g := m.geometry()
	entries := m.engine.Registry.Entries()
	for i := m.scroll; i < m.scroll+g.visible && i < len(entries); i++ {
		m.engine.Registry.ResetMax(entries[i], g.cpuCols, g.memCols)
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
	m.statusAt = m.now()
}

// View renders the top line and the visible process blocks.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.tooSmall() {
		return tooSmall(m.width, m.height)
	}

	reg := m.engine.Registry
	entries := reg.Entries()
	g := m.geometry()
	now := m.now()

	lines := make([]string, 0, m.height)
	lines = append(lines, m.topLine(g, now))
	if len(entries) == 0 {
		lines = append(lines, deadStyle.Render("Waiting for matching processes..."))
		return frame(lines, m.height)
	}

	r := blockRenderer{
		reg:   reg,
		geo:   g,
		title: m.title,
		scale: m.scale,
		pal:   PaletteFor(m.quality),
		now:   now,
	}
	for i := m.scroll; i < m.scroll+g.visible && i < len(entries); i++ {
		lines = append(lines, r.render(entries[i], i+1)...)
	}
	return frame(lines, m.height)
}

// topLine is the tooltip bar, a recent status message, or the summary.
func (m Model) topLine(g geometry, now time.Time) string {
	if m.tooltip {
		return helpBar(m.help, m.width)
	}
	if m.status != "" && now.Sub(m.statusAt) < statusTTL {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		return style.Render(padRight(fadeLeft(m.status, m.width), m.width))
	}
	reg := m.engine.Registry
	return summaryLine(summary{
		totals: m.engine.Totals,
		total:  reg.Len(),
		hidden: g.hidden(reg.Len()),
		dead:   reg.Dead(),
		marked: reg.Marked(),
		since:  reg.MarkSince(now),
	}, m.width)
}
