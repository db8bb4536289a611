package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/ftahirops/procgraph/collector"
	"github.com/ftahirops/procgraph/config"
	"github.com/ftahirops/procgraph/engine"
	"github.com/ftahirops/procgraph/ui"
)

// Version is set at build time via ldflags.
var Version = "0.1.0"

// flags holds raw command-line values. Only flags the user set override
// the config file.
type flags struct {
	configPath string
	quality    string
	refreshMS  int
	scale      string
	title      string
	layout     string
	rescan     bool
	logFile    string
}

// Run parses the command line and starts the monitor.
func Run() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var f flags
	c := &cobra.Command{
		Use:   "procgraph NAME|PID[,PID...]",
		Short: "Graph CPU, memory and IO usage of selected processes",
		Long: `procgraph tracks a set of processes and draws their CPU, memory and IO
history as live graphs in the terminal.

The argument is either a comma separated list of PIDs or a case-insensitive
regular expression matched against the full binary path and process name.
Processes that exit stay on screen, frozen at their last values.`,
		Example: `  procgraph firefox
  procgraph 1234,5678 --quality medium
  procgraph 'postgres|pgbouncer' --rescan --refresh 2000`,
		Version:       Version,
		Args:          exactlyOneTarget,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.settings(cmd.Flags().Changed)
			if err != nil {
				return err
			}
			return run(cmd.Context(), args[0], s)
		},
	}

	fl := c.Flags()
	fl.StringVar(&f.configPath, "config", "", "config file (default "+config.Path()+")")
	fl.StringVarP(&f.quality, "quality", "q", "high", "graph quality: high, medium or low")
	fl.IntVarP(&f.refreshMS, "refresh", "r", config.DefaultRefreshMS,
		fmt.Sprintf("refresh interval in milliseconds (%d-%d)", config.MinRefreshMS, config.MaxRefreshMS))
	fl.StringVarP(&f.scale, "scale", "s", "min", "memory graph scale: min or zero")
	fl.StringVarP(&f.title, "title", "t", "cmd", "process title: cmd, path or name")
	fl.StringVar(&f.layout, "layout", "auto", "graph layout: auto, side or stack")
	fl.BoolVar(&f.rescan, "rescan", false, "keep adding newly started processes that match NAME")
	fl.StringVar(&f.logFile, "log-file", "", "write diagnostics to this file")
	return c
}

func exactlyOneTarget(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly one NAME or PID[,PID...] argument (see --help)")
	}
	return nil
}

// settings loads the config file, applies the flags the user changed and
// validates the result.
func (f flags) settings(changed func(string) bool) (config.Settings, error) {
	path := f.configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}
	return f.apply(cfg, changed).Resolve()
}

func (f flags) apply(cfg config.Config, changed func(string) bool) config.Config {
	if changed("quality") {
		cfg.Quality = f.quality
	}
	if changed("refresh") {
		cfg.RefreshMS = f.refreshMS
	}
	if changed("scale") {
		cfg.Scale = f.scale
	}
	if changed("title") {
		cfg.Title = f.title
	}
	if changed("layout") {
		cfg.Layout = f.layout
	}
	if changed("rescan") {
		cfg.Rescan = f.rescan
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	return cfg
}

func run(ctx context.Context, target string, s config.Settings) error {
	sel, err := collector.ParseSelector(target)
	if err != nil {
		return err
	}

	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}
	if width < ui.MinWidth || height < ui.MinHeight {
		return fmt.Errorf("requires terminal width at least %d and height at least %d characters",
			ui.MinWidth, ui.MinHeight)
	}

	logger, closeLog, err := openLogger(s.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	procs, err := collector.Discover(ctx, sel)
	if err != nil {
		return err
	}
	rescan := s.Rescan && sel.IsPattern()
	if len(procs) == 0 && !rescan {
		return fmt.Errorf("no running process matches %q", target)
	}
	logger.Info("starting", "target", target, "processes", len(procs), "refresh", s.Refresh, "rescan", rescan)

	opts := engine.Options{
		Source:   collector.ProcSource{},
		Totals:   collector.SystemTotals,
		Capacity: ui.HistoryCapacity(width, height, s.Pack),
		Logger:   logger,
	}
	if rescan {
		opts.Finder = collector.Finder{Selector: sel}
	}
	eng := engine.New(procs, opts)

	m := ui.NewModel(eng, ui.Options{
		Refresh: s.Refresh,
		Quality: s.Quality,
		Scale:   s.Scale,
		Title:   s.Title,
		Pack:    s.Pack,
		Logger:  logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// openLogger returns a text logger writing to path, or a discarding one
// when path is empty. The terminal belongs to the UI.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}
