package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ftahirops/procgraph/model"
)

func TestDefaultResolves(t *testing.T) {
	s, err := Default().Resolve()
	if err != nil {
		t.Fatalf("Default().Resolve(): %v", err)
	}
	if s.Quality != model.QualityHigh || s.Scale != model.ScaleMin || s.Title != model.TitleCmd {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if s.Refresh != time.Second {
		t.Errorf("refresh = %v, want 1s", s.Refresh)
	}
	if s.Pack != model.PackAuto {
		t.Errorf("pack = %v, want auto", s.Pack)
	}
}

func TestResolveRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"quality", func(c *Config) { c.Quality = "ultra" }, "quality"},
		{"scale", func(c *Config) { c.Scale = "max" }, "scale"},
		{"title", func(c *Config) { c.Title = "pid" }, "title"},
		{"layout", func(c *Config) { c.Layout = "grid" }, "layout"},
		{"refresh too low", func(c *Config) { c.RefreshMS = 249 }, "refresh"},
		{"refresh too high", func(c *Config) { c.RefreshMS = 10_001 }, "refresh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			_, err := c.Resolve()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestResolveBounds(t *testing.T) {
	for _, ms := range []int{MinRefreshMS, MaxRefreshMS} {
		c := Default()
		c.RefreshMS = ms
		if _, err := c.Resolve(); err != nil {
			t.Errorf("refresh %d: unexpected error %v", ms, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}

	path := filepath.Join(dir, "config.yaml")
	body := "quality: LOW\nrefresh_ms: 500\nscale: zero\nrescan: true\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.Quality != model.QualityLow || s.Scale != model.ScaleZero || !s.Rescan {
		t.Errorf("unexpected settings %+v", s)
	}
	if s.Refresh != 500*time.Millisecond {
		t.Errorf("refresh = %v", s.Refresh)
	}
	if s.Title != model.TitleCmd {
		t.Errorf("unset title should keep default, got %v", s.Title)
	}

	if err := os.WriteFile(path, []byte("quality: [\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml: expected error")
	}
}

func TestPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got, want := Path(), "/tmp/xdg/procgraph/config.yaml"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
