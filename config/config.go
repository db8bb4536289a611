package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ftahirops/procgraph/model"
	"gopkg.in/yaml.v3"
)

const (
	MinRefreshMS     = 250
	MaxRefreshMS     = 10_000
	DefaultRefreshMS = 1_000
)

// Config holds user-configurable defaults. Values come from the YAML file
// and are then overridden by command-line flags.
type Config struct {
	Quality   string `yaml:"quality"`
	RefreshMS int    `yaml:"refresh_ms"`
	Scale     string `yaml:"scale"`
	Title     string `yaml:"title"`
	Layout    string `yaml:"layout"`
	Rescan    bool   `yaml:"rescan"`
	LogFile   string `yaml:"log_file"`
}

// Settings is a validated Config with every token parsed.
type Settings struct {
	Quality model.Quality
	Refresh time.Duration
	Scale   model.ScaleMode
	Title   model.TitleMode
	Pack    model.PackMode
	Rescan  bool
	LogFile string
}

// Default returns a config with the documented defaults.
func Default() Config {
	return Config{
		Quality:   "high",
		RefreshMS: DefaultRefreshMS,
		Scale:     "min",
		Title:     "cmd",
		Layout:    "auto",
	}
}

// Path returns ~/.config/procgraph/config.yaml (or under XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "procgraph", "config.yaml")
}

// Load reads the config at path on top of Default(). A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve validates every field and returns the parsed settings.
func (c Config) Resolve() (Settings, error) {
	var s Settings
	var err error
	if s.Quality, err = model.ParseQuality(c.Quality); err != nil {
		return s, err
	}
	if s.Scale, err = model.ParseScaleMode(c.Scale); err != nil {
		return s, err
	}
	if s.Title, err = model.ParseTitleMode(c.Title); err != nil {
		return s, err
	}
	if s.Pack, err = model.ParsePackMode(c.Layout); err != nil {
		return s, err
	}
	if c.RefreshMS < MinRefreshMS || c.RefreshMS > MaxRefreshMS {
		return s, fmt.Errorf("invalid refresh %d ms: must be within [%d, %d]", c.RefreshMS, MinRefreshMS, MaxRefreshMS)
	}
	s.Refresh = time.Duration(c.RefreshMS) * time.Millisecond
	s.Rescan = c.Rescan
	s.LogFile = c.LogFile
	return s, nil
}
