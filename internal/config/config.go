// Package config handles configuration loading and validation for pagescout.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/csheth/pagescout/internal/logging"
	"github.com/csheth/pagescout/internal/textwrap"
)

// Config holds the application configuration.
type Config struct {
	Search SearchConfig `yaml:"search" toml:"search"`
	Viewer ViewerConfig `yaml:"viewer" toml:"viewer"`
	Theme  Theme        `yaml:"theme" toml:"theme"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// SearchConfig controls how queries match page text.
type SearchConfig struct {
	CaseSensitive bool `yaml:"case_sensitive" toml:"case_sensitive"`
}

// ViewerConfig controls page loading and the terminal screen.
type ViewerConfig struct {
	TabWidth  int   `yaml:"tab_width" toml:"tab_width"`
	AltScreen *bool `yaml:"alt_screen" toml:"alt_screen"` // nil means enabled
}

// UseAltScreen reports whether the viewer takes over the alternate screen.
func (v ViewerConfig) UseAltScreen() bool {
	return v.AltScreen == nil || *v.AltScreen
}

// Theme maps each screen region to a color. Colors are ANSI codes (0-255) or
// hex values such as "#ffaa00".
type Theme struct {
	Header    string `yaml:"header" toml:"header"`
	Footer    string `yaml:"footer" toml:"footer"`
	Content   string `yaml:"content" toml:"content"`
	Highlight string `yaml:"highlight" toml:"highlight"` // background of matches
	Current   string `yaml:"current" toml:"current"`     // background of the current match
	Status    string `yaml:"status" toml:"status"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Viewer: ViewerConfig{
			TabWidth: textwrap.DefaultTabWidth,
		},
		Theme: Theme{
			Header:    "6",
			Footer:    "3",
			Content:   "7",
			Highlight: "3",
			Current:   "208",
			Status:    "2",
		},
		Log: LogConfig{
			Level: "info",
			File:  logging.DefaultFile(),
		},
	}
}

// DefaultPath returns the config file consulted when no path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pagescout", "config.yaml")
}

// Load reads configuration from path. A missing file yields the defaults.
// Files ending in .toml are decoded as TOML; anything else as YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := decode(path, data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Viewer.TabWidth == 0 {
		c.Viewer.TabWidth = defaults.Viewer.TabWidth
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}

	theme := &c.Theme
	for _, field := range []struct {
		value    *string
		fallback string
	}{
		{&theme.Header, defaults.Theme.Header},
		{&theme.Footer, defaults.Theme.Footer},
		{&theme.Content, defaults.Theme.Content},
		{&theme.Highlight, defaults.Theme.Highlight},
		{&theme.Current, defaults.Theme.Current},
		{&theme.Status, defaults.Theme.Status},
	} {
		if *field.value == "" {
			*field.value = field.fallback
		}
	}
}
