// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Dashboard DashboardConfig `toml:"dashboard"`
	Focus     FocusConfig     `toml:"focus"`
	Grid      GridConfig      `toml:"grid"`
	Stats     StatsConfig     `toml:"stats"`
}

// DashboardConfig maps dashboard-related settings.
type DashboardConfig struct {
	DB          *string `toml:"db"`
	Tips        *string `toml:"tips"`
	TipInterval *int    `toml:"tip-interval"`
}

// FocusConfig maps focus timer settings.
type FocusConfig struct {
	Preset *int `toml:"preset"`
}

// GridConfig maps the weekly grid hour range.
type GridConfig struct {
	StartHour *int `toml:"start-hour"`
	EndHour   *int `toml:"end-hour"`
}

// StatsConfig maps text report settings.
type StatsConfig struct {
	Width *int `toml:"width"`
}

// Template is written by EnsureConfig for a fresh config file.
const Template = `# acadash configuration

[dashboard]
# db = "~/.local/share/acadash/acadash.db"
# tips = "~/.config/acadash/tips.txt"
# tip-interval = 30

[focus]
# preset = 30

[grid]
# start-hour = 7
# end-hour = 20

[stats]
# width = 40
`

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// Validate checks ranges of the values that are set.
func (c FileConfig) Validate() error {
	if v := c.Dashboard.TipInterval; v != nil && *v <= 0 {
		return fmt.Errorf("dashboard.tip-interval must be positive")
	}
	if v := c.Focus.Preset; v != nil && *v <= 0 {
		return fmt.Errorf("focus.preset must be positive")
	}
	start, end := 0, 23
	if v := c.Grid.StartHour; v != nil {
		start = *v
	}
	if v := c.Grid.EndHour; v != nil {
		end = *v
	}
	if start < 0 || end > 23 || start > end {
		return fmt.Errorf("grid hours must satisfy 0 <= start-hour <= end-hour <= 23")
	}
	if v := c.Stats.Width; v != nil && *v <= 0 {
		return fmt.Errorf("stats.width must be positive")
	}
	return nil
}

// EnsureConfig creates the config file from Template when it does not exist.
// The bool reports whether a file was created.
func EnsureConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
