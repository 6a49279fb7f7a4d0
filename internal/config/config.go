// Package config handles vaultview configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all vaultview configuration.
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Schedule   ScheduleConfig   `toml:"schedule"`
	Display    DisplayConfig    `toml:"display"`
}

// SimulationConfig holds the seed balance and growth-rate settings.
type SimulationConfig struct {
	SeedCapital      float64 `toml:"seed_capital"`
	BootstrapBalance float64 `toml:"bootstrap_balance"`
	BootstrapWeeks   int     `toml:"bootstrap_weeks"`
	MinWeeklyRate    float64 `toml:"min_weekly_rate"`
	MaxWeeklyRate    float64 `toml:"max_weekly_rate"`
}

// ScheduleConfig holds the active window and the weekly trigger target.
// Window bounds are RFC 3339 timestamps; the weekday uses Go numbering
// (Sunday = 0 .. Saturday = 6).
type ScheduleConfig struct {
	WindowStart     string `toml:"window_start"`
	WindowEnd       string `toml:"window_end"`
	Timezone        string `toml:"timezone"`
	TargetWeekday   int    `toml:"target_weekday"`
	TargetHour      int    `toml:"target_hour"`
	TargetMinute    int    `toml:"target_minute"`
	PollIntervalSec int    `toml:"poll_interval_sec"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Theme    string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			SeedCapital:      5000.00,
			BootstrapBalance: 5320.54,
			BootstrapWeeks:   1,
			MinWeeklyRate:    0.005,
			MaxWeeklyRate:    0.022,
		},
		Schedule: ScheduleConfig{
			WindowStart:     "2026-01-09T09:00:00+01:00",
			WindowEnd:       "2026-12-25T18:00:00+01:00",
			Timezone:        "Europe/Berlin",
			TargetWeekday:   int(time.Friday),
			TargetHour:      9,
			TargetMinute:    0,
			PollIntervalSec: 15,
		},
		Display: DisplayConfig{
			Currency: "EUR",
			Theme:    "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vaultview")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vaultview")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// LogPath returns the full path to the diagnostic log file.
func LogPath() string {
	return filepath.Join(Dir(), "vaultview.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Window parses the configured window bounds in the configured timezone.
func (c ScheduleConfig) Window() (start, end time.Time, loc *time.Location, err error) {
	loc, err = time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	start, err = time.Parse(time.RFC3339, c.WindowStart)
	if err != nil {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("parsing window_start: %w", err)
	}
	end, err = time.Parse(time.RFC3339, c.WindowEnd)
	if err != nil {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("parsing window_end: %w", err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("window_end %s is not after window_start %s", c.WindowEnd, c.WindowStart)
	}
	return start.In(loc), end.In(loc), loc, nil
}

// PollInterval returns the poll cadence, clamping unusable values to the default.
func (c ScheduleConfig) PollInterval() time.Duration {
	if c.PollIntervalSec < 1 {
		return 15 * time.Second
	}
	return time.Duration(c.PollIntervalSec) * time.Second
}
