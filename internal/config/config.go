package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Session   SessionConfig   `yaml:"session"`
}

// DataConfig locates the persisted JSON collections. Each collection lives in
// its own file under Dir; explicit per-file paths override the default names.
type DataConfig struct {
	Dir      string `yaml:"dir"`
	Members  string `yaml:"members"`
	Vehicles string `yaml:"vehicles"`
	Gear     string `yaml:"gear"`
	Rentals  string `yaml:"rentals"`
	Profits  string `yaml:"profits"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RecalculateProfits string `yaml:"recalculate_profits"`
}

// SessionConfig controls the session clock shown in watch mode
type SessionConfig struct {
	TickSeconds int `yaml:"tick_seconds"`
}

// Load reads configuration from a YAML file. A missing file is not an error:
// the tool runs fine on defaults alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration and apply defaults
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DATA_DIR"); val != "" {
		c.Data.Dir = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("RECALC_CRON"); val != "" {
		c.Scheduler.RecalculateProfits = val
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	if c.Data.Members == "" {
		c.Data.Members = filepath.Join(c.Data.Dir, "members.json")
	}
	if c.Data.Vehicles == "" {
		c.Data.Vehicles = filepath.Join(c.Data.Dir, "vehicles.json")
	}
	if c.Data.Gear == "" {
		c.Data.Gear = filepath.Join(c.Data.Dir, "gear.json")
	}
	if c.Data.Rentals == "" {
		c.Data.Rentals = filepath.Join(c.Data.Dir, "rentals.json")
	}
	if c.Data.Profits == "" {
		c.Data.Profits = filepath.Join(c.Data.Dir, "profits.json")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Hourly recalculation keeps the derived calendar close to the rentals
	// registry even if nobody presses refresh.
	if c.Scheduler.RecalculateProfits == "" {
		c.Scheduler.RecalculateProfits = "0 0 * * * *"
	}

	if c.Session.TickSeconds == 0 {
		c.Session.TickSeconds = 1
	}
	if c.Session.TickSeconds < 0 {
		return fmt.Errorf("session tick_seconds must be positive: %d", c.Session.TickSeconds)
	}

	return nil
}
