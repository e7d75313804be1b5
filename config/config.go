package config

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rustyeddy/tradeplan/logging"
	"github.com/rustyeddy/tradeplan/market"
	"github.com/rustyeddy/tradeplan/risk"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the config file.
const (
	EnvDBPath   = "TRADEPLAN_DB"
	EnvLogLevel = "TRADEPLAN_LOG_LEVEL"
)

// Config is the complete tradeplan configuration
type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Planner  PlannerConfig  `json:"planner" yaml:"planner"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
	Seed     SeedConfig     `json:"seed" yaml:"seed"`
}

type DatabaseConfig struct {
	Path string `json:"path" yaml:"path"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// PlannerConfig holds position planner defaults
type PlannerConfig struct {
	DefaultSLPips float64 `json:"default_sl_pips" yaml:"default_sl_pips"`
}

type JournalConfig struct {
	// ZeroIsUnset treats a price of exactly 0 as "not entered", which is
	// how journals from the form-based planner were written.
	ZeroIsUnset bool `json:"zero_is_unset" yaml:"zero_is_unset"`
}

// SeedConfig lists the reference rows created when missing at startup.
type SeedConfig struct {
	Instruments []market.Instrument `json:"instruments" yaml:"instruments"`
	Portfolios  []risk.Portfolio    `json:"portfolios" yaml:"portfolios"`
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load reads path when it is set, otherwise starts from Default, then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv loads ./.env when present and overrides fields from the
// TRADEPLAN_* variables.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	c.Database.Path = cmp.Or(strings.TrimSpace(os.Getenv(EnvDBPath)), c.Database.Path)
	c.Log.Level = cmp.Or(strings.TrimSpace(os.Getenv(EnvLogLevel)), c.Log.Level)
	return nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path is required")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Planner.DefaultSLPips <= 0 {
		return fmt.Errorf("planner.default_sl_pips must be positive")
	}

	symbols := map[string]bool{}
	for _, inst := range c.Seed.Instruments {
		if err := inst.Validate(); err != nil {
			return fmt.Errorf("seed.instruments: %w", err)
		}
		if symbols[inst.Symbol] {
			return fmt.Errorf("seed.instruments: duplicate symbol %s", inst.Symbol)
		}
		symbols[inst.Symbol] = true
	}

	names := map[string]bool{}
	for _, p := range c.Seed.Portfolios {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("seed.portfolios: %w", err)
		}
		if names[p.Name] {
			return fmt.Errorf("seed.portfolios: duplicate name %s", p.Name)
		}
		names[p.Name] = true
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "./tradeplan.sqlite"},
		Log:      LogConfig{Level: "info"},
		Planner:  PlannerConfig{DefaultSLPips: risk.DefaultSLPips},
		Journal:  JournalConfig{ZeroIsUnset: true},
		Seed: SeedConfig{
			Instruments: append([]market.Instrument(nil), market.DefaultInstruments...),
			Portfolios:  []risk.Portfolio{risk.DefaultPortfolio},
		},
	}
}
