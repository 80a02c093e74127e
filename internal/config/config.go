// Package config resolves mindplan settings from defaults, an optional YAML
// file and MINDPLAN_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// Dir is the per-user directory holding the store and config file.
	Dir = ".mindplan"

	defaultDBName     = "mindplan.db"
	defaultConfigName = "config.yaml"
	defaultHistory    = 100
)

// Config holds the runtime settings.
type Config struct {
	DBPath          string `yaml:"db_path"`
	ExcludeWeekends bool   `yaml:"exclude_weekends"`
	HistoryLimit    int    `yaml:"history_limit"`
	LogLevel        string `yaml:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
	CSVBOM    bool   `yaml:"csv_bom"`
}

// DefaultConfig returns the settings used when nothing is configured.
// Business-day counting is on by default.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:          filepath.Join(home, Dir, defaultDBName),
		ExcludeWeekends: true,
		HistoryLimit:    defaultHistory,
		LogLevel:        "warn",
		LogFormat:       "text",
	}
}

// DefaultPath is the config file location under home.
func DefaultPath(home string) string {
	return filepath.Join(home, Dir, defaultConfigName)
}

// Load resolves the configuration for the current user. MINDPLAN_CONFIG
// overrides the file location.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	path := os.Getenv("MINDPLAN_CONFIG")
	if path == "" {
		path = DefaultPath(home)
	}
	return LoadFrom(path, home, os.Getenv)
}

// LoadFrom layers the YAML file at path, when it exists, and then the
// environment read through getenv over the defaults for home.
func LoadFrom(path, home string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig(home)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("MINDPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("MINDPLAN_EXCLUDE_WEEKENDS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MINDPLAN_EXCLUDE_WEEKENDS: %w", err)
		}
		cfg.ExcludeWeekends = b
	}
	if v := getenv("MINDPLAN_HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MINDPLAN_HISTORY_LIMIT: %w", err)
		}
		cfg.HistoryLimit = n
	}
	if v := getenv("MINDPLAN_LOG"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("MINDPLAN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must be non-negative, got %d", c.HistoryLimit)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}
