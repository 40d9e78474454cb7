package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage driver names.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Storage StorageConfig `yaml:"storage"`
	Git     GitConfig     `yaml:"git"`
	Log     LogConfig     `yaml:"log"`
}

// ProfileConfig identifies the owner.
type ProfileConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// StorageConfig selects the snapshot store backend.
type StorageConfig struct {
	Driver string `yaml:"driver"`         // "file" or "sqlite"
	Path   string `yaml:"path,omitempty"` // sqlite database file, relative to the data dir
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// LogConfig controls logger verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(name, currency string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:     name,
			Currency: currency,
		},
		Storage: StorageConfig{
			Driver: DriverFile,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Tally",
			AuthorEmail: "tally@localhost",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
