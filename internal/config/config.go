// Package config handles the global quickrefs configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultIndexFile is used when neither config nor flags name one.
const DefaultIndexFile = "index.json"

// Config represents the global quickrefs configuration.
type Config struct {
	// IndexFile is the default index file name for build and the
	// jumplist commands. Flags override it.
	IndexFile string `toml:"index_file"`

	// Color controls color output: "auto" (TTY detection), "always",
	// or "never". The --color flag forces it on for one invocation.
	Color string `toml:"color"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional color for section heading labels.
	// Supported values are ANSI color codes ("0" to "255") or hex
	// colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// ResolvedIndexFile returns the configured index file name, falling back
// to the default.
func (c *Config) ResolvedIndexFile() string {
	if c != nil && c.IndexFile != "" {
		return c.IndexFile
	}
	return DefaultIndexFile
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Config{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "quickrefs", "config.toml"), nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
}
