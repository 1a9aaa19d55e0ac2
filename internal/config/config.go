/*
Package config handles loading and saving glyphpick settings.

Settings are stored in ~/.glyphpick.json:

  {
    "catalogPath": "/path/to/emojis.json",
    "columns": 10,
    "recentRows": 2,
    "decayFactor": 0.95,
    "minScore": 0.001
  }

Missing fields fall back to defaults on load, so a partial file is valid.
*/
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when the config file is absent or partial.
const (
	DefaultColumns     = 10
	DefaultRecentRows  = 2
	DefaultDecayFactor = 0.95
	DefaultMinScore    = 0.001
)

// Config represents the settings file.
type Config struct {
	// CatalogPath points to the glyph catalog JSON file.
	CatalogPath string `json:"catalogPath,omitempty"`

	// Columns is the fixed grid column count.
	Columns int `json:"columns,omitempty"`

	// RecentRows is the frequently-used section height in rows.
	RecentRows int `json:"recentRows,omitempty"`

	// DecayFactor multiplies usage scores on every recorded use.
	DecayFactor float64 `json:"decayFactor,omitempty"`

	// MinScore is the pruning floor for decayed usage scores.
	MinScore float64 `json:"minScore,omitempty"`
}

// NewConfig creates a configuration with all defaults applied.
func NewConfig() *Config {
	return &Config{
		Columns:     DefaultColumns,
		RecentRows:  DefaultRecentRows,
		DecayFactor: DefaultDecayFactor,
		MinScore:    DefaultMinScore,
	}
}

// GetDefaultConfigPath returns the path to ~/.glyphpick.json
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".glyphpick.json"), nil
}

// Load reads the configuration from the default path. A missing file is
// not an error; defaults are returned instead.
func Load() (*Config, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the configuration from a specific path, applying defaults
// for absent fields. A missing file yields the default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyDefaults replaces zero or invalid values with defaults.
func (c *Config) applyDefaults() {
	if c.Columns <= 0 {
		c.Columns = DefaultColumns
	}
	if c.RecentRows <= 0 {
		c.RecentRows = DefaultRecentRows
	}
	if c.DecayFactor <= 0 || c.DecayFactor >= 1 {
		c.DecayFactor = DefaultDecayFactor
	}
	if c.MinScore <= 0 {
		c.MinScore = DefaultMinScore
	}
}
