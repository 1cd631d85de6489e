// Package config handles loading and managing Carescope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for Carescope.
type Config struct {
	Scoring  ScoringConfig  `yaml:"scoring"`
	Service  ServiceConfig  `yaml:"service"`
	Partners PartnersConfig `yaml:"partners"`
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	// Weights overrides domain weight multipliers by domain key
	// (badl, iadl, cognition, support, mobility, medication, health,
	// mood, social). Values are clamped to 1-3.
	Weights map[string]int `yaml:"weights"`
}

// ServiceConfig points the CLI at a hosted carescoped instance.
type ServiceConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// PartnersConfig controls the partner registry.
type PartnersConfig struct {
	// RegistryPath points at a yaml partner registry file. Empty means
	// the built-in registry.
	RegistryPath string `yaml:"registry_path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights: map[string]int{},
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .carescope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".carescope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the Carescope cache directory.
// Uses ~/.cache/carescope/ to avoid polluting working directories.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "carescope")
}

// OutcomeDir returns the directory where the CLI saves scored outcomes.
func OutcomeDir() string {
	return filepath.Join(CacheDir(), "outcomes")
}
