// Package config loads analyzer defaults from a configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for codemetrics.
type Config struct {
	MassChange MassChangeConfig `koanf:"mass_change"`
	Age        AgeConfig        `koanf:"age"`
	HotSpot    HotSpotConfig    `koanf:"hot_spot"`
	CoChange   CoChangeConfig   `koanf:"co_change"`
	Components ComponentsConfig `koanf:"components"`
	Collector  CollectorConfig  `koanf:"collector"`
}

// MassChangeConfig controls mass-change extraction.
type MassChangeConfig struct {
	MinChanges int `koanf:"min_changes"`
}

// AgeConfig controls the age report.
type AgeConfig struct {
	// ExcludedColumns are removed from the default grouping keys.
	ExcludedColumns []string `koanf:"excluded_columns"`
	UTC             bool     `koanf:"utc"`
}

// HotSpotConfig controls hot-spot ranking.
type HotSpotConfig struct {
	By                string   `koanf:"by"`
	CountOneChangePer []string `koanf:"count_one_change_per"`
}

// CoChangeConfig controls co-change analysis.
type CoChangeConfig struct {
	By string `koanf:"by"`
	On string `koanf:"on"`
}

// ComponentsConfig controls component inference.
type ComponentsConfig struct {
	Clusters  int      `koanf:"clusters"`
	StopWords []string `koanf:"stop_words"`
}

// CollectorConfig controls the git log collector.
type CollectorConfig struct {
	Days int `koanf:"days"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MassChange: MassChangeConfig{
			MinChanges: 1,
		},
		Age: AgeConfig{
			ExcludedColumns: []string{
				"revision", "author", "date", "textmods",
				"action", "propmods", "message",
			},
			UTC: true,
		},
		HotSpot: HotSpotConfig{
			By:                "path",
			CountOneChangePer: []string{"revision"},
		},
		CoChange: CoChangeConfig{
			By: "path",
			On: "revision",
		},
		Components: ComponentsConfig{
			Clusters: 8,
		},
		Collector: CollectorConfig{
			Days: 0, // full history
		},
	}
}

// Validate reports the first nonsensical setting.
func (c *Config) Validate() error {
	if c.Components.Clusters <= 0 {
		return fmt.Errorf("components.clusters must be positive, got %d", c.Components.Clusters)
	}
	if c.HotSpot.By == "" {
		return fmt.Errorf("hot_spot.by must not be empty")
	}
	if c.CoChange.By == "" || c.CoChange.On == "" {
		return fmt.Errorf("co_change.by and co_change.on must not be empty")
	}
	return nil
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"codemetrics.toml",
		"codemetrics.yaml",
		"codemetrics.yml",
		"codemetrics.json",
		".codemetrics.toml",
		".codemetrics.yaml",
		".codemetrics.yml",
		".codemetrics.json",
	}

	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			cfg, err := Load(name)
			if err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}
