// Package config loads the solver configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read if none is given.
const DefaultPath = "keypadsolver.yaml"

// Config is the content of a configuration file.
type Config struct {
	Depths   []int  `yaml:"depths" json:"depths"`
	LogLevel string `yaml:"log_level" json:"log_level"`
	Input    string `yaml:"input" json:"input"`
}

// Default returns the configuration used without configuration file.
func Default() Config {
	return Config{Depths: []int{2, 25}, LogLevel: "info"}
}

// Load reads the configuration file at path (YAML, or JSON for a .json extension).
// Missing keys keep their default; a missing file yields the default configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the depths of cfg.
func (cfg Config) Validate() error {
	if len(cfg.Depths) == 0 {
		return fmt.Errorf("no depths configured")
	}
	for _, depth := range cfg.Depths {
		if depth < 0 {
			return fmt.Errorf("invalid depth %d", depth)
		}
	}
	return nil
}
