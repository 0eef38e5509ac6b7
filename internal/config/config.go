// Package config handles rad-sync configuration loading and defaults.
//
// Operator defaults live in $RAD_HOME/sync.yaml. They sit between the
// built-in defaults and explicit flags: flags win over config, config wins
// over built-ins. A missing file is not an error.
package config

import (
	"fmt"
	"os"

	"rad-sync/internal/intent"

	"gopkg.in/yaml.v3"
)

// Config represents the contents of sync.yaml.
type Config struct {
	Sync SyncConfig `yaml:"sync"`
}

// SyncConfig holds the operator defaults for repository syncs.
type SyncConfig struct {
	Replicas int      `yaml:"replicas"`
	Timeout  int      `yaml:"timeout"` // seconds
	Seeds    []string `yaml:"seeds"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sync: SyncConfig{
			Replicas: intent.DefaultReplicas,
			Timeout:  int(intent.DefaultTimeout.Seconds()),
		},
	}
}

// Load reads sync.yaml from path and applies defaults for missing fields.
// The error from a missing file is returned as-is so callers can treat it
// as "use defaults".
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Write writes the provided configuration to path.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks that numeric fields are in range.
func (c Config) Validate() error {
	if c.Sync.Replicas < 0 {
		return fmt.Errorf("sync.replicas: invalid value %d: must be zero or positive", c.Sync.Replicas)
	}
	if c.Sync.Timeout < 0 {
		return fmt.Errorf("sync.timeout: invalid value %d: must be zero or positive", c.Sync.Timeout)
	}
	return nil
}
