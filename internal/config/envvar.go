package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Environment variable names for rad-sync configuration.
const (
	EnvRadHome  = "RAD_HOME"          // Radicle home directory (default ~/.radicle)
	EnvReplicas = "RAD_SYNC_REPLICAS" // Override the default replica count
	EnvTimeout  = "RAD_SYNC_TIMEOUT"  // Override the default timeout (seconds)
	EnvDebug    = "RAD_DEBUG"         // Enable debug output ("1" or "true")
)

// HomeDir returns the Radicle home directory.
func HomeDir() string {
	if dir := os.Getenv(EnvRadHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".radicle"
	}
	return filepath.Join(home, ".radicle")
}

// FilePath returns the path of sync.yaml under the Radicle home.
func FilePath() string {
	return filepath.Join(HomeDir(), "sync.yaml")
}

// DebugEnabled reports whether RAD_DEBUG asks for debug output.
func DebugEnabled() bool {
	v := os.Getenv(EnvDebug)
	return v == "1" || v == "true"
}

// ApplyEnvOverrides overrides cfg fields from environment variables.
// These overrides are in-memory only and are never written back to
// sync.yaml. A malformed value is an error, not silently ignored.
func ApplyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvReplicas); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s: invalid value %q: must be a non-negative integer", EnvReplicas, v)
		}
		cfg.Sync.Replicas = n
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s: invalid value %q: must be a non-negative integer", EnvTimeout, v)
		}
		cfg.Sync.Timeout = n
	}
	return nil
}

// Resolve loads sync.yaml from the Radicle home and applies environment
// overrides. A missing file yields the built-in defaults.
func Resolve() (Config, error) {
	cfg, err := Load(FilePath())
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, err
		}
		cfg = Default()
	}
	if err := ApplyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
