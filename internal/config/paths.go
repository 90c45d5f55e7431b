// Package config manages lotrename configuration and command-line inputs.
//
// Configuration is an optional YAML file. Its location defaults to
// ~/.lotrename/config.yaml and can be overridden with the
// LOTRENAME_CONFIG environment variable or the --config flag.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// ConfigEnv names the environment variable that overrides the config path.
const ConfigEnv = "LOTRENAME_CONFIG"

// DefaultConfigPath returns the config file location.
// Paths can be overridden with environment variables:
// - LOTRENAME_CONFIG: Override the config file path
func DefaultConfigPath() (string, error) {
	if p := os.Getenv(ConfigEnv); p != "" {
		return ExpandPath(p)
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".lotrename", "config.yaml"), nil
}

// ExpandPath expands a leading ~ and cleans the path.
func ExpandPath(p string) (string, error) {
	expanded, err := homedir.Expand(filepath.Clean(p))
	if err != nil {
		return "", fmt.Errorf("failed to expand path %s: %w", p, err)
	}
	return expanded, nil
}
