package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings read from the config file.
type Config struct {
	// Color controls colored terminal output: auto, always or never
	Color string `yaml:"color"`

	// Staged applies renames in two phases and reverts them on failure
	Staged bool `yaml:"staged"`

	// JournalDir receives a timestamped plan journal after every run (empty disables)
	JournalDir string `yaml:"journal_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color: ColorAuto,
	}
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if cfg.JournalDir != "" {
		dir, err := ExpandPath(cfg.JournalDir)
		if err != nil {
			return nil, err
		}
		cfg.JournalDir = dir
	}

	return cfg, nil
}

// Validate checks the config values.
func (c *Config) Validate() error {
	switch c.Color {
	case "":
		c.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	return nil
}
