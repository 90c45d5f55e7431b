package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danieljhkim/lotrename/internal/clock"
	"github.com/danieljhkim/lotrename/internal/config"
	"github.com/danieljhkim/lotrename/internal/engine"
	"github.com/danieljhkim/lotrename/internal/fsops"
)

// newEngine creates a new engine with real implementations of all dependencies.
// Rename lines are written to out.
func newEngine(out io.Writer) *engine.Engine {
	return engine.New(fsops.NewRealFS(), &clock.RealClock{}, out)
}

// loadConfig reads the config file named by --config, LOTRENAME_CONFIG or
// the default location, and applies its color mode.
func loadConfig() (*config.Config, error) {
	var (
		path string
		err  error
	)
	if configPath != "" {
		path, err = config.ExpandPath(configPath)
	} else {
		path, err = config.DefaultConfigPath()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	initColors(cfg.Color)
	return cfg, nil
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
