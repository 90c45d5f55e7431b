package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/danieljhkim/lotrename/internal/config"
)

func TestFormatError(t *testing.T) {
	got := FormatError(os.ErrNotExist)
	if !strings.Contains(got, "Error:") {
		t.Errorf("FormatError() = %q, expected to contain 'Error:'", got)
	}
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := outputJSON(&buf, map[string]string{"test": "value"}); err != nil {
		t.Fatalf("outputJSON() error = %v", err)
	}

	var v map[string]string
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Errorf("outputJSON() produced invalid JSON: %v", err)
	}
	if v["test"] != "value" {
		t.Errorf("unexpected JSON: %s", buf.String())
	}
}

func TestPrintFunctions(t *testing.T) {
	var buf bytes.Buffer

	PrintSuccess(&buf, "Success message")
	PrintWarning(&buf, "Warning message")
	PrintInfo(&buf, "Info message")
	PrintList(&buf, []string{"a -> b"}, 1)

	for _, want := range []string{"Success message", "Warning message", "Info message", "a -> b"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q: %q", want, buf.String())
		}
	}
}

func TestPrintCount(t *testing.T) {
	if got := PrintCount(1, "file", "files"); got != "1 file" {
		t.Errorf("PrintCount(1) = %q", got)
	}
	if got := PrintCount(3, "file", "files"); got != "3 files" {
		t.Errorf("PrintCount(3) = %q", got)
	}
}

func TestInitColors(t *testing.T) {
	old := color.NoColor
	defer func() {
		color.NoColor = old
	}()

	initColors(config.ColorNever)
	if !color.NoColor {
		t.Error("color should be disabled for never")
	}
	initColors(config.ColorAlways)
	if color.NoColor {
		t.Error("color should be enabled for always")
	}
	initColors(config.ColorAuto)
	if color.NoColor {
		t.Error("auto must leave the detected setting alone")
	}
}

func TestLoadConfig(t *testing.T) {
	resetFlags()
	old := color.NoColor
	defer func() {
		color.NoColor = old
	}()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("color: never\nstaged: true\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Run("from environment", func(t *testing.T) {
		t.Setenv(config.ConfigEnv, path)
		cfg, err := loadConfig()
		if err != nil {
			t.Fatalf("loadConfig failed: %v", err)
		}
		if !cfg.Staged {
			t.Error("Staged should be read from the config file")
		}
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv(config.ConfigEnv, path)
		configPath = filepath.Join(t.TempDir(), "missing.yaml")
		defer func() {
			configPath = ""
		}()

		cfg, err := loadConfig()
		if err != nil {
			t.Fatalf("loadConfig failed: %v", err)
		}
		if cfg.Staged {
			t.Error("missing --config file should yield defaults")
		}
	})
}
