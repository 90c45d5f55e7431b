// Package engine provides the core business logic for lotrename runs.
//
// The engine acts as the orchestration layer between the CLI and the
// lower-level packages: it lists the target directory, reads the data file,
// asks the planner for a rename plan and applies it.
//
// Key components:
//   - Engine: Main orchestrator called by the CLI
//   - ApplyPlan: Fail-fast renaming without rollback
//   - ApplyStaged: Two-phase renaming that reverts on failure
//   - Journal: YAML record of the renames a run performed
package engine

import (
	"io"

	"github.com/danieljhkim/lotrename/internal/clock"
	"github.com/danieljhkim/lotrename/internal/fsops"
)

// Engine orchestrates all lotrename operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs    fsops.FS
	clock clock.Clock

	// out receives one "renaming X to Y" line per rename
	out io.Writer
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, clk clock.Clock, out io.Writer) *Engine {
	if out == nil {
		out = io.Discard
	}
	return &Engine{
		fs:    fs,
		clock: clk,
		out:   out,
	}
}
