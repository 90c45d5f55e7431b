package engine

import (
	"time"

	"github.com/danieljhkim/lotrename/internal/planner"
)

// RunResult represents the result of a run.
type RunResult struct {
	// Plan is the computed rename plan
	Plan *planner.RenamePlan

	// Applied lists the renames performed, in order
	Applied []planner.Rename

	// Files is the number of directory entries seen when planning
	Files int

	// JournalPath is the journal written for this run, if any
	JournalPath string
}

// Journal is the on-disk record of a run's renames.
type Journal struct {
	GeneratedAt time.Time        `yaml:"generated_at"`
	DataFile    string           `yaml:"data_file"`
	Dir         string           `yaml:"dir"`
	Staged      bool             `yaml:"staged"`
	Complete    bool             `yaml:"complete"`
	Renames     []planner.Rename `yaml:"renames"`
}
