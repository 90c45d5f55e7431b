package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/danieljhkim/lotrename/internal/planner"
	"github.com/danieljhkim/lotrename/internal/records"
)

// Algorithm steps:
// 1. List the target directory
// 2. Read the data file
// 3. Build the rename plan
// 4. Apply the plan (if not DryRun)
// 5. Write the journal (if requested)
// 6. Return result
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	files := e.fs.ListNames(req.Dir)

	rows, err := records.ReadFile(req.DataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	plan, err := planner.BuildRenamePlan(rows, files)
	if err != nil {
		return nil, fmt.Errorf("failed to build rename plan: %w", err)
	}

	result := &RunResult{
		Plan:    plan,
		Applied: []planner.Rename{},
		Files:   len(files),
	}
	if req.DryRun {
		return result, nil
	}

	var applyErr error
	if req.Staged {
		result.Applied, applyErr = e.ApplyStaged(ctx, req.Dir, plan)
	} else {
		result.Applied, applyErr = e.ApplyPlan(ctx, req.Dir, plan)
	}
	if result.Applied == nil {
		result.Applied = []planner.Rename{}
	}

	// The journal also records partial runs so they can be undone.
	journalPath, journalErr := e.writeJournal(req, result.Applied, applyErr == nil)
	result.JournalPath = journalPath

	if applyErr != nil {
		applyErr = fmt.Errorf("failed to apply rename plan: %w", applyErr)
		if journalErr != nil {
			return result, errors.Join(applyErr, journalErr)
		}
		return result, applyErr
	}
	if journalErr != nil {
		return result, journalErr
	}
	return result, nil
}
