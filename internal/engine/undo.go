package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/lotrename/internal/planner"
)

// Undo reverts the renames recorded in the journal at path.
//
// Renames are reverted newest first, inside the directory recorded in the
// journal. Like ApplyPlan it stops at the first failure and returns the
// reversals that succeeded.
func (e *Engine) Undo(ctx context.Context, path string) ([]planner.Rename, error) {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read journal: %w", ErrIO, err)
	}
	journal, err := ReadJournal(data)
	if err != nil {
		return nil, err
	}

	reversed := make([]planner.Rename, 0, len(journal.Renames))
	for i := len(journal.Renames) - 1; i >= 0; i-- {
		r := journal.Renames[i]
		reversed = append(reversed, planner.Rename{From: r.To, To: r.From})
	}
	if err := e.validateRenames(reversed); err != nil {
		return nil, err
	}

	undone := []planner.Rename{}
	for _, r := range reversed {
		if err := ctx.Err(); err != nil {
			return undone, err
		}

		e.logRename(r)
		if err := e.fs.Rename(filepath.Join(journal.Dir, r.From), filepath.Join(journal.Dir, r.To)); err != nil {
			return undone, fmt.Errorf("%w: failed to rename %s to %s: %w", ErrIO, r.From, r.To, err)
		}
		undone = append(undone, r)
	}
	return undone, nil
}
