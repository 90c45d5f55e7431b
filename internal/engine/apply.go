package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/lotrename/internal/planner"
)

// ApplyPlan renames every planned file inside dir.
//
// Each rename is announced on the engine output before it is performed. The
// first failure stops the run; renames already performed are kept. The
// returned slice lists the renames that succeeded.
func (e *Engine) ApplyPlan(ctx context.Context, dir string, plan *planner.RenamePlan) ([]planner.Rename, error) {
	renames := plan.Renames()
	if err := e.validateRenames(renames); err != nil {
		return nil, err
	}

	applied := []planner.Rename{}
	for _, r := range renames {
		if err := ctx.Err(); err != nil {
			return applied, err
		}

		e.logRename(r)
		if err := e.fs.Rename(filepath.Join(dir, r.From), filepath.Join(dir, r.To)); err != nil {
			return applied, fmt.Errorf("%w: failed to rename %s to %s: %w", ErrIO, r.From, r.To, err)
		}
		applied = append(applied, r)
	}

	return applied, nil
}

// validateRenames rejects plans whose names would escape the directory.
func (e *Engine) validateRenames(renames []planner.Rename) error {
	for _, r := range renames {
		if err := e.fs.ValidateName(r.From); err != nil {
			return fmt.Errorf("%w: %w", ErrUnsafeName, err)
		}
		if err := e.fs.ValidateName(r.To); err != nil {
			return fmt.Errorf("%w: %w", ErrUnsafeName, err)
		}
	}
	return nil
}

func (e *Engine) logRename(r planner.Rename) {
	_, _ = fmt.Fprintf(e.out, "renaming %s to %s\n", r.From, r.To)
}
