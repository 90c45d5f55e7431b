package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/danieljhkim/lotrename/internal/planner"
)

// stagingPrefix starts every temporary name used by ApplyStaged.
const stagingPrefix = ".lotrename-"

// step is one rename performed by ApplyStaged, kept for reverting.
type step struct {
	from string
	to   string
}

// ApplyStaged renames every planned file inside dir in two phases.
//
// Phase one moves each source to a unique staging name, phase two moves the
// staging names to their targets. A target that already exists is never
// overwritten. On any failure every completed step is reverted in reverse
// order and the original error is returned.
func (e *Engine) ApplyStaged(ctx context.Context, dir string, plan *planner.RenamePlan) ([]planner.Rename, error) {
	renames := plan.Renames()
	if err := e.validateRenames(renames); err != nil {
		return nil, err
	}

	var done []step
	fail := func(err error) ([]planner.Rename, error) {
		if rbErr := e.revert(done); rbErr != nil {
			return nil, errors.Join(err, rbErr)
		}
		return nil, err
	}

	staged := make([]string, len(renames))
	for i, r := range renames {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		staged[i] = filepath.Join(dir, stagingPrefix+uuid.New().String())
		src := filepath.Join(dir, r.From)
		if err := e.fs.Rename(src, staged[i]); err != nil {
			return fail(fmt.Errorf("%w: failed to stage %s: %w", ErrIO, r.From, err))
		}
		done = append(done, step{from: src, to: staged[i]})
	}

	for i, r := range renames {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		dst := filepath.Join(dir, r.To)
		exists, err := e.fs.Exists(dst)
		if err != nil {
			return fail(fmt.Errorf("%w: failed to check %s: %w", ErrIO, r.To, err))
		}
		if exists {
			return fail(fmt.Errorf("%w: %s (planned for %s)", ErrTargetExists, r.To, r.From))
		}

		e.logRename(r)
		if err := e.fs.Rename(staged[i], dst); err != nil {
			return fail(fmt.Errorf("%w: failed to rename %s to %s: %w", ErrIO, r.From, r.To, err))
		}
		done = append(done, step{from: staged[i], to: dst})
	}

	return renames, nil
}

// revert undoes steps in reverse order, continuing past failures.
func (e *Engine) revert(steps []step) error {
	var errs []error
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		if err := e.fs.Rename(s.to, s.from); err != nil {
			errs = append(errs, fmt.Errorf("failed to revert %s: %w", filepath.Base(s.from), err))
		}
	}
	return errors.Join(errs...)
}
