package engine

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/danieljhkim/lotrename/internal/planner"
)

// journalTimeFormat names journals written into a journal directory.
const journalTimeFormat = "20060102-150405"

// journalPath resolves where the journal for req goes; empty disables it.
func (e *Engine) journalPath(req *RunRequest) string {
	if req.JournalPath != "" {
		return req.JournalPath
	}
	if req.JournalDir != "" {
		name := fmt.Sprintf("lotrename-%s.yaml", e.clock.Now().Format(journalTimeFormat))
		return filepath.Join(req.JournalDir, name)
	}
	return ""
}

// writeJournal records applied renames and returns the journal path.
func (e *Engine) writeJournal(req *RunRequest, applied []planner.Rename, complete bool) (string, error) {
	path := e.journalPath(req)
	if path == "" {
		return "", nil
	}

	// Undo may run from another working directory.
	dir, err := filepath.Abs(req.Dir)
	if err != nil {
		return "", fmt.Errorf("%w: failed to resolve %s: %w", ErrIO, req.Dir, err)
	}
	dataFile, err := filepath.Abs(req.DataFile)
	if err != nil {
		return "", fmt.Errorf("%w: failed to resolve %s: %w", ErrIO, req.DataFile, err)
	}

	journal := Journal{
		GeneratedAt: e.clock.Now().UTC(),
		DataFile:    dataFile,
		Dir:         dir,
		Staged:      req.Staged,
		Complete:    complete,
		Renames:     applied,
	}

	data, err := yaml.Marshal(&journal)
	if err != nil {
		return "", fmt.Errorf("failed to encode journal: %w", err)
	}
	if err := e.fs.WriteLocked(path, data, 0644); err != nil {
		return "", fmt.Errorf("%w: failed to write journal: %w", ErrIO, err)
	}
	return path, nil
}

// ReadJournal decodes a journal previously written by a run.
func ReadJournal(data []byte) (*Journal, error) {
	var journal Journal
	if err := yaml.Unmarshal(data, &journal); err != nil {
		return nil, fmt.Errorf("failed to decode journal: %w", err)
	}
	return &journal, nil
}
