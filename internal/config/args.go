package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/lotrename/internal/fsops"
)

// ErrArgument indicates invalid command-line arguments.
var ErrArgument = errors.New("invalid arguments")

// Args holds the positional inputs of a run.
type Args struct {
	// DataFile is the tab-delimited (or .xlsx) lot data file
	DataFile string

	// Dir is the directory holding the photos to rename
	Dir string
}

// ParseArgs validates the positional arguments <data_file> <directory> and
// resolves both to absolute paths. The directory must exist; the data file is
// not opened here.
func ParseArgs(args []string, fs fsops.FS) (*Args, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: received %d arguments, need 2 (<data_file> <directory>)", ErrArgument, len(args))
	}

	dataFile, err := absPath(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArgument, err)
	}
	dir, err := absPath(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArgument, err)
	}

	if !isDir(fs, dir) {
		return nil, fmt.Errorf("%w: given directory path %s is not a directory", ErrArgument, args[1])
	}

	return &Args{DataFile: dataFile, Dir: dir}, nil
}

func absPath(p string) (string, error) {
	expanded, err := ExpandPath(p)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

func isDir(fs fsops.FS, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
