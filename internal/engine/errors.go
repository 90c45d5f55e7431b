package engine

import "errors"

var (
	// ErrIO indicates a rename or journal write failed.
	ErrIO = errors.New("filesystem operation failed")

	// ErrUnsafeName indicates a planned name is not a plain file name.
	ErrUnsafeName = errors.New("unsafe file name")

	// ErrTargetExists indicates a staged rename would overwrite an existing file.
	ErrTargetExists = errors.New("target already exists")
)
