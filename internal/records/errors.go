package records

import "errors"

var (
	// ErrIO indicates the data file could not be opened or read.
	ErrIO = errors.New("data file unreadable")

	// ErrParse indicates a line of the data file is malformed.
	ErrParse = errors.New("data file malformed")
)
