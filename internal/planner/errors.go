package planner

import "errors"

var (
	// ErrMalformedRow indicates a data row lacks its lot or inventory number.
	ErrMalformedRow = errors.New("malformed data row")

	// ErrSuffixExtraction indicates a matched file name has no suffix segment.
	ErrSuffixExtraction = errors.New("cannot extract file suffix")
)
