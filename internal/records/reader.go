// Package records reads the rows of a lot data file.
//
// A data file is a tab-delimited export with no header row; every line is
// one record and fields keep their column order. Spreadsheet exports
// (.xlsx) of the same sheet are accepted as well.
package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Row is the ordered list of text fields of one data file line.
type Row []string

// Field returns the field at index i and whether it is present.
func (r Row) Field(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

// ReadFile reads all rows of the data file at path.
// Files with an .xlsx extension are read as workbooks; everything else is
// parsed as tab-delimited text.
func ReadFile(path string) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadWorkbook(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Read parses tab-delimited rows from r. Rows may have any number of fields.
// The first malformed line aborts the read and no rows are returned.
func Read(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: line %d: %w", ErrParse, parseErr.StartLine, parseErr.Err)
			}
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		rows = append(rows, Row(record))
	}

	return rows, nil
}
