package records

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads the rows of the first worksheet of an .xlsx file.
// Like the tab-delimited format there is no header row.
func ReadWorkbook(path string) ([]Row, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	defer func() {
		_ = book.Close()
	}()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s: workbook has no sheets", ErrParse, path)
	}

	cells, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	rows := make([]Row, 0, len(cells))
	for _, line := range cells {
		// GetRows returns empty rows for gaps in the sheet; the text format
		// skips blank lines, so do the same here.
		if len(line) == 0 {
			continue
		}
		rows = append(rows, Row(line))
	}
	return rows, nil
}
