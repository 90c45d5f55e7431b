package planner

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/lotrename/internal/records"
)

// Column positions in a data row.
const (
	LotNumberField       = 0
	InventoryNumberField = 8
)

// NewNameExtension is appended to every generated name, whatever the
// original extension was.
const NewNameExtension = ".jpg"

// BuildRenamePlan computes the renames implied by rows for the given file names.
//
// Rows are processed in order. Each file whose name starts with a row's
// inventory number is renamed to "<lot>_<suffix>.jpg". When several rows
// match the same file, the last row wins. Any malformed row or matched file
// name aborts planning.
func BuildRenamePlan(rows []records.Row, files []string) (*RenamePlan, error) {
	plan := NewRenamePlan()

	for i, row := range rows {
		lotNumber, inventoryNumber, err := rowKeys(i, row)
		if err != nil {
			return nil, err
		}

		objectFiles := FilterObjectFiles(files, inventoryNumber)
		if len(objectFiles) == 0 {
			plan.Unmatched = append(plan.Unmatched, UnmatchedRow{
				Row:             i + 1,
				LotNumber:       lotNumber,
				InventoryNumber: inventoryNumber,
			})
			continue
		}

		for _, objectFile := range objectFiles {
			suffix, err := ExtractSuffix(objectFile)
			if err != nil {
				return nil, err
			}
			plan.Set(objectFile, ComposeName(lotNumber, suffix))
		}
	}

	return plan, nil
}

// rowKeys returns the lot and inventory numbers of row i.
func rowKeys(i int, row records.Row) (lotNumber, inventoryNumber string, err error) {
	lotNumber, ok := row.Field(LotNumberField)
	if !ok {
		return "", "", fmt.Errorf("%w: row %d: field %d (lot number) not found", ErrMalformedRow, i+1, LotNumberField)
	}
	inventoryNumber, ok = row.Field(InventoryNumberField)
	if !ok {
		return "", "", fmt.Errorf("%w: row %d: field %d (inventory number) not found", ErrMalformedRow, i+1, InventoryNumberField)
	}
	// An empty prefix would match every file in the directory.
	if inventoryNumber == "" {
		return "", "", fmt.Errorf("%w: row %d: field %d (inventory number) is empty", ErrMalformedRow, i+1, InventoryNumberField)
	}
	return lotNumber, inventoryNumber, nil
}

// FilterObjectFiles returns the files whose names start with inventoryNumber.
// Matching is exact and case-sensitive.
func FilterObjectFiles(files []string, inventoryNumber string) []string {
	var matched []string
	for _, f := range files {
		if strings.HasPrefix(f, inventoryNumber) {
			matched = append(matched, f)
		}
	}
	return matched
}

// ExtractSuffix returns the second period-delimited segment of name.
func ExtractSuffix(name string) (string, error) {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q has no period-delimited suffix", ErrSuffixExtraction, name)
	}
	return parts[1], nil
}

// ComposeName builds the new file name for a lot number and suffix.
func ComposeName(lotNumber, suffix string) string {
	return lotNumber + "_" + suffix + NewNameExtension
}
