package engine

// RunRequest represents a request to rename a photo directory.
type RunRequest struct {
	// DataFile is the lot data file (tab-delimited or .xlsx)
	DataFile string

	// Dir is the directory holding the photos
	Dir string

	// DryRun performs planning only without making changes
	DryRun bool

	// Staged applies the plan through staging names and reverts on failure
	Staged bool

	// JournalPath is where the applied renames are recorded (empty: see JournalDir)
	JournalPath string

	// JournalDir receives a timestamped journal when JournalPath is empty
	JournalDir string
}
