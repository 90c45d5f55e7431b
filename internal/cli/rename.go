package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/lotrename/internal/config"
	"github.com/danieljhkim/lotrename/internal/engine"
	"github.com/danieljhkim/lotrename/internal/fsops"
	"github.com/danieljhkim/lotrename/internal/planner"
)

var (
	renameDryRun  bool
	renameStaged  bool
	renameJournal string
	renameVerbose bool
)

// renameOutput is the --json shape of a run.
type renameOutput struct {
	DryRun    bool                   `json:"dry_run"`
	Files     int                    `json:"files"`
	Renames   []planner.Rename       `json:"renames"`
	Applied   int                    `json:"applied"`
	Unmatched []planner.UnmatchedRow `json:"unmatched"`
	Journal   string                 `json:"journal,omitempty"`
}

func runRename(cmd *cobra.Command, args []string) error {
	in, err := config.ParseArgs(args, fsops.NewRealFS())
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()

	// Keep stdout valid JSON; rename lines go to stderr instead.
	renameLines := stdout
	if jsonOutput {
		renameLines = cmd.ErrOrStderr()
	}

	journalPath := renameJournal
	if journalPath != "" {
		journalPath, err = config.ExpandPath(journalPath)
		if err != nil {
			return err
		}
	}

	eng := newEngine(renameLines)
	result, err := eng.Run(context.Background(), &engine.RunRequest{
		DataFile:    in.DataFile,
		Dir:         in.Dir,
		DryRun:      renameDryRun,
		Staged:      renameStaged || cfg.Staged,
		JournalPath: journalPath,
		JournalDir:  cfg.JournalDir,
	})
	if err != nil {
		if result != nil && len(result.Applied) > 0 {
			PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("%s already renamed, not rolled back", PrintCount(len(result.Applied), "file was", "files were")))
			if result.JournalPath != "" {
				PrintLabelValue(cmd.ErrOrStderr(), "Journal", result.JournalPath)
			}
		}
		return err
	}

	if jsonOutput {
		return outputJSON(stdout, renameOutput{
			DryRun:    renameDryRun,
			Files:     result.Files,
			Renames:   result.Plan.Renames(),
			Applied:   len(result.Applied),
			Unmatched: result.Plan.Unmatched,
			Journal:   result.JournalPath,
		})
	}

	if renameVerbose {
		printUnmatched(stdout, result.Plan.Unmatched)
	}

	if renameDryRun {
		PrintSection(stdout, "Dry Run")
		PrintInfo(stdout, fmt.Sprintf("Would rename %s", PrintCount(result.Plan.Len(), "file", "files")))
		if !result.Plan.IsEmpty() {
			items := make([]string, 0, result.Plan.Len())
			for _, r := range result.Plan.Renames() {
				items = append(items, fmt.Sprintf("%s -> %s", r.From, r.To))
			}
			PrintList(stdout, items, 1)
		}
		return nil
	}

	PrintSuccess(stdout, fmt.Sprintf("Renamed %s", PrintCount(len(result.Applied), "file", "files")))
	if result.JournalPath != "" {
		PrintLabelValue(stdout, "Journal", result.JournalPath)
	}
	return nil
}

func printUnmatched(w io.Writer, unmatched []planner.UnmatchedRow) {
	for _, u := range unmatched {
		PrintWarning(w, fmt.Sprintf("row %d: inventory number %s (lot %s) matched no file", u.Row, u.InventoryNumber, u.LotNumber))
	}
}
