package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/lotrename/internal/config"
)

var undoCmd = &cobra.Command{
	Use:   "undo <journal>",
	Short: "Revert the renames recorded in a journal",
	Long: `Revert the renames recorded in a journal written with --journal (or the
journal_dir config setting). Renames are reverted newest first; the first
failure stops the undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}

		path, err := config.ExpandPath(args[0])
		if err != nil {
			return err
		}

		stdout := cmd.OutOrStdout()
		renameLines := stdout
		if jsonOutput {
			renameLines = cmd.ErrOrStderr()
		}

		undone, err := newEngine(renameLines).Undo(context.Background(), path)
		if err != nil {
			if len(undone) > 0 {
				PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("%s already reverted", PrintCount(len(undone), "file was", "files were")))
			}
			return err
		}

		if jsonOutput {
			return outputJSON(stdout, map[string]interface{}{
				"journal":  path,
				"reverted": undone,
			})
		}

		PrintSuccess(stdout, fmt.Sprintf("Reverted %s", PrintCount(len(undone), "file", "files")))
		return nil
	},
}
