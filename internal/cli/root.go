package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	configPath string

	// Colors for help output sections
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for lotrename.
var rootCmd = &cobra.Command{
	Use:     "lotrename <data_file> <directory>",
	Version: "dev",
	Short:   "Rename auction photos to lot numbers",
	Long: `lotrename renames the photos in <directory> after the lots they belong to.

Each line of <data_file> (tab-delimited, no header, or an .xlsx sheet) holds a
lot number in column 1 and an inventory number in column 9. Every file whose
name starts with the inventory number is renamed to <lot>_<n>.jpg, where <n>
is the part of the name between its first and second period:

  00243878.2.jpg  ->  1_2.jpg`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRename,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors section titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	hasCommands := false
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		if !hasCommands {
			help.WriteString(sectionTitleColor.Sprint("Commands:"))
			help.WriteString("\n")
			hasCommands = true
		}
		fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
	}
	if hasCommands {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.lotrename/config.yaml)")

	rootCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "Show the rename plan without renaming")
	rootCmd.Flags().BoolVar(&renameStaged, "staged", false, "Rename through staging names and revert everything on failure")
	rootCmd.Flags().StringVar(&renameJournal, "journal", "", "Write the applied renames to this YAML file")
	rootCmd.Flags().BoolVarP(&renameVerbose, "verbose", "v", false, "Report data rows that matched no file")

	rootCmd.AddCommand(undoCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
