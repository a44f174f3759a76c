package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "treewalk",
	Short: "Lazy, fault-tolerant directory tree enumeration",
	Long: `treewalk lists and walks directory trees one level at a time.

Every directory is read only when it is reached. Listings can be grouped
(files first or directories first) and filtered by a glob pattern. In safe
mode, directories that vanish or cannot be read are skipped instead of
aborting the walk.

Defaults come from treewalk.yaml in the current directory, then from
TREEWALK_* environment variables (a .env file is honored), then from flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration, pattern or order
  11 - Root directory not found
  12 - Permission denied (outside safe mode)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	if cmd.Flags().Lookup("verbose") == nil {
		return false
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
