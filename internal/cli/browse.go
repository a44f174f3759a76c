package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treewalk/internal/files/filesystem"
	"github.com/vvka-141/treewalk/internal/files/walker"
	"github.com/vvka-141/treewalk/internal/logging"
	"github.com/vvka-141/treewalk/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	var flags engineFlags

	cmd := &cobra.Command{
		Use:   "browse <directory>",
		Short: "Browse a directory tree interactively",
		Long: `Browse opens an interactive tree view. A directory is read only when it is
expanded, so even very large trees open instantly.

Keys: ↑/↓ move, →/enter expand, ← collapse, q quit.

This command requires an interactive terminal.`,
		Args:              RequireDirectory,
		ValidArgsFunction: completeDirectories,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args, &flags)
		},
	}

	addEngineFlags(cmd, &flags)
	return cmd
}

func init() {
	rootCmd.AddCommand(newBrowseCmd())
}

func runBrowse(cmd *cobra.Command, args []string, flags *engineFlags) error {
	dir := args[0]

	cfg, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}
	if err := requireRootDirectory(dir); err != nil {
		return err
	}

	if !tui.IsInteractive() {
		return fmt.Errorf("browse requires an interactive terminal\n" +
			"For non-interactive use, run 'treewalk walk' instead")
	}

	opts := cfg.Options()
	// Log lines would corrupt the alternate screen
	opts.Logger = logging.NewNullLogger()

	root, err := walker.NewRoot(filesystem.NewOSFileSystem(), dir, opts)
	if err != nil {
		return err
	}
	return tui.RunBrowser(root)
}
