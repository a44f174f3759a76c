package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treewalk/internal/files/filesystem"
	"github.com/vvka-141/treewalk/internal/files/lister"
	"github.com/vvka-141/treewalk/internal/logging"
)

func newListCmd() *cobra.Command {
	var flags engineFlags

	cmd := &cobra.Command{
		Use:   "list <directory>",
		Short: "List the direct children of a directory",
		Long: `List prints the entries of one directory without descending into it.

Entries are grouped according to --order and filtered by --pattern. Paths
are printed relative to the directory.

Examples:
  # Directories first, then files
  treewalk list ./src --order dirs-first

  # Only Go files, as JSON lines
  treewalk list ./pkg -p '*.go' --format json`,
		Args:              RequireDirectory,
		ValidArgsFunction: completeDirectories,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, &flags)
		},
	}

	addEngineFlags(cmd, &flags)
	addOutputFlags(cmd, &flags)
	return cmd
}

func init() {
	rootCmd.AddCommand(newListCmd())
}

func runList(cmd *cobra.Command, args []string, flags *engineFlags) error {
	dir := args[0]
	verbose := getVerboseFlag(cmd)

	cfg, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}
	if err := requireRootDirectory(dir); err != nil {
		return err
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)
	opts := cfg.Options()
	opts.Logger = logger

	l, err := lister.New(filesystem.NewOSFileSystem(), dir, opts)
	if err != nil {
		return err
	}
	defer l.Close()

	out, err := newPrinter(cfg.Format, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.ShowSize)
	if err != nil {
		return err
	}

	logger.Verbose("Settings from %s", configPathHint())
	logger.Verbose("Listing %s (order %s, pattern %q, safe mode %t)", dir, cfg.Order, cfg.Pattern, cfg.SafeMode)
	for {
		ok, err := l.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		rec, err := l.Current()
		if err != nil {
			return err
		}
		if err := out.Entry(rec); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return out.Finish(nil)
}
