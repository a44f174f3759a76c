package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treewalk/internal/files/filesystem"
	"github.com/vvka-141/treewalk/internal/files/walker"
	"github.com/vvka-141/treewalk/internal/logging"
)

type walkFlagValues struct {
	engineFlags
	summary bool
}

func newWalkCmd() *cobra.Command {
	var flags walkFlagValues

	cmd := &cobra.Command{
		Use:   "walk <directory>",
		Short: "Walk a directory tree depth-first",
		Long: `Walk prints every entry below a directory in pre-order: each directory is
followed by its own contents before its next sibling.

Directories are read lazily, one at a time. With safe mode on (the default),
a directory that vanishes or cannot be read is reported in verbose output
and skipped; the rest of the tree is still walked. With --safe=false the
first such failure stops the walk with a non-zero exit code.

Examples:
  # Whole tree, files before directories at every level
  treewalk walk ./project --order files-first

  # Two levels deep with sizes and a summary
  treewalk walk /var/log --max-depth 2 --size --summary

  # Machine-readable output
  treewalk walk . --format yaml --summary`,
		Args:              RequireDirectory,
		ValidArgsFunction: completeDirectories,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(cmd, args, &flags)
		},
	}

	addEngineFlags(cmd, &flags.engineFlags)
	addOutputFlags(cmd, &flags.engineFlags)
	cmd.Flags().IntVarP(&flags.maxDepth, "max-depth", "d", 0, "Maximum depth below the root (0 = unlimited)")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "Print totals after the walk")
	return cmd
}

func init() {
	rootCmd.AddCommand(newWalkCmd())
}

func runWalk(cmd *cobra.Command, args []string, flags *walkFlagValues) error {
	dir := args[0]
	verbose := getVerboseFlag(cmd)

	cfg, err := resolveSettings(cmd, &flags.engineFlags)
	if err != nil {
		return err
	}
	if err := requireRootDirectory(dir); err != nil {
		return err
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)
	summary := newRunSummary(dir, cfg)

	opts := cfg.Options()
	opts.Logger = logger
	opts.OnSkip = summary.Stats.RecordSkip

	root, err := walker.NewRoot(filesystem.NewOSFileSystem(), dir, opts)
	if err != nil {
		return err
	}

	out, err := newPrinter(cfg.Format, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.ShowSize)
	if err != nil {
		return err
	}

	logger.Verbose("Settings from %s", configPathHint())
	logger.Verbose("Walk %s started (run %s, order %s, max depth %d)", dir, summary.RunID, cfg.Order, cfg.MaxDepth)
	err = walker.WalkDepth(root, cfg.MaxDepth, func(n *walker.Node, err error) error {
		if err != nil {
			return err
		}
		summary.Stats.Add(n.Record())
		if err := out.Entry(n.Record()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	summary.finish()
	logger.Verbose("Walk %s finished in %s: %d entries, %d skipped", dir, summary.Elapsed, summary.Stats.Total(), summary.Stats.Skipped)
	if !flags.summary {
		return out.Finish(nil)
	}
	return out.Finish(summary)
}
