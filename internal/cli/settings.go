package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vvka-141/treewalk/internal/config"
	"github.com/vvka-141/treewalk/pkg/treewalk"
)

var _ pflag.Value = (*treewalk.EnumerationOrder)(nil)

// engineFlags holds the flags shared by list, walk and browse.
type engineFlags struct {
	pattern  string
	order    treewalk.EnumerationOrder
	safe     bool
	maxDepth int
	format   string
	showSize bool
}

// addEngineFlags registers the common engine flags on cmd.
func addEngineFlags(cmd *cobra.Command, f *engineFlags) {
	flags := cmd.Flags()
	flags.StringVarP(&f.pattern, "pattern", "p", treewalk.MatchAllPattern, "Glob matched against entry names (files and directories)")
	flags.VarP(&f.order, "order", "o", "Grouping: none, files-first or dirs-first (or 0, 1, 2)")
	flags.BoolVar(&f.safe, "safe", true, "Skip directories that cannot be read instead of failing")
	flags.BoolVar(&f.showSize, "size", false, "Show file sizes")

	_ = cmd.RegisterFlagCompletionFunc("order", completeOrders)
}

// addOutputFlags registers the flags of commands that print entries.
func addOutputFlags(cmd *cobra.Command, f *engineFlags) {
	cmd.Flags().StringVarP(&f.format, "format", "f", config.FormatText, "Output format: text, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
}

// resolveSettings layers treewalk.yaml, environment and explicit flags.
// treewalk.yaml is read from the working directory; its absence is not an error.
func resolveSettings(cmd *cobra.Command, f *engineFlags) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadOrDefault(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", treewalk.ConfigFileName, err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("pattern") {
		cfg.Pattern = f.pattern
	}
	if flags.Changed("order") {
		cfg.Order = f.order
	}
	if flags.Changed("safe") {
		cfg.SafeMode = f.safe
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if flags.Changed("format") {
		cfg.Format = f.format
	}
	if flags.Changed("size") {
		cfg.ShowSize = f.showSize
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// requireRootDirectory checks the root before a walk. The engine itself
// would only notice a missing root on the first listing, which safe mode
// would turn into an empty walk.
func requireRootDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("root directory %s does not exist: %w", path, err)
		}
		return fmt.Errorf("cannot access root directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", treewalk.ErrRootNotDirectory, path)
	}
	return nil
}
