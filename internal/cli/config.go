package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/treewalk/internal/config"
	"github.com/vvka-141/treewalk/pkg/treewalk"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect treewalk.yaml",
	Long: `Manage the treewalk.yaml file that supplies defaults for every command.

Settings are layered: treewalk.yaml in the working directory, then the
TREEWALK_PATTERN, TREEWALK_ORDER, TREEWALK_SAFE_MODE, TREEWALK_MAX_DEPTH and
TREEWALK_FORMAT environment variables (a .env file is loaded first), then
command-line flags.`,
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default treewalk.yaml",
		Long: `Init writes treewalk.yaml with the default settings.

Examples:
  # Create config in current directory
  treewalk config init

  # Replace an existing file
  treewalk config init ./project --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDir := "."
			if len(args) > 0 {
				targetDir = args[0]
			}

			path, err := config.Default().Save(targetDir, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+treewalk.ConfigFileName)
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveSettings(cmd, &engineFlags{})
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
}

func init() {
	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())
	rootCmd.AddCommand(configCmd)
}

// configPathHint is shown in verbose mode so users know which file applied.
func configPathHint() string {
	if _, err := os.Stat(treewalk.ConfigFileName); err == nil {
		return treewalk.ConfigFileName
	}
	return "built-in defaults"
}
