package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treewalk/internal/config"
)

// orderNames contains the canonical order names for shell completion.
var orderNames = []string{"none", "files-first", "dirs-first"}

// formatNames contains the output formats for shell completion.
var formatNames = []string{config.FormatText, config.FormatJSON, config.FormatYAML}

// completeOrders provides shell completion for --order.
func completeOrders(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix(orderNames, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeFormats provides shell completion for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix(formatNames, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories restricts positional completion to directories.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}

func matchPrefix(candidates []string, prefix string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			matches = append(matches, c)
		}
	}
	return matches
}
