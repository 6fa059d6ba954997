package cmd

import (
	"fmt"

	"github.com/hmatsuda/stagesync/internal/store"
	"github.com/spf13/cobra"
)

func completionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion <bash|zsh|fish>",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

// completeStagingNames lists the staging names present in the mapping store.
func (a *App) completeStagingNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	d, err := a.resolveDeps(a.flags)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	mappings, err := store.New(d.ws.StorePath).Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return mappings.Names(), cobra.ShellCompDirectiveNoFileComp
}
