package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// BuildRootCmd builds the complete CLI command tree.
func (a *App) BuildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stagesync",
		Short: "Manage disposable staging copies of git projects",
		Long: `stagesync clones work repositories into disposable staging copies
through temporary remote branches, and syncs finished work back into
the originals without ever sharing a filesystem checkout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("stagesync version %s\n", version))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.workRoot, "work-root", "", "Directory containing the canonical work repositories")
	pf.StringVar(&a.flags.stagingRoot, "staging-root", "", "Directory holding staging copies (default: current directory)")
	pf.StringVar(&a.flags.configPath, "config-path", "", "Path of the mapping metadata file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	// Register subcommands
	rootCmd.AddCommand(a.cloneCmd())
	rootCmd.AddCommand(a.syncBackCmd())
	rootCmd.AddCommand(a.listCmd())
	rootCmd.AddCommand(a.initCmd())
	rootCmd.AddCommand(completionCmd(rootCmd))

	return rootCmd
}

// Execute creates an App and runs the CLI.
func Execute() {
	app := NewApp()
	cmd := app.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
