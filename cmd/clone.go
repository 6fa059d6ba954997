package cmd

import (
	"github.com/hmatsuda/stagesync/internal/staging"
	"github.com/spf13/cobra"
)

func (a *App) cloneCmd() *cobra.Command {
	var params staging.CloneParams
	cmd := &cobra.Command{
		Use:   "clone <project>",
		Short: "Create a staging copy of a work project",
		Args:  cobra.MatchAll(cobra.ExactArgs(1), validateStagingArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Project = args[0]
			return a.runClone(cmd, params)
		},
	}
	cmd.Flags().StringVar(&params.AsName, "as-name", "", "Staging directory name (default: project base name)")
	cmd.Flags().StringVar(&params.TempBranch, "temp-branch", "", "Temporary remote branch name (default: synthesized)")
	cmd.Flags().BoolVar(&params.Force, "force", false, "Replace an existing staging directory")
	return cmd
}

func (a *App) runClone(cmd *cobra.Command, params staging.CloneParams) error {
	return a.withService(cmd, true, func(svc *staging.Service) error {
		_, err := svc.Clone(params)
		return err
	})
}
