package cmd

import (
	"github.com/hmatsuda/stagesync/internal/staging"
	"github.com/spf13/cobra"
)

func (a *App) syncBackCmd() *cobra.Command {
	var params staging.SyncBackParams
	cmd := &cobra.Command{
		Use:     "sync-back <staging-name>",
		Aliases: []string{"sync"},
		Short:   "Sync staged work back into its work project",
		Args:    cobra.MatchAll(cobra.ExactArgs(1), validateStagingArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.StagingName = args[0]
			return a.runSyncBack(cmd, params)
		},
		ValidArgsFunction: a.completeStagingNames,
	}
	cmd.Flags().StringVar(&params.Branch, "branch", "", "Target work branch (default: the recorded base branch)")
	cmd.Flags().StringVar(&params.TempBranch, "temp-branch", "", "Temporary remote branch name (default: recorded or synthesized)")
	cmd.Flags().StringVar(&params.WorkName, "work-name", "", "Work project name under the work root (default: recorded)")
	cmd.Flags().BoolVar(&params.Force, "force", false, "Hard-reset the work branch instead of fast-forwarding")
	cmd.Flags().BoolVar(&params.AutoCheckout, "auto-checkout", false, "Check out the target branch in the work repository if needed")
	cmd.Flags().BoolVar(&params.AllowDirtyStage, "allow-dirty-stage", false, "Proceed even if the staging tree has uncommitted changes")
	cmd.Flags().BoolVar(&params.AllowDirtyWork, "allow-dirty-work", false, "Proceed even if the work tree has uncommitted changes")
	return cmd
}

func (a *App) runSyncBack(cmd *cobra.Command, params staging.SyncBackParams) error {
	return a.withService(cmd, true, func(svc *staging.Service) error {
		_, err := svc.SyncBack(params)
		return err
	})
}
