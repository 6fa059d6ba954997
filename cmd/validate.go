package cmd

import (
	"github.com/hmatsuda/stagesync/internal/staging"
	"github.com/spf13/cobra"
)

// validateStagingArgs returns a cobra.PositionalArgs that validates all
// arguments as staging or project names.
func validateStagingArgs(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if err := staging.ValidateStagingName(arg); err != nil {
			return err
		}
	}
	return nil
}
