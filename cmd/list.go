package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hmatsuda/stagesync/internal/staging"
	"github.com/hmatsuda/stagesync/internal/ui"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List staging copies and their health",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func (a *App) runList(cmd *cobra.Command, jsonOutput bool) error {
	return a.withService(cmd, false, func(svc *staging.Service) error {
		states, err := svc.CollectState()
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), states)
		}
		if len(states) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No staging copies found.")
			return nil
		}
		printTable(cmd.OutOrStdout(), states)
		return nil
	})
}

func printJSON(w io.Writer, states []staging.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(states)
}

var stagesyncTableStyle = table.Style{
	Name: "stagesync",
	Box: table.BoxStyle{
		PaddingLeft:  "",
		PaddingRight: "  ",
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateHeader:  false,
		SeparateRows:    false,
		SeparateColumns: false,
	},
}

func printTable(w io.Writer, states []staging.State) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	tw.AppendHeader(table.Row{"NAME", "WORK PATH", "BASE", "STAGING", "STATUS"})

	for _, s := range states {
		var status string
		switch s.Status {
		case staging.StatusStagingMissing:
			// orphaned record: the staging copy itself is gone
			status = ui.Red("⚠ " + s.Status.Label())
		case staging.StatusWorkMissing:
			status = ui.Yellow("⚠ " + s.Status.Label())
		default:
			status = ui.Green("ok")
		}
		tw.AppendRow(table.Row{s.Name, s.WorkPath, s.BaseBranch, s.StagingPath, status})
	}

	tw.SetStyle(stagesyncTableStyle)

	tw.Render()
}
