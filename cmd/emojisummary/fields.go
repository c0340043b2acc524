package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tsdice/emojisummary/internal/model"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the config keys the selector reads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"Key", "Type", "Default", "Stage", "Description"})
			for _, f := range model.Fields {
				tw.AppendRow(table.Row{f.Name, f.Type, f.Default, f.Stage, f.Description})
			}
			tw.Render()
		},
	}
}
