package main

import (
	"github.com/spf13/cobra"

	_ "github.com/tsdice/emojisummary/internal/infrastructure/sources/formsource"
	_ "github.com/tsdice/emojisummary/internal/infrastructure/sources/jsonsource"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "emojisummary",
		Short:         "Summarize tsDice particle configs as three emojis.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newPickCmd(),
		newDemoCmd(),
		newFieldsCmd(),
	)
	return root
}
