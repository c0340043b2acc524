package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tsdice/emojisummary/internal/glyph"
	"github.com/tsdice/emojisummary/internal/infrastructure/sources"
	"github.com/tsdice/emojisummary/internal/infrastructure/sources/jsonsource"
)

type pickOptions struct {
	source  string
	seed    uint64
	explain bool
}

func newPickCmd() *cobra.Command {
	opts := &pickOptions{}
	cmd := &cobra.Command{
		Use:   "pick [CONFIG]",
		Short: "Select three emojis for a config given as an argument or on stdin",
		Example: `  emojisummary pick '{"theme":"dark","gravity":true,"twinkle":true}'
  echo 'theme=light&chaosLevel=1' | emojisummary pick --source form --explain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			if len(args) == 1 {
				data = []byte(args[0])
			} else {
				var err error
				if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			cfg, err := sources.GlobalRegistry.Decode(opts.source, data)
			if err != nil {
				return err
			}

			var selOpts []glyph.Option
			if cmd.Flags().Changed("seed") {
				selOpts = append(selOpts, glyph.WithRandomizer(glyph.Seeded(opts.seed)))
			}
			sel := glyph.NewSelector(selOpts...).Select(cfg)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sel.String())
			if opts.explain {
				renderTrace(out, sel)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.source, "source", "s", jsonsource.Name, "config format (json or form)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed the fallback draws for repeatable output")
	cmd.Flags().BoolVarP(&opts.explain, "explain", "e", false, "show which rule produced each glyph")
	return cmd
}

func renderTrace(w io.Writer, sel glyph.Selection) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Glyph", "Stage", "Rule"})
	for i, p := range sel.Picks {
		tw.AppendRow(table.Row{i + 1, p.Glyph, p.Stage, p.Rule})
	}
	tw.Render()
}
