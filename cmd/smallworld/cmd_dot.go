package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/smallworld/export"
	"github.com/katalvlaran/smallworld/smallworld"
)

func newDotCmd(c *cli) *cobra.Command {
	var (
		rewired   bool
		highlight bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Write the rewired (or original) ring as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config(cmd)
			if err != nil {
				return err
			}
			out, err := smallworld.Run(cmd.Context(), cfg,
				smallworld.WithLogger(c.logger), smallworld.WithoutMetrics())
			if err != nil {
				return err
			}

			g, path := out.Lattice, out.PathBefore
			opts := []export.Option{export.WithName("smallworld")}
			if rewired {
				g, path = out.Rewired, out.PathAfter
				opts = append(opts, export.WithShortcuts(out.Shortcuts))
			}
			if highlight {
				opts = append(opts, export.WithHighlight(path))
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("dot: %w", err)
				}
				defer f.Close()
				w = f
			}

			return export.WriteDOT(w, g, opts...)
		},
	}
	fs := cmd.Flags()
	fs.BoolVar(&rewired, "rewired", true, "render the rewired graph (false: the lattice)")
	fs.BoolVar(&highlight, "highlight", true, "highlight the source→target path")
	fs.StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
