package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/smallworld/smallworld"
)

func newRunCmd(c *cli) *cobra.Command {
	var noMetrics bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rewire the lattice once and compare the opposite-vertex path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config(cmd)
			if err != nil {
				return err
			}
			opts := []smallworld.Option{smallworld.WithLogger(c.logger)}
			if noMetrics {
				opts = append(opts, smallworld.WithoutMetrics())
			}
			out, err := smallworld.Run(cmd.Context(), cfg, opts...)
			if err != nil {
				return err
			}

			return smallworld.WriteReport(cmd.OutOrStdout(), out, c.format)
		},
	}
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "skip the all-pairs graph metrics")

	return cmd
}
