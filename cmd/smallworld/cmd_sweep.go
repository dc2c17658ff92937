package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/smallworld/smallworld"
)

// defaultFractions spans the small-world regime on a log-like scale.
var defaultFractions = []float64{0, 0.001, 0.003, 0.01, 0.03, 0.1, 0.3, 1}

func newSweepCmd(c *cli) *cobra.Command {
	var (
		fractions []float64
		trials    int
		parallel  int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Average path length and clustering across rewiring fractions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config(cmd)
			if err != nil {
				return err
			}
			points, err := smallworld.Sweep(cmd.Context(), cfg, fractions, trials,
				smallworld.WithLogger(c.logger),
				smallworld.WithParallelism(parallel))
			if err != nil {
				return err
			}

			return smallworld.WriteReport(cmd.OutOrStdout(), points, c.format)
		},
	}
	fs := cmd.Flags()
	fs.Float64SliceVar(&fractions, "fractions", defaultFractions, "comma-separated rewiring fractions")
	fs.IntVar(&trials, "trials", 10, "trials per fraction")
	fs.IntVar(&parallel, "parallel", 0, "concurrent trials (0: GOMAXPROCS)")

	return cmd
}
