package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/smallworld/smallworld"
)

// cli carries the state shared by every subcommand.
type cli struct {
	configPath string
	logLevel   string
	format     string

	// flags holds the experiment flags; only those set explicitly override
	// the config file.
	flags smallworld.Config

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{flags: smallworld.DefaultConfig()}

	root := &cobra.Command{
		Use:           "smallworld",
		Short:         "Watts–Strogatz small-world experiments on a ring lattice",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.initLogger()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML experiment file (flags override its values)")
	pf.StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&c.format, "format", smallworld.FormatText, "report format: text or yaml")
	pf.IntVar(&c.flags.Nodes, "nodes", c.flags.Nodes, "ring size")
	pf.IntVar(&c.flags.Hops, "hops", c.flags.Hops, "lattice radius")
	pf.Float64Var(&c.flags.Fraction, "fraction", c.flags.Fraction, "fraction of edges to rewire, in [0,1]")
	pf.Int64Var(&c.flags.Seed, "seed", c.flags.Seed, "random seed")
	pf.IntVar(&c.flags.Source, "source", c.flags.Source, "path source vertex")
	pf.IntVar(&c.flags.Target, "target", c.flags.Target, "path target vertex (-1: opposite the source)")

	root.AddCommand(newRunCmd(c), newSweepCmd(c), newDotCmd(c))

	return root
}

func (c *cli) initLogger() error {
	lvl, err := zapcore.ParseLevel(c.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	c.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	return nil
}

// config loads --config (or the defaults) and applies every flag the user
// set explicitly.
func (c *cli) config(cmd *cobra.Command) (smallworld.Config, error) {
	cfg := smallworld.DefaultConfig()
	if c.configPath != "" {
		var err error
		if cfg, err = smallworld.LoadConfig(c.configPath); err != nil {
			return smallworld.Config{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("nodes") {
		cfg.Nodes = c.flags.Nodes
	}
	if fs.Changed("hops") {
		cfg.Hops = c.flags.Hops
	}
	if fs.Changed("fraction") {
		cfg.Fraction = c.flags.Fraction
	}
	if fs.Changed("seed") {
		cfg.Seed = c.flags.Seed
	}
	if fs.Changed("source") {
		cfg.Source = c.flags.Source
	}
	if fs.Changed("target") {
		cfg.Target = c.flags.Target
	}

	return cfg, cfg.Validate()
}
