package smallworld

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/smallworld/bfs"
	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/metrics"
	"github.com/katalvlaran/smallworld/rewire"
)

// Outcome is the result of one experiment.
type Outcome struct {
	// RunID identifies this execution in logs and reports.
	RunID string `yaml:"run_id"`
	// Config is the validated input with Target resolved.
	Config Config `yaml:"config"`

	// Lattice is the untouched ring lattice.
	Lattice *core.Graph `yaml:"-"`
	// Rewired is the lattice after rewiring; Lattice is never mutated.
	Rewired *core.Graph `yaml:"-"`

	// Candidates is the number of edges selected for rewiring.
	Candidates int `yaml:"candidates"`
	// Added lists the replacement edges in processing order.
	Added []core.Edge `yaml:"-"`

	// PathBefore and PathAfter are shortest paths Source→Target; empty when
	// Target is unreachable.
	PathBefore []int `yaml:"path_before,flow"`
	PathAfter  []int `yaml:"path_after,flow"`

	// Shortcuts are the edges of PathAfter absent from the lattice.
	Shortcuts []core.Edge `yaml:"-"`

	// Before and After summarise both graphs; nil under WithoutMetrics.
	Before *metrics.Summary `yaml:"before,omitempty"`
	After  *metrics.Summary `yaml:"after,omitempty"`
}

// HopsBefore returns the hop count of PathBefore, or -1 if it is empty.
func (o *Outcome) HopsBefore() int { return hops(o.PathBefore) }

// HopsAfter returns the hop count of PathAfter, or -1 if it is empty.
func (o *Outcome) HopsAfter() int { return hops(o.PathAfter) }

func hops(path []int) int {
	return len(path) - 1
}

// Run builds the lattice, rewires a copy with a random source seeded from
// cfg.Seed and measures the shortest Source→Target path on both graphs.
// ctx bounds the breadth-first searches.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	o := resolveOptions(opts)
	cfg.Target = cfg.ResolvedTarget()

	out := &Outcome{RunID: uuid.NewString(), Config: cfg}
	log := o.logger.With(zap.String("run_id", out.RunID))
	started := time.Now()

	// 1) Lattice.
	lattice, err := builder.BuildGraph(cfg.Nodes, nil, builder.RingLattice(cfg.Hops))
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	out.Lattice = lattice
	log.Info("lattice built",
		zap.Int("nodes", lattice.Order()),
		zap.Int("edges", lattice.EdgeCount()),
		zap.Int("hops", cfg.Hops))

	// 2) Rewire a clone.
	res, err := rewire.Rewire(lattice, cfg.Fraction, rngFromSeed(cfg.Seed),
		rewire.WithOnRewire(func(removed, added core.Edge) {
			log.Debug("edge rewired", zap.Stringer("removed", removed), zap.Stringer("added", added))
		}),
		rewire.WithOnDrop(func(removed core.Edge) {
			log.Debug("edge dropped", zap.Stringer("removed", removed))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	out.Rewired = res.Graph
	out.Candidates = len(res.Candidates)
	out.Added = res.Added
	log.Info("lattice rewired",
		zap.Float64("fraction", cfg.Fraction),
		zap.Int64("seed", cfg.Seed),
		zap.Int("candidates", len(res.Candidates)),
		zap.Int("added", len(res.Added)),
		zap.Int("dropped", len(res.Dropped)))

	// 3) Paths.
	if out.PathBefore, err = bfs.ShortestPath(lattice, cfg.Source, cfg.Target, bfs.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("Run: lattice path: %w", err)
	}
	if out.PathAfter, err = bfs.ShortestPath(out.Rewired, cfg.Source, cfg.Target, bfs.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("Run: rewired path: %w", err)
	}
	out.Shortcuts = Shortcuts(lattice, out.PathAfter)
	log.Info("paths found",
		zap.Int("source", cfg.Source),
		zap.Int("target", cfg.Target),
		zap.Int("hops_before", out.HopsBefore()),
		zap.Int("hops_after", out.HopsAfter()),
		zap.Int("shortcuts", len(out.Shortcuts)))

	// 4) Metrics.
	if o.metrics {
		before, err := metrics.Summarize(lattice)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		after, err := metrics.Summarize(out.Rewired)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		out.Before, out.After = &before, &after
	}

	log.Info("run finished", zap.Duration("elapsed", time.Since(started)))

	return out, nil
}

// Shortcuts returns the edges of path that are not edges of base, in path
// order. The result is never nil.
func Shortcuts(base *core.Graph, path []int) []core.Edge {
	out := []core.Edge{}
	for _, e := range bfs.PathEdges(path) {
		if !base.HasEdge(e.U, e.V) {
			out = append(out, e)
		}
	}

	return out
}
