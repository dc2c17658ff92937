package smallworld

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/metrics"
	"github.com/katalvlaran/smallworld/rewire"
)

// ErrNoFractions indicates Sweep was given nothing to sweep over.
var ErrNoFractions = fmt.Errorf("%w: no fractions", ErrInvalidConfig)

// SweepPoint aggregates the trials run at one rewiring fraction.
type SweepPoint struct {
	Fraction float64 `yaml:"fraction"`
	Trials   int     `yaml:"trials"`

	// Mean and standard deviation of the average shortest-path length and
	// of the clustering coefficient across trials.
	PathLength       float64 `yaml:"path_length"`
	PathLengthStdDev float64 `yaml:"path_length_stddev"`
	Clustering       float64 `yaml:"clustering"`
	ClusteringStdDev float64 `yaml:"clustering_stddev"`

	// PathRatio is L(p)/L(0) and ClusteringRatio is C(p)/C(0), with the
	// lattice as the p = 0 reference.
	PathRatio       float64 `yaml:"path_ratio"`
	ClusteringRatio float64 `yaml:"clustering_ratio"`

	// Disconnected counts trials whose rewired graph split apart; their
	// path length only averages the reachable pairs.
	Disconnected int `yaml:"disconnected"`
}

type trialResult struct {
	path, clustering float64
	connected        bool
}

// Sweep rewires the lattice described by cfg trials times for every fraction
// and reports one SweepPoint per fraction, in input order. cfg.Fraction and
// the path endpoints are ignored.
//
// Trial t of fraction i is seeded with deriveSeed(cfg.Seed, i*trials+t), so
// the output is identical for any WithParallelism value.
func Sweep(ctx context.Context, cfg Config, fractions []float64, trials int, opts ...Option) ([]SweepPoint, error) {
	if len(fractions) == 0 {
		return nil, fmt.Errorf("Sweep: %w", ErrNoFractions)
	}
	if trials < 1 {
		return nil, fmt.Errorf("Sweep: %w: trials=%d < 1", ErrInvalidConfig, trials)
	}
	for _, f := range fractions {
		probe := cfg
		probe.Fraction = f
		probe.Source, probe.Target = 0, OppositeTarget
		if err := probe.Validate(); err != nil {
			return nil, fmt.Errorf("Sweep: %w", err)
		}
	}
	o := resolveOptions(opts)

	lattice, err := builder.BuildGraph(cfg.Nodes, nil, builder.RingLattice(cfg.Hops))
	if err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}
	ref, err := metrics.AllPairs(lattice)
	if err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}
	refC, err := metrics.Clustering(lattice)
	if err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}
	o.logger.Info("sweep started",
		zap.Int("nodes", cfg.Nodes),
		zap.Int("hops", cfg.Hops),
		zap.Float64s("fractions", fractions),
		zap.Int("trials", trials),
		zap.Int("parallelism", o.parallelism),
		zap.Float64("lattice_path_length", ref.Average),
		zap.Float64("lattice_clustering", refC))

	// Every goroutine writes only its own slot.
	results := make([]trialResult, len(fractions)*trials)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)
	for i, f := range fractions {
		for t := 0; t < trials; t++ {
			slot := i*trials + t
			seed := deriveSeed(cfg.Seed, uint64(slot))
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				r, err := runTrial(lattice, f, seed)
				if err != nil {
					return fmt.Errorf("fraction=%v trial=%d: %w", f, t, err)
				}
				results[slot] = r
				o.logger.Debug("trial finished",
					zap.Float64("fraction", f),
					zap.Int("trial", t),
					zap.Float64("path_length", r.path),
					zap.Float64("clustering", r.clustering))

				return nil
			})
		}
	}
	if err = eg.Wait(); err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}

	points := make([]SweepPoint, len(fractions))
	for i, f := range fractions {
		points[i] = aggregate(f, results[i*trials:(i+1)*trials], ref.Average, refC)
	}
	o.logger.Info("sweep finished", zap.Int("points", len(points)))

	return points, nil
}

// runTrial rewires a clone of lattice and measures it. lattice is only read,
// so concurrent trials may share it.
func runTrial(lattice *core.Graph, fraction float64, seed int64) (trialResult, error) {
	res, err := rewire.Rewire(lattice, fraction, rngFromSeed(seed))
	if err != nil {
		return trialResult{}, err
	}
	ps, err := metrics.AllPairs(res.Graph)
	if err != nil {
		return trialResult{}, err
	}
	c, err := metrics.Clustering(res.Graph)
	if err != nil {
		return trialResult{}, err
	}

	return trialResult{path: ps.Average, clustering: c, connected: ps.Connected()}, nil
}

// aggregate folds the trials of one fraction into a SweepPoint.
func aggregate(fraction float64, trials []trialResult, refPath, refClustering float64) SweepPoint {
	paths := make([]float64, len(trials))
	clust := make([]float64, len(trials))
	p := SweepPoint{Fraction: fraction, Trials: len(trials)}
	for i, r := range trials {
		paths[i] = r.path
		clust[i] = r.clustering
		if !r.connected {
			p.Disconnected++
		}
	}
	p.PathLength, p.PathLengthStdDev = meanStdDev(paths)
	p.Clustering, p.ClusteringStdDev = meanStdDev(clust)
	p.PathRatio = ratio(p.PathLength, refPath)
	p.ClusteringRatio = ratio(p.Clustering, refClustering)

	return p
}

// meanStdDev wraps stat.MeanStdDev, which reports NaN deviation for a
// single sample.
func meanStdDev(xs []float64) (float64, float64) {
	if len(xs) == 1 {
		return xs[0], 0
	}

	return stat.MeanStdDev(xs, nil)
}

func ratio(x, ref float64) float64 {
	if ref == 0 {
		return math.NaN()
	}

	return x / ref
}
