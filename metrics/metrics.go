package metrics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/smallworld/bfs"
	"github.com/katalvlaran/smallworld/core"
)

// Sentinel errors for metrics.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrTooSmall is returned when a metric needs at least two vertices.
	ErrTooSmall = errors.New("metrics: graph has fewer than two vertices")
)

// PathStats aggregates all-pairs hop distances.
type PathStats struct {
	// Average is the mean distance over reachable ordered pairs (u != v).
	Average float64
	// Diameter is the largest finite distance.
	Diameter int
	// Unreachable counts ordered pairs with no path.
	Unreachable int
}

// Connected reports whether every pair was reachable.
func (p PathStats) Connected() bool {
	return p.Unreachable == 0
}

// AllPairs runs one BFS per vertex and aggregates the distances.
// Returns ErrGraphNil or ErrTooSmall for degenerate input.
func AllPairs(g *core.Graph) (PathStats, error) {
	if g == nil {
		return PathStats{}, ErrGraphNil
	}
	n := g.Order()
	if n < 2 {
		return PathStats{}, fmt.Errorf("AllPairs: n=%d: %w", n, ErrTooSmall)
	}

	var (
		out   PathStats
		sum   float64
		count int
	)
	for s := 0; s < n; s++ {
		res, err := bfs.BFS(g, s)
		if err != nil {
			return PathStats{}, fmt.Errorf("AllPairs: BFS(%d): %w", s, err)
		}
		for v, d := range res.Depth {
			if v == s {
				continue
			}
			if d == bfs.Unreached {
				out.Unreachable++
				continue
			}
			sum += float64(d)
			count++
			if d > out.Diameter {
				out.Diameter = d
			}
		}
	}
	if count > 0 {
		out.Average = sum / float64(count)
	}

	return out, nil
}

// AveragePathLength returns the mean hop distance over reachable ordered pairs.
func AveragePathLength(g *core.Graph) (float64, error) {
	ps, err := AllPairs(g)
	if err != nil {
		return 0, err
	}

	return ps.Average, nil
}

// Diameter returns the largest finite hop distance and whether every pair
// of vertices is connected.
func Diameter(g *core.Graph) (int, bool, error) {
	ps, err := AllPairs(g)
	if err != nil {
		return 0, false, err
	}

	return ps.Diameter, ps.Connected(), nil
}

// LocalClustering returns the fraction of pairs of u's neighbours that are
// themselves adjacent. Vertices of degree < 2 have coefficient 0.
func LocalClustering(g *core.Graph, u int) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	nbrs, err := g.Neighbors(u)
	if err != nil {
		return 0, fmt.Errorf("LocalClustering: %w", err)
	}
	k := len(nbrs)
	if k < 2 {
		return 0, nil
	}
	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				links++
			}
		}
	}

	return float64(2*links) / float64(k*(k-1)), nil
}

// Clustering returns the average local clustering coefficient (Watts–Strogatz C).
// The empty graph has coefficient 0.
func Clustering(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	n := g.Order()
	if n == 0 {
		return 0, nil
	}
	local := make([]float64, n)
	for u := 0; u < n; u++ {
		c, err := LocalClustering(g, u)
		if err != nil {
			return 0, err
		}
		local[u] = c
	}

	return stat.Mean(local, nil), nil
}

// Summary is a one-shot structural description of a graph.
type Summary struct {
	Nodes         int     `yaml:"nodes"`
	Edges         int     `yaml:"edges"`
	MinDegree     int     `yaml:"min_degree"`
	MaxDegree     int     `yaml:"max_degree"`
	MeanDegree    float64 `yaml:"mean_degree"`
	AvgPathLength float64 `yaml:"avg_path_length"`
	Diameter      int     `yaml:"diameter"`
	Clustering    float64 `yaml:"clustering"`
	Connected     bool    `yaml:"connected"`
}

// Summarize computes every metric of the package for g.
func Summarize(g *core.Graph) (Summary, error) {
	ps, err := AllPairs(g)
	if err != nil {
		return Summary{}, err
	}
	c, err := Clustering(g)
	if err != nil {
		return Summary{}, err
	}

	degrees := g.Degrees()
	deg := make([]float64, len(degrees))
	s := Summary{
		Nodes:         g.Order(),
		Edges:         g.EdgeCount(),
		MinDegree:     degrees[0],
		MaxDegree:     degrees[0],
		AvgPathLength: ps.Average,
		Diameter:      ps.Diameter,
		Clustering:    c,
		Connected:     ps.Connected(),
	}
	for i, d := range degrees {
		deg[i] = float64(d)
		if d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.MeanDegree = stat.Mean(deg, nil)

	return s, nil
}
