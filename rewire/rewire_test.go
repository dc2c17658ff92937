package rewire_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/rewire"
)

// RewireSuite exercises Rewire on the 60-node small-world lattice.
type RewireSuite struct {
	suite.Suite
	lattice *core.Graph
}

func (s *RewireSuite) SetupTest() {
	g, err := builder.BuildLattice(60)
	s.Require().NoError(err)
	s.lattice = g
}

// requireWellFormed checks symmetry, loop-freedom and edge/degree agreement.
func (s *RewireSuite) requireWellFormed(g *core.Graph) {
	adj := g.AdjacencyList()
	sum := 0
	for u, nbrs := range adj {
		sum += len(nbrs)
		for _, v := range nbrs {
			s.Require().NotEqual(u, v, "self-loop at %d", u)
			s.Require().Contains(adj[v], u, "asymmetric %d→%d", u, v)
			s.Require().True(g.HasEdge(u, v))
		}
	}
	s.Require().Equal(2*g.EdgeCount(), sum)
}

// TestErrors verifies input validation.
func (s *RewireSuite) TestErrors() {
	rng := rand.New(rand.NewSource(1))
	_, err := rewire.Rewire(nil, 0.1, rng)
	s.Require().ErrorIs(err, rewire.ErrGraphNil)
	_, err = rewire.Rewire(s.lattice, 0.1, nil)
	s.Require().ErrorIs(err, rewire.ErrNeedRandSource)
	for _, f := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err = rewire.Rewire(s.lattice, f, rng)
		s.Require().ErrorIs(err, rewire.ErrInvalidFraction, "fraction %v", f)
	}
}

// TestZeroFraction leaves the structure unchanged.
func (s *RewireSuite) TestZeroFraction() {
	res, err := rewire.Rewire(s.lattice, 0, rand.New(rand.NewSource(9)))
	s.Require().NoError(err)
	s.Require().True(res.Graph.Equal(s.lattice))
	s.Require().Empty(res.Candidates)
	s.Require().Empty(res.Removed)
	s.Require().Empty(res.Added)
}

// TestDoesNotMutateInput keeps the lattice usable as a baseline.
func (s *RewireSuite) TestDoesNotMutateInput() {
	before := s.lattice.Clone()
	res, err := rewire.Rewire(s.lattice, 0.5, rand.New(rand.NewSource(2)))
	s.Require().NoError(err)
	s.Require().True(s.lattice.Equal(before))
	s.Require().NotSame(s.lattice, res.Graph)
}

// TestInPlace mutates the input graph.
func (s *RewireSuite) TestInPlace() {
	res, err := rewire.Rewire(s.lattice, 0.5, rand.New(rand.NewSource(2)), rewire.WithInPlace())
	s.Require().NoError(err)
	s.Require().Same(s.lattice, res.Graph)
}

// TestWellFormed holds for any fraction and seed.
func (s *RewireSuite) TestWellFormed() {
	for seed := int64(0); seed < 20; seed++ {
		for _, f := range []float64{0.01, 0.059, 0.25, 0.5, 0.9, 1} {
			res, err := rewire.Rewire(s.lattice, f, rand.New(rand.NewSource(seed)))
			s.Require().NoError(err)
			s.requireWellFormed(res.Graph)
			s.Require().Len(res.Candidates, int(math.Floor(120*f)))
			// each removal either got a replacement or was dropped
			s.Require().Equal(len(res.Removed), len(res.Added)+len(res.Dropped))
			s.Require().Equal(s.lattice.EdgeCount()-len(res.Dropped), res.Graph.EdgeCount())
		}
	}
}

// TestDeterministic compares two runs with the same seed.
func (s *RewireSuite) TestDeterministic() {
	a, err := rewire.Rewire(s.lattice, 0.3, rand.New(rand.NewSource(77)))
	s.Require().NoError(err)
	b, err := rewire.Rewire(s.lattice, 0.3, rand.New(rand.NewSource(77)))
	s.Require().NoError(err)
	s.Require().True(a.Graph.Equal(b.Graph))
	if diff := cmp.Diff(a.Added, b.Added); diff != "" {
		s.T().Errorf("Added differs (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Candidates, b.Candidates); diff != "" {
		s.T().Errorf("Candidates differ (-a +b):\n%s", diff)
	}
}

// TestHooks observes each replacement in order.
func (s *RewireSuite) TestHooks() {
	var seen []core.Edge
	res, err := rewire.Rewire(s.lattice, 0.2, rand.New(rand.NewSource(5)),
		rewire.WithOnRewire(func(_, added core.Edge) { seen = append(seen, added) }))
	s.Require().NoError(err)
	s.Require().Equal(res.Added, seen)
	for _, e := range res.Added {
		s.Require().True(res.Graph.HasEdge(e.U, e.V))
	}
}

func TestRewireSuite(t *testing.T) {
	suite.Run(t, new(RewireSuite))
}

// TestRewire_SaturatedGraphs covers graphs where every vertex is adjacent
// to every other. Removing {a,b} always frees b, so the pool of a is never
// empty and the only legal target restores the removed pair.
func TestRewire_SaturatedGraphs(t *testing.T) {
	// K3
	g, err := builder.BuildGraph(3, nil, builder.Cycle())
	require.NoError(t, err)
	res, err := rewire.Rewire(g, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.True(t, res.Graph.Equal(g))
	require.Empty(t, res.Dropped)
	require.Equal(t, res.Removed, res.Added)

	// K2
	g2, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g2.AddEdge(0, 1))
	res, err = rewire.Rewire(g2, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, []core.Edge{core.NewEdge(0, 1)}, res.Added)
}

// TestRewire_ReplacementLeavesLowEndpoint checks that every replacement keeps
// the smaller endpoint of the removed edge.
func TestRewire_ReplacementLeavesLowEndpoint(t *testing.T) {
	g, err := builder.BuildLattice(30)
	require.NoError(t, err)
	var pairs [][2]core.Edge
	_, err = rewire.Rewire(g, 0.4, rand.New(rand.NewSource(11)),
		rewire.WithOnRewire(func(removed, added core.Edge) {
			pairs = append(pairs, [2]core.Edge{removed, added})
		}))
	require.NoError(t, err)
	require.NotEmpty(t, pairs)
	for _, p := range pairs {
		require.NotEqual(t, -1, p[1].Other(p[0].U), "%v does not touch %d", p[1], p[0].U)
	}
}
