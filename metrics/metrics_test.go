package metrics_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/metrics"
	"github.com/katalvlaran/smallworld/rewire"
)

const eps = 1e-9

// TestClustering_Lattice: a degree-4 ring lattice has C = 3(k-1)/(2(2k-1)) = 0.5 for k = 2.
func TestClustering_Lattice(t *testing.T) {
	g, err := builder.BuildLattice(60)
	require.NoError(t, err)
	c, err := metrics.Clustering(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c, eps)
}

// TestClustering_Degenerate covers low-degree and empty graphs.
func TestClustering_Degenerate(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.Cycle())
	require.NoError(t, err)
	c, err := metrics.Clustering(g)
	require.NoError(t, err)
	assert.Zero(t, c)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	c, err = metrics.Clustering(empty)
	require.NoError(t, err)
	assert.Zero(t, c)

	_, err = metrics.Clustering(nil)
	require.ErrorIs(t, err, metrics.ErrGraphNil)
	_, err = metrics.LocalClustering(g, 9)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestAllPairs_Cycle: C_6 distances from any vertex are 1,1,2,2,3.
func TestAllPairs_Cycle(t *testing.T) {
	g, err := builder.BuildGraph(6, nil, builder.Cycle())
	require.NoError(t, err)
	ps, err := metrics.AllPairs(g)
	require.NoError(t, err)
	assert.InDelta(t, 9.0/5.0, ps.Average, eps)
	assert.Equal(t, 3, ps.Diameter)
	assert.True(t, ps.Connected())
}

// TestAllPairs_Disconnected counts unreachable ordered pairs.
func TestAllPairs_Disconnected(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))
	ps, err := metrics.AllPairs(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ps.Average, eps)
	assert.Equal(t, 8, ps.Unreachable)
	assert.False(t, ps.Connected())

	one, _ := core.NewGraph(1)
	_, err = metrics.AveragePathLength(one)
	require.ErrorIs(t, err, metrics.ErrTooSmall)
}

// TestDiameter: the 60-node lattice spans 15 hops; two components are
// reported as disconnected.
func TestDiameter(t *testing.T) {
	lattice, err := builder.BuildLattice(60)
	require.NoError(t, err)
	d, connected, err := metrics.Diameter(lattice)
	require.NoError(t, err)
	assert.Equal(t, 15, d)
	assert.True(t, connected)

	split, err := builder.BuildGraph(5, nil, builder.Shortcut(0, 1), builder.Shortcut(1, 2), builder.Shortcut(3, 4))
	require.NoError(t, err)
	d, connected, err = metrics.Diameter(split)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.False(t, connected)

	_, _, err = metrics.Diameter(nil)
	require.ErrorIs(t, err, metrics.ErrGraphNil)
}

// TestSummarize_SmallWorldEffect: rewiring shortens paths far more than it
// lowers clustering.
func TestSummarize_SmallWorldEffect(t *testing.T) {
	lattice, err := builder.BuildLattice(200)
	require.NoError(t, err)
	res, err := rewire.Rewire(lattice, 0.1, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	before, err := metrics.Summarize(lattice)
	require.NoError(t, err)
	after, err := metrics.Summarize(res.Graph)
	require.NoError(t, err)

	assert.Equal(t, 200, before.Nodes)
	assert.Equal(t, 400, before.Edges)
	assert.Equal(t, 4, before.MinDegree)
	assert.Equal(t, 4, before.MaxDegree)
	assert.InDelta(t, 4.0, before.MeanDegree, eps)
	assert.Equal(t, 50, before.Diameter)
	assert.True(t, before.Connected)

	assert.Less(t, after.AvgPathLength, before.AvgPathLength/2)
	assert.Greater(t, after.Clustering/before.Clustering, 0.5)
	assert.InDelta(t, 4.0, after.MeanDegree, eps)
}
