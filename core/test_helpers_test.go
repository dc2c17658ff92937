// Package core_test contains test helpers for smallworld/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and invariant checks for core.Graph.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/core"
)

// Common graph orders used across core tests (avoid magic numbers in test bodies).
const (
	Order0  = 0
	Order1  = 1
	Order4  = 4
	Order6  = 6
	Order60 = 60
)

// MustGraph builds a graph of order n with the given edges or fails the test.
func MustGraph(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]), "AddEdge(%d,%d)", e[0], e[1])
	}

	return g
}

// AssertWellFormed checks symmetry, absence of self-loops and agreement
// between the edge set and the neighbour sets.
func AssertWellFormed(t *testing.T, g *core.Graph) {
	t.Helper()
	adj := g.AdjacencyList()
	degreeSum := 0
	for u, nbrs := range adj {
		degreeSum += len(nbrs)
		for _, v := range nbrs {
			require.NotEqual(t, u, v, "self-loop at %d", u)
			require.Contains(t, adj[v], u, "asymmetric pair %d→%d", u, v)
			require.True(t, g.HasEdge(u, v), "edge set misses %d-%d", u, v)
		}
	}
	require.Equal(t, g.EdgeCount()*2, degreeSum, "edge count vs degree sum")
}
