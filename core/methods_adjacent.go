// File: methods_adjacent.go
// Role: Neighbourhood views (Neighbors, NonNeighbors, AdjacencyList).
// Determinism:
//   - Every returned slice is sorted ascending and independent of g.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the neighbours of u sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: if u is outside [0, Order()).
//
// Complexity: O(d log d), d = Degree(u).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexNotFound)
	}

	return sortedKeys(g.adj[u]), nil
}

// NonNeighbors returns every vertex x with x != u and x not adjacent to u,
// ascending. This is the pool of legal new endpoints for an edge leaving u.
//
// Complexity: O(n).
func (g *Graph) NonNeighbors(u int) ([]int, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("NonNeighbors(%d): %w", u, ErrVertexNotFound)
	}
	nbrs := g.adj[u]
	out := make([]int, 0, g.n-1-len(nbrs))
	for x := 0; x < g.n; x++ {
		if x == u {
			continue
		}
		if _, ok := nbrs[x]; ok {
			continue
		}
		out = append(out, x)
	}

	return out, nil
}

// AdjacencyList returns a snapshot of the neighbour sets: out[u] lists the
// neighbours of u ascending. Vertices without neighbours get an empty,
// non-nil slice.
//
// Complexity: O(n + Σ d log d).
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, g.n)
	for u := 0; u < g.n; u++ {
		out[u] = sortedKeys(g.adj[u])
	}

	return out
}

// sortedKeys copies the keys of set into an ascending slice.
func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for x := range set {
		out = append(out, x)
	}
	sort.Ints(out)

	return out
}
