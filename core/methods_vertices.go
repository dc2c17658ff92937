// File: methods_vertices.go
// Role: Vertex queries (HasVertex, Degree, Vertices).
// Determinism:
//   - Vertices() is always 0..n-1 ascending.

package core

import "fmt"

// HasVertex reports whether u is a valid vertex index of g.
// Complexity: O(1).
func (g *Graph) HasVertex(u int) bool {
	return u >= 0 && u < g.n
}

// Degree returns the number of neighbours of u.
//
// Errors:
//   - ErrVertexNotFound: if u is outside [0, Order()).
//
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	if !g.HasVertex(u) {
		return 0, fmt.Errorf("Degree(%d): %w", u, ErrVertexNotFound)
	}

	return len(g.adj[u]), nil
}

// Degrees returns the degree of every vertex, indexed by vertex.
// Complexity: O(n).
func (g *Graph) Degrees() []int {
	out := make([]int, g.n)
	for u := 0; u < g.n; u++ {
		out[u] = len(g.adj[u])
	}

	return out
}

// Vertices returns the vertex indices 0..n-1.
// Complexity: O(n).
func (g *Graph) Vertices() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = i
	}

	return out
}
