// File: methods_clone.go
// Role: Cloning and structural comparison.

package core

// CloneEmpty returns a new Graph with the same order and no edges.
// Complexity: O(n).
func (g *Graph) CloneEmpty() *Graph {
	clone, _ := NewGraph(g.n) // g.n >= 0 by construction

	return clone
}

// Clone returns a deep copy of g. Mutating the clone never affects g.
// Complexity: O(n + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for e := range g.edges {
		clone.edges[e] = struct{}{}
		clone.adj[e.U][e.V] = struct{}{}
		clone.adj[e.V][e.U] = struct{}{}
	}

	return clone
}

// Equal reports whether g and other have the same order and the same edge set.
// Because both graphs maintain the symmetry invariant, equal edge sets imply
// equal neighbour sets.
// Complexity: O(n + E).
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.n != other.n || len(g.edges) != len(other.edges) {
		return false
	}
	for e := range g.edges {
		if _, ok := other.edges[e]; !ok {
			return false
		}
	}

	return true
}

// Clear removes every edge while keeping the vertex range.
// Complexity: O(n).
func (g *Graph) Clear() {
	g.edges = make(map[Edge]struct{})
	for u := 0; u < g.n; u++ {
		g.adj[u] = make(map[int]struct{})
	}
}
