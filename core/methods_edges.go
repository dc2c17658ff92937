// File: methods_edges.go
// Role: Edge lifecycle (AddEdge, RemoveEdge) and edge queries.
// Determinism:
//   - Edges() is sorted by (U, V) ascending.
// Invariants:
//   - adj and edges are updated together; a failed call mutates nothing.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u, v}.
//
// Implementation:
//   - Stage 1: Validate both endpoints (ErrVertexNotFound).
//   - Stage 2: Reject self-loops (ErrLoopNotAllowed).
//   - Stage 3: Reject an existing pair (ErrMultiEdgeNotAllowed).
//   - Stage 4: Record the canonical edge and mirror it into adj[u] and adj[v].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	e := NewEdge(u, v)
	if _, ok := g.edges[e]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	g.edges[e] = struct{}{}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}

	return nil
}

// RemoveEdge deletes the undirected edge {u, v} from both the edge set and
// the two neighbour sets.
//
// Errors:
//   - ErrVertexNotFound: if either endpoint is out of range.
//   - ErrEdgeNotFound: if the edge is absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	e := NewEdge(u, v)
	if _, ok := g.edges[e]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	delete(g.edges, e)
	delete(g.adj[u], v)
	delete(g.adj[v], u)

	return nil
}

// HasEdge reports whether {u, v} is present. Out-of-range endpoints yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	_, ok := g.edges[NewEdge(u, v)]

	return ok
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edges returns all edges in canonical form sorted by (U, V).
// The returned slice is owned by the caller.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
