// File: types.go
// Role: Graph and Edge types, sentinel errors, NewGraph.

package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates NewGraph was asked for a negative vertex count.
	ErrNegativeOrder = errors.New("core: negative graph order")

	// ErrVertexNotFound indicates an operation referenced an index outside [0, Order()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an unordered pair of distinct vertices in canonical form (U < V).
// Build edges with NewEdge so that the same pair always maps to the same key.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// NewEdge returns the canonical (min, max) form of the pair {a, b}.
// Complexity: O(1).
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Other returns the endpoint of e opposite to x. If x is not an endpoint,
// Other returns -1.
func (e Edge) Other(x int) int {
	switch x {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return -1
	}
}

// Less orders edges by U, then V.
func (e Edge) Less(o Edge) bool {
	if e.U != o.U {
		return e.U < o.U
	}

	return e.V < o.V
}

// String renders the edge as "U-V".
func (e Edge) String() string {
	return strconv.Itoa(e.U) + "-" + strconv.Itoa(e.V)
}

// Graph is an undirected, unweighted simple graph over the dense vertex
// range [0, n).
//
// adj[u] is the neighbour set of u; edges is the canonical edge set.
// Both structures are kept in lock-step by AddEdge and RemoveEdge.
type Graph struct {
	n     int
	adj   []map[int]struct{}
	edges map[Edge]struct{}
}

// NewGraph creates an edgeless Graph with vertices 0..n-1.
// An order of zero is allowed and produces the empty graph.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrNegativeOrder)
	}
	g := &Graph{
		n:     n,
		adj:   make([]map[int]struct{}, n),
		edges: make(map[Edge]struct{}),
	}
	for i := 0; i < n; i++ {
		g.adj[i] = make(map[int]struct{})
	}

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return g.n
}
