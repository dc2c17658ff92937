// Package core provides the dense, integer-indexed undirected simple graph
// used by every other smallworld package.
//
// A Graph of order n has the vertices 0..n-1 fixed at construction time.
// Edges are unordered pairs of distinct vertices and are stored twice:
//
//   - as a canonical Edge{U, V} with U < V in the edge set, and
//   - as mirrored entries in the per-vertex neighbour sets adj[U] and adj[V].
//
// Invariants (hold after every exported call):
//
//   - Symmetry: v ∈ adj[u] ⇔ u ∈ adj[v].
//   - No self-loops: u ∉ adj[u].
//   - No parallel edges: the edge set is a set.
//   - EdgeCount() == Σ Degree(u) / 2.
//
// Determinism
//
//	Neighbour sets are Go maps, so their raw iteration order is random.
//	Every exported view (Neighbors, NonNeighbors, Edges, AdjacencyList)
//	is therefore returned sorted ascending, which makes BFS visit orders and
//	shuffles seeded from the edge list reproducible.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)          // O(n)
//	AddEdge(u, v int) error                  // O(1)
//	RemoveEdge(u, v int) error               // O(1)
//	HasEdge(u, v int) bool                   // O(1)
//	Neighbors(u int) ([]int, error)          // O(d log d)
//	NonNeighbors(u int) ([]int, error)       // O(n)
//	Edges() []Edge                           // O(E log E)
//	AdjacencyList() [][]int                  // O(n + E log d)
//	Degree(u int) (int, error)               // O(1)
//	Clone() *Graph                           // O(n + E)
//	Equal(other *Graph) bool                 // O(n + E)
//
// Concurrency
//
//	Graph carries no locks. Mutations must not overlap with any other call;
//	concurrent readers of a graph nobody mutates are fine. Callers that need
//	an independent copy use Clone.
//
// Errors:
//
//	ErrNegativeOrder       - NewGraph called with n < 0.
//	ErrVertexNotFound      - vertex index outside [0, Order()).
//	ErrEdgeNotFound        - RemoveEdge on an absent edge.
//	ErrLoopNotAllowed      - AddEdge(u, u).
//	ErrMultiEdgeNotAllowed - AddEdge on an edge that already exists.
package core
