// Package rewire implements the Watts–Strogatz rewiring step over a core.Graph.
//
// What
//
//   - Pick floor(EdgeCount·fraction) edges uniformly at random (one shuffle of
//     the sorted edge list, then take the prefix).
//   - For every picked edge {a, b}: remove it, then reconnect a to a vertex
//     chosen uniformly among the vertices that are neither a nor adjacent to a.
//   - If no such vertex exists, or the new pair already exists, the edge stays
//     removed. Vertex a then loses one degree; this asymmetry is accepted and
//     reported in Result.Dropped rather than retried.
//
// Determinism
//
//	The random source is injected and consumed strictly sequentially: one
//	Shuffle over the edge list, then one Intn per reconnected edge. Candidate
//	lists are built in ascending vertex order. Equal input graph, fraction and
//	seed therefore produce identical results.
//
// Ownership
//
//	By default Rewire works on a clone and never touches the caller's graph,
//	so the lattice stays available as a "before" baseline. WithInPlace opts
//	into mutating the input directly.
//
// Complexity (n = Order, E = EdgeCount, k = rewired edges)
//
//   - Time:   O(E log E + k·n)
//   - Memory: O(n + E)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrNeedRandSource   if the random source is nil.
//   - ErrInvalidFraction  if fraction is NaN or outside [0, 1].
package rewire
