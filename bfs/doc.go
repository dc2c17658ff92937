// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, visit order, and single
// shortest paths between two vertices.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing hop distance
//     and returns a BFSResult (Order, Depth, Parent).
//   - ShortestPath(g, source, target, opts...) stops as soon as target is
//     dequeued and returns one minimum-hop path; an unreachable target yields
//     an empty path and no error.
//   - PathEdges(path) maps a path onto its canonical core.Edge keys, which is
//     how callers tell which hops use shortcut edges.
//   - Hooks (OnVisit), depth limiting (MaxDepth), neighbour filtering
//     (FilterNeighbor) and cancellation (Context) are functional options.
//
// Determinism
//
//	core.Graph.Neighbors returns neighbours in ascending order and BFS
//	enqueues them in that order, so among several equal-length shortest paths
//	the one through smaller vertex indices at the earliest layer is returned.
//	The choice among equal-length paths is a property of this enumeration
//	order, not of the graph.
//
// Complexity (V = Order, E = EdgeCount)
//
//   - Time:   O(V + E log Δ) (neighbour snapshots are sorted)
//   - Memory: O(V)          (queue, Depth, Parent, visited)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrVertexNotFound    if start/source/target is outside [0, Order()).
//   - ErrOptionViolation   if an invalid Option is supplied (negative MaxDepth).
//   - ErrNeighbors         if neighbour lookup fails.
//   - Wrapped OnVisit errors and context errors.
package bfs
