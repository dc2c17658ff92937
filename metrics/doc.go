// Package metrics computes the structural statistics used to compare a ring
// lattice with its rewired small-world counterpart: average shortest path
// length, clustering coefficient, diameter and degree summary.
//
// All distances are hop counts obtained with one bfs.BFS per vertex, so the
// all-pairs cost is O(V·(V + E log Δ)), fine for the graph sizes the
// experiments use (hundreds to a few thousand vertices).
//
// Disconnected graphs
//
//	AveragePathLength averages over the ordered pairs that are reachable and
//	reports how many pairs were not. Diameter reports the largest finite
//	eccentricity together with a connectivity flag.
package metrics
