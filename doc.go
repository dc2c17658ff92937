// Package smallworld is a toolkit for Watts–Strogatz small-world experiments
// on ring lattices.
//
// What is inside?
//
//	core/       — dense integer-indexed undirected simple graph
//	builder/    — ring lattices, cycles, chords and Watts–Strogatz constructors
//	rewire/     — seeded random rewiring with removed/added bookkeeping
//	bfs/        — breadth-first search and minimum-hop shortest paths
//	metrics/    — average path length, clustering, diameter, degree summary
//	export/     — gonum graph conversion and Graphviz DOT output
//	smallworld/ — experiment runner: Run, Sweep, YAML config and reports
//	cmd/        — the smallworld command-line tool
//
// Quick ASCII example (n = 8, two hops per side):
//
//	    0───1
//	   ╱ ╲ ╱ ╲
//	  7   ╳   2     every vertex links to its ±1 and ±2 neighbours,
//	  │  ╱ ╲  │     so the far side of the ring is n/4 hops away
//	  6   ╳   3     until a few random shortcuts pull it close.
//	   ╲ ╱ ╲ ╱
//	    5───4
//
// Determinism: every random decision flows from an explicit *rand.Rand, and
// every neighbour and edge list is sorted, so a seed fully reproduces a run.
//
//	go install github.com/katalvlaran/smallworld/cmd/smallworld@latest
package smallworld
