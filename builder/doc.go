// Package builder constructs the graphs smallworld experiments start from:
// ring lattices, plain cycles, explicit shortcuts and complete Watts–Strogatz
// graphs (lattice + rewiring) over a core.Graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, bopts, cons...): create an n-vertex graph, resolve the
//     configuration and apply constructors in order.
//     – BuildLattice(n): the 1-hop + 2-hop ring lattice in one call.
//   - Constructors (type Constructor):
//     – RingLattice(k): link every i to (i+h) mod n for h = 1..k.
//     – Cycle(): RingLattice(1).
//     – Shortcut(u, v): one extra chord.
//     – WattsStrogatz(k, fraction): RingLattice(k) then in-place rewiring.
//   - Configuration primitives:
//     – BuilderOption / builderConfig: random source for stochastic constructors.
//     – WithSeed, WithRand.
//   - Validation helpers:
//     – validateMin, validateProbability.
//
// Small rings
//
//	Edges are canonicalised as (min, max) and skipped when already present,
//	so hop targets that coincide on a small ring collapse instead of creating
//	parallel edges: n = 3 with k = 2 gives a triangle (degree 2), n = 4 gives
//	K4 (degree 3). From n = 2k+1 on, every vertex has degree exactly 2k.
//	Rings with fewer than MinLatticeNodes vertices are rejected.
//
// Guarantees:
//
//   - Deterministic: same n, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime validation failures are sentinel errors wrapped with the
//     constructor name; constructors never panic.
package builder
