// Package smallworld runs Watts–Strogatz experiments end to end: build the
// ring lattice, rewire a copy of it with a seeded random source, and compare
// the shortest path between two opposite vertices before and after.
//
// What
//
//   - Config describes one experiment (nodes, hops, fraction, seed, source,
//     target) and round-trips through YAML.
//   - Run executes a single experiment and returns an Outcome with both
//     paths, the edges they traverse, the shortcuts the new path takes and a
//     metrics.Summary of each graph.
//   - Sweep repeats the experiment over several fractions and trials and
//     reports the classic L(p)/L(0) and C(p)/C(0) ratios.
//   - WriteReport renders Outcomes and sweep points as YAML or text.
//
// Determinism
//
//	Run seeds a fresh *rand.Rand from Config.Seed. Sweep derives one seed per
//	(fraction, trial) from Config.Seed with a SplitMix64 mix, so results do
//	not depend on the degree of parallelism.
//
// Logging
//
//	Milestones are logged at Info and individual rewirings at Debug on the
//	*zap.Logger supplied via WithLogger (a no-op logger by default).
package smallworld
