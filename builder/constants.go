// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodRingLattice is the canonical name for the RingLattice constructor.
	MethodRingLattice = "RingLattice"
	// MethodShortcut is the canonical name for the Shortcut constructor.
	MethodShortcut = "Shortcut"
	// MethodWattsStrogatz is the canonical name for the WattsStrogatz constructor.
	MethodWattsStrogatz = "WattsStrogatz"
)

//-----------------------------------------------------------------------------
// Lattice shape
//-----------------------------------------------------------------------------

// MinLatticeNodes is the smallest ring that can be built without self-loops.
// Below 3 vertices the hop-1 and hop-2 targets wrap onto the source itself.
const MinLatticeNodes = 3

// MinHops is the smallest neighbourhood radius (a plain cycle).
const MinHops = 1

// DefaultHops is the radius of the classic small-world lattice: every vertex
// links to its 1-hop and 2-hop neighbours on both sides (degree 4).
const DefaultHops = 2

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for the rewiring fraction, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the rewiring fraction, inclusive.
const MaxProbability = 1.0
