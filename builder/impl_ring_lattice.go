// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_ring_lattice.go — implementation of RingLattice(k) and Cycle().
//
// Contract:
//   • g.Order() ≥ MinLatticeNodes and k ≥ MinHops (else ErrTooFewVertices).
//   • Emits edges in stable order: for i = 0..n-1, for h = 1..k, i—(i+h)%n.
//   • Canonical pairs already present are skipped (dedup on small rings and
//     on graphs that already carry some of the lattice edges).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n·k).
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// RingLattice returns a Constructor that links every vertex i to the k
// vertices following it on the ring, which yields a symmetric neighbourhood
// of radius k on both sides.
func RingLattice(k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.Order()
		if err := validateMin(MethodRingLattice, "n", n, MinLatticeNodes); err != nil {
			return err
		}
		if err := validateMin(MethodRingLattice, "k", k, MinHops); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for h := 1; h <= k; h++ {
				j := (i + h) % n
				// k ≥ n wraps around onto i itself
				if j == i || g.HasEdge(i, j) {
					continue
				}
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", MethodRingLattice, i, j, err, ErrConstructFailed)
				}
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle() Constructor {
	return RingLattice(MinHops)
}
