// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_watts_strogatz.go — implementation of WattsStrogatz(k, fraction).
//
// Canonical model:
//   • RingLattice(k) on the vertices of g, then rewire.Rewire in place with
//     cfg.rng. The resulting graph is the rewired one; callers who need the
//     lattice as a baseline build it separately (BuildLattice) and rewire a
//     clone instead.
//
// Contract:
//   • Validation order: size (n, k) → fraction → rng.
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   • Same seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/rewire"
)

// WattsStrogatz returns a Constructor that builds a ring lattice of radius k
// and rewires floor(E·fraction) of its edges.
func WattsStrogatz(k int, fraction float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWattsStrogatz, "n", g.Order(), MinLatticeNodes); err != nil {
			return err
		}
		if err := validateMin(MethodWattsStrogatz, "k", k, MinHops); err != nil {
			return err
		}
		if err := validateProbability(MethodWattsStrogatz, fraction); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodWattsStrogatz, ErrNeedRandSource)
		}

		if err := RingLattice(k)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
		}
		if _, err := rewire.Rewire(g, fraction, cfg.rng, rewire.WithInPlace()); err != nil {
			return fmt.Errorf("%s: %v: %w", MethodWattsStrogatz, err, ErrConstructFailed)
		}

		return nil
	}
}
