// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: <what>=<got> < min=<min>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, what string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, what, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability] and
// rejects NaN.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: probability must be in [%.1f,%.1f], got %v: %w",
			method, MinProbability, MaxProbability, p, ErrInvalidProbability)
	}

	return nil
}
