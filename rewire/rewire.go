package rewire

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/smallworld/core"
)

const methodRewire = "Rewire"

// Rewire replaces floor(EdgeCount·fraction) randomly chosen edges of g with
// edges to random non-adjacent vertices, drawing every random decision from
// rng. See the package documentation for the exact procedure.
//
// Returns ErrGraphNil, ErrNeedRandSource or ErrInvalidFraction for invalid
// input; no other failure is possible.
func Rewire(g *core.Graph, fraction float64, rng *rand.Rand, opts ...Option) (*Result, error) {
	// 1) Input validation (no side effects on failure).
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodRewire, ErrGraphNil)
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return nil, fmt.Errorf("%s: fraction=%v not in [0,1]: %w", methodRewire, fraction, ErrInvalidFraction)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRewire, ErrNeedRandSource)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Ownership: work on a clone unless the caller asked otherwise.
	target := g
	if !o.InPlace {
		target = g.Clone()
	}

	// 3) Select candidates: sorted edge list, one shuffle, take the prefix.
	edges := target.Edges()
	k := int(math.Floor(float64(len(edges)) * fraction))
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	res := &Result{
		Graph:      target,
		Candidates: edges[:k:k],
	}

	// 4) Process candidates in shuffled order.
	for _, e := range res.Candidates {
		a := e.U
		// 4a) already consumed by an earlier step
		if !target.HasEdge(e.U, e.V) {
			continue
		}
		// 4b) remove both directions
		if err := target.RemoveEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("%s: RemoveEdge(%v): %w", methodRewire, e, err)
		}
		res.Removed = append(res.Removed, e)

		// 4c) free targets of a
		pool, err := target.NonNeighbors(a)
		if err != nil {
			return nil, fmt.Errorf("%s: NonNeighbors(%d): %w", methodRewire, a, err)
		}
		// 4d) nothing to reconnect to
		if len(pool) == 0 {
			res.Dropped = append(res.Dropped, e)
			o.OnDrop(e)
			continue
		}
		// 4e) uniform choice
		next := core.NewEdge(a, pool[rng.Intn(len(pool))])
		// 4f) duplicate replacement
		if target.HasEdge(next.U, next.V) {
			res.Dropped = append(res.Dropped, e)
			o.OnDrop(e)
			continue
		}
		// 4g) reconnect
		if err = target.AddEdge(next.U, next.V); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%v): %w", methodRewire, next, err)
		}
		res.Added = append(res.Added, next)
		o.OnRewire(e, next)
	}

	return res, nil
}
