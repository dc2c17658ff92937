package rewire

import (
	"errors"

	"github.com/katalvlaran/smallworld/core"
)

// Sentinel errors for rewiring.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("rewire: graph is nil")

	// ErrNeedRandSource is returned when no random source is supplied.
	ErrNeedRandSource = errors.New("rewire: rng is required")

	// ErrInvalidFraction is returned for a fraction outside [0, 1] or NaN.
	ErrInvalidFraction = errors.New("rewire: fraction out of range")
)

// Option configures Rewire via functional arguments.
type Option func(*Options)

// Options holds the knobs of a Rewire call.
type Options struct {
	// InPlace mutates the input graph instead of a clone.
	InPlace bool

	// OnRewire is called once per replaced edge with the removed edge and
	// its replacement, in processing order.
	OnRewire func(removed, added core.Edge)

	// OnDrop is called for an edge removed without replacement.
	OnDrop func(removed core.Edge)
}

// DefaultOptions returns Options with no-op hooks and clone semantics.
func DefaultOptions() Options {
	return Options{
		InPlace:  false,
		OnRewire: func(core.Edge, core.Edge) {},
		OnDrop:   func(core.Edge) {},
	}
}

// WithInPlace makes Rewire mutate the graph it is given.
func WithInPlace() Option {
	return func(o *Options) {
		o.InPlace = true
	}
}

// WithOnRewire registers a callback invoked for every replacement.
func WithOnRewire(fn func(removed, added core.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRewire = fn
		}
	}
}

// WithOnDrop registers a callback invoked for every edge dropped without
// replacement.
func WithOnDrop(fn func(removed core.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDrop = fn
		}
	}
}

// Result is the outcome of a Rewire call.
//   - Graph:      the rewired graph (the input itself under WithInPlace).
//   - Candidates: the shuffled prefix of edges selected for rewiring.
//   - Removed:    candidates that were still present and got removed.
//   - Added:      replacement edges in processing order.
//   - Dropped:    removed edges that received no replacement.
type Result struct {
	Graph      *core.Graph
	Candidates []core.Edge
	Removed    []core.Edge
	Added      []core.Edge
	Dropped    []core.Edge
}
