package builder

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// Shortcut returns a Constructor that adds the single chord {u, v}.
// An already present chord is left as is. Out-of-range endpoints and u == v
// are reported as ErrConstructFailed wrapping the core error.
func Shortcut(u, v int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if g.HasEdge(u, v) {
			return nil
		}
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: %w: %w", MethodShortcut, ErrConstructFailed, err)
		}

		return nil
	}
}
