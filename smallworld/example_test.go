package smallworld_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/smallworld/smallworld"
)

// ExampleRun measures the classic 60-node ring before rewiring.
func ExampleRun() {
	cfg := smallworld.DefaultConfig()
	cfg.Fraction = 0

	out, err := smallworld.Run(context.Background(), cfg, smallworld.WithoutMetrics())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Config.Source, "->", out.Config.Target)
	fmt.Println("hops:", out.HopsBefore(), out.HopsAfter())
	fmt.Println("shortcuts:", len(out.Shortcuts))
	// Output:
	// 0 -> 30
	// hops: 15 15
	// shortcuts: 0
}

// ExampleDefaultConfig shows how the opposite vertex is resolved.
func ExampleDefaultConfig() {
	cfg := smallworld.DefaultConfig()
	fmt.Println(cfg.Nodes, cfg.Hops, cfg.Fraction, cfg.ResolvedTarget())
	// Output: 60 2 0.059 30
}
