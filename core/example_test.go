package core_test

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph over the vertices 0..3.
	g, err := core.NewGraph(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Add a triangle; orientation of the pair does not matter.
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(2, 1)
	_ = g.AddEdge(0, 2)

	// 3) Inspect.
	nbrs, _ := g.Neighbors(1)
	fmt.Println("neighbours of 1:", nbrs)
	fmt.Println("edges:", g.Edges())
	free, _ := g.NonNeighbors(0)
	fmt.Println("free targets of 0:", free)

	// Output:
	// neighbours of 1: [0 2]
	// edges: [0-1 0-2 1-2]
	// free targets of 0: [3]
}
