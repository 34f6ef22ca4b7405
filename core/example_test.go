package core_test

import (
	"fmt"

	"github.com/katalvlaran/flowsearch/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// 1) Declare nodes; zero-value nodes are connectors.
	_ = g.AddNode("AA", 0)
	_ = g.AddNode("BB", 13)
	_ = g.AddNode("CC", 2)

	// 2) Tunnels are directed; add both directions for a two-way tunnel.
	_ = g.AddEdge("AA", "BB")
	_ = g.AddEdge("BB", "AA")
	_ = g.AddEdge("BB", "CC")

	nbs, _ := g.Neighbors("BB")
	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Activatable:", g.Activatable())
	fmt.Println("BB leads to:", nbs)

	// Output:
	// Nodes: [AA BB CC]
	// Activatable: [BB CC]
	// BB leads to: [AA CC]
}
