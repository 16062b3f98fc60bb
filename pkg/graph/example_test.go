package graph_test

import (
	"fmt"

	"github.com/strataviz/strata/pkg/graph"
)

func ExampleGraph_basic() {
	// Create a simple dependency graph: app → lib → core
	g := graph.New[string, int](graph.Options{Directed: true})
	_ = g.SetNode("app", "Application")
	_ = g.SetNode("lib", "Library")
	_ = g.SetNode("core", "Core")
	_ = g.SetEdge("app", "lib", 1)
	_ = g.SetEdge("lib", "core", 1)

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Successors of app:", g.Successors("app"))
	// Output:
	// Nodes: 3
	// Edges: 2
	// Successors of app: [lib]
}

func ExampleGraph_compound() {
	// Nest nodes inside a cluster
	g := graph.New[string, int](graph.Options{Directed: true, Compound: true})
	_ = g.SetNode("cluster", "Group")
	_ = g.SetNode("a", "A")
	_ = g.SetNode("b", "B")
	_ = g.SetParent("a", "cluster")
	_ = g.SetParent("b", "cluster")

	fmt.Println("Children:", g.Children("cluster"))
	fmt.Println("Parent of a:", g.Parent("a"))
	// Output:
	// Children: [a b]
	// Parent of a: cluster
}

func ExampleGraph_multigraph() {
	// Parallel edges distinguished by name
	g := graph.New[string, string](graph.Options{Directed: true, Multigraph: true})
	_ = g.SetEdge("a", "b", "first")
	_ = g.SetNamedEdge("a", "b", "alt", "second")

	fmt.Println("Edges:", g.EdgeCount())
	// Output:
	// Edges: 2
}
