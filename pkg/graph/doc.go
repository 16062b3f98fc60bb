// Package graph provides a mutable directed or undirected graph with
// arbitrary node and edge labels, parallel named edges, and optional
// compound (cluster) nesting.
//
// # Overview
//
// Strata computes layered drawings of dependency graphs. Every stage of the
// layout pipeline runs on this structure: the caller's input graph, the
// auxiliary graphs built during ranking, and the block graphs used for
// coordinate assignment are all instances of [Graph].
//
// Nodes and edges iterate in insertion order. The layout algorithms break
// ties by iteration order, so a graph built the same way twice produces the
// same drawing.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.SetNode], and edges with
// [Graph.SetEdge]:
//
//	g := graph.New[string, int](graph.Options{Directed: true})
//	g.SetNode("app", "Application")
//	g.SetNode("lib", "Library")
//	g.SetEdge("app", "lib", 1)
//
// Query structure with [Graph.Successors], [Graph.Predecessors],
// [Graph.OutEdges], [Graph.InEdges], and related methods.
//
// # Compound Graphs
//
// With Options.Compound, nodes can be nested inside cluster nodes using
// [Graph.SetParent]. Nesting must form a forest - attempts to make a node
// its own ancestor return [ErrAncestryCycle]. [Graph.Children] with an
// empty ID lists the root-level nodes.
//
// # Multigraphs
//
// With Options.Multigraph, several edges may connect the same pair of nodes,
// distinguished by the Name field of [EdgeKey]. Undirected graphs store each
// edge under a canonical key so lookup works from either endpoint.
package graph
