// Package rank assigns an integer rank to every node so that each edge
// spans at least its minimum length.
//
// Three algorithms are available. Longest-path is a single DFS that pushes
// every node as low as possible; it is fast but produces wide drawings.
// Tight-tree pulls the longest-path result together until a spanning tree
// of tight edges exists. Network simplex iteratively improves the tight
// tree until the total weighted edge length is minimal, which is the
// default and what the other pipeline stages are tuned for.
//
// Ranks start out relative (often negative) and are shifted to zero-based
// by a later normalization pass.
package rank

import (
	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// Run ranks the graph with the algorithm named in the config.
// The graph must be acyclic and non-compound.
func Run(g *layout.Graph) {
	switch g.Config.Ranker {
	case layout.RankerLongestPath:
		longestPath(g)
	case layout.RankerTightTree:
		longestPath(g)
		feasibleTree(g)
	case layout.RankerNone:
	default:
		networkSimplex(g)
	}
}

// longestPath ranks every node at the lowest position its outgoing edges
// allow. Sinks land on rank zero and ranks grow negative toward the
// sources.
func longestPath(g *layout.Graph) {
	visited := make(map[string]bool)

	var dfs func(v string) int
	dfs = func(v string) int {
		label := g.NodeLabelOf(v)
		if visited[v] {
			return label.Rank
		}
		visited[v] = true

		rank := 0
		first := true
		for _, e := range g.OutEdges(v) {
			candidate := dfs(e.W) - g.EdgeLabelOf(e).MinLen
			if first || candidate < rank {
				rank = candidate
				first = false
			}
		}

		label.Rank = rank
		return rank
	}

	for _, v := range g.Sources() {
		dfs(v)
	}
	// Nodes in components without a source cannot exist in an acyclic
	// graph, but rank defensively in case a caller skips cycle removal.
	for _, v := range g.Nodes() {
		if !visited[v] {
			dfs(v)
		}
	}
}

// slack returns how much longer the edge is than it needs to be.
// Tight edges have zero slack.
func slack(g *layout.Graph, e graph.EdgeKey) int {
	return g.NodeLabelOf(e.W).Rank - g.NodeLabelOf(e.V).Rank - g.EdgeLabelOf(e).MinLen
}
