// Package acyclic makes a graph acyclic by reversing a feedback arc set,
// and restores the original edge directions after layout.
//
// Two strategies are available. The default depth-first strategy reverses
// every back edge found during a traversal in node insertion order. The
// greedy strategy implements the Eades-Lin-Smyth heuristic, which usually
// reverses far fewer edges on dense cyclic graphs at the cost of a second
// pass over the structure.
//
// Reversed edges keep their label. The original direction and multigraph
// name are recorded on the label so Undo can restore them, and any points
// accumulated while the edge was reversed are flipped back into the
// original direction.
package acyclic

import (
	"slices"

	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// Run reverses a feedback arc set chosen by the configured strategy.
// Afterwards the graph contains no directed cycles (self loops excepted,
// they are removed by an earlier stage).
func Run(g *layout.Graph, ids *layout.IDGen) {
	var fas []graph.EdgeKey
	if g.Config.Acyclicer == layout.AcyclicerGreedy {
		fas = greedyFAS(g)
	} else {
		fas = dfsFAS(g)
	}
	for _, e := range fas {
		label := g.EdgeLabelOf(e)
		g.RemoveEdge(e)
		label.ForwardName = e.Name
		label.Reversed = true
		g.SetNamedEdge(e.W, e.V, ids.NextName("rev"), label)
	}
}

// dfsFAS collects every back edge of a depth-first traversal.
func dfsFAS(g *layout.Graph) []graph.EdgeKey {
	var fas []graph.EdgeKey
	visited := make(map[string]bool)
	onStack := make(map[string]bool)

	var dfs func(v string)
	dfs = func(v string) {
		if visited[v] {
			return
		}
		visited[v] = true
		onStack[v] = true
		for _, e := range g.OutEdges(v) {
			if onStack[e.W] {
				fas = append(fas, e)
			} else {
				dfs(e.W)
			}
		}
		delete(onStack, v)
	}

	for _, v := range g.Nodes() {
		dfs(v)
	}
	return fas
}

// Undo restores the direction of every reversed edge. The points collected
// while the edge pointed the wrong way are reversed so they read from the
// true tail to the true head.
func Undo(g *layout.Graph) {
	for _, e := range g.Edges() {
		label := g.EdgeLabelOf(e)
		if !label.Reversed {
			continue
		}
		g.RemoveEdge(e)
		forwardName := label.ForwardName
		label.Reversed = false
		label.ForwardName = ""
		slices.Reverse(label.Points)
		g.SetNamedEdge(e.W, e.V, forwardName, label)
	}
}
