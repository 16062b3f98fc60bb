package rank

import (
	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// treeNode carries the spanning tree bookkeeping for one node. low and lim
// number the subtree in postorder so ancestry tests are two comparisons.
type treeNode struct {
	low    int
	lim    int
	parent string
}

// treeEdge carries the cut value of a spanning tree edge.
type treeEdge struct {
	cutValue float64
}

// spanTree is the undirected spanning tree the simplex pivots on.
type spanTree = graph.Graph[*treeNode, *treeEdge]

func newSpanTree() *spanTree {
	t := graph.New[*treeNode, *treeEdge](graph.Options{})
	t.SetDefaultNodeLabel(func() *treeNode { return &treeNode{} })
	t.SetDefaultEdgeLabel(func(graph.EdgeKey) *treeEdge { return &treeEdge{} })
	return t
}

// feasibleTree grows a spanning tree of tight edges, shifting whole
// components by the minimum slack until every node is connected. The graph
// must already carry a feasible ranking. Disconnected graphs become a
// forest: each component gets its own root.
func feasibleTree(g *layout.Graph) *spanTree {
	t := newSpanTree()
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return t
	}

	size := g.NodeCount()
	t.EnsureNode(nodes[0])

	for tightTree(t, g) < size {
		e, incident, ok := findMinSlackEdge(t, g)
		if !ok {
			// Disconnected component: seed a new root and keep growing.
			for _, v := range nodes {
				if !t.HasNode(v) {
					t.EnsureNode(v)
					break
				}
			}
			continue
		}
		delta := slack(g, e)
		if !incident {
			delta = -delta
		}
		shiftRanks(t, g, delta)
	}
	return t
}

// tightTree adds every node reachable from the current tree through a
// zero-slack edge, in either direction. Returns the tree size.
func tightTree(t *spanTree, g *layout.Graph) int {
	stack := t.Nodes()
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.NodeEdges(v) {
			w := e.V
			if v == e.V {
				w = e.W
			}
			if t.HasNode(w) {
				continue
			}
			if slack(g, e) == 0 {
				t.EnsureNode(w)
				t.EnsureEdge(v, w, "")
				stack = append(stack, w)
			}
		}
	}
	return t.NodeCount()
}

// findMinSlackEdge scans for the edge with minimum slack that joins the
// tree to the rest of the graph. The boolean reports whether the tail is
// the endpoint inside the tree.
func findMinSlackEdge(t *spanTree, g *layout.Graph) (graph.EdgeKey, bool, bool) {
	var best graph.EdgeKey
	bestSlack := 0
	bestIncident := false
	found := false
	for _, e := range g.Edges() {
		inV := t.HasNode(e.V)
		inW := t.HasNode(e.W)
		if inV == inW {
			continue
		}
		if s := slack(g, e); !found || s < bestSlack {
			best = e
			bestSlack = s
			bestIncident = inV
			found = true
		}
	}
	return best, bestIncident, found
}

func shiftRanks(t *spanTree, g *layout.Graph, delta int) {
	for _, v := range t.Nodes() {
		g.NodeLabelOf(v).Rank += delta
	}
}
