package rank

import (
	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// networkSimplex minimizes the total weighted edge length of the ranking.
// It starts from a longest-path ranking, builds a tight spanning tree, and
// repeatedly exchanges a tree edge with negative cut value for the
// non-tree edge that relaxes it most.
//
// Pivots are capped to guard against degenerate cycling. Every exchange
// leaves a feasible ranking behind, so hitting the cap simply keeps the
// best ranking reached so far.
func networkSimplex(g *layout.Graph) {
	sg := simplify(g)
	longestPath(sg)
	t := feasibleTree(sg)
	s := &simplexState{g: sg, t: t}
	s.initLowLim()
	s.initCutValues()

	maxPivots := g.Config.MaxSimplexPivots
	if maxPivots <= 0 {
		n := sg.NodeCount()
		maxPivots = 4 * n * n
	}

	for i := 0; i < maxPivots; i++ {
		e, ok := s.leaveEdge()
		if !ok {
			break
		}
		f := s.enterEdge(e)
		s.exchange(e, f)
	}
}

// simplify collapses parallel edges into one edge per node pair, summing
// weights and keeping the largest minimum length. Node labels are shared
// with the input graph, so ranks written here are visible to the caller.
func simplify(g *layout.Graph) *layout.Graph {
	inner := graph.New[*layout.NodeLabel, *layout.EdgeLabel](graph.Options{Directed: true})
	inner.SetDefaultNodeLabel(func() *layout.NodeLabel { return layout.NewNodeLabel() })
	inner.SetDefaultEdgeLabel(func(graph.EdgeKey) *layout.EdgeLabel { return layout.NewEdgeLabel() })
	out := &layout.Graph{Graph: inner, Config: g.Config}
	for _, v := range g.Nodes() {
		out.SetNode(v, g.NodeLabelOf(v))
	}
	for _, e := range g.Edges() {
		label := g.EdgeLabelOf(e)
		merged := out.EdgeLabelOf(graph.EdgeKey{V: e.V, W: e.W})
		if merged == nil {
			merged = &layout.EdgeLabel{Weight: 0, MinLen: 1}
			out.SetEdge(e.V, e.W, merged)
		}
		merged.Weight += label.Weight
		merged.MinLen = max(merged.MinLen, label.MinLen)
	}
	return out
}

type simplexState struct {
	g *layout.Graph
	t *spanTree
}

func (s *simplexState) treeNodeOf(v string) *treeNode {
	n, _ := s.t.Node(v)
	return n
}

func (s *simplexState) treeEdgeOf(v, w string) *treeEdge {
	e, _ := s.t.Edge(graph.EdgeKey{V: v, W: w})
	return e
}

// initLowLim numbers the tree in postorder from a stable root (the first
// node). low..lim spans exactly the lim values of a node's subtree, so
// "u is inside v's subtree" is low(v) <= lim(u) <= lim(v).
func (s *simplexState) initLowLim() {
	nodes := s.t.Nodes()
	if len(nodes) == 0 {
		return
	}
	visited := make(map[string]bool, len(nodes))
	nextLim := 1
	for _, root := range nodes {
		if !visited[root] {
			nextLim = s.assignLowLim(visited, nextLim, root, "")
		}
	}
}

func (s *simplexState) assignLowLim(visited map[string]bool, nextLim int, v, parent string) int {
	low := nextLim
	visited[v] = true
	for _, w := range s.t.Neighbors(v) {
		if !visited[w] {
			nextLim = s.assignLowLim(visited, nextLim, w, v)
		}
	}
	label := s.treeNodeOf(v)
	label.low = low
	label.lim = nextLim
	label.parent = parent
	return nextLim + 1
}

// initCutValues assigns every tree edge its cut value bottom-up: each
// edge's value is derived from the edges of the child subtree already
// processed.
func (s *simplexState) initCutValues() {
	visited := make(map[string]bool)
	var dfs func(v string)
	dfs = func(v string) {
		visited[v] = true
		for _, w := range s.t.Neighbors(v) {
			if !visited[w] {
				dfs(w)
			}
		}
		if s.treeNodeOf(v).parent != "" {
			s.assignCutValue(v)
		}
	}
	for _, v := range s.t.Nodes() {
		if !visited[v] {
			dfs(v)
		}
	}
}

func (s *simplexState) assignCutValue(child string) {
	parent := s.treeNodeOf(child).parent
	if parent == "" {
		return
	}
	if e := s.treeEdgeOf(child, parent); e != nil {
		e.cutValue = s.calcCutValue(child)
	}
}

// calcCutValue computes the cut value of the tree edge between child and
// its parent from the child's incident graph edges and the cut values of
// its child tree edges.
func (s *simplexState) calcCutValue(child string) float64 {
	parent := s.treeNodeOf(child).parent

	// True when the tree edge points from child to parent in the graph.
	childIsTail := true
	if _, ok := s.g.Edge(graph.EdgeKey{V: child, W: parent}); !ok {
		childIsTail = false
	}

	var cutValue float64
	if label := s.g.EdgeLabelOf(graph.EdgeKey{V: child, W: parent}); label != nil {
		cutValue = label.Weight
	} else if label := s.g.EdgeLabelOf(graph.EdgeKey{V: parent, W: child}); label != nil {
		cutValue = label.Weight
	}

	for _, e := range s.g.NodeEdges(child) {
		isOutEdge := e.V == child
		other := e.W
		if !isOutEdge {
			other = e.V
		}
		if other == parent {
			continue
		}
		pointsToHead := isOutEdge == childIsTail
		weight := s.g.EdgeLabelOf(e).Weight
		if pointsToHead {
			cutValue += weight
		} else {
			cutValue -= weight
		}
		if te := s.treeEdgeOf(child, other); te != nil {
			if pointsToHead {
				cutValue -= te.cutValue
			} else {
				cutValue += te.cutValue
			}
		}
	}
	return cutValue
}

// leaveEdge picks the tree edge with negative cut value whose canonical
// endpoints sort lowest, so identical graphs always pivot identically.
func (s *simplexState) leaveEdge() (graph.EdgeKey, bool) {
	var best graph.EdgeKey
	found := false
	for _, e := range s.t.Edges() {
		label, _ := s.t.Edge(e)
		if label.cutValue >= 0 {
			continue
		}
		if !found || e.V < best.V || (e.V == best.V && e.W < best.W) {
			best = e
			found = true
		}
	}
	return best, found
}

// enterEdge finds the non-tree edge with minimum slack that reconnects the
// two components separated by removing the leave edge. Ties break toward
// the lowest (tail, head, name) triple.
func (s *simplexState) enterEdge(e graph.EdgeKey) graph.EdgeKey {
	v, w := e.V, e.W
	if _, ok := s.g.Edge(graph.EdgeKey{V: v, W: w}); !ok {
		v, w = w, v
	}

	vLabel := s.treeNodeOf(v)
	wLabel := s.treeNodeOf(w)
	tail := vLabel
	flip := false
	if vLabel.lim > wLabel.lim {
		tail = wLabel
		flip = true
	}

	inTail := func(u string) bool {
		label := s.treeNodeOf(u)
		return tail.low <= label.lim && label.lim <= tail.lim
	}

	var best graph.EdgeKey
	bestSlack := 0
	found := false
	for _, cand := range s.g.Edges() {
		if flip != inTail(cand.V) || flip == inTail(cand.W) {
			continue
		}
		cs := slack(s.g, cand)
		if !found || cs < bestSlack || (cs == bestSlack && lessEdge(cand, best)) {
			best = cand
			bestSlack = cs
			found = true
		}
	}
	if !found {
		return e
	}
	return best
}

func lessEdge(a, b graph.EdgeKey) bool {
	if a.V != b.V {
		return a.V < b.V
	}
	if a.W != b.W {
		return a.W < b.W
	}
	return a.Name < b.Name
}

// exchange swaps the leave edge out of the tree for the enter edge, then
// rebuilds the invariants from scratch: low/lim is renumbered from the
// stable root and every tree edge gets a fresh cut value. The swap changes
// the cut of every edge on the old fundamental cycle, not just the edges
// near the enter edge, so a full recompute is required for leaveEdge to
// see correct values on the next pivot.
func (s *simplexState) exchange(e, f graph.EdgeKey) {
	s.t.RemoveEdge(graph.EdgeKey{V: e.V, W: e.W})
	s.t.EnsureEdge(f.V, f.W, "")
	s.initLowLim()
	s.initCutValues()
	s.updateRanks()
}

// updateRanks walks the tree from the root, spacing each node exactly
// minlen from its parent in the direction of the connecting graph edge.
func (s *simplexState) updateRanks() {
	visited := make(map[string]bool)
	var dfs func(v string)
	dfs = func(v string) {
		visited[v] = true
		for _, w := range s.t.Neighbors(v) {
			if visited[w] {
				continue
			}
			if label := s.g.EdgeLabelOf(graph.EdgeKey{V: w, W: v}); label != nil {
				s.g.NodeLabelOf(w).Rank = s.g.NodeLabelOf(v).Rank - label.MinLen
			} else if label := s.g.EdgeLabelOf(graph.EdgeKey{V: v, W: w}); label != nil {
				s.g.NodeLabelOf(w).Rank = s.g.NodeLabelOf(v).Rank + label.MinLen
			}
			dfs(w)
		}
	}
	for _, v := range s.t.Nodes() {
		if s.treeNodeOf(v).parent == "" && !visited[v] {
			dfs(v)
		}
	}
}
