package layout

// RunNesting prepares a compound graph for ranking. A synthetic root is
// connected to every leaf, each cluster gets top and bottom border nodes,
// and edge minimum lengths are scaled so that border ranks interleave with
// node ranks. The added structure forces every node of a cluster to be
// ranked strictly between the cluster's borders.
//
// CleanupNesting removes the root and the structural edges once ranking is
// done.
func RunNesting(g *Graph, ids *IDGen) {
	root := AddDummyNode(g, ids, DummyRoot, NewNodeLabel(), "root")
	depths := treeDepths(g)
	height := 0
	for _, d := range depths {
		if d-1 > height {
			height = d - 1
		}
	}
	nodeSep := 2*height + 1

	g.NestingRoot = root

	// Multiply minlen by nodeSep to align nodes on non-border ranks.
	for _, e := range g.Edges() {
		g.EdgeLabelOf(e).MinLen *= nodeSep
	}

	weight := sumWeights(g) + 1
	for _, child := range g.Children("") {
		nestingDFS(g, ids, root, nodeSep, weight, height, depths, child)
	}

	// Border ranks are interleaved with node ranks; remember the factor so
	// empty-rank removal keeps them.
	g.Config.NodeRankFactor = nodeSep
}

func nestingDFS(g *Graph, ids *IDGen, root string, nodeSep int, weight float64, height int, depths map[string]int, v string) {
	children := g.Children(v)
	if len(children) == 0 {
		if v != root {
			g.SetEdge(root, v, &EdgeLabel{Weight: 0, MinLen: nodeSep})
		}
		return
	}

	top := addBorderNode(g, ids, "bt")
	bottom := addBorderNode(g, ids, "bb")
	label := g.NodeLabelOf(v)
	g.SetParent(top, v)
	label.BorderTop = top
	g.SetParent(bottom, v)
	label.BorderBottom = bottom

	for _, child := range children {
		nestingDFS(g, ids, root, nodeSep, weight, height, depths, child)

		childNode := g.NodeLabelOf(child)
		childTop, childBottom := child, child
		childWeight := 2 * weight
		if childNode.BorderTop != "" {
			childTop = childNode.BorderTop
			childBottom = childNode.BorderBottom
			childWeight = weight
		}
		minlen := 1
		if childTop == childBottom {
			minlen = height - depths[v] + 1
		}
		g.SetEdge(top, childTop, &EdgeLabel{Weight: childWeight, MinLen: minlen, NestingEdge: true})
		g.SetEdge(childBottom, bottom, &EdgeLabel{Weight: childWeight, MinLen: minlen, NestingEdge: true})
	}

	if g.Parent(v) == "" {
		g.SetEdge(root, top, &EdgeLabel{Weight: 0, MinLen: height + depths[v]})
	}
}

// treeDepths maps every node to its nesting depth, counting from 1 at the
// root level.
func treeDepths(g *Graph) map[string]int {
	depths := make(map[string]int)
	var dfs func(v string, depth int)
	dfs = func(v string, depth int) {
		for _, child := range g.Children(v) {
			dfs(child, depth+1)
		}
		depths[v] = depth
	}
	for _, v := range g.Children("") {
		dfs(v, 1)
	}
	return depths
}

func sumWeights(g *Graph) float64 {
	var total float64
	for _, e := range g.Edges() {
		total += g.EdgeLabelOf(e).Weight
	}
	return total
}

func addBorderNode(g *Graph, ids *IDGen, prefix string) string {
	return AddDummyNode(g, ids, DummyBorder, NewNodeLabel(), prefix)
}

// CleanupNesting removes the nesting root and every structural edge the
// nesting transform added.
func CleanupNesting(g *Graph) {
	if g.NestingRoot != "" {
		g.RemoveNode(g.NestingRoot)
		g.NestingRoot = ""
	}
	for _, e := range g.Edges() {
		if g.EdgeLabelOf(e).NestingEdge {
			g.RemoveEdge(e)
		}
	}
}

// AssignRankMinMax copies the border ranks of each cluster onto the
// cluster label so later stages know which ranks it spans.
func AssignRankMinMax(g *Graph) {
	for _, v := range g.Nodes() {
		node := g.NodeLabelOf(v)
		if node.BorderTop == "" {
			continue
		}
		node.MinRank = g.NodeLabelOf(node.BorderTop).Rank
		node.MaxRank = g.NodeLabelOf(node.BorderBottom).Rank
	}
}
