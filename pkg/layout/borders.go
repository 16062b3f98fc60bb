package layout

import "math"

// AddBorderSegments inserts left and right border nodes for every cluster
// on each rank the cluster spans. The segments on a side are chained with
// weight-1 edges so ordering keeps them aligned, which in turn keeps the
// cluster's children between them.
func AddBorderSegments(g *Graph, ids *IDGen) {
	var dfs func(v string)
	dfs = func(v string) {
		for _, child := range g.Children(v) {
			dfs(child)
		}
		node := g.NodeLabelOf(v)
		if node.MinRank == NoRank {
			return
		}
		node.BorderLeft = make(map[int]string)
		node.BorderRight = make(map[int]string)
		for rank := node.MinRank; rank <= node.MaxRank; rank++ {
			addBorderSegment(g, ids, BorderLeft, "bl", v, node, rank)
			addBorderSegment(g, ids, BorderRight, "br", v, node, rank)
		}
	}
	for _, v := range g.Children("") {
		dfs(v)
	}
}

func addBorderSegment(g *Graph, ids *IDGen, side BorderType, prefix, cluster string, clusterLabel *NodeLabel, rank int) {
	label := NewNodeLabel()
	label.Rank = rank
	label.BorderType = side
	var segments map[int]string
	if side == BorderLeft {
		segments = clusterLabel.BorderLeft
	} else {
		segments = clusterLabel.BorderRight
	}
	prev := segments[rank-1]
	curr := AddDummyNode(g, ids, DummyBorder, label, prefix)
	segments[rank] = curr
	g.SetParent(curr, cluster)
	if prev != "" {
		g.SetEdge(prev, curr, &EdgeLabel{Weight: 1, MinLen: 1})
	}
}

// RemoveBorderNodes sizes every cluster from its border nodes' final
// positions, then deletes the border nodes.
func RemoveBorderNodes(g *Graph) {
	for _, v := range g.Nodes() {
		if len(g.Children(v)) == 0 {
			continue
		}
		node := g.NodeLabelOf(v)
		top := g.NodeLabelOf(node.BorderTop)
		bottom := g.NodeLabelOf(node.BorderBottom)
		left := g.NodeLabelOf(node.BorderLeft[node.MaxRank])
		right := g.NodeLabelOf(node.BorderRight[node.MaxRank])

		node.Width = math.Abs(right.X - left.X)
		node.Height = math.Abs(bottom.Y - top.Y)
		node.X = left.X + node.Width/2
		node.Y = top.Y + node.Height/2
	}
	for _, v := range g.Nodes() {
		if g.NodeLabelOf(v).Dummy == DummyBorder {
			g.RemoveNode(v)
		}
	}
}
