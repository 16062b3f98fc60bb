package layout

// MakeSpaceForEdgeLabels halves the rank separation and doubles every edge
// minimum length, opening an empty rank in the middle of each edge where a
// label dummy can sit. Labels positioned to one side additionally widen the
// edge so neighbors stay clear of the offset label.
func MakeSpaceForEdgeLabels(g *Graph) {
	g.Config.RankSep /= 2
	for _, e := range g.Edges() {
		edge := g.EdgeLabelOf(e)
		edge.MinLen *= 2
		if edge.LabelPos != "c" {
			if g.Config.RankDir == RankDirTB || g.Config.RankDir == RankDirBT {
				edge.Width += edge.LabelOffset
			} else {
				edge.Height += edge.LabelOffset
			}
		}
	}
}

// InjectEdgeLabelProxies adds a placeholder on the middle rank of every
// labeled edge. The proxies keep rank normalization from collapsing the
// rank the label will occupy.
func InjectEdgeLabelProxies(g *Graph, ids *IDGen) {
	for _, e := range g.Edges() {
		edge := g.EdgeLabelOf(e)
		if edge.Width == 0 || edge.Height == 0 {
			continue
		}
		v := g.NodeLabelOf(e.V)
		w := g.NodeLabelOf(e.W)
		label := NewNodeLabel()
		label.Rank = (w.Rank-v.Rank)/2 + v.Rank
		key := e
		label.EdgeObj = &key
		AddDummyNode(g, ids, DummyEdgeProxy, label, "ep")
	}
}

// RemoveEdgeLabelProxies records each proxy's final rank as the edge's
// label rank and deletes the proxy.
func RemoveEdgeLabelProxies(g *Graph) {
	for _, v := range g.Nodes() {
		node := g.NodeLabelOf(v)
		if node.Dummy != DummyEdgeProxy {
			continue
		}
		g.EdgeLabelOf(*node.EdgeObj).LabelRank = node.Rank
		g.RemoveNode(v)
	}
}
