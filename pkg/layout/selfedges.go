package layout

// Self loops cannot participate in ranking or ordering, so they are pulled
// off the graph up front, re-inserted as sized placeholders once orders are
// known, and finally routed beside their node.

// RemoveSelfEdges strips every self loop and stashes it on the node label.
func RemoveSelfEdges(g *Graph) {
	for _, e := range g.Edges() {
		if e.V != e.W {
			continue
		}
		node := g.NodeLabelOf(e.V)
		node.SelfEdges = append(node.SelfEdges, SelfEdge{Key: e, Label: g.EdgeLabelOf(e)})
		g.RemoveEdge(e)
	}
}

// InsertSelfEdges materializes stashed loops as placeholder nodes ordered
// directly after their node on the same rank, so x-positioning reserves
// horizontal space for the loop.
func InsertSelfEdges(g *Graph, ids *IDGen) {
	layers := BuildLayerMatrix(g)
	for _, layer := range layers {
		orderShift := 0
		for i, v := range layer {
			node := g.NodeLabelOf(v)
			node.Order = i + orderShift
			for _, se := range node.SelfEdges {
				label := NewNodeLabel()
				label.Width = se.Label.Width
				label.Height = se.Label.Height
				label.Rank = node.Rank
				orderShift++
				label.Order = i + orderShift
				label.Edge = se.Label
				key := se.Key
				label.EdgeObj = &key
				AddDummyNode(g, ids, DummySelfEdge, label, "se")
			}
			node.SelfEdges = nil
		}
	}
}

// PositionSelfEdges routes each loop as a small lobe to the right of its
// node and removes the placeholder.
func PositionSelfEdges(g *Graph) {
	for _, v := range g.Nodes() {
		node := g.NodeLabelOf(v)
		if node.Dummy != DummySelfEdge {
			continue
		}
		selfNode := g.NodeLabelOf(node.EdgeObj.V)
		x := selfNode.X + selfNode.Width/2
		y := selfNode.Y
		dx := node.X - x
		dy := selfNode.Height / 2

		g.SetNamedEdge(node.EdgeObj.V, node.EdgeObj.W, node.EdgeObj.Name, node.Edge)
		g.RemoveNode(v)

		node.Edge.Points = []Point{
			{X: x + 2*dx/3, Y: y - dy},
			{X: x + 5*dx/6, Y: y - dy},
			{X: x + dx, Y: y},
			{X: x + 5*dx/6, Y: y + dy},
			{X: x + 2*dx/3, Y: y + dy},
		}
		node.Edge.X = node.X
		node.Edge.Y = node.Y
		node.Edge.HasXY = true
	}
}
