package layout

// The ordering and positioning stages always work top-to-bottom. For the
// other rank directions the graph's dimensions are swapped before those
// stages and the resulting coordinates are reflected afterwards.

// AdjustCoordinateSystem prepares the graph for a top-to-bottom run.
func AdjustCoordinateSystem(g *Graph) {
	dir := g.Config.RankDir
	if dir == RankDirLR || dir == RankDirRL {
		swapWidthHeight(g)
	}
}

// UndoCoordinateSystem maps top-to-bottom coordinates back into the
// configured rank direction.
func UndoCoordinateSystem(g *Graph) {
	dir := g.Config.RankDir
	if dir == RankDirBT || dir == RankDirRL {
		reverseY(g)
	}
	if dir == RankDirLR || dir == RankDirRL {
		swapXY(g)
		swapWidthHeight(g)
	}
}

func swapWidthHeight(g *Graph) {
	for _, v := range g.Nodes() {
		n := g.NodeLabelOf(v)
		n.Width, n.Height = n.Height, n.Width
		// Stashed self loops are off the graph here but their labels still
		// size the placeholder nodes inserted after this swap.
		for _, se := range n.SelfEdges {
			se.Label.Width, se.Label.Height = se.Label.Height, se.Label.Width
		}
	}
	for _, e := range g.Edges() {
		l := g.EdgeLabelOf(e)
		l.Width, l.Height = l.Height, l.Width
	}
}

func reverseY(g *Graph) {
	for _, v := range g.Nodes() {
		n := g.NodeLabelOf(v)
		n.Y = -n.Y
	}
	for _, e := range g.Edges() {
		l := g.EdgeLabelOf(e)
		for i := range l.Points {
			l.Points[i].Y = -l.Points[i].Y
		}
		if l.HasXY {
			l.Y = -l.Y
		}
	}
}

func swapXY(g *Graph) {
	for _, v := range g.Nodes() {
		n := g.NodeLabelOf(v)
		n.X, n.Y = n.Y, n.X
	}
	for _, e := range g.Edges() {
		l := g.EdgeLabelOf(e)
		for i := range l.Points {
			l.Points[i].X, l.Points[i].Y = l.Points[i].Y, l.Points[i].X
		}
		if l.HasXY {
			l.X, l.Y = l.Y, l.X
		}
	}
}
