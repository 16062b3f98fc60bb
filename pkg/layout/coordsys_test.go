package layout

import "testing"

func coordsysGraph(rankdir string) *Graph {
	cfg := DefaultConfig()
	cfg.RankDir = rankdir
	g := NewGraph(cfg)
	n := NewNodeLabel()
	n.X, n.Y = 10, 20
	n.Width, n.Height = 30, 40
	g.SetNode("a", n)
	g.SetNode("b", NewNodeLabel())
	e := NewEdgeLabel()
	e.Points = []Point{{X: 1, Y: 2}}
	e.X, e.Y = 5, 6
	e.HasXY = true
	g.SetEdge("a", "b", e)
	return g
}

func TestAdjustCoordinateSystemSwapsDimensionsForHorizontal(t *testing.T) {
	g := coordsysGraph(RankDirLR)
	AdjustCoordinateSystem(g)
	n := g.NodeLabelOf("a")
	if n.Width != 40 || n.Height != 30 {
		t.Errorf("size = %vx%v, want 40x30", n.Width, n.Height)
	}

	g = coordsysGraph(RankDirTB)
	AdjustCoordinateSystem(g)
	n = g.NodeLabelOf("a")
	if n.Width != 30 || n.Height != 40 {
		t.Errorf("tb size = %vx%v, want unchanged 30x40", n.Width, n.Height)
	}
}

func TestAdjustCoordinateSystemSwapsStashedSelfLoops(t *testing.T) {
	g := coordsysGraph(RankDirLR)
	loop := NewEdgeLabel()
	loop.Width, loop.Height = 12, 8
	g.SetEdge("a", "a", loop)
	RemoveSelfEdges(g)

	AdjustCoordinateSystem(g)

	stashed := g.NodeLabelOf("a").SelfEdges
	if len(stashed) != 1 {
		t.Fatalf("stashed %d self loops, want 1", len(stashed))
	}
	if l := stashed[0].Label; l.Width != 8 || l.Height != 12 {
		t.Errorf("stashed label = %vx%v, want swapped 8x12", l.Width, l.Height)
	}
}

func TestUndoCoordinateSystemBT(t *testing.T) {
	g := coordsysGraph(RankDirBT)
	UndoCoordinateSystem(g)
	n := g.NodeLabelOf("a")
	if n.X != 10 || n.Y != -20 {
		t.Errorf("node at (%v,%v), want (10,-20)", n.X, n.Y)
	}
	e := g.EdgeLabelOf(g.Edges()[0])
	if e.Points[0].Y != -2 || e.Y != -6 {
		t.Errorf("edge ys = %v/%v, want -2/-6", e.Points[0].Y, e.Y)
	}
}

func TestUndoCoordinateSystemLR(t *testing.T) {
	g := coordsysGraph(RankDirLR)
	AdjustCoordinateSystem(g)
	UndoCoordinateSystem(g)
	n := g.NodeLabelOf("a")
	if n.X != 20 || n.Y != 10 {
		t.Errorf("node at (%v,%v), want (20,10)", n.X, n.Y)
	}
	if n.Width != 30 || n.Height != 40 {
		t.Errorf("size = %vx%v, want restored 30x40", n.Width, n.Height)
	}
	e := g.EdgeLabelOf(g.Edges()[0])
	if e.Points[0].X != 2 || e.Points[0].Y != 1 {
		t.Errorf("point = %v, want (2,1)", e.Points[0])
	}
}
