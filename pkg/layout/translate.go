package layout

import "math"

// Translate shifts the drawing so the top-left extreme sits at the
// configured margin and records the total size on the graph. Extremes are
// taken over node boxes and positioned edge labels; interior edge points do
// not contribute, matching the reference renderer.
func Translate(g *Graph) {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)

	extend := func(x, y, w, h float64) {
		minX = math.Min(minX, x-w/2)
		maxX = math.Max(maxX, x+w/2)
		minY = math.Min(minY, y-h/2)
		maxY = math.Max(maxY, y+h/2)
	}

	for _, v := range g.Nodes() {
		n := g.NodeLabelOf(v)
		extend(n.X, n.Y, n.Width, n.Height)
	}
	for _, e := range g.Edges() {
		l := g.EdgeLabelOf(e)
		if l.HasXY {
			extend(l.X, l.Y, l.Width, l.Height)
		}
	}

	if math.IsInf(minX, 1) || math.IsInf(minY, 1) {
		return
	}

	minX -= g.Config.MarginX
	minY -= g.Config.MarginY

	for _, v := range g.Nodes() {
		n := g.NodeLabelOf(v)
		n.X -= minX
		n.Y -= minY
	}
	for _, e := range g.Edges() {
		l := g.EdgeLabelOf(e)
		for i := range l.Points {
			l.Points[i].X -= minX
			l.Points[i].Y -= minY
		}
		if l.HasXY {
			l.X -= minX
			l.Y -= minY
		}
	}

	g.Width = maxX - minX + g.Config.MarginX
	g.Height = maxY - minY + g.Config.MarginY
}

// FixupEdgeLabelCoords shifts side-positioned labels off the edge line by
// the label offset. Only labels that already have a position are touched.
func FixupEdgeLabelCoords(g *Graph) {
	for _, e := range g.Edges() {
		l := g.EdgeLabelOf(e)
		if !l.HasXY {
			continue
		}
		if l.LabelPos == "l" || l.LabelPos == "r" {
			l.Width -= l.LabelOffset
		}
		switch l.LabelPos {
		case "l":
			l.X -= l.Width/2 + l.LabelOffset
		case "r":
			l.X += l.Width/2 + l.LabelOffset
		}
	}
}

// AssignNodeIntersects clips every edge to its endpoint boxes. Edges that
// routed through no dummies get a midpoint so downstream spline renderers
// always have an interior control point. Labels still without a position
// are centered on that interior midpoint, offset by the label position.
func AssignNodeIntersects(g *Graph) {
	for _, e := range g.Edges() {
		nodeV := g.NodeLabelOf(e.V)
		nodeW := g.NodeLabelOf(e.W)
		l := g.EdgeLabelOf(e)

		interior := l.Points
		if len(interior) == 0 {
			interior = []Point{{X: (nodeV.X + nodeW.X) / 2, Y: (nodeV.Y + nodeW.Y) / 2}}
		}
		first := interior[0]
		last := interior[len(interior)-1]

		points := make([]Point, 0, len(interior)+2)
		points = append(points, IntersectRect(nodeV, first))
		points = append(points, interior...)
		points = append(points, IntersectRect(nodeW, last))
		l.Points = points

		if (l.Width > 0 || l.Height > 0) && !l.HasXY {
			mid := l.Points[len(l.Points)/2]
			x := mid.X
			switch l.LabelPos {
			case "l":
				x -= l.LabelOffset + l.Width/2
			case "r":
				x += l.LabelOffset + l.Width/2
			}
			l.X = x
			l.Y = mid.Y
			l.HasXY = true
		}
	}
}
