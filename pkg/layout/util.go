package layout

import (
	"math"
	"slices"

	"github.com/strataviz/strata/pkg/graph"
)

// MaxRank returns the highest rank assigned to any node, or NoRank for a
// graph with no ranked nodes.
func MaxRank(g *Graph) int {
	max := NoRank
	for _, v := range g.Nodes() {
		if r := g.NodeLabelOf(v).Rank; r != NoRank && r > max {
			max = r
		}
	}
	return max
}

// BuildLayerMatrix groups nodes by rank and sorts each layer by order.
// Unranked nodes are skipped. The result has MaxRank+1 layers, some
// possibly empty.
func BuildLayerMatrix(g *Graph) [][]string {
	max := MaxRank(g)
	if max == NoRank {
		return nil
	}
	layers := make([][]string, max+1)
	for _, v := range g.Nodes() {
		label := g.NodeLabelOf(v)
		if label.Rank == NoRank {
			continue
		}
		layers[label.Rank] = append(layers[label.Rank], v)
	}
	for _, layer := range layers {
		slices.SortStableFunc(layer, func(a, b string) int {
			return g.NodeLabelOf(a).Order - g.NodeLabelOf(b).Order
		})
	}
	return layers
}

// NormalizeRanks shifts all ranks so the smallest becomes zero.
func NormalizeRanks(g *Graph) {
	min := math.MaxInt
	for _, v := range g.Nodes() {
		if r := g.NodeLabelOf(v).Rank; r != NoRank && r < min {
			min = r
		}
	}
	if min == math.MaxInt {
		return
	}
	for _, v := range g.Nodes() {
		if label := g.NodeLabelOf(v); label.Rank != NoRank {
			label.Rank -= min
		}
	}
}

// RemoveEmptyRanks compacts rank indices by deleting empty ranks. Ranks at
// multiples of Config.NodeRankFactor are preserved even when empty, which
// keeps room for the border ranks the nesting transform reserved.
func RemoveEmptyRanks(g *Graph) {
	offset := math.MaxInt
	for _, v := range g.Nodes() {
		if r := g.NodeLabelOf(v).Rank; r != NoRank && r < offset {
			offset = r
		}
	}
	if offset == math.MaxInt {
		return
	}

	layers := make(map[int][]string)
	max := 0
	for _, v := range g.Nodes() {
		label := g.NodeLabelOf(v)
		if label.Rank == NoRank {
			continue
		}
		i := label.Rank - offset
		layers[i] = append(layers[i], v)
		if i > max {
			max = i
		}
	}

	factor := g.Config.NodeRankFactor
	delta := 0
	for i := 0; i <= max; i++ {
		vs, ok := layers[i]
		if !ok && i%factor != 0 {
			delta--
			continue
		}
		if delta != 0 {
			for _, v := range vs {
				g.NodeLabelOf(v).Rank += delta
			}
		}
	}
}

// AsNonCompoundGraph projects the graph onto its leaf nodes. Cluster nodes
// are dropped; every edge survives. Labels are shared by pointer, so rank
// assignments made through the projection are visible in the original.
func AsNonCompoundGraph(g *Graph) *Graph {
	inner := graph.New[*NodeLabel, *EdgeLabel](graph.Options{
		Directed:   true,
		Multigraph: true,
	})
	inner.SetDefaultNodeLabel(func() *NodeLabel { return NewNodeLabel() })
	inner.SetDefaultEdgeLabel(func(graph.EdgeKey) *EdgeLabel { return NewEdgeLabel() })
	out := &Graph{Graph: inner, Config: g.Config}
	for _, v := range g.Nodes() {
		if len(g.Graph.Children(v)) == 0 {
			out.SetNode(v, g.NodeLabelOf(v))
		}
	}
	for _, e := range g.Edges() {
		out.SetNamedEdge(e.V, e.W, e.Name, g.EdgeLabelOf(e))
	}
	return out
}

// IntersectRect returns the point where a line from the center of the node
// box toward the given point crosses the box boundary. If the point lies on
// the center, the center itself is returned.
func IntersectRect(rect *NodeLabel, point Point) Point {
	x, y := rect.X, rect.Y
	dx := point.X - x
	dy := point.Y - y
	w := rect.Width / 2
	h := rect.Height / 2
	if dx == 0 && dy == 0 {
		return Point{X: x, Y: y}
	}

	var sx, sy float64
	if math.Abs(dy)*w > math.Abs(dx)*h {
		// Intersection is on the top or bottom edge.
		if dy < 0 {
			h = -h
		}
		sx = h * dx / dy
		sy = h
	} else {
		if dx < 0 {
			w = -w
		}
		sx = w
		sy = w * dy / dx
	}
	return Point{X: x + sx, Y: y + sy}
}
