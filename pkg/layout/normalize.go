package layout

import (
	"github.com/strataviz/strata/pkg/graph"
)

// NormalizeEdges replaces every edge spanning more than one rank with a
// chain of unit-length edges through synthetic nodes. If the edge reserved
// a label rank, the chain node on that rank carries the label's dimensions
// so ordering and positioning leave room for it.
//
// DenormalizeEdges reverses the transform, collecting the chain positions
// into the edge's point list.
func NormalizeEdges(g *Graph, ids *IDGen) {
	g.DummyChains = nil
	for _, e := range g.Edges() {
		normalizeEdge(g, ids, e)
	}
}

func normalizeEdge(g *Graph, ids *IDGen, e graph.EdgeKey) {
	v := e.V
	vRank := g.NodeLabelOf(v).Rank
	w := e.W
	wRank := g.NodeLabelOf(w).Rank
	edgeLabel := g.EdgeLabelOf(e)

	if wRank == vRank+1 {
		return
	}

	g.RemoveEdge(e)
	edgeLabel.Points = nil
	edgeObj := e

	for i, rank := 0, vRank+1; rank < wRank; i, rank = i+1, rank+1 {
		attrs := NewNodeLabel()
		attrs.Rank = rank
		attrs.Edge = edgeLabel
		attrs.EdgeObj = &edgeObj
		kind := DummyEdge
		if rank == edgeLabel.LabelRank {
			attrs.Width = edgeLabel.Width
			attrs.Height = edgeLabel.Height
			attrs.LabelPos = edgeLabel.LabelPos
			kind = DummyEdgeLabel
		}
		dummy := AddDummyNode(g, ids, kind, attrs, "d")
		g.SetNamedEdge(v, dummy, e.Name, &EdgeLabel{Weight: edgeLabel.Weight, MinLen: 1})
		if i == 0 {
			g.DummyChains = append(g.DummyChains, dummy)
		}
		v = dummy
	}

	g.SetNamedEdge(v, w, e.Name, &EdgeLabel{Weight: edgeLabel.Weight, MinLen: 1})
}

// DenormalizeEdges restores the original multi-rank edges. Each chain node
// contributes its position as an interior edge point; the edge-label node
// additionally pins the label position and size.
func DenormalizeEdges(g *Graph) {
	for _, first := range g.DummyChains {
		node := g.NodeLabelOf(first)
		origLabel := node.Edge
		e := *node.EdgeObj
		g.SetNamedEdge(e.V, e.W, e.Name, origLabel)

		v := first
		for node.Dummy != DummyNone {
			w := g.Successors(v)[0]
			g.RemoveNode(v)
			origLabel.Points = append(origLabel.Points, Point{X: node.X, Y: node.Y})
			if node.Dummy == DummyEdgeLabel {
				origLabel.X = node.X
				origLabel.Y = node.Y
				origLabel.Width = node.Width
				origLabel.Height = node.Height
				origLabel.HasXY = true
			}
			v = w
			node = g.NodeLabelOf(v)
		}
	}
	g.DummyChains = nil
}
