// Package position assigns final coordinates to ranked, ordered nodes.
// Ranks become horizontal bands separated by the configured rank
// separation; within the cross axis the Brandes-Köpf heuristic aligns
// nodes into vertical blocks and balances four direction-biased
// alignments into the final x coordinate.
package position

import (
	"github.com/strataviz/strata/pkg/layout"
)

// Run assigns X and Y to every leaf node. Cluster nodes are sized later
// from their border nodes.
func Run(g *layout.Graph) {
	flat := layout.AsNonCompoundGraph(g)
	positionY(flat)
	for v, x := range positionX(flat) {
		flat.NodeLabelOf(v).X = x
	}
}

func positionY(g *layout.Graph) {
	layering := layout.BuildLayerMatrix(g)
	rankSep := g.Config.RankSep
	prevY := 0.0
	for _, layer := range layering {
		maxHeight := 0.0
		for _, v := range layer {
			if h := g.NodeLabelOf(v).Height; h > maxHeight {
				maxHeight = h
			}
		}
		for _, v := range layer {
			g.NodeLabelOf(v).Y = prevY + maxHeight/2
		}
		prevY += maxHeight + rankSep
	}
}
