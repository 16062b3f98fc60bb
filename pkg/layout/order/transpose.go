package order

import (
	"github.com/strataviz/strata/pkg/layout"
)

// transpose repeatedly swaps adjacent node pairs within a layer whenever
// the swap strictly reduces the weighted crossing count against the
// neighboring layers. Only pairs sharing a parent are considered, and
// border segments never move, so cluster contiguity is preserved. The pass
// runs until no improving swap remains.
func transpose(g *layout.Graph, layering [][]string) {
	improved := true
	for improved {
		improved = false
		for r := range layering {
			layer := layering[r]
			for i := 0; i+1 < len(layer); i++ {
				v, w := layer[i], layer[i+1]
				if g.Parent(v) != g.Parent(w) {
					continue
				}
				if g.NodeLabelOf(v).BorderType != layout.BorderNone ||
					g.NodeLabelOf(w).BorderType != layout.BorderNone {
					continue
				}
				before := adjacentCrossings(g, layering, r)
				layer[i], layer[i+1] = w, v
				after := adjacentCrossings(g, layering, r)
				if after < before {
					improved = true
				} else {
					layer[i], layer[i+1] = v, w
				}
			}
		}
	}
}

// adjacentCrossings counts weighted crossings between layer r and both of
// its neighboring layers.
func adjacentCrossings(g *layout.Graph, layering [][]string, r int) float64 {
	cc := 0.0
	if r > 0 {
		cc += twoLayerCrossCount(g, layering[r-1], layering[r])
	}
	if r+1 < len(layering) {
		cc += twoLayerCrossCount(g, layering[r], layering[r+1])
	}
	return cc
}
