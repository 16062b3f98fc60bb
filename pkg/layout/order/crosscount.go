package order

import (
	"slices"

	"github.com/strataviz/strata/pkg/layout"
)

// CrossCount returns the weighted number of edge crossings for the given
// layering. It sums the crossings between each pair of consecutive layers.
func CrossCount(g *layout.Graph, layering [][]string) float64 {
	cc := 0.0
	for i := 1; i < len(layering); i++ {
		cc += twoLayerCrossCount(g, layering[i-1], layering[i])
	}
	return cc
}

// twoLayerCrossCount counts weighted crossings between two adjacent layers
// using a Fenwick tree for O(E log V) inversion counting. Two edges (u1,v1)
// and (u2,v2) cross iff pos(u1) < pos(u2) and pos(v1) > pos(v2), so sorting
// edges by source position reduces the problem to counting inversions in
// the sequence of target positions.
func twoLayerCrossCount(g *layout.Graph, north, south []string) float64 {
	if len(north) == 0 || len(south) == 0 {
		return 0
	}

	southPos := make(map[string]int, len(south))
	for i, v := range south {
		southPos[v] = i
	}

	type crossEdge struct {
		north  int
		south  int
		weight float64
	}
	var edges []crossEdge
	for i, v := range north {
		for _, e := range g.OutEdges(v) {
			pos, ok := southPos[e.W]
			if !ok {
				continue
			}
			edges = append(edges, crossEdge{north: i, south: pos, weight: g.EdgeLabelOf(e).Weight})
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b crossEdge) int {
		if a.north != b.north {
			return a.north - b.north
		}
		return a.south - b.south
	})

	fenwick := make([]float64, len(south)+1)
	crossings, total := 0.0, 0.0
	for _, e := range edges {
		// Accumulated weight of edges seen so far with target <= e.south.
		lessOrEqual := 0.0
		for q := e.south + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += e.weight * (total - lessOrEqual)

		total += e.weight
		for q := e.south + 1; q <= len(south); q += q & (-q) {
			fenwick[q] += e.weight
		}
	}
	return crossings
}
