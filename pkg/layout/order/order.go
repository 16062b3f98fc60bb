// Package order assigns a left-to-right order to the nodes of every rank,
// minimizing weighted edge crossings between adjacent ranks.
//
// The heuristic starts from a depth-first initial order, then alternates
// downward and upward median sweeps. Each sweep re-sorts one rank at a time
// by the median position of its neighbors in the previously sorted rank,
// keeping cluster subtrees contiguous, then refines the result with local
// transpositions. The best ordering seen is kept, so the result is never
// worse than the initial one.
package order

import (
	"slices"

	"github.com/strataviz/strata/pkg/layout"
)

// Sweeps without improvement tolerated before giving up.
const maxStaleSweeps = 4

// Run computes and assigns the Order field of every ranked node.
func Run(g *layout.Graph) {
	layering := initOrder(g)
	if len(layering) == 0 {
		return
	}

	// Regularize the DFS order so every cluster's nodes are adjacent and
	// its border segments sit at the cluster's extremes.
	for r := range layering {
		layering[r] = orderLayer(g, layering[r], nil, r, false)
	}
	assignOrder(g, layering)

	best := copyLayering(layering)
	bestCC := CrossCount(g, layering)

	for i, stale := 0, 0; stale < maxStaleSweeps; i, stale = i+1, stale+1 {
		sweep(g, layering, i%2 == 0, i%4 >= 2)
		if !g.Config.DisableOptimalOrderHeuristic {
			transpose(g, layering)
		}
		cc := CrossCount(g, layering)
		if cc < bestCC {
			bestCC = cc
			best = copyLayering(layering)
			stale = 0
		}
		if bestCC == 0 {
			break
		}
	}

	assignOrder(g, best)
}

// sweep re-sorts every layer against its already-sorted neighbor, walking
// down through the ranks or up, depending on direction.
func sweep(g *layout.Graph, layering [][]string, down, biasRight bool) {
	if down {
		for r := 1; r < len(layering); r++ {
			layering[r] = orderLayer(g, layering[r], positionsOf(layering[r-1]), r, biasRight)
		}
	} else {
		for r := len(layering) - 2; r >= 0; r-- {
			layering[r] = orderLayer(g, layering[r], positionsOf(layering[r+1]), r, biasRight)
		}
	}
}

func positionsOf(layer []string) map[string]int {
	pos := make(map[string]int, len(layer))
	for i, v := range layer {
		pos[v] = i
	}
	return pos
}

func assignOrder(g *layout.Graph, layering [][]string) {
	for _, layer := range layering {
		for i, v := range layer {
			g.NodeLabelOf(v).Order = i
		}
	}
}

func copyLayering(layering [][]string) [][]string {
	out := make([][]string, len(layering))
	for i, layer := range layering {
		out[i] = slices.Clone(layer)
	}
	return out
}
