package order

import (
	"slices"

	"github.com/strataviz/strata/pkg/layout"
)

// initOrder builds an initial layering by depth-first traversal of the
// ranked graph. Roots are visited rank first, then insertion order, which
// keeps the result deterministic. Cluster contiguity is restored afterwards
// by a grouping pass over each layer.
func initOrder(g *layout.Graph) [][]string {
	var leaves []string
	maxRank := -1
	for _, v := range g.Nodes() {
		if len(g.Children(v)) > 0 {
			continue
		}
		leaves = append(leaves, v)
		if r := g.NodeLabelOf(v).Rank; r > maxRank {
			maxRank = r
		}
	}
	if maxRank < 0 {
		return nil
	}

	layers := make([][]string, maxRank+1)
	visited := make(map[string]bool, len(leaves))
	var dfs func(v string)
	dfs = func(v string) {
		if visited[v] {
			return
		}
		visited[v] = true
		rank := g.NodeLabelOf(v).Rank
		if rank < 0 || rank >= len(layers) {
			return
		}
		layers[rank] = append(layers[rank], v)
		for _, w := range g.Successors(v) {
			dfs(w)
		}
	}

	insertion := make(map[string]int, len(leaves))
	for i, v := range leaves {
		insertion[v] = i
	}
	roots := slices.Clone(leaves)
	slices.SortStableFunc(roots, func(a, b string) int {
		if ra, rb := g.NodeLabelOf(a).Rank, g.NodeLabelOf(b).Rank; ra != rb {
			return ra - rb
		}
		return insertion[a] - insertion[b]
	})
	for _, v := range roots {
		dfs(v)
	}
	return layers
}
