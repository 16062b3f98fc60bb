package order

import (
	"slices"

	"github.com/strataviz/strata/pkg/layout"
)

// A subtree is a contiguous run of layer nodes belonging to one cluster
// (or a single leaf node), together with its median against the fixed
// adjacent layer. Subtrees without any neighbor in the fixed layer carry no
// median and keep their prior position when the layer is re-sorted.
type subtree struct {
	vs        []string
	median    float64
	hasMedian bool
	idx       int
}

// orderLayer re-sorts one layer by neighbor medians against the adjacent
// fixed layer, keeping every cluster's nodes contiguous and its border
// segments at the cluster's extremes. fixedPos maps nodes of the adjacent
// layer to their positions; a nil map sorts nothing and only restores
// cluster contiguity, which is how the initial order is regularized.
func orderLayer(g *layout.Graph, layer []string, fixedPos map[string]int, rank int, biasRight bool) []string {
	return orderCluster(g, "", layer, fixedPos, rank, biasRight).vs
}

func orderCluster(g *layout.Graph, cluster string, members []string, fixedPos map[string]int, rank int, biasRight bool) subtree {
	var borderLeft, borderRight string
	if cluster != "" {
		label := g.NodeLabelOf(cluster)
		if label.BorderLeft != nil {
			borderLeft = label.BorderLeft[rank]
		}
		if label.BorderRight != nil {
			borderRight = label.BorderRight[rank]
		}
	}

	// Partition members by the cluster child their ancestor path passes
	// through, preserving order of first appearance.
	type bucket struct {
		key       string
		isCluster bool
		nodes     []string
	}
	var order []string
	buckets := make(map[string]*bucket)
	for _, v := range members {
		if v == borderLeft || v == borderRight {
			continue
		}
		top := childUnder(g, v, cluster)
		b, ok := buckets[top]
		if !ok {
			b = &bucket{key: top, isCluster: top != v}
			buckets[top] = b
			order = append(order, top)
		}
		b.nodes = append(b.nodes, v)
	}

	entries := make([]subtree, 0, len(order))
	for i, key := range order {
		b := buckets[key]
		var e subtree
		if b.isCluster {
			e = orderCluster(g, key, b.nodes, fixedPos, rank, biasRight)
		} else {
			v := b.nodes[0]
			m, ok := medianOf(neighborPositions(g, v, fixedPos))
			e = subtree{vs: []string{v}, median: m, hasMedian: ok}
		}
		e.idx = i
		entries = append(entries, e)
	}

	merged, median, hasMedian := mergeEntries(entries, biasRight)

	var vs []string
	if borderLeft != "" {
		vs = append(vs, borderLeft)
	}
	vs = append(vs, merged...)
	if borderRight != "" {
		vs = append(vs, borderRight)
	}
	return subtree{vs: vs, median: median, hasMedian: hasMedian}
}

// childUnder returns the ancestor of v that is a direct child of cluster,
// or v itself when v is a direct child.
func childUnder(g *layout.Graph, v, cluster string) string {
	prev := v
	p := g.Parent(v)
	for p != cluster && p != "" {
		prev = p
		p = g.Parent(p)
	}
	if p == cluster {
		return prev
	}
	return v
}

func neighborPositions(g *layout.Graph, v string, fixedPos map[string]int) []int {
	if fixedPos == nil {
		return nil
	}
	var positions []int
	for _, w := range g.Predecessors(v) {
		if p, ok := fixedPos[w]; ok {
			positions = append(positions, p)
		}
	}
	for _, w := range g.Successors(v) {
		if p, ok := fixedPos[w]; ok {
			positions = append(positions, p)
		}
	}
	return positions
}

// medianOf computes the weighted median of neighbor positions. For an even
// count above two it interpolates between the two middle positions, biased
// toward the side where neighbors are packed more tightly.
func medianOf(positions []int) (float64, bool) {
	if len(positions) == 0 {
		return 0, false
	}
	slices.Sort(positions)
	m := len(positions) / 2
	switch {
	case len(positions)%2 == 1:
		return float64(positions[m]), true
	case len(positions) == 2:
		return float64(positions[0]+positions[1]) / 2, true
	default:
		left := float64(positions[m-1] - positions[0])
		right := float64(positions[len(positions)-1] - positions[m])
		return (float64(positions[m-1])*right + float64(positions[m])*left) / (left + right), true
	}
}

// mergeEntries re-sorts the entries that have a median while entries
// without one keep their original index. Returns the flattened node list
// and the aggregate median of the run.
func mergeEntries(entries []subtree, biasRight bool) ([]string, float64, bool) {
	var sortable, unsortable []subtree
	for _, e := range entries {
		if e.hasMedian {
			sortable = append(sortable, e)
		} else {
			unsortable = append(unsortable, e)
		}
	}
	slices.SortStableFunc(sortable, func(a, b subtree) int {
		switch {
		case a.median < b.median:
			return -1
		case a.median > b.median:
			return 1
		case biasRight:
			return b.idx - a.idx
		default:
			return a.idx - b.idx
		}
	})

	var vs []string
	slot := 0
	ui := 0
	consume := func() {
		for ui < len(unsortable) && unsortable[ui].idx <= slot {
			vs = append(vs, unsortable[ui].vs...)
			ui++
			slot++
		}
	}
	consume()
	sum, count := 0.0, 0
	for _, e := range sortable {
		slot++
		vs = append(vs, e.vs...)
		sum += e.median
		count++
		consume()
	}
	for ; ui < len(unsortable); ui++ {
		vs = append(vs, unsortable[ui].vs...)
	}

	if count == 0 {
		return vs, 0, false
	}
	return vs, sum / float64(count), true
}
