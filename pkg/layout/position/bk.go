package position

import (
	"math"
	"slices"
	"strings"

	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// Brandes-Köpf horizontal coordinate assignment. Nodes are grouped into
// vertical blocks of aligned nodes, blocks are compacted left under the
// separation constraints, and the four direction-biased results are
// balanced into the final coordinate.

// conflictSet records pairs of edges that must not be aligned through the
// same block. Pairs are stored under the lexically smaller endpoint.
type conflictSet map[string]map[string]bool

func (c conflictSet) add(v, w string) {
	if w < v {
		v, w = w, v
	}
	set, ok := c[v]
	if !ok {
		set = make(map[string]bool)
		c[v] = set
	}
	set[w] = true
}

func (c conflictSet) has(v, w string) bool {
	if w < v {
		v, w = w, v
	}
	return c[v][w]
}

// findType1Conflicts marks crossings between an inner segment (an edge
// between two chain dummies) and a non-inner segment. Inner segments are
// kept straight at the expense of ordinary edges.
func findType1Conflicts(g *layout.Graph, layering [][]string) conflictSet {
	conflicts := make(conflictSet)
	for i := 1; i < len(layering); i++ {
		prevLayer := layering[i-1]
		layer := layering[i]

		k0 := 0
		scanPos := 0
		for idx, v := range layer {
			w := otherInnerSegmentNode(g, v)
			k1 := len(prevLayer)
			if w != "" {
				k1 = g.NodeLabelOf(w).Order
			}

			if w != "" || idx == len(layer)-1 {
				for _, scanNode := range layer[scanPos : idx+1] {
					scanDummy := g.NodeLabelOf(scanNode).Dummy != layout.DummyNone
					for _, u := range g.Predecessors(scanNode) {
						uLabel := g.NodeLabelOf(u)
						uPos := uLabel.Order
						if (uPos < k0 || k1 < uPos) && !(uLabel.Dummy != layout.DummyNone && scanDummy) {
							conflicts.add(u, scanNode)
						}
					}
				}
				scanPos = idx + 1
				k0 = k1
			}
		}
	}
	return conflicts
}

// findType2Conflicts marks crossings between two inner segments where one
// of them passes a cluster border. The segment inside the cluster wins.
func findType2Conflicts(g *layout.Graph, layering [][]string) conflictSet {
	conflicts := make(conflictSet)

	scan := func(south []string, southPos, southEnd, prevNorthBorder, nextNorthBorder int) {
		for _, v := range south[southPos:southEnd] {
			if g.NodeLabelOf(v).Dummy == layout.DummyNone {
				continue
			}
			for _, u := range g.Predecessors(v) {
				uNode := g.NodeLabelOf(u)
				if uNode.Dummy != layout.DummyNone &&
					(uNode.Order < prevNorthBorder || uNode.Order > nextNorthBorder) {
					conflicts.add(u, v)
				}
			}
		}
	}

	for i := 1; i < len(layering); i++ {
		north := layering[i-1]
		south := layering[i]

		prevNorthPos := -1
		nextNorthPos := -1
		southPos := 0
		for southLookahead, v := range south {
			if g.NodeLabelOf(v).Dummy == layout.DummyBorder {
				if preds := g.Predecessors(v); len(preds) > 0 {
					nextNorthPos = g.NodeLabelOf(preds[0]).Order
					scan(south, southPos, southLookahead, prevNorthPos, nextNorthPos)
					southPos = southLookahead
					prevNorthPos = nextNorthPos
				}
			}
			scan(south, southPos, len(south), nextNorthPos, len(north))
		}
	}
	return conflicts
}

// otherInnerSegmentNode returns the dummy predecessor of v when v itself is
// a dummy, making (u, v) an inner segment.
func otherInnerSegmentNode(g *layout.Graph, v string) string {
	if g.NodeLabelOf(v).Dummy == layout.DummyNone {
		return ""
	}
	for _, u := range g.Predecessors(v) {
		if g.NodeLabelOf(u).Dummy != layout.DummyNone {
			return u
		}
	}
	return ""
}

type alignment struct {
	root  map[string]string
	align map[string]string
}

// verticalAlignment chains each node to the median of its neighbors in the
// previous layer, unless the medians conflict or have already been
// claimed. root maps every node to the top of its block; align forms a
// cyclic linked list through each block.
func verticalAlignment(g *layout.Graph, layering [][]string, conflicts conflictSet, neighbors func(string) []string) alignment {
	root := make(map[string]string)
	align := make(map[string]string)
	pos := make(map[string]int)

	for _, layer := range layering {
		for order, v := range layer {
			root[v] = v
			align[v] = v
			pos[v] = order
		}
	}

	for _, layer := range layering {
		prevIdx := -1
		for _, v := range layer {
			ws := neighbors(v)
			if len(ws) == 0 {
				continue
			}
			slices.SortStableFunc(ws, func(a, b string) int { return pos[a] - pos[b] })

			mp := float64(len(ws)-1) / 2
			for i := int(math.Floor(mp)); i <= int(math.Ceil(mp)); i++ {
				w := ws[i]
				if align[v] == v && prevIdx < pos[w] && !conflicts.has(v, w) {
					align[w] = v
					align[v] = root[w]
					root[v] = root[w]
					prevIdx = pos[w]
				}
			}
		}
	}

	return alignment{root: root, align: align}
}

// horizontalCompaction places each block as far left as the separation
// constraints allow, then pulls blocks right toward their successors where
// slack remains. Border blocks of the trailing side stay put so clusters
// are not widened.
func horizontalCompaction(g *layout.Graph, layering [][]string, root, align map[string]string, reverseSep bool) map[string]float64 {
	xs := make(map[string]float64)
	blockG := buildBlockGraph(g, layering, root, reverseSep)
	borderType := layout.BorderRight
	if reverseSep {
		borderType = layout.BorderLeft
	}

	iterate := func(setXS func(string), nextNodes func(string) []string) {
		stack := blockG.Nodes()
		visited := make(map[string]bool)
		for len(stack) > 0 {
			elem := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[elem] {
				setXS(elem)
				continue
			}
			visited[elem] = true
			stack = append(stack, elem)
			stack = append(stack, nextNodes(elem)...)
		}
	}

	// First pass, smallest coordinates.
	iterate(func(elem string) {
		best := 0.0
		for _, e := range blockG.InEdges(elem) {
			sep, _ := blockG.Edge(e)
			if x := xs[e.V] + sep; x > best {
				best = x
			}
		}
		xs[elem] = best
	}, blockG.Predecessors)

	// Second pass, greatest coordinates bounded by successors.
	iterate(func(elem string) {
		min := math.Inf(1)
		for _, e := range blockG.OutEdges(elem) {
			sep, _ := blockG.Edge(e)
			if x := xs[e.W] - sep; x < min {
				min = x
			}
		}
		node := g.NodeLabelOf(elem)
		if !math.IsInf(min, 1) && node.BorderType != borderType {
			xs[elem] = math.Max(xs[elem], min)
		}
	}, blockG.Successors)

	out := make(map[string]float64, len(align))
	for v := range align {
		out[v] = xs[root[v]]
	}
	return out
}

// buildBlockGraph links the block roots of horizontally adjacent nodes
// with the maximum separation required between any of their members.
func buildBlockGraph(g *layout.Graph, layering [][]string, root map[string]string, reverseSep bool) *graph.Graph[struct{}, float64] {
	blockG := graph.New[struct{}, float64](graph.Options{Directed: true})
	for _, layer := range layering {
		u := ""
		for _, v := range layer {
			vRoot := root[v]
			blockG.EnsureNode(vRoot)
			if u != "" {
				uRoot := root[u]
				prevMax, _ := blockG.Edge(graph.EdgeKey{V: uRoot, W: vRoot})
				blockG.SetEdge(uRoot, vRoot, math.Max(sep(g, v, u, reverseSep), prevMax))
			}
			u = v
		}
	}
	return blockG
}

// sep is the minimum distance between the centers of horizontally adjacent
// nodes v and w, honoring node and edge separation and offset labels.
func sep(g *layout.Graph, v, w string, reverseSep bool) float64 {
	vLabel := g.NodeLabelOf(v)
	wLabel := g.NodeLabelOf(w)

	sum := vLabel.Width / 2
	sum += labelShift(vLabel, reverseSep, false)

	sum += halfSep(g, vLabel) + halfSep(g, wLabel)

	sum += wLabel.Width / 2
	sum += labelShift(wLabel, reverseSep, true)
	return sum
}

func halfSep(g *layout.Graph, n *layout.NodeLabel) float64 {
	if n.Dummy != layout.DummyNone {
		return g.Config.EdgeSep / 2
	}
	return g.Config.NodeSep / 2
}

func labelShift(n *layout.NodeLabel, reverseSep, trailing bool) float64 {
	var delta float64
	switch n.LabelPos {
	case "l":
		delta = -n.Width / 2
	case "r":
		delta = n.Width / 2
	default:
		return 0
	}
	if trailing {
		delta = -delta
	}
	if reverseSep {
		return delta
	}
	return -delta
}

var alignmentKeys = []string{"ul", "ur", "dl", "dr"}

// findSmallestWidthAlignment picks the alignment producing the narrowest
// overall drawing. Ties resolve to the earlier alignment in ul, ur, dl,
// dr order.
func findSmallestWidthAlignment(g *layout.Graph, xss map[string]map[string]float64) map[string]float64 {
	bestWidth := math.Inf(1)
	var best map[string]float64
	for _, key := range alignmentKeys {
		xs, ok := xss[key]
		if !ok {
			continue
		}
		max := math.Inf(-1)
		min := math.Inf(1)
		for v, x := range xs {
			halfW := g.NodeLabelOf(v).Width / 2
			max = math.Max(max, x+halfW)
			min = math.Min(min, x-halfW)
		}
		if w := max - min; w < bestWidth {
			bestWidth = w
			best = xs
		}
	}
	return best
}

// alignCoordinates shifts every alignment so its extreme coincides with the
// chosen alignment's extreme: left-biased alignments share the minimum,
// right-biased alignments the maximum.
func alignCoordinates(xss map[string]map[string]float64, alignTo map[string]float64) {
	alignToMin := math.Inf(1)
	alignToMax := math.Inf(-1)
	for _, x := range alignTo {
		alignToMin = math.Min(alignToMin, x)
		alignToMax = math.Max(alignToMax, x)
	}

	for _, key := range alignmentKeys {
		xs, ok := xss[key]
		if !ok {
			continue
		}
		xsMin := math.Inf(1)
		xsMax := math.Inf(-1)
		for _, x := range xs {
			xsMin = math.Min(xsMin, x)
			xsMax = math.Max(xsMax, x)
		}
		delta := alignToMin - xsMin
		if key[1] != 'l' {
			delta = alignToMax - xsMax
		}
		if delta != 0 {
			for v := range xs {
				xs[v] += delta
			}
		}
	}
}

// balance combines the four alignments per node. With an explicit Align
// setting that alignment wins outright; otherwise the average of the two
// median coordinates is used.
func balance(xss map[string]map[string]float64, align string) map[string]float64 {
	ul, ok := xss["ul"]
	if !ok {
		return nil
	}
	alignKey := strings.ToLower(align)

	out := make(map[string]float64, len(ul))
	for v := range ul {
		if alignKey != "" {
			out[v] = xss[alignKey][v]
			continue
		}
		vals := make([]float64, 0, 4)
		for _, key := range alignmentKeys {
			if xs, ok := xss[key]; ok {
				vals = append(vals, xs[v])
			}
		}
		slices.Sort(vals)
		out[v] = (vals[1] + vals[2]) / 2
	}
	return out
}

// positionX computes the final cross-axis coordinate of every node.
func positionX(g *layout.Graph) map[string]float64 {
	layering := layout.BuildLayerMatrix(g)
	conflicts := findType1Conflicts(g, layering)
	for v, ws := range findType2Conflicts(g, layering) {
		for w := range ws {
			conflicts.add(v, w)
		}
	}

	xss := make(map[string]map[string]float64, 4)
	for _, vert := range []string{"u", "d"} {
		adjusted := copyLayering(layering)
		if vert == "d" {
			slices.Reverse(adjusted)
		}
		neighbors := g.Predecessors
		if vert == "d" {
			neighbors = g.Successors
		}

		for _, horiz := range []string{"l", "r"} {
			if horiz == "r" {
				for i := range adjusted {
					slices.Reverse(adjusted[i])
				}
			}
			align := verticalAlignment(g, adjusted, conflicts, neighbors)
			xs := horizontalCompaction(g, adjusted, align.root, align.align, horiz == "r")
			if horiz == "r" {
				for v := range xs {
					xs[v] = -xs[v]
				}
			}
			xss[vert+horiz] = xs
		}
	}

	smallest := findSmallestWidthAlignment(g, xss)
	alignCoordinates(xss, smallest)
	return balance(xss, g.Config.Align)
}

func copyLayering(layering [][]string) [][]string {
	out := make([][]string, len(layering))
	for i, layer := range layering {
		out[i] = slices.Clone(layer)
	}
	return out
}
