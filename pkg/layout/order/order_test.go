package order

import (
	"testing"

	"github.com/strataviz/strata/pkg/layout"
)

func rankedNode(g *layout.Graph, v string, rank int) {
	label := layout.NewNodeLabel()
	label.Rank = rank
	g.SetNode(v, label)
}

func weightedEdge(g *layout.Graph, v, w string, weight float64) {
	label := layout.NewEdgeLabel()
	label.Weight = weight
	g.SetEdge(v, w, label)
}

func checkPermutation(t *testing.T, g *layout.Graph) {
	t.Helper()
	for r, layer := range layout.BuildLayerMatrix(g) {
		seen := make(map[int]bool, len(layer))
		for _, v := range layer {
			o := g.NodeLabelOf(v).Order
			if o < 0 || o >= len(layer) || seen[o] {
				t.Fatalf("rank %d orders are not a permutation: %v", r, layer)
			}
			seen[o] = true
		}
	}
}

func TestCrossCountStraight(t *testing.T) {
	g := layout.NewGraph(nil)
	rankedNode(g, "a", 0)
	rankedNode(g, "b", 0)
	rankedNode(g, "c", 1)
	rankedNode(g, "d", 1)
	weightedEdge(g, "a", "c", 1)
	weightedEdge(g, "b", "d", 1)

	if cc := CrossCount(g, [][]string{{"a", "b"}, {"c", "d"}}); cc != 0 {
		t.Errorf("cross count = %v, want 0", cc)
	}
}

func TestCrossCountWeighted(t *testing.T) {
	g := layout.NewGraph(nil)
	rankedNode(g, "a", 0)
	rankedNode(g, "b", 0)
	rankedNode(g, "c", 1)
	rankedNode(g, "d", 1)
	weightedEdge(g, "a", "d", 2)
	weightedEdge(g, "b", "c", 3)

	// A crossing between edges of weight 2 and 3 costs 6.
	if cc := CrossCount(g, [][]string{{"a", "b"}, {"c", "d"}}); cc != 6 {
		t.Errorf("cross count = %v, want 6", cc)
	}
}

func TestCrossCountMultiLayer(t *testing.T) {
	g := layout.NewGraph(nil)
	for _, v := range []string{"a", "b"} {
		rankedNode(g, v, 0)
	}
	for _, v := range []string{"c", "d"} {
		rankedNode(g, v, 1)
	}
	for _, v := range []string{"e", "f"} {
		rankedNode(g, v, 2)
	}
	weightedEdge(g, "a", "d", 1)
	weightedEdge(g, "b", "c", 1)
	weightedEdge(g, "c", "f", 1)
	weightedEdge(g, "d", "e", 1)

	layering := [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}}
	if cc := CrossCount(g, layering); cc != 2 {
		t.Errorf("cross count = %v, want 2", cc)
	}
}

func TestRunUncrossesBipartiteGraph(t *testing.T) {
	g := layout.NewGraph(nil)
	rankedNode(g, "a", 0)
	rankedNode(g, "b", 0)
	rankedNode(g, "c", 1)
	rankedNode(g, "d", 1)
	weightedEdge(g, "a", "d", 1)
	weightedEdge(g, "b", "c", 1)

	Run(g)

	checkPermutation(t, g)
	if cc := CrossCount(g, layout.BuildLayerMatrix(g)); cc != 0 {
		t.Errorf("cross count after ordering = %v, want 0", cc)
	}
}

func TestRunUncrossesThreeLayers(t *testing.T) {
	g := layout.NewGraph(nil)
	for _, v := range []string{"a", "b", "c"} {
		rankedNode(g, v, 0)
	}
	for _, v := range []string{"d", "e", "f"} {
		rankedNode(g, v, 1)
	}
	for _, v := range []string{"g", "h"} {
		rankedNode(g, v, 2)
	}
	weightedEdge(g, "a", "f", 1)
	weightedEdge(g, "b", "e", 1)
	weightedEdge(g, "c", "d", 1)
	weightedEdge(g, "d", "g", 1)
	weightedEdge(g, "f", "h", 1)

	Run(g)

	checkPermutation(t, g)
	if cc := CrossCount(g, layout.BuildLayerMatrix(g)); cc != 0 {
		t.Errorf("cross count after ordering = %v, want 0", cc)
	}
}

func TestRunWithHeuristicDisabled(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.DisableOptimalOrderHeuristic = true
	g := layout.NewGraph(cfg)
	for _, v := range []string{"a", "b", "c"} {
		rankedNode(g, v, 0)
	}
	for _, v := range []string{"d", "e", "f"} {
		rankedNode(g, v, 1)
	}
	weightedEdge(g, "a", "f", 1)
	weightedEdge(g, "b", "e", 1)
	weightedEdge(g, "c", "d", 1)

	Run(g)

	checkPermutation(t, g)
}

func TestRunKeepsClusterContiguous(t *testing.T) {
	g := layout.NewGraph(nil)
	g.SetNode("sg", layout.NewNodeLabel())
	for _, v := range []string{"m1", "m2", "x"} {
		rankedNode(g, v, 0)
	}
	g.SetParent("m1", "sg")
	g.SetParent("m2", "sg")
	for _, v := range []string{"p", "q", "r"} {
		rankedNode(g, v, 1)
	}
	// Neighbors try to pull x between the cluster members.
	weightedEdge(g, "m1", "p", 1)
	weightedEdge(g, "x", "q", 1)
	weightedEdge(g, "m2", "r", 1)

	Run(g)

	checkPermutation(t, g)
	o1 := g.NodeLabelOf("m1").Order
	o2 := g.NodeLabelOf("m2").Order
	if diff := o1 - o2; diff != 1 && diff != -1 {
		t.Errorf("cluster members at orders %d and %d, want adjacent", o1, o2)
	}
}

func TestRunEmptyGraph(t *testing.T) {
	g := layout.NewGraph(nil)
	Run(g)
	if n := g.NodeCount(); n != 0 {
		t.Errorf("node count = %d, want 0", n)
	}
}
