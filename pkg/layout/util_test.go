package layout

import (
	"math"
	"testing"
)

// rankedNode adds v with the given rank and order and returns its label.
func rankedNode(g *Graph, v string, rank, order int) *NodeLabel {
	label := NewNodeLabel()
	label.Rank = rank
	label.Order = order
	g.SetNode(v, label)
	return label
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildLayerMatrix(t *testing.T) {
	g := NewGraph(nil)
	rankedNode(g, "a", 0, 0)
	rankedNode(g, "b", 1, 1)
	rankedNode(g, "c", 1, 0)
	rankedNode(g, "d", 2, 0)

	got := BuildLayerMatrix(g)
	want := [][]string{{"a"}, {"c", "b"}, {"d"}}
	if len(got) != len(want) {
		t.Fatalf("got %d layers, want %d", len(got), len(want))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("layer %d = %v, want %v", i, got[i], want[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("layer %d = %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestBuildLayerMatrixSkipsUnrankedNodes(t *testing.T) {
	g := NewGraph(nil)
	rankedNode(g, "a", 0, 0)
	g.SetNode("loose", NewNodeLabel())

	layers := BuildLayerMatrix(g)
	if len(layers) != 1 || len(layers[0]) != 1 || layers[0][0] != "a" {
		t.Errorf("got %v, want [[a]]", layers)
	}
}

func TestNormalizeRanksShiftsMinToZero(t *testing.T) {
	g := NewGraph(nil)
	rankedNode(g, "a", 3, 0)
	rankedNode(g, "b", 5, 0)
	g.SetNode("loose", NewNodeLabel())

	NormalizeRanks(g)

	if r := g.NodeLabelOf("a").Rank; r != 0 {
		t.Errorf("a rank = %d, want 0", r)
	}
	if r := g.NodeLabelOf("b").Rank; r != 2 {
		t.Errorf("b rank = %d, want 2", r)
	}
	if r := g.NodeLabelOf("loose").Rank; r != NoRank {
		t.Errorf("loose rank = %d, want NoRank", r)
	}
}

func TestRemoveEmptyRanksCompacts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NodeRankFactor = 2
	g := NewGraph(cfg)
	rankedNode(g, "a", 0, 0)
	rankedNode(g, "b", 5, 0)

	RemoveEmptyRanks(g)

	// Empty ranks 1 and 3 collapse; 2 and 4 are factor multiples and stay.
	if r := g.NodeLabelOf("b").Rank; r != 3 {
		t.Errorf("b rank = %d, want 3", r)
	}
}

func TestRemoveEmptyRanksDefaultFactorKeepsGaps(t *testing.T) {
	// Every rank is a multiple of the default factor 1, so nothing is
	// removed and gaps survive until ordering.
	g := NewGraph(nil)
	rankedNode(g, "a", 0, 0)
	rankedNode(g, "b", 3, 0)

	RemoveEmptyRanks(g)

	if r := g.NodeLabelOf("b").Rank; r != 3 {
		t.Errorf("b rank = %d, want 3", r)
	}
}

func TestRemoveEmptyRanksKeepsFactorMultiples(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NodeRankFactor = 3
	g := NewGraph(cfg)
	rankedNode(g, "a", 0, 0)
	rankedNode(g, "b", 4, 0)

	RemoveEmptyRanks(g)

	// Ranks 1 and 2 are empty but 3 is a factor multiple, so only two
	// ranks collapse.
	if r := g.NodeLabelOf("b").Rank; r != 2 {
		t.Errorf("b rank = %d, want 2", r)
	}
}

func TestAsNonCompoundGraphSharesLabels(t *testing.T) {
	g := NewGraph(nil)
	g.SetNode("cluster", NewNodeLabel())
	g.SetNode("a", NewNodeLabel())
	g.SetNode("b", NewNodeLabel())
	g.SetParent("a", "cluster")
	g.SetEdge("a", "b", NewEdgeLabel())

	flat := AsNonCompoundGraph(g)

	if flat.HasNode("cluster") {
		t.Error("cluster node should not survive the projection")
	}
	if !flat.HasNode("a") || !flat.HasNode("b") {
		t.Fatal("leaf nodes missing from projection")
	}
	if flat.EdgeCount() != 1 {
		t.Errorf("edge count = %d, want 1", flat.EdgeCount())
	}

	flat.NodeLabelOf("a").Rank = 7
	if r := g.NodeLabelOf("a").Rank; r != 7 {
		t.Errorf("rank set through projection = %d in original, want 7", r)
	}
}

func TestIntersectRect(t *testing.T) {
	rect := &NodeLabel{X: 0, Y: 0, Width: 20, Height: 10}

	tests := []struct {
		name  string
		point Point
		want  Point
	}{
		{"right", Point{X: 100, Y: 0}, Point{X: 10, Y: 0}},
		{"below", Point{X: 0, Y: 100}, Point{X: 0, Y: 5}},
		{"diagonal", Point{X: 10, Y: 10}, Point{X: 5, Y: 5}},
		{"center", Point{X: 0, Y: 0}, Point{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntersectRect(rect, tt.point)
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("IntersectRect(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestMaxRank(t *testing.T) {
	g := NewGraph(nil)
	if r := MaxRank(g); r != NoRank {
		t.Errorf("empty graph max rank = %d, want NoRank", r)
	}
	rankedNode(g, "a", 2, 0)
	rankedNode(g, "b", 5, 0)
	if r := MaxRank(g); r != 5 {
		t.Errorf("max rank = %d, want 5", r)
	}
}
