package layout

import "testing"

func clusterFixture(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph(nil)
	cluster := NewNodeLabel()
	cluster.MinRank = 0
	cluster.MaxRank = 1
	g.SetNode("sg", cluster)
	rankedNode(g, "a", 0, 0)
	rankedNode(g, "b", 1, 0)
	g.SetParent("a", "sg")
	g.SetParent("b", "sg")
	return g
}

func TestAddBorderSegments(t *testing.T) {
	g := clusterFixture(t)

	AddBorderSegments(g, NewIDGen())

	cluster := g.NodeLabelOf("sg")
	if len(cluster.BorderLeft) != 2 || len(cluster.BorderRight) != 2 {
		t.Fatalf("border maps sized %d/%d, want 2/2",
			len(cluster.BorderLeft), len(cluster.BorderRight))
	}
	for rank := 0; rank <= 1; rank++ {
		for _, side := range []struct {
			name     string
			segments map[int]string
			border   BorderType
		}{
			{"left", cluster.BorderLeft, BorderLeft},
			{"right", cluster.BorderRight, BorderRight},
		} {
			v, ok := side.segments[rank]
			if !ok {
				t.Fatalf("no %s segment on rank %d", side.name, rank)
			}
			node := g.NodeLabelOf(v)
			if node.Rank != rank {
				t.Errorf("%s segment rank = %d, want %d", side.name, node.Rank, rank)
			}
			if node.BorderType != side.border {
				t.Errorf("%s segment type = %q, want %q", side.name, node.BorderType, side.border)
			}
			if g.Parent(v) != "sg" {
				t.Errorf("%s segment parent = %q, want sg", side.name, g.Parent(v))
			}
		}
	}

	// Consecutive segments on a side are chained.
	chain := g.Successors(cluster.BorderLeft[0])
	if len(chain) != 1 || chain[0] != cluster.BorderLeft[1] {
		t.Errorf("left segments not chained: successors = %v", chain)
	}
}

func TestRemoveBorderNodesSizesCluster(t *testing.T) {
	g := clusterFixture(t)
	ids := NewIDGen()
	cluster := g.NodeLabelOf("sg")
	cluster.BorderTop = AddDummyNode(g, ids, DummyBorder, NewNodeLabel(), "bt")
	cluster.BorderBottom = AddDummyNode(g, ids, DummyBorder, NewNodeLabel(), "bb")
	g.SetParent(cluster.BorderTop, "sg")
	g.SetParent(cluster.BorderBottom, "sg")
	AddBorderSegments(g, ids)

	g.NodeLabelOf(cluster.BorderTop).Y = 10
	g.NodeLabelOf(cluster.BorderBottom).Y = 110
	g.NodeLabelOf(cluster.BorderLeft[1]).X = 20
	g.NodeLabelOf(cluster.BorderRight[1]).X = 80

	RemoveBorderNodes(g)

	if cluster.Width != 60 || cluster.Height != 100 {
		t.Errorf("cluster size = %vx%v, want 60x100", cluster.Width, cluster.Height)
	}
	if cluster.X != 50 || cluster.Y != 60 {
		t.Errorf("cluster center = (%v,%v), want (50,60)", cluster.X, cluster.Y)
	}
	for _, v := range g.Nodes() {
		if g.NodeLabelOf(v).Dummy == DummyBorder {
			t.Errorf("border node %s survived", v)
		}
	}
}
