package graph

import (
	"errors"
	"slices"
	"testing"
)

func directed() *Graph[string, int] {
	return New[string, int](Options{Directed: true})
}

func compound() *Graph[string, int] {
	return New[string, int](Options{Directed: true, Multigraph: true, Compound: true})
}

func TestSetNode_InsertionOrder(t *testing.T) {
	g := directed()
	g.SetNode("b", "B")
	g.SetNode("a", "A")
	g.SetNode("c", "C")

	got := g.Nodes()
	want := []string{"b", "a", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
}

func TestSetNode_ReplaceKeepsOrder(t *testing.T) {
	g := directed()
	g.SetNode("a", "old")
	g.SetNode("b", "B")
	g.SetNode("a", "new")

	if got, _ := g.Node("a"); got != "new" {
		t.Errorf("Node(a) = %q, want %q", got, "new")
	}
	if got := g.Nodes(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Nodes() = %v, want [a b]", got)
	}
}

func TestSetNode_EmptyID(t *testing.T) {
	g := directed()
	if err := g.SetNode("", "x"); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("SetNode(\"\") error = %v, want ErrInvalidNodeID", err)
	}
}

func TestSetEdge_CreatesEndpoints(t *testing.T) {
	g := directed()
	g.SetDefaultNodeLabel(func() string { return "default" })
	g.SetEdge("a", "b", 1)

	if !g.HasNode("a") || !g.HasNode("b") {
		t.Fatalf("SetEdge did not create endpoints: nodes = %v", g.Nodes())
	}
	if got, _ := g.Node("a"); got != "default" {
		t.Errorf("Node(a) = %q, want default label", got)
	}
}

func TestSetNamedEdge_ParallelEdges(t *testing.T) {
	g := compound()
	g.SetEdge("a", "b", 1)
	g.SetNamedEdge("a", "b", "second", 2)

	if g.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if got, _ := g.Edge(EdgeKey{V: "a", W: "b", Name: "second"}); got != 2 {
		t.Errorf("Edge(a,b,second) = %d, want 2", got)
	}
	if got := g.Successors("a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Successors(a) = %v, want [b]", got)
	}
}

func TestSetNamedEdge_NameIgnoredWithoutMultigraph(t *testing.T) {
	g := directed()
	g.SetNamedEdge("a", "b", "x", 1)
	g.SetNamedEdge("a", "b", "y", 2)

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if got, _ := g.Edge(EdgeKey{V: "a", W: "b"}); got != 2 {
		t.Errorf("Edge(a,b) = %d, want 2", got)
	}
}

func TestUndirected_CanonicalKey(t *testing.T) {
	g := New[string, int](Options{})
	g.SetEdge("b", "a", 7)

	if got, ok := g.Edge(EdgeKey{V: "a", W: "b"}); !ok || got != 7 {
		t.Errorf("Edge(a,b) = %d, %v, want 7, true", got, ok)
	}
	if got, ok := g.Edge(EdgeKey{V: "b", W: "a"}); !ok || got != 7 {
		t.Errorf("Edge(b,a) = %d, %v, want 7, true", got, ok)
	}
}

func TestRemoveNode_CascadesEdges(t *testing.T) {
	g := directed()
	g.SetEdge("a", "b", 1)
	g.SetEdge("b", "c", 1)
	g.SetEdge("a", "c", 1)

	g.RemoveNode("b")

	if g.HasNode("b") {
		t.Error("HasNode(b) = true after RemoveNode")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if got := g.Successors("a"); !slices.Equal(got, []string{"c"}) {
		t.Errorf("Successors(a) = %v, want [c]", got)
	}
}

func TestRemoveNode_ReparentsChildren(t *testing.T) {
	g := compound()
	for _, id := range []string{"outer", "inner", "leaf"} {
		g.SetNode(id, id)
	}
	g.SetParent("inner", "outer")
	g.SetParent("leaf", "inner")

	g.RemoveNode("inner")

	if got := g.Parent("leaf"); got != "outer" {
		t.Errorf("Parent(leaf) = %q, want outer", got)
	}
	if got := g.Children("outer"); !slices.Equal(got, []string{"leaf"}) {
		t.Errorf("Children(outer) = %v, want [leaf]", got)
	}
}

func TestSetParent_RejectsAncestryCycle(t *testing.T) {
	g := compound()
	g.SetNode("a", "a")
	g.SetNode("b", "b")
	g.SetParent("b", "a")

	if err := g.SetParent("a", "b"); !errors.Is(err, ErrAncestryCycle) {
		t.Errorf("SetParent(a, b) error = %v, want ErrAncestryCycle", err)
	}
	if err := g.SetParent("a", "a"); !errors.Is(err, ErrAncestryCycle) {
		t.Errorf("SetParent(a, a) error = %v, want ErrAncestryCycle", err)
	}
}

func TestSetParent_NotCompound(t *testing.T) {
	g := directed()
	g.SetNode("a", "a")
	g.SetNode("b", "b")
	if err := g.SetParent("a", "b"); !errors.Is(err, ErrNotCompound) {
		t.Errorf("SetParent error = %v, want ErrNotCompound", err)
	}
}

func TestChildren_RootListsTopLevel(t *testing.T) {
	g := compound()
	g.SetNode("a", "a")
	g.SetNode("cluster", "c")
	g.SetNode("b", "b")
	g.SetParent("b", "cluster")

	if got := g.Children(""); !slices.Equal(got, []string{"a", "cluster"}) {
		t.Errorf("Children(\"\") = %v, want [a cluster]", got)
	}
}

func TestSuccessorsPredecessors(t *testing.T) {
	g := directed()
	g.SetEdge("a", "b", 1)
	g.SetEdge("a", "c", 1)
	g.SetEdge("c", "b", 1)

	if got := g.Successors("a"); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("Successors(a) = %v, want [b c]", got)
	}
	if got := g.Predecessors("b"); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Predecessors(b) = %v, want [a c]", got)
	}
	if got := g.Neighbors("b"); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Neighbors(b) = %v, want [a c]", got)
	}
}

func TestSourcesSinks(t *testing.T) {
	g := directed()
	g.SetEdge("a", "b", 1)
	g.SetEdge("b", "c", 1)

	if got := g.Sources(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Sources() = %v, want [a]", got)
	}
	if got := g.Sinks(); !slices.Equal(got, []string{"c"}) {
		t.Errorf("Sinks() = %v, want [c]", got)
	}
}

func TestNodeEdges_SelfLoopCountedOnce(t *testing.T) {
	g := compound()
	g.SetEdge("a", "a", 1)
	g.SetEdge("a", "b", 1)

	got := g.NodeEdges("a")
	if len(got) != 2 {
		t.Errorf("NodeEdges(a) = %v, want 2 edges", got)
	}
}

func TestRemoveEdge(t *testing.T) {
	g := directed()
	g.SetEdge("a", "b", 1)
	g.RemoveEdge(EdgeKey{V: "a", W: "b"})

	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
	if got := g.Successors("a"); len(got) != 0 {
		t.Errorf("Successors(a) = %v, want empty", got)
	}
}

func TestEnsureEdge_KeepsExistingLabel(t *testing.T) {
	g := directed()
	g.SetDefaultEdgeLabel(func(EdgeKey) int { return -1 })
	g.SetEdge("a", "b", 5)
	g.EnsureEdge("a", "b", "")
	g.EnsureEdge("a", "c", "")

	if got, _ := g.Edge(EdgeKey{V: "a", W: "b"}); got != 5 {
		t.Errorf("Edge(a,b) = %d, want 5", got)
	}
	if got, _ := g.Edge(EdgeKey{V: "a", W: "c"}); got != -1 {
		t.Errorf("Edge(a,c) = %d, want default -1", got)
	}
}
