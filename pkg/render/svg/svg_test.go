package svg

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/strataviz/strata/pkg/layout"
	"github.com/strataviz/strata/pkg/pipeline"
)

func laidOutGraph(t *testing.T) *layout.Graph {
	t.Helper()
	g := layout.NewGraph(nil)
	for _, v := range []string{"alpha", "beta"} {
		label := layout.NewNodeLabel()
		label.Width = 60
		label.Height = 30
		g.SetNode(v, label)
	}
	e := layout.NewEdgeLabel()
	e.Label = "dep"
	e.Width = 24
	e.Height = 12
	g.SetEdge("alpha", "beta", e)
	if err := pipeline.NewRunner(nil, nil).Layout(context.Background(), g); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	return g
}

func TestRenderWritesSVG(t *testing.T) {
	g := laidOutGraph(t)
	var buf bytes.Buffer

	if err := Render(g, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	for _, want := range []string{">alpha<", ">beta<", ">dep<", "<polyline", "<polygon"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderUsesNodeLabelText(t *testing.T) {
	g := laidOutGraph(t)
	g.NodeLabelOf("alpha").Label = "Alpha Service"
	var buf bytes.Buffer

	if err := Render(g, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), ">Alpha Service<") {
		t.Error("node label text not rendered")
	}
}

func TestRenderRejectsUnlaidGraph(t *testing.T) {
	g := layout.NewGraph(nil)
	g.SetNode("a", layout.NewNodeLabel())

	if err := Render(g, &bytes.Buffer{}); err == nil {
		t.Fatal("Render() accepted a graph without computed size")
	}
}

func TestRenderDrawsClusters(t *testing.T) {
	g := layout.NewGraph(nil)
	cluster := layout.NewNodeLabel()
	cluster.Label = "group"
	g.SetNode("sg", cluster)
	for _, v := range []string{"a", "b"} {
		label := layout.NewNodeLabel()
		label.Width = 40
		label.Height = 20
		g.SetNode(v, label)
		g.SetParent(v, "sg")
	}
	g.SetEdge("a", "b", layout.NewEdgeLabel())
	if err := pipeline.NewRunner(nil, nil).Layout(context.Background(), g); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	var buf bytes.Buffer

	if err := Render(g, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "stroke-dasharray") {
		t.Error("no dashed cluster outline in output")
	}
	if !strings.Contains(buf.String(), ">group<") {
		t.Error("cluster label not rendered")
	}
}

func TestRenderFile(t *testing.T) {
	g := laidOutGraph(t)
	path := filepath.Join(t.TempDir(), "out.svg")

	if err := RenderFile(g, path); err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("file does not contain an SVG document")
	}
}
