// Package svg renders finished layouts as SVG drawings. Nodes become
// rounded rectangles, clusters become outlined boxes behind their
// children, and edges follow their computed waypoints as polylines with an
// arrowhead at the target boundary.
package svg

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/strataviz/strata/pkg/errors"
	"github.com/strataviz/strata/pkg/layout"
)

const (
	colorNodeFill    = "#eef2ff"
	colorNodeStroke  = "#6272a4"
	colorClusterFill = "#f8f8f8"
	colorEdge        = "#6b80bf"
	colorText        = "#28283c"
	colorLabelText   = "#50506a"

	fontFamily = "monospace"
	arrowSize  = 6
)

// Render writes the graph as an SVG document. The graph must have been laid
// out first; rendering a graph without coordinates fails.
func Render(g *layout.Graph, w io.Writer) error {
	if g.Width <= 0 || g.Height <= 0 {
		return errors.New(errors.ErrCodeBadGraph, "graph has no computed size, run layout first")
	}

	canvas := svg.New(w)
	canvas.Start(round(g.Width), round(g.Height))
	canvas.Rect(0, 0, round(g.Width), round(g.Height), "fill:#ffffff")

	// Clusters first so nodes and edges draw on top of them.
	for _, v := range g.Nodes() {
		if len(g.Children(v)) == 0 {
			continue
		}
		n := g.NodeLabelOf(v)
		canvas.Roundrect(round(n.X-n.Width/2), round(n.Y-n.Height/2), round(n.Width), round(n.Height), 6, 6,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1;stroke-dasharray:4 2", colorClusterFill, colorNodeStroke))
		if n.Label != "" {
			canvas.Text(round(n.X), round(n.Y-n.Height/2)+14, n.Label,
				fmt.Sprintf("fill:%s;font-size:11px;font-family:%s;text-anchor:middle", colorLabelText, fontFamily))
		}
	}

	for _, e := range g.Edges() {
		drawEdge(canvas, g.EdgeLabelOf(e))
	}

	for _, v := range g.Nodes() {
		if len(g.Children(v)) > 0 {
			continue
		}
		n := g.NodeLabelOf(v)
		canvas.Roundrect(round(n.X-n.Width/2), round(n.Y-n.Height/2), round(n.Width), round(n.Height), 4, 4,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1.5", colorNodeFill, colorNodeStroke))
		text := n.Label
		if text == "" {
			text = v
		}
		canvas.Text(round(n.X), round(n.Y)+4, text,
			fmt.Sprintf("fill:%s;font-size:12px;font-family:%s;text-anchor:middle", colorText, fontFamily))
	}

	canvas.End()
	return nil
}

// RenderFile renders the graph into an SVG file created with 0644
// permissions.
func RenderFile(g *layout.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeBadFormat, err, "create %s", path)
	}
	defer f.Close()
	return Render(g, f)
}

func drawEdge(canvas *svg.SVG, l *layout.EdgeLabel) {
	if len(l.Points) < 2 {
		return
	}
	xs := make([]int, len(l.Points))
	ys := make([]int, len(l.Points))
	for i, p := range l.Points {
		xs[i] = round(p.X)
		ys[i] = round(p.Y)
	}
	canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:1.5", colorEdge))
	drawArrowhead(canvas, l.Points[len(l.Points)-2], l.Points[len(l.Points)-1])

	if l.HasXY && l.Label != "" {
		canvas.Text(round(l.X), round(l.Y)+4, l.Label,
			fmt.Sprintf("fill:%s;font-size:11px;font-family:%s;text-anchor:middle", colorLabelText, fontFamily))
	}
}

// drawArrowhead places a small triangle at the tip, oriented along the last
// segment of the edge.
func drawArrowhead(canvas *svg.SVG, from, tip layout.Point) {
	dx := tip.X - from.X
	dy := tip.Y - from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit vector along the segment and its normal.
	norm := 1 / length
	ux, uy := dx*norm, dy*norm
	px, py := -uy, ux

	baseX := tip.X - float64(arrowSize)*ux
	baseY := tip.Y - float64(arrowSize)*uy
	half := float64(arrowSize) / 2
	canvas.Polygon(
		[]int{round(tip.X), round(baseX + half*px), round(baseX - half*px)},
		[]int{round(tip.Y), round(baseY + half*py), round(baseY - half*py)},
		fmt.Sprintf("fill:%s", colorEdge))
}

func round(v float64) int {
	return int(math.Round(v))
}
