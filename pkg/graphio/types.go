package graphio

import (
	"github.com/strataviz/strata/pkg/errors"
	"github.com/strataviz/strata/pkg/layout"
)

// Document is the canonical serialization format for layout graphs. It is
// designed for round-trip fidelity: import, layout, export, re-import keeps
// node insertion order, which the pipeline relies on for determinism.
type Document struct {
	Options *Options `json:"options,omitempty"`
	Nodes   []Node   `json:"nodes"`
	Edges   []Edge   `json:"edges"`

	// Width and Height are set on export after a layout run.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Options mirrors the tunable layout parameters. Omitted fields fall back
// to the defaults.
type Options struct {
	RankDir                      string  `json:"rankdir,omitempty"`
	Ranker                       string  `json:"ranker,omitempty"`
	Acyclicer                    string  `json:"acyclicer,omitempty"`
	NodeSep                      float64 `json:"nodesep,omitempty"`
	EdgeSep                      float64 `json:"edgesep,omitempty"`
	RankSep                      float64 `json:"ranksep,omitempty"`
	MarginX                      float64 `json:"marginx,omitempty"`
	MarginY                      float64 `json:"marginy,omitempty"`
	Align                        string  `json:"align,omitempty"`
	DisableOptimalOrderHeuristic bool    `json:"disableOptimalOrderHeuristic,omitempty"`
}

// Node describes one node. Width and Height are inputs; X and Y are filled
// in by layout. Parent nests the node inside a cluster node.
type Node struct {
	ID     string  `json:"id"`
	Label  string  `json:"label,omitempty"`
	Parent string  `json:"parent,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
}

// Edge describes one directed edge. Name disambiguates parallel edges.
// Points and the label coordinates are outputs.
type Edge struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Name        string   `json:"name,omitempty"`
	Label       string   `json:"label,omitempty"`
	MinLen      int      `json:"minlen,omitempty"`
	Weight      float64  `json:"weight,omitempty"`
	Width       float64  `json:"width,omitempty"`
	Height      float64  `json:"height,omitempty"`
	LabelPos    string   `json:"labelpos,omitempty"`
	LabelOffset float64  `json:"labeloffset,omitempty"`
	Points      []Point  `json:"points,omitempty"`
	LabelX      *float64 `json:"labelX,omitempty"`
	LabelY      *float64 `json:"labelY,omitempty"`
}

// Point is one edge waypoint.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ToGraph converts a document into a layout graph, validating node IDs and
// edge endpoints. Declaration order in the document becomes insertion
// order in the graph.
func ToGraph(doc Document) (*layout.Graph, error) {
	cfg := layout.DefaultConfig()
	applyOptions(cfg, doc.Options)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := layout.NewGraph(cfg)
	for _, n := range doc.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return nil, err
		}
		label := layout.NewNodeLabel()
		label.Label = n.Label
		label.Width = n.Width
		label.Height = n.Height
		label.X = n.X
		label.Y = n.Y
		g.SetNode(n.ID, label)
	}
	// Parents resolve after all nodes exist so declaration order inside
	// the document does not matter.
	for _, n := range doc.Nodes {
		if n.Parent == "" {
			continue
		}
		if !g.HasNode(n.Parent) {
			return nil, errors.New(errors.ErrCodeBadGraph, "node %q references unknown parent %q", n.ID, n.Parent)
		}
		if err := g.SetParent(n.ID, n.Parent); err != nil {
			return nil, errors.Wrap(errors.ErrCodeBadGraph, err, "nesting node %q under %q", n.ID, n.Parent)
		}
	}
	for _, e := range doc.Edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			return nil, errors.New(errors.ErrCodeBadGraph, "edge %s -> %s references an unknown node", e.From, e.To)
		}
		label := layout.NewEdgeLabel()
		label.Label = e.Label
		if e.MinLen > 0 {
			label.MinLen = e.MinLen
		}
		if e.Weight > 0 {
			label.Weight = e.Weight
		}
		label.Width = e.Width
		label.Height = e.Height
		if e.LabelPos != "" {
			label.LabelPos = e.LabelPos
		}
		if e.LabelOffset > 0 {
			label.LabelOffset = e.LabelOffset
		}
		for _, p := range e.Points {
			label.Points = append(label.Points, layout.Point{X: p.X, Y: p.Y})
		}
		if e.LabelX != nil && e.LabelY != nil {
			label.X = *e.LabelX
			label.Y = *e.LabelY
			label.HasXY = true
		}
		g.SetNamedEdge(e.From, e.To, e.Name, label)
	}
	g.Width = doc.Width
	g.Height = doc.Height
	return g, nil
}

// FromGraph converts a layout graph back into a document, preserving
// insertion order and carrying any computed geometry.
func FromGraph(g *layout.Graph) Document {
	doc := Document{
		Options: optionsFrom(g.Config),
		Width:   g.Width,
		Height:  g.Height,
	}
	for _, v := range g.Nodes() {
		n := g.NodeLabelOf(v)
		doc.Nodes = append(doc.Nodes, Node{
			ID:     v,
			Label:  n.Label,
			Parent: g.Parent(v),
			Width:  n.Width,
			Height: n.Height,
			X:      n.X,
			Y:      n.Y,
		})
	}
	for _, e := range g.Edges() {
		l := g.EdgeLabelOf(e)
		edge := Edge{
			From:        e.V,
			To:          e.W,
			Name:        e.Name,
			Label:       l.Label,
			MinLen:      l.MinLen,
			Weight:      l.Weight,
			Width:       l.Width,
			Height:      l.Height,
			LabelPos:    l.LabelPos,
			LabelOffset: l.LabelOffset,
		}
		for _, p := range l.Points {
			edge.Points = append(edge.Points, Point{X: p.X, Y: p.Y})
		}
		if l.HasXY {
			x, y := l.X, l.Y
			edge.LabelX = &x
			edge.LabelY = &y
		}
		doc.Edges = append(doc.Edges, edge)
	}
	return doc
}

func applyOptions(cfg *layout.Config, opts *Options) {
	if opts == nil {
		return
	}
	if opts.RankDir != "" {
		cfg.RankDir = opts.RankDir
	}
	if opts.Ranker != "" {
		cfg.Ranker = opts.Ranker
	}
	if opts.Acyclicer != "" {
		cfg.Acyclicer = opts.Acyclicer
	}
	if opts.NodeSep > 0 {
		cfg.NodeSep = opts.NodeSep
	}
	if opts.EdgeSep > 0 {
		cfg.EdgeSep = opts.EdgeSep
	}
	if opts.RankSep > 0 {
		cfg.RankSep = opts.RankSep
	}
	if opts.MarginX > 0 {
		cfg.MarginX = opts.MarginX
	}
	if opts.MarginY > 0 {
		cfg.MarginY = opts.MarginY
	}
	if opts.Align != "" {
		cfg.Align = opts.Align
	}
	cfg.DisableOptimalOrderHeuristic = opts.DisableOptimalOrderHeuristic
}

func optionsFrom(cfg *layout.Config) *Options {
	return &Options{
		RankDir:                      cfg.RankDir,
		Ranker:                       cfg.Ranker,
		Acyclicer:                    cfg.Acyclicer,
		NodeSep:                      cfg.NodeSep,
		EdgeSep:                      cfg.EdgeSep,
		RankSep:                      cfg.RankSep,
		MarginX:                      cfg.MarginX,
		MarginY:                      cfg.MarginY,
		Align:                        cfg.Align,
		DisableOptimalOrderHeuristic: cfg.DisableOptimalOrderHeuristic,
	}
}
