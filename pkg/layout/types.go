package layout

import (
	"github.com/strataviz/strata/pkg/graph"
)

// NoRank marks a rank, min-rank, or max-rank that has not been assigned yet.
// Layer indices produced by the rankers are always small non-negative
// integers after normalization, so the sentinel never collides.
const NoRank = -1 << 30

// DummyKind classifies synthetic nodes inserted by the pipeline.
// Real nodes from the input graph have DummyNone.
type DummyKind string

const (
	DummyNone      DummyKind = ""
	DummyEdge      DummyKind = "edge"       // Chain node breaking a multi-rank edge
	DummyEdgeLabel DummyKind = "edge-label" // Chain node reserving space for an edge label
	DummyEdgeProxy DummyKind = "edge-proxy" // Placeholder tracking an edge label's rank
	DummyBorder    DummyKind = "border"     // Cluster border segment
	DummySelfEdge  DummyKind = "selfedge"   // Placeholder reserving space for a self loop
	DummyRoot      DummyKind = "root"       // Synthetic root of the nesting graph
)

// BorderType identifies which side of a cluster a border node belongs to.
type BorderType string

const (
	BorderNone   BorderType = ""
	BorderTop    BorderType = "borderTop"
	BorderBottom BorderType = "borderBottom"
	BorderLeft   BorderType = "borderLeft"
	BorderRight  BorderType = "borderRight"
)

// Point is a position in the drawing plane.
type Point struct {
	X float64
	Y float64
}

// SelfEdge stashes a self loop removed before layout so it can be restored
// and routed once its node has a position.
type SelfEdge struct {
	Key   graph.EdgeKey
	Label *EdgeLabel
}

// NodeLabel carries everything the pipeline knows about a node. Callers set
// Width and Height before layout; the pipeline fills in X, Y, Rank, and
// Order. The remaining fields are internal bookkeeping for synthetic nodes
// and clusters.
type NodeLabel struct {
	// Label is the display text. The pipeline never reads it; it rides
	// along for serialization and rendering.
	Label string

	Width  float64
	Height float64
	X      float64
	Y      float64

	Rank  int
	Order int

	// Dummy and BorderType classify synthetic nodes.
	Dummy      DummyKind
	BorderType BorderType

	// Border node bookkeeping for clusters. BorderLeft and BorderRight map
	// each rank a cluster spans to its border segment on that side.
	BorderTop    string
	BorderBottom string
	BorderLeft   map[int]string
	BorderRight  map[int]string

	// MinRank and MaxRank bound the ranks a cluster spans.
	MinRank int
	MaxRank int

	// Edge dummies remember the edge they subdivide.
	Edge    *EdgeLabel
	EdgeObj *graph.EdgeKey

	// LabelPos is carried by edge-label dummies so positioning can offset
	// the label left or right of the edge.
	LabelPos string

	// SelfEdges holds loops removed from the graph until ordering is done.
	SelfEdges []SelfEdge
}

// NewNodeLabel returns a node label with unset ranks.
func NewNodeLabel() *NodeLabel {
	return &NodeLabel{Rank: NoRank, MinRank: NoRank, MaxRank: NoRank}
}

// EdgeLabel carries everything the pipeline knows about an edge. Callers may
// set MinLen, Weight, label dimensions, and LabelPos before layout; the
// pipeline fills in Points and the label position.
type EdgeLabel struct {
	// Label is the display text. Set Width and Height to reserve room
	// for it in the drawing.
	Label string

	// MinLen is the minimum number of ranks the edge must span.
	MinLen int
	// Weight biases ranking and crossing reduction toward keeping this
	// edge short and straight.
	Weight float64

	// Label box dimensions. Zero means the edge has no label.
	Width  float64
	Height float64

	// LabelPos places the label left of, centered on, or right of the edge
	// ("l", "c", "r"). LabelOffset is the gap used for "l" and "r".
	LabelPos    string
	LabelOffset float64

	// X and Y locate the label center after layout. HasXY records whether
	// they were assigned.
	X     float64
	Y     float64
	HasXY bool

	// Points traces the edge from tail boundary to head boundary.
	Points []Point

	// LabelRank is the rank reserved for the label dummy, or NoRank.
	LabelRank int

	// Reversed edges were flipped to break cycles. ForwardName preserves
	// the original multigraph name across the reversal.
	Reversed    bool
	ForwardName string

	// NestingEdge marks structural edges added for cluster containment.
	NestingEdge bool
}

// NewEdgeLabel returns an edge label with the default minimum length and
// weight.
func NewEdgeLabel() *EdgeLabel {
	return &EdgeLabel{MinLen: 1, Weight: 1, LabelOffset: 10, LabelPos: "r", LabelRank: NoRank}
}

// Graph couples the generic graph structure with layout configuration.
// All pipeline stages operate on this type. Node and edge labels are held
// by pointer, so derived graphs built from the same labels observe each
// other's mutations.
type Graph struct {
	*graph.Graph[*NodeLabel, *EdgeLabel]
	Config *Config

	// NestingRoot names the synthetic root node while the nesting
	// transform is active, empty otherwise.
	NestingRoot string

	// DummyChains records the first dummy of every subdivided edge so the
	// chains can be reparented and later collapsed back into edge points.
	DummyChains []string

	// Width and Height give the extent of the finished drawing including
	// margins. They are set by the final translation pass.
	Width  float64
	Height float64
}

// NewGraph creates an empty compound multigraph ready for layout.
// A nil config is replaced with defaults.
func NewGraph(cfg *Config) *Graph {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	inner := graph.New[*NodeLabel, *EdgeLabel](graph.Options{
		Directed:   true,
		Multigraph: true,
		Compound:   true,
	})
	inner.SetDefaultNodeLabel(func() *NodeLabel { return NewNodeLabel() })
	inner.SetDefaultEdgeLabel(func(graph.EdgeKey) *EdgeLabel { return NewEdgeLabel() })
	return &Graph{Graph: inner, Config: cfg}
}

// NodeLabelOf returns the label pointer for v, or nil if the node does not
// exist. Pipeline stages use this when absence would indicate a bug.
func (g *Graph) NodeLabelOf(v string) *NodeLabel {
	label, _ := g.Node(v)
	return label
}

// EdgeLabelOf returns the label pointer for the edge, or nil if it does not
// exist.
func (g *Graph) EdgeLabelOf(k graph.EdgeKey) *EdgeLabel {
	label, _ := g.Edge(k)
	return label
}
