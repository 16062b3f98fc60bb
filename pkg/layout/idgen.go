package layout

import "strconv"

// IDGen produces identifiers for the synthetic nodes a layout run creates.
// Each run owns its own generator, so concurrent layouts never contend and
// a graph laid out twice gets the same dummy names both times.
type IDGen struct {
	next int
}

// NewIDGen returns a generator starting at 1.
func NewIDGen() *IDGen {
	return &IDGen{next: 1}
}

// Next returns a fresh identifier of the form "_<prefix><n>" that does not
// collide with any node already in the graph.
func (id *IDGen) Next(g *Graph, prefix string) string {
	for {
		v := "_" + prefix + strconv.Itoa(id.next)
		id.next++
		if !g.HasNode(v) {
			return v
		}
	}
}

// NextName returns a fresh "_<prefix><n>" without checking the graph.
// Edge names share no namespace with nodes, so no collision check is needed.
func (id *IDGen) NextName(prefix string) string {
	v := "_" + prefix + strconv.Itoa(id.next)
	id.next++
	return v
}

// AddDummyNode inserts a synthetic node of the given kind and returns its
// generated name.
func AddDummyNode(g *Graph, ids *IDGen, kind DummyKind, label *NodeLabel, prefix string) string {
	if label == nil {
		label = NewNodeLabel()
	}
	label.Dummy = kind
	v := ids.Next(g, prefix)
	g.SetNode(v, label)
	return v
}
