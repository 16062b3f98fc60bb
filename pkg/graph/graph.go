package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.SetNode] and [Graph.SetParent]
	// when the node ID is empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrUnknownNode is returned by [Graph.SetParent] when either the node
	// or the requested parent does not exist in the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrNotCompound is returned by [Graph.SetParent] when the graph was not
	// created with the Compound option. Parent/child relationships are only
	// tracked for compound graphs.
	ErrNotCompound = errors.New("graph is not compound")

	// ErrAncestryCycle is returned by [Graph.SetParent] when the requested
	// parent is the node itself or one of its descendants. Cluster nesting
	// must form a forest.
	ErrAncestryCycle = errors.New("parent would create an ancestry cycle")
)

// EdgeKey identifies a single edge. V is the tail node, W is the head node,
// and Name disambiguates parallel edges in a multigraph. For non-multigraphs
// Name is always empty.
type EdgeKey struct {
	V    string
	W    string
	Name string
}

// Options configures a new graph. The zero value describes a directed,
// non-compound graph without parallel edges.
type Options struct {
	Directed   bool // Edges have distinct tails and heads
	Multigraph bool // Parallel edges distinguished by name are allowed
	Compound   bool // Nodes may be nested inside cluster nodes
}

// Graph is a mutable graph with arbitrary node and edge labels.
// Nodes and edges iterate in insertion order, which keeps every algorithm
// built on top of it deterministic for a given construction sequence.
//
// The zero value is not usable - use New to create a graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph[N, E any] struct {
	opts  Options
	label any

	nodes     map[string]N
	nodeOrder []string

	edges     map[EdgeKey]E
	edgeOrder []EdgeKey
	out       map[string][]EdgeKey
	in        map[string][]EdgeKey

	parent   map[string]string
	children map[string][]string

	defaultNode func() N
	defaultEdge func(k EdgeKey) E
}

// New creates an empty graph with the given options.
func New[N, E any](opts Options) *Graph[N, E] {
	return &Graph[N, E]{
		opts:     opts,
		nodes:    make(map[string]N),
		edges:    make(map[EdgeKey]E),
		out:      make(map[string][]EdgeKey),
		in:       make(map[string][]EdgeKey),
		parent:   make(map[string]string),
		children: make(map[string][]string),
	}
}

// IsDirected reports whether edges distinguish tail from head.
func (g *Graph[N, E]) IsDirected() bool { return g.opts.Directed }

// IsMultigraph reports whether parallel named edges are allowed.
func (g *Graph[N, E]) IsMultigraph() bool { return g.opts.Multigraph }

// IsCompound reports whether parent/child nesting is tracked.
func (g *Graph[N, E]) IsCompound() bool { return g.opts.Compound }

// SetGraph attaches a graph-level label.
func (g *Graph[N, E]) SetGraph(label any) { g.label = label }

// GraphLabel returns the graph-level label, or nil if none was set.
func (g *Graph[N, E]) GraphLabel() any { return g.label }

// SetDefaultNodeLabel registers a factory used when a node is created
// without an explicit label (for example by SetEdge on a missing endpoint).
func (g *Graph[N, E]) SetDefaultNodeLabel(fn func() N) { g.defaultNode = fn }

// SetDefaultEdgeLabel registers a factory used when an edge is created
// without an explicit label.
func (g *Graph[N, E]) SetDefaultEdgeLabel(fn func(k EdgeKey) E) { g.defaultEdge = fn }

// =============================================================================
// Nodes
// =============================================================================

// SetNode inserts the node with the given label, or replaces the label if the
// node already exists. Returns ErrInvalidNodeID for an empty ID.
func (g *Graph[N, E]) SetNode(v string, label N) error {
	if v == "" {
		return ErrInvalidNodeID
	}
	if _, ok := g.nodes[v]; !ok {
		g.nodeOrder = append(g.nodeOrder, v)
	}
	g.nodes[v] = label
	return nil
}

// EnsureNode inserts the node with the default label if it does not exist yet.
// Existing nodes are left untouched.
func (g *Graph[N, E]) EnsureNode(v string) error {
	if v == "" {
		return ErrInvalidNodeID
	}
	if _, ok := g.nodes[v]; ok {
		return nil
	}
	var label N
	if g.defaultNode != nil {
		label = g.defaultNode()
	}
	return g.SetNode(v, label)
}

// Node returns the label of the node and true, or the zero label and false
// if the node does not exist.
func (g *Graph[N, E]) Node(v string) (N, bool) {
	n, ok := g.nodes[v]
	return n, ok
}

// HasNode reports whether the node exists.
func (g *Graph[N, E]) HasNode(v string) bool {
	_, ok := g.nodes[v]
	return ok
}

// Nodes returns all node IDs in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph[N, E]) Nodes() []string { return slices.Clone(g.nodeOrder) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// RemoveNode deletes the node, every edge incident to it, and its
// parent/child bookkeeping. Children of a removed cluster are reparented to
// the cluster's own parent so the nesting forest stays intact.
// Removing a node that does not exist is a no-op.
func (g *Graph[N, E]) RemoveNode(v string) {
	if _, ok := g.nodes[v]; !ok {
		return
	}
	for _, k := range slices.Clone(g.out[v]) {
		g.removeEdgeKey(k)
	}
	for _, k := range slices.Clone(g.in[v]) {
		g.removeEdgeKey(k)
	}
	delete(g.out, v)
	delete(g.in, v)
	if g.opts.Compound {
		p := g.parent[v]
		for _, c := range g.children[v] {
			g.parent[c] = p
			if p != "" {
				g.children[p] = append(g.children[p], c)
			}
		}
		if p != "" {
			g.children[p] = slices.DeleteFunc(g.children[p], func(s string) bool { return s == v })
		}
		delete(g.parent, v)
		delete(g.children, v)
	}
	delete(g.nodes, v)
	g.nodeOrder = slices.DeleteFunc(g.nodeOrder, func(s string) bool { return s == v })
}

// =============================================================================
// Compound structure
// =============================================================================

// SetParent nests node v inside the cluster parent. An empty parent moves the
// node back to the root. Returns ErrNotCompound on a flat graph,
// ErrUnknownNode when either node is missing, and ErrAncestryCycle when the
// parent is v itself or one of its descendants.
func (g *Graph[N, E]) SetParent(v, parent string) error {
	if !g.opts.Compound {
		return ErrNotCompound
	}
	if !g.HasNode(v) {
		return ErrUnknownNode
	}
	if parent != "" {
		if !g.HasNode(parent) {
			return ErrUnknownNode
		}
		for a := parent; a != ""; a = g.parent[a] {
			if a == v {
				return ErrAncestryCycle
			}
		}
	}
	if old := g.parent[v]; old != "" {
		g.children[old] = slices.DeleteFunc(g.children[old], func(s string) bool { return s == v })
	}
	if parent == "" {
		delete(g.parent, v)
		return nil
	}
	g.parent[v] = parent
	g.children[parent] = append(g.children[parent], v)
	return nil
}

// Parent returns the cluster containing v, or "" for nodes at the root
// (and for non-compound graphs).
func (g *Graph[N, E]) Parent(v string) string { return g.parent[v] }

// Children returns the direct children of the cluster v in the order they
// were nested. Children("") returns all root-level nodes in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph[N, E]) Children(v string) []string {
	if v == "" {
		if !g.opts.Compound {
			return g.Nodes()
		}
		var roots []string
		for _, id := range g.nodeOrder {
			if g.parent[id] == "" {
				roots = append(roots, id)
			}
		}
		return roots
	}
	return slices.Clone(g.children[v])
}

// =============================================================================
// Edges
// =============================================================================

// canonical normalizes an edge key. Undirected graphs store each edge under
// the lexically smaller endpoint so lookups are symmetric.
func (g *Graph[N, E]) canonical(k EdgeKey) EdgeKey {
	if !g.opts.Directed && k.V > k.W {
		k.V, k.W = k.W, k.V
	}
	if !g.opts.Multigraph {
		k.Name = ""
	}
	return k
}

// SetEdge inserts the unnamed edge v->w with the given label, or replaces the
// label if the edge exists. Missing endpoints are created with the default
// node label.
func (g *Graph[N, E]) SetEdge(v, w string, label E) error {
	return g.SetNamedEdge(v, w, "", label)
}

// SetNamedEdge inserts the edge v->w with a disambiguating name for parallel
// edges. On non-multigraphs the name is ignored. Missing endpoints are
// created with the default node label.
func (g *Graph[N, E]) SetNamedEdge(v, w, name string, label E) error {
	if err := g.EnsureNode(v); err != nil {
		return err
	}
	if err := g.EnsureNode(w); err != nil {
		return err
	}
	k := g.canonical(EdgeKey{V: v, W: w, Name: name})
	if _, ok := g.edges[k]; !ok {
		g.edgeOrder = append(g.edgeOrder, k)
		g.out[k.V] = append(g.out[k.V], k)
		g.in[k.W] = append(g.in[k.W], k)
	}
	g.edges[k] = label
	return nil
}

// EnsureEdge inserts the edge with the default edge label if it does not
// exist yet. Existing edges keep their label.
func (g *Graph[N, E]) EnsureEdge(v, w, name string) error {
	k := g.canonical(EdgeKey{V: v, W: w, Name: name})
	if _, ok := g.edges[k]; ok {
		return nil
	}
	var label E
	if g.defaultEdge != nil {
		label = g.defaultEdge(k)
	}
	return g.SetNamedEdge(v, w, name, label)
}

// Edge returns the label of the edge and true, or the zero label and false
// if the edge does not exist.
func (g *Graph[N, E]) Edge(k EdgeKey) (E, bool) {
	e, ok := g.edges[g.canonical(k)]
	return e, ok
}

// HasEdge reports whether the edge exists.
func (g *Graph[N, E]) HasEdge(k EdgeKey) bool {
	_, ok := g.edges[g.canonical(k)]
	return ok
}

// Edges returns all edge keys in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph[N, E]) Edges() []EdgeKey { return slices.Clone(g.edgeOrder) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

// RemoveEdge deletes the edge if it exists. Removing a missing edge is a
// no-op.
func (g *Graph[N, E]) RemoveEdge(k EdgeKey) {
	g.removeEdgeKey(g.canonical(k))
}

func (g *Graph[N, E]) removeEdgeKey(k EdgeKey) {
	if _, ok := g.edges[k]; !ok {
		return
	}
	delete(g.edges, k)
	g.edgeOrder = slices.DeleteFunc(g.edgeOrder, func(e EdgeKey) bool { return e == k })
	g.out[k.V] = slices.DeleteFunc(g.out[k.V], func(e EdgeKey) bool { return e == k })
	g.in[k.W] = slices.DeleteFunc(g.in[k.W], func(e EdgeKey) bool { return e == k })
}

// OutEdges returns the edges leaving v in insertion order.
func (g *Graph[N, E]) OutEdges(v string) []EdgeKey { return slices.Clone(g.out[v]) }

// InEdges returns the edges entering w in insertion order.
func (g *Graph[N, E]) InEdges(w string) []EdgeKey { return slices.Clone(g.in[w]) }

// NodeEdges returns every edge incident to v, outgoing first.
func (g *Graph[N, E]) NodeEdges(v string) []EdgeKey {
	edges := slices.Clone(g.out[v])
	for _, k := range g.in[v] {
		if k.V != k.W { // self loops already counted on the out side
			edges = append(edges, k)
		}
	}
	return edges
}

// Successors returns the distinct heads of edges leaving v, in first-edge
// order. Parallel edges contribute their head once.
func (g *Graph[N, E]) Successors(v string) []string {
	return distinctEnds(g.out[v], func(k EdgeKey) string { return k.W })
}

// Predecessors returns the distinct tails of edges entering v, in first-edge
// order. Parallel edges contribute their tail once.
func (g *Graph[N, E]) Predecessors(v string) []string {
	return distinctEnds(g.in[v], func(k EdgeKey) string { return k.V })
}

// Neighbors returns the distinct nodes adjacent to v, predecessors first.
func (g *Graph[N, E]) Neighbors(v string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, u := range g.Predecessors(v) {
		if !seen[u] {
			seen[u] = true
			result = append(result, u)
		}
	}
	for _, u := range g.Successors(v) {
		if !seen[u] {
			seen[u] = true
			result = append(result, u)
		}
	}
	return result
}

func distinctEnds(keys []EdgeKey, end func(EdgeKey) string) []string {
	seen := make(map[string]bool, len(keys))
	var result []string
	for _, k := range keys {
		if id := end(k); !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}

// Sources returns nodes with no incoming edges, in insertion order.
func (g *Graph[N, E]) Sources() []string {
	var sources []string
	for _, v := range g.nodeOrder {
		if len(g.in[v]) == 0 {
			sources = append(sources, v)
		}
	}
	return sources
}

// Sinks returns nodes with no outgoing edges, in insertion order.
func (g *Graph[N, E]) Sinks() []string {
	var sinks []string
	for _, v := range g.nodeOrder {
		if len(g.out[v]) == 0 {
			sinks = append(sinks, v)
		}
	}
	return sinks
}
