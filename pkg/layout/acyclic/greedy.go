package acyclic

import (
	"github.com/strataviz/strata/pkg/graph"
	"github.com/strataviz/strata/pkg/layout"
)

// fasEntry is a node of the auxiliary graph used by the greedy heuristic,
// tracking the weight of its unprocessed in and out edges. Entries live in
// intrusive doubly linked bucket lists so moving one between buckets is
// constant time.
type fasEntry struct {
	v       string
	in, out float64

	prev, next *fasEntry
}

// fasList is a bucket of entries with sentinel-based linking.
type fasList struct {
	sentinel fasEntry
}

func newFasList() *fasList {
	l := &fasList{}
	l.sentinel.prev = &l.sentinel
	l.sentinel.next = &l.sentinel
	return l
}

func (l *fasList) enqueue(e *fasEntry) {
	if e.prev != nil {
		unlink(e)
	}
	e.next = l.sentinel.next
	e.prev = &l.sentinel
	l.sentinel.next.prev = e
	l.sentinel.next = e
}

func (l *fasList) dequeue() *fasEntry {
	e := l.sentinel.prev
	if e == &l.sentinel {
		return nil
	}
	unlink(e)
	return e
}

func unlink(e *fasEntry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
}

// greedyFAS computes a feedback arc set with the Eades-Lin-Smyth greedy
// heuristic. Nodes are repeatedly peeled off as sinks or sources; when
// neither exists, the node with the highest out-minus-in weight goes next
// and its remaining incoming edges join the arc set.
func greedyFAS(g *layout.Graph) []graph.EdgeKey {
	if g.NodeCount() <= 1 {
		return nil
	}
	state := buildFasState(g)
	arcs := doGreedyFAS(state)

	// Map each chosen pair back to the real multigraph edges.
	var fas []graph.EdgeKey
	for _, pair := range arcs {
		for _, e := range g.OutEdges(pair.v) {
			if e.W == pair.w {
				fas = append(fas, e)
			}
		}
	}
	return fas
}

type fasPair struct{ v, w string }

type fasState struct {
	g       *graph.Graph[*fasEntry, float64]
	buckets []*fasList
	zeroIdx int
}

func buildFasState(g *layout.Graph) *fasState {
	fasGraph := graph.New[*fasEntry, float64](graph.Options{Directed: true})

	var maxIn, maxOut float64
	for _, v := range g.Nodes() {
		fasGraph.SetNode(v, &fasEntry{v: v})
	}
	for _, e := range g.Edges() {
		if e.V == e.W {
			continue
		}
		prev, _ := fasGraph.Edge(graph.EdgeKey{V: e.V, W: e.W})
		weight := g.EdgeLabelOf(e).Weight
		fasGraph.SetEdge(e.V, e.W, prev+weight)

		vEntry, _ := fasGraph.Node(e.V)
		wEntry, _ := fasGraph.Node(e.W)
		vEntry.out += weight
		wEntry.in += weight
		maxOut = max(maxOut, vEntry.out)
		maxIn = max(maxIn, wEntry.in)
	}

	buckets := make([]*fasList, int(maxOut+maxIn)+3)
	for i := range buckets {
		buckets[i] = newFasList()
	}
	state := &fasState{g: fasGraph, buckets: buckets, zeroIdx: int(maxIn) + 1}
	for _, v := range fasGraph.Nodes() {
		entry, _ := fasGraph.Node(v)
		state.assignBucket(entry)
	}
	return state
}

func (s *fasState) assignBucket(entry *fasEntry) {
	switch {
	case entry.out == 0:
		s.buckets[0].enqueue(entry)
	case entry.in == 0:
		s.buckets[len(s.buckets)-1].enqueue(entry)
	default:
		s.buckets[int(entry.out-entry.in)+s.zeroIdx].enqueue(entry)
	}
}

func doGreedyFAS(s *fasState) []fasPair {
	var results []fasPair
	sinks := s.buckets[0]
	sources := s.buckets[len(s.buckets)-1]

	for s.g.NodeCount() > 0 {
		for entry := sinks.dequeue(); entry != nil; entry = sinks.dequeue() {
			s.removeEntry(entry, false)
		}
		for entry := sources.dequeue(); entry != nil; entry = sources.dequeue() {
			s.removeEntry(entry, false)
		}
		if s.g.NodeCount() > 0 {
			for i := len(s.buckets) - 2; i > 0; i-- {
				if entry := s.buckets[i].dequeue(); entry != nil {
					results = append(results, s.removeEntry(entry, true)...)
					break
				}
			}
		}
	}
	return results
}

// removeEntry deletes the node from the auxiliary graph, updating the
// bucket position of every neighbor. When collectPredecessors is set the
// incoming pairs are returned as feedback arcs.
func (s *fasState) removeEntry(entry *fasEntry, collectPredecessors bool) []fasPair {
	var results []fasPair
	for _, e := range s.g.InEdges(entry.v) {
		weight, _ := s.g.Edge(e)
		if collectPredecessors {
			results = append(results, fasPair{v: e.V, w: e.W})
		}
		uEntry, _ := s.g.Node(e.V)
		uEntry.out -= weight
		s.assignBucket(uEntry)
	}
	for _, e := range s.g.OutEdges(entry.v) {
		weight, _ := s.g.Edge(e)
		wEntry, _ := s.g.Node(e.W)
		wEntry.in -= weight
		s.assignBucket(wEntry)
	}
	if entry.prev != nil {
		unlink(entry)
	}
	s.g.RemoveNode(entry.v)
	return results
}
