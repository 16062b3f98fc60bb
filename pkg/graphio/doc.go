// Package graphio reads and writes the JSON interchange format for layout
// graphs.
//
// # Format
//
// A document lists options, nodes, and edges. Node declaration order is
// preserved through a round trip, which matters because the layout pipeline
// is deterministic with respect to insertion order. After a layout run the
// exported document additionally carries node coordinates, edge waypoints,
// label positions, and the drawing size.
//
// # Usage
//
//	g, err := graphio.ReadFile("graph.json")
//	if err != nil {
//		return err
//	}
//	// ... run layout ...
//	return graphio.WriteFile(g, "laid-out.json")
package graphio
