// Package pkg provides the core libraries for strata graph layout.
//
// # Overview
//
// Strata computes layered (hierarchical) drawings of directed graphs in the
// style pioneered by Sugiyama and refined by Gansner et al.: nodes are
// assigned to ranks, ranks are ordered to reduce edge crossings, and
// coordinates are assigned so edges flow in one direction. The pkg directory
// is organized into three main areas:
//
//  1. [graph] - Generic directed multigraph with compound (cluster) support
//  2. [layout] - The layout algorithms (ranking, ordering, positioning)
//  3. [pipeline] - Orchestration of the full layout pass
//
// # Architecture
//
// The typical data flow through strata:
//
//	graph.json input
//	         ↓
//	    [graphio] package (decode into a layout graph)
//	         ↓
//	    [pipeline] package (run the layout stages)
//	         ↓
//	    [render/svg] package (optional SVG drawing)
//	         ↓
//	    layout.json / SVG output
//
// # Quick Start
//
// Lay out a small graph and write the result:
//
//	import (
//	    "context"
//	    "github.com/strataviz/strata/pkg/graphio"
//	    "github.com/strataviz/strata/pkg/layout"
//	    "github.com/strataviz/strata/pkg/pipeline"
//	)
//
//	g := layout.NewGraph()
//	g.SetNode("a", &layout.NodeLabel{Width: 60, Height: 40})
//	g.SetNode("b", &layout.NodeLabel{Width: 60, Height: 40})
//	g.SetEdge("a", "b", layout.NewEdgeLabel())
//
//	runner := pipeline.NewRunner(nil, nil)
//	if err := runner.Layout(context.Background(), g); err != nil {
//	    return err
//	}
//	graphio.WriteFile(g, "layout.json")
//
// # Main Packages
//
// [graph] - Generic directed multigraph parameterized over node and edge
// label types. Supports named multi-edges, compound parent/child nesting,
// and default label factories.
//
// [layout] - Graph types and the individual layout transforms: cycle
// removal ([layout/acyclic]), rank assignment ([layout/rank]), crossing
// reduction ([layout/order]), coordinate assignment ([layout/position]),
// plus edge normalization, cluster borders, self loops, and coordinate
// system fixups.
//
// [pipeline] - The Runner that sequences every stage of a layout pass and
// reports progress through structured logging and optional tracing hooks.
//
// [graphio] - JSON serialization of graphs and finished layouts.
//
// [render/svg] - A small SVG renderer for inspecting layout results.
//
// [errors] - Coded errors shared by all packages.
//
// [observability] - Tracer hooks for instrumenting pipeline runs.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/layout/...          # Specific package
//	go test -run Example              # Examples only
//
// [graph]: https://pkg.go.dev/github.com/strataviz/strata/pkg/graph
// [layout]: https://pkg.go.dev/github.com/strataviz/strata/pkg/layout
// [layout/acyclic]: https://pkg.go.dev/github.com/strataviz/strata/pkg/layout/acyclic
// [layout/rank]: https://pkg.go.dev/github.com/strataviz/strata/pkg/layout/rank
// [layout/order]: https://pkg.go.dev/github.com/strataviz/strata/pkg/layout/order
// [layout/position]: https://pkg.go.dev/github.com/strataviz/strata/pkg/layout/position
// [pipeline]: https://pkg.go.dev/github.com/strataviz/strata/pkg/pipeline
// [graphio]: https://pkg.go.dev/github.com/strataviz/strata/pkg/graphio
// [render/svg]: https://pkg.go.dev/github.com/strataviz/strata/pkg/render/svg
// [errors]: https://pkg.go.dev/github.com/strataviz/strata/pkg/errors
// [observability]: https://pkg.go.dev/github.com/strataviz/strata/pkg/observability
package pkg
