// Package pipeline orchestrates a complete layout pass.
//
// # Overview
//
// The [Runner] sequences every stage of a layered layout: cycle removal,
// cluster nesting, ranking, edge normalization, crossing reduction,
// coordinate assignment, and the final cleanup passes that restore the
// input graph's shape with positions filled in. Stages always run in the
// same order; stages that only matter for clusters or self loops are no-ops
// when the graph has none.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger, tracer)
//	if err := runner.Layout(ctx, g); err != nil {
//	    return err
//	}
//	// g now has X/Y on every node and Points on every edge.
//
// Layout mutates g in place. The context is checked between stages, so a
// canceled context stops the pass at the next stage boundary.
//
// # Observability
//
// Progress is reported two ways: debug-level structured logs per stage, and
// an optional observability.Tracer that receives start and completion
// events with node and edge counts. Both are nil-safe.
package pipeline
