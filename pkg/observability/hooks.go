// Package observability provides tracing hooks for the layout pipeline.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers construct a
// Tracer and inject it into the pipeline Runner to receive events about
// each stage of a layout run.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a Tracer interface for stage events
//   - Provide a no-op default implementation
//   - Let callers inject their own implementation per Runner
//
// Tracers are injected rather than registered globally, so two Runners in
// the same process can report to different backends (OpenTelemetry,
// Prometheus, plain timing logs, test recorders).
//
// # Usage
//
//	runner := pipeline.NewRunner(logger, &myTracer{})
//
// The pipeline calls the tracer around every stage:
//
//	done := tracer.StageStart(ctx, "rank", g.NodeCount(), g.EdgeCount())
//	// ... run the stage ...
//	done(err)
package observability

import (
	"context"
	"time"
)

// Tracer receives events from the layout pipeline. Implementations must be
// safe for use from multiple goroutines if the owning Runner is shared.
type Tracer interface {
	// LayoutStart is called once at the beginning of a layout run.
	LayoutStart(ctx context.Context, nodeCount, edgeCount int)

	// LayoutComplete is called once when the run finishes.
	LayoutComplete(ctx context.Context, duration time.Duration, err error)

	// StageStart is called before each pipeline stage. The returned
	// function is called when the stage completes, with the stage error
	// if any.
	StageStart(ctx context.Context, stage string, nodeCount, edgeCount int) func(err error)
}

// NoopTracer is a no-op implementation of Tracer.
type NoopTracer struct{}

func (NoopTracer) LayoutStart(context.Context, int, int) {}

func (NoopTracer) LayoutComplete(context.Context, time.Duration, error) {}

func (NoopTracer) StageStart(context.Context, string, int, int) func(error) {
	return func(error) {}
}
