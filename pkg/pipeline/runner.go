package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/strataviz/strata/pkg/errors"
	"github.com/strataviz/strata/pkg/layout"
	"github.com/strataviz/strata/pkg/layout/acyclic"
	"github.com/strataviz/strata/pkg/layout/order"
	"github.com/strataviz/strata/pkg/layout/position"
	"github.com/strataviz/strata/pkg/layout/rank"
	"github.com/strataviz/strata/pkg/observability"
)

// Runner executes the layout pipeline over a graph. It is stateless apart
// from the logger and tracer, so one Runner can serve concurrent layouts of
// different graphs. A single graph must never be laid out concurrently; the
// pipeline mutates it in place and owns it for the duration of the run.
type Runner struct {
	Logger *log.Logger
	Tracer observability.Tracer
}

// NewRunner creates a runner. A nil logger falls back to the default logger
// and a nil tracer disables tracing.
func NewRunner(logger *log.Logger, tracer observability.Tracer) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if tracer == nil {
		tracer = observability.NoopTracer{}
	}
	return &Runner{Logger: logger, Tracer: tracer}
}

// Layout runs the full pipeline: cycle removal, ranking, normalization,
// ordering, and positioning. On return every node has x/y coordinates,
// every edge has its waypoints, and the graph carries its total size.
//
// The context is checked between stages; a canceled context aborts the run
// with an ErrCodeCanceled error and leaves the graph in an intermediate
// state that must be discarded.
func (r *Runner) Layout(ctx context.Context, g *layout.Graph) (err error) {
	if err := g.Config.Validate(); err != nil {
		return err
	}
	// The pipeline mutates spacing values while running.
	g.Config = g.Config.Clone()

	start := time.Now()
	r.Tracer.LayoutStart(ctx, g.NodeCount(), g.EdgeCount())
	defer func() {
		r.Tracer.LayoutComplete(ctx, time.Since(start), err)
	}()

	ids := layout.NewIDGen()

	stages := []struct {
		name string
		fn   func()
	}{
		{name: "make-space-for-edge-labels", fn: func() { layout.MakeSpaceForEdgeLabels(g) }},
		{name: "remove-self-edges", fn: func() { layout.RemoveSelfEdges(g) }},
		{name: "acyclic", fn: func() { acyclic.Run(g, ids) }},
		{name: "nesting", fn: func() { layout.RunNesting(g, ids) }},
		{name: "rank", fn: func() { rank.Run(layout.AsNonCompoundGraph(g)) }},
		{name: "inject-edge-label-proxies", fn: func() { layout.InjectEdgeLabelProxies(g, ids) }},
		{name: "remove-empty-ranks", fn: func() { layout.RemoveEmptyRanks(g) }},
		{name: "nesting-cleanup", fn: func() { layout.CleanupNesting(g) }},
		{name: "normalize-ranks", fn: func() { layout.NormalizeRanks(g) }},
		{name: "remove-edge-label-proxies", fn: func() { layout.RemoveEdgeLabelProxies(g) }},
		{name: "assign-rank-span", fn: func() { layout.AssignRankMinMax(g) }},
		{name: "normalize-edges", fn: func() { layout.NormalizeEdges(g, ids) }},
		{name: "parent-dummy-chains", fn: func() { layout.AssignDummyChainParents(g) }},
		{name: "border-segments", fn: func() { layout.AddBorderSegments(g, ids) }},
		{name: "order", fn: func() { order.Run(g) }},
		{name: "adjust-coordinate-system", fn: func() { layout.AdjustCoordinateSystem(g) }},
		{name: "insert-self-edges", fn: func() { layout.InsertSelfEdges(g, ids) }},
		{name: "position", fn: func() { position.Run(g) }},
		{name: "position-self-edges", fn: func() { layout.PositionSelfEdges(g) }},
		{name: "remove-border-nodes", fn: func() { layout.RemoveBorderNodes(g) }},
		{name: "denormalize-edges", fn: func() { layout.DenormalizeEdges(g) }},
		{name: "fixup-edge-labels", fn: func() { layout.FixupEdgeLabelCoords(g) }},
		{name: "undo-coordinate-system", fn: func() { layout.UndoCoordinateSystem(g) }},
		{name: "translate", fn: func() { layout.Translate(g) }},
		{name: "node-intersects", fn: func() { layout.AssignNodeIntersects(g) }},
		{name: "acyclic-undo", fn: func() { acyclic.Undo(g) }},
	}

	for _, stage := range stages {
		if err := r.runStage(ctx, g, stage.name, stage.fn); err != nil {
			return err
		}
	}

	r.Logger.Info("layout complete",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"width", g.Width,
		"height", g.Height,
		"duration", time.Since(start))
	return nil
}

func (r *Runner) runStage(ctx context.Context, g *layout.Graph, name string, fn func()) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCanceled, err, "layout canceled before stage %s", name)
	}

	done := r.Tracer.StageStart(ctx, name, g.NodeCount(), g.EdgeCount())
	start := time.Now()
	fn()
	done(nil)

	r.Logger.Debug("stage complete", "stage", name, "duration", time.Since(start))
	return nil
}
