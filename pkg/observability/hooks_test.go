package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopTracerDoesNotPanic(t *testing.T) {
	ctx := context.Background()

	tr := NoopTracer{}
	tr.LayoutStart(ctx, 100, 200)
	done := tr.StageStart(ctx, "rank", 100, 200)
	done(nil)
	tr.LayoutComplete(ctx, time.Second, nil)
}

// recordingTracer captures events for assertions.
type recordingTracer struct {
	stages []string
	errs   []error
}

func (r *recordingTracer) LayoutStart(context.Context, int, int)                {}
func (r *recordingTracer) LayoutComplete(context.Context, time.Duration, error) {}
func (r *recordingTracer) StageStart(_ context.Context, stage string, _, _ int) func(error) {
	r.stages = append(r.stages, stage)
	return func(err error) { r.errs = append(r.errs, err) }
}

func TestTracerReceivesStageEvents(t *testing.T) {
	ctx := context.Background()
	tr := &recordingTracer{}

	done := tr.StageStart(ctx, "order", 10, 20)
	done(nil)
	done = tr.StageStart(ctx, "position", 10, 20)
	done(nil)

	if len(tr.stages) != 2 {
		t.Fatalf("recorded %d stages, want 2", len(tr.stages))
	}
	if tr.stages[0] != "order" || tr.stages[1] != "position" {
		t.Errorf("stages = %v, want [order position]", tr.stages)
	}
	if len(tr.errs) != 2 || tr.errs[0] != nil || tr.errs[1] != nil {
		t.Errorf("errs = %v, want two nils", tr.errs)
	}
}
