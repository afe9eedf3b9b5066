package pipeline

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/frontier/pkg/dataset"
	"github.com/matzehuels/frontier/pkg/observability"
)

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
	pareto int
	slater int
}

func (h *recordingHooks) OnAnalyzeStart(_ context.Context, n int) {
	h.events = append(h.events, "analyze")
}

func (h *recordingHooks) OnAnalyzeComplete(_ context.Context, pareto, slater int, _ time.Duration, _ error) {
	h.pareto, h.slater = pareto, slater
}

func (h *recordingHooks) OnRenderStart(_ context.Context, chart, format string) {
	h.events = append(h.events, ArtifactKey(chart, format))
}

func TestExecuteCallsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	_, err := NewRunner(nil).Execute(context.Background(), dataset.Reference(), Options{
		Charts:  []string{ChartPareto, ChartRelations},
		Formats: []string{FormatSVG, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := []string{"analyze", "pareto.svg", "relations.svg", "relations.dot"}
	if !slices.Equal(hooks.events, want) {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
	if hooks.pareto != 2 || hooks.slater != 8 {
		t.Errorf("analyze counts = %d/%d, want 2/8", hooks.pareto, hooks.slater)
	}
}
