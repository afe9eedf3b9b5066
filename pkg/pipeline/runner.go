package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/observability"
	"github.com/matzehuels/frontier/pkg/report"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete analyze → render pipeline.
func (r *Runner) Execute(ctx context.Context, set *dominance.Set, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Analyze
	analyzeStart := time.Now()
	a, err := r.Analyze(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	result.Analysis = a
	result.Stats.AnalyzeTime = time.Since(analyzeStart)
	result.Stats.Alternatives = set.Len()
	result.Stats.Criteria = set.Dim()
	result.Stats.ParetoOptimal = len(a.ParetoOptimal())
	result.Stats.SlaterOptimal = len(a.SlaterOptimal())

	r.Logger.Info("classified alternatives",
		"alternatives", result.Stats.Alternatives,
		"pareto", result.Stats.ParetoOptimal,
		"slater", result.Stats.SlaterOptimal,
		"duration", result.Stats.AnalyzeTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, a, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Artifacts = len(artifacts)

	r.Logger.Info("rendered outputs",
		"charts", len(opts.Charts),
		"formats", opts.Formats,
		"artifacts", len(artifacts),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Analyze classifies every alternative of set under both rules.
func (r *Runner) Analyze(ctx context.Context, set *dominance.Set) (*dominance.Analysis, error) {
	hooks := observability.Pipeline()
	hooks.OnAnalyzeStart(ctx, set.Len())
	start := time.Now()

	if err := ctx.Err(); err != nil {
		hooks.OnAnalyzeComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}
	a := dominance.Analyze(set)
	hooks.OnAnalyzeComplete(ctx, len(a.ParetoOptimal()), len(a.SlaterOptimal()), time.Since(start), nil)
	return a, nil
}

// Render generates every requested chart in every requested format, plus the
// JSON report when JSON was requested. Combinations a chart cannot produce
// (DOT for scatter charts) are skipped. The context is checked between
// renderings.
func (r *Runner) Render(ctx context.Context, a *dominance.Analysis, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	artifacts := make(map[string][]byte)
	for _, chart := range opts.Charts {
		for _, format := range opts.Formats {
			if !Supports(chart, format) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			hooks.OnRenderStart(ctx, chart, format)
			start := time.Now()
			data, err := RenderChart(ctx, a, chart, format, opts)
			hooks.OnRenderComplete(ctx, chart, format, len(data), time.Since(start), err)
			if err != nil {
				return nil, err
			}
			key := ArtifactKey(chart, format)
			artifacts[key] = data
			opts.Logger.Debug("rendered chart", "artifact", key, "bytes", len(data))
		}
	}

	if opts.WantsFormat(FormatJSON) {
		data, err := report.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}
		artifacts[ReportArtifact] = data
	}
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
