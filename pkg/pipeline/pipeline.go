// Package pipeline provides the analysis pipeline for frontier.
//
// This package implements the complete analyze → render pipeline used by the
// CLI. By centralizing this logic, every entry point classifies alternatives
// and names its artifacts the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Analyze: Classify every alternative under the Pareto and Slater rules
//  2. Render: Generate each requested chart in each requested format
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Charts:  []string{"pareto", "relations"},
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, set, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["pareto.svg"]
//
// Run individual stages:
//
//	// Analyze only
//	analysis, err := runner.Analyze(ctx, set)
//
//	// Render with an existing analysis
//	artifacts, err := runner.Render(ctx, analysis, opts)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

const (
	// DefaultWidth is the default chart width in pixels.
	DefaultWidth = 1000.0

	// DefaultHeight is the default chart height in pixels.
	DefaultHeight = 700.0

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// DefaultRule is the relation drawn in the relations chart.
	DefaultRule = "pareto"
)

// Chart names.
const (
	ChartAll        = "all"
	ChartPareto     = "pareto"
	ChartSlater     = "slater"
	ChartComparison = "comparison"
	ChartFrontier   = "frontier"
	ChartRelations  = "relations"
)

// Charts lists every chart in rendering order.
var Charts = []string{ChartAll, ChartPareto, ChartSlater, ChartComparison, ChartFrontier, ChartRelations}

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ReportArtifact is the artifact key of the JSON report.
const ReportArtifact = "report.json"

// chartFiles holds the file stem written for each chart.
var chartFiles = map[string]string{
	ChartAll:        "all_alternatives",
	ChartPareto:     "pareto_set",
	ChartSlater:     "slater_set",
	ChartComparison: "comparison",
	ChartFrontier:   "pareto_frontier",
	ChartRelations:  "dominance_relations",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	Charts  []string `json:"charts,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Relations chart options
	Rule    string `json:"rule,omitempty"`    // pareto or slater
	Reduced bool   `json:"reduced,omitempty"` // drop arrows implied by transitivity

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Analysis holds both verdict lists.
	Analysis *dominance.Analysis

	// Artifacts contains rendered outputs keyed by "<chart>.<format>",
	// plus [ReportArtifact] when JSON was requested.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Alternatives  int
	Criteria      int
	ParetoOptimal int
	SlaterOptimal int
	Artifacts     int
	AnalyzeTime   time.Duration
	RenderTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateChart checks that a chart name is valid.
func ValidateChart(chart string) error {
	if !slices.Contains(Charts, chart) {
		return errors.New(errors.ErrCodeInvalidChart, "invalid chart: %q (must be one of: %s)", chart, strings.Join(Charts, ", "))
	}
	return nil
}

// ValidateCharts checks that all chart names are valid.
func ValidateCharts(charts []string) error {
	for _, c := range charts {
		if err := ValidateChart(c); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRule checks that a rule name is valid.
func ValidateRule(rule string) error {
	if _, err := dominance.ParseRule(rule); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid rule")
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateCharts(o.Charts); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateRule(o.Rule); err != nil {
		return err
	}
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if o.Scale < 0.1 || o.Scale > 10 {
		return errors.New(errors.ErrCodeInvalidSize, "scale %.2f out of range (0.1-10)", o.Scale)
	}
	o.validated = true
	return nil
}

// SetDefaults sets default values for every unset field.
func (o *Options) SetDefaults() {
	if len(o.Charts) == 0 {
		o.Charts = slices.Clone(Charts)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Rule == "" {
		o.Rule = DefaultRule
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// WantsFormat reports whether format was requested.
func (o *Options) WantsFormat(format string) bool {
	return slices.Contains(o.Formats, format)
}

// ArtifactKey returns the key under which a chart rendering is stored.
func ArtifactKey(chart, format string) string {
	return chart + "." + format
}

// FileName returns the file name used when an artifact is written to disk.
// Chart renderings get descriptive stems such as "pareto_set.svg"; other keys
// are used as is.
func FileName(key string) string {
	chart, format, ok := strings.Cut(key, ".")
	if !ok {
		return key
	}
	if stem, known := chartFiles[chart]; known {
		return stem + "." + format
	}
	return key
}

// Supports reports whether chart can be rendered in format. DOT source
// exists only for the relations chart; JSON is a single report, not a
// per-chart rendering.
func Supports(chart, format string) bool {
	switch format {
	case FormatJSON:
		return false
	case FormatDOT:
		return chart == ChartRelations
	default:
		return ValidFormats[format]
	}
}
