package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/errors"
	"github.com/matzehuels/frontier/pkg/render"
	"github.com/matzehuels/frontier/pkg/render/nodelink"
	"github.com/matzehuels/frontier/pkg/render/scatter"
)

// pixelsPerInch converts the chart width to the diagram width used by Graphviz.
const pixelsPerInch = 100.0

// RenderChart renders a single chart in a single format.
func RenderChart(ctx context.Context, a *dominance.Analysis, chart, format string, opts Options) ([]byte, error) {
	opts.SetDefaults()
	if !Supports(chart, format) {
		return nil, errors.New(errors.ErrCodeUnsupported, "chart %s cannot be rendered as %s", chart, format)
	}

	var (
		data []byte
		err  error
	)
	if chart == ChartRelations {
		data, err = renderRelations(ctx, a, format, opts)
	} else {
		data, err = renderScatter(a, chart, format, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s %s: %w", chart, format, err)
	}
	return data, nil
}

func renderScatter(a *dominance.Analysis, chart, format string, opts Options) ([]byte, error) {
	kind, err := scatter.ParseKind(chart)
	if err != nil {
		return nil, err
	}
	svg, err := scatter.Chart(kind, a, scatter.WithSize(opts.Width, opts.Height))
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		return render.ToPNG(svg, opts.Scale)
	case FormatPDF:
		return render.ToPDF(svg)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported scatter format: %s", format)
	}
}

func renderRelations(ctx context.Context, a *dominance.Analysis, format string, opts Options) ([]byte, error) {
	rule, err := dominance.ParseRule(opts.Rule)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid rule")
	}
	dot := nodelink.ToDOT(a, nodelink.Options{
		Rule:    rule,
		Reduced: opts.Reduced,
		Width:   opts.Width / pixelsPerInch,
	})

	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported relations format: %s", format)
	}
}
