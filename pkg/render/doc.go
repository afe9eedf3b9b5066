// Package render provides chart rendering for dominance analyses.
//
// # Overview
//
// This package contains the rendering pieces that turn an analysis into
// image files:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Annotated scatter charts (in [scatter] subpackage)
//   - Dominance-arrow diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both chart families use them.
//
//	svg := scatter.Chart(scatter.KindPareto, analysis)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Scatter Charts
//
// The [scatter] subpackage draws every alternative in criterion space with
// its label, then highlights the Pareto-optimal set, the Slater-optimal set,
// their comparison or the Pareto frontier polyline.
//
// # Dominance Diagrams
//
// The [nodelink] subpackage renders one arrow per dominance relation using
// Graphviz, with nodes pinned to their criterion coordinates.
//
// [scatter]: github.com/matzehuels/frontier/pkg/render/scatter
// [nodelink]: github.com/matzehuels/frontier/pkg/render/nodelink
package render
