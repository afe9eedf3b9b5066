// Package nodelink renders dominance relations as node-link diagrams.
//
// # Overview
//
// This package produces a directed graph where every alternative is a node
// pinned to its position in criterion space and every dominance relation is
// an arrow from the dominated alternative to the one dominating it. It is
// the diagram form of the scatter charts in [scatter].
//
// # Usage
//
// Convert an analysis to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(analysis, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Rule: the relation drawn as arrows (Pareto by default)
//   - Reduced: drop arrows already implied by a chain of other arrows
//   - Width: drawing width in inches
//
// # Styling
//
// Pareto-optimal alternatives are filled red and Slater-optimal ones get a
// thick green outline, so an alternative optimal under both rules shows
// both. Alternatives sharing coordinates are stacked vertically.
//
// # DOT Format
//
// The generated DOT sets layout=neato and pins every node with pos="x,y!",
// so it renders the same way with the Graphviz command-line tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [scatter]: github.com/matzehuels/frontier/pkg/render/scatter
package nodelink
