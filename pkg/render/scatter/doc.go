// Package scatter renders alternatives as annotated SVG scatter charts.
//
// # Overview
//
// Each alternative is drawn as a point in the plane of its first two
// criteria and labelled "A<id>". Subsets of alternatives can be highlighted
// in their own color, and an ordered list of points can be joined by a
// dashed polyline (the Pareto frontier).
//
// # Charts
//
// [Chart] builds one of the predefined chart kinds from an analysis:
//
//	svg, err := scatter.Chart(scatter.KindComparison, dominance.Analyze(set))
//
// The kinds mirror the classic presentation of a dominance study:
//
//   - [KindAll]: every alternative with its label
//   - [KindPareto]: Pareto-optimal points in red, the rest faded
//   - [KindSlater]: Slater-optimal points in green, the rest faded
//   - [KindComparison]: points optimal under both rules in purple,
//     Slater-only in green, Pareto-only in red, the rest grey
//   - [KindFrontier]: Pareto-optimal points joined by the frontier line
//
// # Custom Charts
//
// [Render] exposes the underlying renderer. Options are applied in order,
// so later options override earlier ones:
//
//	svg, err := scatter.Render(set,
//	    scatter.WithTitle("Shortlist"),
//	    scatter.WithHighlight("Picked", scatter.ColorPareto, []int{5, 16}),
//	    scatter.WithSize(800, 600),
//	)
//
// Axes, grid, tick labels and point labels are always drawn. Points sharing
// the same coordinates get their labels stacked so that none is hidden.
// Alternatives with a non-finite coordinate cannot be placed and are left
// out of the drawing.
//
// The output is plain SVG; convert it with [render.ToPNG] or [render.ToPDF].
//
// [render.ToPNG]: github.com/matzehuels/frontier/pkg/render.ToPNG
// [render.ToPDF]: github.com/matzehuels/frontier/pkg/render.ToPDF
package scatter
