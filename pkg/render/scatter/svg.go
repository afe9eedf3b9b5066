package scatter

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/errors"
)

// Default chart size in pixels.
const (
	DefaultWidth  = 1000
	DefaultHeight = 700
)

const (
	marginLeft   = 80.0
	marginRight  = 40.0
	marginTop    = 60.0
	marginBottom = 70.0
	tickCount    = 8
)

// Option configures [Render].
type Option func(*renderer)

type series struct {
	name  string
	color string
	ids   []int
}

type renderer struct {
	title          string
	width, height  float64
	xLabel, yLabel string
	base           series
	faded          bool
	highlights     []series
	frontier       *series
	legend         bool
}

// WithTitle sets the chart title.
func WithTitle(title string) Option { return func(r *renderer) { r.title = title } }

// WithSize sets the chart size in pixels.
func WithSize(width, height float64) Option {
	return func(r *renderer) { r.width, r.height = width, height }
}

// WithAxisLabels overrides the axis captions, which default to the labels of
// the first two criteria.
func WithAxisLabels(x, y string) Option {
	return func(r *renderer) { r.xLabel, r.yLabel = x, y }
}

// WithBase sets the legend name and color of points that are not
// highlighted. Faded points are drawn translucent with dimmed labels.
func WithBase(name, color string, faded bool) Option {
	return func(r *renderer) {
		r.base = series{name: name, color: color}
		r.faded = faded
	}
}

// WithHighlight draws the given alternatives in color. When an alternative
// is in several highlights the last one wins.
func WithHighlight(name, color string, ids []int) Option {
	return func(r *renderer) {
		r.highlights = append(r.highlights, series{name: name, color: color, ids: slices.Clone(ids)})
	}
}

// WithFrontier joins the given alternatives, in order, with a dashed line.
func WithFrontier(name string, ids []int) Option {
	return func(r *renderer) {
		r.frontier = &series{name: name, color: ColorPareto, ids: slices.Clone(ids)}
	}
}

// WithLegend shows or hides the legend. It is shown by default.
func WithLegend(show bool) Option { return func(r *renderer) { r.legend = show } }

type point struct {
	id     int
	x, y   float64
	px, py float64
	color  string
	marked bool
	stack  int
}

type frame struct {
	left, right, top, bottom float64
	xAxis, yAxis             axis
}

func (f frame) project(x, y float64) (float64, float64) {
	return f.xAxis.scale(x, f.left, f.right), f.yAxis.scale(y, f.bottom, f.top)
}

// Render draws every alternative of set in the plane of its first two
// criteria.
func Render(set *dominance.Set, opts ...Option) ([]byte, error) {
	r := newRenderer(set, opts...)
	if err := errors.ValidateDimensions(r.width, r.height); err != nil {
		return nil, err
	}
	if set.Len() > 0 && set.Dim() < 2 {
		return nil, errors.New(errors.ErrCodeInvalidCriteria,
			"scatter charts need at least two criteria, got %d", set.Dim())
	}

	points := r.placePoints(set)
	f, err := r.layout(points)
	if err != nil {
		return nil, err
	}
	for i := range points {
		points[i].px, points[i].py = f.project(points[i].x, points[i].y)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		r.width, r.height, r.width, r.height, fontFamily)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="white"/>`+"\n", r.width, r.height)

	renderGrid(&buf, f)
	renderAxes(&buf, f, r.xLabel, r.yLabel, r.height)
	if r.frontier != nil {
		renderFrontier(&buf, r.frontier, points)
	}
	r.renderPoints(&buf, points)
	r.renderLabels(&buf, points)
	if r.legend {
		r.renderLegend(&buf, f)
	}
	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="20" font-weight="bold" fill="%s">%s</text>`+"\n",
			r.width/2, marginTop/2+6, ColorText, escapeXML(r.title))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func newRenderer(set *dominance.Set, opts ...Option) *renderer {
	r := &renderer{
		width:  DefaultWidth,
		height: DefaultHeight,
		xLabel: "Q1",
		yLabel: "Q2",
		base:   series{name: "Alternatives", color: ColorBase},
		legend: true,
	}
	if set.Dim() >= 2 {
		r.xLabel, r.yLabel = set.Criterion(0), set.Criterion(1)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// placePoints collects the drawable alternatives and assigns label stack
// positions to alternatives sharing the same coordinates.
func (r *renderer) placePoints(set *dominance.Set) []point {
	colors := make(map[int]string)
	for _, h := range r.highlights {
		for _, id := range h.ids {
			colors[id] = h.color
		}
	}

	type key struct{ x, y float64 }
	seen := make(map[key]int)

	var points []point
	for _, alt := range set.Alternatives() {
		if len(alt.Values) < 2 || !finite(alt.Values[0]) || !finite(alt.Values[1]) {
			continue
		}
		p := point{id: alt.ID, x: alt.Values[0], y: alt.Values[1], color: r.base.color}
		if c, ok := colors[alt.ID]; ok {
			p.color, p.marked = c, true
		}
		k := key{p.x, p.y}
		p.stack = seen[k]
		seen[k]++
		points = append(points, p)
	}
	return points
}

func (r *renderer) layout(points []point) (frame, error) {
	xlo, xhi := math.Inf(1), math.Inf(-1)
	ylo, yhi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		xlo, xhi = min(xlo, p.x), max(xhi, p.x)
		ylo, yhi = min(ylo, p.y), max(yhi, p.y)
	}
	f := frame{
		left:   marginLeft,
		right:  r.width - marginRight,
		top:    marginTop,
		bottom: r.height - marginBottom,
		xAxis:  newAxis(xlo, xhi, tickCount),
		yAxis:  newAxis(ylo, yhi, tickCount),
	}
	if !f.xAxis.valid() || !f.yAxis.valid() {
		return frame{}, errors.New(errors.ErrCodeInvalidDataset,
			"values span [%g, %g] x [%g, %g], too wide to plot", xlo, xhi, ylo, yhi)
	}
	return f, nil
}

func renderGrid(buf *bytes.Buffer, f frame) {
	buf.WriteString(`  <g class="grid" stroke="` + ColorGrid + `" stroke-width="1" stroke-dasharray="4,4">` + "\n")
	for _, v := range f.xAxis.ticks() {
		x := f.xAxis.scale(v, f.left, f.right)
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x, f.top, x, f.bottom)
	}
	for _, v := range f.yAxis.ticks() {
		y := f.yAxis.scale(v, f.bottom, f.top)
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", f.left, y, f.right, y)
	}
	buf.WriteString("  </g>\n")
}

func renderAxes(buf *bytes.Buffer, f frame, xLabel, yLabel string, height float64) {
	fmt.Fprintf(buf, `  <rect class="frame" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		f.left, f.top, f.right-f.left, f.bottom-f.top, ColorText)

	buf.WriteString(`  <g class="ticks" font-size="12" fill="` + ColorText + `">` + "\n")
	for _, v := range f.xAxis.ticks() {
		x := f.xAxis.scale(v, f.left, f.right)
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n", x, f.bottom+18, f.xAxis.format(v))
	}
	for _, v := range f.yAxis.ticks() {
		y := f.yAxis.scale(v, f.bottom, f.top)
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="end">%s</text>`+"\n", f.left-8, y+4, f.yAxis.format(v))
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, `  <text class="axis-label" x="%.1f" y="%.1f" text-anchor="middle" font-size="15" fill="%s">%s</text>`+"\n",
		(f.left+f.right)/2, height-22, ColorText, escapeXML(xLabel))
	cy := (f.top + f.bottom) / 2
	fmt.Fprintf(buf, `  <text class="axis-label" x="%.1f" y="%.1f" text-anchor="middle" font-size="15" fill="%s" transform="rotate(-90 %.1f %.1f)">%s</text>`+"\n",
		24.0, cy, ColorText, 24.0, cy, escapeXML(yLabel))
}

func renderFrontier(buf *bytes.Buffer, s *series, points []point) {
	byID := make(map[int]point, len(points))
	for _, p := range points {
		byID[p.id] = p
	}

	var coords []string
	for _, id := range s.ids {
		if p, ok := byID[id]; ok {
			coords = append(coords, fmt.Sprintf("%.1f,%.1f", p.px, p.py))
		}
	}
	if len(coords) == 0 {
		return
	}
	fmt.Fprintf(buf, `  <polyline class="frontier" points="%s" fill="none" stroke="%s" stroke-width="2" stroke-dasharray="8,5"/>`+"\n",
		strings.Join(coords, " "), s.color)
}

func (r *renderer) renderPoints(buf *bytes.Buffer, points []point) {
	// Highlighted points go last so they sit on top.
	for _, marked := range []bool{false, true} {
		for _, p := range points {
			if p.marked != marked {
				continue
			}
			opacity := 0.8
			if !p.marked && r.faded {
				opacity = 0.3
			}
			radius := pointRadius
			stroke := "none"
			if p.marked {
				radius, stroke, opacity = pointRadius+1.5, ColorText, 1
			}
			fmt.Fprintf(buf, `  <circle id="A%d" cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f" stroke="%s"/>`+"\n",
				p.id, p.px, p.py, radius, p.color, opacity, stroke)
		}
	}
}

func (r *renderer) renderLabels(buf *bytes.Buffer, points []point) {
	for _, p := range points {
		color, opacity := ColorText, 1.0
		if p.marked {
			color = p.color
		} else if r.faded {
			opacity = 0.5
		}
		fmt.Fprintf(buf, `  <text class="label" x="%.1f" y="%.1f" font-size="13" fill="%s" fill-opacity="%.2f">A%d</text>`+"\n",
			p.px+labelOffset, p.py-labelOffset-float64(p.stack)*labelLineStep, color, opacity, p.id)
	}
}

type legendEntry struct {
	name  string
	color string
	line  bool
	faded bool
}

func (r *renderer) legendEntries() []legendEntry {
	entries := []legendEntry{{name: r.base.name, color: r.base.color, faded: r.faded}}
	for _, h := range r.highlights {
		if len(h.ids) > 0 {
			entries = append(entries, legendEntry{name: h.name, color: h.color})
		}
	}
	if r.frontier != nil && len(r.frontier.ids) > 0 {
		entries = append(entries, legendEntry{name: r.frontier.name, color: r.frontier.color, line: true})
	}
	return entries
}

func (r *renderer) renderLegend(buf *bytes.Buffer, f frame) {
	entries := r.legendEntries()
	longest := 0
	for _, e := range entries {
		longest = max(longest, len([]rune(e.name)))
	}

	const rowHeight = 22.0
	w := 44 + 7.5*float64(longest)
	h := 10 + rowHeight*float64(len(entries))
	x := f.right - w - 10
	y := f.top + 10

	fmt.Fprintf(buf, `  <g class="legend" font-size="13">`+"\n")
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="white" fill-opacity="0.9" stroke="%s"/>`+"\n",
		x, y, w, h, ColorGrid)
	for i, e := range entries {
		cy := y + 5 + rowHeight*float64(i) + rowHeight/2
		if e.line {
			fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2" stroke-dasharray="8,5"/>`+"\n",
				x+8, cy, x+28, cy, e.color)
		} else {
			opacity := 0.8
			if e.faded {
				opacity = 0.3
			}
			fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f"/>`+"\n",
				x+18, cy, pointRadius, e.color, opacity)
		}
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" fill="%s">%s</text>`+"\n", x+36, cy+4, ColorText, escapeXML(e.name))
	}
	buf.WriteString("  </g>\n")
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
