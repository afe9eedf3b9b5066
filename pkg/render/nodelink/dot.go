package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/errors"
	"github.com/matzehuels/frontier/pkg/render"
)

// DefaultWidth is the drawing width in inches.
const DefaultWidth = 10.0

const (
	aspect     = 0.7
	stackShift = 0.3

	colorNode   = "#1f77b480"
	colorPareto = "#d62728"
	colorSlater = "#2ca02c"
	colorEdge   = "#80808060"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Rule selects the relation drawn as arrows.
	Rule dominance.Rule
	// Reduced drops an arrow when a path through another alternative
	// already connects the same pair.
	Reduced bool
	// Width is the drawing width in inches. Zero means [DefaultWidth].
	Width float64
}

// ToDOT converts an analysis to Graphviz DOT format. The resulting DOT
// string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(a *dominance.Analysis, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	pos := positions(a.Set, width, width*aspect)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  overlap=true;\n")
	buf.WriteString("  splines=true;\n")
	fmt.Fprintf(&buf, "  label=%q;\n", "Dominance relations ("+opts.Rule.String()+")")
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  fontsize=20;\n")
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, width=0.45, fontsize=10, fontname=\"Helvetica\", penwidth=0];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, arrowsize=0.6];\n", colorEdge)
	buf.WriteString("\n")

	pareto := idSet(a.ParetoOptimal())
	slater := idSet(a.SlaterOptimal())
	for _, alt := range a.Set.Alternatives() {
		attrs := fmtAttrs(alt.ID, pareto[alt.ID], slater[alt.ID])
		if p, ok := pos[alt.ID]; ok {
			attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", fmtInches(p[0]), fmtInches(p[1])))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", alt.Label(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range Edges(a.Set, opts) {
		fmt.Fprintf(&buf, "  \"A%d\" -> \"A%d\";\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Edges returns the arrows drawn for set under opts. Each edge points from
// the dominated alternative to its dominator.
func Edges(set *dominance.Set, opts Options) []dominance.Relation {
	rels := dominance.Relations(set, opts.Rule)
	if !opts.Reduced {
		return rels
	}

	above := make(map[int][]int)
	for _, r := range rels {
		above[r.From] = append(above[r.From], r.To)
	}
	dominates := make(map[dominance.Relation]bool, len(rels))
	for _, r := range rels {
		dominates[r] = true
	}

	var out []dominance.Relation
	for _, r := range rels {
		implied := false
		for _, mid := range above[r.From] {
			if mid != r.To && dominates[dominance.Relation{From: mid, To: r.To}] {
				implied = true
				break
			}
		}
		if !implied {
			out = append(out, r)
		}
	}
	return out
}

func fmtAttrs(id int, pareto, slater bool) []string {
	attrs := []string{fmt.Sprintf("label=\"A%d\"", id)}
	if pareto {
		attrs = append(attrs, "fillcolor=\""+colorPareto+"\"", "fontcolor=white")
	} else {
		attrs = append(attrs, "fillcolor=\""+colorNode+"\"")
	}
	if slater {
		attrs = append(attrs, "color=\""+colorSlater+"\"", "penwidth=3")
	}
	return attrs
}

// positions maps the first two criteria onto a width x height box in
// inches. Alternatives sharing coordinates are shifted upwards one after
// another. Alternatives that cannot be placed are left out.
func positions(set *dominance.Set, width, height float64) map[int][2]float64 {
	out := make(map[int][2]float64)
	if set.Dim() < 2 {
		return out
	}

	xlo, xhi := math.Inf(1), math.Inf(-1)
	ylo, yhi := math.Inf(1), math.Inf(-1)
	for _, alt := range set.Alternatives() {
		if x, y, ok := coords(alt); ok {
			xlo, xhi = min(xlo, x), max(xhi, x)
			ylo, yhi = min(ylo, y), max(yhi, y)
		}
	}

	seen := make(map[[2]float64]int)
	for _, alt := range set.Alternatives() {
		x, y, ok := coords(alt)
		if !ok {
			continue
		}
		k := [2]float64{x, y}
		shift := float64(seen[k]) * stackShift
		seen[k]++
		out[alt.ID] = [2]float64{project(x, xlo, xhi, width), project(y, ylo, yhi, height) + shift}
	}
	return out
}

func coords(alt dominance.Alternative) (float64, float64, bool) {
	x, y := alt.Values[0], alt.Values[1]
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return x, y, true
}

func project(v, lo, hi, size float64) float64 {
	if hi == lo {
		return size / 2
	}
	if span := hi - lo; !math.IsInf(span, 0) {
		return (v - lo) / span * size
	}
	// Halved operands keep the span of extreme values finite.
	return (v/2 - lo/2) / (hi/2 - lo/2) * size
}

func fmtInches(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func idSet(ids []int) map[int]bool {
	m := make(map[int]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// RenderSVG renders a DOT graph to SVG using the Graphviz neato engine.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz <svg> tag, whose size is in points,
// with one sized in pixels.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
