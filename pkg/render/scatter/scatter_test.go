package scatter

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/frontier/pkg/dataset"
	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/errors"
)

func referenceChart(t *testing.T, k Kind, opts ...Option) string {
	t.Helper()
	svg, err := Chart(k, dominance.Analyze(dataset.Reference()), opts...)
	if err != nil {
		t.Fatalf("Chart(%s) error: %v", k, err)
	}
	return string(svg)
}

// circleLine returns the <circle> element drawn for alternative id.
func circleLine(svg string, id int) string {
	prefix := fmt.Sprintf(`<circle id="A%d" `, id)
	for _, line := range strings.Split(svg, "\n") {
		if strings.Contains(line, prefix) {
			return line
		}
	}
	return ""
}

func TestChartKinds(t *testing.T) {
	for _, k := range Kinds {
		t.Run(string(k), func(t *testing.T) {
			svg := referenceChart(t, k)
			if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
				t.Fatal("output is not a complete SVG document")
			}
			for id := 1; id <= 20; id++ {
				if !strings.Contains(svg, fmt.Sprintf(">A%d</text>", id)) {
					t.Errorf("missing label A%d", id)
				}
				if circleLine(svg, id) == "" {
					t.Errorf("missing point A%d", id)
				}
			}
			if !strings.Contains(svg, k.Title()) {
				t.Errorf("missing title %q", k.Title())
			}
			if !strings.Contains(svg, `class="legend"`) {
				t.Error("missing legend")
			}
		})
	}
}

func TestChartHighlights(t *testing.T) {
	tests := []struct {
		kind  Kind
		id    int
		color string
	}{
		{KindAll, 5, ColorBase},
		{KindPareto, 5, ColorPareto},
		{KindPareto, 16, ColorPareto},
		{KindPareto, 3, ColorBase},
		{KindSlater, 3, ColorSlater},
		{KindSlater, 1, ColorBase},
		{KindComparison, 5, ColorBoth},
		{KindComparison, 12, ColorSlater},
		{KindComparison, 1, ColorMuted},
		{KindFrontier, 16, ColorPareto},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/A%d", tt.kind, tt.id), func(t *testing.T) {
			line := circleLine(referenceChart(t, tt.kind), tt.id)
			if !strings.Contains(line, `fill="`+tt.color+`"`) {
				t.Errorf("A%d = %s, want fill %s", tt.id, line, tt.color)
			}
		})
	}
}

func TestChartFadesOthers(t *testing.T) {
	line := circleLine(referenceChart(t, KindPareto), 1)
	if !strings.Contains(line, `fill-opacity="0.30"`) {
		t.Errorf("non-optimal point should be faded: %s", line)
	}
	line = circleLine(referenceChart(t, KindAll), 1)
	if !strings.Contains(line, `fill-opacity="0.80"`) {
		t.Errorf("all-alternatives chart should not fade: %s", line)
	}
}

func TestChartComparisonLegend(t *testing.T) {
	svg := referenceChart(t, KindComparison)
	for _, name := range []string{"Pareto and Slater", "Slater only", "Not optimal"} {
		if !strings.Contains(svg, ">"+name+"</text>") {
			t.Errorf("legend missing %q", name)
		}
	}
	// No alternative is Pareto-optimal without being Slater-optimal.
	if strings.Contains(svg, ">Pareto only</text>") {
		t.Error("legend should omit empty series")
	}
}

var polylineRe = regexp.MustCompile(`<polyline class="frontier" points="([^"]*)"`)

func TestChartFrontier(t *testing.T) {
	svg := referenceChart(t, KindFrontier)
	m := polylineRe.FindStringSubmatch(svg)
	if m == nil {
		t.Fatal("frontier chart has no polyline")
	}
	coords := strings.Fields(m[1])
	if len(coords) != 2 {
		t.Fatalf("polyline has %d points, want 2", len(coords))
	}

	// A16 has the larger Q1, so it comes first and sits further right.
	x0, _ := strconv.ParseFloat(strings.Split(coords[0], ",")[0], 64)
	x1, _ := strconv.ParseFloat(strings.Split(coords[1], ",")[0], 64)
	if x0 <= x1 {
		t.Errorf("frontier should run from high Q1 to low Q1: %v", coords)
	}

	for _, k := range []Kind{KindAll, KindPareto, KindSlater, KindComparison} {
		if strings.Contains(referenceChart(t, k), "<polyline") {
			t.Errorf("%s chart should not draw a frontier", k)
		}
	}
}

var labelRe = regexp.MustCompile(`x="([0-9.]+)" y="([0-9.]+)"[^>]*>(A\d+)</text>`)

func labelPositions(svg string) map[string][2]float64 {
	out := make(map[string][2]float64)
	for _, m := range labelRe.FindAllStringSubmatch(svg, -1) {
		x, _ := strconv.ParseFloat(m[1], 64)
		y, _ := strconv.ParseFloat(m[2], 64)
		out[m[3]] = [2]float64{x, y}
	}
	return out
}

func TestCoincidentLabels(t *testing.T) {
	set := dominance.MustNewSet([][]float64{{1, 1}, {1, 1}, {2, 2}, {1, 1}})
	svg, err := Render(set)
	if err != nil {
		t.Fatal(err)
	}
	pos := labelPositions(string(svg))
	a1, a2, a4 := pos["A1"], pos["A2"], pos["A4"]
	if a1[0] != a2[0] || a2[0] != a4[0] {
		t.Errorf("stacked labels should share x: %v %v %v", a1, a2, a4)
	}
	if math.Abs(a1[1]-a2[1]-labelLineStep) > 0.2 || math.Abs(a2[1]-a4[1]-labelLineStep) > 0.2 {
		t.Errorf("labels not stacked: A1 %v, A2 %v, A4 %v", a1, a2, a4)
	}
}

func TestReferenceCoincidentPoints(t *testing.T) {
	pos := labelPositions(referenceChart(t, KindAll))
	for _, pair := range [][2]string{{"A18", "A19"}, {"A3", "A20"}} {
		if pos[pair[0]] == pos[pair[1]] {
			t.Errorf("labels %s and %s overlap at %v", pair[0], pair[1], pos[pair[0]])
		}
	}
}

func TestRenderOptions(t *testing.T) {
	set := dominance.MustNewSet([][]float64{{1, 2}, {3, 4}}, dominance.WithCriteria("cost & risk", "<speed>"))
	svg, err := Render(set,
		WithTitle(`Picks "A" & "B"`),
		WithSize(640, 480),
		WithLegend(false),
	)
	if err != nil {
		t.Fatal(err)
	}
	s := string(svg)

	for _, want := range []string{
		`width="640" height="480"`,
		"Picks &#34;A&#34; &amp; &#34;B&#34;",
		"cost &amp; risk",
		"&lt;speed&gt;",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(s, `class="legend"`) {
		t.Error("legend should be hidden")
	}

	svg, _ = Render(set, WithAxisLabels("x", "y"))
	if !strings.Contains(string(svg), `fill="#333333">x</text>`) {
		t.Error("axis label override not applied")
	}
}

func TestRenderSkipsNonFinite(t *testing.T) {
	set := dominance.MustNewSet([][]float64{{1, 2}, {math.NaN(), 4}, {3, math.Inf(1)}, {2, 2}})
	svg, err := Render(set)
	if err != nil {
		t.Fatal(err)
	}
	for id, want := range map[int]bool{1: true, 2: false, 3: false, 4: true} {
		if got := circleLine(string(svg), id) != ""; got != want {
			t.Errorf("A%d drawn = %v, want %v", id, got, want)
		}
	}
}

func TestRenderEmptySet(t *testing.T) {
	set := dominance.MustNewSet(nil)
	svg, err := Render(set, WithTitle("Nothing"))
	if err != nil {
		t.Fatalf("Render(empty) error: %v", err)
	}
	if strings.Contains(string(svg), "<circle id=") {
		t.Error("empty set should draw no points")
	}
}

func TestRenderErrors(t *testing.T) {
	set := dominance.MustNewSet([][]float64{{1, 2}})
	if _, err := Render(set, WithSize(50, 50)); !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("tiny chart error = %v, want INVALID_SIZE", err)
	}

	oneDim := dominance.MustNewSet([][]float64{{1}, {2}})
	if _, err := Render(oneDim); !errors.Is(err, errors.ErrCodeInvalidCriteria) {
		t.Errorf("1-D chart error = %v, want INVALID_CRITERIA", err)
	}

	if _, err := Chart(Kind("bubble"), dominance.Analyze(set)); !errors.Is(err, errors.ErrCodeInvalidChart) {
		t.Errorf("unknown kind error = %v, want INVALID_CHART", err)
	}
}

func TestRenderExtremeSpan(t *testing.T) {
	set := dominance.MustNewSet([][]float64{{-1e308, 0}, {1e308, 1}})
	for _, k := range Kinds {
		if _, err := Chart(k, dominance.Analyze(set)); !errors.Is(err, errors.ErrCodeInvalidDataset) {
			t.Errorf("Chart(%s) error = %v, want INVALID_DATASET", k, err)
		}
	}

	if a := newAxis(-1e308, 1e308, tickCount); a.valid() {
		t.Errorf("newAxis over the whole float64 range = %+v, want invalid", a)
	}

	// Large but representable values still plot.
	big := dominance.MustNewSet([][]float64{{-1e300, 0}, {1e300, 1}})
	if _, err := Render(big); err != nil {
		t.Errorf("Render(±1e300) error: %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(strings.ToUpper(string(k)))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseKind("relations"); err == nil {
		t.Error("ParseKind(relations) should fail")
	}
}

func TestAxis(t *testing.T) {
	tests := []struct {
		lo, hi         float64
		min, max, step float64
	}{
		{1, 9, 0, 10, 1},
		{0, 100, -20, 120, 20},
		{5, 5, 3, 7, 1},
		{math.Inf(1), math.Inf(-1), -0.2, 1.2, 0.2},
		{1e20, 1e20, 8e19, 1.2e20, 1e19},
	}
	near := func(got, want float64) bool {
		return math.Abs(got-want) <= 1e-9*max(1, math.Abs(want))
	}
	for _, tt := range tests {
		a := newAxis(tt.lo, tt.hi, tickCount)
		if !a.valid() {
			t.Errorf("newAxis(%v, %v) = %+v is invalid", tt.lo, tt.hi, a)
		}
		if !near(a.min, tt.min) || !near(a.max, tt.max) || !near(a.step, tt.step) {
			t.Errorf("newAxis(%v, %v) = %+v, want {%v %v %v}", tt.lo, tt.hi, a, tt.min, tt.max, tt.step)
		}
		if lo, hi := min(tt.lo, tt.hi), max(tt.lo, tt.hi); !math.IsInf(lo, 0) && (a.min > lo || a.max < hi) {
			t.Errorf("newAxis(%v, %v) does not cover the data", tt.lo, tt.hi)
		}
	}
}

func TestAxisFormat(t *testing.T) {
	a := axis{min: 0, max: 0.4, step: 0.1}
	ticks := a.ticks()
	if len(ticks) != 5 {
		t.Fatalf("ticks() = %v, want 5 ticks", ticks)
	}
	if got := a.format(ticks[3]); got != "0.3" {
		t.Errorf("format(%v) = %q, want 0.3", ticks[3], got)
	}
	if got := (axis{min: -10, max: 10, step: 5}).format(-5); got != "-5" {
		t.Errorf("format(-5) = %q", got)
	}
}
