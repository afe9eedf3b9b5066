package scatter

import (
	"strings"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/errors"
)

// Kind names a predefined chart.
type Kind string

const (
	KindAll        Kind = "all"
	KindPareto     Kind = "pareto"
	KindSlater     Kind = "slater"
	KindComparison Kind = "comparison"
	KindFrontier   Kind = "frontier"
)

// Kinds lists every predefined chart in display order.
var Kinds = []Kind{KindAll, KindPareto, KindSlater, KindComparison, KindFrontier}

// ParseKind converts a chart name to a [Kind].
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidChart, "unknown scatter chart %q", s)
}

// Title returns the default chart title.
func (k Kind) Title() string {
	switch k {
	case KindAll:
		return "All alternatives"
	case KindPareto:
		return "Pareto-optimal set"
	case KindSlater:
		return "Slater-optimal set"
	case KindComparison:
		return "Pareto vs Slater optimal sets"
	case KindFrontier:
		return "Pareto frontier"
	default:
		return string(k)
	}
}

// Chart renders the predefined chart k for a. Extra options are applied
// after the chart's own, so they can override the title or size.
func Chart(k Kind, a *dominance.Analysis, opts ...Option) ([]byte, error) {
	base, err := kindOptions(k, a)
	if err != nil {
		return nil, err
	}
	return Render(a.Set, append(base, opts...)...)
}

func kindOptions(k Kind, a *dominance.Analysis) ([]Option, error) {
	opts := []Option{WithTitle(k.Title())}

	switch k {
	case KindAll:
		opts = append(opts, WithBase("Alternatives", ColorBase, false))
	case KindPareto:
		opts = append(opts,
			WithBase("Not optimal", ColorBase, true),
			WithHighlight("Pareto-optimal", ColorPareto, a.ParetoOptimal()))
	case KindSlater:
		opts = append(opts,
			WithBase("Not optimal", ColorBase, true),
			WithHighlight("Slater-optimal", ColorSlater, a.SlaterOptimal()))
	case KindComparison:
		cmp := a.Compare()
		opts = append(opts,
			WithBase("Not optimal", ColorMuted, true),
			WithHighlight("Slater only", ColorSlater, cmp.SlaterOnly),
			WithHighlight("Pareto only", ColorPareto, cmp.ParetoOnly),
			WithHighlight("Pareto and Slater", ColorBoth, cmp.Both))
	case KindFrontier:
		ids := make([]int, 0, len(a.ParetoOptimal()))
		for _, alt := range a.Frontier() {
			ids = append(ids, alt.ID)
		}
		opts = append(opts,
			WithBase("Not optimal", ColorBase, true),
			WithHighlight("Pareto-optimal", ColorPareto, a.ParetoOptimal()),
			WithFrontier("Pareto frontier", ids))
	default:
		return nil, errors.New(errors.ErrCodeInvalidChart, "unknown scatter chart %q", string(k))
	}
	return opts, nil
}
