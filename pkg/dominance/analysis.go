package dominance

import (
	"cmp"
	"slices"
)

// Analysis holds the verdicts of both rules for one set.
type Analysis struct {
	Set    *Set
	Pareto []Verdict
	Slater []Verdict
}

// Comparison is the set algebra between the Pareto- and Slater-optimal sets.
// All slices hold ascending IDs.
type Comparison struct {
	Both       []int // Pareto ∩ Slater
	SlaterOnly []int // Slater − Pareto
	ParetoOnly []int // Pareto − Slater; empty for any input
}

// Analyze classifies s under both rules.
func Analyze(s *Set) *Analysis {
	return &Analysis{
		Set:    s,
		Pareto: Classify(s, Pareto),
		Slater: Classify(s, Slater),
	}
}

// Verdicts returns the verdicts for r.
func (a *Analysis) Verdicts(r Rule) []Verdict {
	if r == Slater {
		return a.Slater
	}
	return a.Pareto
}

// ParetoOptimal returns the IDs not weakly dominated by any other alternative.
func (a *Analysis) ParetoOptimal() []int { return Optimal(a.Pareto) }

// SlaterOptimal returns the IDs not strictly dominated by any other alternative.
func (a *Analysis) SlaterOptimal() []int { return Optimal(a.Slater) }

// Compare derives the set relations between both optimal sets.
func (a *Analysis) Compare() Comparison {
	pareto := a.ParetoOptimal()
	slater := a.SlaterOptimal()

	var c Comparison
	for _, id := range slater {
		if slices.Contains(pareto, id) {
			c.Both = append(c.Both, id)
		} else {
			c.SlaterOnly = append(c.SlaterOnly, id)
		}
	}
	for _, id := range pareto {
		if !slices.Contains(slater, id) {
			c.ParetoOnly = append(c.ParetoOnly, id)
		}
	}
	return c
}

// Frontier returns the Pareto-optimal alternatives in polyline order.
func (a *Analysis) Frontier() []Alternative {
	return Frontier(a.Set, a.ParetoOptimal())
}

// Frontier returns the alternatives with the given IDs sorted by descending
// first criterion, then ascending second criterion. Remaining ties keep ID
// order. Unknown IDs are ignored.
func Frontier(s *Set, ids []int) []Alternative {
	pts := make([]Alternative, 0, len(ids))
	for _, id := range ids {
		if alt, ok := s.Alternative(id); ok {
			pts = append(pts, alt)
		}
	}
	slices.SortStableFunc(pts, func(p, q Alternative) int {
		if c := cmp.Compare(q.Values[0], p.Values[0]); c != 0 {
			return c
		}
		if len(p.Values) > 1 {
			return cmp.Compare(p.Values[1], q.Values[1])
		}
		return 0
	})
	return pts
}
