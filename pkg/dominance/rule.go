package dominance

import "fmt"

// Predicate reports whether b dominates a. Every criterion is maximized.
type Predicate func(a, b []float64) bool

// WeakDominates reports whether b weakly dominates a: b is at least as good
// on every criterion and strictly better on at least one.
func WeakDominates(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	strict := false
	for k := range a {
		if !(b[k] >= a[k]) {
			return false
		}
		if b[k] > a[k] {
			strict = true
		}
	}
	return strict
}

// StrictDominates reports whether b strictly dominates a: b is strictly
// better on every criterion. Vectors without criteria never dominate.
func StrictDominates(a, b []float64) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	for k := range a {
		if !(b[k] > a[k]) {
			return false
		}
	}
	return true
}

// Rule selects a dominance relation.
type Rule int

const (
	// Pareto uses weak dominance ([WeakDominates]).
	Pareto Rule = iota
	// Slater uses strict dominance ([StrictDominates]).
	Slater
)

// Rules lists every supported rule in display order.
var Rules = []Rule{Pareto, Slater}

// String returns the lowercase rule name.
func (r Rule) String() string {
	switch r {
	case Pareto:
		return "pareto"
	case Slater:
		return "slater"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// Predicate returns the dominance predicate for the rule.
func (r Rule) Predicate() Predicate {
	if r == Slater {
		return StrictDominates
	}
	return WeakDominates
}

// Dominates reports whether b dominates a under the rule.
func (r Rule) Dominates(a, b []float64) bool {
	return r.Predicate()(a, b)
}

// ParseRule converts a rule name ("pareto" or "slater") to a [Rule].
func ParseRule(s string) (Rule, error) {
	switch s {
	case "pareto", "weak":
		return Pareto, nil
	case "slater", "strict":
		return Slater, nil
	default:
		return 0, fmt.Errorf("unknown rule %q (must be pareto or slater)", s)
	}
}

// improved returns the criterion indices where b is strictly better than a.
func improved(a, b []float64) []int {
	var out []int
	for k := range a {
		if b[k] > a[k] {
			out = append(out, k)
		}
	}
	return out
}
