// Package report turns dominance verdicts into presentation data.
//
// It produces the per-alternative summary lines, the side-by-side comparison
// table and a JSON document carrying everything needed to reproduce the
// charts. Styling (colors, borders) is left to the caller.
package report

import (
	"fmt"
	"strings"

	"github.com/matzehuels/frontier/pkg/dominance"
)

// Status strings used in summaries and tables.
const (
	StatusOptimal           = "optimal"
	StatusDominated         = "dominated"
	StatusStrictlyDominated = "strictly dominated"
)

// Summary returns one line per alternative describing its verdict under r:
//
//	A1: dominated by A3 on Q1, Q2
//	A5: optimal
//	A7: strictly dominated by A1
func Summary(set *dominance.Set, verdicts []dominance.Verdict, r dominance.Rule) []string {
	lines := make([]string, len(verdicts))
	for i, v := range verdicts {
		lines[i] = SummaryLine(set, v, r)
	}
	return lines
}

// SummaryLine describes a single verdict.
func SummaryLine(set *dominance.Set, v dominance.Verdict, r dominance.Rule) string {
	label := fmt.Sprintf("A%d", v.ID)
	switch {
	case v.Optimal:
		return label + ": " + StatusOptimal
	case r == dominance.Slater:
		return fmt.Sprintf("%s: %s by A%d", label, StatusStrictlyDominated, v.DominatedBy)
	default:
		return fmt.Sprintf("%s: %s by A%d on %s", label, StatusDominated, v.DominatedBy,
			strings.Join(v.ImprovedLabels(set), ", "))
	}
}

// Row is one line of the comparison table.
type Row struct {
	Alternative string
	Pareto      string
	Slater      string
}

// Table builds the comparison table for both rules, in ID order.
func Table(a *dominance.Analysis) []Row {
	rows := make([]Row, len(a.Pareto))
	for i := range a.Pareto {
		rows[i] = Row{
			Alternative: fmt.Sprintf("A%d", a.Pareto[i].ID),
			Pareto:      status(a.Set, a.Pareto[i], dominance.Pareto),
			Slater:      status(a.Set, a.Slater[i], dominance.Slater),
		}
	}
	return rows
}

func status(set *dominance.Set, v dominance.Verdict, r dominance.Rule) string {
	switch {
	case v.Optimal:
		return StatusOptimal
	case r == dominance.Slater:
		return StatusStrictlyDominated
	default:
		return StatusDominated + " on " + strings.Join(v.ImprovedLabels(set), "+")
	}
}

// Headers returns the comparison table column names.
func Headers() []string {
	return []string{"Alternative", "Pareto", "Slater"}
}

// FormatIDs renders IDs as "A1, A5" or "—" when empty.
func FormatIDs(ids []int) string {
	if len(ids) == 0 {
		return "—"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("A%d", id)
	}
	return strings.Join(parts, ", ")
}
