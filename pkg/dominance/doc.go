// Package dominance classifies alternatives under Pareto and Slater dominance.
//
// # Overview
//
// An alternative is a fixed-length vector of criterion values where higher is
// always better. Two dominance relations are supported:
//
//   - [Pareto] (weak): b dominates a when b is at least as good on every
//     criterion and strictly better on at least one.
//   - [Slater] (strict): b dominates a when b is strictly better on every
//     criterion.
//
// Both rules share a single scan: for each alternative, the other
// alternatives are visited in ascending ID order and the first dominator wins.
// The reported dominator is therefore deterministic, even when several exist.
// Use [Dominators] to obtain all of them.
//
// # Usage
//
//	set, err := dominance.NewSet([][]float64{{5, 2}, {2, 1}, {9, 3}})
//	if err != nil {
//	    return err
//	}
//	a := dominance.Analyze(set)
//	fmt.Println(a.ParetoOptimal()) // [3]
//	fmt.Println(a.Compare().SlaterOnly)
//
// # Derived Views
//
// [Analysis] exposes the optimal sets for each rule, their set algebra
// ([Comparison]) and the frontier ordering used to draw a polyline through
// the Pareto-optimal points. Every Pareto-optimal alternative is also
// Slater-optimal, so [Comparison.ParetoOnly] is always empty.
//
// # Concurrency
//
// A [Set] is immutable once built. All functions in this package allocate
// only per-call state and are safe for concurrent use.
package dominance
