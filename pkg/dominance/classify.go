package dominance

// Verdict is the classification of a single alternative under one rule.
type Verdict struct {
	// ID of the classified alternative.
	ID int
	// Optimal is true when no other alternative dominates this one.
	Optimal bool
	// DominatedBy is the ID of the first dominator in ascending ID order,
	// or 0 when Optimal.
	DominatedBy int
	// Improved lists the criterion indices on which the dominator is
	// strictly better. Under Slater this is always every criterion.
	Improved []int
}

// ImprovedLabels resolves Improved to criterion labels of s.
func (v Verdict) ImprovedLabels(s *Set) []string {
	labels := make([]string, len(v.Improved))
	for i, k := range v.Improved {
		labels[i] = s.Criterion(k)
	}
	return labels
}

// Relation records that To dominates From.
type Relation struct {
	From int
	To   int
}

// Classify returns one verdict per alternative of s, in ID order.
// An empty set yields an empty (non-nil) slice.
func Classify(s *Set, r Rule) []Verdict {
	return classify(s, r.Predicate())
}

// ClassifyWith is like [Classify] with a caller-supplied predicate.
func ClassifyWith(s *Set, pred Predicate) []Verdict {
	return classify(s, pred)
}

func classify(s *Set, pred Predicate) []Verdict {
	n := s.Len()
	out := make([]Verdict, n)
	for i := 0; i < n; i++ {
		out[i] = Verdict{ID: i + 1, Optimal: true}
		a := s.values(i)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			b := s.values(j)
			if pred(a, b) {
				out[i] = Verdict{ID: i + 1, DominatedBy: j + 1, Improved: improved(a, b)}
				break
			}
		}
	}
	return out
}

// Dominators returns the IDs of every alternative that dominates id under r,
// in ascending order. The first element, if any, equals the DominatedBy
// value reported by [Classify].
func Dominators(s *Set, r Rule, id int) []int {
	if id < 1 || id > s.Len() {
		return nil
	}
	pred := r.Predicate()
	a := s.values(id - 1)
	var out []int
	for j := 0; j < s.Len(); j++ {
		if j == id-1 {
			continue
		}
		if pred(a, s.values(j)) {
			out = append(out, j+1)
		}
	}
	return out
}

// Relations returns every dominance pair under r, ordered by From then To.
func Relations(s *Set, r Rule) []Relation {
	var out []Relation
	for i := 1; i <= s.Len(); i++ {
		for _, j := range Dominators(s, r, i) {
			out = append(out, Relation{From: i, To: j})
		}
	}
	return out
}

// Optimal returns the IDs of optimal verdicts in ascending order.
func Optimal(verdicts []Verdict) []int {
	var ids []int
	for _, v := range verdicts {
		if v.Optimal {
			ids = append(ids, v.ID)
		}
	}
	return ids
}
