package dominance

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"
)

// reference is the 20-alternative table used throughout the project.
var reference = [][]float64{
	{5, 2}, {2, 1}, {9, 3}, {9, 0}, {8, 9},
	{0, 9}, {3, 1}, {7, 3}, {6, 4}, {3, 5},
	{4, 8}, {9, 5}, {7, 7}, {1, 3}, {3, 3},
	{9, 8}, {4, 9}, {5, 5}, {5, 5}, {9, 3},
}

func TestNewSet(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]float64
		opts    []SetOption
		wantErr error
		wantLen int
		wantDim int
	}{
		{"empty", nil, nil, nil, 0, 0},
		{"single", [][]float64{{1, 2}}, nil, nil, 1, 2},
		{"three criteria", [][]float64{{1, 2, 3}, {3, 2, 1}}, nil, nil, 2, 3},
		{"ragged", [][]float64{{1, 2}, {1}}, nil, ErrInconsistentCriteria, 0, 0},
		{"empty row", [][]float64{{}}, nil, ErrEmptyCriteria, 0, 0},
		{"labels match", [][]float64{{1, 2}}, []SetOption{WithCriteria("cost", "speed")}, nil, 1, 2},
		{"labels mismatch", [][]float64{{1, 2}}, []SetOption{WithCriteria("cost")}, ErrCriteriaLabels, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSet(tt.rows, tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewSet() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSet() unexpected error: %v", err)
			}
			if s.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.wantLen)
			}
			if s.Dim() != tt.wantDim {
				t.Errorf("Dim() = %d, want %d", s.Dim(), tt.wantDim)
			}
		})
	}
}

func TestSetDefaultCriteria(t *testing.T) {
	s := MustNewSet([][]float64{{1, 2}})
	if got := s.Criteria(); !slices.Equal(got, []string{"Q1", "Q2"}) {
		t.Errorf("Criteria() = %v, want [Q1 Q2]", got)
	}

	s = MustNewSet([][]float64{{1, 2}}, WithCriteria("cost", "speed"))
	if got := s.Criterion(1); got != "speed" {
		t.Errorf("Criterion(1) = %q, want speed", got)
	}
}

func TestSetIsImmutable(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	s := MustNewSet(rows)

	rows[0][0] = 100
	alt, _ := s.Alternative(1)
	if alt.Values[0] != 1 {
		t.Errorf("set changed after input mutation: %v", alt.Values)
	}

	alt.Values[1] = 100
	again, _ := s.Alternative(1)
	if again.Values[1] != 2 {
		t.Errorf("set changed after returned value mutation: %v", again.Values)
	}
}

func TestSetAlternativeBounds(t *testing.T) {
	s := MustNewSet([][]float64{{1, 2}})
	for _, id := range []int{0, 2, -1} {
		if _, ok := s.Alternative(id); ok {
			t.Errorf("Alternative(%d) should not exist", id)
		}
	}
	if alt, ok := s.Alternative(1); !ok || alt.Label() != "A1" {
		t.Errorf("Alternative(1) = %+v, %v", alt, ok)
	}
}

func TestWeakDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want bool
	}{
		{"better everywhere", []float64{5, 2}, []float64{9, 3}, true},
		{"better on one, tie on other", []float64{9, 3}, []float64{9, 5}, true},
		{"identical", []float64{5, 5}, []float64{5, 5}, false},
		{"worse on one", []float64{9, 0}, []float64{8, 9}, false},
		{"worse everywhere", []float64{9, 8}, []float64{1, 1}, false},
		{"length mismatch", []float64{1}, []float64{2, 2}, false},
		{"nan", []float64{1, 1}, []float64{math.NaN(), 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeakDominates(tt.a, tt.b); got != tt.want {
				t.Errorf("WeakDominates(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStrictDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want bool
	}{
		{"better everywhere", []float64{5, 2}, []float64{9, 3}, true},
		{"tie on one", []float64{9, 3}, []float64{9, 5}, false},
		{"identical", []float64{5, 5}, []float64{5, 5}, false},
		{"empty", []float64{}, []float64{}, false},
		{"infinite", []float64{1, 1}, []float64{math.Inf(1), 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrictDominates(tt.a, tt.b); got != tt.want {
				t.Errorf("StrictDominates(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in      string
		want    Rule
		wantErr bool
	}{
		{"pareto", Pareto, false},
		{"weak", Pareto, false},
		{"slater", Slater, false},
		{"strict", Slater, false},
		{"Pareto", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseRule(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRule(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseRule(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassifyScenario(t *testing.T) {
	s := MustNewSet([][]float64{{5, 2}, {2, 1}, {9, 3}})

	for _, r := range Rules {
		t.Run(r.String(), func(t *testing.T) {
			got := Classify(s, r)
			want := []Verdict{
				{ID: 1, DominatedBy: 3, Improved: []int{0, 1}},
				{ID: 2, DominatedBy: 3, Improved: []int{0, 1}},
				{ID: 3, Optimal: true},
			}
			assertVerdicts(t, got, want)

			if labels := got[0].ImprovedLabels(s); !slices.Equal(labels, []string{"Q1", "Q2"}) {
				t.Errorf("ImprovedLabels() = %v, want [Q1 Q2]", labels)
			}
		})
	}
}

func TestClassifyTiedVectors(t *testing.T) {
	s := MustNewSet([][]float64{{5, 5}, {5, 5}})
	for _, r := range Rules {
		for _, v := range Classify(s, r) {
			if !v.Optimal {
				t.Errorf("%s: A%d should be optimal, dominated by A%d", r, v.ID, v.DominatedBy)
			}
		}
	}
}

func TestClassifyEmpty(t *testing.T) {
	s := MustNewSet(nil)
	for _, r := range Rules {
		got := Classify(s, r)
		if got == nil || len(got) != 0 {
			t.Errorf("%s: Classify(empty) = %v, want empty non-nil slice", r, got)
		}
	}
}

func TestClassifyReference(t *testing.T) {
	s := MustNewSet(reference)

	pareto := Classify(s, Pareto)
	wantPareto := map[int]Verdict{
		1:  {ID: 1, DominatedBy: 3, Improved: []int{0, 1}},
		2:  {ID: 2, DominatedBy: 1, Improved: []int{0, 1}},
		3:  {ID: 3, DominatedBy: 12, Improved: []int{1}},
		4:  {ID: 4, DominatedBy: 3, Improved: []int{1}},
		5:  {ID: 5, Optimal: true},
		6:  {ID: 6, DominatedBy: 5, Improved: []int{0}},
		12: {ID: 12, DominatedBy: 16, Improved: []int{1}},
		16: {ID: 16, Optimal: true},
		18: {ID: 18, DominatedBy: 5, Improved: []int{0, 1}},
		20: {ID: 20, DominatedBy: 12, Improved: []int{1}},
	}
	for id, want := range wantPareto {
		assertVerdicts(t, pareto[id-1:id], []Verdict{want})
	}

	slater := Classify(s, Slater)
	wantSlater := map[int]Verdict{
		1:  {ID: 1, DominatedBy: 3, Improved: []int{0, 1}},
		3:  {ID: 3, Optimal: true},
		8:  {ID: 8, DominatedBy: 5, Improved: []int{0, 1}},
		14: {ID: 14, DominatedBy: 5, Improved: []int{0, 1}},
		20: {ID: 20, Optimal: true},
	}
	for id, want := range wantSlater {
		assertVerdicts(t, slater[id-1:id], []Verdict{want})
	}
}

func TestClassifyStrictReportsAllCriteria(t *testing.T) {
	s := MustNewSet(reference)
	for _, v := range Classify(s, Slater) {
		if !v.Optimal && len(v.Improved) != s.Dim() {
			t.Errorf("A%d: strict verdict improved = %v, want every criterion", v.ID, v.Improved)
		}
	}
}

func TestClassifyWith(t *testing.T) {
	s := MustNewSet([][]float64{{1, 1}, {2, 2}})
	never := func(a, b []float64) bool { return false }
	for _, v := range ClassifyWith(s, never) {
		if !v.Optimal {
			t.Errorf("A%d should be optimal under a predicate that never holds", v.ID)
		}
	}
}

func TestClassifyNeverSelfDominates(t *testing.T) {
	s := MustNewSet(reference)
	always := func(a, b []float64) bool { return true }
	for _, v := range ClassifyWith(s, always) {
		if v.DominatedBy == v.ID {
			t.Errorf("A%d reported as dominating itself", v.ID)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	s := MustNewSet(reference)
	for _, r := range Rules {
		first := Classify(s, r)
		for i := 0; i < 10; i++ {
			assertVerdicts(t, Classify(s, r), first)
		}
	}
}

func TestDominators(t *testing.T) {
	s := MustNewSet(reference)

	// A18 and A19 are identical; neither dominates the other.
	got := Dominators(s, Pareto, 18)
	if slices.Contains(got, 19) {
		t.Errorf("Dominators(A18) contains identical A19: %v", got)
	}
	if len(got) == 0 || got[0] != Classify(s, Pareto)[17].DominatedBy {
		t.Errorf("first dominator of A18 = %v, want reported dominator", got)
	}
	if !slices.IsSorted(got) {
		t.Errorf("Dominators() not sorted: %v", got)
	}

	if got := Dominators(s, Slater, 5); got != nil {
		t.Errorf("Dominators(Slater, A5) = %v, want none", got)
	}
	if got := Dominators(s, Pareto, 0); got != nil {
		t.Errorf("Dominators(out of range) = %v, want nil", got)
	}
}

func TestRelations(t *testing.T) {
	s := MustNewSet(reference)
	tests := []struct {
		rule Rule
		want int
	}{
		{Pareto, 111},
		{Slater, 76},
	}
	for _, tt := range tests {
		got := Relations(s, tt.rule)
		if len(got) != tt.want {
			t.Errorf("%s: len(Relations) = %d, want %d", tt.rule, len(got), tt.want)
		}
		for _, rel := range got {
			if rel.From == rel.To {
				t.Errorf("%s: self relation %+v", tt.rule, rel)
			}
		}
	}
}

func TestStrictlyBelowIsNeverOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		rows := randomRows(rng, 12)
		// Append a point strictly below row 0 on every axis.
		below := []float64{rows[0][0] - 1, rows[0][1] - 1}
		rows = append(rows, below)
		s := MustNewSet(rows)

		last := s.Len() - 1
		for _, r := range Rules {
			if Classify(s, r)[last].Optimal {
				t.Fatalf("%s: %v is strictly below %v but classified optimal", r, below, rows[0])
			}
		}
	}
}

func randomRows(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(rng.Intn(10)), float64(rng.Intn(10))}
	}
	return rows
}

func assertVerdicts(t *testing.T, got, want []Verdict) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d verdicts, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Optimal != w.Optimal || g.DominatedBy != w.DominatedBy || !slices.Equal(g.Improved, w.Improved) {
			t.Errorf("verdict[%d] = %+v, want %+v", i, g, w)
		}
	}
}
