package dominance

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var (
	// ErrInconsistentCriteria is returned by [NewSet] when alternatives have
	// criterion vectors of different lengths.
	ErrInconsistentCriteria = errors.New("inconsistent criteria")

	// ErrEmptyCriteria is returned by [NewSet] when an alternative has no
	// criterion values at all.
	ErrEmptyCriteria = errors.New("alternative has no criteria")

	// ErrCriteriaLabels is returned by [NewSet] when the number of labels
	// passed with [WithCriteria] does not match the criterion dimension.
	ErrCriteriaLabels = errors.New("criteria labels do not match dimension")
)

// Alternative is one point in criterion space.
// ID is the 1-based position of the alternative in its [Set].
type Alternative struct {
	ID     int
	Values []float64
}

// Label returns the display name of the alternative (e.g. "A3").
func (a Alternative) Label() string {
	return "A" + strconv.Itoa(a.ID)
}

// Set is an ordered, immutable collection of alternatives sharing the same
// criterion dimension. The zero value is an empty set.
type Set struct {
	alts     []Alternative
	criteria []string
}

// SetOption configures [NewSet].
type SetOption func(*setConfig)

type setConfig struct {
	criteria []string
}

// WithCriteria sets human-readable criterion labels. Without it, criteria are
// labeled Q1, Q2, ... Qk.
func WithCriteria(labels ...string) SetOption {
	return func(c *setConfig) { c.criteria = labels }
}

// NewSet builds a set from rows of criterion values. Row i becomes the
// alternative with ID i+1. Rows are copied, so later changes to the input do
// not affect the set.
//
// An empty row list yields an empty set. Ragged rows fail with
// [ErrInconsistentCriteria] and zero-length rows with [ErrEmptyCriteria].
func NewSet(rows [][]float64, opts ...SetOption) (*Set, error) {
	var cfg setConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Set{alts: make([]Alternative, len(rows))}
	dim := -1
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("A%d: %w", i+1, ErrEmptyCriteria)
		}
		if dim >= 0 && len(row) != dim {
			return nil, fmt.Errorf("%w: A%d has %d criteria, A1 has %d", ErrInconsistentCriteria, i+1, len(row), dim)
		}
		dim = len(row)
		s.alts[i] = Alternative{ID: i + 1, Values: slices.Clone(row)}
	}

	switch {
	case cfg.criteria != nil && dim >= 0 && len(cfg.criteria) != dim:
		return nil, fmt.Errorf("%w: got %d labels for %d criteria", ErrCriteriaLabels, len(cfg.criteria), dim)
	case cfg.criteria != nil:
		s.criteria = slices.Clone(cfg.criteria)
	default:
		s.criteria = defaultCriteria(dim)
	}
	return s, nil
}

// MustNewSet is like [NewSet] but panics on error. Intended for literals in
// tests and examples.
func MustNewSet(rows [][]float64, opts ...SetOption) *Set {
	s, err := NewSet(rows, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func defaultCriteria(dim int) []string {
	if dim <= 0 {
		return nil
	}
	labels := make([]string, dim)
	for k := range labels {
		labels[k] = "Q" + strconv.Itoa(k+1)
	}
	return labels
}

// Len returns the number of alternatives.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.alts)
}

// Dim returns the number of criteria per alternative, or 0 for an empty set.
func (s *Set) Dim() int {
	if s.Len() == 0 {
		return 0
	}
	return len(s.alts[0].Values)
}

// Criteria returns a copy of the criterion labels.
func (s *Set) Criteria() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.criteria)
}

// Criterion returns the label of criterion index k.
func (s *Set) Criterion(k int) string {
	if s == nil || k < 0 || k >= len(s.criteria) {
		return "Q" + strconv.Itoa(k+1)
	}
	return s.criteria[k]
}

// Alternatives returns copies of all alternatives in ID order.
func (s *Set) Alternatives() []Alternative {
	out := make([]Alternative, s.Len())
	for i := range out {
		out[i] = s.at(i)
	}
	return out
}

// Alternative returns a copy of the alternative with the given 1-based ID.
func (s *Set) Alternative(id int) (Alternative, bool) {
	if id < 1 || id > s.Len() {
		return Alternative{}, false
	}
	return s.at(id - 1), true
}

// Rows returns the criterion values of every alternative, in ID order.
func (s *Set) Rows() [][]float64 {
	rows := make([][]float64, s.Len())
	for i := range rows {
		rows[i] = slices.Clone(s.alts[i].Values)
	}
	return rows
}

func (s *Set) at(i int) Alternative {
	a := s.alts[i]
	return Alternative{ID: a.ID, Values: slices.Clone(a.Values)}
}

// values returns the internal criterion slice without copying.
func (s *Set) values(i int) []float64 {
	return s.alts[i].Values
}
