package report

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/frontier/pkg/dominance"
)

// Document is the JSON export of an analysis.
type Document struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	Criteria      []string      `json:"criteria"`
	Alternatives  []Alternative `json:"alternatives"`
	ParetoOptimal []int         `json:"pareto_optimal"`
	SlaterOptimal []int         `json:"slater_optimal"`
	Both          []int         `json:"both"`
	SlaterOnly    []int         `json:"slater_only"`
	ParetoOnly    []int         `json:"pareto_only"`
	Frontier      []int         `json:"frontier"`
}

// Alternative is one entry of [Document.Alternatives].
type Alternative struct {
	ID     int       `json:"id"`
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
	Pareto Status    `json:"pareto"`
	Slater Status    `json:"slater"`
}

// Status is a verdict under one rule, with every dominator listed.
type Status struct {
	Optimal     bool     `json:"optimal"`
	DominatedBy int      `json:"dominated_by,omitempty"`
	Improved    []string `json:"improved,omitempty"`
	Dominators  []int    `json:"dominators,omitempty"`
}

// Option configures [Build].
type Option func(*Document)

// WithID sets the document ID instead of a random UUID.
func WithID(id string) Option { return func(d *Document) { d.ID = id } }

// WithTime sets the creation timestamp instead of the current time.
func WithTime(t time.Time) Option { return func(d *Document) { d.CreatedAt = t } }

// Build assembles the JSON document for a.
func Build(a *dominance.Analysis, opts ...Option) Document {
	cmp := a.Compare()
	doc := Document{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Criteria:      a.Set.Criteria(),
		Alternatives:  make([]Alternative, a.Set.Len()),
		ParetoOptimal: nonNil(a.ParetoOptimal()),
		SlaterOptimal: nonNil(a.SlaterOptimal()),
		Both:          nonNil(cmp.Both),
		SlaterOnly:    nonNil(cmp.SlaterOnly),
		ParetoOnly:    nonNil(cmp.ParetoOnly),
		Frontier:      []int{},
	}
	for _, alt := range a.Frontier() {
		doc.Frontier = append(doc.Frontier, alt.ID)
	}

	for i, alt := range a.Set.Alternatives() {
		doc.Alternatives[i] = Alternative{
			ID:     alt.ID,
			Label:  alt.Label(),
			Values: alt.Values,
			Pareto: newStatus(a, dominance.Pareto, a.Pareto[i]),
			Slater: newStatus(a, dominance.Slater, a.Slater[i]),
		}
	}

	for _, opt := range opts {
		opt(&doc)
	}
	return doc
}

// Marshal builds the document and encodes it as indented JSON. Sets holding
// NaN or infinite values cannot be encoded; [dataset.Read] rejects them.
//
// [dataset.Read]: github.com/matzehuels/frontier/pkg/dataset#Read
func Marshal(a *dominance.Analysis, opts ...Option) ([]byte, error) {
	return json.MarshalIndent(Build(a, opts...), "", "  ")
}

func newStatus(a *dominance.Analysis, r dominance.Rule, v dominance.Verdict) Status {
	if v.Optimal {
		return Status{Optimal: true}
	}
	return Status{
		DominatedBy: v.DominatedBy,
		Improved:    v.ImprovedLabels(a.Set),
		Dominators:  dominance.Dominators(a.Set, r, v.ID),
	}
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
