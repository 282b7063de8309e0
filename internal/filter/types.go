package filter

import "encoding/json"

// ClauseKind discriminates the closed set of clause shapes the parser knows
// how to structure. Anything else degrades to an opaque clause.
type ClauseKind string

const (
	// KindAssignment is a single field = scalar clause.
	KindAssignment ClauseKind = "assignment"
	// KindIn is a field ∈ list-of-scalars clause.
	KindIn ClauseKind = "in"
	// KindFullText is a free-text search clause.
	KindFullText ClauseKind = "fulltext"
	// KindOpaque is a clause the parser could not structure. The raw JSON is
	// kept so the record stays searchable even when not fully structured.
	KindOpaque ClauseKind = "opaque"
)

// Clause is one structured filter clause.
type Clause struct {
	Kind   ClauseKind      `json:"kind"`
	Field  string          `json:"field,omitempty"`
	Value  string          `json:"value,omitempty"`
	Values []string        `json:"values,omitempty"`
	Raw    json.RawMessage `json:"raw,omitempty"`
}

// StructuredQuery is the parsed form of a raw subscription filter. Clauses
// keep the order they appear in the raw document.
type StructuredQuery struct {
	Clauses []Clause `json:"clauses"`
}

// IsEmpty reports whether the query holds no clauses at all.
func (q StructuredQuery) IsEmpty() bool {
	return len(q.Clauses) == 0
}

// ValuesFor collects every scalar bound to any of the given field names,
// across assignment and in-list clauses, in clause order.
func (q StructuredQuery) ValuesFor(fields ...string) []string {
	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}

	var out []string
	for _, c := range q.Clauses {
		if !wanted[c.Field] {
			continue
		}
		switch c.Kind {
		case KindAssignment:
			out = append(out, c.Value)
		case KindIn:
			out = append(out, c.Values...)
		}
	}
	return out
}
