package filter

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantErr     bool
		wantClauses []Clause
		wantTerms   []string
	}{
		{
			name:        "empty payload",
			raw:         "",
			wantClauses: nil,
			wantTerms:   []string{},
		},
		{
			name:        "null payload",
			raw:         "null",
			wantClauses: nil,
			wantTerms:   []string{},
		},
		{
			name: "single assignment",
			raw:  `{"status": "open"}`,
			wantClauses: []Clause{
				{Kind: KindAssignment, Field: "status", Value: "open"},
			},
			wantTerms: []string{"open"},
		},
		{
			name: "in list",
			raw:  `{"threatLevels": ["high", "critical"]}`,
			wantClauses: []Clause{
				{Kind: KindIn, Field: "threatLevels", Values: []string{"high", "critical"}},
			},
			wantTerms: []string{"high", "critical"},
		},
		{
			name: "full text clause",
			raw:  `{"search": "failed login"}`,
			wantClauses: []Clause{
				{Kind: KindFullText, Field: "search", Value: "failed login"},
			},
			wantTerms: []string{"failed login"},
		},
		{
			name: "numeric and boolean scalars",
			raw:  `{"severity": 3, "escalated": true}`,
			wantClauses: []Clause{
				{Kind: KindAssignment, Field: "severity", Value: "3"},
				{Kind: KindAssignment, Field: "escalated", Value: "true"},
			},
			wantTerms: []string{"3", "true"},
		},
		{
			name: "and combinator flattens",
			raw:  `{"and": [{"status": "open"}, {"accounts": ["a1", "a2"]}]}`,
			wantClauses: []Clause{
				{Kind: KindAssignment, Field: "status", Value: "open"},
				{Kind: KindIn, Field: "accounts", Values: []string{"a1", "a2"}},
			},
			wantTerms: []string{"open", "a1", "a2"},
		},
		{
			name: "nested object flattens",
			raw:  `{"source": {"deployment_id": "d-7"}}`,
			wantClauses: []Clause{
				{Kind: KindAssignment, Field: "deployment_id", Value: "d-7"},
			},
			wantTerms: []string{"d-7"},
		},
		{
			name: "unsupported clause degrades to opaque but stays searchable",
			raw:  `{"range": [["10", "20"]]}`,
			wantClauses: []Clause{
				{Kind: KindOpaque, Field: "range", Raw: json.RawMessage(`[["10", "20"]]`)},
			},
			wantTerms: []string{"10", "20"},
		},
		{
			name:      "invalid JSON",
			raw:       `{"status": "open"`,
			wantErr:   true,
			wantTerms: []string{},
		},
		{
			name:      "non-object payload",
			raw:       `["just", "a", "list"]`,
			wantErr:   true,
			wantTerms: []string{},
		},
		{
			name:      "scalar payload",
			raw:       `"open"`,
			wantErr:   true,
			wantTerms: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, terms, err := Parse(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !q.IsEmpty() {
					t.Errorf("Parse() on malformed input returned %d clauses, want empty query", len(q.Clauses))
				}
				if len(terms) != 0 {
					t.Errorf("Parse() on malformed input returned terms %v, want none", terms)
				}
				return
			}
			if !reflect.DeepEqual(q.Clauses, tt.wantClauses) {
				t.Errorf("Parse() clauses = %+v, want %+v", q.Clauses, tt.wantClauses)
			}
			if !reflect.DeepEqual(terms, tt.wantTerms) {
				t.Errorf("Parse() terms = %v, want %v", terms, tt.wantTerms)
			}
		})
	}
}

func TestParse_NeverPanics(t *testing.T) {
	payloads := []string{
		`{`, `}`, `[[[[`, `{"a":}`, `{"a": {"b": {"c": [1, {"d": null}]}}}`,
		"\x00\x01", `{"and": "not-a-list"}`, `{"": ""}`,
	}
	for _, p := range payloads {
		if _, _, err := Parse(json.RawMessage(p)); err != nil {
			continue // degraded, as designed
		}
	}
}

func TestStructuredQuery_ValuesFor(t *testing.T) {
	q := StructuredQuery{Clauses: []Clause{
		{Kind: KindAssignment, Field: "threat_level", Value: "low"},
		{Kind: KindIn, Field: "threatLevels", Values: []string{"high", "critical"}},
		{Kind: KindAssignment, Field: "status", Value: "open"},
		{Kind: KindOpaque, Field: "threatLevels", Raw: json.RawMessage(`{}`)},
	}}

	got := q.ValuesFor("threatLevels", "threat_level")
	want := []string{"low", "high", "critical"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValuesFor() = %v, want %v", got, want)
	}
}

func TestThreatLevels(t *testing.T) {
	q, _, err := Parse(json.RawMessage(`{"threatLevels": ["high", "weird"]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	levels := ThreatLevels(q)
	if len(levels) != 2 {
		t.Fatalf("ThreatLevels() returned %d levels, want 2", len(levels))
	}
	if levels[0].Value != "high" || levels[0].Caption != "High" {
		t.Errorf("levels[0] = %+v, want value high caption High", levels[0])
	}
	if levels[1].Value != "weird" || levels[1].Caption != "weird" {
		t.Errorf("levels[1] = %+v, want raw value kept as caption", levels[1])
	}

	if got := ThreatLevels(StructuredQuery{}); len(got) != 0 {
		t.Errorf("ThreatLevels(empty) = %v, want empty", got)
	}
}

func TestAccountRefsAndDeployments(t *testing.T) {
	q, _, err := Parse(json.RawMessage(`{"accounts": ["134249236", "2"], "deployments": ["d-1"]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := AccountRefs(q); !reflect.DeepEqual(got, []string{"134249236", "2"}) {
		t.Errorf("AccountRefs() = %v", got)
	}
	if got := Deployments(q); !reflect.DeepEqual(got, []string{"d-1"}) {
		t.Errorf("Deployments() = %v", got)
	}
	if got := Deployments(StructuredQuery{}); len(got) != 0 {
		t.Errorf("Deployments(empty) = %v, want empty", got)
	}
}
