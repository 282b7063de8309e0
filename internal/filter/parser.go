package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Field names treated as free-text search clauses.
var fullTextFields = map[string]bool{
	"search":   true,
	"fulltext": true,
	"query":    true,
}

// Boolean combinators recognized at any nesting level.
var combinatorFields = map[string]bool{
	"and": true,
	"or":  true,
	"not": true,
}

// Parse converts a raw, schema-loose filter object into a structured query
// plus a flat list of search terms. It never fails hard: a malformed payload
// yields an empty query with empty searchables and a non-nil error that the
// caller records on the enriched record instead of aborting. An absent filter
// is not an error.
func Parse(raw json.RawMessage) (StructuredQuery, []string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return StructuredQuery{}, []string{}, nil
	}
	if !json.Valid(trimmed) {
		return StructuredQuery{}, []string{}, fmt.Errorf("%w: invalid JSON", ErrMalformedFilter)
	}

	members, err := objectMembers(trimmed)
	if err != nil {
		return StructuredQuery{}, []string{}, err
	}

	clauses, terms := parseMembers(members)
	if terms == nil {
		terms = []string{}
	}
	return StructuredQuery{Clauses: clauses}, terms, nil
}

// ObjectKeys returns the top-level keys of a JSON object in document order.
// Non-object or malformed payloads yield nil. The UI uses this to paint
// report filters in the order they were defined.
func ObjectKeys(raw json.RawMessage) []string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil
	}
	members, err := objectMembers(trimmed)
	if err != nil {
		return nil
	}
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.key
	}
	return keys
}

// member is one key/value pair of a JSON object, in document order. Decoding
// through the token stream keeps the ordering the raw filter was written
// with, which the UI relies on when painting report filters.
type member struct {
	key string
	val json.RawMessage
}

func objectMembers(raw []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFilter, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotAnObject
	}

	var members []member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFilter, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string object key", ErrMalformedFilter)
		}

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFilter, err)
		}
		members = append(members, member{key: key, val: val})
	}

	return members, nil
}

// parseMembers structures each member into a clause. Unknown or unsupported
// shapes never fail the parse; they become opaque clauses whose extractable
// text still feeds the search terms.
func parseMembers(members []member) ([]Clause, []string) {
	var clauses []Clause
	var terms []string

	for _, m := range members {
		val := bytes.TrimSpace(m.val)

		if combinatorFields[m.key] {
			sub, subTerms, ok := parseCombinator(val)
			if ok {
				clauses = append(clauses, sub...)
				terms = append(terms, subTerms...)
				continue
			}
			clauses = append(clauses, opaqueClause(m.key, m.val))
			terms = append(terms, extractStrings(m.val)...)
			continue
		}

		switch {
		case len(val) > 0 && val[0] == '{':
			sub, err := objectMembers(val)
			if err != nil {
				clauses = append(clauses, opaqueClause(m.key, m.val))
				terms = append(terms, extractStrings(m.val)...)
				continue
			}
			subClauses, subTerms := parseMembers(sub)
			clauses = append(clauses, subClauses...)
			terms = append(terms, subTerms...)

		case len(val) > 0 && val[0] == '[':
			values, ok := scalarList(val)
			if !ok {
				clauses = append(clauses, opaqueClause(m.key, m.val))
				terms = append(terms, extractStrings(m.val)...)
				continue
			}
			clauses = append(clauses, Clause{Kind: KindIn, Field: m.key, Values: values})
			terms = append(terms, values...)

		default:
			s, ok := scalarString(val)
			if !ok {
				clauses = append(clauses, opaqueClause(m.key, m.val))
				terms = append(terms, extractStrings(m.val)...)
				continue
			}
			kind := KindAssignment
			if fullTextFields[m.key] {
				kind = KindFullText
			}
			clauses = append(clauses, Clause{Kind: kind, Field: m.key, Value: s})
			terms = append(terms, s)
		}
	}

	return clauses, terms
}

// parseCombinator handles and/or/not members whose value is an array of
// sub-filter objects.
func parseCombinator(val json.RawMessage) ([]Clause, []string, bool) {
	if len(val) == 0 || val[0] != '[' {
		return nil, nil, false
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(val, &elems); err != nil {
		return nil, nil, false
	}

	var clauses []Clause
	var terms []string
	for _, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			clauses = append(clauses, opaqueClause("", elem))
			terms = append(terms, extractStrings(elem)...)
			continue
		}
		sub, err := objectMembers(elem)
		if err != nil {
			clauses = append(clauses, opaqueClause("", elem))
			terms = append(terms, extractStrings(elem)...)
			continue
		}
		subClauses, subTerms := parseMembers(sub)
		clauses = append(clauses, subClauses...)
		terms = append(terms, subTerms...)
	}

	return clauses, terms, true
}

func opaqueClause(field string, raw json.RawMessage) Clause {
	return Clause{Kind: KindOpaque, Field: field, Raw: raw}
}

// scalarString renders a JSON scalar as its search-term string. Null yields
// no term.
func scalarString(val json.RawMessage) (string, bool) {
	var v any
	if err := json.Unmarshal(val, &v); err != nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		if s {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// scalarList decodes an array of scalars. Mixed or nested arrays are not
// scalar lists.
func scalarList(val json.RawMessage) ([]string, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(val, &elems); err != nil {
		return nil, false
	}

	values := make([]string, 0, len(elems))
	for _, elem := range elems {
		s, ok := scalarString(bytes.TrimSpace(elem))
		if !ok {
			return nil, false
		}
		values = append(values, s)
	}
	return values, true
}

// extractStrings walks any JSON value and collects every string leaf, so
// records with unstructured clauses stay searchable.
func extractStrings(raw json.RawMessage) []string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return collectStrings(v)
}

func collectStrings(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		var out []string
		for _, e := range t {
			out = append(out, collectStrings(e)...)
		}
		return out
	case map[string]any:
		var out []string
		for _, e := range t {
			out = append(out, collectStrings(e)...)
		}
		return out
	default:
		return nil
	}
}
