package filter

import "errors"

var (
	ErrMalformedFilter = errors.New("malformed filter payload")
	ErrNotAnObject     = errors.New("filter payload is not a JSON object")
)
