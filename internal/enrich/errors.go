package enrich

import "errors"

// ErrInvalidRawRecord indicates an upstream contract violation (a record
// with no identity at all), not expected data variance. It is the only way
// Enrich fails.
var ErrInvalidRawRecord = errors.New("raw record has no id")
