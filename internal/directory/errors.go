package directory

import "errors"

var (
	ErrUnknownKind = errors.New("unknown directory kind")
	ErrNoDirectory = errors.New("no directory registered for kind")
)
