package repository

import "errors"

var ErrLookupFailed = errors.New("directory lookup failed")
