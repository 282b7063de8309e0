package report

import "errors"

var (
	ErrWorkbookNotFound = errors.New("workbook not found")
	ErrCatalogDown      = errors.New("report catalog unavailable")
)
