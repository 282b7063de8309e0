package report

import "context"

// Workbook carries the display coordinates of one reporting view.
type Workbook struct {
	WorkbookName string
	ViewName     string
	EmbedURL     string
	ContentURL   string
}

//go:generate mockery --name Catalog
type Catalog interface {
	// Workbook resolves workbook/view display names and links for a
	// scheduled report.
	Workbook(ctx context.Context, siteID, workbookID, viewID string) (Workbook, error)
}

//go:generate mockery --name ArtifactStore
type ArtifactStore interface {
	// Count returns how many generated artifacts exist for a schedule.
	Count(ctx context.Context, accountID, scheduleID string) (int, error)
}
