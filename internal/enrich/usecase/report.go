package usecase

import (
	"context"
	"encoding/json"
	"time"

	"notification-enricher/internal/filter"
	"notification-enricher/internal/model"
)

// Cadence values accepted on raw schedules. Anything else surfaces verbatim
// as the cadence name.
const (
	cadenceDaily   = "daily"
	cadenceWeekly  = "weekly"
	cadenceMonthly = "monthly"
	cadenceQuarter = "every_15_minutes"
	cadenceASAP    = "asap"
)

// enrichReport attaches the report-specific block. Catalog and artifact-store
// lookups are best effort: a dead downstream never blocks projection.
func (uc *usecase) enrichReport(ctx context.Context, rec *model.NotificationRecord, raw model.RawSubscriptionRecord) {
	fields := &model.ScheduledReportFields{}
	rec.Report = fields

	sched := raw.Schedule
	if sched == nil {
		return
	}

	fields.WorkbookID = sched.WorkbookID
	fields.ViewID = sched.ViewID
	fields.SiteID = sched.SiteID
	fields.Format = sched.Format
	fields.WorkbookSubMenu = sched.WorkbookSubMenu
	fields.EmbedURL = sched.EmbedURL
	fields.ContentURL = sched.ContentURL
	fields.CadenceName = cadenceName(sched.Cadence)
	fields.RunTime = nextRunTime(uc.clock().UTC(), sched.Cadence)

	if len(sched.Definition) > 0 {
		var def any
		if err := json.Unmarshal(sched.Definition, &def); err == nil {
			fields.Schedule = def
		}
	}
	if len(sched.ReportFilters) > 0 {
		fields.ReportFiltersSort = filter.ObjectKeys(sched.ReportFilters)
	}

	if uc.catalog != nil && sched.WorkbookID != "" {
		wb, err := uc.catalog.Workbook(ctx, sched.SiteID, sched.WorkbookID, sched.ViewID)
		if err != nil {
			uc.l.Warnf(ctx, "internal.enrich.usecase.enrichReport.Workbook: record %s: %v", rec.ID, err)
		} else {
			fields.WorkbookName = wb.WorkbookName
			fields.ViewName = wb.ViewName
			if fields.EmbedURL == "" {
				fields.EmbedURL = wb.EmbedURL
			}
			if fields.ContentURL == "" {
				fields.ContentURL = wb.ContentURL
			}
		}
	}

	if uc.artifacts != nil {
		count, err := uc.artifacts.Count(ctx, raw.AccountID, raw.ID)
		if err != nil {
			uc.l.Warnf(ctx, "internal.enrich.usecase.enrichReport.Count: record %s: %v", rec.ID, err)
		} else {
			fields.ArtifactCount = count
		}
	}
}

// cadenceName maps a raw cadence onto its display name. Unknown cadences pass
// through untouched so new upstream values render something.
func cadenceName(cadence string) string {
	switch cadence {
	case cadenceDaily:
		return "Daily"
	case cadenceWeekly:
		return "Weekly"
	case cadenceMonthly:
		return "Monthly"
	case cadenceQuarter:
		return "Every 15 minutes"
	case cadenceASAP:
		return "As soon as possible"
	default:
		return cadence
	}
}

// nextRunTime computes the next delivery instant for a cadence, in UTC epoch
// milliseconds. Runs anchor to midnight for calendar cadences and to quarter
// hours for the 15-minute one; asap and unknown cadences run now.
func nextRunTime(now time.Time, cadence string) int64 {
	switch cadence {
	case cadenceDaily:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return midnight.AddDate(0, 0, 1).UnixMilli()
	case cadenceWeekly:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return midnight.AddDate(0, 0, days).UnixMilli()
	case cadenceMonthly:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first.AddDate(0, 1, 0).UnixMilli()
	case cadenceQuarter:
		anchor := now.Truncate(15 * time.Minute)
		return anchor.Add(15 * time.Minute).UnixMilli()
	default:
		return now.UnixMilli()
	}
}
