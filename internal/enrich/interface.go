package enrich

import (
	"context"

	"notification-enricher/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Enrich classifies one raw subscription-or-schedule record and projects
	// it into the flat UI-ready shape. It always returns a record for any
	// structurally valid input; parse and resolution problems are recorded
	// on the record, never raised.
	Enrich(ctx context.Context, raw model.RawSubscriptionRecord) (model.NotificationRecord, error)

	// EnrichBatch enriches records independently. On cancellation it
	// returns the fully assembled prefix together with the context error;
	// no partially enriched record is ever returned.
	EnrichBatch(ctx context.Context, raws []model.RawSubscriptionRecord) ([]model.NotificationRecord, error)

	// Types exposes the classification table for the notification UI.
	Types(ctx context.Context) map[string]model.TypeDescriptor
}
