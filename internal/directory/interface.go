package directory

import (
	"context"

	"notification-enricher/internal/model"
)

//go:generate mockery --name Resolver
type Resolver interface {
	// Resolve maps raw ids of one kind onto display names, order-preserving.
	// The returned list always has exactly len(ids) entries; ids that cannot
	// be resolved (missing, lookup error, timeout) get the placeholder name,
	// never dropped. IsCreator is set on entries whose id equals creatorID.
	Resolve(ctx context.Context, ids []string, creatorID string, kind Kind) []model.ResolvedName

	// ResolveAll resolves the four id sets of one record. The four kinds are
	// resolved independently and concurrently; the call returns once all
	// four are joined.
	ResolveAll(ctx context.Context, ip ResolveAllInput) ResolveAllOutput

	// Names is the raw bulk lookup: ids that resolved map to their display
	// name, everything else is absent. Unlike Resolve it surfaces the lookup
	// error so callers can distinguish "not found" from "directory down".
	Names(ctx context.Context, ids []string, kind Kind) (map[string]string, error)
}
