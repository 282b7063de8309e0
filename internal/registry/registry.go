package registry

import "notification-enricher/internal/model"

// Registry is the process-wide classification table mapping entity codes to
// notification type descriptors. It is populated once by New and read-only
// afterwards, so concurrent lookups need no synchronization.
type Registry struct {
	table   map[string]model.TypeDescriptor
	unknown model.TypeDescriptor
}

// New builds the registry from the fixed seed table.
func New() *Registry {
	return &Registry{
		table: map[string]model.TypeDescriptor{
			"artifacts": {
				EntityCode:       "artifacts",
				NotificationType: model.TypeUnknown,
				Group:            model.GroupScheduled,
			},
			"incident": {
				EntityCode:       "incident",
				NotificationType: model.TypeIncident,
				Group:            model.GroupAlert,
			},
			"observation": {
				// The inner entity code intentionally differs from the
				// lookup key; the originating endpoints reuse the
				// scheduled_report entity for observations.
				EntityCode:       "scheduled_report",
				NotificationType: model.TypeObservation,
				Group:            model.GroupAlert,
				Unimplemented:    true,
			},
			"scheduled_report": {
				EntityCode:       "scheduled_report",
				NotificationType: model.TypeTableau,
				Group:            model.GroupScheduled,
			},
			"scheduled_search": {
				EntityCode:       "scheduled_search",
				NotificationType: model.TypeSearch,
				Group:            model.GroupScheduled,
			},
			"manage_alerts": {
				EntityCode:       "manage_alerts",
				NotificationType: model.TypeUnknown,
				Group:            model.GroupAlert,
				PseudoType:       true,
			},
			"manage_scheduled": {
				EntityCode:       "manage_scheduled",
				NotificationType: model.TypeUnknown,
				Group:            model.GroupScheduled,
				PseudoType:       true,
			},
			"health": {
				EntityCode:       "health",
				NotificationType: model.TypeHealth,
				Group:            model.GroupAlert,
			},
		},
		unknown: model.TypeDescriptor{
			EntityCode:       "unknown",
			NotificationType: model.TypeUnknown,
			Group:            model.GroupAlert,
			Unimplemented:    true,
			PseudoType:       true,
		},
	}
}

// Lookup resolves an entity code to its descriptor. It is a total function:
// codes not in the table resolve to the unknown descriptor, never an error.
func (r *Registry) Lookup(entityCode string) model.TypeDescriptor {
	if d, ok := r.table[entityCode]; ok {
		return d
	}
	return r.unknown
}

// Unknown returns the fallback descriptor used for unmatched entity codes.
func (r *Registry) Unknown() model.TypeDescriptor {
	return r.unknown
}

// All returns every seeded descriptor keyed by lookup code. The returned map
// is a copy; mutating it does not affect the registry.
func (r *Registry) All() map[string]model.TypeDescriptor {
	out := make(map[string]model.TypeDescriptor, len(r.table))
	for code, d := range r.table {
		out[code] = d
	}
	return out
}

// IsImplemented reports whether records of this type are fully functional.
func IsImplemented(d model.TypeDescriptor) bool {
	return !d.Unimplemented
}

// IsPseudoType reports whether the descriptor is a synthetic grouping with no
// 1:1 backing subscription type.
func IsPseudoType(d model.TypeDescriptor) bool {
	return d.PseudoType
}
