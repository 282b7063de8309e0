package model

// NotificationGroup indicates whether a notification type fires on a backend
// event or on a time cadence.
type NotificationGroup string

const (
	GroupAlert     NotificationGroup = "alert"
	GroupScheduled NotificationGroup = "scheduled"
)

// IsValid checks if the notification group is valid.
func (g NotificationGroup) IsValid() bool {
	switch g {
	case GroupAlert, GroupScheduled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the group.
func (g NotificationGroup) String() string {
	return string(g)
}

// NotificationType is the long-form type string bound to templates on the
// notification backend.
type NotificationType string

const (
	TypeUnknown     NotificationType = "unknown/unknown"
	TypeIncident    NotificationType = "incidents/alerts"
	TypeObservation NotificationType = "observations/notification"
	TypeTableau     NotificationType = "tableau/notifications"
	TypeSearch      NotificationType = "search/notifications"
	TypeHealth      NotificationType = "health/alerts"
)

// TypeDescriptor describes one notification type as the classification table
// knows it. Descriptors are immutable after process start.
type TypeDescriptor struct {
	// EntityCode is the short form used by the originating API surface,
	// e.g. "scheduled_report".
	EntityCode string `json:"entityCode"`

	// NotificationType is the long form, e.g. "tableau/notifications".
	NotificationType NotificationType `json:"notificationType"`

	// Group indicates whether the type is invoked dynamically or on a schedule.
	Group NotificationGroup `json:"group"`

	// Unimplemented marks a type that will exist but is not fully functional
	// yet. Consumers must not assume enrichment succeeds for it.
	Unimplemented bool `json:"unimplemented,omitempty"`

	// PseudoType marks a synthetic grouping that does not relate 1:1 with a
	// backing notification type. Pseudo-typed records are aggregation-only.
	PseudoType bool `json:"pseudoType,omitempty"`
}
