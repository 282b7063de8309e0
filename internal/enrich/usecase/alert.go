package usecase

import (
	"notification-enricher/internal/filter"
	"notification-enricher/internal/model"
)

// enrichIncident attaches the incident-specific block: threat levels pulled
// out of the parsed filter, the escalation flag and the correlation
// back-reference carried on the raw record.
func (uc *usecase) enrichIncident(rec *model.NotificationRecord, raw model.RawSubscriptionRecord, q filter.StructuredQuery) {
	rec.Incident = &model.IncidentAlertFields{
		ThreatLevel: filter.ThreatLevels(q),
		Escalated:   raw.Escalated,
		Correlation: raw.Correlation,
	}
}

// enrichHealth attaches the health-specific block: the deployment ids the
// subscription filters on.
func (uc *usecase) enrichHealth(rec *model.NotificationRecord, q filter.StructuredQuery) {
	rec.Health = &model.HealthAlertFields{
		Deployments: filter.Deployments(q),
	}
}
