package filter

import "notification-enricher/internal/model"

// Field aliases under which the originating systems attach clauses of
// interest to subscription filters.
var (
	threatLevelFields = []string{"threatLevels", "threat_levels", "threatLevel", "threat_level"}
	deploymentFields  = []string{"deployments", "deployment_ids", "deployment_id"}
	accountFields     = []string{"accounts", "account_ids", "account_id"}
)

// Caption table for known threat level values. Unknown values keep the raw
// value as caption so the UI still renders something meaningful.
var threatCaptions = map[string]string{
	"low":      "Low",
	"medium":   "Medium",
	"high":     "High",
	"critical": "Critical",
	"info":     "Info",
}

// ThreatLevels materializes the threat-level clauses of a structured query.
// Absence of such clauses yields an empty list, not an error.
func ThreatLevels(q StructuredQuery) []model.ThreatLevel {
	values := q.ValuesFor(threatLevelFields...)
	levels := make([]model.ThreatLevel, 0, len(values))
	for _, v := range values {
		caption, ok := threatCaptions[v]
		if !ok {
			caption = v
		}
		levels = append(levels, model.ThreatLevel{Value: v, Caption: caption})
	}
	return levels
}

// Deployments collects deployment ids referenced by the query.
func Deployments(q StructuredQuery) []string {
	out := q.ValuesFor(deploymentFields...)
	if out == nil {
		out = []string{}
	}
	return out
}

// AccountRefs collects account ids referenced by the query.
func AccountRefs(q StructuredQuery) []string {
	out := q.ValuesFor(accountFields...)
	if out == nil {
		out = []string{}
	}
	return out
}
