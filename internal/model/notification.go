package model

import "encoding/json"

// Subscriber classes as they appear on raw subscription records.
const (
	SubscriberClassUser        = "user"
	SubscriberClassIntegration = "integration"
	SubscriberClassPlaybook    = "playbook"
)

// Subscriber is one recipient binding on a raw subscription record.
type Subscriber struct {
	ID    string `json:"subscriber"`
	Class string `json:"class"`
}

// ChangeStamp is the audit stamp carried on raw subscription and schedule
// records.
type ChangeStamp struct {
	At int64  `json:"at"`
	By string `json:"by"`
}

// RawSchedule carries the reporting coordinates attached to scheduled-group
// records. Fields are passed through from the originating schedule object.
type RawSchedule struct {
	WorkbookID      string          `json:"workbook_id"`
	ViewID          string          `json:"view_id"`
	SiteID          string          `json:"site_id"`
	Format          string          `json:"format"`
	Cadence         string          `json:"cadence"`
	Definition      json.RawMessage `json:"definition,omitempty"`
	WorkbookSubMenu string          `json:"workbook_sub_menu,omitempty"`
	EmbedURL        string          `json:"embed_url,omitempty"`
	ContentURL      string          `json:"content_url,omitempty"`
	ReportFilters   json.RawMessage `json:"report_filters,omitempty"`
}

// RawCorrelation is the back-reference a raw incident record carries when it
// originated from a correlation rule.
type RawCorrelation struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// RawSubscriptionRecord is a subscription-or-schedule object exactly as the
// fetch layer hands it over. The engine reads it and never writes it back.
type RawSubscriptionRecord struct {
	ID         string `json:"id"`
	EntityCode string `json:"entityCode"`
	Caption    string `json:"caption"`
	AccountID  string `json:"account_id"`

	Created  ChangeStamp `json:"created"`
	Modified ChangeStamp `json:"modified"`

	Active          bool         `json:"active"`
	LastMessageSent int64        `json:"last_message_sent,omitempty"`
	EmailSubject    string       `json:"email_subject,omitempty"`
	WebhookPayload  string       `json:"webhook_payload,omitempty"`
	ExternalID      string       `json:"external_id,omitempty"`
	Subscribers     []Subscriber `json:"subscribers,omitempty"`

	// Filters is the raw searchlib filter object attached to the
	// subscription. The engine parses it but keeps the original too.
	Filters json.RawMessage `json:"filters,omitempty"`

	Escalated   bool            `json:"escalated,omitempty"`
	Correlation *RawCorrelation `json:"correlation,omitempty"`
	Schedule    *RawSchedule    `json:"schedule,omitempty"`
}

// ResolvedName is one entry of a resolved name list. Order always matches the
// raw id list the names were resolved from.
type ResolvedName struct {
	Name      string `json:"name"`
	IsCreator bool   `json:"isCreator"`
}

// ThreatLevel pairs a raw threat-level value with its display caption.
type ThreatLevel struct {
	Value   string `json:"value"`
	Caption string `json:"caption"`
}

// IncidentAlertFields are the incident-specific extensions of an enriched
// record.
type IncidentAlertFields struct {
	ThreatLevel []ThreatLevel   `json:"threatLevel"`
	Escalated   bool            `json:"escalated"`
	Correlation *RawCorrelation `json:"correlation,omitempty"`
}

// HealthAlertFields are the health-specific extensions of an enriched record.
type HealthAlertFields struct {
	Deployments []string `json:"deployments"`
}

// ScheduledReportFields are the report-specific extensions of an enriched
// record.
type ScheduledReportFields struct {
	WorkbookID        string   `json:"workbookId,omitempty"`
	ViewID            string   `json:"viewId,omitempty"`
	SiteID            string   `json:"siteId,omitempty"`
	Format            string   `json:"format,omitempty"`
	Schedule          any      `json:"schedule,omitempty"`
	WorkbookSubMenu   string   `json:"workbookSubMenu,omitempty"`
	WorkbookName      string   `json:"workbookName,omitempty"`
	ViewName          string   `json:"viewName,omitempty"`
	CadenceName       string   `json:"cadenceName,omitempty"`
	ArtifactCount     int      `json:"artifactCount"`
	EmbedURL          string   `json:"embedUrl,omitempty"`
	ContentURL        string   `json:"contentUrl,omitempty"`
	RunTime           int64    `json:"runTime,omitempty"`
	ReportFiltersSort []string `json:"reportFiltersSort,omitempty"`
}

// NotificationRecord is the flat, UI-ready projection of a raw record. It is
// a value object owned by whoever requested enrichment; it holds no reference
// back to the raw source and is safe to discard on every re-fetch.
type NotificationRecord struct {
	ID       string `json:"id"`
	Caption  string `json:"caption"`
	TopTitle string `json:"toptitle,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`

	CreatedTime    int64  `json:"createdTime,omitempty"`
	CreatedBy      string `json:"createdBy,omitempty"`
	CreatedByName  string `json:"createdByName,omitempty"`
	ModifiedTime   int64  `json:"modifiedTime,omitempty"`
	ModifiedBy     string `json:"modifiedBy,omitempty"`
	ModifiedByName string `json:"modifiedByName,omitempty"`

	AccountID string `json:"accountId,omitempty"`

	Subscribers     []Subscriber `json:"subscribers,omitempty"`
	Active          bool         `json:"active"`
	LastMessageSent int64        `json:"lastMessageSent,omitempty"`
	EmailSubject    string       `json:"emailSubject,omitempty"`
	WebhookPayload  string       `json:"webhookPayload,omitempty"`
	ExternalID      string       `json:"externalId,omitempty"`

	NotificationType NotificationType  `json:"notificationType"`
	Group            NotificationGroup `json:"group"`
	Unimplemented    bool              `json:"unimplemented,omitempty"`
	PseudoType       bool              `json:"pseudoType,omitempty"`

	Filters       json.RawMessage `json:"filters,omitempty"`
	FiltersParsed any             `json:"filtersParsed,omitempty"`
	Searchables   []string        `json:"searchables"`

	// Error carries non-fatal enrichment notices, e.g. a filter parse
	// failure. Free-form string, observed contract preserved from the
	// originating system.
	Error string `json:"error,omitempty"`

	Accounts         []string       `json:"accounts"`
	AccountsName     []ResolvedName `json:"accountsName"`
	Users            []string       `json:"users"`
	UsersName        []ResolvedName `json:"usersName"`
	Integrations     []string       `json:"integrations"`
	IntegrationsName []ResolvedName `json:"integrationsName"`
	Playbooks        []string       `json:"playbooks"`
	PlaybooksName    []ResolvedName `json:"playbooksName"`

	RecipientsTotal int `json:"recipientsTotal"`

	Incident *IncidentAlertFields   `json:"incident,omitempty"`
	Health   *HealthAlertFields     `json:"health,omitempty"`
	Report   *ScheduledReportFields `json:"report,omitempty"`
}
