package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"notification-enricher/internal/directory"
	"notification-enricher/internal/enrich"
	"notification-enricher/internal/model"
	"notification-enricher/internal/registry"
	"notification-enricher/internal/report"
	pkgLog "notification-enricher/pkg/log"
)

type mockResolver struct {
	names map[string]string
}

func (m *mockResolver) Resolve(_ context.Context, ids []string, creatorID string, _ directory.Kind) []model.ResolvedName {
	out := make([]model.ResolvedName, 0, len(ids))
	for _, id := range ids {
		name, ok := m.names[id]
		if !ok {
			name = directory.PlaceholderName
		}
		out = append(out, model.ResolvedName{Name: name, IsCreator: id == creatorID})
	}
	return out
}

func (m *mockResolver) ResolveAll(ctx context.Context, ip directory.ResolveAllInput) directory.ResolveAllOutput {
	return directory.ResolveAllOutput{
		Accounts:     m.Resolve(ctx, ip.Accounts, ip.CreatorID, directory.KindAccounts),
		Users:        m.Resolve(ctx, ip.Users, ip.CreatorID, directory.KindUsers),
		Integrations: m.Resolve(ctx, ip.Integrations, ip.CreatorID, directory.KindIntegrations),
		Playbooks:    m.Resolve(ctx, ip.Playbooks, ip.CreatorID, directory.KindPlaybooks),
	}
}

func (m *mockResolver) Names(_ context.Context, ids []string, _ directory.Kind) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		if name, ok := m.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

type mockCatalog struct {
	workbook report.Workbook
	err      error
}

func (m *mockCatalog) Workbook(context.Context, string, string, string) (report.Workbook, error) {
	return m.workbook, m.err
}

type mockArtifacts struct {
	count int
	err   error
}

func (m *mockArtifacts) Count(context.Context, string, string) (int, error) {
	return m.count, m.err
}

func newTestUsecase(resolver directory.Resolver, catalog report.Catalog, artifacts report.ArtifactStore) *usecase {
	l := pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelError, Mode: pkgLog.ModeDevelopment, Encoding: pkgLog.EncodingConsole})
	uc := New(l, registry.New(), resolver, catalog, artifacts).(*usecase)
	uc.clock = func() time.Time { return time.Date(2024, time.March, 6, 10, 7, 0, 0, time.UTC) }
	return uc
}

func TestEnrich_IncidentAlert(t *testing.T) {
	resolver := &mockResolver{names: map[string]string{
		"u-1": "Ada Lovelace",
		"u-2": "Grace Hopper",
		"i-1": "PagerDuty",
	}}
	uc := newTestUsecase(resolver, nil, nil)

	raw := model.RawSubscriptionRecord{
		ID:         "sub-1",
		EntityCode: "incident",
		Caption:    "Critical incidents",
		AccountID:  "acc-1",
		Created:    model.ChangeStamp{At: 1700000000000, By: "u-1"},
		Modified:   model.ChangeStamp{At: 1700000001000, By: "u-2"},
		Active:     true,
		Subscribers: []model.Subscriber{
			{ID: "u-1", Class: model.SubscriberClassUser},
			{ID: "u-2", Class: model.SubscriberClassUser},
			{ID: "i-1", Class: model.SubscriberClassIntegration},
			{ID: "p-1", Class: model.SubscriberClassPlaybook},
		},
		Filters:     json.RawMessage(`{"threatLevels": ["high", "critical"], "accounts": ["acc-1"]}`),
		Escalated:   true,
		Correlation: &model.RawCorrelation{ID: "corr-1", Name: "Brute force"},
	}

	rec, err := uc.Enrich(context.Background(), raw)
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}

	if rec.NotificationType != model.TypeIncident || rec.Group != model.GroupAlert {
		t.Errorf("classified as %s/%s", rec.NotificationType, rec.Group)
	}
	if rec.TopTitle != "incidents/alerts" || rec.Subtitle != "incident" {
		t.Errorf("titles = %q / %q", rec.TopTitle, rec.Subtitle)
	}
	if rec.Error != "" {
		t.Errorf("unexpected record error %q", rec.Error)
	}
	if rec.RecipientsTotal != 4 {
		t.Errorf("recipientsTotal = %d, want 4", rec.RecipientsTotal)
	}
	if len(rec.UsersName) != 2 || rec.UsersName[0].Name != "Ada Lovelace" || !rec.UsersName[0].IsCreator {
		t.Errorf("usersName = %+v", rec.UsersName)
	}
	if len(rec.PlaybooksName) != 1 || rec.PlaybooksName[0].Name != directory.PlaceholderName {
		t.Errorf("playbooksName = %+v", rec.PlaybooksName)
	}
	if rec.CreatedByName != "Ada Lovelace" || rec.ModifiedByName != "Grace Hopper" {
		t.Errorf("audit names = %q / %q", rec.CreatedByName, rec.ModifiedByName)
	}
	if len(rec.Accounts) != 1 || rec.Accounts[0] != "acc-1" {
		t.Errorf("accounts = %v", rec.Accounts)
	}

	if rec.Incident == nil {
		t.Fatal("incident block missing")
	}
	if !rec.Incident.Escalated {
		t.Error("escalated flag dropped")
	}
	if rec.Incident.Correlation == nil || rec.Incident.Correlation.ID != "corr-1" {
		t.Errorf("correlation = %+v", rec.Incident.Correlation)
	}
	want := []model.ThreatLevel{{Value: "high", Caption: "High"}, {Value: "critical", Caption: "Critical"}}
	if len(rec.Incident.ThreatLevel) != len(want) {
		t.Fatalf("threatLevel = %+v", rec.Incident.ThreatLevel)
	}
	for i := range want {
		if rec.Incident.ThreatLevel[i] != want[i] {
			t.Errorf("threatLevel[%d] = %+v, want %+v", i, rec.Incident.ThreatLevel[i], want[i])
		}
	}
	if rec.Health != nil || rec.Report != nil {
		t.Error("foreign subtype blocks attached")
	}
}

func TestEnrich_UnknownCodeFallsBack(t *testing.T) {
	uc := newTestUsecase(&mockResolver{}, nil, nil)

	rec, err := uc.Enrich(context.Background(), model.RawSubscriptionRecord{
		ID:         "sub-2",
		EntityCode: "totally/bogus",
		Filters:    json.RawMessage(`{"threatLevels": ["high"]}`),
	})
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}

	if rec.NotificationType != model.TypeUnknown {
		t.Errorf("notificationType = %s", rec.NotificationType)
	}
	if !rec.Unimplemented || !rec.PseudoType {
		t.Error("unknown descriptor flags not carried")
	}
	if rec.Group != model.GroupAlert {
		t.Errorf("group = %s", rec.Group)
	}
	if rec.Incident != nil || rec.Health != nil || rec.Report != nil {
		t.Error("pseudo type must not get subtype fields")
	}
	if rec.Error != "" {
		t.Errorf("unknown code is not an error, got %q", rec.Error)
	}
}

func TestEnrich_MalformedFilter(t *testing.T) {
	uc := newTestUsecase(&mockResolver{}, nil, nil)

	rec, err := uc.Enrich(context.Background(), model.RawSubscriptionRecord{
		ID:         "sub-3",
		EntityCode: "incident",
		Filters:    json.RawMessage(`{"threatLevels": [`),
	})
	if err != nil {
		t.Fatalf("malformed filter must not fail enrichment: %v", err)
	}
	if rec.Error == "" {
		t.Error("parse failure not recorded on record")
	}
	if rec.Incident == nil {
		t.Fatal("incident block missing")
	}
	if len(rec.Incident.ThreatLevel) != 0 {
		t.Errorf("threatLevel = %+v, want empty", rec.Incident.ThreatLevel)
	}
}

func TestEnrich_MissingID(t *testing.T) {
	uc := newTestUsecase(&mockResolver{}, nil, nil)

	_, err := uc.Enrich(context.Background(), model.RawSubscriptionRecord{EntityCode: "incident"})
	if !errors.Is(err, enrich.ErrInvalidRawRecord) {
		t.Errorf("err = %v, want ErrInvalidRawRecord", err)
	}
}

func TestEnrich_HealthAlert(t *testing.T) {
	uc := newTestUsecase(&mockResolver{}, nil, nil)

	rec, err := uc.Enrich(context.Background(), model.RawSubscriptionRecord{
		ID:         "sub-4",
		EntityCode: "health",
		Filters:    json.RawMessage(`{"deployments": ["dep-1", "dep-2"]}`),
	})
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if rec.Health == nil {
		t.Fatal("health block missing")
	}
	if len(rec.Health.Deployments) != 2 || rec.Health.Deployments[0] != "dep-1" {
		t.Errorf("deployments = %v", rec.Health.Deployments)
	}
}

func TestEnrich_ScheduledReport(t *testing.T) {
	catalog := &mockCatalog{workbook: report.Workbook{WorkbookName: "Threat Overview", ViewName: "By Region"}}
	artifacts := &mockArtifacts{count: 3}
	uc := newTestUsecase(&mockResolver{}, catalog, artifacts)

	rec, err := uc.Enrich(context.Background(), model.RawSubscriptionRecord{
		ID:         "sub-5",
		EntityCode: "scheduled_report",
		AccountID:  "acc-1",
		Schedule: &model.RawSchedule{
			WorkbookID:    "wb-1",
			ViewID:        "vw-1",
			SiteID:        "site-1",
			Format:        "pdf",
			Cadence:       "weekly",
			ReportFilters: json.RawMessage(`{"region": "emea", "severity": "high"}`),
		},
	})
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}

	if rec.Group != model.GroupScheduled || rec.NotificationType != model.TypeTableau {
		t.Errorf("classified as %s/%s", rec.NotificationType, rec.Group)
	}
	r := rec.Report
	if r == nil {
		t.Fatal("report block missing")
	}
	if r.WorkbookName != "Threat Overview" || r.ViewName != "By Region" {
		t.Errorf("workbook names = %q / %q", r.WorkbookName, r.ViewName)
	}
	if r.CadenceName != "Weekly" {
		t.Errorf("cadenceName = %q", r.CadenceName)
	}
	if r.ArtifactCount != 3 {
		t.Errorf("artifactCount = %d", r.ArtifactCount)
	}
	// Clock is Wednesday 2024-03-06; next weekly run is Monday 2024-03-11.
	wantRun := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC).UnixMilli()
	if r.RunTime != wantRun {
		t.Errorf("runTime = %d, want %d", r.RunTime, wantRun)
	}
	if len(r.ReportFiltersSort) != 2 || r.ReportFiltersSort[0] != "region" || r.ReportFiltersSort[1] != "severity" {
		t.Errorf("reportFiltersSort = %v", r.ReportFiltersSort)
	}
}

func TestEnrich_ReportDownstreamFailuresAreNonFatal(t *testing.T) {
	catalog := &mockCatalog{err: report.ErrCatalogDown}
	artifacts := &mockArtifacts{err: errors.New("bucket gone")}
	uc := newTestUsecase(&mockResolver{}, catalog, artifacts)

	rec, err := uc.Enrich(context.Background(), model.RawSubscriptionRecord{
		ID:         "sub-6",
		EntityCode: "scheduled_search",
		Schedule: &model.RawSchedule{
			WorkbookID: "wb-1",
			Cadence:    "asap",
		},
	})
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	r := rec.Report
	if r == nil {
		t.Fatal("report block missing")
	}
	if r.WorkbookName != "" || r.ArtifactCount != 0 {
		t.Errorf("degraded fields = %q / %d", r.WorkbookName, r.ArtifactCount)
	}
	if r.CadenceName != "As soon as possible" {
		t.Errorf("cadenceName = %q", r.CadenceName)
	}
}

func TestEnrichBatch_PreservesOrder(t *testing.T) {
	uc := newTestUsecase(&mockResolver{}, nil, nil)

	raws := []model.RawSubscriptionRecord{
		{ID: "a", EntityCode: "incident"},
		{ID: "b", EntityCode: "health"},
		{ID: "c", EntityCode: "nope"},
	}
	recs, err := uc.EnrichBatch(context.Background(), raws)
	if err != nil {
		t.Fatalf("EnrichBatch: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len = %d", len(recs))
	}
	for i, raw := range raws {
		if recs[i].ID != raw.ID {
			t.Errorf("recs[%d].ID = %q, want %q", i, recs[i].ID, raw.ID)
		}
	}
}

func TestEnrichBatch_Cancelled(t *testing.T) {
	uc := newTestUsecase(&mockResolver{}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs, err := uc.EnrichBatch(ctx, []model.RawSubscriptionRecord{
		{ID: "a", EntityCode: "incident"},
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records after cancellation", len(recs))
	}
}

func TestNextRunTime(t *testing.T) {
	now := time.Date(2024, time.March, 6, 10, 7, 0, 0, time.UTC)

	tcs := []struct {
		cadence string
		want    time.Time
	}{
		{"daily", time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)},
		{"weekly", time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)},
		{"monthly", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{"every_15_minutes", time.Date(2024, time.March, 6, 10, 15, 0, 0, time.UTC)},
		{"asap", now},
	}
	for _, tc := range tcs {
		if got := nextRunTime(now, tc.cadence); got != tc.want.UnixMilli() {
			t.Errorf("nextRunTime(%s) = %d, want %d", tc.cadence, got, tc.want.UnixMilli())
		}
	}
}

func TestTypes(t *testing.T) {
	uc := newTestUsecase(&mockResolver{}, nil, nil)

	types := uc.Types(context.Background())
	if len(types) == 0 {
		t.Fatal("no types returned")
	}
	obs, ok := types["observation"]
	if !ok {
		t.Fatal("observation type missing")
	}
	if obs.EntityCode != "scheduled_report" {
		t.Errorf("observation entityCode = %q", obs.EntityCode)
	}
}
