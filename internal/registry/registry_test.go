package registry

import (
	"testing"

	"notification-enricher/internal/model"
)

func TestRegistry_Lookup(t *testing.T) {
	r := New()

	tests := []struct {
		name       string
		entityCode string
		wantCode   string
		wantType   model.NotificationType
		wantGroup  model.NotificationGroup
		wantUnimpl bool
		wantPseudo bool
	}{
		{
			name:       "incident",
			entityCode: "incident",
			wantCode:   "incident",
			wantType:   model.TypeIncident,
			wantGroup:  model.GroupAlert,
		},
		{
			name:       "health",
			entityCode: "health",
			wantCode:   "health",
			wantType:   model.TypeHealth,
			wantGroup:  model.GroupAlert,
		},
		{
			name:       "scheduled report",
			entityCode: "scheduled_report",
			wantCode:   "scheduled_report",
			wantType:   model.TypeTableau,
			wantGroup:  model.GroupScheduled,
		},
		{
			name:       "scheduled search",
			entityCode: "scheduled_search",
			wantCode:   "scheduled_search",
			wantType:   model.TypeSearch,
			wantGroup:  model.GroupScheduled,
		},
		{
			name:       "observation maps to scheduled_report entity",
			entityCode: "observation",
			wantCode:   "scheduled_report",
			wantType:   model.TypeObservation,
			wantGroup:  model.GroupAlert,
			wantUnimpl: true,
		},
		{
			name:       "artifacts",
			entityCode: "artifacts",
			wantCode:   "artifacts",
			wantType:   model.TypeUnknown,
			wantGroup:  model.GroupScheduled,
		},
		{
			name:       "manage alerts pseudo type",
			entityCode: "manage_alerts",
			wantCode:   "manage_alerts",
			wantType:   model.TypeUnknown,
			wantGroup:  model.GroupAlert,
			wantPseudo: true,
		},
		{
			name:       "manage scheduled pseudo type",
			entityCode: "manage_scheduled",
			wantCode:   "manage_scheduled",
			wantType:   model.TypeUnknown,
			wantGroup:  model.GroupScheduled,
			wantPseudo: true,
		},
		{
			name:       "unknown code falls back",
			entityCode: "bogus-code",
			wantCode:   "unknown",
			wantType:   model.TypeUnknown,
			wantGroup:  model.GroupAlert,
			wantUnimpl: true,
			wantPseudo: true,
		},
		{
			name:       "empty code falls back",
			entityCode: "",
			wantCode:   "unknown",
			wantType:   model.TypeUnknown,
			wantGroup:  model.GroupAlert,
			wantUnimpl: true,
			wantPseudo: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := r.Lookup(tt.entityCode)
			if d.EntityCode != tt.wantCode {
				t.Errorf("Lookup(%q).EntityCode = %q, want %q", tt.entityCode, d.EntityCode, tt.wantCode)
			}
			if d.NotificationType != tt.wantType {
				t.Errorf("Lookup(%q).NotificationType = %q, want %q", tt.entityCode, d.NotificationType, tt.wantType)
			}
			if d.Group != tt.wantGroup {
				t.Errorf("Lookup(%q).Group = %q, want %q", tt.entityCode, d.Group, tt.wantGroup)
			}
			if d.Unimplemented != tt.wantUnimpl {
				t.Errorf("Lookup(%q).Unimplemented = %v, want %v", tt.entityCode, d.Unimplemented, tt.wantUnimpl)
			}
			if d.PseudoType != tt.wantPseudo {
				t.Errorf("Lookup(%q).PseudoType = %v, want %v", tt.entityCode, d.PseudoType, tt.wantPseudo)
			}
		})
	}
}

func TestRegistry_LookupDeterministic(t *testing.T) {
	r := New()

	first := r.Lookup("no-such-code")
	for i := 0; i < 10; i++ {
		if got := r.Lookup("no-such-code"); got != first {
			t.Fatalf("Lookup not deterministic: %+v != %+v", got, first)
		}
	}
	if first != r.Unknown() {
		t.Errorf("unmatched lookup = %+v, want unknown descriptor %+v", first, r.Unknown())
	}
}

func TestRegistry_SeedEntityCodes(t *testing.T) {
	r := New()

	// Every seed row keeps its own entity code except observation, which
	// intentionally reuses the scheduled_report entity.
	for code, d := range r.All() {
		want := code
		if code == "observation" {
			want = "scheduled_report"
		}
		if d.EntityCode != want {
			t.Errorf("seed %q has entity code %q, want %q", code, d.EntityCode, want)
		}
	}
}

func TestRegistry_Helpers(t *testing.T) {
	r := New()

	if !IsImplemented(r.Lookup("incident")) {
		t.Error("incident should be implemented")
	}
	if IsImplemented(r.Lookup("observation")) {
		t.Error("observation should not be implemented")
	}
	if IsPseudoType(r.Lookup("incident")) {
		t.Error("incident should not be a pseudo type")
	}
	if !IsPseudoType(r.Lookup("manage_alerts")) {
		t.Error("manage_alerts should be a pseudo type")
	}
}
