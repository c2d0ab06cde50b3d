package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `
owners:
  - id: marta
    name: Marta Silva
    category: professional
    consent:
      share_technical: true
      share_medical: true
      quiet_hours_start: 20
      quiet_hours_end: 8
  - id: jonas
    name: Jonas Weber
    category: youth
    consent:
      share_technical: true
      quiet_hours_start: 20
      quiet_hours_end: 8
rules:
  - name: no_school_access
    deny_reason: "School grounds: data access suspended"
    expr: location == "school_public" && role != "compliance_officer"
telemetry:
  type: synthetic
  seed: 42
audit:
  type: memory
server:
  addr: ":8420"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vigil.yml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Owners) != 2 {
		t.Fatalf("len(Owners) = %d, want 2", len(cfg.Owners))
	}
	if cfg.Telemetry.Type != "synthetic" {
		t.Errorf("Telemetry.Type = %q, want synthetic", cfg.Telemetry.Type)
	}
	if seed, ok := cfg.Telemetry.Config["seed"]; !ok {
		t.Error("inline telemetry config lost the seed key")
	} else if _, isMap := seed.(map[string]any); isMap {
		t.Errorf("seed decoded as a map: %v", seed)
	}

	// rules come back compiled
	if len(cfg.Rules) != 1 || cfg.Rules[0].Compiled == nil {
		t.Errorf("rules not compiled during validation: %+v", cfg.Rules)
	}

	// the youth owner's derived profile
	profile := cfg.Owners[1].Profile()
	if !profile.IsYouth {
		t.Error("category 'youth' did not derive IsYouth")
	}
	if profile.ShareCommercial {
		t.Error("youth profile carries commercial consent")
	}

	pro := cfg.Owners[0].Profile()
	if pro.IsYouth || !pro.ShareTechnical || !pro.ShareMedical || pro.QuietHoursStart != 20 {
		t.Errorf("professional profile = %+v", pro)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "youth with commercial consent",
			mutate: func(c string) string {
				// only the youth owner's consent block lacks share_medical
				return strings.Replace(c,
					"share_technical: true\n      quiet_hours_start: 20",
					"share_technical: true\n      share_commercial: true\n      quiet_hours_start: 20", 1)
			},
			wantErr: "share_commercial",
		},
		{
			name:    "duplicate owner id",
			mutate:  func(c string) string { return strings.Replace(c, "id: jonas", "id: marta", 1) },
			wantErr: "not unique",
		},
		{
			name:    "unknown category",
			mutate:  func(c string) string { return strings.Replace(c, "category: youth", "category: junior", 1) },
			wantErr: "unknown category",
		},
		{
			name:    "quiet hour out of range",
			mutate:  func(c string) string { return strings.Replace(c, "quiet_hours_end: 8", "quiet_hours_end: 24", 1) },
			wantErr: "out of range",
		},
		{
			name:    "bad rule expression",
			mutate:  func(c string) string { return strings.Replace(c, `expr: location == "school_public" && role != "compliance_officer"`, "expr: hour +", 1) },
			wantErr: "governance rules",
		},
		{
			name:    "non-boolean rule expression",
			mutate:  func(c string) string { return strings.Replace(c, `expr: location == "school_public" && role != "compliance_officer"`, "expr: hour + 1", 1) },
			wantErr: "governance rules",
		},
		{
			name:    "unknown audit type",
			mutate:  func(c string) string { return strings.Replace(c, "type: memory", "type: syslog", 1) },
			wantErr: "unknown audit type",
		},
		{
			name:    "file audit without path",
			mutate:  func(c string) string { return strings.Replace(c, "type: memory", "type: file", 1) },
			wantErr: "requires a path",
		},
		{
			name:    "no owners",
			mutate:  func(string) string { return "owners: []\n" },
			wantErr: "no owners",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mutate(validConfig)))
			if err == nil {
				t.Fatal("Load() accepted an invalid config")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
