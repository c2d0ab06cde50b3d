package telemetry

import (
	"context"
	"testing"
)

func TestStaticSource_ServesFixtures(t *testing.T) {
	ctx := context.Background()

	source, err := NewStaticSource(map[string]any{
		"samples": map[string]any{
			"owner-1": []map[string]any{
				{"hour": 10, "heart_rate": 110, "speed": 21, "stress_level": 3},
				{"hour": 14, "heart_rate": 145, "speed": 33, "stress_level": 8},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewStaticSource() error = %v", err)
	}

	samples, err := source.Samples(ctx, "owner-1", false)
	if err != nil {
		t.Fatalf("Samples() error = %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("len(samples) = %d, want 2", len(samples))
	}
	if samples[0].Time.Hour() != 10 || samples[1].Time.Hour() != 14 {
		t.Errorf("sample hours = %d/%d, want 10/14", samples[0].Time.Hour(), samples[1].Time.Hour())
	}
	if samples[1].HeartRate != 145 || samples[1].Speed != 33 || samples[1].StressLevel != 8 {
		t.Errorf("sample[1] = %+v, want fixture values", samples[1])
	}

	// unknown owners get an empty series, not an error
	none, err := source.Samples(ctx, "ghost", false)
	if err != nil || len(none) != 0 {
		t.Errorf("Samples(ghost) = (%v, %v), want empty series", none, err)
	}
}

func TestStaticSource_BadConfig(t *testing.T) {
	_, err := NewStaticSource(map[string]any{
		"samples": map[string]any{
			"owner-1": []map[string]any{
				{"hour": "ten"},
			},
		},
	})
	if err == nil {
		t.Fatal("NewStaticSource() accepted a non-numeric hour")
	}
}

func TestBuild_SourceRegistry(t *testing.T) {
	tests := []struct {
		name       string
		sourceType string
		wantName   string
		wantErr    bool
	}{
		{name: "default is synthetic", sourceType: "", wantName: "synthetic"},
		{name: "synthetic", sourceType: "synthetic", wantName: "synthetic"},
		{name: "static", sourceType: "static", wantName: "static"},
		{name: "unknown type", sourceType: "influx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := Build(tt.sourceType, map[string]any{"seed": 1})
			if tt.wantErr {
				if err == nil {
					t.Fatal("Build() accepted an unknown source type")
				}
				return
			}
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if source.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", source.Name(), tt.wantName)
			}
		})
	}
}
