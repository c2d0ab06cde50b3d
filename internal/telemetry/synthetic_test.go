package telemetry

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSyntheticSource_Deterministic(t *testing.T) {
	ctx := context.Background()

	source, err := NewSyntheticSource(map[string]any{"seed": 42})
	if err != nil {
		t.Fatalf("NewSyntheticSource() error = %v", err)
	}

	first, err := source.Samples(ctx, "owner-1", false)
	if err != nil {
		t.Fatalf("Samples() error = %v", err)
	}
	second, _ := source.Samples(ctx, "owner-1", false)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed and owner produced different series (-first +second):\n%s", diff)
	}
}

func TestSyntheticSource_OwnerMixedIntoSeed(t *testing.T) {
	ctx := context.Background()
	source, _ := NewSyntheticSource(map[string]any{"seed": 42})

	a, _ := source.Samples(ctx, "owner-1", false)
	b, _ := source.Samples(ctx, "owner-2", false)

	if cmp.Equal(a, b) {
		t.Error("different owners produced identical series")
	}
}

func TestSyntheticSource_SeriesShape(t *testing.T) {
	ctx := context.Background()
	source, _ := NewSyntheticSource(map[string]any{"seed": 7})

	tests := []struct {
		name         string
		youth        bool
		hrMin, hrMax int
	}{
		{name: "professional band", youth: false, hrMin: 60, hrMax: 180},
		{name: "youth band", youth: true, hrMin: 100, hrMax: 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := source.Samples(ctx, "owner-1", tt.youth)
			if err != nil {
				t.Fatalf("Samples() error = %v", err)
			}
			if len(samples) != 11 {
				t.Fatalf("len(samples) = %d, want 11 (hourly 10:00 through 20:00)", len(samples))
			}

			for i, sample := range samples {
				if hour := sample.Time.Hour(); hour != 10+i {
					t.Errorf("sample %d: hour = %d, want %d", i, hour, 10+i)
				}
				if sample.HeartRate < tt.hrMin || sample.HeartRate >= tt.hrMax {
					t.Errorf("sample %d: heart rate %d outside [%d,%d)", i, sample.HeartRate, tt.hrMin, tt.hrMax)
				}
				if sample.Speed < 5 || sample.Speed >= 35 {
					t.Errorf("sample %d: speed %d outside [5,35)", i, sample.Speed)
				}
				if sample.StressLevel < 2 || sample.StressLevel >= 9 {
					t.Errorf("sample %d: stress %d outside [2,9)", i, sample.StressLevel)
				}
			}
		})
	}
}
