package telemetry

import (
	"context"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/vigil-sh/vigil/internal/core"
)

var _ core.TelemetrySource = (*StaticSource)(nil)

// StaticSampleConfig is one inline fixture sample.
type StaticSampleConfig struct {
	Hour        int `mapstructure:"hour"`
	HeartRate   int `mapstructure:"heart_rate"`
	Speed       int `mapstructure:"speed"`
	StressLevel int `mapstructure:"stress_level"`
}

// StaticSourceConfig maps owner IDs to fixture series.
type StaticSourceConfig struct {
	Samples map[string][]StaticSampleConfig `mapstructure:"samples"`
}

// StaticSource serves fixture samples from the config file. Useful for
// demos and for pinning insight behavior in tests.
type StaticSource struct {
	samples map[string][]core.Sample
}

func NewStaticSource(cfg map[string]any) (*StaticSource, error) {
	var c StaticSourceConfig
	if err := mapstructure.Decode(cfg, &c); err != nil {
		return nil, err
	}

	day := time.Now().Truncate(24 * time.Hour)
	samples := make(map[string][]core.Sample, len(c.Samples))
	for owner, series := range c.Samples {
		converted := make([]core.Sample, 0, len(series))
		for _, s := range series {
			converted = append(converted, core.Sample{
				Time:        day.Add(time.Duration(s.Hour) * time.Hour),
				HeartRate:   s.HeartRate,
				Speed:       s.Speed,
				StressLevel: s.StressLevel,
			})
		}
		samples[owner] = converted
	}
	return &StaticSource{samples: samples}, nil
}

func (s *StaticSource) Name() string {
	return "static"
}

func (s *StaticSource) Samples(_ context.Context, ownerID string, _ bool) ([]core.Sample, error) {
	series := s.samples[ownerID]
	out := make([]core.Sample, len(series))
	copy(out, series)
	return out, nil
}
