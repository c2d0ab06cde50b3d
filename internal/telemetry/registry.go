package telemetry

import (
	"fmt"

	"github.com/vigil-sh/vigil/internal/core"
)

// Build constructs the telemetry source named by sourceType with its
// inline config map.
func Build(sourceType string, cfg map[string]any) (core.TelemetrySource, error) {
	switch sourceType {
	case "", "synthetic":
		src, err := NewSyntheticSource(cfg)
		if err != nil {
			return nil, fmt.Errorf("building synthetic telemetry source: %w", err)
		}
		return src, nil
	case "static":
		src, err := NewStaticSource(cfg)
		if err != nil {
			return nil, fmt.Errorf("building static telemetry source: %w", err)
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unknown telemetry source type %q", sourceType)
	}
}
