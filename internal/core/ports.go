package core

import "context"

// ConsentStore owns every ConsentProfile for the current session.
// Implementations must make writes mutually exclusive with reads of the
// same profile.
type ConsentStore interface {
	// Get returns a copy of the owner's profile.
	Get(ctx context.Context, ownerID string) (ConsentProfile, error)

	// Set writes one field of the owner's profile. Writes are
	// all-or-nothing and immediately visible to subsequent reads.
	// Governance-locked fields fail with a ConsentError of kind Locked.
	Set(ctx context.Context, ownerID string, field ConsentField, value any) error
}

// TelemetrySource supplies per-owner sensor samples for the insight
// computation. Implementations: synthetic generator, static fixtures.
type TelemetrySource interface {
	// Name returns the identifier of this source (as used in config).
	Name() string

	// Samples returns the owner's time series, oldest first.
	Samples(ctx context.Context, ownerID string, youth bool) ([]Sample, error)
}
