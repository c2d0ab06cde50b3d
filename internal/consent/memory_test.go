package consent

import (
	"context"
	"errors"
	"testing"

	"github.com/vigil-sh/vigil/internal/core"
)

func newStore(youth bool) *MemoryStore {
	store := NewMemoryStore()
	store.Register(core.ConsentProfile{
		OwnerID:         "owner-1",
		ShareTechnical:  true,
		ShareMedical:    true,
		QuietHoursStart: 20,
		QuietHoursEnd:   8,
		IsYouth:         youth,
	})
	return store
}

func TestMemoryStore_WritesVisibleImmediately(t *testing.T) {
	ctx := context.Background()
	store := newStore(false)

	if err := store.Set(ctx, "owner-1", core.FieldShareMedical, false); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	profile, err := store.Get(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if profile.ShareMedical {
		t.Error("ShareMedical still true after write")
	}
}

func TestMemoryStore_YouthCommercialLock(t *testing.T) {
	ctx := context.Background()
	store := newStore(true)

	err := store.Set(ctx, "owner-1", core.FieldShareCommercial, true)

	var consentErr *core.ConsentError
	if !errors.As(err, &consentErr) || consentErr.Kind != core.ConsentLocked {
		t.Fatalf("Set() error = %v, want ConsentError kind locked", err)
	}

	// the write is all-or-nothing: the stored value must be untouched
	profile, err := store.Get(ctx, "owner-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if profile.ShareCommercial {
		t.Error("ShareCommercial flipped despite locked write")
	}
}

func TestMemoryStore_YouthQuietHoursLock(t *testing.T) {
	ctx := context.Background()
	store := newStore(true)

	for _, field := range []core.ConsentField{core.FieldQuietHoursStart, core.FieldQuietHoursEnd} {
		err := store.Set(ctx, "owner-1", field, 18)

		var consentErr *core.ConsentError
		if !errors.As(err, &consentErr) || consentErr.Kind != core.ConsentLocked {
			t.Errorf("Set(%s) error = %v, want ConsentError kind locked", field, err)
		}
	}

	profile, _ := store.Get(ctx, "owner-1")
	if profile.QuietHoursStart != 20 || profile.QuietHoursEnd != 8 {
		t.Errorf("quiet hours changed to %d/%d despite locked writes",
			profile.QuietHoursStart, profile.QuietHoursEnd)
	}
}

func TestMemoryStore_RegisterForcesYouthInvariant(t *testing.T) {
	store := NewMemoryStore()
	store.Register(core.ConsentProfile{
		OwnerID:         "owner-2",
		ShareCommercial: true, // must be dropped for youth owners
		IsYouth:         true,
	})

	profile, err := store.Get(context.Background(), "owner-2")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if profile.ShareCommercial {
		t.Error("youth profile registered with commercial consent enabled")
	}
}

func TestMemoryStore_HourValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		value any
	}{
		{name: "negative hour", value: -1},
		{name: "hour out of range", value: 24},
		{name: "wrong type", value: "eight"},
		{name: "fractional hour", value: 8.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(false)
			err := store.Set(ctx, "owner-1", core.FieldQuietHoursEnd, tt.value)

			var consentErr *core.ConsentError
			if !errors.As(err, &consentErr) || consentErr.Kind != core.ConsentInvalidRange {
				t.Fatalf("Set() error = %v, want ConsentError kind invalid_range", err)
			}

			profile, _ := store.Get(ctx, "owner-1")
			if profile.QuietHoursEnd != 8 {
				t.Errorf("QuietHoursEnd = %d after rejected write, want 8", profile.QuietHoursEnd)
			}
		})
	}
}

func TestMemoryStore_JSONNumbersAccepted(t *testing.T) {
	// JSON bodies decode numbers as float64; whole values must pass.
	ctx := context.Background()
	store := newStore(false)

	if err := store.Set(ctx, "owner-1", core.FieldQuietHoursStart, float64(21)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	profile, _ := store.Get(ctx, "owner-1")
	if profile.QuietHoursStart != 21 {
		t.Errorf("QuietHoursStart = %d, want 21", profile.QuietHoursStart)
	}
}

func TestMemoryStore_UnknownOwner(t *testing.T) {
	ctx := context.Background()
	store := newStore(false)

	var validationErr *core.ValidationError

	_, err := store.Get(ctx, "ghost")
	if !errors.As(err, &validationErr) {
		t.Errorf("Get(ghost) error = %v, want ValidationError", err)
	}

	err = store.Set(ctx, "ghost", core.FieldShareMedical, true)
	if !errors.As(err, &validationErr) {
		t.Errorf("Set(ghost) error = %v, want ValidationError", err)
	}
}
