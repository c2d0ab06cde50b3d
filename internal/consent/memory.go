package consent

import (
	"context"
	"sync"

	"github.com/vigil-sh/vigil/internal/core"
)

var _ core.ConsentStore = (*MemoryStore)(nil)

// MemoryStore is a session-scoped ConsentStore. Profiles live for the
// process lifetime; there is no persistence by design.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]core.ConsentProfile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]core.ConsentProfile),
	}
}

// Register onboards a profile. The youth invariant is enforced here as
// well: a youth profile can never carry commercial consent, regardless of
// what the caller passes in.
func (s *MemoryStore) Register(profile core.ConsentProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.IsYouth {
		profile.ShareCommercial = false
	}
	s.profiles[profile.OwnerID] = profile
}

func (s *MemoryStore) Get(_ context.Context, ownerID string) (core.ConsentProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[ownerID]
	if !ok {
		return core.ConsentProfile{}, &core.ValidationError{
			Field: "owner_id", Value: ownerID, Reason: "unknown owner",
		}
	}
	return profile, nil
}

func (s *MemoryStore) Set(_ context.Context, ownerID string, field core.ConsentField, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[ownerID]
	if !ok {
		return &core.ValidationError{Field: "owner_id", Value: ownerID, Reason: "unknown owner"}
	}

	// The write is all-or-nothing: validate everything before touching the
	// stored profile.
	switch field {
	case core.FieldShareTechnical, core.FieldShareMedical:
		b, err := boolValue(field, value)
		if err != nil {
			return err
		}
		if field == core.FieldShareTechnical {
			profile.ShareTechnical = b
		} else {
			profile.ShareMedical = b
		}

	case core.FieldShareCommercial:
		b, err := boolValue(field, value)
		if err != nil {
			return err
		}
		if profile.IsYouth {
			return &core.ConsentError{
				Kind: core.ConsentLocked, Field: field,
				Detail: "commercial sharing is governance-locked for youth owners",
			}
		}
		profile.ShareCommercial = b

	case core.FieldQuietHoursStart, core.FieldQuietHoursEnd:
		h, err := hourValue(field, value)
		if err != nil {
			return err
		}
		if profile.IsYouth {
			return &core.ConsentError{
				Kind: core.ConsentLocked, Field: field,
				Detail: "quiet hours are policy-fixed for youth owners",
			}
		}
		if field == core.FieldQuietHoursStart {
			profile.QuietHoursStart = h
		} else {
			profile.QuietHoursEnd = h
		}

	default:
		return &core.ValidationError{
			Field: "field", Value: string(field), Reason: "unknown consent field",
		}
	}

	s.profiles[ownerID] = profile
	return nil
}

func boolValue(field core.ConsentField, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, &core.ConsentError{
			Kind: core.ConsentInvalidRange, Field: field, Detail: "expected a boolean",
		}
	}
	return b, nil
}

func hourValue(field core.ConsentField, value any) (int, error) {
	var h int
	switch v := value.(type) {
	case int:
		h = v
	case float64: // JSON numbers decode as float64
		h = int(v)
		if float64(h) != v {
			return 0, &core.ConsentError{
				Kind: core.ConsentInvalidRange, Field: field, Detail: "expected a whole hour",
			}
		}
	default:
		return 0, &core.ConsentError{
			Kind: core.ConsentInvalidRange, Field: field, Detail: "expected an hour (0-23)",
		}
	}
	if h < 0 || h > 23 {
		return 0, &core.ConsentError{
			Kind: core.ConsentInvalidRange, Field: field, Detail: "hour must be within 0-23",
		}
	}
	return h, nil
}
