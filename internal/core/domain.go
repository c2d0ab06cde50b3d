package core

import (
	"fmt"
	"time"
)

// Role identifies the principal requesting visibility into an owner's data.
// Roles are asserted by the caller, not proven; Vigil decides what an
// asserted role may see, it does not authenticate anyone.
type Role string

const (
	// RoleAthlete is a professional athlete viewing their own data.
	RoleAthlete Role = "athlete"

	// RoleYouthAthlete is a minor athlete viewing their own data.
	// Youth accounts are subject to protective governance (rest window,
	// commercial lock).
	RoleYouthAthlete Role = "youth_athlete"

	// RoleCoach is the coaching staff; subject to consent gates and
	// geo-fencing.
	RoleCoach Role = "coach"

	// RoleCommercialPartner is an external licensee; only ever sees the
	// commercial category.
	RoleCommercialPartner Role = "commercial_partner"

	// RoleComplianceOfficer audits the system; treated as a generic
	// internal viewer for data access.
	RoleComplianceOfficer Role = "compliance_officer"
)

// ParseRole converts a string into a known Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAthlete, RoleYouthAthlete, RoleCoach, RoleCommercialPartner, RoleComplianceOfficer:
		return Role(s), nil
	}
	return "", &ValidationError{Field: "role", Value: s, Reason: "unknown role"}
}

// IsOwner reports whether this role is the data owner viewing their own
// data. Consent gates outbound sharing, not self-access.
func (r Role) IsOwner() bool {
	return r == RoleAthlete || r == RoleYouthAthlete
}

// Valid reports whether the role is a known enum value.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Location is the physical context the request is made from.
type Location string

const (
	LocationTrainingGround Location = "training_ground"
	LocationHome           Location = "home"
	LocationSchoolPublic   Location = "school_public"
)

// ParseLocation converts a string into a known Location.
func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case LocationTrainingGround, LocationHome, LocationSchoolPublic:
		return Location(s), nil
	}
	return "", &ValidationError{Field: "location", Value: s, Reason: "unknown location"}
}

// Valid reports whether the location is a known enum value.
func (l Location) Valid() bool {
	_, err := ParseLocation(string(l))
	return err == nil
}

// Category is one of the sensor-derived data streams governed by consent.
type Category string

const (
	// CategoryTechnical covers performance data (speed, distance).
	CategoryTechnical Category = "technical"

	// CategoryMedical covers health data (heart rate, stress).
	CategoryMedical Category = "medical"

	// CategoryCommercial covers biometrics licensed for marketing.
	CategoryCommercial Category = "commercial"
)

// AllCategories lists every governed category in canonical order.
func AllCategories() []Category {
	return []Category{CategoryTechnical, CategoryMedical, CategoryCommercial}
}

// ConsentProfile holds one data owner's sharing preferences.
// It is mutated only through a ConsentStore; the decision engine reads it.
type ConsentProfile struct {
	OwnerID string `json:"owner_id"`

	ShareTechnical  bool `json:"share_technical"`
	ShareMedical    bool `json:"share_medical"`
	ShareCommercial bool `json:"share_commercial"`

	// QuietHours* define the window in which context-based denial applies.
	// The check is literally `hour >= start || hour < end`, so the default
	// start=20, end=8 allows access only in [8,20).
	QuietHoursStart int `json:"quiet_hours_start"`
	QuietHoursEnd   int `json:"quiet_hours_end"`

	// IsYouth is derived from the owner's declared category and is not
	// owner-editable. When set, ShareCommercial is forced false and the
	// quiet-hour fields are governance-locked.
	IsYouth bool `json:"is_youth"`
}

// ConsentField names a writable field of a ConsentProfile.
type ConsentField string

const (
	FieldShareTechnical  ConsentField = "share_technical"
	FieldShareMedical    ConsentField = "share_medical"
	FieldShareCommercial ConsentField = "share_commercial"
	FieldQuietHoursStart ConsentField = "quiet_hours_start"
	FieldQuietHoursEnd   ConsentField = "quiet_hours_end"
)

// ParseConsentField converts a string into a known ConsentField.
func ParseConsentField(s string) (ConsentField, error) {
	switch ConsentField(s) {
	case FieldShareTechnical, FieldShareMedical, FieldShareCommercial,
		FieldQuietHoursStart, FieldQuietHoursEnd:
		return ConsentField(s), nil
	}
	return "", &ValidationError{Field: "field", Value: s, Reason: "unknown consent field"}
}

// ContextSnapshot captures the situational inputs of a single request.
// It is evaluated and discarded, never stored.
type ContextSnapshot struct {
	Hour     int      `json:"hour"`
	Location Location `json:"location"`
	Viewer   Role     `json:"viewer"`
}

// Insight is a derived annotation attached to granted decisions. It never
// influences the grant itself.
type Insight struct {
	// MaxSpeedKmh is present when the technical category is visible.
	MaxSpeedKmh *int `json:"max_speed_kmh,omitempty"`

	// AvgHeartRateBpm is present when the medical category is visible.
	AvgHeartRateBpm *int `json:"avg_heart_rate_bpm,omitempty"`

	// HighStress flags a latest stress sample above the burnout threshold.
	HighStress bool `json:"high_stress"`

	// Guidance is the human-readable summary of the mental-state check.
	Guidance string `json:"guidance,omitempty"`
}

// AccessDecision is the outcome of a single decide() request.
type AccessDecision struct {
	Granted           bool       `json:"granted"`
	Reason            string     `json:"reason"`
	VisibleCategories []Category `json:"visible_categories,omitempty"`
	Insight           *Insight   `json:"insight,omitempty"`
}

// Sample is one telemetry reading supplied by the external telemetry
// source. Vigil never validates sensor integrity; samples feed the insight
// computation only.
type Sample struct {
	Time        time.Time `json:"time"`
	HeartRate   int       `json:"heart_rate"`
	Speed       int       `json:"speed"`
	StressLevel int       `json:"stress_level"`
}

func (s Sample) String() string {
	return fmt.Sprintf("hr=%d speed=%d stress=%d @ %s",
		s.HeartRate, s.Speed, s.StressLevel, s.Time.Format(time.RFC3339))
}
