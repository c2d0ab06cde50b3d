package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/vigil-sh/vigil/internal/core"
	"github.com/vigil-sh/vigil/internal/engine"
	"github.com/vigil-sh/vigil/internal/validation"
)

// Owner categories as declared in config. IsYouth is derived from this,
// never set directly.
const (
	CategoryProfessional = "professional"
	CategoryYouth        = "youth"
)

type Config struct {
	Owners    []OwnerConfig           `yaml:"owners"`
	Rules     []engine.GovernanceRule `yaml:"rules"`
	Telemetry TelemetryConfig         `yaml:"telemetry"`
	Audit     AuditConfig             `yaml:"audit"`
	Server    ServerConfig            `yaml:"server"`
}

// OwnerConfig declares one data owner known to this session.
type OwnerConfig struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Category string        `yaml:"category"` // "professional" or "youth"
	Consent  ConsentConfig `yaml:"consent"`
}

// ConsentConfig seeds the owner's initial sharing preferences.
type ConsentConfig struct {
	ShareTechnical  bool `yaml:"share_technical"`
	ShareMedical    bool `yaml:"share_medical"`
	ShareCommercial bool `yaml:"share_commercial"`
	QuietHoursStart int  `yaml:"quiet_hours_start"`
	QuietHoursEnd   int  `yaml:"quiet_hours_end"`
}

// TelemetryConfig selects the telemetry source feeding the insight
// computation.
type TelemetryConfig struct {
	Type   string         `yaml:"type"`    // e.g. "synthetic", "static"
	Config map[string]any `yaml:",inline"` // Capture remaining fields
}

// AuditConfig selects the audit ledger backend.
type AuditConfig struct {
	Type string `yaml:"type"` // e.g. "memory", "file"
	Path string `yaml:"path"`
}

// ServerConfig holds the HTTP facade settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`

	// SigningKey is the HMAC key for compliance API tokens.
	SigningKey string `yaml:"signing_key"`
}

// Load reads and parses the configuration file at the given path.
// It returns a Config struct or an error if loading/parsing/validation
// fails.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Owners) == 0 {
		return fmt.Errorf("no owners configured")
	}

	seenIDs := make(map[string]struct{})
	for idx, o := range c.Owners {
		if o.ID == "" {
			return fmt.Errorf("owner at index %d has empty id", idx)
		}
		if _, exists := seenIDs[o.ID]; exists {
			return fmt.Errorf("owner id '%s' is not unique", o.ID)
		}
		seenIDs[o.ID] = struct{}{}

		switch o.Category {
		case CategoryProfessional, CategoryYouth:
		case "":
			return fmt.Errorf("owner '%s' missing category", o.ID)
		default:
			return fmt.Errorf("owner '%s' has unknown category '%s'", o.ID, o.Category)
		}

		if o.Category == CategoryYouth && o.Consent.ShareCommercial {
			return fmt.Errorf("owner '%s' is youth: share_commercial cannot be enabled", o.ID)
		}

		for field, hour := range map[string]int{
			"quiet_hours_start": o.Consent.QuietHoursStart,
			"quiet_hours_end":   o.Consent.QuietHoursEnd,
		} {
			if hour < 0 || hour > 23 {
				return fmt.Errorf("owner '%s' %s out of range (0-23): %d", o.ID, field, hour)
			}
		}
	}

	validated, err := validation.ValidateRules(c.Rules)
	if err != nil {
		return fmt.Errorf("validating governance rules: %w", err)
	}
	c.Rules = validated

	switch c.Audit.Type {
	case "", "memory", "noop":
	case "file":
		if c.Audit.Path == "" {
			return fmt.Errorf("audit type 'file' requires a path")
		}
	default:
		return fmt.Errorf("unknown audit type '%s'", c.Audit.Type)
	}

	return nil
}

// Profile builds the initial ConsentProfile for an owner. Youth owners
// never carry commercial consent, and their rest window is enforced by the
// context evaluator independently of these values.
func (o OwnerConfig) Profile() core.ConsentProfile {
	profile := core.ConsentProfile{
		OwnerID:         o.ID,
		ShareTechnical:  o.Consent.ShareTechnical,
		ShareMedical:    o.Consent.ShareMedical,
		ShareCommercial: o.Consent.ShareCommercial,
		QuietHoursStart: o.Consent.QuietHoursStart,
		QuietHoursEnd:   o.Consent.QuietHoursEnd,
		IsYouth:         o.Category == CategoryYouth,
	}
	if profile.IsYouth {
		profile.ShareCommercial = false
	}
	return profile
}
