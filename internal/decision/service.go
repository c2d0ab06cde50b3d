package decision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vigil-sh/vigil/internal/core"
	"github.com/vigil-sh/vigil/internal/correlation"
	"github.com/vigil-sh/vigil/internal/decision/metrics"
	"github.com/vigil-sh/vigil/internal/engine"
	"github.com/vigil-sh/vigil/internal/visibility"
)

// Denial reasons produced by the decision steps after context evaluation.
// Like the context reasons, these strings are part of the contract.
const (
	ReasonGeoFenced     = "Geo-fenced privacy"
	ReasonYouthProtocol = "Youth protection protocol"
	ReasonAllDataHidden = "All data hidden: consent revoked"
	ReasonPartnerOptOut = "Athlete opted out"

	highStressGuidance  = "Rest required"
	mentalStateOK       = "Mental state OK"
	stressBurnoutCutoff = 7
)

// Request is one access request as handed over by the UI layer.
// Role and location are already parsed; Validate rejects anything the
// enums don't cover before evaluation starts.
type Request struct {
	Viewer   core.Role     `json:"viewer"`
	OwnerID  string        `json:"owner_id"`
	Hour     int           `json:"hour"`
	Location core.Location `json:"location"`
}

func (r Request) validate() error {
	if !r.Viewer.Valid() {
		return &core.ValidationError{Field: "role", Value: string(r.Viewer), Reason: "unknown role"}
	}
	if !r.Location.Valid() {
		return &core.ValidationError{Field: "location", Value: string(r.Location), Reason: "unknown location"}
	}
	if r.Hour < 0 || r.Hour > 23 {
		return &core.ValidationError{
			Field: "hour", Value: fmt.Sprintf("%d", r.Hour), Reason: "hour must be within 0-23",
		}
	}
	return nil
}

// Service is the decision engine: it composes the context evaluator, the
// governance rules, the visibility filter and the telemetry insight into a
// single access decision per request, and writes exactly one audit entry
// per terminal outcome.
type Service struct {
	store      core.ConsentStore
	auditor    core.Auditor
	telemetry  core.TelemetrySource
	governance *engine.Engine
	metrics    *metrics.Metrics
}

func NewService(
	store core.ConsentStore,
	auditor core.Auditor,
	telemetry core.TelemetrySource,
	governance *engine.Engine,
	m *metrics.Metrics,
) *Service {
	if governance == nil {
		governance = engine.New(nil)
	}
	return &Service{
		store:      store,
		auditor:    auditor,
		telemetry:  telemetry,
		governance: governance,
		metrics:    m,
	}
}

// Decide evaluates one access request. Denials are valid outcomes, not
// errors; the only error paths are malformed input (no audit entry is
// written, nothing was evaluated) and governance evaluation failures.
func (s *Service) Decide(ctx context.Context, req Request) (*core.AccessDecision, error) {
	logger := log.Ctx(ctx)
	start := time.Now()

	if err := req.validate(); err != nil {
		return nil, err
	}

	profile, err := s.store.Get(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	entry := core.AuditEntry{
		ID:     correlation.FromContext(ctx),
		Time:   time.Now(),
		Viewer: req.Viewer,
		Owner:  req.OwnerID,
		Action: core.ActionDataView,
		Status: core.StatusDenied,
	}
	defer func() {
		if err := s.auditor.Log(entry); err != nil {
			logger.Error().Err(err).Msg("failed to write audit log entry for access decision")
		}
		s.metrics.IncrementOutcome(string(entry.Status), entry.Details, string(req.Viewer))
		s.metrics.ObserveDecideLatency(time.Since(start))
	}()

	snapshot := core.ContextSnapshot{Hour: req.Hour, Location: req.Location, Viewer: req.Viewer}

	// 1. context rules: no field computation happens on a context denial
	if allowed, reason := engine.EvaluateContext(snapshot, profile); !allowed {
		entry.Details = reason
		return s.denied(reason), nil
	}

	// 2. geo-fencing: coaching staff never sees data from the athlete's home
	if req.Viewer == core.RoleCoach && req.Location == core.LocationHome {
		entry.Details = ReasonGeoFenced
		return s.denied(ReasonGeoFenced), nil
	}

	// 3. youth protection beats any commercial consent value
	if req.Viewer == core.RoleCommercialPartner && profile.IsYouth {
		entry.Details = ReasonYouthProtocol
		return s.denied(ReasonYouthProtocol), nil
	}

	// 4. configured governance rules (deny-only, declaration order)
	govDenied, govReason, err := s.governance.EvaluateGovernance(snapshot, profile)
	if err != nil {
		entry.Details = "governance evaluation failed"
		return nil, fmt.Errorf("governance evaluation failed: %w", err)
	}
	if govDenied {
		entry.Details = govReason
		return s.denied(govReason), nil
	}

	// 5. consent-driven visibility
	categories := visibility.Visible(profile, req.Viewer)
	if len(categories) == 0 {
		reason := ReasonAllDataHidden
		if req.Viewer == core.RoleCommercialPartner {
			reason = ReasonPartnerOptOut
		}
		entry.Details = reason
		return s.denied(reason), nil
	}

	decision := &core.AccessDecision{
		Granted:           true,
		Reason:            engine.ReasonActiveContext,
		VisibleCategories: categories,
		Insight:           s.insight(ctx, profile, categories),
	}

	entry.Status = core.StatusGranted
	entry.Details = decision.Reason
	return decision, nil
}

func (s *Service) denied(reason string) *core.AccessDecision {
	return &core.AccessDecision{Granted: false, Reason: reason}
}

// insight derives the annotation for a granted decision. It can only
// enrich the result; a telemetry failure is logged and the grant stands
// without an insight.
func (s *Service) insight(ctx context.Context, profile core.ConsentProfile, categories []core.Category) *core.Insight {
	wantTechnical := visibility.Has(categories, core.CategoryTechnical)
	wantMedical := visibility.Has(categories, core.CategoryMedical)
	if s.telemetry == nil || (!wantTechnical && !wantMedical) {
		return nil
	}

	samples, err := s.telemetry.Samples(ctx, profile.OwnerID, profile.IsYouth)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("owner", profile.OwnerID).
			Msg("telemetry unavailable, granting without insight")
		return nil
	}
	if len(samples) == 0 {
		return nil
	}

	insight := &core.Insight{}

	if wantTechnical {
		maxSpeed := samples[0].Speed
		for _, sample := range samples[1:] {
			if sample.Speed > maxSpeed {
				maxSpeed = sample.Speed
			}
		}
		insight.MaxSpeedKmh = &maxSpeed
	}

	if wantMedical {
		sum := 0
		for _, sample := range samples {
			sum += sample.HeartRate
		}
		avg := sum / len(samples)
		insight.AvgHeartRateBpm = &avg

		// burnout check on the latest stress sample
		if samples[len(samples)-1].StressLevel > stressBurnoutCutoff {
			insight.HighStress = true
			insight.Guidance = highStressGuidance
		} else {
			insight.Guidance = mentalStateOK
		}
	}

	return insight
}

// ReadConsent exposes the owner's profile to the UI layer.
func (s *Service) ReadConsent(ctx context.Context, ownerID string) (core.ConsentProfile, error) {
	return s.store.Get(ctx, ownerID)
}

// WriteConsent applies one consent mutation and audits the attempt.
// Governance-locked writes are audited as DENIED; malformed values
// (invalid range, unknown field/owner) fail without an audit entry.
func (s *Service) WriteConsent(ctx context.Context, ownerID string, field core.ConsentField, value any) error {
	err := s.store.Set(ctx, ownerID, field, value)

	var consentErr *core.ConsentError
	switch {
	case err == nil:
		s.metrics.IncrementConsentWrite(string(field), "ok")
		s.auditConsentWrite(ctx, ownerID, field, core.StatusGranted, "consent updated")
	case errors.As(err, &consentErr) && consentErr.Kind == core.ConsentLocked:
		s.metrics.IncrementConsentWrite(string(field), "locked")
		s.auditConsentWrite(ctx, ownerID, field, core.StatusDenied, consentErr.Detail)
	default:
		s.metrics.IncrementConsentWrite(string(field), "invalid")
	}
	return err
}

func (s *Service) auditConsentWrite(ctx context.Context, ownerID string, field core.ConsentField, status core.AuditStatus, details string) {
	// consent is mutated by its owner; record which kind of owner it was
	viewer := core.RoleAthlete
	if profile, err := s.store.Get(ctx, ownerID); err == nil && profile.IsYouth {
		viewer = core.RoleYouthAthlete
	}

	entry := core.AuditEntry{
		ID:      correlation.FromContext(ctx),
		Time:    time.Now(),
		Viewer:  viewer,
		Owner:   ownerID,
		Action:  core.ActionConsentWrite,
		Status:  status,
		Details: fmt.Sprintf("%s: %s", field, details),
	}
	if err := s.auditor.Log(entry); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to write audit log entry for consent write")
	}
}

// ListAudit returns the full decision ledger in insertion order.
func (s *Service) ListAudit() ([]core.AuditEntry, error) {
	return s.auditor.List()
}
