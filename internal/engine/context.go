package engine

import "github.com/vigil-sh/vigil/internal/core"

// Context evaluation reasons. These strings are part of the decision
// contract and are pinned by tests.
const (
	ReasonYouthRestWindow = "Youth protection: mandatory rest window"
	ReasonQuietHours      = "Quiet hours active"
	ReasonActiveContext   = "Active context"
)

// Youth rest window: fixed by policy, independent of any configured quiet
// hours.
const (
	youthRestStart = 20
	youthRestEnd   = 7
)

// contextRule is one entry of the ordered context rule table. Rules are
// not mutually exclusive; the first match wins.
type contextRule struct {
	name    string
	applies func(snap core.ContextSnapshot, profile core.ConsentProfile) bool
	reason  string
}

var contextRules = []contextRule{
	{
		name: "youth_rest_window",
		applies: func(snap core.ContextSnapshot, _ core.ConsentProfile) bool {
			return snap.Viewer == core.RoleYouthAthlete &&
				windowActive(snap.Hour, youthRestStart, youthRestEnd)
		},
		reason: ReasonYouthRestWindow,
	},
	{
		name: "quiet_hours",
		applies: func(snap core.ContextSnapshot, profile core.ConsentProfile) bool {
			return windowActive(snap.Hour, profile.QuietHoursStart, profile.QuietHoursEnd)
		},
		reason: ReasonQuietHours,
	},
}

// EvaluateContext maps (hour, viewer, owner quiet hours) to an access
// verdict and a human-readable reason. It is a pure function and is
// independent of consent flags.
func EvaluateContext(snap core.ContextSnapshot, profile core.ConsentProfile) (bool, string) {
	for _, rule := range contextRules {
		if rule.applies(snap, profile) {
			return false, rule.reason
		}
	}
	return true, ReasonActiveContext
}

// windowActive reports whether hour falls into the deny window
// [start,24) or [0,end). The comparison is intentionally literal: with the
// default start=20, end=8 the allowed window is exactly [8,20), inclusive
// start and exclusive end. The same comparison is applied for any
// configured pair, including the degenerate start <= end case.
func windowActive(hour, start, end int) bool {
	return hour >= start || hour < end
}
