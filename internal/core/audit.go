package core

import "time"

// AuditStatus is the terminal state recorded for an audited action.
type AuditStatus string

const (
	StatusGranted AuditStatus = "GRANTED"
	StatusDenied  AuditStatus = "DENIED"
)

// Audited actions.
const (
	ActionDataView     = "data.view"
	ActionConsentWrite = "consent.write"
)

// AuditEntry is one record in the append-only decision ledger.
// Entries are never mutated or removed after append; Seq is assigned by
// the Auditor and is monotonic in real append order.
type AuditEntry struct {
	// Seq is the monotonic sequence number assigned on append.
	Seq uint64 `json:"seq"`

	// ID is the request correlation ID, if the caller supplied one.
	ID string `json:"id,omitempty"`

	// Time is when the decision was made.
	Time time.Time `json:"time"`

	// Viewer is the role that requested access.
	Viewer Role `json:"viewer"`

	// Owner is the data owner whose data was targeted.
	Owner string `json:"owner"`

	// Action describes what happened (e.g. "data.view").
	Action string `json:"action"`

	// Status is the terminal outcome.
	Status AuditStatus `json:"status"`

	// Details is the human-readable reason for the outcome.
	Details string `json:"details,omitempty"`
}

// Auditor is the append-only decision ledger.
//
// Log must be safe under concurrent writers and preserve a total order
// consistent with real append time. It is expected not to fail in normal
// operation; persistent-backed implementations surface append failures
// distinctly and never silently drop entries.
type Auditor interface {
	Log(entry AuditEntry) error

	// List returns every entry in insertion order. Read access is not
	// content-filtered here; restricting callers is the transport's job.
	List() ([]AuditEntry, error)

	// GetRecent returns the newest entries, up to limit, in insertion order.
	GetRecent(limit int) ([]AuditEntry, error)

	// Find returns the newest entries matching the filter, up to limit.
	Find(filter func(entry AuditEntry) bool, limit int) ([]AuditEntry, error)

	Close() error
}
