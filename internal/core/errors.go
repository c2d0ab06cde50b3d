package core

import "fmt"

// ConsentErrorKind classifies why a consent write was rejected.
type ConsentErrorKind string

const (
	// ConsentLocked means the field is governance-locked for this owner
	// (youth protection) and cannot be altered by normal consent writes.
	ConsentLocked ConsentErrorKind = "locked"

	// ConsentInvalidRange means the value is outside the field's valid
	// domain (e.g. an hour outside 0-23, or a wrongly typed value).
	ConsentInvalidRange ConsentErrorKind = "invalid_range"
)

// ConsentError is returned by ConsentStore.Set when a write is rejected.
// The write is all-or-nothing: no state change occurred.
type ConsentError struct {
	Kind   ConsentErrorKind
	Field  ConsentField
	Detail string
}

func (e *ConsentError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("consent write to %q rejected (%s): %s", e.Field, e.Kind, e.Detail)
	}
	return fmt.Sprintf("consent write to %q rejected (%s)", e.Field, e.Kind)
}

// ValidationError indicates malformed input: an unknown enum value, an
// out-of-range hour, or an unknown owner. Nothing was evaluated and no
// audit entry is produced for these.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
