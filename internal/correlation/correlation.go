// Package correlation carries the per-request correlation ID through the
// context. It is the single place the ID is stored and read: the HTTP
// middleware sets it, the presenter echoes it in error responses, and the
// decision service stamps it onto audit entries.
package correlation

import "context"

type ctxKey struct{}

// WithID returns a context carrying the correlation ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation ID, or "" if none is set.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
