package middleware

import (
	"net/http"

	"github.com/rs/xid"

	"github.com/vigil-sh/vigil/internal/correlation"
)

const CorrelationIDHeader = "X-Correlation-ID"

// CorrelationIDMiddleware assigns every request a correlation ID (reusing
// the caller's, if sent) and echoes it in the response header. The ID ends
// up on the audit entry the request produces.
func CorrelationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		w.Header().Set(CorrelationIDHeader, id)

		next.ServeHTTP(w, r.WithContext(correlation.WithID(r.Context(), id)))
	})
}
