package presenter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/vigil-sh/vigil/internal/core"
	"github.com/vigil-sh/vigil/internal/correlation"
)

type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id"`
}

func JSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to write json response")
	}
}

func Error(w http.ResponseWriter, r *http.Request, msg string, status int) {
	resp := ErrorResponse{
		Error:         msg,
		CorrelationID: correlation.FromContext(r.Context()),
	}
	JSON(w, r, resp, status)
}

// Err maps core error kinds to HTTP statuses: malformed input is a 400,
// a governance-locked consent write is a 403, everything else is a 500.
func Err(w http.ResponseWriter, r *http.Request, err error, short string) {
	status := http.StatusInternalServerError

	var validationErr *core.ValidationError
	var consentErr *core.ConsentError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &consentErr):
		if consentErr.Kind == core.ConsentLocked {
			status = http.StatusForbidden
		} else {
			status = http.StatusBadRequest
		}
	}

	Error(w, r, short+": "+err.Error(), status)
}
