package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/vigil-sh/vigil/internal/api/presenter"
	"github.com/vigil-sh/vigil/internal/core"
)

// ConsentWritePayload is the request body of the consent PATCH endpoint.
type ConsentWritePayload struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

func (s *Server) handleGetConsent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := s.service.ReadConsent(ctx, r.PathValue("owner"))
	if err != nil {
		presenter.Err(w, r, err, "reading consent failed")
		return
	}

	presenter.JSON(w, r, profile, http.StatusOK)
}

func (s *Server) handleSetConsent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	var payload ConsentWritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		presenter.Error(w, r, "invalid request body", http.StatusBadRequest)
		return
	}

	field, err := core.ParseConsentField(payload.Field)
	if err != nil {
		presenter.Err(w, r, err, "invalid consent field")
		return
	}

	ownerID := r.PathValue("owner")
	if err := s.service.WriteConsent(ctx, ownerID, field, payload.Value); err != nil {
		logger.Warn().Err(err).Str("owner", ownerID).Str("field", payload.Field).
			Msg("consent write rejected")
		presenter.Err(w, r, err, "consent write rejected")
		return
	}

	profile, err := s.service.ReadConsent(ctx, ownerID)
	if err != nil {
		presenter.Err(w, r, err, "reading consent failed")
		return
	}
	presenter.JSON(w, r, profile, http.StatusOK)
}
