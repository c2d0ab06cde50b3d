package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/vigil-sh/vigil/internal/api/presenter"
	"github.com/vigil-sh/vigil/internal/core"
	"github.com/vigil-sh/vigil/internal/decision"
)

// DecidePayload is the request body of the decide endpoint.
type DecidePayload struct {
	ViewerRole string `json:"viewer_role"`
	OwnerID    string `json:"owner_id"`
	Hour       int    `json:"hour"`
	Location   string `json:"location"`
}

// handleDecide runs one access decision. A denial is a 200 with
// granted=false; only malformed input or an engine failure is an error.
func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	var payload DecidePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		presenter.Error(w, r, "invalid request body", http.StatusBadRequest)
		return
	}

	role, err := core.ParseRole(payload.ViewerRole)
	if err != nil {
		presenter.Err(w, r, err, "invalid viewer role")
		return
	}
	location, err := core.ParseLocation(payload.Location)
	if err != nil {
		presenter.Err(w, r, err, "invalid location")
		return
	}

	result, err := s.service.Decide(ctx, decision.Request{
		Viewer:   role,
		OwnerID:  payload.OwnerID,
		Hour:     payload.Hour,
		Location: location,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("decision failed")
		presenter.Err(w, r, err, "decision failed")
		return
	}

	presenter.JSON(w, r, result, http.StatusOK)
}
