package api

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/vigil-sh/vigil/internal/api/presenter"
	"github.com/vigil-sh/vigil/internal/core"
)

// handleComplianceAudits processes requests to retrieve audit log entries.
func (s *Server) handleComplianceAudits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	// filters
	q := r.URL.Query()
	limitStr := q.Get("limit")

	filterViewer := q.Get("viewer")
	filterOwner := q.Get("owner")
	filterStatus := q.Get("status")

	limit := 50
	if limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v < 0 {
			logger.Warn().Err(err).Str("limit", limitStr).Msg("invalid limit parameter")
			presenter.Error(w, r, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = v
	}

	var entries []core.AuditEntry
	var err error

	switch {
	case filterViewer != "" || filterOwner != "" || filterStatus != "":
		logger.Info().Msgf("applying audit log filters")
		entries, err = s.auditor.Find(func(entry core.AuditEntry) bool {
			if filterViewer != "" && string(entry.Viewer) != filterViewer {
				return false
			}
			if filterOwner != "" && entry.Owner != filterOwner {
				return false
			}
			if filterStatus != "" && string(entry.Status) != filterStatus {
				return false
			}
			return true
		}, limit)
	case limitStr == "":
		// no filters, no limit: the full ledger in insertion order
		logger.Debug().Msgf("retrieving full audit ledger")
		entries, err = s.service.ListAudit()
	default:
		logger.Debug().Msgf("retrieving recent audit log entries")
		entries, err = s.auditor.GetRecent(limit)
	}

	if err != nil {
		logger.Error().Err(err).Msg("failed to retrieve audit logs")
		presenter.Error(w, r, "failed to retrieve audit logs", http.StatusInternalServerError)
		return
	}

	presenter.JSON(w, r, entries, http.StatusOK)
}
