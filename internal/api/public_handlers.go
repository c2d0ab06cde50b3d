package api

import (
	"net/http"

	"github.com/vigil-sh/vigil/internal/api/presenter"
	"github.com/vigil-sh/vigil/internal/buildinfo"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	presenter.JSON(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.GetBuildInfo()
	presenter.JSON(w, r, info, http.StatusOK)
}
