package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vigil-sh/vigil/internal/api/middleware"
	"github.com/vigil-sh/vigil/internal/audit"
	"github.com/vigil-sh/vigil/internal/core"
	"github.com/vigil-sh/vigil/internal/decision"
)

// Server is the HTTP facade around the decision core. The core itself has
// no transport dependency; this layer only parses requests and presents
// results.
type Server struct {
	service *decision.Service
	auditor core.Auditor
}

func NewServer(service *decision.Service, auditor core.Auditor) *Server {
	if auditor == nil {
		auditor = audit.NewNoopAuditor()
	}
	return &Server{
		service: service,
		auditor: auditor,
	}
}

func (s *Server) Routes(signingKey []byte) http.Handler {
	mux := http.NewServeMux()

	// public routes
	mux.HandleFunc("GET "+HealthCheckRoute, s.handleHealth)
	mux.HandleFunc("GET "+AboutRoute, s.handleAbout)
	mux.Handle("GET "+MetricsRoute, promhttp.Handler())

	// decision + consent routes
	mux.HandleFunc("POST "+DecideRoute, s.handleDecide)
	mux.HandleFunc("GET "+ConsentRoute, s.handleGetConsent)
	mux.HandleFunc("PATCH "+ConsentRoute, s.handleSetConsent)

	// compliance routes
	complianceMux := http.NewServeMux()
	complianceMux.HandleFunc("GET "+ListAuditsRoute, s.handleComplianceAudits)
	mux.Handle(ComplianceParent, middleware.ComplianceAuth(signingKey)(complianceMux))

	// correlation first so a recovered panic still presents its request ID
	return middleware.CorrelationIDMiddleware(
		middleware.RecoverMiddleware(
			middleware.LoggingMiddleware(
				mux)))
}
