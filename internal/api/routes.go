package api

const (
	HealthCheckRoute = "/healthz"
	AboutRoute       = "/v1/about"
	MetricsRoute     = "/metrics"

	DecideRoute = "/v1/decide"

	ConsentRoute = "/v1/consent/{owner}"

	ComplianceParent = "/v1/compliance/"
	ListAuditsRoute  = ComplianceParent + "audits"
)
