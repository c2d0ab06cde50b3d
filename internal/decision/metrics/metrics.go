package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision service.
type Metrics struct {
	// Decision outcomes by status, reason and viewer role
	DecisionOutcome *prometheus.CounterVec

	// Overall decide() latency
	DecideLatency prometheus.Histogram

	// Consent write outcomes by field and result
	ConsentWrite *prometheus.CounterVec
}

// New creates a new Metrics instance with all decision metrics registered.
func New() *Metrics {
	return &Metrics{
		DecisionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigil_decision_outcomes_total",
			Help: "Total access decision outcomes by status, reason and viewer role",
		}, []string{"status", "reason", "viewer"}),

		DecideLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vigil_decision_duration_seconds",
			Help:    "Duration of full access decision evaluation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),

		ConsentWrite: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigil_consent_writes_total",
			Help: "Total consent write attempts by field and result",
		}, []string{"field", "result"}),
	}
}

// IncrementOutcome records a decision outcome.
func (m *Metrics) IncrementOutcome(status, reason, viewer string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(status, reason, viewer).Inc()
	}
}

// ObserveDecideLatency records the total evaluation duration.
func (m *Metrics) ObserveDecideLatency(d time.Duration) {
	if m != nil {
		m.DecideLatency.Observe(d.Seconds())
	}
}

// IncrementConsentWrite records a consent write attempt.
func (m *Metrics) IncrementConsentWrite(field, result string) {
	if m != nil {
		m.ConsentWrite.WithLabelValues(field, result).Inc()
	}
}
