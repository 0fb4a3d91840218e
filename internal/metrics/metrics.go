// Package metrics records lookup and per-endpoint attempt counters.
//
// The tool never listens on a socket, so metrics are exported by writing the
// node_exporter textfile format with WriteTextfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ipgetter"

// Attempt results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultTimeout = "timeout"
)

// Metrics groups the collectors updated by the lookup engine. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Attempts        *prometheus.CounterVec
	AttemptDuration prometheus.Histogram
	Lookups         *prometheus.CounterVec
	AuditEndpoints  *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempts_total",
			Help:      "Endpoint fetch attempts by result.",
		}, []string{"result"}),
		AttemptDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attempt_duration_seconds",
			Help:      "Duration of single endpoint fetch attempts.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "External address lookups by result.",
		}, []string{"result"}),
		AuditEndpoints: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "audit_endpoints",
			Help:      "Endpoints per distinct value seen in the last consistency audit.",
		}, []string{"value"}),
	}
}

// ObserveAttempt records one endpoint attempt.
func (m *Metrics) ObserveAttempt(result string, took time.Duration) {
	if m == nil {
		return
	}
	m.Attempts.WithLabelValues(result).Inc()
	m.AttemptDuration.Observe(took.Seconds())
}

// ObserveLookup records the result of a whole lookup.
func (m *Metrics) ObserveLookup(ok bool) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if !ok {
		result = ResultFailure
	}
	m.Lookups.WithLabelValues(result).Inc()
}

// SetAudit replaces the audit gauge with the given frequency table.
func (m *Metrics) SetAudit(frequencies map[string]int) {
	if m == nil {
		return
	}
	m.AuditEndpoints.Reset()
	for value, n := range frequencies {
		m.AuditEndpoints.WithLabelValues(value).Set(float64(n))
	}
}

// WriteTextfile writes everything gathered by g to path in the text exposition
// format, replacing the file atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
