package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for a replay run. They are registered
// on a dedicated registry rather than the global one so repeated runs and
// tests never collide.
type Metrics struct {
	Registry *prometheus.Registry

	RecordsApplied  *prometheus.CounterVec
	RecordsRejected *prometheus.CounterVec
	ParseFailures   prometheus.Counter
	AccountsWritten prometheus.Gauge
}

// New creates and registers all metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		RecordsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txreplay_records_applied_total",
				Help: "Total number of records applied successfully, by record type",
			},
			[]string{"type"},
		),
		RecordsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txreplay_records_rejected_total",
				Help: "Total number of records rejected by the engine, by error type",
			},
			[]string{"error_type"},
		),
		ParseFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "txreplay_parse_failures_total",
			Help: "Total number of input rows that failed to parse",
		}),
		AccountsWritten: factory.NewGauge(prometheus.GaugeOpts{
			Name: "txreplay_accounts_written",
			Help: "Number of accounts in the final snapshot",
		}),
	}
}
