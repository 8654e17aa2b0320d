package kit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelFunction = "function"
	labelOutcome  = "outcome"

	OutcomeOK = "ok"
)

type Metrics struct {
	Queries  *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	Sessions prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cartdesk_queries_total",
				Help: "Total dispatched queries",
			},
			[]string{labelFunction, labelOutcome},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cartdesk_query_duration_seconds",
				Help:    "Query dispatch latency",
				Buckets: []float64{.00001, .0001, .001, .01, .1},
			},
			[]string{labelFunction},
		),
		Sessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cartdesk_sessions_live",
				Help: "Live login sessions",
			},
		),
	}

	reg.MustRegister(m.Queries, m.Latency, m.Sessions)
	return m
}

// Observe is safe on a nil *Metrics so callers can leave metrics unset.
func (m *Metrics) Observe(function, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Latency.WithLabelValues(function).Observe(d.Seconds())
	m.Queries.WithLabelValues(function, outcome).Inc()
}

func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.Sessions.Set(float64(n))
}
