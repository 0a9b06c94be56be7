package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors. Each Server owns a
// registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts HTTP requests by route template, method and status
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes HTTP latency by route template
	RequestDuration *prometheus.HistogramVec

	// AnalysesTotal counts engine runs by outcome (ok, invalid, unsupported, error)
	AnalysesTotal *prometheus.CounterVec

	// AnalysisDuration observes engine run time
	AnalysisDuration prometheus.Histogram

	// RateLimitedTotal counts requests rejected by the limiter
	RateLimitedTotal prometheus.Counter
}

// NewMetrics registers the collectors on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobeam",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gobeam",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobeam",
				Subsystem: "engine",
				Name:      "analyses_total",
				Help:      "Beam analyses by outcome",
			},
			[]string{"outcome"},
		),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gobeam",
			Subsystem: "engine",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent in the analysis engine",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		RateLimitedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gobeam",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
