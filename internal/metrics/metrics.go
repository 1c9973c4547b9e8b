// Package metrics holds the prometheus collectors for scoring runs,
// matrix builds and the http layer.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "factorrank"

var (
	registry *prometheus.Registry
	once     sync.Once
)

var (
	ScoringRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scoring_runs_total",
		Help:      "Total number of scoring runs, by weights source",
	}, []string{"theme"})
	ScoringRunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scoring_run_duration_seconds",
		Help:      "Time to assemble the universe and rank it",
		Buckets:   prometheus.DefBuckets,
	})
	UniverseSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "universe_size",
		Help:      "Number of stocks in each scored universe",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})
	MatrixBuildsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "matrix_builds_total",
		Help:      "Total number of correlation/covariance matrices built",
	}, []string{"mode"})
	ExportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of ranked score exports",
	}, []string{"format"})
	HttpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Registry returns the process-wide registry with every
// collector registered
func Registry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			ScoringRunsTotal,
			ScoringRunDuration,
			UniverseSize,
			MatrixBuildsTotal,
			ExportsTotal,
			HttpRequestDuration,
			prometheus.NewGoCollector(),
		)
	})
	return registry
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}
