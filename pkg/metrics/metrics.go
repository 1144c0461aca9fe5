// Package metrics provides Prometheus metrics for the oracle pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APICallsTotal is a counter of per-source API call outcomes.
	APICallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oracle_api_calls_total",
			Help: "Total number of price API calls by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	// APICallDuration is a histogram of per-source API call latencies.
	APICallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oracle_api_call_duration_seconds",
			Help:    "Latency of price API calls",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	// CollectionDuration is a histogram of full collection round durations.
	CollectionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "oracle_collection_duration_seconds",
			Help:    "Duration of a full price collection round",
			Buckets: prometheus.DefBuckets,
		},
	)

	// QuorumFailuresTotal is a counter of runs aborted for lack of quorum.
	QuorumFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "oracle_quorum_failures_total",
			Help: "Total number of runs that failed the minimum source quorum",
		},
	)

	// SubmissionsTotal is a counter of submission build outcomes.
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oracle_submissions_total",
			Help: "Total number of submission attempts by status",
		},
		[]string{"status"},
	)
)

// Init registers all metrics with the default registry.
func Init() {
	prometheus.MustRegister(
		APICallsTotal,
		APICallDuration,
		CollectionDuration,
		QuorumFailuresTotal,
		SubmissionsTotal,
	)
}

// ServeHTTP serves Prometheus metrics on the specified address.
func ServeHTTP(addr, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())
	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server.ListenAndServe()
}

// RecordAPICall records one API call outcome with its latency.
func RecordAPICall(source, outcome string, duration time.Duration) {
	APICallsTotal.WithLabelValues(source, outcome).Inc()
	APICallDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordCollection records a full collection round.
func RecordCollection(duration time.Duration) {
	CollectionDuration.Observe(duration.Seconds())
}

// RecordQuorumFailure records a run aborted for lack of quorum.
func RecordQuorumFailure() {
	QuorumFailuresTotal.Inc()
}

// RecordSubmission records a submission attempt outcome.
func RecordSubmission(status string) {
	SubmissionsTotal.WithLabelValues(status).Inc()
}
