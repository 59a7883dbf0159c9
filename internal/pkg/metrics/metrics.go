// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"errors"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studentrecords"

// Cluster inspection outcomes.
const (
	InspectionComplete = "complete"
	InspectionPartial  = "partial"
	InspectionFailed   = "failed"
)

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests, labeled by route, method and status code.",
		},
		[]string{"method", "route", "code"},
	)

	ClusterInspections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cluster_inspections_total",
			Help:      "Cluster inspections run by the diagnostics endpoint, labeled by outcome.",
		},
		[]string{"result"},
	)

	registerOnce sync.Once
)

// Register adds all collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		for _, c := range []prometheus.Collector{HTTPRequestDuration, HTTPRequestsTotal, ClusterInspections} {
			if err := prometheus.Register(c); err != nil {
				var already prometheus.AlreadyRegisteredError
				if !errors.As(err, &already) {
					panic(err)
				}
			}
		}
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

// ObserveClusterInspection counts one inspection with the given outcome.
func ObserveClusterInspection(result string) {
	ClusterInspections.WithLabelValues(result).Inc()
}
