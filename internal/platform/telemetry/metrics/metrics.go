package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tableside"

// Registry owns the dashboard's Prometheus collectors.
//
// A nil *Registry is valid and records nothing, so components can accept an
// optional registry without branching.
type Registry struct {
	registry     *prometheus.Registry
	apiRequests  *prometheus.CounterVec
	apiLatency   *prometheus.HistogramVec
	pollRuns     *prometheus.CounterVec
	pollSkips    *prometheus.CounterVec
	pollFailures *prometheus.CounterVec
}

// New builds a registry with process and runtime collectors attached.
func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Remote API requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Remote API request latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		pollRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "runs_total",
			Help:      "Refresh runs started per poller.",
		}, []string{"poller"}),
		pollSkips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "skipped_ticks_total",
			Help:      "Ticks skipped because the previous refresh was still in flight.",
		}, []string{"poller"}),
		pollFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "failures_total",
			Help:      "Refresh runs that returned an error.",
		}, []string{"poller"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.apiRequests,
		r.apiLatency,
		r.pollRuns,
		r.pollSkips,
		r.pollFailures,
	)
	return r
}

// ObserveAPIRequest records one remote API call.
func (r *Registry) ObserveAPIRequest(operation, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.apiRequests.WithLabelValues(operation, outcome).Inc()
	r.apiLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// PollRun records a completed refresh for the named poller.
func (r *Registry) PollRun(poller string) {
	if r == nil {
		return
	}
	r.pollRuns.WithLabelValues(poller).Inc()
}

// PollSkipped records a tick skipped by the in-flight guard.
func (r *Registry) PollSkipped(poller string) {
	if r == nil {
		return
	}
	r.pollSkips.WithLabelValues(poller).Inc()
}

// PollFailed records a refresh that returned an error.
func (r *Registry) PollFailed(poller string) {
	if r == nil {
		return
	}
	r.pollFailures.WithLabelValues(poller).Inc()
}

// Handler serves the registry in Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
