// Package metrics defines the Prometheus instrumentation for the dashboard
// server and exposes the scrape handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by path and status code.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homedash_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"path", "code"},
	)

	// RequestDuration observes HTTP request latency by path.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homedash_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	// SweepsTotal counts full link health sweeps.
	SweepsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "homedash_healthcheck_sweeps_total",
			Help: "Total number of full link health sweeps",
		},
	)

	// ProbeDuration observes individual link probe latency.
	ProbeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "homedash_healthcheck_probe_duration_seconds",
			Help:    "Link probe latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// LinkUp reports the last observed health of each monitored link.
	LinkUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "homedash_link_up",
			Help: "Whether the last probe of the link succeeded (1) or failed (0)",
		},
		[]string{"origin"},
	)

	// WidgetFetchesTotal counts widget data fetches by type and outcome.
	WidgetFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homedash_widget_fetches_total",
			Help: "Total number of widget data fetches",
		},
		[]string{"type", "outcome"},
	)

	// ConfigReloadsTotal counts configuration reload attempts by outcome.
	ConfigReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homedash_config_reloads_total",
			Help: "Total number of configuration reload attempts",
		},
		[]string{"outcome"},
	)
)

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
