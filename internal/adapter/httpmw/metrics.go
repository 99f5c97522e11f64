package httpmw

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests"},
		[]string{"service", "method", "route", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "route"},
	)
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "upstream_requests_total", Help: "Requests sent to the campaign API"},
		[]string{"method", "status"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, UpstreamRequestsTotal)
}

// MetricsHandler exposes the default registry.
func MetricsHandler() http.Handler { return promhttp.Handler() }
