package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RequestsFulfilled prometheus.Counter
	VersionsUploaded  prometheus.Counter
	PacksCreated      prometheus.Counter
	HTTPDuration      *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		RequestsFulfilled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vault_requests_fulfilled_total",
			Help: "Total number of buyer requests fulfilled",
		}),
		VersionsUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vault_versions_uploaded_total",
			Help: "Total number of evidence versions uploaded",
		}),
		PacksCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vault_packs_created_total",
			Help: "Total number of evidence packs assembled from selections",
		}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vault_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route, status string, elapsed time.Duration) {
	if m == nil || m.HTTPDuration == nil {
		return
	}
	m.HTTPDuration.WithLabelValues(route, status).Observe(elapsed.Seconds())
}
