package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the gateway.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	TokenRefreshes   *prometheus.CounterVec
	AuthRetries      *prometheus.CounterVec
}

// NewMetrics creates the gateway metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UpstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "warehouse_upstream_requests_total",
				Help: "Total number of provider API requests by provider, operation, and status",
			},
			[]string{"provider", "operation", "status"},
		),
		UpstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "warehouse_upstream_request_duration_seconds",
				Help:    "Provider API request duration in seconds by provider and operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "operation"},
		),
		TokenRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "warehouse_token_refresh_total",
				Help: "Total number of credential acquisitions by provider and result",
			},
			[]string{"provider", "result"},
		),
		AuthRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "warehouse_auth_retries_total",
				Help: "Total number of calls retried after the provider rejected the token",
			},
			[]string{"provider"},
		),
	}
}

// RecordRequest records an upstream request metric. A nil receiver is a no-op.
func (m *Metrics) RecordRequest(provider, operation, status string, duration float64) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(provider, operation, status).Inc()
	m.UpstreamDuration.WithLabelValues(provider, operation).Observe(duration)
}

// RecordRefresh records the outcome of a credential acquisition.
func (m *Metrics) RecordRefresh(provider string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.TokenRefreshes.WithLabelValues(provider, result).Inc()
}

// RecordRetry records one token-rejected retry.
func (m *Metrics) RecordRetry(provider string) {
	if m == nil {
		return
	}
	m.AuthRetries.WithLabelValues(provider).Inc()
}
