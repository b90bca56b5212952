package prometheus

import (
	"fmt"
	"time"

	"github.com/natnat/flowershop_content_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusAdapter struct {
	appName             string
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	cacheLookupsTotal   *prometheus.CounterVec
	remoteFetchesTotal  *prometheus.CounterVec
}

// NewPrometheusAdapter registers the service metrics on reg. Pass
// prometheus.DefaultRegisterer to expose them through promhttp.Handler.
func NewPrometheusAdapter(reg prometheus.Registerer, appName string) *PrometheusAdapter {
	adapter := &PrometheusAdapter{
		appName: appName,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status", "app_name"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "api_request_duration_seconds",
				Help:    "Duration API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method", "status", "app_name"},
		),
		cacheLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_cache_lookups_total",
				Help: "Content cache lookups by tier and result",
			},
			[]string{"tier", "result", "app_name"},
		),
		remoteFetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_remote_fetches_total",
				Help: "Requests to the remote content endpoint by outcome",
			},
			[]string{"outcome", "app_name"},
		),
	}

	reg.MustRegister(
		adapter.httpRequestsTotal,
		adapter.httpRequestDuration,
		adapter.cacheLookupsTotal,
		adapter.remoteFetchesTotal,
	)

	adapter.httpRequestsTotal.WithLabelValues("/health", "GET", "200", appName).Add(0)
	return adapter
}

func (p *PrometheusAdapter) IncrementCounter(name string, labels map[string]string) {
	p.httpRequestsTotal.WithLabelValues(
		labels["path"],
		labels["method"],
		labels["status"],
		p.appName,
	).Inc()
}

func (p *PrometheusAdapter) RecordDuration(name string, duration time.Duration, labels map[string]string) {
	p.httpRequestDuration.WithLabelValues(
		labels["path"],
		labels["method"],
		labels["status"],
		p.appName,
	).Observe(duration.Seconds())
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	status := fmt.Sprintf("%d", c.Writer.Status())
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	labels := map[string]string{
		"path":   path,
		"method": c.Request.Method,
		"status": status,
	}

	p.IncrementCounter("http_requests_total", labels)
	p.RecordDuration("api_request_duration_seconds", time.Since(start), labels)
}

func (p *PrometheusAdapter) RecordCacheLookup(tier, result string) {
	p.cacheLookupsTotal.WithLabelValues(tier, result, p.appName).Inc()
}

func (p *PrometheusAdapter) RecordRemoteFetch(outcome string) {
	p.remoteFetchesTotal.WithLabelValues(outcome, p.appName).Inc()
}

var _ ports.MetricsPort = (*PrometheusAdapter)(nil)
