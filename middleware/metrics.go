package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type httpMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

var (
	httpMetricsInstance *httpMetrics
	httpMetricsOnce     sync.Once
	httpMetricsRegistry = prometheus.DefaultRegisterer
)

func newHTTPMetrics() *httpMetrics {
	httpMetricsOnce.Do(func() {
		factory := promauto.With(httpMetricsRegistry)
		httpMetricsInstance = &httpMetrics{
			requests: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "timeline_http_requests_total",
				Help: "HTTP requests by route, method and status",
			}, []string{"route", "method", "status"}),
			duration: factory.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "timeline_http_request_duration_seconds",
				Help:    "HTTP request latency by route and method",
				Buckets: prometheus.DefBuckets,
			}, []string{"route", "method"}),
			inFlight: factory.NewGauge(prometheus.GaugeOpts{
				Name: "timeline_http_requests_in_flight",
				Help: "Requests currently being served",
			}),
		}
	})
	return httpMetricsInstance
}

// MetricsMiddleware records request counts and latencies per matched route.
// Unmatched paths are reported as "unmatched" to keep label cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	metrics := newHTTPMetrics()
	return func(c *gin.Context) {
		start := time.Now()
		metrics.inFlight.Inc()
		defer metrics.inFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

func resetHTTPMetricsForTesting() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	httpMetricsRegistry = reg
	httpMetricsInstance = nil
	httpMetricsOnce = sync.Once{}
	return reg
}
