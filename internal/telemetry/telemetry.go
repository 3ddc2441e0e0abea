// Package telemetry exposes the Prometheus counters served on /metrics.
package telemetry

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_http_requests_total",
		Help: "HTTP requests by route, method and status code.",
	}, []string{"method", "path", "status"})

	readinessProbes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_readiness_probes_total",
		Help: "Readiness gate probes by outcome.",
	}, []string{"outcome"})

	cacheEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_post_cache_events_total",
		Help: "Popular-post cache lookups by outcome.",
	}, []string{"event"})
)

// ObserveProbe records one readiness gate probe outcome.
func ObserveProbe(ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	readinessProbes.WithLabelValues(outcome).Inc()
}

// CacheHit records a popular-post cache hit.
func CacheHit() { cacheEvents.WithLabelValues("hit").Inc() }

// CacheMiss records a popular-post cache miss.
func CacheMiss() { cacheEvents.WithLabelValues("miss").Inc() }

// Handler serves the Prometheus exposition endpoint.
func Handler() http.Handler { return promhttp.Handler() }

// GinMiddleware counts every request against its registered route
// pattern (not the raw URL, so ids do not explode cardinality).
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
