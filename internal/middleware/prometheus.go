package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/redlabs/storefront/internal/metrics"
)

// Prometheus returns the RED instrumentation middleware.
//
// The route label is the matched template (e.g. /api/v1/products/:id), never
// the raw path, so label cardinality stays bounded; requests that match no
// route are recorded under metrics.RouteUnmatched. The exclude list comes
// from the metric set's own Config, matched against the template first and
// the raw path second, which lets callers exclude unregistered paths like
// /favicon.ico.
//
// Install this middleware before gin.Recovery(): the deferred accounting
// below runs after Recovery has written its 500, so panicking handlers are
// recorded with the status the client actually saw. The defer also fires
// during panic unwinding, so the in-flight gauge is released on every exit
// path.
func Prometheus(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = metrics.RouteUnmatched
		}

		if m.Excluded(route) || m.Excluded(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		m.RecordRequestStart(route)

		defer func() {
			status := strconv.Itoa(c.Writer.Status())
			m.RecordRequestEnd(c.Request.Method, route, status, time.Since(start).Seconds())
		}()

		c.Next()
	}
}
