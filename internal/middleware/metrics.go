package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"dealflow/internal/metrics"
)

// Metrics returns a Gin middleware that records request counts and latency
// per route. The route label uses the registered pattern (c.FullPath), not
// the raw URL, to keep label cardinality bounded.
func Metrics(m *metrics.DealMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start).Seconds())
	}
}
