package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/metrics"
)

// Metrics records per-request counters and latency, labeled by the
// route template so ids do not explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
