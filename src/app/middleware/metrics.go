package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"jokecatalog/src/infra/metrics"
)

// unmatchedRoute labels requests that hit no registered route, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.RecordRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
