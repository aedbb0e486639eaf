package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"jokecatalog/src/infra/logger"
)

// Logging emits one access log record per request.
// The level follows the response status: 5xx error, 4xx warn, otherwise info.
// Errors attached to the context with c.Error are included.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			path = path + "?" + query
		}

		c.Next()

		status := c.Writer.Status()
		reqLog := logger.WithRequestID(log, GetRequestID(c))
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration", time.Since(start),
			"size", c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.Errors())
		}

		switch {
		case status >= 500:
			reqLog.Error("request handled", attrs...)
		case status >= 400:
			reqLog.Warn("request handled", attrs...)
		default:
			reqLog.Info("request handled", attrs...)
		}
	}
}
