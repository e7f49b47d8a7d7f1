package middleware

import (
	"time"

	"repo-gateway/internal/logging"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one line per served request
func AccessLog(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", GetRequestID(c),
		}

		switch {
		case status >= 500:
			logger.Error("request served", args...)
		case status >= 400:
			logger.Warn("request served", args...)
		default:
			logger.Info("request served", args...)
		}
	}
}
