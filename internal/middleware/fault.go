package middleware

import (
	"errors"
	"net/http"

	"repo-gateway/internal/domain/repo"
	"repo-gateway/internal/logging"

	"github.com/gin-gonic/gin"
)

const internalServerErrorMessage = "Internal server error"

// FaultHandler is the last line of error handling. It answers panics and
// errors that handlers recorded with c.Error but did not map themselves.
func FaultHandler(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					"panic", r,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				abortInternal(c)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, ginErr := range c.Errors {
			logFault(logger, c, ginErr.Err)
		}

		if !c.Writer.Written() {
			abortInternal(c)
		}
	}
}

func logFault(logger logging.Logger, c *gin.Context, err error) {
	args := []any{
		"error", err,
		"path", c.Request.URL.Path,
		"request_id", GetRequestID(c),
	}

	var upstreamErr *repo.UpstreamError
	if errors.As(err, &upstreamErr) {
		args = append(args,
			"kind", string(upstreamErr.Kind),
			"upstream_status", upstreamErr.Status,
		)
	}

	logger.Error("unhandled request error", args...)
}

func abortInternal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"message": internalServerErrorMessage,
	})
}
