package handlers

import (
	"errors"
	"net/http"

	"repo-gateway/internal/domain/repo"

	"github.com/gin-gonic/gin"
)

// Client-facing messages
const (
	messageUserNotFound = "User not found"
	messageServerError  = "Server error"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// RespondError decides the client-facing answer for err. ok is false when
// err is not a known upstream failure; those are left to the fault handler.
func RespondError(err error) (int, ErrorResponse, bool) {
	var upstreamErr *repo.UpstreamError
	if !errors.As(err, &upstreamErr) {
		return 0, ErrorResponse{}, false
	}

	switch upstreamErr.Kind {
	case repo.KindUserNotFound:
		return http.StatusNotFound, ErrorResponse{Message: messageUserNotFound}, true
	case repo.KindBadCredentials, repo.KindRateLimitExceeded:
		return http.StatusInternalServerError, ErrorResponse{Message: messageServerError}, true
	case repo.KindUnprocessableRequest:
		return http.StatusUnprocessableEntity, ErrorResponse{Message: upstreamErr.Detail}, true
	default:
		return 0, ErrorResponse{}, false
	}
}

// respondError writes the mapped answer, or records err on the context
// and aborts so the fault handler middleware answers.
func respondError(c *gin.Context, err error) {
	if status, body, ok := RespondError(err); ok {
		c.JSON(status, body)
		return
	}
	_ = c.Error(err)
	c.Abort()
}
