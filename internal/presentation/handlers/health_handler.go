package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness along with the build version and the
// upstream API this instance talks to
type HealthHandler struct {
	version  string
	upstream string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version, upstream string) *HealthHandler {
	return &HealthHandler{
		version:  version,
		upstream: upstream,
	}
}

// Health handles GET /health
// @Summary Health check
// @Description Returns the health status, build version and configured upstream of the gateway
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Message:  "Service is running",
		Version:  h.version,
		Upstream: h.upstream,
	})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Message  string `json:"message" example:"Service is running"`
	Version  string `json:"version" example:"1.0.0"`
	Upstream string `json:"upstream" example:"https://api.github.com/"`
}
