package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"repo-gateway/internal/application/service"

	"github.com/gin-gonic/gin"
)

// RepositoryHandler handles repository-related HTTP requests
type RepositoryHandler struct {
	repositoryService *service.RepositoryService
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(repositoryService *service.RepositoryService) *RepositoryHandler {
	return &RepositoryHandler{
		repositoryService: repositoryService,
	}
}

// GetUserRepositories handles GET /github/repositories/:username
// @Summary Get one page of a user's repositories
// @Description Returns the name and star count of one page of the user's public GitHub repositories
// @Tags Repositories
// @Accept json
// @Produce json
// @Param username path string true "GitHub username"
// @Param page query int false "Zero-based page number; negative or non-numeric values mean 0" default(0)
// @Success 200 {object} dto.RepositoryListResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /github/repositories/{username} [get]
func (h *RepositoryHandler) GetUserRepositories(c *gin.Context) {
	username := c.Param("username")
	page := parsePage(c.Query("page"))

	response, err := h.repositoryService.GetUserRepositoriesPage(c.Request.Context(), username, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetUserTotalStars handles GET /github/stars/:username
// @Summary Get a user's total star count
// @Description Sums the stars of every public GitHub repository of the user, across all pages
// @Tags Repositories
// @Accept json
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {object} dto.StarsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /github/stars/{username} [get]
func (h *RepositoryHandler) GetUserTotalStars(c *gin.Context) {
	username := c.Param("username")

	response, err := h.repositoryService.GetUserTotalStars(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// parsePage reads the page query parameter. Surrounding whitespace is
// ignored. A missing or malformed value means the first page; negatives
// are left for the service to clamp.
func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return page
}
