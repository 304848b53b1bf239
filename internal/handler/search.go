package handler

import (
	"net/http"

	"chatsearch/internal/model"
	"chatsearch/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	defaultLimit  int
	maxLimit      int
	log           zerolog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, defaultLimit, maxLimit int, log zerolog.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		defaultLimit:  defaultLimit,
		maxLimit:      maxLimit,
		log:           log,
	}
}

// Search handles POST /api/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn().Err(err).Str("path", c.FullPath()).Msg("invalid search request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Validate and cap limits
	if req.MaxResults <= 0 {
		req.MaxResults = h.defaultLimit
	}
	if req.MaxResults > h.maxLimit {
		req.MaxResults = h.maxLimit
	}

	response := h.searchService.Search(c.Request.Context(), req.Query, req.MaxResults)
	c.JSON(http.StatusOK, response)
}

// Health handles GET /health
func (h *SearchHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status: "ok",
		Rows:   h.searchService.RecordCount(),
	})
}
