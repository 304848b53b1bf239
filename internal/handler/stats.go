package handler

import (
	"net/http"

	"chatsearch/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler reports what the loaded dataset contains
type StatsHandler struct {
	searchService *service.SearchService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(searchService *service.SearchService) *StatsHandler {
	return &StatsHandler{
		searchService: searchService,
	}
}

// Stats handles GET /api/stats
func (h *StatsHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.searchService.Stats())
}
