package handler

import (
	"net/http"

	"chatsearch/internal/model"
	"chatsearch/internal/service"

	"github.com/gin-gonic/gin"
)

// ParseHandler exposes the query parser without running a search
type ParseHandler struct {
	searchService *service.SearchService
}

// NewParseHandler creates a new parse handler
func NewParseHandler(searchService *service.SearchService) *ParseHandler {
	return &ParseHandler{
		searchService: searchService,
	}
}

// Parse handles POST /api/parse
func (h *ParseHandler) Parse(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.ParseResponse{
		Query:  req.Query,
		Parsed: h.searchService.Parse(req.Query),
	})
}
