package handlers

import (
	"net/http"
	"strings"

	"big-brain-backend/internal/auth"
	"big-brain-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler answers natural-language questions over the caller's content
type SearchHandler struct {
	contentService service.ContentServiceInterface
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(contentService service.ContentServiceInterface) *SearchHandler {
	return &SearchHandler{contentService: contentService}
}

// SearchRequest is the body of POST /search
type SearchRequest struct {
	Query string `json:"query" example:"what did I save about postgres?"`
}

// Search handles POST /search
// @Summary Ask a question
// @Description Embed the query, retrieve the closest items and let the model answer from them
// @Tags brain
// @Accept json
// @Produce json
// @Param query body SearchRequest true "Question"
// @Success 200 {object} Envelope{data=service.SearchResponse} "Search completed"
// @Failure 400 {object} Envelope "Query parameter is missing or invalid"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 429 {object} Envelope "Too many requests"
// @Failure 500 {object} Envelope "LLM API key missing / LLM service failed"
// @Failure 503 {object} Envelope "Embedding service unavailable"
// @Security BearerAuth
// @Router /brain/search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, msgUnauthorized, nil)
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		respond(c, http.StatusBadRequest, msgInvalidQuery, nil)
		return
	}

	result, err := h.contentService.Search(c.Request.Context(), userID, req.Query)
	if err != nil {
		respondError(c, err, msgContentNotFound)
		return
	}

	respond(c, http.StatusOK, "Search completed", result)
}
