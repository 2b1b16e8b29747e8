package handlers

import (
	"net/http"

	"big-brain-backend/internal/auth"
	"big-brain-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShareHandler issues, resolves and revokes share links
type ShareHandler struct {
	shareService service.ShareLinkServiceInterface
}

// NewShareHandler creates a new share handler
func NewShareHandler(shareService service.ShareLinkServiceInterface) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// CreateShareLink handles POST /share
// @Summary Create a share link
// @Description Issue a 24 hour read-only link to all of the caller's content
// @Tags share
// @Produce json
// @Success 201 {object} Envelope{data=service.ShareLinkResponse} "Share link created"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 500 {object} Envelope "Internal server error"
// @Security BearerAuth
// @Router /brain/share [post]
func (h *ShareHandler) CreateShareLink(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, msgUnauthorized, nil)
		return
	}

	link, err := h.shareService.Issue(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, msgShareLinkNotFound)
		return
	}

	respond(c, http.StatusCreated, "Share link created", link)
}

// GetSharedContent handles GET /share/:hashId
// @Summary Open a share link
// @Description Return the link owner's content while the link is active. Unknown, expired and revoked links are not found.
// @Tags share
// @Produce json
// @Param hashId path string true "Share hash"
// @Success 200 {object} Envelope{data=[]service.ContentResponse} "Content found"
// @Failure 404 {object} Envelope "Content not found"
// @Router /brain/share/{hashId} [get]
func (h *ShareHandler) GetSharedContent(c *gin.Context) {
	contents, err := h.shareService.SharedContent(c.Request.Context(), c.Param("hashId"))
	if err != nil {
		respondError(c, err, msgContentNotFound)
		return
	}

	respond(c, http.StatusOK, "Content found", contents)
}

// RevokeShareLink handles DELETE /share/:hashId
// @Summary Revoke a share link
// @Description Disable one of the caller's share links before it expires
// @Tags share
// @Produce json
// @Param hashId path string true "Share hash"
// @Success 200 {object} Envelope "Share link revoked"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Share link not found"
// @Security BearerAuth
// @Router /brain/share/{hashId} [delete]
func (h *ShareHandler) RevokeShareLink(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, msgUnauthorized, nil)
		return
	}

	if err := h.shareService.Revoke(c.Request.Context(), c.Param("hashId"), userID); err != nil {
		respondError(c, err, msgShareLinkNotFound)
		return
	}

	respond(c, http.StatusOK, "Share link revoked", nil)
}
