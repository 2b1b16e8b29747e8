package handlers

import (
	"errors"
	"io"
	"net/http"

	"big-brain-backend/internal/auth"
	apperrors "big-brain-backend/internal/errors"
	"big-brain-backend/internal/service"
	"big-brain-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// multipartOverhead is the slack allowed on top of the file limit for the other form fields
const multipartOverhead = 1 << 20

// ContentHandler handles HTTP requests for content items
type ContentHandler struct {
	contentService service.ContentServiceInterface
	maxUploadBytes int64
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService service.ContentServiceInterface, maxUploadBytes int64) *ContentHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &ContentHandler{
		contentService: contentService,
		maxUploadBytes: maxUploadBytes,
	}
}

// ListContent handles GET /me
// @Summary List my content
// @Description Get all content items of the authenticated user, newest first
// @Tags brain
// @Produce json
// @Success 200 {object} Envelope{data=[]service.ContentResponse} "User content retrieved"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 500 {object} Envelope "Internal server error"
// @Security BearerAuth
// @Router /brain/me [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, msgUnauthorized, nil)
		return
	}

	contents, err := h.contentService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, msgContentNotFound)
		return
	}

	respond(c, http.StatusOK, "User content retrieved", contents)
}

// CreateContent handles POST /create
// @Summary Create content
// @Description Ingest a content item. Tags are a JSON array string. An optional image is described by the vision model.
// @Tags brain
// @Accept multipart/form-data
// @Produce json
// @Param type formData string true "Content type"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param link formData string false "Link"
// @Param tags formData string false "Tags as a JSON array, e.g. [\"go\",\"db\"]"
// @Param uploaded_file formData file false "Image"
// @Success 201 {object} Envelope{data=service.ContentResponse} "Content created successfully"
// @Failure 400 {object} Envelope{data=[]FieldError} "Invalid request data"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 413 {object} Envelope "Uploaded file is too large"
// @Failure 429 {object} Envelope "Too many requests"
// @Failure 500 {object} Envelope "Internal server error"
// @Failure 502 {object} Envelope "Upstream service failed"
// @Security BearerAuth
// @Router /brain/create [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, msgUnauthorized, nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	var req service.CreateContentRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, apperrors.ErrFileTooLarge, msgContentNotFound)
			return
		}
		respond(c, http.StatusBadRequest, msgInvalidRequest, []FieldError{{Field: "body", Message: err.Error()}})
		return
	}
	if c.ContentType() != binding.MIMEJSON {
		req.Tags = tagsFromForm(c)
	}

	image, err := h.readImage(c)
	if err != nil {
		respondError(c, err, msgContentNotFound)
		return
	}

	content, err := h.contentService.Create(c.Request.Context(), userID, &req, image)
	if err != nil {
		respondError(c, err, msgContentNotFound)
		return
	}

	respond(c, http.StatusCreated, "Content created successfully", content)
}

// GetContent handles GET /:contentId
// @Summary Get content
// @Description Get one of the authenticated user's content items
// @Tags brain
// @Produce json
// @Param contentId path string true "Content ID (UUID)"
// @Success 200 {object} Envelope{data=service.ContentResponse} "Content retrieved successfully"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Content not found"
// @Security BearerAuth
// @Router /brain/{contentId} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	userID, id, ok := h.ownedTarget(c)
	if !ok {
		return
	}

	content, err := h.contentService.Get(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, msgContentNotFound)
		return
	}

	respond(c, http.StatusOK, "Content retrieved successfully", content)
}

// UpdateContent handles PUT /:contentId
// @Summary Update content
// @Description Partially update a content item. A changed description is re-embedded; tags, when present, replace the current set.
// @Tags brain
// @Accept json
// @Produce json
// @Param contentId path string true "Content ID (UUID)"
// @Param content body service.UpdateContentRequest true "Fields to change"
// @Success 200 {object} Envelope{data=service.ContentResponse} "Content updated successfully"
// @Failure 400 {object} Envelope{data=[]FieldError} "Invalid request data"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Content not found"
// @Security BearerAuth
// @Router /brain/{contentId} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	userID, id, ok := h.ownedTarget(c)
	if !ok {
		return
	}

	var req service.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, msgInvalidRequest, []FieldError{{Field: "body", Message: err.Error()}})
		return
	}

	content, err := h.contentService.Update(c.Request.Context(), id, userID, &req)
	if err != nil {
		respondError(c, err, msgContentNotFound)
		return
	}

	respond(c, http.StatusOK, "Content updated successfully", content)
}

// DeleteContent handles DELETE /:contentId
// @Summary Delete content
// @Description Delete one of the authenticated user's content items
// @Tags brain
// @Produce json
// @Param contentId path string true "Content ID (UUID)"
// @Success 200 {object} Envelope{data=map[string]string} "Content deleted successfully"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Content not found"
// @Security BearerAuth
// @Router /brain/{contentId} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	userID, id, ok := h.ownedTarget(c)
	if !ok {
		return
	}

	if err := h.contentService.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, msgContentNotFound)
		return
	}

	respond(c, http.StatusOK, "Content deleted successfully", gin.H{"id": id.String()})
}

// ownedTarget resolves the caller and the :contentId parameter. A malformed id is reported as not found.
func (h *ContentHandler) ownedTarget(c *gin.Context) (string, uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, msgUnauthorized, nil)
		return "", uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("contentId"))
	if err != nil {
		respond(c, http.StatusNotFound, msgContentNotFound, nil)
		return "", uuid.Nil, false
	}
	return userID, id, true
}

// tagsFromForm accepts either one JSON array field or repeated tags fields
func tagsFromForm(c *gin.Context) []string {
	values := c.PostFormArray("tags")
	switch len(values) {
	case 0:
		return []string{}
	case 1:
		return service.ParseTagPayload(values[0])
	default:
		return values
	}
}

// readImage loads the optional uploaded_file part and checks it is an image within the size limit
func (h *ContentHandler) readImage(c *gin.Context) (*service.ImageInput, error) {
	fh, err := c.FormFile("uploaded_file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.NewValidationError("uploaded_file", err.Error())
	}
	if fh.Size > h.maxUploadBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > h.maxUploadBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	mime, err := storage.SniffImage(data)
	if err != nil {
		return nil, err
	}

	return &service.ImageInput{
		Filename: fh.Filename,
		MimeType: mime,
		Data:     data,
	}, nil
}
