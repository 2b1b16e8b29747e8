package handlers

import (
	"errors"
	"net/http"

	apperrors "big-brain-backend/internal/errors"
	"big-brain-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Envelope is the wrapper of every JSON response
type Envelope struct {
	Success bool        `json:"success" example:"true"`
	Msg     string      `json:"msg" example:"Content retrieved successfully"`
	Data    interface{} `json:"data"`
}

// FieldError describes one rejected request field
type FieldError struct {
	Field   string `json:"field" example:"title"`
	Message string `json:"message" example:"required"`
}

const (
	msgUnauthorized      = "Unauthorized"
	msgInvalidRequest    = "Invalid request data"
	msgContentNotFound   = "Content not found"
	msgInvalidQuery      = "Query parameter is missing or invalid"
	msgFileTooLarge      = "Uploaded file is too large"
	msgLLMKeyMissing     = "LLM API key missing"
	msgLLMFailed         = "LLM service failed"
	msgEmbeddingDown     = "Embedding service unavailable"
	msgUpstreamFailed    = "Upstream service failed"
	msgInternalError     = "Internal server error"
	msgShareLinkNotFound = "Share link not found"
)

func respond(c *gin.Context, status int, msg string, data interface{}) {
	c.JSON(status, Envelope{Success: status < http.StatusBadRequest, Msg: msg, Data: data})
}

// respondError maps err onto a status and envelope message. 5xx details go to the log,
// and in non-release mode to data.error as well.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	status, msg, data := classify(err, notFoundMsg)

	entry := logger.WithContext(c.Request.Context()).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error(msg)
		if gin.Mode() != gin.ReleaseMode {
			data = gin.H{"error": err.Error()}
		}
	} else {
		entry.Debug(msg)
	}

	respond(c, status, msg, data)
}

func classify(err error, notFoundMsg string) (int, string, interface{}) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := make([]FieldError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, FieldError{Field: fe.Field(), Message: fe.Tag()})
		}
		return http.StatusBadRequest, msgInvalidRequest, out
	}

	var upstream *apperrors.UpstreamError
	switch {
	case errors.Is(err, apperrors.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, msgFileTooLarge, nil
	case errors.Is(err, apperrors.ErrEmptyQuery):
		return http.StatusBadRequest, msgInvalidQuery, nil
	case apperrors.IsValidation(err):
		var ve *apperrors.ValidationError
		errors.As(err, &ve)
		return http.StatusBadRequest, msgInvalidRequest, []FieldError{{Field: ve.Field, Message: ve.Message}}
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized, msgUnauthorized, nil
	case apperrors.IsNotFound(err):
		return http.StatusNotFound, notFoundMsg, nil
	case errors.Is(err, apperrors.ErrEmbeddingUnavailable):
		return http.StatusServiceUnavailable, msgEmbeddingDown, nil
	case errors.Is(err, apperrors.ErrLLMKeyMissing):
		return http.StatusInternalServerError, msgLLMKeyMissing, nil
	case errors.As(err, &upstream):
		if upstream.Service == apperrors.ErrSynthesisFailed.Service {
			return http.StatusInternalServerError, msgLLMFailed, nil
		}
		return http.StatusBadGateway, msgUpstreamFailed, nil
	default:
		return http.StatusInternalServerError, msgInternalError, nil
	}
}
