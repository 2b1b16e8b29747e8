package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "content"}
		assert.Equal(t, "content not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "content"}
		err2 := &NotFoundError{Entity: "content"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrContentNotFound, ErrShareLinkNotFound))
	})

	t.Run("wrapped errors still match", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup: %w", ErrShareLinkNotFound)
		assert.True(t, errors.Is(wrapped, ErrShareLinkNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrContentNotFound))
		assert.False(t, IsNotFound(ErrEmbeddingUnavailable))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "tag already exists with this name", ErrTagExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tag"}
		assert.Equal(t, "tag already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(fmt.Errorf("insert: %w", ErrTagExists)))
		assert.False(t, IsAlreadyExists(ErrContentNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "title", Message: "is required"}
		assert.Equal(t, "validation error: title - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad payload"}
		assert.Equal(t, "validation error: bad payload", err.Error())
	})

	t.Run("matches on field and message", func(t *testing.T) {
		err := NewValidationError("query", "query must be a non-empty string")
		assert.True(t, errors.Is(err, ErrEmptyQuery))
		assert.True(t, errors.Is(fmt.Errorf("search: %w", ErrEmptyQuery), ErrEmptyQuery))
		assert.False(t, errors.Is(err, ErrInvalidEmbeddingInput))
		assert.True(t, IsValidation(err))
	})

	t.Run("same field with a different message does not match", func(t *testing.T) {
		assert.False(t, errors.Is(ErrUnsupportedFileType, ErrFileTooLarge))
		assert.False(t, errors.Is(ErrFileTooLarge, ErrUnsupportedFileType))
		assert.False(t, errors.Is(NewValidationError("uploaded_file", "image is empty"), ErrFileTooLarge))
		assert.False(t, errors.Is(NewValidationError("query", "something else"), ErrEmptyQuery))
	})
}

func TestUpstreamError(t *testing.T) {
	t.Run("Error message includes cause", func(t *testing.T) {
		err := NewUpstreamError("vision", errors.New("status 500"))
		assert.Equal(t, "vision service failed: status 500", err.Error())
	})

	t.Run("Error message without cause", func(t *testing.T) {
		assert.Equal(t, "generation service failed", ErrSynthesisFailed.Error())
	})

	t.Run("matches sentinel by service", func(t *testing.T) {
		err := fmt.Errorf("ingest: %w", NewUpstreamError("vision", errors.New("timeout")))
		assert.True(t, errors.Is(err, ErrDescriptionFailed))
		assert.False(t, errors.Is(err, ErrSynthesisFailed))
		assert.True(t, IsUpstream(err))
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewUpstreamError("embedding", cause)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestAuthenticationAndConfigurationErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.Equal(t, "authentication token is required", ErrMissingToken.Error())
	assert.True(t, IsConfiguration(ErrLLMKeyMissing))
	assert.False(t, IsConfiguration(ErrInvalidToken))
}
