package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a unique-key conflict
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is matches validation errors with the same field and message
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError reports a failed call to an external model service.
// Err carries the transport or status detail and is never shown to clients.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s service failed", e.Service)
}

// Unwrap exposes the underlying cause
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is matches upstream errors from the same service
func (e *UpstreamError) Is(target error) bool {
	t, ok := target.(*UpstreamError)
	if !ok {
		return false
	}
	return e.Service == t.Service
}

// Entity Not Found Errors
var (
	ErrContentNotFound   = &NotFoundError{Entity: "content"}
	ErrShareLinkNotFound = &NotFoundError{Entity: "share link"}
)

// Already Exists Errors
var (
	ErrTagExists       = &AlreadyExistsError{Entity: "tag", Context: "with this name"}
	ErrShareLinkExists = &AlreadyExistsError{Entity: "share link", Context: "with this hash"}
)

// Validation Errors
var (
	ErrEmptyQuery            = &ValidationError{Field: "query", Message: "query must be a non-empty string"}
	ErrInvalidEmbeddingInput = &ValidationError{Field: "text", Message: "text to embed must be a non-empty string"}
	ErrInvalidEmbedding      = &ValidationError{Field: "embedding", Message: "embedding has the wrong dimensionality"}
	ErrUnsupportedFileType   = &ValidationError{Field: "uploaded_file", Message: "only image uploads are supported"}
	ErrFileTooLarge          = &ValidationError{Field: "uploaded_file", Message: "file exceeds the upload size limit"}
)

// Upstream Errors
var (
	// ErrEmbeddingUnavailable is returned while the embedding model is not loaded
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable: model not loaded")

	ErrEmbeddingFailed   = &UpstreamError{Service: "embedding"}
	ErrDescriptionFailed = &UpstreamError{Service: "vision"}
	ErrSynthesisFailed   = &UpstreamError{Service: "generation"}
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authentication token is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid authentication token"}
)

// Configuration Errors
var (
	ErrLLMKeyMissing = &ConfigurationError{Message: "LLM API key missing"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewUpstreamError wraps cause as a failure of the named service
func NewUpstreamError(service string, cause error) error {
	return &UpstreamError{Service: service, Err: cause}
}
