package service

import (
	"context"
	"io"

	"big-brain-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EmbeddingProviderInterface turns text into a fixed-length vector
type EmbeddingProviderInterface interface {
	Initialize(ctx context.Context) error
	Embed(ctx context.Context, text string) ([]float32, error)
	Ready() bool
}

// TagReconcilerInterface resolves tag names to stored tags, creating missing ones
type TagReconcilerInterface interface {
	Reconcile(ctx context.Context, names []string) ([]models.Tag, error)
}

// VisionDescriberInterface describes an image with a multimodal model
type VisionDescriberInterface interface {
	Describe(ctx context.Context, image *ImageInput, prompt string) (string, error)
}

// AnswerSynthesizerInterface produces an answer grounded in the given context items
type AnswerSynthesizerInterface interface {
	Synthesize(ctx context.Context, question, systemPrompt string, items []models.ScoredContent) (string, error)
}

// BlobStoreInterface stores uploaded files and returns their public URL
type BlobStoreInterface interface {
	Upload(ctx context.Context, filename string, r io.Reader) (url string, key string, err error)
	Delete(ctx context.Context, key string) error
}

// ContentServiceInterface defines the interface for the content ingest and retrieval pipeline
type ContentServiceInterface interface {
	Create(ctx context.Context, ownerID string, req *CreateContentRequest, file *ImageInput) (*ContentResponse, error)
	Search(ctx context.Context, ownerID, query string) (*SearchResponse, error)
	List(ctx context.Context, ownerID string) ([]ContentResponse, error)
	Get(ctx context.Context, id uuid.UUID, ownerID string) (*ContentResponse, error)
	Update(ctx context.Context, id uuid.UUID, ownerID string, req *UpdateContentRequest) (*ContentResponse, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID string) error
	Reindex(ctx context.Context, ownerID string, batchSize int) (int, error)
}

// ShareLinkServiceInterface defines the interface for share link operations
type ShareLinkServiceInterface interface {
	Issue(ctx context.Context, ownerID string) (*ShareLinkResponse, error)
	Resolve(ctx context.Context, hash string) (*models.ShareLink, error)
	SharedContent(ctx context.Context, hash string) ([]ContentResponse, error)
	Revoke(ctx context.Context, hash, ownerID string) error
	PurgeExpired(ctx context.Context) (int64, error)
}
