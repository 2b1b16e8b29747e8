package repository

import (
	"context"
	"time"

	"big-brain-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ContentRepositoryInterface defines the interface for content repository operations
type ContentRepositoryInterface interface {
	Create(ctx context.Context, content *models.Content) error
	GetByOwner(ctx context.Context, ownerID string) ([]models.Content, error)
	GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*models.Content, error)
	Update(ctx context.Context, id uuid.UUID, ownerID string, updates map[string]interface{}, tags []models.Tag) (*models.Content, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID string) error
	NearestNeighbors(ctx context.Context, ownerID string, query []float32, candidatePool, limit int) ([]models.ScoredContent, error)
	GetMissingEmbeddings(ctx context.Context, ownerID string, limit int) ([]models.Content, error)
	SetEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error
}

// TagRepositoryInterface defines the interface for tag repository operations
type TagRepositoryInterface interface {
	GetByNames(ctx context.Context, names []string) ([]models.Tag, error)
	CreateBatch(ctx context.Context, tags []models.Tag) (int64, error)
}

// ShareLinkRepositoryInterface defines the interface for share link repository operations
type ShareLinkRepositoryInterface interface {
	Create(ctx context.Context, link *models.ShareLink) error
	GetActiveByHash(ctx context.Context, hash string, now time.Time) (*models.ShareLink, error)
	Revoke(ctx context.Context, hash, ownerID string, at time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
