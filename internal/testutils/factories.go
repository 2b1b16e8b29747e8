package testutils

import (
	"fmt"
	"math"
	"time"

	"big-brain-backend/internal/database/models"

	"github.com/google/uuid"
)

// ContentFactory provides methods to create test Content data
type ContentFactory struct{}

// NewContentFactory creates a new ContentFactory
func NewContentFactory() *ContentFactory {
	return &ContentFactory{}
}

// Create creates a test Content with default values for the given owner
func (f *ContentFactory) Create(ownerID string) *models.Content {
	return &models.Content{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID:     ownerID,
		Link:        "https://example.com/recipes/carbonara",
		Type:        "link",
		Title:       "Recipe",
		Description: "pasta carbonara",
	}
}

// WithEmbedding creates a test Content whose embedding is UnitVector(axis)
func (f *ContentFactory) WithEmbedding(ownerID string, axis int) *models.Content {
	c := f.Create(ownerID)
	c.Title = fmt.Sprintf("Item %d", axis)
	c.SetEmbedding(UnitVector(axis))
	return c
}

// TagFactory provides methods to create test Tag data
type TagFactory struct{}

// NewTagFactory creates a new TagFactory
func NewTagFactory() *TagFactory {
	return &TagFactory{}
}

// Create creates a test Tag with the given name
func (f *TagFactory) Create(name string) *models.Tag {
	return &models.Tag{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
	}
}

// ShareLinkFactory provides methods to create test ShareLink data
type ShareLinkFactory struct{}

// NewShareLinkFactory creates a new ShareLinkFactory
func NewShareLinkFactory() *ShareLinkFactory {
	return &ShareLinkFactory{}
}

// Create creates a ShareLink for owner that expires ttl after issuedAt
func (f *ShareLinkFactory) Create(ownerID, hash string, issuedAt time.Time, ttl time.Duration) *models.ShareLink {
	return &models.ShareLink{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: issuedAt},
		Hash:      hash,
		OwnerID:   ownerID,
		ExpiresAt: issuedAt.Add(ttl),
	}
}

// UnitVector returns an embedding-sized vector with a single 1 at axis
func UnitVector(axis int) []float32 {
	v := make([]float32, models.EmbeddingDimensions)
	v[axis%models.EmbeddingDimensions] = 1
	return v
}

// BlendVector returns a normalized embedding pointing between two axes; weight is the share of axis a
func BlendVector(a, b int, weight float64) []float32 {
	v := make([]float32, models.EmbeddingDimensions)
	wa, wb := weight, 1-weight
	norm := math.Sqrt(wa*wa + wb*wb)
	v[a%models.EmbeddingDimensions] += float32(wa / norm)
	v[b%models.EmbeddingDimensions] += float32(wb / norm)
	return v
}
