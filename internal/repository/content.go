package repository

import (
	"context"
	"fmt"

	"big-brain-backend/internal/database/models"
	apperrors "big-brain-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// maxEfSearch is the upper bound pgvector accepts for hnsw.ef_search
const maxEfSearch = 1000

// contentColumns is the read projection: every column except the raw embedding
const contentColumns = "id, created_at, updated_at, owner_id, link, type, title, description, " +
	"file_url, file_description, embedding IS NOT NULL AS indexed"

// ContentRepository handles database operations for content items
type ContentRepository struct {
	db *gorm.DB
}

// Ensure ContentRepository implements ContentRepositoryInterface
var _ ContentRepositoryInterface = (*ContentRepository)(nil)

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Create inserts content together with its tag associations in one transaction
func (r *ContentRepository) Create(ctx context.Context, content *models.Content) error {
	if err := checkEmbedding(content.EmbeddingSlice()); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Tags.*").Create(content).Error
	})
}

// GetByOwner retrieves all content of an owner, newest first, without raw embeddings
func (r *ContentRepository) GetByOwner(ctx context.Context, ownerID string) ([]models.Content, error) {
	var contents []models.Content
	err := r.db.WithContext(ctx).
		Select(contentColumns).
		Preload("Tags").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

// GetByID retrieves content by id. The owner is part of the lookup, so foreign ids are not found.
func (r *ContentRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*models.Content, error) {
	var content models.Content
	err := r.db.WithContext(ctx).
		Select(contentColumns).
		Preload("Tags").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&content).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, err
	}
	return &content, nil
}

// Update applies column updates to owned content and, when tags is non-nil, replaces its tags.
// An "embedding" entry must hold a []float32; an empty slice clears the column.
func (r *ContentRepository) Update(ctx context.Context, id uuid.UUID, ownerID string, updates map[string]interface{}, tags []models.Tag) (*models.Content, error) {
	columns := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		columns[k] = v
	}
	if raw, ok := columns["embedding"]; ok {
		vec, _ := raw.([]float32)
		if err := checkEmbedding(vec); err != nil {
			return nil, err
		}
		if len(vec) == 0 {
			columns["embedding"] = gorm.Expr("NULL")
		} else {
			columns["embedding"] = pgvector.NewVector(vec)
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var content models.Content
		if err := tx.Select("id").
			Where("id = ? AND owner_id = ?", id, ownerID).
			First(&content).Error; err != nil {
			if isRecordNotFound(err) {
				return apperrors.ErrContentNotFound
			}
			return err
		}

		if len(columns) > 0 {
			if err := tx.Model(&models.Content{}).
				Where("id = ? AND owner_id = ?", id, ownerID).
				Updates(columns).Error; err != nil {
				return fmt.Errorf("update content: %w", err)
			}
		}

		if tags != nil {
			if err := tx.Model(&content).Omit("Tags.*").Association("Tags").Replace(tags); err != nil {
				return fmt.Errorf("replace tags: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id, ownerID)
}

// Delete removes owned content and its tag associations
func (r *ContentRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var content models.Content
		if err := tx.Select("id").
			Where("id = ? AND owner_id = ?", id, ownerID).
			First(&content).Error; err != nil {
			if isRecordNotFound(err) {
				return apperrors.ErrContentNotFound
			}
			return err
		}
		if err := tx.Model(&content).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("clear tags: %w", err)
		}
		return tx.Delete(&models.Content{}, "id = ? AND owner_id = ?", id, ownerID).Error
	})
}

type neighborHit struct {
	ID    uuid.UUID
	Score float64
}

// NearestNeighbors returns up to limit owned items closest to query by cosine distance,
// ordered by decreasing similarity. candidatePool bounds the HNSW search breadth.
func (r *ContentRepository) NearestNeighbors(ctx context.Context, ownerID string, query []float32, candidatePool, limit int) ([]models.ScoredContent, error) {
	if limit <= 0 {
		return []models.ScoredContent{}, nil
	}
	if err := checkEmbedding(query); err != nil {
		return nil, err
	}
	if len(query) == 0 {
		return nil, apperrors.ErrInvalidEmbedding
	}
	if candidatePool < limit {
		candidatePool = limit
	}
	if candidatePool > maxEfSearch {
		candidatePool = maxEfSearch
	}

	vec := pgvector.NewVector(query)
	var results []models.ScoredContent

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf("SET LOCAL hnsw.ef_search = %d", candidatePool)).Error; err != nil {
			return fmt.Errorf("set ef_search: %w", err)
		}
		// The index is shared by all owners; keep scanning past ef_search until
		// limit rows survive the owner filter, still in exact distance order.
		if err := tx.Exec("SET LOCAL hnsw.iterative_scan = strict_order").Error; err != nil {
			return fmt.Errorf("set iterative_scan: %w", err)
		}

		var hits []neighborHit
		if err := tx.Raw(`SELECT id, 1 - (embedding <=> ?) AS score
			FROM contents
			WHERE owner_id = ? AND embedding IS NOT NULL
			ORDER BY embedding <=> ?
			LIMIT ?`, vec, ownerID, vec, limit).
			Scan(&hits).Error; err != nil {
			return fmt.Errorf("nearest neighbor query: %w", err)
		}
		if len(hits) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(hits))
		for i, h := range hits {
			ids[i] = h.ID
		}
		var contents []models.Content
		if err := tx.Select(contentColumns).Preload("Tags").Where("id IN ?", ids).Find(&contents).Error; err != nil {
			return fmt.Errorf("load neighbors: %w", err)
		}
		byID := make(map[uuid.UUID]models.Content, len(contents))
		for _, c := range contents {
			byID[c.ID] = c
		}

		results = make([]models.ScoredContent, 0, len(hits))
		for _, h := range hits {
			if c, ok := byID[h.ID]; ok {
				results = append(results, models.ScoredContent{Content: c, Score: h.Score})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.ScoredContent{}
	}
	return results, nil
}

// GetMissingEmbeddings lists content without an embedding, oldest first. An empty ownerID spans all owners.
func (r *ContentRepository) GetMissingEmbeddings(ctx context.Context, ownerID string, limit int) ([]models.Content, error) {
	q := r.db.WithContext(ctx).Select(contentColumns).Where("embedding IS NULL")
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	var contents []models.Content
	if err := q.Order("created_at ASC").Limit(limit).Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// SetEmbedding stores the embedding of a content item
func (r *ContentRepository) SetEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	if err := checkEmbedding(embedding); err != nil {
		return err
	}
	var value interface{} = gorm.Expr("NULL")
	if len(embedding) > 0 {
		value = pgvector.NewVector(embedding)
	}
	res := r.db.WithContext(ctx).Model(&models.Content{}).Where("id = ?", id).Update("embedding", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrContentNotFound
	}
	return nil
}

// checkEmbedding enforces that a vector is either empty or exactly EmbeddingDimensions long
func checkEmbedding(vec []float32) error {
	if len(vec) != 0 && len(vec) != models.EmbeddingDimensions {
		return fmt.Errorf("%w: got %d, want %d", apperrors.ErrInvalidEmbedding, len(vec), models.EmbeddingDimensions)
	}
	return nil
}
