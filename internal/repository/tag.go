package repository

import (
	"context"
	"fmt"

	"big-brain-backend/internal/database/models"
	apperrors "big-brain-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository handles database operations for tags
type TagRepository struct {
	db *gorm.DB
}

// Ensure TagRepository implements TagRepositoryInterface
var _ TagRepositoryInterface = (*TagRepository)(nil)

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// GetByNames retrieves every tag whose name is in names with a single query
func (r *TagRepository) GetByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return []models.Tag{}, nil
	}
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateBatch inserts tags, skipping names that already exist, and returns the number of rows inserted.
// Rows skipped on conflict keep the id assigned in memory, so callers must re-read by name.
func (r *TagRepository) CreateBatch(ctx context.Context, tags []models.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&tags)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return 0, fmt.Errorf("%w: %v", apperrors.ErrTagExists, res.Error)
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
