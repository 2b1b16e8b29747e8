package repository

import (
	"context"
	"fmt"
	"time"

	"big-brain-backend/internal/database/models"
	apperrors "big-brain-backend/internal/errors"

	"gorm.io/gorm"
)

// ShareLinkRepository handles database operations for share links
type ShareLinkRepository struct {
	db *gorm.DB
}

// Ensure ShareLinkRepository implements ShareLinkRepositoryInterface
var _ ShareLinkRepositoryInterface = (*ShareLinkRepository)(nil)

// NewShareLinkRepository creates a new share link repository
func NewShareLinkRepository(db *gorm.DB) *ShareLinkRepository {
	return &ShareLinkRepository{db: db}
}

// Create inserts a new share link
func (r *ShareLinkRepository) Create(ctx context.Context, link *models.ShareLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrShareLinkExists, err)
		}
		return err
	}
	return nil
}

// GetActiveByHash returns the link for hash if it is neither expired nor revoked at now.
// Missing, expired and revoked links all yield ErrShareLinkNotFound.
func (r *ShareLinkRepository) GetActiveByHash(ctx context.Context, hash string, now time.Time) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.db.WithContext(ctx).
		Where("hash = ? AND expires_at > ? AND revoked_at IS NULL", hash, now).
		First(&link).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperrors.ErrShareLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// Revoke marks an active link owned by ownerID as revoked
func (r *ShareLinkRepository) Revoke(ctx context.Context, hash, ownerID string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.ShareLink{}).
		Where("hash = ? AND owner_id = ? AND revoked_at IS NULL AND expires_at > ?", hash, ownerID, at).
		Update("revoked_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrShareLinkNotFound
	}
	return nil
}

// DeleteExpired removes every link whose expiry is at or before now
func (r *ShareLinkRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.ShareLink{})
	return res.RowsAffected, res.Error
}
