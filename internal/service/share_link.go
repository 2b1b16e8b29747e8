package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"big-brain-backend/internal/database/models"
	apperrors "big-brain-backend/internal/errors"
	"big-brain-backend/internal/logger"
	"big-brain-backend/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	shareHashAlphabet = "0123456789abcdef"
	// 32 hex characters carry 128 bits from the crypto RNG
	shareHashLength = 32
)

// ShareLinkService issues and resolves time-limited share links
type ShareLinkService struct {
	shareRepo   repository.ShareLinkRepositoryInterface
	contentRepo repository.ContentRepositoryInterface
	clientURL   string
	ttl         time.Duration
	now         func() time.Time
	newHash     func() (string, error)
}

// Ensure ShareLinkService implements ShareLinkServiceInterface
var _ ShareLinkServiceInterface = (*ShareLinkService)(nil)

// NewShareLinkService creates a new ShareLinkService. Links point at clientURL + "/share/<hash>".
func NewShareLinkService(shareRepo repository.ShareLinkRepositoryInterface, contentRepo repository.ContentRepositoryInterface, clientURL string, ttl time.Duration) *ShareLinkService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &ShareLinkService{
		shareRepo:   shareRepo,
		contentRepo: contentRepo,
		clientURL:   strings.TrimRight(clientURL, "/"),
		ttl:         ttl,
		now:         time.Now,
		newHash:     NewShareHash,
	}
}

// WithClock replaces the time source, for tests and tooling
func (s *ShareLinkService) WithClock(now func() time.Time) *ShareLinkService {
	s.now = now
	return s
}

// ShareLinkResponse is returned when a link is issued
type ShareLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewShareHash returns a fresh 32 character lowercase hex token
func NewShareHash() (string, error) {
	return gonanoid.Generate(shareHashAlphabet, shareHashLength)
}

// Issue creates a new link for the owner. A hash collision is retried once.
func (s *ShareLinkService) Issue(ctx context.Context, ownerID string) (*ShareLinkResponse, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, apperrors.ErrMissingToken
	}

	var link *models.ShareLink
	for attempt := 0; attempt < 2; attempt++ {
		hash, err := s.newHash()
		if err != nil {
			return nil, fmt.Errorf("failed to generate share hash: %w", err)
		}
		link = &models.ShareLink{
			Hash:      hash,
			OwnerID:   ownerID,
			ExpiresAt: s.now().UTC().Add(s.ttl),
		}
		err = s.shareRepo.Create(ctx, link)
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrShareLinkExists) || attempt == 1 {
			return nil, fmt.Errorf("failed to create share link: %w", err)
		}
	}

	logger.WithContext(ctx).WithField("expires_at", link.ExpiresAt).Info("Share link issued")
	return &ShareLinkResponse{
		URL:       s.clientURL + "/share/" + link.Hash,
		ExpiresAt: link.ExpiresAt,
	}, nil
}

// Resolve returns the active link for hash. Unknown, expired and revoked hashes all yield ErrShareLinkNotFound.
func (s *ShareLinkService) Resolve(ctx context.Context, hash string) (*models.ShareLink, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return nil, apperrors.ErrShareLinkNotFound
	}
	return s.shareRepo.GetActiveByHash(ctx, hash, s.now().UTC())
}

// SharedContent resolves hash and returns the owner's current content
func (s *ShareLinkService) SharedContent(ctx context.Context, hash string) ([]ContentResponse, error) {
	link, err := s.Resolve(ctx, hash)
	if err != nil {
		return nil, err
	}
	contents, err := s.contentRepo.GetByOwner(ctx, link.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared content: %w", err)
	}
	return toContentResponses(contents), nil
}

// Revoke disables one of the owner's links
func (s *ShareLinkService) Revoke(ctx context.Context, hash, ownerID string) error {
	if strings.TrimSpace(hash) == "" {
		return apperrors.ErrShareLinkNotFound
	}
	return s.shareRepo.Revoke(ctx, hash, ownerID, s.now().UTC())
}

// PurgeExpired deletes links whose expiry has passed and returns how many were removed
func (s *ShareLinkService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.shareRepo.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired share links: %w", err)
	}
	return n, nil
}
