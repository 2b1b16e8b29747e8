package service_test

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"big-brain-backend/internal/database/models"
	apperrors "big-brain-backend/internal/errors"
	"big-brain-backend/internal/mocks"
	"big-brain-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// memShareLinkRepo keeps share links in memory with the same visibility rules as the SQL repository
type memShareLinkRepo struct {
	mu    sync.Mutex
	links map[string]*models.ShareLink
}

func newMemShareLinkRepo() *memShareLinkRepo {
	return &memShareLinkRepo{links: make(map[string]*models.ShareLink)}
}

func (r *memShareLinkRepo) Create(_ context.Context, link *models.ShareLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[link.Hash]; ok {
		return apperrors.ErrShareLinkExists
	}
	link.ID = uuid.New()
	cp := *link
	r.links[link.Hash] = &cp
	return nil
}

func (r *memShareLinkRepo) GetActiveByHash(_ context.Context, hash string, now time.Time) (*models.ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.links[hash]
	if !ok || !link.IsActive(now) {
		return nil, apperrors.ErrShareLinkNotFound
	}
	cp := *link
	return &cp, nil
}

func (r *memShareLinkRepo) Revoke(_ context.Context, hash, ownerID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.links[hash]
	if !ok || link.OwnerID != ownerID || link.RevokedAt != nil {
		return apperrors.ErrShareLinkNotFound
	}
	link.RevokedAt = &at
	return nil
}

func (r *memShareLinkRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for hash, link := range r.links {
		if link.IsExpired(now) {
			delete(r.links, hash)
			n++
		}
	}
	return n, nil
}

type ShareLinkServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	repo            *memShareLinkRepo
	mockContentRepo *mocks.MockContentRepositoryInterface
	shareService    *service.ShareLinkService
	now             time.Time
	ctx             context.Context
}

func (suite *ShareLinkServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = newMemShareLinkRepo()
	suite.mockContentRepo = mocks.NewMockContentRepositoryInterface(suite.ctrl)
	suite.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.shareService = service.NewShareLinkService(suite.repo, suite.mockContentRepo, "https://brain.example.com/", 24*time.Hour).
		WithClock(func() time.Time { return suite.now })
	suite.ctx = context.Background()
}

func (suite *ShareLinkServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

var shareURL = regexp.MustCompile(`^https://brain\.example\.com/share/([0-9a-f]{32})$`)

func (suite *ShareLinkServiceTestSuite) issue(owner string) string {
	res, err := suite.shareService.Issue(suite.ctx, owner)
	suite.Require().NoError(err)
	m := shareURL.FindStringSubmatch(res.URL)
	suite.Require().Len(m, 2, "unexpected share url %q", res.URL)
	return m[1]
}

func (suite *ShareLinkServiceTestSuite) TestIssue() {
	res, err := suite.shareService.Issue(suite.ctx, "user-1")
	suite.Require().NoError(err)
	suite.Regexp(shareURL, res.URL)
	suite.Equal(suite.now.Add(24*time.Hour), res.ExpiresAt)
}

func (suite *ShareLinkServiceTestSuite) TestIssueProducesDistinctHashes() {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		hash := suite.issue("user-1")
		_, dup := seen[hash]
		suite.False(dup)
		seen[hash] = struct{}{}
	}
}

func (suite *ShareLinkServiceTestSuite) TestIssueRetriesOnceOnCollision() {
	hashes := []string{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}
	next := 0
	suite.shareService.SetHashGenerator(func() (string, error) {
		h := hashes[next]
		next++
		return h, nil
	})

	suite.Equal("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", suite.issue("user-1"))
	suite.Equal("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", suite.issue("user-2"))
}

func (suite *ShareLinkServiceTestSuite) TestIssueGivesUpAfterSecondCollision() {
	suite.shareService.SetHashGenerator(func() (string, error) { return "cccccccccccccccccccccccccccccccc", nil })
	suite.issue("user-1")

	_, err := suite.shareService.Issue(suite.ctx, "user-2")
	suite.ErrorIs(err, apperrors.ErrShareLinkExists)
}

func (suite *ShareLinkServiceTestSuite) TestResolveExpiresAfterTTL() {
	hash := suite.issue("user-1")

	suite.now = suite.now.Add(23 * time.Hour)
	link, err := suite.shareService.Resolve(suite.ctx, hash)
	suite.Require().NoError(err)
	suite.Equal("user-1", link.OwnerID)

	suite.now = suite.now.Add(2 * time.Hour)
	_, err = suite.shareService.Resolve(suite.ctx, hash)
	suite.ErrorIs(err, apperrors.ErrShareLinkNotFound)
}

func (suite *ShareLinkServiceTestSuite) TestResolveUnknownLooksLikeExpired() {
	_, err := suite.shareService.Resolve(suite.ctx, "ffffffffffffffffffffffffffffffff")
	suite.ErrorIs(err, apperrors.ErrShareLinkNotFound)

	_, err = suite.shareService.Resolve(suite.ctx, "  ")
	suite.ErrorIs(err, apperrors.ErrShareLinkNotFound)
}

func (suite *ShareLinkServiceTestSuite) TestSharedContent() {
	hash := suite.issue("user-1")
	c := models.Content{OwnerID: "user-1", Title: "Recipe"}
	c.ID = uuid.New()
	suite.mockContentRepo.EXPECT().GetByOwner(gomock.Any(), "user-1").Return([]models.Content{c}, nil)

	contents, err := suite.shareService.SharedContent(suite.ctx, hash)
	suite.Require().NoError(err)
	suite.Require().Len(contents, 1)
	suite.Equal("Recipe", contents[0].Title)
}

func (suite *ShareLinkServiceTestSuite) TestSharedContentExpired() {
	hash := suite.issue("user-1")
	suite.now = suite.now.Add(25 * time.Hour)
	suite.mockContentRepo.EXPECT().GetByOwner(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.shareService.SharedContent(suite.ctx, hash)
	suite.ErrorIs(err, apperrors.ErrShareLinkNotFound)
}

func (suite *ShareLinkServiceTestSuite) TestRevoke() {
	hash := suite.issue("user-1")

	suite.ErrorIs(suite.shareService.Revoke(suite.ctx, hash, "user-2"), apperrors.ErrShareLinkNotFound)
	suite.NoError(suite.shareService.Revoke(suite.ctx, hash, "user-1"))

	_, err := suite.shareService.Resolve(suite.ctx, hash)
	suite.ErrorIs(err, apperrors.ErrShareLinkNotFound)
}

func (suite *ShareLinkServiceTestSuite) TestPurgeExpired() {
	suite.issue("user-1")
	suite.now = suite.now.Add(12 * time.Hour)
	fresh := suite.issue("user-2")
	suite.now = suite.now.Add(13 * time.Hour)

	n, err := suite.shareService.PurgeExpired(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(1), n)

	_, err = suite.shareService.Resolve(suite.ctx, fresh)
	suite.NoError(err)
}

func TestShareLinkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShareLinkServiceTestSuite))
}

func TestNewShareHash(t *testing.T) {
	hash, err := service.NewShareHash()
	assert.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{32}$`, hash)
}
