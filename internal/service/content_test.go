package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"big-brain-backend/internal/database/models"
	apperrors "big-brain-backend/internal/errors"
	"big-brain-backend/internal/mocks"
	"big-brain-backend/internal/service"
	"big-brain-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockContentRepo *mocks.MockContentRepositoryInterface
	mockTags        *mocks.MockTagReconcilerInterface
	mockEmbedder    *mocks.MockEmbeddingProviderInterface
	mockVision      *mocks.MockVisionDescriberInterface
	mockSynthesizer *mocks.MockAnswerSynthesizerInterface
	mockBlobs       *mocks.MockBlobStoreInterface
	prompts         *service.Prompts
	contentService  *service.ContentService
	ctx             context.Context
}

func (suite *ContentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContentRepo = mocks.NewMockContentRepositoryInterface(suite.ctrl)
	suite.mockTags = mocks.NewMockTagReconcilerInterface(suite.ctrl)
	suite.mockEmbedder = mocks.NewMockEmbeddingProviderInterface(suite.ctrl)
	suite.mockVision = mocks.NewMockVisionDescriberInterface(suite.ctrl)
	suite.mockSynthesizer = mocks.NewMockAnswerSynthesizerInterface(suite.ctrl)
	suite.mockBlobs = mocks.NewMockBlobStoreInterface(suite.ctrl)
	suite.prompts = &service.Prompts{
		QuerySystem:      "You are Big Brain.",
		ImageDescription: "Describe the image.",
	}
	suite.contentService = service.NewContentService(
		suite.mockContentRepo,
		suite.mockTags,
		suite.mockEmbedder,
		suite.mockVision,
		suite.mockSynthesizer,
		suite.mockBlobs,
		suite.prompts,
		validator.New(),
		service.SearchSettings{CandidatePool: 1024, Limit: 5},
	)
	suite.ctx = context.Background()
}

func (suite *ContentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContentServiceTestSuite) createRequest() *service.CreateContentRequest {
	return &service.CreateContentRequest{
		Link:        "https://example.com/carbonara",
		Type:        "link",
		Title:       "Recipe",
		Description: "pasta carbonara",
		Tags:        []string{"food", "italian"},
	}
}

func image() *service.ImageInput {
	return &service.ImageInput{Filename: "dish.png", MimeType: "image/png", Data: testutils.PNGBytes}
}

func (suite *ContentServiceTestSuite) TestCreateWithoutImage() {
	req := suite.createRequest()
	tags := []models.Tag{tag("food"), tag("italian")}

	suite.mockTags.EXPECT().Reconcile(gomock.Any(), req.Tags).Return(tags, nil)
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), "pasta carbonara").Return(testutils.UnitVector(0), nil)
	suite.mockContentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Content) error {
			suite.Equal("user-1", c.OwnerID)
			suite.Equal("Recipe", c.Title)
			suite.Len(c.Tags, 2)
			suite.Len(c.EmbeddingSlice(), models.EmbeddingDimensions)
			suite.Empty(c.FileURL)
			suite.Empty(c.FileDescription)
			c.ID = uuid.New()
			return nil
		})

	res, err := suite.contentService.Create(suite.ctx, "user-1", req, nil)
	suite.Require().NoError(err)
	suite.Equal("Recipe", res.Title)
	suite.True(res.HasEmbedding)
	suite.Len(res.Tags, 2)
}

func (suite *ContentServiceTestSuite) TestCreateWithImageJoinsEmbedAndDescribe() {
	req := suite.createRequest()
	img := image()

	suite.mockTags.EXPECT().Reconcile(gomock.Any(), req.Tags).Return([]models.Tag{}, nil)
	suite.mockBlobs.EXPECT().Upload(gomock.Any(), "dish.png", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, r io.Reader) (string, string, error) {
			data, err := io.ReadAll(r)
			suite.NoError(err)
			suite.Equal(testutils.PNGBytes, data)
			return "http://files.test/files/2025/03/abc-dish.png", "2025/03/abc-dish.png", nil
		})
	// Both tasks must finish before the write, even when one is slow
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), "pasta carbonara").
		DoAndReturn(func(context.Context, string) ([]float32, error) {
			time.Sleep(20 * time.Millisecond)
			return testutils.UnitVector(1), nil
		})
	suite.mockVision.EXPECT().Describe(gomock.Any(), img, "Describe the image.").Return("A plate of pasta.", nil)
	suite.mockContentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Content) error {
			suite.Equal("http://files.test/files/2025/03/abc-dish.png", c.FileURL)
			suite.Equal("A plate of pasta.", c.FileDescription)
			suite.True(c.HasEmbedding())
			return nil
		})

	res, err := suite.contentService.Create(suite.ctx, "user-1", req, img)
	suite.Require().NoError(err)
	suite.Equal("A plate of pasta.", res.FileDescription)
}

func (suite *ContentServiceTestSuite) TestCreateStoresEmptyEmbeddingWhenUnavailable() {
	req := suite.createRequest()

	suite.mockTags.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return([]models.Tag{}, nil)
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrEmbeddingUnavailable)
	suite.mockContentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Content) error {
			suite.Nil(c.Embedding)
			return nil
		})

	res, err := suite.contentService.Create(suite.ctx, "user-1", req, nil)
	suite.Require().NoError(err)
	suite.False(res.HasEmbedding)
}

func (suite *ContentServiceTestSuite) TestCreateAbortsOnEmbeddingFailure() {
	req := suite.createRequest()

	suite.mockTags.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return([]models.Tag{}, nil)
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewUpstreamError("embedding", errors.New("status 500")))
	suite.mockContentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.contentService.Create(suite.ctx, "user-1", req, nil)
	suite.ErrorIs(err, apperrors.ErrEmbeddingFailed)
}

func (suite *ContentServiceTestSuite) TestCreateVisionFailureRemovesUpload() {
	req := suite.createRequest()
	img := image()

	suite.mockTags.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return([]models.Tag{}, nil)
	suite.mockBlobs.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("http://files.test/files/k.png", "k.png", nil)
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(testutils.UnitVector(0), nil).AnyTimes()
	suite.mockVision.EXPECT().Describe(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", apperrors.NewUpstreamError("vision", errors.New("status 500")))
	suite.mockBlobs.EXPECT().Delete(gomock.Any(), "k.png").Return(nil)
	suite.mockContentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.contentService.Create(suite.ctx, "user-1", req, img)
	suite.ErrorIs(err, apperrors.ErrDescriptionFailed)
}

func (suite *ContentServiceTestSuite) TestCreatePersistFailureRemovesUpload() {
	req := suite.createRequest()

	suite.mockTags.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return([]models.Tag{}, nil)
	suite.mockBlobs.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("http://files.test/files/k.png", "k.png", nil)
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(testutils.UnitVector(0), nil)
	suite.mockVision.EXPECT().Describe(gomock.Any(), gomock.Any(), gomock.Any()).Return("desc", nil)
	suite.mockContentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("tx aborted"))
	suite.mockBlobs.EXPECT().Delete(gomock.Any(), "k.png").Return(nil)

	_, err := suite.contentService.Create(suite.ctx, "user-1", req, image())
	suite.Error(err)
}

func (suite *ContentServiceTestSuite) TestCreateValidation() {
	req := suite.createRequest()
	req.Title = ""

	_, err := suite.contentService.Create(suite.ctx, "user-1", req, nil)
	var verrs validator.ValidationErrors
	suite.True(errors.As(err, &verrs))

	req = suite.createRequest()
	req.Description = "   "
	_, err = suite.contentService.Create(suite.ctx, "user-1", req, nil)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ContentServiceTestSuite) TestCreateRequiresOwner() {
	_, err := suite.contentService.Create(suite.ctx, "", suite.createRequest(), nil)
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *ContentServiceTestSuite) TestSearch() {
	query := testutils.UnitVector(0)
	hits := []models.ScoredContent{
		{Content: models.Content{Title: "A", Description: "pasta carbonara"}, Score: 0.98},
		{Content: models.Content{Title: "B", Description: "lasagna"}, Score: 0.81},
	}

	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), "what pasta did I save?").Return(query, nil)
	suite.mockContentRepo.EXPECT().NearestNeighbors(gomock.Any(), "user-1", query, 1024, 5).Return(hits, nil)
	suite.mockSynthesizer.EXPECT().Synthesize(gomock.Any(), "what pasta did I save?", "You are Big Brain.", hits).
		Return("Carbonara and lasagna.", nil)

	res, err := suite.contentService.Search(suite.ctx, "user-1", "  what pasta did I save?  ")
	suite.Require().NoError(err)
	suite.Equal("Carbonara and lasagna.", res.LLMResponse)
	suite.Require().Len(res.Results, 2)
	suite.Equal("A", res.Results[0].Title)
	suite.InDelta(0.98, res.Results[0].Score, 1e-9)
}

func (suite *ContentServiceTestSuite) TestSearchEmptyQuery() {
	_, err := suite.contentService.Search(suite.ctx, "user-1", "   ")
	suite.ErrorIs(err, apperrors.ErrEmptyQuery)
}

func (suite *ContentServiceTestSuite) TestSearchFailsFastWhenEmbeddingUnavailable() {
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrEmbeddingUnavailable)
	suite.mockContentRepo.EXPECT().NearestNeighbors(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.contentService.Search(suite.ctx, "user-1", "anything")
	suite.ErrorIs(err, apperrors.ErrEmbeddingUnavailable)
}

func (suite *ContentServiceTestSuite) TestSearchWithNoHitsStillAsksSynthesizer() {
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(testutils.UnitVector(0), nil)
	suite.mockContentRepo.EXPECT().NearestNeighbors(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.ScoredContent{}, nil)
	suite.mockSynthesizer.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any(), []models.ScoredContent{}).
		Return(service.NoAnswer, nil)

	res, err := suite.contentService.Search(suite.ctx, "user-1", "anything")
	suite.Require().NoError(err)
	suite.Empty(res.Results)
	suite.NotNil(res.Results)
	suite.Equal(service.NoAnswer, res.LLMResponse)
}

func (suite *ContentServiceTestSuite) TestSearchSynthesisFailure() {
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(testutils.UnitVector(0), nil)
	suite.mockContentRepo.EXPECT().NearestNeighbors(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.ScoredContent{{Content: models.Content{Description: "x"}}}, nil)
	suite.mockSynthesizer.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", apperrors.NewUpstreamError("generation", errors.New("status 429")))

	_, err := suite.contentService.Search(suite.ctx, "user-1", "anything")
	suite.ErrorIs(err, apperrors.ErrSynthesisFailed)
}

func (suite *ContentServiceTestSuite) TestGetNotFound() {
	id := uuid.New()
	suite.mockContentRepo.EXPECT().GetByID(gomock.Any(), id, "user-1").Return(nil, apperrors.ErrContentNotFound)

	_, err := suite.contentService.Get(suite.ctx, id, "user-1")
	suite.ErrorIs(err, apperrors.ErrContentNotFound)
}

func (suite *ContentServiceTestSuite) TestListNeverExposesEmbeddings() {
	c := models.Content{Title: "A", Indexed: true}
	c.ID = uuid.New()
	suite.mockContentRepo.EXPECT().GetByOwner(gomock.Any(), "user-1").Return([]models.Content{c}, nil)

	res, err := suite.contentService.List(suite.ctx, "user-1")
	suite.Require().NoError(err)
	suite.Require().Len(res, 1)
	suite.True(res[0].HasEmbedding)
	suite.NotNil(res[0].Tags)
}

func (suite *ContentServiceTestSuite) TestUpdateDescriptionReembeds() {
	id := uuid.New()
	desc := "spaghetti aglio e olio"
	vec := testutils.UnitVector(3)

	suite.mockContentRepo.EXPECT().GetByID(gomock.Any(), id, "user-1").
		Return(&models.Content{Description: "pasta carbonara"}, nil)
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), desc).Return(vec, nil)
	suite.mockContentRepo.EXPECT().
		Update(gomock.Any(), id, "user-1", map[string]interface{}{"description": desc, "embedding": vec}, nil).
		Return(&models.Content{Description: desc, Indexed: true}, nil)

	res, err := suite.contentService.Update(suite.ctx, id, "user-1", &service.UpdateContentRequest{Description: &desc})
	suite.Require().NoError(err)
	suite.Equal(desc, res.Description)
}

func (suite *ContentServiceTestSuite) TestUpdateUnchangedDescriptionSkipsEmbedding() {
	id := uuid.New()
	desc := "pasta carbonara"
	title := "New title"

	suite.mockContentRepo.EXPECT().GetByID(gomock.Any(), id, "user-1").
		Return(&models.Content{Description: desc}, nil)
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Times(0)
	suite.mockContentRepo.EXPECT().
		Update(gomock.Any(), id, "user-1", map[string]interface{}{"title": title}, nil).
		Return(&models.Content{Title: title, Description: desc}, nil)

	_, err := suite.contentService.Update(suite.ctx, id, "user-1", &service.UpdateContentRequest{Title: &title, Description: &desc})
	suite.NoError(err)
}

func (suite *ContentServiceTestSuite) TestUpdateClearsEmbeddingWhenUnavailable() {
	id := uuid.New()
	desc := "new text"

	suite.mockContentRepo.EXPECT().GetByID(gomock.Any(), id, "user-1").
		Return(&models.Content{Description: "old text"}, nil)
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), desc).Return(nil, apperrors.ErrEmbeddingUnavailable)
	suite.mockContentRepo.EXPECT().
		Update(gomock.Any(), id, "user-1", map[string]interface{}{"description": desc, "embedding": []float32{}}, nil).
		Return(&models.Content{Description: desc}, nil)

	res, err := suite.contentService.Update(suite.ctx, id, "user-1", &service.UpdateContentRequest{Description: &desc})
	suite.Require().NoError(err)
	suite.False(res.HasEmbedding)
}

func (suite *ContentServiceTestSuite) TestUpdateReplacesTags() {
	id := uuid.New()
	names := []string{"travel"}
	tags := []models.Tag{tag("travel")}

	suite.mockTags.EXPECT().Reconcile(gomock.Any(), names).Return(tags, nil)
	suite.mockContentRepo.EXPECT().
		Update(gomock.Any(), id, "user-1", map[string]interface{}{}, tags).
		Return(&models.Content{Tags: tags}, nil)

	res, err := suite.contentService.Update(suite.ctx, id, "user-1", &service.UpdateContentRequest{Tags: &names})
	suite.Require().NoError(err)
	suite.Require().Len(res.Tags, 1)
	suite.Equal("travel", res.Tags[0].Name)
}

func (suite *ContentServiceTestSuite) TestUpdateForeignContent() {
	id := uuid.New()
	desc := "x"
	suite.mockContentRepo.EXPECT().GetByID(gomock.Any(), id, "user-2").Return(nil, apperrors.ErrContentNotFound)

	_, err := suite.contentService.Update(suite.ctx, id, "user-2", &service.UpdateContentRequest{Description: &desc})
	suite.ErrorIs(err, apperrors.ErrContentNotFound)
}

func (suite *ContentServiceTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockContentRepo.EXPECT().Delete(gomock.Any(), id, "user-1").Return(nil)
	suite.NoError(suite.contentService.Delete(suite.ctx, id, "user-1"))
}

func (suite *ContentServiceTestSuite) TestReindex() {
	good := models.Content{Description: "pasta"}
	good.ID = uuid.New()
	blank := models.Content{Description: ""}
	blank.ID = uuid.New()
	vec := testutils.UnitVector(0)

	suite.mockEmbedder.EXPECT().Ready().Return(true)
	gomock.InOrder(
		suite.mockContentRepo.EXPECT().GetMissingEmbeddings(gomock.Any(), "", 10).
			Return([]models.Content{blank, good}, nil),
		suite.mockContentRepo.EXPECT().GetMissingEmbeddings(gomock.Any(), "", 11).
			Return([]models.Content{blank}, nil),
	)
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), "").Return(nil, apperrors.ErrInvalidEmbeddingInput)
	suite.mockEmbedder.EXPECT().Embed(gomock.Any(), "pasta").Return(vec, nil)
	suite.mockContentRepo.EXPECT().SetEmbedding(gomock.Any(), good.ID, vec).Return(nil)

	n, err := suite.contentService.Reindex(suite.ctx, "", 10)
	suite.NoError(err)
	suite.Equal(1, n)
}

func (suite *ContentServiceTestSuite) TestReindexRequiresReadyModel() {
	suite.mockEmbedder.EXPECT().Ready().Return(false)
	_, err := suite.contentService.Reindex(suite.ctx, "", 10)
	suite.ErrorIs(err, apperrors.ErrEmbeddingUnavailable)
}

func TestContentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContentServiceTestSuite))
}
