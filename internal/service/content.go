package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"big-brain-backend/internal/database/models"
	apperrors "big-brain-backend/internal/errors"
	"big-brain-backend/internal/logger"
	"big-brain-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SearchSettings bounds nearest-neighbor retrieval
type SearchSettings struct {
	CandidatePool int
	Limit         int
}

// ContentService runs the ingest and retrieval pipelines over a user's content
type ContentService struct {
	contentRepo repository.ContentRepositoryInterface
	tags        TagReconcilerInterface
	embedder    EmbeddingProviderInterface
	vision      VisionDescriberInterface
	synthesizer AnswerSynthesizerInterface
	blobs       BlobStoreInterface
	prompts     *Prompts
	validator   *validator.Validate
	search      SearchSettings
}

// Ensure ContentService implements ContentServiceInterface
var _ ContentServiceInterface = (*ContentService)(nil)

// NewContentService creates a new ContentService
func NewContentService(
	contentRepo repository.ContentRepositoryInterface,
	tags TagReconcilerInterface,
	embedder EmbeddingProviderInterface,
	vision VisionDescriberInterface,
	synthesizer AnswerSynthesizerInterface,
	blobs BlobStoreInterface,
	prompts *Prompts,
	validator *validator.Validate,
	search SearchSettings,
) *ContentService {
	if search.Limit <= 0 {
		search.Limit = 5
	}
	if search.CandidatePool < search.Limit {
		search.CandidatePool = search.Limit
	}
	return &ContentService{
		contentRepo: contentRepo,
		tags:        tags,
		embedder:    embedder,
		vision:      vision,
		synthesizer: synthesizer,
		blobs:       blobs,
		prompts:     prompts,
		validator:   validator,
		search:      search,
	}
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ContentResponse represents a content item in API responses. The embedding is never included.
type ContentResponse struct {
	ID              uuid.UUID     `json:"id"`
	Link            string        `json:"link"`
	Type            string        `json:"type"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Tags            []TagResponse `json:"tags"`
	FileURL         string        `json:"file_url,omitempty"`
	FileDescription string        `json:"file_description,omitempty"`
	HasEmbedding    bool          `json:"has_embedding"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// SearchResult is a retrieved item with its cosine similarity to the query
type SearchResult struct {
	ContentResponse
	Score float64 `json:"score"`
}

// SearchResponse is the result of a natural-language query
type SearchResponse struct {
	Results     []SearchResult `json:"results"`
	LLMResponse string         `json:"llmResponse"`
}

// CreateContentRequest represents the fields of an ingest request
type CreateContentRequest struct {
	Link        string   `json:"link" form:"link" validate:"omitempty,max=2000"`
	Type        string   `json:"type" form:"type" validate:"required,max=40"`
	Title       string   `json:"title" form:"title" validate:"required,max=200"`
	Description string   `json:"description" form:"description" validate:"required"`
	Tags        []string `json:"tags" form:"-" validate:"max=50,dive,max=100"`
}

// UpdateContentRequest represents a partial update; nil fields are left unchanged
type UpdateContentRequest struct {
	Link        *string   `json:"link" validate:"omitempty,max=2000"`
	Type        *string   `json:"type" validate:"omitempty,min=1,max=40"`
	Title       *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	Tags        *[]string `json:"tags" validate:"omitempty,max=50,dive,max=100"`
}

// Create ingests a content item. Tags are reconciled first, the image (if any) is uploaded,
// then embedding and image description run concurrently and the record is written once both finish.
func (s *ContentService) Create(ctx context.Context, ownerID string, req *CreateContentRequest, image *ImageInput) (*ContentResponse, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, apperrors.ErrMissingToken
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("description", "description must not be blank")
	}

	log := logger.WithContext(ctx).WithField("owner", ownerID)

	tags, err := s.tags.Reconcile(ctx, req.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile tags: %w", err)
	}

	var fileURL, blobKey string
	if image != nil {
		fileURL, blobKey, err = s.blobs.Upload(ctx, image.Filename, bytes.NewReader(image.Data))
		if err != nil {
			return nil, fmt.Errorf("failed to upload file: %w", err)
		}
	}
	committed := false
	defer func() {
		if blobKey == "" || committed {
			return
		}
		if err := s.blobs.Delete(context.WithoutCancel(ctx), blobKey); err != nil {
			log.WithError(err).WithField("key", blobKey).Warn("Failed to remove orphaned upload")
		}
	}()

	var (
		embedding       []float32
		fileDescription string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vec, err := s.embedder.Embed(gctx, req.Description)
		if errors.Is(err, apperrors.ErrEmbeddingUnavailable) {
			log.Warn("Embedding model not ready, storing content without embedding")
			return nil
		}
		if err != nil {
			return err
		}
		embedding = vec
		return nil
	})
	if image != nil {
		g.Go(func() error {
			desc, err := s.vision.Describe(gctx, image, s.prompts.ImageDescription)
			if err != nil {
				return err
			}
			fileDescription = desc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	content := &models.Content{
		OwnerID:         ownerID,
		Link:            req.Link,
		Type:            req.Type,
		Title:           req.Title,
		Description:     req.Description,
		Tags:            tags,
		FileURL:         fileURL,
		FileDescription: fileDescription,
	}
	content.SetEmbedding(embedding)

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}
	committed = true

	log.WithFields(map[string]interface{}{
		"content_id":    content.ID.String(),
		"tags":          len(tags),
		"has_file":      fileURL != "",
		"has_embedding": len(embedding) > 0,
	}).Info("Content created")

	res := toContentResponse(content)
	return &res, nil
}

// Search embeds the question, retrieves the owner's nearest items and asks the model for a grounded answer
func (s *ContentService) Search(ctx context.Context, ownerID, query string) (*SearchResponse, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, apperrors.ErrMissingToken
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ErrEmptyQuery
	}

	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	hits, err := s.contentRepo.NearestNeighbors(ctx, ownerID, vec, s.search.CandidatePool, s.search.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search content: %w", err)
	}

	answer, err := s.synthesizer.Synthesize(ctx, query, s.prompts.QuerySystem, hits)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(hits))
	for i := range hits {
		results = append(results, SearchResult{
			ContentResponse: toContentResponse(&hits[i].Content),
			Score:           hits[i].Score,
		})
	}
	return &SearchResponse{Results: results, LLMResponse: answer}, nil
}

// List returns all of the owner's content, newest first
func (s *ContentService) List(ctx context.Context, ownerID string) ([]ContentResponse, error) {
	contents, err := s.contentRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return toContentResponses(contents), nil
}

// Get returns one of the owner's content items
func (s *ContentService) Get(ctx context.Context, id uuid.UUID, ownerID string) (*ContentResponse, error) {
	content, err := s.contentRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	res := toContentResponse(content)
	return &res, nil
}

// Update applies a partial update. A changed description is re-embedded; when the
// embedding model is not ready the stale embedding is cleared instead.
func (s *ContentService) Update(ctx context.Context, id uuid.UUID, ownerID string, req *UpdateContentRequest) (*ContentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, apperrors.NewValidationError("description", "description must not be blank")
		}
		current, err := s.contentRepo.GetByID(ctx, id, ownerID)
		if err != nil {
			return nil, err
		}
		if current.Description != *req.Description {
			updates["description"] = *req.Description
			vec, err := s.embedder.Embed(ctx, *req.Description)
			switch {
			case errors.Is(err, apperrors.ErrEmbeddingUnavailable):
				logger.WithContext(ctx).WithField("content_id", id.String()).
					Warn("Embedding model not ready, clearing embedding of edited content")
				updates["embedding"] = []float32{}
			case err != nil:
				return nil, err
			default:
				updates["embedding"] = vec
			}
		}
	}

	var tags []models.Tag
	if req.Tags != nil {
		reconciled, err := s.tags.Reconcile(ctx, *req.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile tags: %w", err)
		}
		tags = reconciled
		if tags == nil {
			tags = []models.Tag{}
		}
	}

	content, err := s.contentRepo.Update(ctx, id, ownerID, updates, tags)
	if err != nil {
		return nil, err
	}
	res := toContentResponse(content)
	return &res, nil
}

// Delete removes one of the owner's content items
func (s *ContentService) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	return s.contentRepo.Delete(ctx, id, ownerID)
}

// Reindex embeds content stored without an embedding, batchSize rows at a time.
// An empty ownerID covers every owner. It returns the number of items embedded.
func (s *ContentService) Reindex(ctx context.Context, ownerID string, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}
	if !s.embedder.Ready() {
		return 0, apperrors.ErrEmbeddingUnavailable
	}
	log := logger.WithContext(ctx)

	skipped := make(map[uuid.UUID]struct{})
	embedded := 0
	for {
		if err := ctx.Err(); err != nil {
			return embedded, err
		}
		batch, err := s.contentRepo.GetMissingEmbeddings(ctx, ownerID, batchSize+len(skipped))
		if err != nil {
			return embedded, fmt.Errorf("failed to load content without embeddings: %w", err)
		}

		progressed := false
		for i := range batch {
			item := &batch[i]
			if _, ok := skipped[item.ID]; ok {
				continue
			}
			vec, err := s.embedder.Embed(ctx, item.Description)
			if err != nil {
				if errors.Is(err, apperrors.ErrEmbeddingUnavailable) {
					return embedded, err
				}
				log.WithError(err).WithField("content_id", item.ID.String()).Warn("Skipping content that could not be embedded")
				skipped[item.ID] = struct{}{}
				continue
			}
			if err := s.contentRepo.SetEmbedding(ctx, item.ID, vec); err != nil {
				return embedded, fmt.Errorf("failed to store embedding: %w", err)
			}
			embedded++
			progressed = true
		}
		if !progressed {
			return embedded, nil
		}
	}
}

func toContentResponse(c *models.Content) ContentResponse {
	tags := make([]TagResponse, 0, len(c.Tags))
	for _, t := range c.Tags {
		tags = append(tags, TagResponse{ID: t.ID, Name: t.Name})
	}
	return ContentResponse{
		ID:              c.ID,
		Link:            c.Link,
		Type:            c.Type,
		Title:           c.Title,
		Description:     c.Description,
		Tags:            tags,
		FileURL:         c.FileURL,
		FileDescription: c.FileDescription,
		HasEmbedding:    c.HasEmbedding(),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toContentResponses(contents []models.Content) []ContentResponse {
	res := make([]ContentResponse, 0, len(contents))
	for i := range contents {
		res = append(res, toContentResponse(&contents[i]))
	}
	return res
}
