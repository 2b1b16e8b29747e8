package service

import (
	"fmt"

	"big-brain-backend/internal/config"
	"big-brain-backend/internal/repository"
	"big-brain-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Container holds the wired application services shared by the HTTP server and the CLI
type Container struct {
	Embedder *EmbeddingProvider
	Blobs    *storage.LocalBlobStore
	Content  *ContentService
	Shares   *ShareLinkService
}

// Ensure LocalBlobStore implements BlobStoreInterface
var _ BlobStoreInterface = (*storage.LocalBlobStore)(nil)

// NewContainer builds repositories and services from cfg. The embedding provider is
// passed in so it stays a single process-wide instance; it is not initialized here.
func NewContainer(db *gorm.DB, cfg *config.Config, embedder *EmbeddingProvider, validate *validator.Validate) (*Container, error) {
	prompts, err := LoadPrompts(cfg.PromptsFile)
	if err != nil {
		return nil, err
	}

	blobs, err := storage.NewLocalBlobStore(cfg.UploadDir, cfg.PublicBaseURL, cfg.MaxUploadBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob store: %w", err)
	}

	contentRepo := repository.NewContentRepository(db)
	tagRepo := repository.NewTagRepository(db)
	shareRepo := repository.NewShareLinkRepository(db)

	gemini := NewGeminiClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout)

	content := NewContentService(
		contentRepo,
		NewTagReconciler(tagRepo),
		embedder,
		NewVisionDescriber(gemini),
		NewAnswerSynthesizer(gemini, prompts.GroundingReminder),
		blobs,
		prompts,
		validate,
		SearchSettings{CandidatePool: cfg.SearchCandidatePool, Limit: cfg.SearchLimit},
	)

	return &Container{
		Embedder: embedder,
		Blobs:    blobs,
		Content:  content,
		Shares:   NewShareLinkService(shareRepo, contentRepo, cfg.ClientURL, cfg.ShareLinkTTL),
	}, nil
}
