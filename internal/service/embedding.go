package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"big-brain-backend/internal/database/models"
	apperrors "big-brain-backend/internal/errors"
	"big-brain-backend/internal/logger"

	"github.com/cenkalti/backoff/v4"
)

// probeText is embedded once during initialization to verify the served dimensionality
const probeText = "big brain readiness probe"

// EmbeddingProvider calls a text-embeddings-inference compatible service.
// It is constructed once and shared; Embed fails with ErrEmbeddingUnavailable until Initialize succeeds.
type EmbeddingProvider struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.Mutex
	ready   atomic.Bool
	modelID string
}

// Ensure EmbeddingProvider implements EmbeddingProviderInterface
var _ EmbeddingProviderInterface = (*EmbeddingProvider)(nil)

// NewEmbeddingProvider creates an uninitialized embedding provider
func NewEmbeddingProvider(baseURL string, timeout time.Duration) *EmbeddingProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &EmbeddingProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type embeddingInfo struct {
	ModelID string `json:"model_id"`
}

type embedRequest struct {
	Inputs   []string `json:"inputs"`
	Truncate bool     `json:"truncate"`
}

// Initialize checks that the model is served and has the expected dimensionality.
// Calls are serialized. Once a call succeeds later calls return nil without
// contacting the service; a failed call leaves the provider free to try again.
func (p *EmbeddingProvider) Initialize(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready.Load() {
		return nil
	}
	if err := p.initialize(ctx); err != nil {
		return err
	}
	p.ready.Store(true)
	return nil
}

// InitializeWithRetry calls Initialize until it succeeds, ctx is done or policy gives up.
// Only upstream failures are retried; a dimensionality mismatch is returned at once.
func InitializeWithRetry(ctx context.Context, embedder EmbeddingProviderInterface, policy backoff.BackOff) error {
	log := logger.WithContext(ctx)
	op := func() error {
		err := embedder.Initialize(ctx)
		if err != nil && !apperrors.IsUpstream(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, next time.Duration) {
		log.WithError(err).WithField("retry_in", next.String()).Warn("Embedding service not ready")
	}
	return backoff.RetryNotify(op, backoff.WithContext(policy, ctx), notify)
}

func (p *EmbeddingProvider) initialize(ctx context.Context) error {
	log := logger.WithContext(ctx).WithField("embedding_url", p.baseURL)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/info", nil)
	if err != nil {
		return fmt.Errorf("build info request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("embedding", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apperrors.NewUpstreamError("embedding", fmt.Errorf("info returned status %d", resp.StatusCode))
	}
	var info embeddingInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return apperrors.NewUpstreamError("embedding", fmt.Errorf("decode info: %w", err))
	}
	p.modelID = info.ModelID

	vec, err := p.embed(ctx, probeText)
	if err != nil {
		return err
	}
	if len(vec) != models.EmbeddingDimensions {
		return fmt.Errorf("embedding model %q produces %d dimensions, want %d", info.ModelID, len(vec), models.EmbeddingDimensions)
	}

	log.WithFields(map[string]interface{}{
		"model":    info.ModelID,
		"duration": time.Since(start).String(),
	}).Info("Embedding model ready")
	return nil
}

// Ready reports whether initialization has completed successfully
func (p *EmbeddingProvider) Ready() bool {
	return p.ready.Load()
}

// ModelID returns the model id reported by the service, empty before initialization
func (p *EmbeddingProvider) ModelID() string {
	if !p.Ready() {
		return ""
	}
	return p.modelID
}

// Embed returns the embedding of text. There are no retries.
func (p *EmbeddingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if !p.Ready() {
		return nil, apperrors.ErrEmbeddingUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrInvalidEmbeddingInput
	}
	vec, err := p.embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(vec) != models.EmbeddingDimensions {
		return nil, apperrors.NewUpstreamError("embedding",
			fmt.Errorf("got %d dimensions, want %d", len(vec), models.EmbeddingDimensions))
	}
	return vec, nil
}

func (p *EmbeddingProvider) embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embedRequest{Inputs: []string{text}, Truncate: true})
	if err != nil {
		return nil, fmt.Errorf("marshal embed request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/embed", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("embedding", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.NewUpstreamError("embedding",
			fmt.Errorf("embed returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	var vectors [][]float32
	if err := json.NewDecoder(resp.Body).Decode(&vectors); err != nil {
		return nil, apperrors.NewUpstreamError("embedding", fmt.Errorf("decode embed response: %w", err))
	}
	if len(vectors) != 1 {
		return nil, apperrors.NewUpstreamError("embedding", fmt.Errorf("expected 1 vector, got %d", len(vectors)))
	}
	return vectors[0], nil
}
