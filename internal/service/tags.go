package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"big-brain-backend/internal/database/models"
	apperrors "big-brain-backend/internal/errors"
	"big-brain-backend/internal/repository"
)

// TagReconciler maps tag names to stored tags, creating the missing ones
type TagReconciler struct {
	tagRepo repository.TagRepositoryInterface
}

// Ensure TagReconciler implements TagReconcilerInterface
var _ TagReconcilerInterface = (*TagReconciler)(nil)

// NewTagReconciler creates a new TagReconciler
func NewTagReconciler(tagRepo repository.TagRepositoryInterface) *TagReconciler {
	return &TagReconciler{tagRepo: tagRepo}
}

// Reconcile returns one tag per distinct non-blank name. Result order is not tied to input order.
func (r *TagReconciler) Reconcile(ctx context.Context, names []string) ([]models.Tag, error) {
	wanted := NormalizeTagNames(names)
	if len(wanted) == 0 {
		return []models.Tag{}, nil
	}

	existing, err := r.tagRepo.GetByNames(ctx, wanted)
	if err != nil {
		return nil, fmt.Errorf("failed to look up tags: %w", err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		found[t.Name] = struct{}{}
	}
	missing := make([]string, 0, len(wanted))
	for _, name := range wanted {
		if _, ok := found[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return existing, nil
	}

	toCreate := make([]models.Tag, 0, len(missing))
	for _, name := range missing {
		toCreate = append(toCreate, models.Tag{Name: name})
	}
	inserted, err := r.tagRepo.CreateBatch(ctx, toCreate)
	if err != nil && !apperrors.IsAlreadyExists(err) {
		return nil, fmt.Errorf("failed to create tags: %w", err)
	}
	if err == nil && inserted == int64(len(toCreate)) {
		return append(existing, toCreate...), nil
	}

	// Some names were created by a concurrent request; their ids come from the store
	created, err := r.tagRepo.GetByNames(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to reload tags: %w", err)
	}
	return append(existing, created...), nil
}

// NormalizeTagNames trims names and drops blanks and duplicates, keeping first occurrence order
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// ParseTagPayload decodes the multipart tags field, a JSON array of strings.
// Malformed input yields no tags rather than an error.
func ParseTagPayload(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return []string{}
	}
	return NormalizeTagNames(names)
}
