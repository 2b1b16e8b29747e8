package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"big-brain-backend/internal/database/models"
	apperrors "big-brain-backend/internal/errors"
	"big-brain-backend/internal/logger"
)

// NoAnswer is returned when the model produced nothing usable or there was no context to ground on
const NoAnswer = "Sorry, I don't have an answer right now."

const finalMarker = "assistantfinal"

var analysisBlock = regexp.MustCompile(`(?ims)^analysis.*$`)

// AnswerSynthesizer asks the generation model for an answer grounded in stored content
type AnswerSynthesizer struct {
	client   *GeminiClient
	reminder string
}

// Ensure AnswerSynthesizer implements AnswerSynthesizerInterface
var _ AnswerSynthesizerInterface = (*AnswerSynthesizer)(nil)

// NewAnswerSynthesizer creates a new AnswerSynthesizer. reminder is appended after the question.
func NewAnswerSynthesizer(client *GeminiClient, reminder string) *AnswerSynthesizer {
	return &AnswerSynthesizer{
		client:   client,
		reminder: strings.TrimSpace(reminder),
	}
}

// Synthesize answers question using only items as context.
// Without context the model is not called and NoAnswer is returned.
func (s *AnswerSynthesizer) Synthesize(ctx context.Context, question, systemPrompt string, items []models.ScoredContent) (string, error) {
	if !s.client.HasAPIKey() {
		return "", apperrors.ErrLLMKeyMissing
	}
	if len(items) == 0 {
		return NoAnswer, nil
	}

	prompt := BuildPrompt(systemPrompt, BuildContext(items), question, s.reminder)
	raw, err := s.client.generate(ctx, "generation", []geminiPart{{Text: prompt}})
	if err != nil {
		if !errors.Is(err, apperrors.ErrLLMKeyMissing) {
			logger.WithContext(ctx).WithError(err).Error("Answer generation failed")
		}
		return "", err
	}
	return CleanAnswer(raw), nil
}

// BuildContext renders one line per item: description, a space, then the file description
func BuildContext(items []models.ScoredContent) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.Description+" "+item.FileDescription)
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt assembles the single user turn sent to the model
func BuildPrompt(systemPrompt, contextText, question, reminder string) string {
	return fmt.Sprintf("%s\nContext:\n%s\n\nUser: %s, %s", systemPrompt, contextText, question, reminder)
}

// CleanAnswer removes leaked reasoning from model output
func CleanAnswer(raw string) string {
	cleaned := raw
	if idx := strings.LastIndex(raw, finalMarker); idx >= 0 {
		cleaned = strings.TrimSpace(raw[idx+len(finalMarker):])
	} else if strings.Contains(raw, "analysis") {
		cleaned = strings.TrimSpace(analysisBlock.ReplaceAllString(raw, ""))
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return NoAnswer
	}
	return cleaned
}
