package service

import (
	"context"
	"encoding/base64"
	"errors"
	"regexp"
	"strings"

	apperrors "big-brain-backend/internal/errors"
	"big-brain-backend/internal/logger"
)

// ImageInput is an uploaded image held in memory
type ImageInput struct {
	Filename string
	MimeType string
	Data     []byte
}

// reasoningPrefix matches a leaked reasoning block up to and including the final-answer marker
var reasoningPrefix = regexp.MustCompile(`(?is)^(?:analysis.*?)?assistantfinal`)

// VisionDescriber describes images through Gemini inline image parts
type VisionDescriber struct {
	client *GeminiClient
}

// Ensure VisionDescriber implements VisionDescriberInterface
var _ VisionDescriberInterface = (*VisionDescriber)(nil)

// NewVisionDescriber creates a new VisionDescriber
func NewVisionDescriber(client *GeminiClient) *VisionDescriber {
	return &VisionDescriber{client: client}
}

// Describe returns a description of image. The text is model output and is stored as data only.
func (d *VisionDescriber) Describe(ctx context.Context, image *ImageInput, prompt string) (string, error) {
	if image == nil || len(image.Data) == 0 {
		return "", apperrors.NewValidationError("uploaded_file", "image is empty")
	}
	mimeType := image.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	raw, err := d.client.generate(ctx, "vision", []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image.Data),
		}},
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrLLMKeyMissing) {
			logger.WithContext(ctx).WithError(err).WithField("file", image.Filename).Error("Image description failed")
		}
		return "", err
	}

	return CleanDescription(raw), nil
}

// CleanDescription strips a leading reasoning block and falls back to the apology when nothing is left
func CleanDescription(raw string) string {
	cleaned := strings.TrimSpace(reasoningPrefix.ReplaceAllString(raw, ""))
	if cleaned == "" {
		return NoAnswer
	}
	return cleaned
}
