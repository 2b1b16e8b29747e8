package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"big-brain-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPromptsBuiltIn(t *testing.T) {
	prompts, err := service.LoadPrompts("")
	require.NoError(t, err)
	assert.Contains(t, prompts.QuerySystem, "Big Brain")
	assert.NotEmpty(t, prompts.GroundingReminder)
	assert.Contains(t, prompts.ImageDescription, "colors")
}

func TestLoadPromptsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query_system: Answer like a pirate.\n"), 0o600))

	prompts, err := service.LoadPrompts(path)
	require.NoError(t, err)
	assert.Equal(t, "Answer like a pirate.", prompts.QuerySystem)
	// Entries missing from the file keep their built-in text
	assert.Contains(t, prompts.ImageDescription, "colors")
}

func TestLoadPromptsErrors(t *testing.T) {
	_, err := service.LoadPrompts(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query_system: [unclosed"), 0o600))
	_, err = service.LoadPrompts(path)
	assert.Error(t, err)
}
