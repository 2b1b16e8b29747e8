package service

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPromptsYAML []byte

// Prompts holds the instruction texts sent to the generation and vision models
type Prompts struct {
	QuerySystem       string `yaml:"query_system"`
	GroundingReminder string `yaml:"grounding_reminder"`
	ImageDescription  string `yaml:"image_description"`
}

// LoadPrompts returns the built-in prompt set, with any non-empty entries of the
// YAML file at path layered on top. An empty path yields the built-in set.
func LoadPrompts(path string) (*Prompts, error) {
	var prompts Prompts
	if err := yaml.Unmarshal(defaultPromptsYAML, &prompts); err != nil {
		return nil, fmt.Errorf("parse built-in prompts: %w", err)
	}
	if path == "" {
		return &prompts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file %s: %w", path, err)
	}
	var override Prompts
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse prompts file %s: %w", path, err)
	}
	if strings.TrimSpace(override.QuerySystem) != "" {
		prompts.QuerySystem = override.QuerySystem
	}
	if strings.TrimSpace(override.GroundingReminder) != "" {
		prompts.GroundingReminder = override.GroundingReminder
	}
	if strings.TrimSpace(override.ImageDescription) != "" {
		prompts.ImageDescription = override.ImageDescription
	}
	return &prompts, nil
}
