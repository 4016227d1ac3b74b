package ai

import (
	openai "github.com/sashabaranov/go-openai"
)

// Generator wraps the OpenAI client used for app generation.
type Generator struct {
	client *openai.Client
	model  string
}

func NewGenerator(apiKey string, model string) *Generator {
	return &Generator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// NewGeneratorWithBaseURL targets an OpenAI-compatible endpoint. Tests use it
// to point the client at a local fake.
func NewGeneratorWithBaseURL(apiKey, model, baseURL string) *Generator {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Generator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}
