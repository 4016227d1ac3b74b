package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"huggable/internal/ai/prompts"
)

// ErrEmptyResponse is returned when the provider answers without any usable
// text content.
var ErrEmptyResponse = errors.New("model returned an empty response")

const maxOutputTokens = 8192

// GenerateApp asks the model for a single self-contained HTML document and
// returns the raw text of the first choice. The call is made exactly once:
// transport, auth, and provider failures are wrapped and returned, never
// retried.
func (g *Generator) GenerateApp(ctx context.Context, description, style string) (string, error) {
	prompt := prompts.AppBuilderPrompt(description, style)

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:     g.model,
			MaxTokens: maxOutputTokens,
			// Moderate temperature: varied but coherent output.
			Temperature: 0.7,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
