// Package llm sends prompts to an OpenAI-compatible chat backend.
package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Provider generates a completion for one prompt. Implementations hold
// no conversation state.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds the chat-completions backend settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client is the openai-go backed Provider. A missing API key is not
// rejected at construction; the first Generate call surfaces it.
type Client struct {
	api   openai.Client
	model openai.ChatModel
}

var _ Provider = (*Client)(nil)

// NewClient builds a Client from cfg.
func NewClient(cfg Config) *Client {
	opts := []option.RequestOption{}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return &Client{
		api:   openai.NewClient(opts...),
		model: openai.ChatModel(cfg.Model),
	}
}

// Generate sends prompt as a single user message and returns the
// assistant text unmodified.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	return completion.Choices[0].Message.Content, nil
}
