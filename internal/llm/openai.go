package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Client wraps the chat-completion API used by the AI distributor and the
// intent enrichment step.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient returns nil when no API key is configured; callers treat a nil
// client as "AI unavailable" and stay on the deterministic paths.
func NewClient(apiKey, model string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{api: openai.NewClient(apiKey), model: model}
}

func (c *Client) Available() bool {
	return c != nil && c.api != nil
}

// CompleteJSON requests a strict-JSON completion at low randomness.
func (c *Client) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("llm client not configured")
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Complete requests a free-text completion.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("llm client not configured")
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
