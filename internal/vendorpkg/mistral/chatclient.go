package mistral

import (
	"context"

	"bizworth/internal/config"
)

// ChatClient exposes the chat endpoint to callers outside the document
// pipeline, currently the brand text extractor.
type ChatClient struct {
	c *client
}

// NewChatClient builds a chat client from config.
func NewChatClient(cfg *config.MistralConfig) *ChatClient {
	return &ChatClient{c: newClient(cfg, chatURL, ocrURL)}
}

// NewChatClientWithEndpoint overrides the chat endpoint for tests.
func NewChatClientWithEndpoint(cfg *config.MistralConfig, chatEndpoint string) *ChatClient {
	return &ChatClient{c: newClient(cfg, chatEndpoint, ocrURL)}
}

// Configured reports whether an API key is present.
func (cc *ChatClient) Configured() bool { return cc.c.configured() }

// Complete sends a single-user-message completion and returns the model
// text plus the token-based cost.
func (cc *ChatClient) Complete(ctx context.Context, prompt string) (string, float64, error) {
	return cc.c.chat(ctx, prompt)
}
