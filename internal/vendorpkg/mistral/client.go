// Package mistral implements the two Mistral-backed extraction adapters:
// the cheap chat/text path and the per-page OCR path.
package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bizworth/internal/config"
	"bizworth/internal/vendorpkg"
)

const (
	chatURL = "https://api.mistral.ai/v1/chat/completions"
	ocrURL  = "https://api.mistral.ai/v1/ocr"

	// Published per-token prices for mistral-small, USD per million tokens.
	chatInputPerMTok  = 0.10
	chatOutputPerMTok = 0.30
	// OCR is billed flat per page.
	ocrPerPage = 0.001
)

// client is the HTTP plumbing shared by both adapters.
type client struct {
	apiKey       string
	chatModel    string
	ocrModel     string
	chatEndpoint string
	ocrEndpoint  string
	http         *http.Client
}

func newClient(cfg *config.MistralConfig, chatEndpoint, ocrEndpoint string) *client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &client{
		apiKey:       cfg.APIKey,
		chatModel:    cfg.ChatModel,
		ocrModel:     cfg.OCRModel,
		chatEndpoint: chatEndpoint,
		ocrEndpoint:  ocrEndpoint,
		http:         &http.Client{Timeout: timeout},
	}
}

func (c *client) configured() bool { return c.apiKey != "" }

// chatUsage mirrors the usage counters in a chat completion response.
type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// chat sends a single-user-message completion request and returns the model
// text plus the token-based cost.
func (c *client) chat(ctx context.Context, prompt string) (string, float64, error) {
	reqBody := map[string]interface{}{
		"model":       c.chatModel,
		"temperature": 0.1,
		"messages": []map[string]interface{}{
			{"role": "user", "content": prompt},
		},
		"response_format": map[string]interface{}{"type": "json_object"},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", 0, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.chatEndpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, vendor.ClassifyTransportError("mistral", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, &vendor.UnreachableError{
			Vendor: "mistral",
			Err:    fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(respBody), 300)),
		}
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage chatUsage `json:"usage"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", 0, &vendor.InvalidResponseError{Vendor: "mistral", Err: err}
	}
	if len(parsed.Choices) == 0 {
		return "", 0, &vendor.InvalidResponseError{Vendor: "mistral", Err: fmt.Errorf("empty response: no choices")}
	}

	cost := float64(parsed.Usage.PromptTokens)*chatInputPerMTok/1e6 +
		float64(parsed.Usage.CompletionTokens)*chatOutputPerMTok/1e6
	return parsed.Choices[0].Message.Content, cost, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
