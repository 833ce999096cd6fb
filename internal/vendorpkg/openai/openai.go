// Package openai implements the gpt4-vision extraction adapter, the most
// expensive strategy in the escalation order.
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bizworth/internal/confidence"
	"bizworth/internal/config"
	"bizworth/internal/domain"
	"bizworth/internal/vendorpkg"
)

const (
	apiURL = "https://api.openai.com/v1/chat/completions"

	// gpt-4o published prices, USD per million tokens.
	inputPerMTok  = 2.50
	outputPerMTok = 10.00
)

// Adapter implements vendor.Adapter using the OpenAI Chat Completions API
// with image/PDF content blocks.
type Adapter struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewAdapter creates a GPT-4 Vision adapter from config.
func NewAdapter(cfg *config.OpenAIConfig) *Adapter {
	return newAdapter(cfg, apiURL)
}

// NewAdapterWithEndpoint creates an adapter pointing at a custom API
// endpoint (for testing).
func NewAdapterWithEndpoint(cfg *config.OpenAIConfig, endpoint string) *Adapter {
	return newAdapter(cfg, endpoint)
}

func newAdapter(cfg *config.OpenAIConfig, endpoint string) *Adapter {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Adapter{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (a *Adapter) Method() domain.ExtractionMethod { return domain.MethodGPT4Vision }
func (a *Adapter) Configured() bool                { return a.apiKey != "" }

func (a *Adapter) Extract(ctx context.Context, in vendor.Input) (*domain.ExtractionResult, error) {
	if !a.Configured() {
		return nil, vendor.ErrNotConfigured
	}

	contentBlocks, err := buildContentBlocks(in)
	if err != nil {
		return nil, err
	}

	reqBody := map[string]interface{}{
		"model":                 a.model,
		"max_completion_tokens": 8192,
		"messages": []map[string]interface{}{
			{"role": "user", "content": contentBlocks},
		},
		"response_format": map[string]interface{}{"type": "json_object"},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		transportErr := vendor.ClassifyTransportError("openai", err)
		return &domain.ExtractionResult{Method: a.Method(), Error: transportErr.Error()}, transportErr
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := &vendor.UnreachableError{
			Vendor: "openai",
			Err:    fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(respBody), 300)),
		}
		return &domain.ExtractionResult{Method: a.Method(), Error: apiErr.Error()}, apiErr
	}

	return a.parseResponse(respBody)
}

func buildContentBlocks(in vendor.Input) ([]map[string]interface{}, error) {
	prompt := vendor.BuildFinancialPrompt()

	if len(in.FileBytes) == 0 {
		if in.Text == "" {
			return nil, fmt.Errorf("no content to extract from")
		}
		return []map[string]interface{}{
			{"type": "text", "text": prompt + "\n\nDocument text:\n" + in.Text},
		}, nil
	}

	encoded := base64.StdEncoding.EncodeToString(in.FileBytes)
	dataURI := fmt.Sprintf("data:%s;base64,%s", in.ContentType, encoded)

	var blocks []map[string]interface{}
	switch in.ContentType {
	case "application/pdf":
		blocks = append(blocks, map[string]interface{}{
			"type": "file",
			"file": map[string]interface{}{
				"filename":  "document.pdf",
				"file_data": dataURI,
			},
		})
	case "image/jpeg", "image/png":
		blocks = append(blocks, map[string]interface{}{
			"type": "image_url",
			"image_url": map[string]interface{}{
				"url": dataURI,
			},
		})
	default:
		return nil, fmt.Errorf("unsupported content type for vision extraction: %s", in.ContentType)
	}

	blocks = append(blocks, map[string]interface{}{"type": "text", "text": prompt})
	return blocks, nil
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (a *Adapter) parseResponse(body []byte) (*domain.ExtractionResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		invalid := &vendor.InvalidResponseError{Vendor: "openai", Err: err}
		return &domain.ExtractionResult{Method: a.Method(), Error: invalid.Error()}, invalid
	}
	if len(resp.Choices) == 0 {
		invalid := &vendor.InvalidResponseError{Vendor: "openai", Err: fmt.Errorf("empty response: no choices")}
		return &domain.ExtractionResult{Method: a.Method(), Error: invalid.Error()}, invalid
	}

	cost := float64(resp.Usage.PromptTokens)*inputPerMTok/1e6 +
		float64(resp.Usage.CompletionTokens)*outputPerMTok/1e6

	if resp.Choices[0].FinishReason == "length" {
		invalid := &vendor.InvalidResponseError{
			Vendor: "openai",
			Err:    fmt.Errorf("output truncated (finish_reason: length)"),
		}
		return &domain.ExtractionResult{Method: a.Method(), CostUSD: cost, Error: invalid.Error()}, invalid
	}

	data, err := vendor.DecodeCanonical(resp.Choices[0].Message.Content)
	if err != nil {
		invalid := &vendor.InvalidResponseError{Vendor: "openai", Err: err}
		return &domain.ExtractionResult{Method: a.Method(), CostUSD: cost, Error: invalid.Error()}, invalid
	}

	return &domain.ExtractionResult{
		Success:    true,
		Data:       data,
		Confidence: confidence.Score(data),
		CostUSD:    cost,
		Method:     a.Method(),
	}, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
