// Package bedrock implements the claude-bedrock extraction adapter using
// the AWS Bedrock runtime with Anthropic's messages payload.
package bedrock

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"bizworth/internal/confidence"
	"bizworth/internal/config"
	"bizworth/internal/domain"
	"bizworth/internal/vendorpkg"
)

const (
	anthropicVersion = "bedrock-2023-05-31"

	// Claude 3.5 Sonnet on Bedrock, USD per million tokens.
	inputPerMTok  = 3.00
	outputPerMTok = 15.00
)

// invoker is the slice of the Bedrock runtime client the adapter uses;
// narrowed for testability.
type invoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Adapter implements vendor.Adapter over AWS Bedrock.
type Adapter struct {
	client  invoker
	model   string
	timeout time.Duration
}

// NewAdapter creates a Bedrock Claude adapter. Returns an unconfigured
// adapter (skipped by the controller) when the region is absent or the AWS
// config cannot be resolved.
func NewAdapter(cfg *config.BedrockConfig) *Adapter {
	a := &Adapter{
		model:   cfg.Model,
		timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
	}
	if a.timeout == 0 {
		a.timeout = 60 * time.Second
	}
	if cfg.Region == "" {
		return a
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return a
	}
	a.client = bedrockruntime.NewFromConfig(awsCfg)
	return a
}

// NewAdapterWithClient creates an adapter over an existing runtime client
// (for testing).
func NewAdapterWithClient(client invoker, model string) *Adapter {
	return &Adapter{client: client, model: model, timeout: 60 * time.Second}
}

func (a *Adapter) Method() domain.ExtractionMethod { return domain.MethodClaudeBedrock }
func (a *Adapter) Configured() bool                { return a.client != nil }

func (a *Adapter) Extract(ctx context.Context, in vendor.Input) (*domain.ExtractionResult, error) {
	if !a.Configured() {
		return nil, vendor.ErrNotConfigured
	}

	content, err := buildContent(in)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"anthropic_version": anthropicVersion,
		"max_tokens":        8192,
		"messages": []map[string]interface{}{
			{"role": "user", "content": content},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	out, err := a.client.InvokeModel(callCtx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(a.model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		transportErr := vendor.ClassifyTransportError("claude-bedrock", err)
		return &domain.ExtractionResult{Method: a.Method(), Error: transportErr.Error()}, transportErr
	}

	return a.parseResponse(out.Body)
}

// buildContent assembles Anthropic message content blocks: the document as
// a document/image source where bytes are present, then the prompt.
func buildContent(in vendor.Input) ([]map[string]interface{}, error) {
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
	var blocks []map[string]interface{}
	switch in.ContentType {
	case "application/pdf":
		blocks = append(blocks, map[string]interface{}{
			"type": "document",
			"source": map[string]interface{}{
				"type":       "base64",
				"media_type": "application/pdf",
				"data":       encoded,
			},
		})
	case "image/jpeg", "image/png":
		blocks = append(blocks, map[string]interface{}{
			"type": "image",
			"source": map[string]interface{}{
				"type":       "base64",
				"media_type": in.ContentType,
				"data":       encoded,
			},
		})
	default:
		return nil, fmt.Errorf("unsupported content type for claude extraction: %s", in.ContentType)
	}

	blocks = append(blocks, map[string]interface{}{"type": "text", "text": prompt})
	return blocks, nil
}

// apiResponse models the Anthropic messages response returned by Bedrock.
type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (a *Adapter) parseResponse(body []byte) (*domain.ExtractionResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		invalid := &vendor.InvalidResponseError{Vendor: "claude-bedrock", Err: err}
		return &domain.ExtractionResult{Method: a.Method(), Error: invalid.Error()}, invalid
	}
	if len(resp.Content) == 0 {
		invalid := &vendor.InvalidResponseError{Vendor: "claude-bedrock", Err: fmt.Errorf("empty response")}
		return &domain.ExtractionResult{Method: a.Method(), Error: invalid.Error()}, invalid
	}

	cost := float64(resp.Usage.InputTokens)*inputPerMTok/1e6 +
		float64(resp.Usage.OutputTokens)*outputPerMTok/1e6

	if resp.StopReason == "max_tokens" {
		invalid := &vendor.InvalidResponseError{
			Vendor: "claude-bedrock",
			Err:    fmt.Errorf("output truncated (stop_reason: max_tokens)"),
		}
		return &domain.ExtractionResult{Method: a.Method(), CostUSD: cost, Error: invalid.Error()}, invalid
	}

	data, err := vendor.DecodeCanonical(resp.Content[0].Text)
	if err != nil {
		invalid := &vendor.InvalidResponseError{Vendor: "claude-bedrock", Err: err}
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
