package mistral

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bizworth/internal/confidence"
	"bizworth/internal/config"
	"bizworth/internal/domain"
	"bizworth/internal/vendorpkg"
)

// OCRAdapter runs documents through the Mistral OCR API and structures the
// recognized markdown with a follow-up chat call. Billed per OCR'd page
// plus chat tokens; OCR pages already billed are reported even when the
// structuring call fails afterwards.
type OCRAdapter struct {
	c *client
}

// NewOCRAdapter creates the mistral-ocr adapter.
func NewOCRAdapter(cfg *config.MistralConfig) *OCRAdapter {
	return &OCRAdapter{c: newClient(cfg, chatURL, ocrURL)}
}

// NewOCRAdapterWithEndpoints creates an adapter pointing at custom
// endpoints (for testing).
func NewOCRAdapterWithEndpoints(cfg *config.MistralConfig, chatEndpoint, ocrEndpoint string) *OCRAdapter {
	return &OCRAdapter{c: newClient(cfg, chatEndpoint, ocrEndpoint)}
}

func (a *OCRAdapter) Method() domain.ExtractionMethod { return domain.MethodMistralOCR }
func (a *OCRAdapter) Configured() bool                { return a.c.configured() }

func (a *OCRAdapter) Extract(ctx context.Context, in vendor.Input) (*domain.ExtractionResult, error) {
	if !a.Configured() {
		return nil, vendor.ErrNotConfigured
	}
	if len(in.FileBytes) == 0 {
		return nil, fmt.Errorf("no file bytes to OCR")
	}

	markdown, ocrCost, err := a.runOCR(ctx, in)
	if err != nil {
		return &domain.ExtractionResult{Method: a.Method(), Error: err.Error()}, err
	}

	prompt := vendor.BuildFinancialPrompt() + "\n\nDocument text (OCR):\n" + markdown

	response, chatCost, err := a.c.chat(ctx, prompt)
	totalCost := ocrCost + chatCost
	if err != nil {
		return &domain.ExtractionResult{Method: a.Method(), CostUSD: totalCost, Error: err.Error()}, err
	}

	data, err := vendor.DecodeCanonical(response)
	if err != nil {
		wrapped := &vendor.InvalidResponseError{Vendor: "mistral", Err: err}
		return &domain.ExtractionResult{Method: a.Method(), CostUSD: totalCost, Error: wrapped.Error()}, wrapped
	}

	return &domain.ExtractionResult{
		Success:    true,
		Data:       data,
		Confidence: confidence.Score(data),
		CostUSD:    totalCost,
		Method:     a.Method(),
	}, nil
}

// runOCR submits the document as a base64 data URI and concatenates the
// per-page markdown.
func (a *OCRAdapter) runOCR(ctx context.Context, in vendor.Input) (string, float64, error) {
	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(in.FileBytes))

	docKey := "document_url"
	docType := "document_url"
	if strings.HasPrefix(contentType, "image/") {
		docKey = "image_url"
		docType = "image_url"
	}

	reqBody := map[string]interface{}{
		"model": a.c.ocrModel,
		"document": map[string]interface{}{
			"type": docType,
			docKey: dataURI,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", 0, fmt.Errorf("marshaling ocr request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.c.ocrEndpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", 0, fmt.Errorf("creating ocr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.c.apiKey)

	resp, err := a.c.http.Do(req)
	if err != nil {
		return "", 0, vendor.ClassifyTransportError("mistral-ocr", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("reading ocr response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, &vendor.UnreachableError{
			Vendor: "mistral-ocr",
			Err:    fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(respBody), 300)),
		}
	}

	var parsed struct {
		Pages []struct {
			Index    int    `json:"index"`
			Markdown string `json:"markdown"`
		} `json:"pages"`
		UsageInfo struct {
			PagesProcessed int `json:"pages_processed"`
		} `json:"usage_info"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", 0, &vendor.InvalidResponseError{Vendor: "mistral-ocr", Err: err}
	}
	if len(parsed.Pages) == 0 {
		return "", 0, &vendor.InvalidResponseError{Vendor: "mistral-ocr", Err: fmt.Errorf("no pages in ocr response")}
	}

	var sb strings.Builder
	for _, page := range parsed.Pages {
		sb.WriteString(page.Markdown)
		sb.WriteString("\n\n")
	}

	pages := parsed.UsageInfo.PagesProcessed
	if pages == 0 {
		pages = len(parsed.Pages)
	}
	return sb.String(), float64(pages) * ocrPerPage, nil
}
