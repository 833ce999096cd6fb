package mistral

import (
	"context"
	"fmt"

	"bizworth/internal/confidence"
	"bizworth/internal/config"
	"bizworth/internal/domain"
	"bizworth/internal/pdftext"
	"bizworth/internal/vendorpkg"
)

// TextAdapter extracts financial data by sending document text to the
// Mistral chat API. It is the cheapest paid strategy; PDFs whose text layer
// is effectively empty are refused with a needs-vision error instead of
// silently returning nothing.
type TextAdapter struct {
	c *client
}

// NewTextAdapter creates the mistral-text adapter.
func NewTextAdapter(cfg *config.MistralConfig) *TextAdapter {
	return &TextAdapter{c: newClient(cfg, chatURL, ocrURL)}
}

// NewTextAdapterWithEndpoint creates an adapter pointing at a custom chat
// endpoint (for testing).
func NewTextAdapterWithEndpoint(cfg *config.MistralConfig, endpoint string) *TextAdapter {
	return &TextAdapter{c: newClient(cfg, endpoint, ocrURL)}
}

func (a *TextAdapter) Method() domain.ExtractionMethod { return domain.MethodMistralText }
func (a *TextAdapter) Configured() bool                { return a.c.configured() }

func (a *TextAdapter) Extract(ctx context.Context, in vendor.Input) (*domain.ExtractionResult, error) {
	if !a.Configured() {
		return nil, vendor.ErrNotConfigured
	}

	text := in.Text
	if text == "" && in.FileType == domain.FileTypePDF {
		extracted, pages, err := pdftext.ExtractText(in.FileBytes)
		if err != nil {
			return nil, fmt.Errorf("extracting pdf text: %w", err)
		}
		if pdftext.LooksScanned(extracted, pages) {
			return nil, vendor.ErrNeedsVision
		}
		text = extracted
	}
	if text == "" {
		return nil, fmt.Errorf("no text content to extract from")
	}

	prompt := vendor.BuildFinancialPrompt() + "\n\nDocument text:\n" + text

	response, cost, err := a.c.chat(ctx, prompt)
	if err != nil {
		return &domain.ExtractionResult{Method: a.Method(), Error: err.Error()}, err
	}

	data, err := vendor.DecodeCanonical(response)
	if err != nil {
		wrapped := &vendor.InvalidResponseError{Vendor: "mistral", Err: err}
		return &domain.ExtractionResult{Method: a.Method(), CostUSD: cost, Error: wrapped.Error()}, wrapped
	}

	return &domain.ExtractionResult{
		Success:    true,
		Data:       data,
		Confidence: confidence.Score(data),
		CostUSD:    cost,
		Method:     a.Method(),
	}, nil
}
