// Package pipeline routes an uploaded document through extraction
// strategies in cost order: the free structured parser first, then paid
// vendors from cheapest to most expensive. Escalation stops at the first
// vendor success; cost and time are accumulated over every attempt,
// including failed ones.
package pipeline

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"

	"bizworth/internal/calc"
	"bizworth/internal/domain"
	"bizworth/internal/freetier"
	"bizworth/internal/validator"
	"bizworth/internal/vendorpkg"
)

// FreeParser is the zero-cost structured parser tried before any vendor.
type FreeParser interface {
	Parse(data []byte, filename string) *domain.ExtractionResult
}

type freeTierParser struct{}

func (freeTierParser) Parse(data []byte, filename string) *domain.ExtractionResult {
	return freetier.Parse(data, filename)
}

// Controller owns the escalation order and the confidence threshold.
type Controller struct {
	free      FreeParser
	vendors   []vendor.Adapter
	threshold float64
}

// NewController builds a controller over an ordered vendor chain. Vendors
// must already be sorted cheapest first; unconfigured ones are skipped at
// run time so a partially configured deployment still works.
func NewController(vendors []vendor.Adapter, threshold float64) *Controller {
	return &Controller{
		free:      freeTierParser{},
		vendors:   vendors,
		threshold: threshold,
	}
}

// NewControllerWithFreeParser is a constructor hook for tests.
func NewControllerWithFreeParser(free FreeParser, vendors []vendor.Adapter, threshold float64) *Controller {
	return &Controller{free: free, vendors: vendors, threshold: threshold}
}

// Input is one uploaded document.
type Input struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Outcome is the full pipeline verdict for one document.
type Outcome struct {
	Result               *domain.ExtractionResult
	FileType             domain.FileType
	FallbackUsed         bool
	Attempts             []domain.ExtractionResult
	Calculations         []domain.Calculation
	Validations          []domain.ValidationResult
	RequiresManualReview bool
	TotalCostUSD         float64
	TotalTimeMs          int64
}

// Process runs the document through the escalation chain.
func (c *Controller) Process(ctx context.Context, in Input) (*Outcome, error) {
	ft, ok := fileTypeFor(in.Filename)
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	out := &Outcome{FileType: ft}

	if ft == domain.FileTypeCSV || ft == domain.FileTypeExcel {
		res := c.free.Parse(in.Data, in.Filename)
		out.record(res)
		if res.Success && res.Confidence >= c.threshold {
			log.Printf("pipeline.Controller: free parser accepted %s (confidence %.0f)", in.Filename, res.Confidence)
			return c.finish(out, res), nil
		}
		log.Printf("pipeline.Controller: free parser below threshold for %s (confidence %.0f), escalating", in.Filename, res.Confidence)
	}

	vin := vendor.Input{
		FileBytes:   in.Data,
		ContentType: in.ContentType,
		FileType:    ft,
		Filename:    in.Filename,
	}
	if ft == domain.FileTypeCSV {
		vin.Text = string(in.Data)
	}

	attempted := false
	for _, v := range c.vendors {
		if !v.Configured() {
			continue
		}
		attempted = true

		start := time.Now()
		res, err := v.Extract(ctx, vin)
		if res != nil {
			if res.ProcessingTimeMs == 0 {
				res.ProcessingTimeMs = time.Since(start).Milliseconds()
			}
			out.record(res)
		}
		if err != nil {
			if errors.Is(err, vendor.ErrNeedsVision) {
				log.Printf("pipeline.Controller: %s cannot read scanned input %s, trying next vendor", v.Method(), in.Filename)
			} else {
				log.Printf("pipeline.Controller: %s failed for %s: %v", v.Method(), in.Filename, err)
			}
			continue
		}
		if res == nil || !res.Success {
			continue
		}

		out.FallbackUsed = true
		log.Printf("pipeline.Controller: %s extracted %s (confidence %.0f, cost $%.4f)", v.Method(), in.Filename, res.Confidence, res.CostUSD)
		return c.finish(out, res), nil
	}

	if !attempted && len(out.Attempts) == 0 {
		return nil, domain.ErrNoVendorConfigured
	}

	// Every vendor declined or failed. Fall back to the best attempt we
	// have, or report the failure with the cost already incurred.
	if best := out.bestAttempt(); best != nil {
		out.FallbackUsed = best.Method != domain.MethodFreeCSV && best.Method != domain.MethodFreeExcel
		return c.finish(out, best), nil
	}

	out.Result = &domain.ExtractionResult{Success: false, Error: domain.ErrInsufficientData.Error()}
	out.RequiresManualReview = true
	return out, nil
}

func (c *Controller) finish(out *Outcome, final *domain.ExtractionResult) *Outcome {
	out.Result = final
	if final.Data != nil {
		out.Calculations = calc.Calculate(final.Data)
		out.Validations = validator.Validate(final.Data)
	}
	out.RequiresManualReview = final.Confidence < c.threshold || validator.HasErrors(out.Validations)
	return out
}

func (o *Outcome) record(res *domain.ExtractionResult) {
	o.Attempts = append(o.Attempts, *res)
	o.TotalCostUSD += res.CostUSD
	o.TotalTimeMs += res.ProcessingTimeMs
}

func (o *Outcome) bestAttempt() *domain.ExtractionResult {
	var best *domain.ExtractionResult
	for i := range o.Attempts {
		a := &o.Attempts[i]
		if !a.Success {
			continue
		}
		if best == nil || a.Confidence > best.Confidence {
			best = a
		}
	}
	return best
}

func fileTypeFor(filename string) (domain.FileType, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	ft, ok := domain.AllowedExtensions[ext]
	return ft, ok
}
