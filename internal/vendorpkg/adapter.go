// Package vendor defines the contract shared by all paid extraction
// adapters and the helpers they use to turn free-form model output into the
// canonical financial schema.
package vendor

import (
	"context"

	"bizworth/internal/domain"
)

// Input carries the document to an adapter. Text-based adapters consume
// Text when set; vision adapters consume FileBytes.
type Input struct {
	Text        string
	FileBytes   []byte
	ContentType string
	FileType    domain.FileType
	Filename    string
}

// Adapter is a single paid extraction strategy. Extract may return a
// non-nil result together with an error when cost was already incurred
// before the failure (e.g. OCR pages billed before structuring failed);
// the controller accounts for that cost even on failed attempts.
type Adapter interface {
	Method() domain.ExtractionMethod
	// Configured reports whether credentials for this vendor are present.
	// Unconfigured adapters are skipped, never called.
	Configured() bool
	Extract(ctx context.Context, in Input) (*domain.ExtractionResult, error)
}
