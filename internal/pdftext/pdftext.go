// Package pdftext extracts plain text from PDF bytes and decides whether a
// document is scanned (image-only) and therefore useless to text-based
// extraction strategies.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// scannedCharsPerPage is the threshold below which a PDF is treated as
// scanned: fewer average extractable characters per page than this means
// the text layer is effectively empty.
const scannedCharsPerPage = 100

// ExtractText pulls the text layer from every page of a PDF.
func ExtractText(data []byte) (string, int, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", 0, fmt.Errorf("opening pdf: %w", err)
	}
	defer func() { _ = doc.Close() }()

	pages := doc.NumPage()
	if pages == 0 {
		return "", 0, fmt.Errorf("pdf has no pages")
	}

	var sb strings.Builder
	for i := 0; i < pages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", 0, fmt.Errorf("extracting text from page %d: %w", i+1, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), pages, nil
}

// LooksScanned reports whether the extracted text is too sparse to be a
// real text layer (average extractable characters per page under the
// threshold).
func LooksScanned(text string, pages int) bool {
	if pages <= 0 {
		return true
	}
	stripped := strings.TrimSpace(text)
	return len(stripped)/pages < scannedCharsPerPage
}
