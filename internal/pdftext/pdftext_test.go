package pdftext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksScanned(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		pages int
		want  bool
	}{
		{"empty text", "", 3, true},
		{"whitespace only", "   \n\n  ", 2, true},
		{"sparse text", strings.Repeat("x", 150), 2, true},
		{"dense single page", strings.Repeat("revenue 1000 ", 50), 1, false},
		{"dense multi page", strings.Repeat("a", 1000), 4, false},
		{"zero pages", "plenty of text here", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksScanned(tt.text, tt.pages))
		})
	}
}
