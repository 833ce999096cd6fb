package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"plain integer", "1234", 1234, true},
		{"plain decimal", "1234.56", 1234.56, true},
		{"dollar with thousands", "$ 1,234.56", 1234.56, true},
		{"parenthesized negative", "(1,234)", -1234, true},
		{"dollar paren negative", "$(123)", -123, true},
		{"european decimal", "1.234,56", 1234.56, true},
		{"european millions", "1.234.567,89", 1234567.89, true},
		{"currency code suffix", "1,500 USD", 1500, true},
		{"euro symbol", "€2.500,00", 2500, true},
		{"pound", "£99.95", 99.95, true},
		{"negative sign", "-450.25", -450.25, true},
		{"empty", "", 0, false},
		{"not applicable", "N/A", 0, false},
		{"dash", "-", 0, false},
		{"text", "Revenue", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

// Round-trip on the formats the parser documents: formatting a value into a
// given style and parsing it back recovers the value.
func TestParse_RoundTrip(t *testing.T) {
	cases := map[string]float64{
		"$1,234.56":  1234.56,
		"(2,500)":    -2500,
		"1.234,50":   1234.50,
		"99 EUR":     99,
		"¥1,000,000": 1000000,
	}
	for in, want := range cases {
		got, ok := Parse(in)
		assert.True(t, ok, in)
		assert.InDelta(t, want, got, 1e-9, in)
	}
}
