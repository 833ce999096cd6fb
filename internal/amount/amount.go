// Package amount normalizes heterogeneous numeric text from financial
// documents ("$1,234.56", "(1,234)", "1.234,56 EUR") into signed floats.
package amount

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencySuffixRe = regexp.MustCompile(`(?i)\s*(USD|EUR|CAD|GBP)\s*$`)
	parenNegativeRe  = regexp.MustCompile(`^\s*[$€£¥₹]?\s*\((.+)\)\s*$`)
	europeanFormatRe = regexp.MustCompile(`^\d{1,3}(\.\d{3})+,\d+$`)
	currencySymbols  = strings.NewReplacer("$", "", "€", "", "£", "", "¥", "", "₹", "")
)

// Parse converts a raw cell or token into a signed float. The second return
// is false when the string contains no parseable numeric content; that is a
// "no value" outcome, not an error. Decimal precision is preserved as given.
func Parse(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	s = currencySuffixRe.ReplaceAllString(s, "")

	negative := false
	if m := parenNegativeRe.FindStringSubmatch(s); m != nil {
		negative = true
		s = m[1]
	}

	s = currencySymbols.Replace(s)
	s = strings.TrimSpace(s)

	if europeanFormatRe.MatchString(s) {
		// "1.234,56": dots are thousands separators, comma is the decimal.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}
