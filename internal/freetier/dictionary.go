package freetier

import (
	"regexp"
	"strings"

	"bizworth/internal/domain"
)

// fieldSetter writes one normalized value into the canonical schema.
type fieldSetter func(d *domain.CanonicalFinancialData, period string, v float64)

func f(v float64) *float64 { return &v }

// Term dictionaries per statement category. Keys are normalized row labels
// (see normalizeLabel); every alias of a canonical field maps to its setter.
var plTerms = map[string]fieldSetter{
	"revenue":            func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).Revenue = f(v) },
	"sales":              func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).Revenue = f(v) },
	"net sales":          func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).Revenue = f(v) },
	"gross revenue":      func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).Revenue = f(v) },
	"cogs":               func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).COGS = f(v) },
	"cost of goods sold": func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).COGS = f(v) },
	"cost of sales":      func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).COGS = f(v) },
	"gross profit":       func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).GrossProfit = f(v) },
	"gross margin":       func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).GrossProfit = f(v) },
	"operating expenses": func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).OperatingExpenses = f(v) },
	"opex":               func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).OperatingExpenses = f(v) },
	"operating income":   func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).OperatingIncome = f(v) },
	"ebit":               func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).OperatingIncome = f(v) },
	"depreciation":       func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).Depreciation = f(v) },
	"amortization":       func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).Amortization = f(v) },
	"interest expense":   func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).InterestExpense = f(v) },
	"interest":           func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).InterestExpense = f(v) },
	"taxes":              func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).Taxes = f(v) },
	"income tax":         func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).Taxes = f(v) },
	"net income":         func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).NetIncome = f(v) },
	"net profit":         func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).NetIncome = f(v) },
	"net earnings":       func(d *domain.CanonicalFinancialData, p string, v float64) { d.PL(p).NetIncome = f(v) },
}

var assetTerms = map[string]fieldSetter{
	"cash":                 func(d *domain.CanonicalFinancialData, p string, v float64) { d.AS(p).Cash = f(v) },
	"cash and equivalents": func(d *domain.CanonicalFinancialData, p string, v float64) { d.AS(p).Cash = f(v) },
	"accounts receivable":  func(d *domain.CanonicalFinancialData, p string, v float64) { d.AS(p).AccountsReceivable = f(v) },
	"receivables":          func(d *domain.CanonicalFinancialData, p string, v float64) { d.AS(p).AccountsReceivable = f(v) },
	"inventory":            func(d *domain.CanonicalFinancialData, p string, v float64) { d.AS(p).Inventory = f(v) },
	"current assets":       func(d *domain.CanonicalFinancialData, p string, v float64) { d.AS(p).CurrentAssets = f(v) },
	"fixed assets":         func(d *domain.CanonicalFinancialData, p string, v float64) { d.AS(p).FixedAssets = f(v) },
	"property plant and equipment": func(d *domain.CanonicalFinancialData, p string, v float64) {
		d.AS(p).FixedAssets = f(v)
	},
	"ppe":               func(d *domain.CanonicalFinancialData, p string, v float64) { d.AS(p).FixedAssets = f(v) },
	"intangible assets": func(d *domain.CanonicalFinancialData, p string, v float64) { d.AS(p).IntangibleAssets = f(v) },
	"assets":            func(d *domain.CanonicalFinancialData, p string, v float64) { d.AS(p).TotalAssets = f(v) },
}

var liabilityTerms = map[string]fieldSetter{
	"accounts payable":    func(d *domain.CanonicalFinancialData, p string, v float64) { d.LI(p).AccountsPayable = f(v) },
	"payables":            func(d *domain.CanonicalFinancialData, p string, v float64) { d.LI(p).AccountsPayable = f(v) },
	"short term debt":     func(d *domain.CanonicalFinancialData, p string, v float64) { d.LI(p).ShortTermDebt = f(v) },
	"current liabilities": func(d *domain.CanonicalFinancialData, p string, v float64) { d.LI(p).CurrentLiabilities = f(v) },
	"long term debt":      func(d *domain.CanonicalFinancialData, p string, v float64) { d.LI(p).LongTermDebt = f(v) },
	"liabilities":         func(d *domain.CanonicalFinancialData, p string, v float64) { d.LI(p).TotalLiabilities = f(v) },
}

var equityTerms = map[string]fieldSetter{
	"owner equity":         func(d *domain.CanonicalFinancialData, p string, v float64) { d.EQ(p).OwnerEquity = f(v) },
	"owners equity":        func(d *domain.CanonicalFinancialData, p string, v float64) { d.EQ(p).OwnerEquity = f(v) },
	"shareholders equity":  func(d *domain.CanonicalFinancialData, p string, v float64) { d.EQ(p).OwnerEquity = f(v) },
	"stockholders equity":  func(d *domain.CanonicalFinancialData, p string, v float64) { d.EQ(p).OwnerEquity = f(v) },
	"retained earnings":    func(d *domain.CanonicalFinancialData, p string, v float64) { d.EQ(p).RetainedEarnings = f(v) },
	"equity":               func(d *domain.CanonicalFinancialData, p string, v float64) { d.EQ(p).TotalEquity = f(v) },
	"equity and net worth": func(d *domain.CanonicalFinancialData, p string, v float64) { d.EQ(p).TotalEquity = f(v) },
	"net worth":            func(d *domain.CanonicalFinancialData, p string, v float64) { d.EQ(p).TotalEquity = f(v) },
}

var ownerCompTerms = map[string]fieldSetter{
	"owner salary":       func(d *domain.CanonicalFinancialData, p string, v float64) { d.OC(p).Salary = f(v) },
	"officer salary":     func(d *domain.CanonicalFinancialData, p string, v float64) { d.OC(p).Salary = f(v) },
	"owner benefits":     func(d *domain.CanonicalFinancialData, p string, v float64) { d.OC(p).Benefits = f(v) },
	"distributions":      func(d *domain.CanonicalFinancialData, p string, v float64) { d.OC(p).Distributions = f(v) },
	"owner draws":        func(d *domain.CanonicalFinancialData, p string, v float64) { d.OC(p).Distributions = f(v) },
	"owner compensation": func(d *domain.CanonicalFinancialData, p string, v float64) { d.OC(p).TotalCompensation = f(v) },
}

var cashFlowTerms = map[string]fieldSetter{
	"operating cash flow":  func(d *domain.CanonicalFinancialData, p string, v float64) { d.CF(p).OperatingCashFlow = f(v) },
	"cash from operations": func(d *domain.CanonicalFinancialData, p string, v float64) { d.CF(p).OperatingCashFlow = f(v) },
	"investing cash flow":  func(d *domain.CanonicalFinancialData, p string, v float64) { d.CF(p).InvestingCashFlow = f(v) },
	"cash from investing":  func(d *domain.CanonicalFinancialData, p string, v float64) { d.CF(p).InvestingCashFlow = f(v) },
	"financing cash flow":  func(d *domain.CanonicalFinancialData, p string, v float64) { d.CF(p).FinancingCashFlow = f(v) },
	"cash from financing":  func(d *domain.CanonicalFinancialData, p string, v float64) { d.CF(p).FinancingCashFlow = f(v) },
	"net change in cash":   func(d *domain.CanonicalFinancialData, p string, v float64) { d.CF(p).NetCashChange = f(v) },
	"net cash change":      func(d *domain.CanonicalFinancialData, p string, v float64) { d.CF(p).NetCashChange = f(v) },
}

// allTerms is the merged lookup used by the row-based path.
var allTerms = func() map[string]fieldSetter {
	merged := make(map[string]fieldSetter)
	for _, dict := range []map[string]fieldSetter{plTerms, assetTerms, liabilityTerms, equityTerms, ownerCompTerms, cashFlowTerms} {
		for k, fn := range dict {
			merged[k] = fn
		}
	}
	return merged
}()

var (
	parentheticalRe = regexp.MustCompile(`\(.*?\)`)
	nonLabelCharsRe = regexp.MustCompile(`[^a-z&\s]`)
	multiSpaceRe    = regexp.MustCompile(`\s+`)
	totalPrefixRe   = regexp.MustCompile(`^total\s+`)
	currencyNoiseRe = regexp.MustCompile(`\b(usd|eur|gbp|cad|in thousands|in millions)\b`)
)

// normalizeLabel lowers a row label and strips currency and total-qualifier
// noise so it can be matched against the term dictionaries.
func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = parentheticalRe.ReplaceAllString(s, " ")
	s = currencyNoiseRe.ReplaceAllString(s, " ")
	s = nonLabelCharsRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = totalPrefixRe.ReplaceAllString(s, "")
	return s
}

// lookupField resolves a raw row label to a setter, trying the label as-is
// and with the "total" qualifier stripped.
func lookupField(raw string) (fieldSetter, bool) {
	norm := normalizeLabel(raw)
	if norm == "" {
		return nil, false
	}
	fn, ok := allTerms[norm]
	return fn, ok
}
