// Package validator checks extracted financial data for internal
// consistency. Rules are evaluated per period; a rule whose inputs are
// missing produces no result rather than a failure.
package validator

import (
	"fmt"
	"math"

	"bizworth/internal/domain"
)

// relTolerance is the relative error allowed on accounting identities.
const relTolerance = 0.01

// rule checks one relationship across all periods of a document.
type rule struct {
	key      string
	severity domain.ValidationSeverity
	check    func(d *domain.CanonicalFinancialData, period string) *domain.ValidationResult
}

// Validate runs every registered rule over every period and returns the
// combined results.
func Validate(d *domain.CanonicalFinancialData) []domain.ValidationResult {
	if d == nil {
		return nil
	}
	var results []domain.ValidationResult
	for _, r := range rules() {
		for _, period := range d.Periods {
			if res := r.check(d, period); res != nil {
				res.Rule = r.key
				res.Severity = r.severity
				results = append(results, *res)
			}
		}
	}
	return results
}

// HasErrors reports whether any result failed at error severity.
func HasErrors(results []domain.ValidationResult) bool {
	for _, r := range results {
		if !r.Passed && r.Severity == domain.SeverityError {
			return true
		}
	}
	return false
}

func withinRelTolerance(actual, expected float64) bool {
	denom := math.Abs(expected)
	if denom == 0 {
		return math.Abs(actual) < 1e-9
	}
	return math.Abs(actual-expected)/denom <= relTolerance
}

func result(passed bool, field, period string, expected, actual float64, format string, args ...interface{}) *domain.ValidationResult {
	e, a := expected, actual
	msg := fmt.Sprintf("[%s] %s check passed", period, field)
	if !passed {
		msg = fmt.Sprintf("[%s] %s", period, fmt.Sprintf(format, args...))
	}
	return &domain.ValidationResult{
		Field:    field,
		Passed:   passed,
		Expected: &e,
		Actual:   &a,
		Message:  msg,
	}
}

func rules() []*rule {
	return []*rule{
		{
			key: "balance.identity", severity: domain.SeverityError,
			check: func(d *domain.CanonicalFinancialData, p string) *domain.ValidationResult {
				as, li, eq := d.Assets[p], d.Liabilities[p], d.Equity[p]
				if as == nil || li == nil || eq == nil ||
					as.TotalAssets == nil || li.TotalLiabilities == nil || eq.TotalEquity == nil {
					return nil
				}
				expected := *li.TotalLiabilities + *eq.TotalEquity
				passed := withinRelTolerance(*as.TotalAssets, expected)
				return result(passed, "totalAssets", p, expected, *as.TotalAssets,
					"totalAssets %.2f vs liabilities+equity %.2f", *as.TotalAssets, expected)
			},
		},
		{
			key: "cashflow.reconciliation", severity: domain.SeverityError,
			check: func(d *domain.CanonicalFinancialData, p string) *domain.ValidationResult {
				cf := d.CashFlow[p]
				if cf == nil || cf.NetCashChange == nil ||
					cf.OperatingCashFlow == nil || cf.InvestingCashFlow == nil || cf.FinancingCashFlow == nil {
					return nil
				}
				expected := *cf.OperatingCashFlow + *cf.InvestingCashFlow + *cf.FinancingCashFlow
				passed := withinRelTolerance(*cf.NetCashChange, expected)
				return result(passed, "netCashChange", p, expected, *cf.NetCashChange,
					"netCashChange %.2f vs activity sum %.2f", *cf.NetCashChange, expected)
			},
		},
		{
			key: "margin.gross", severity: domain.SeverityWarning,
			check: func(d *domain.CanonicalFinancialData, p string) *domain.ValidationResult {
				pl := d.ProfitLoss[p]
				if pl == nil || pl.GrossProfit == nil || pl.Revenue == nil || *pl.Revenue == 0 {
					return nil
				}
				margin := *pl.GrossProfit / *pl.Revenue
				passed := margin > 0 && margin < 1
				return result(passed, "grossProfit", p, 0, margin,
					"gross margin %.2f is outside (0, 1)", margin)
			},
		},
		{
			key: "ratio.current", severity: domain.SeverityWarning,
			check: func(d *domain.CanonicalFinancialData, p string) *domain.ValidationResult {
				as, li := d.Assets[p], d.Liabilities[p]
				if as == nil || li == nil || as.CurrentAssets == nil ||
					li.CurrentLiabilities == nil || *li.CurrentLiabilities == 0 {
					return nil
				}
				ratio := *as.CurrentAssets / *li.CurrentLiabilities
				passed := ratio > 0.5
				return result(passed, "currentAssets", p, 0.5, ratio,
					"current ratio %.2f is below 0.5", ratio)
			},
		},
		{
			key: "range.revenue_nonnegative", severity: domain.SeverityWarning,
			check: func(d *domain.CanonicalFinancialData, p string) *domain.ValidationResult {
				pl := d.ProfitLoss[p]
				if pl == nil || pl.Revenue == nil {
					return nil
				}
				passed := *pl.Revenue >= 0
				return result(passed, "revenue", p, 0, *pl.Revenue,
					"revenue %.2f is negative", *pl.Revenue)
			},
		},
		{
			key: "range.cogs_vs_revenue", severity: domain.SeverityWarning,
			check: func(d *domain.CanonicalFinancialData, p string) *domain.ValidationResult {
				pl := d.ProfitLoss[p]
				if pl == nil || pl.COGS == nil || pl.Revenue == nil || *pl.Revenue <= 0 {
					return nil
				}
				passed := *pl.COGS <= 2**pl.Revenue
				return result(passed, "cogs", p, 2**pl.Revenue, *pl.COGS,
					"cogs %.2f exceeds twice revenue %.2f", *pl.COGS, *pl.Revenue)
			},
		},
		{
			key: "range.current_assets_vs_total", severity: domain.SeverityWarning,
			check: func(d *domain.CanonicalFinancialData, p string) *domain.ValidationResult {
				as := d.Assets[p]
				if as == nil || as.CurrentAssets == nil || as.TotalAssets == nil {
					return nil
				}
				passed := *as.CurrentAssets <= *as.TotalAssets*(1+relTolerance)
				return result(passed, "currentAssets", p, *as.TotalAssets, *as.CurrentAssets,
					"currentAssets %.2f exceeds totalAssets %.2f", *as.CurrentAssets, *as.TotalAssets)
			},
		},
		{
			key: "range.current_liabilities_vs_total", severity: domain.SeverityWarning,
			check: func(d *domain.CanonicalFinancialData, p string) *domain.ValidationResult {
				li := d.Liabilities[p]
				if li == nil || li.CurrentLiabilities == nil || li.TotalLiabilities == nil {
					return nil
				}
				passed := *li.CurrentLiabilities <= *li.TotalLiabilities*(1+relTolerance)
				return result(passed, "currentLiabilities", p, *li.TotalLiabilities, *li.CurrentLiabilities,
					"currentLiabilities %.2f exceeds totalLiabilities %.2f", *li.CurrentLiabilities, *li.TotalLiabilities)
			},
		},
	}
}
