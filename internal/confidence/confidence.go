// Package confidence computes 0–100 completeness scores over canonical
// financial data. Scores are heuristics about extraction completeness, not
// statistical probabilities.
package confidence

import (
	"math"

	"bizworth/internal/domain"
)

// Category weights for the period-aware scorer. Stable by contract; callers
// surface these numbers to users.
const (
	weightProfitLoss  = 30.0
	weightAssets      = 30.0
	weightLiabilities = 20.0
	weightEquity      = 20.0
)

// Score is the period-aware weighted scorer. Each period allocates fixed
// point budgets across the four statement categories; a period with no data
// at all still counts in the denominator, so sparse multi-period documents
// score lower than dense single-period ones.
func Score(d *domain.CanonicalFinancialData) float64 {
	if d == nil || len(d.Periods) == 0 {
		return 0
	}

	var total float64
	for _, period := range d.Periods {
		total += periodScore(d, period)
	}
	score := total / float64(len(d.Periods))
	return clamp(score)
}

func periodScore(d *domain.CanonicalFinancialData, period string) float64 {
	var s float64
	s += ratio(countPL(d.ProfitLoss[period])) * weightProfitLoss
	s += ratio(countAssets(d.Assets[period])) * weightAssets
	s += ratio(countLiabilities(d.Liabilities[period])) * weightLiabilities
	s += ratio(countEquity(d.Equity[period])) * weightEquity
	return s
}

func ratio(present, possible int) float64 {
	if possible == 0 {
		return 0
	}
	return float64(present) / float64(possible)
}

// ScoreLegacy is the single-period scorer kept for flat extractions: the
// five critical fields are worth 15 points each, every other present field
// 1 point up to 25, and a balance-identity violation outside 1% tolerance
// costs a flat 20-point penalty (floored at 0).
func ScoreLegacy(d *domain.CanonicalFinancialData) float64 {
	if d == nil || len(d.Periods) == 0 {
		return 0
	}
	period := d.Periods[0]

	pl := d.ProfitLoss[period]
	as := d.Assets[period]
	li := d.Liabilities[period]
	eq := d.Equity[period]

	var score float64
	critical := 0
	if pl != nil && pl.Revenue != nil {
		critical++
	}
	if pl != nil && pl.NetIncome != nil {
		critical++
	}
	if as != nil && as.TotalAssets != nil {
		critical++
	}
	if li != nil && li.TotalLiabilities != nil {
		critical++
	}
	if eq != nil && eq.TotalEquity != nil {
		critical++
	}
	score += float64(critical) * 15

	plPresent, _ := countPL(pl)
	asPresent, _ := countAssets(as)
	liPresent, _ := countLiabilities(li)
	eqPresent, _ := countEquity(eq)
	secondary := plPresent + asPresent + liPresent + eqPresent - critical
	if secondary > 25 {
		secondary = 25
	}
	score += float64(secondary)

	if as != nil && li != nil && eq != nil &&
		as.TotalAssets != nil && li.TotalLiabilities != nil && eq.TotalEquity != nil {
		assets := *as.TotalAssets
		delta := math.Abs(assets - (*li.TotalLiabilities + *eq.TotalEquity))
		if assets != 0 && delta/math.Abs(assets) > 0.01 {
			score -= 20
		}
	}

	return clamp(score)
}

func countPL(pl *domain.ProfitLoss) (present, possible int) {
	possible = 10
	if pl == nil {
		return 0, possible
	}
	for _, p := range []*float64{
		pl.Revenue, pl.COGS, pl.GrossProfit, pl.OperatingExpenses,
		pl.OperatingIncome, pl.Depreciation, pl.Amortization,
		pl.InterestExpense, pl.Taxes, pl.NetIncome,
	} {
		if p != nil {
			present++
		}
	}
	return present, possible
}

func countAssets(as *domain.Assets) (present, possible int) {
	possible = 7
	if as == nil {
		return 0, possible
	}
	for _, p := range []*float64{
		as.Cash, as.AccountsReceivable, as.Inventory, as.CurrentAssets,
		as.FixedAssets, as.IntangibleAssets, as.TotalAssets,
	} {
		if p != nil {
			present++
		}
	}
	return present, possible
}

func countLiabilities(li *domain.Liabilities) (present, possible int) {
	possible = 5
	if li == nil {
		return 0, possible
	}
	for _, p := range []*float64{
		li.AccountsPayable, li.ShortTermDebt, li.CurrentLiabilities,
		li.LongTermDebt, li.TotalLiabilities,
	} {
		if p != nil {
			present++
		}
	}
	return present, possible
}

func countEquity(eq *domain.Equity) (present, possible int) {
	possible = 3
	if eq == nil {
		return 0, possible
	}
	for _, p := range []*float64{eq.OwnerEquity, eq.RetainedEarnings, eq.TotalEquity} {
		if p != nil {
			present++
		}
	}
	return present, possible
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
