// Package calc derives computed financial fields (gross profit, totals,
// net cash change) from raw extracted fields. Derived values are written
// back into the canonical schema and reported with their formulas; a field
// already extracted from the document is never overwritten.
package calc

import (
	"bizworth/internal/domain"
)

// Calculate fills in derivable fields for every period and returns the list
// of calculations performed. Calling it again after inputs change
// recomputes the same formulas, so derived values always equal their
// declared formula over current inputs.
func Calculate(d *domain.CanonicalFinancialData) []domain.Calculation {
	if d == nil {
		return nil
	}

	var calcs []domain.Calculation
	add := func(field, period, formula string, target **float64, value float64) {
		*target = &value
		calcs = append(calcs, domain.Calculation{
			Field:   field,
			Period:  period,
			Formula: formula,
			Value:   value,
		})
	}

	for _, period := range d.Periods {
		if pl := d.ProfitLoss[period]; pl != nil {
			if pl.GrossProfit == nil && pl.Revenue != nil && pl.COGS != nil {
				add("grossProfit", period, "revenue - cogs",
					&pl.GrossProfit, *pl.Revenue-*pl.COGS)
			}
			if pl.OperatingIncome == nil && pl.GrossProfit != nil && pl.OperatingExpenses != nil {
				add("operatingIncome", period, "grossProfit - operatingExpenses",
					&pl.OperatingIncome, *pl.GrossProfit-*pl.OperatingExpenses)
			}
			if pl.NetIncome == nil && pl.OperatingIncome != nil {
				v := *pl.OperatingIncome - deref(pl.InterestExpense) - deref(pl.Taxes)
				add("netIncome", period, "operatingIncome - interestExpense - taxes",
					&pl.NetIncome, v)
			}
		}

		if as := d.Assets[period]; as != nil {
			if as.CurrentAssets == nil && (as.Cash != nil || as.AccountsReceivable != nil || as.Inventory != nil) {
				v := deref(as.Cash) + deref(as.AccountsReceivable) + deref(as.Inventory)
				add("currentAssets", period, "cash + accountsReceivable + inventory",
					&as.CurrentAssets, v)
			}
			if as.TotalAssets == nil && as.CurrentAssets != nil {
				v := *as.CurrentAssets + deref(as.FixedAssets) + deref(as.IntangibleAssets)
				add("totalAssets", period, "currentAssets + fixedAssets + intangibleAssets",
					&as.TotalAssets, v)
			}
		}

		if li := d.Liabilities[period]; li != nil {
			if li.CurrentLiabilities == nil && (li.AccountsPayable != nil || li.ShortTermDebt != nil) {
				v := deref(li.AccountsPayable) + deref(li.ShortTermDebt)
				add("currentLiabilities", period, "accountsPayable + shortTermDebt",
					&li.CurrentLiabilities, v)
			}
			if li.TotalLiabilities == nil && li.CurrentLiabilities != nil {
				v := *li.CurrentLiabilities + deref(li.LongTermDebt)
				add("totalLiabilities", period, "currentLiabilities + longTermDebt",
					&li.TotalLiabilities, v)
			}
		}

		if eq := d.Equity[period]; eq != nil {
			if eq.TotalEquity == nil && (eq.OwnerEquity != nil || eq.RetainedEarnings != nil) {
				v := deref(eq.OwnerEquity) + deref(eq.RetainedEarnings)
				add("totalEquity", period, "ownerEquity + retainedEarnings",
					&eq.TotalEquity, v)
			}
		}

		if oc := d.OwnerComp[period]; oc != nil {
			if oc.TotalCompensation == nil && (oc.Salary != nil || oc.Benefits != nil || oc.Distributions != nil) {
				v := deref(oc.Salary) + deref(oc.Benefits) + deref(oc.Distributions)
				add("totalCompensation", period, "salary + benefits + distributions",
					&oc.TotalCompensation, v)
			}
		}

		if cf := d.CashFlow[period]; cf != nil {
			if cf.NetCashChange == nil &&
				cf.OperatingCashFlow != nil && cf.InvestingCashFlow != nil && cf.FinancingCashFlow != nil {
				v := *cf.OperatingCashFlow + *cf.InvestingCashFlow + *cf.FinancingCashFlow
				add("netCashChange", period, "operatingCashFlow + investingCashFlow + financingCashFlow",
					&cf.NetCashChange, v)
			}
		}
	}

	return calcs
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
