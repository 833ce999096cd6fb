package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizworth/internal/domain"
)

func f(v float64) *float64 { return &v }

func findResult(results []domain.ValidationResult, rule string) *domain.ValidationResult {
	for i := range results {
		if results[i].Rule == rule {
			return &results[i]
		}
	}
	return nil
}

func TestBalanceIdentityFailsOutsideTolerance(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	d.AS("2023").TotalAssets = f(1000)
	d.LI("2023").TotalLiabilities = f(600)
	d.EQ("2023").TotalEquity = f(390)

	res := findResult(Validate(d), "balance.identity")
	require.NotNil(t, res)
	assert.False(t, res.Passed)
	assert.Equal(t, domain.SeverityError, res.Severity)
	assert.Equal(t, 990.0, *res.Expected)
	assert.Equal(t, 1000.0, *res.Actual)
	assert.True(t, HasErrors(Validate(d)))
}

func TestBalanceIdentityPassesWithinTolerance(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	d.AS("2023").TotalAssets = f(1000)
	d.LI("2023").TotalLiabilities = f(600)
	d.EQ("2023").TotalEquity = f(400)

	res := findResult(Validate(d), "balance.identity")
	require.NotNil(t, res)
	assert.True(t, res.Passed)
	assert.False(t, HasErrors(Validate(d)))
}

func TestBalanceIdentitySkippedWhenFieldsMissing(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	d.AS("2023").TotalAssets = f(1000)

	assert.Nil(t, findResult(Validate(d), "balance.identity"))
}

func TestCashFlowReconciliation(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	cf := d.CF("2023")
	cf.OperatingCashFlow = f(100)
	cf.InvestingCashFlow = f(-40)
	cf.FinancingCashFlow = f(-10)
	cf.NetCashChange = f(80) // should be 50

	res := findResult(Validate(d), "cashflow.reconciliation")
	require.NotNil(t, res)
	assert.False(t, res.Passed)
	assert.Equal(t, domain.SeverityError, res.Severity)
}

func TestGrossMarginOutOfRangeIsWarning(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	pl := d.PL("current")
	pl.Revenue = f(1000)
	pl.GrossProfit = f(1200)

	results := Validate(d)
	res := findResult(results, "margin.gross")
	require.NotNil(t, res)
	assert.False(t, res.Passed)
	assert.Equal(t, domain.SeverityWarning, res.Severity)
	assert.False(t, HasErrors(results))
}

func TestCurrentRatioWarning(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	d.AS("current").CurrentAssets = f(100)
	d.LI("current").CurrentLiabilities = f(400)

	res := findResult(Validate(d), "ratio.current")
	require.NotNil(t, res)
	assert.False(t, res.Passed)
	assert.Equal(t, domain.SeverityWarning, res.Severity)
}

func TestRangeRules(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	pl := d.PL("2022")
	pl.Revenue = f(-50)
	as := d.AS("2022")
	as.CurrentAssets = f(500)
	as.TotalAssets = f(400)

	results := Validate(d)

	rev := findResult(results, "range.revenue_nonnegative")
	require.NotNil(t, rev)
	assert.False(t, rev.Passed)

	ca := findResult(results, "range.current_assets_vs_total")
	require.NotNil(t, ca)
	assert.False(t, ca.Passed)
}

func TestValidateRunsPerPeriod(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	for _, p := range []string{"2022", "2023"} {
		d.AS(p).TotalAssets = f(1000)
		d.LI(p).TotalLiabilities = f(500)
		d.EQ(p).TotalEquity = f(500)
	}

	results := Validate(d)
	count := 0
	for _, r := range results {
		if r.Rule == "balance.identity" {
			count++
			assert.True(t, r.Passed)
		}
	}
	assert.Equal(t, 2, count)
}

func TestValidateNilData(t *testing.T) {
	assert.Nil(t, Validate(nil))
}
