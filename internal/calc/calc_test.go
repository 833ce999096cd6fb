package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizworth/internal/domain"
)

func f(v float64) *float64 { return &v }

func TestCalculateDerivesTotals(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	pl := d.PL("2023")
	pl.Revenue = f(1000000)
	pl.COGS = f(400000)
	pl.OperatingExpenses = f(300000)

	as := d.AS("2023")
	as.Cash = f(50000)
	as.AccountsReceivable = f(30000)
	as.Inventory = f(20000)
	as.FixedAssets = f(150000)

	li := d.LI("2023")
	li.AccountsPayable = f(25000)
	li.ShortTermDebt = f(10000)
	li.LongTermDebt = f(65000)

	eq := d.EQ("2023")
	eq.OwnerEquity = f(100000)
	eq.RetainedEarnings = f(50000)

	calcs := Calculate(d)

	require.NotNil(t, pl.GrossProfit)
	assert.Equal(t, 600000.0, *pl.GrossProfit)
	require.NotNil(t, pl.OperatingIncome)
	assert.Equal(t, 300000.0, *pl.OperatingIncome)
	require.NotNil(t, pl.NetIncome)
	assert.Equal(t, 300000.0, *pl.NetIncome)

	require.NotNil(t, as.CurrentAssets)
	assert.Equal(t, 100000.0, *as.CurrentAssets)
	require.NotNil(t, as.TotalAssets)
	assert.Equal(t, 250000.0, *as.TotalAssets)

	require.NotNil(t, li.TotalLiabilities)
	assert.Equal(t, 100000.0, *li.TotalLiabilities)

	require.NotNil(t, eq.TotalEquity)
	assert.Equal(t, 150000.0, *eq.TotalEquity)

	fields := make(map[string]string)
	for _, c := range calcs {
		assert.Equal(t, "2023", c.Period)
		fields[c.Field] = c.Formula
	}
	assert.Equal(t, "revenue - cogs", fields["grossProfit"])
	assert.Equal(t, "currentAssets + fixedAssets + intangibleAssets", fields["totalAssets"])
}

func TestCalculateNeverOverwritesExtractedValues(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	pl := d.PL("current")
	pl.Revenue = f(500)
	pl.COGS = f(200)
	pl.GrossProfit = f(123) // as stated in the document, even if inconsistent

	calcs := Calculate(d)

	assert.Equal(t, 123.0, *pl.GrossProfit)
	for _, c := range calcs {
		assert.NotEqual(t, "grossProfit", c.Field)
	}
}

func TestCalculateSkipsWhenInputsMissing(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	pl := d.PL("current")
	pl.Revenue = f(500) // no COGS

	calcs := Calculate(d)

	assert.Nil(t, pl.GrossProfit)
	assert.Empty(t, calcs)
}

func TestCalculateOwnerCompAndCashFlow(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	oc := d.OC("2022")
	oc.Salary = f(120000)
	oc.Distributions = f(30000)

	cf := d.CF("2022")
	cf.OperatingCashFlow = f(80000)
	cf.InvestingCashFlow = f(-20000)
	cf.FinancingCashFlow = f(-10000)

	Calculate(d)

	require.NotNil(t, oc.TotalCompensation)
	assert.Equal(t, 150000.0, *oc.TotalCompensation)
	require.NotNil(t, cf.NetCashChange)
	assert.Equal(t, 50000.0, *cf.NetCashChange)
}

func TestCalculateIsIdempotent(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	pl := d.PL("2023")
	pl.Revenue = f(1000)
	pl.COGS = f(400)

	first := Calculate(d)
	second := Calculate(d)

	assert.NotEmpty(t, first)
	assert.Empty(t, second)
	assert.Equal(t, 600.0, *pl.GrossProfit)
}

func TestCalculateNilData(t *testing.T) {
	assert.Nil(t, Calculate(nil))
}
