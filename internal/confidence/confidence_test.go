package confidence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bizworth/internal/domain"
)

func f(v float64) *float64 { return &v }

func TestScore_EmptyData(t *testing.T) {
	assert.Equal(t, 0.0, Score(nil))
	assert.Equal(t, 0.0, Score(domain.NewCanonicalFinancialData()))
}

func TestScore_FullPeriod(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	pl := d.PL("2023")
	pl.Revenue, pl.COGS, pl.GrossProfit = f(100), f(40), f(60)
	pl.OperatingExpenses, pl.OperatingIncome = f(30), f(30)
	pl.Depreciation, pl.Amortization = f(5), f(2)
	pl.InterestExpense, pl.Taxes, pl.NetIncome = f(3), f(7), f(18)
	as := d.AS("2023")
	as.Cash, as.AccountsReceivable, as.Inventory = f(10), f(20), f(30)
	as.CurrentAssets, as.FixedAssets, as.IntangibleAssets, as.TotalAssets = f(60), f(40), f(0), f(100)
	li := d.LI("2023")
	li.AccountsPayable, li.ShortTermDebt, li.CurrentLiabilities = f(10), f(5), f(15)
	li.LongTermDebt, li.TotalLiabilities = f(45), f(60)
	eq := d.EQ("2023")
	eq.OwnerEquity, eq.RetainedEarnings, eq.TotalEquity = f(25), f(15), f(40)

	assert.Equal(t, 100.0, Score(d))
}

func TestScore_EmptyPeriodDilutes(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	d.PL("2023").Revenue = f(100)

	one := Score(d)
	assert.Greater(t, one, 0.0)

	// A second period with no data halves the score: its full weight stays
	// in the denominator.
	d.AddPeriod("2024")
	two := Score(d)
	assert.InDelta(t, one/2, two, 1e-9)
}

func TestScore_Monotonic(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	d.PL("2023").Revenue = f(100)

	before := Score(d)
	d.AS("2023").TotalAssets = f(500)
	after := Score(d)

	assert.GreaterOrEqual(t, after, before)

	d.LI("2023").TotalLiabilities = f(300)
	assert.GreaterOrEqual(t, Score(d), after)
}

func TestScoreLegacy_CriticalFields(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	pl := d.PL("2023")
	pl.Revenue = f(1000)
	pl.NetIncome = f(100)

	// Two critical fields at 15 points each.
	assert.Equal(t, 30.0, ScoreLegacy(d))
}

func TestScoreLegacy_IdentityPenalty(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	d.AS("2023").TotalAssets = f(1000)
	d.LI("2023").TotalLiabilities = f(600)
	d.EQ("2023").TotalEquity = f(400)

	balanced := ScoreLegacy(d)

	*d.Equity["2023"].TotalEquity = 300 // 10% off
	broken := ScoreLegacy(d)

	assert.InDelta(t, balanced-20, broken, 1e-9)
}

func TestScoreLegacy_FloorsAtZero(t *testing.T) {
	d := domain.NewCanonicalFinancialData()
	d.AS("2023").TotalAssets = f(1000)
	d.LI("2023").TotalLiabilities = f(100)
	d.EQ("2023").TotalEquity = f(100)

	// 3 critical fields (45) − 20 penalty = 25; never below zero even with
	// fewer points.
	assert.GreaterOrEqual(t, ScoreLegacy(d), 0.0)
}
