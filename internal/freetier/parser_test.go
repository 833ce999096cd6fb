package freetier

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bizworth/internal/domain"
)

func TestParseCSV_SinglePeriodKeyValue(t *testing.T) {
	csv := []byte("Revenue,1543565\nNet Income,340595")

	res := ParseCSV(csv)

	require.True(t, res.Success)
	assert.Equal(t, domain.MethodFreeCSV, res.Method)
	// 2 fields at 10 points each.
	assert.Equal(t, 20.0, res.Confidence)
	assert.Equal(t, 0.0, res.CostUSD)

	pl := res.Data.ProfitLoss["current"]
	require.NotNil(t, pl)
	require.NotNil(t, pl.Revenue)
	assert.Equal(t, 1543565.0, *pl.Revenue)
	require.NotNil(t, pl.NetIncome)
	assert.Equal(t, 340595.0, *pl.NetIncome)
}

func TestParseCSV_MultiPeriod(t *testing.T) {
	csv := []byte(`Item,2022,2023
Revenue,"1,000,000","1,200,000"
Cost of Goods Sold,"400,000","480,000"
Net Income,"150,000","180,000"
Total Assets,"2,500,000","2,700,000"
Total Liabilities,"1,500,000","1,560,000"
Total Equity,"1,000,000","1,140,000"`)

	res := ParseCSV(csv)

	require.True(t, res.Success)
	assert.Equal(t, []string{"2022", "2023"}, res.Data.Periods)
	// 6 rows x 2 periods = 12 fields, 2 points each.
	assert.Equal(t, 24.0, res.Confidence)

	require.NotNil(t, res.Data.ProfitLoss["2023"])
	assert.Equal(t, 1200000.0, *res.Data.ProfitLoss["2023"].Revenue)
	assert.Equal(t, 480000.0, *res.Data.ProfitLoss["2023"].COGS)
	assert.Equal(t, 2700000.0, *res.Data.Assets["2023"].TotalAssets)
	assert.Equal(t, 1560000.0, *res.Data.Liabilities["2023"].TotalLiabilities)
	assert.Equal(t, 1140000.0, *res.Data.Equity["2023"].TotalEquity)
}

func TestParseCSV_CategoryItemLayout(t *testing.T) {
	csv := []byte(`Category,Item,Q1 2023,Q2 2023
Balance Sheet,Total Assets,"1,000","1,050"
Balance Sheet,Total Liabilities,600,620
Balance Sheet,Total Equity,400,430
P&L,Revenue,500,550`)

	res := ParseCSV(csv)

	require.True(t, res.Success)
	assert.Equal(t, []string{"Q1 2023", "Q2 2023"}, res.Data.Periods)
	assert.Equal(t, 1000.0, *res.Data.Assets["Q1 2023"].TotalAssets)
	assert.Equal(t, 620.0, *res.Data.Liabilities["Q2 2023"].TotalLiabilities)
	assert.Equal(t, 550.0, *res.Data.ProfitLoss["Q2 2023"].Revenue)
}

func TestParseCSV_ParenthesizedNegatives(t *testing.T) {
	csv := []byte("Net Income,\"(45,000)\"\nRevenue,\"100,000\"")

	res := ParseCSV(csv)

	require.True(t, res.Success)
	assert.Equal(t, -45000.0, *res.Data.ProfitLoss["current"].NetIncome)
}

func TestParseCSV_TooFewRows(t *testing.T) {
	res := ParseCSV([]byte("Revenue,100"))

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	assert.Nil(t, res.Data)
}

func TestParseCSV_Idempotent(t *testing.T) {
	csv := []byte(`Item,2022,2023
Revenue,"1,000","1,100"
Net Income,200,220`)

	first := ParseCSV(csv)
	second := ParseCSV(csv)

	require.True(t, first.Success)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.Data, second.Data)
}

func TestParseExcel_AllSheets(t *testing.T) {
	fl := excelize.NewFile()
	require.NoError(t, fl.SetSheetRow("Sheet1", "A1", &[]interface{}{"Item", "2023"}))
	require.NoError(t, fl.SetSheetRow("Sheet1", "A2", &[]interface{}{"Revenue", "1,000,000"}))
	_, err := fl.NewSheet("Balance")
	require.NoError(t, err)
	require.NoError(t, fl.SetSheetRow("Balance", "A1", &[]interface{}{"Total Assets", "2,000,000"}))

	var buf bytes.Buffer
	require.NoError(t, fl.Write(&buf))

	res := ParseExcel(buf.Bytes())

	require.True(t, res.Success)
	assert.Equal(t, domain.MethodFreeExcel, res.Method)
	// Header comes from the first sheet; the Balance sheet row is still
	// visible to the multi-period scan via the year column.
	require.NotNil(t, res.Data.ProfitLoss["2023"])
	assert.Equal(t, 1000000.0, *res.Data.ProfitLoss["2023"].Revenue)
}

func TestParse_SelectsPathByExtension(t *testing.T) {
	csv := []byte("Revenue,100\nNet Income,50")

	res := Parse(csv, "statement.csv")
	assert.Equal(t, domain.MethodFreeCSV, res.Method)

	res = Parse([]byte("not a workbook"), "statement.xlsx")
	assert.Equal(t, domain.MethodFreeExcel, res.Method)
	assert.False(t, res.Success)
}
