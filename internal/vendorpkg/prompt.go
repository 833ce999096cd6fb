package vendor

// BuildFinancialPrompt returns the extraction prompt shared by every paid
// adapter. The model is instructed to emit JSON matching the canonical
// multi-period schema directly.
func BuildFinancialPrompt() string {
	return `You are a financial document extraction assistant. Analyze the provided financial document and extract ALL data into the following JSON structure.

IMPORTANT INSTRUCTIONS:
- The document may cover multiple periods (years, quarters, or date ranges). List every period label you find in "periods" and key every per-period object by those exact labels.
- Numbers must be plain JSON numbers: no currency symbols, no thousands separators.
- Parentheses around a number mean it is negative.
- A "K" suffix multiplies by 1,000 and an "M" suffix by 1,000,000; expand them.
- Use null for any field not present in the document. Never guess values.
- Every period listed in "periods" must appear as a key in at least one statement object.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation, just the raw JSON object.

The JSON object must follow this schema:
{
  "companyName": "",
  "currency": "",
  "periods": ["2022", "2023"],
  "profitLoss": {
    "<period>": {
      "revenue": null, "cogs": null, "grossProfit": null,
      "operatingExpenses": null, "operatingIncome": null,
      "depreciation": null, "amortization": null,
      "interestExpense": null, "taxes": null, "netIncome": null
    }
  },
  "assets": {
    "<period>": {
      "cash": null, "accountsReceivable": null, "inventory": null,
      "currentAssets": null, "fixedAssets": null,
      "intangibleAssets": null, "totalAssets": null
    }
  },
  "liabilities": {
    "<period>": {
      "accountsPayable": null, "shortTermDebt": null,
      "currentLiabilities": null, "longTermDebt": null,
      "totalLiabilities": null
    }
  },
  "equity": {
    "<period>": {
      "ownerEquity": null, "retainedEarnings": null, "totalEquity": null
    }
  },
  "ownerCompensation": {
    "<period>": {
      "salary": null, "benefits": null, "distributions": null,
      "totalCompensation": null
    }
  },
  "cashFlow": {
    "<period>": {
      "operatingCashFlow": null, "investingCashFlow": null,
      "financingCashFlow": null, "netCashChange": null
    }
  }
}`
}
