package domain

// ProfitLoss holds income-statement fields for a single period. All fields
// are pointers so a missing value is distinguishable from an extracted zero.
type ProfitLoss struct {
	Revenue           *float64 `json:"revenue,omitempty"`
	COGS              *float64 `json:"cogs,omitempty"`
	GrossProfit       *float64 `json:"grossProfit,omitempty"`
	OperatingExpenses *float64 `json:"operatingExpenses,omitempty"`
	OperatingIncome   *float64 `json:"operatingIncome,omitempty"`
	Depreciation      *float64 `json:"depreciation,omitempty"`
	Amortization      *float64 `json:"amortization,omitempty"`
	InterestExpense   *float64 `json:"interestExpense,omitempty"`
	Taxes             *float64 `json:"taxes,omitempty"`
	NetIncome         *float64 `json:"netIncome,omitempty"`
}

// Assets holds balance-sheet asset fields for a single period.
type Assets struct {
	Cash               *float64 `json:"cash,omitempty"`
	AccountsReceivable *float64 `json:"accountsReceivable,omitempty"`
	Inventory          *float64 `json:"inventory,omitempty"`
	CurrentAssets      *float64 `json:"currentAssets,omitempty"`
	FixedAssets        *float64 `json:"fixedAssets,omitempty"`
	IntangibleAssets   *float64 `json:"intangibleAssets,omitempty"`
	TotalAssets        *float64 `json:"totalAssets,omitempty"`
}

// Liabilities holds balance-sheet liability fields for a single period.
type Liabilities struct {
	AccountsPayable    *float64 `json:"accountsPayable,omitempty"`
	ShortTermDebt      *float64 `json:"shortTermDebt,omitempty"`
	CurrentLiabilities *float64 `json:"currentLiabilities,omitempty"`
	LongTermDebt       *float64 `json:"longTermDebt,omitempty"`
	TotalLiabilities   *float64 `json:"totalLiabilities,omitempty"`
}

// Equity holds balance-sheet equity fields for a single period.
type Equity struct {
	OwnerEquity      *float64 `json:"ownerEquity,omitempty"`
	RetainedEarnings *float64 `json:"retainedEarnings,omitempty"`
	TotalEquity      *float64 `json:"totalEquity,omitempty"`
}

// OwnerComp holds owner-compensation fields for a single period.
type OwnerComp struct {
	Salary            *float64 `json:"salary,omitempty"`
	Benefits          *float64 `json:"benefits,omitempty"`
	Distributions     *float64 `json:"distributions,omitempty"`
	TotalCompensation *float64 `json:"totalCompensation,omitempty"`
}

// CashFlow holds cash-flow-statement fields for a single period.
type CashFlow struct {
	OperatingCashFlow *float64 `json:"operatingCashFlow,omitempty"`
	InvestingCashFlow *float64 `json:"investingCashFlow,omitempty"`
	FinancingCashFlow *float64 `json:"financingCashFlow,omitempty"`
	NetCashChange     *float64 `json:"netCashChange,omitempty"`
}

// CanonicalFinancialData is the normalized multi-period schema every
// extraction strategy populates. Per-period maps are keyed by entries of
// Periods; an instance lives for a single request and is never shared.
type CanonicalFinancialData struct {
	CompanyName string                  `json:"companyName,omitempty"`
	Currency    string                  `json:"currency,omitempty"`
	Periods     []string                `json:"periods"`
	ProfitLoss  map[string]*ProfitLoss  `json:"profitLoss,omitempty"`
	Assets      map[string]*Assets      `json:"assets,omitempty"`
	Liabilities map[string]*Liabilities `json:"liabilities,omitempty"`
	Equity      map[string]*Equity      `json:"equity,omitempty"`
	OwnerComp   map[string]*OwnerComp   `json:"ownerCompensation,omitempty"`
	CashFlow    map[string]*CashFlow    `json:"cashFlow,omitempty"`
}

// NewCanonicalFinancialData returns an empty schema with all period maps
// allocated.
func NewCanonicalFinancialData() *CanonicalFinancialData {
	return &CanonicalFinancialData{
		ProfitLoss:  make(map[string]*ProfitLoss),
		Assets:      make(map[string]*Assets),
		Liabilities: make(map[string]*Liabilities),
		Equity:      make(map[string]*Equity),
		OwnerComp:   make(map[string]*OwnerComp),
		CashFlow:    make(map[string]*CashFlow),
	}
}

// AddPeriod appends a period label if not already present.
func (d *CanonicalFinancialData) AddPeriod(label string) {
	for _, p := range d.Periods {
		if p == label {
			return
		}
	}
	d.Periods = append(d.Periods, label)
}

// HasPeriod reports whether the label is a registered period.
func (d *CanonicalFinancialData) HasPeriod(label string) bool {
	for _, p := range d.Periods {
		if p == label {
			return true
		}
	}
	return false
}

// PL returns the ProfitLoss record for a period, allocating it on first use
// and registering the period.
func (d *CanonicalFinancialData) PL(period string) *ProfitLoss {
	d.AddPeriod(period)
	if d.ProfitLoss[period] == nil {
		d.ProfitLoss[period] = &ProfitLoss{}
	}
	return d.ProfitLoss[period]
}

// AS returns the Assets record for a period, allocating on first use.
func (d *CanonicalFinancialData) AS(period string) *Assets {
	d.AddPeriod(period)
	if d.Assets[period] == nil {
		d.Assets[period] = &Assets{}
	}
	return d.Assets[period]
}

// LI returns the Liabilities record for a period, allocating on first use.
func (d *CanonicalFinancialData) LI(period string) *Liabilities {
	d.AddPeriod(period)
	if d.Liabilities[period] == nil {
		d.Liabilities[period] = &Liabilities{}
	}
	return d.Liabilities[period]
}

// EQ returns the Equity record for a period, allocating on first use.
func (d *CanonicalFinancialData) EQ(period string) *Equity {
	d.AddPeriod(period)
	if d.Equity[period] == nil {
		d.Equity[period] = &Equity{}
	}
	return d.Equity[period]
}

// OC returns the OwnerComp record for a period, allocating on first use.
func (d *CanonicalFinancialData) OC(period string) *OwnerComp {
	d.AddPeriod(period)
	if d.OwnerComp[period] == nil {
		d.OwnerComp[period] = &OwnerComp{}
	}
	return d.OwnerComp[period]
}

// CF returns the CashFlow record for a period, allocating on first use.
func (d *CanonicalFinancialData) CF(period string) *CashFlow {
	d.AddPeriod(period)
	if d.CashFlow[period] == nil {
		d.CashFlow[period] = &CashFlow{}
	}
	return d.CashFlow[period]
}

// ExtractionResult is the outcome of a single extraction attempt.
type ExtractionResult struct {
	Success          bool                    `json:"success"`
	Data             *CanonicalFinancialData `json:"data,omitempty"`
	Confidence       float64                 `json:"confidence"`
	CostUSD          float64                 `json:"cost"`
	ProcessingTimeMs int64                   `json:"processingTimeMs"`
	Method           ExtractionMethod        `json:"method"`
	Error            string                  `json:"error,omitempty"`
}

// ValidationResult is a single rule outcome produced by the validator.
type ValidationResult struct {
	Field    string             `json:"field"`
	Rule     string             `json:"rule"`
	Passed   bool               `json:"passed"`
	Expected *float64           `json:"expected,omitempty"`
	Actual   *float64           `json:"actual,omitempty"`
	Message  string             `json:"message"`
	Severity ValidationSeverity `json:"severity"`
}

// Calculation records one derived field and the formula that produced it.
type Calculation struct {
	Field   string  `json:"field"`
	Period  string  `json:"period"`
	Formula string  `json:"formula"`
	Value   float64 `json:"value"`
}

// LogoCandidate is a single logo found by one strategy.
type LogoCandidate struct {
	URL              string       `json:"url"`
	LogoURL          *string      `json:"logoUrl"`
	Strategy         LogoStrategy `json:"strategy"`
	Confidence       float64      `json:"confidence"`
	Quality          *LogoQuality `json:"quality,omitempty"`
	CostUSD          float64      `json:"cost"`
	ExtractionTimeMs int64        `json:"extractionTimeMs"`
	Error            string       `json:"error,omitempty"`
}

// LogoQuality describes format/transparency hints for a logo candidate.
type LogoQuality struct {
	Format      string `json:"format,omitempty"`
	Transparent bool   `json:"transparent"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// LogoExtractionResult aggregates all strategy attempts for one URL.
type LogoExtractionResult struct {
	URL              string          `json:"url"`
	Best             *LogoCandidate  `json:"bestResult"`
	AllResults       []LogoCandidate `json:"allResults"`
	AlternativeLogos []string        `json:"alternativeLogos,omitempty"`
	Stats            LogoStats       `json:"stats"`
}

// LogoStats summarizes cost/time/confidence over attempted strategies.
type LogoStats struct {
	TotalTimeMs   int64   `json:"totalTimeMs"`
	TotalCostUSD  float64 `json:"totalCost"`
	AvgConfidence float64 `json:"avgConfidence"`
	SuccessRate   float64 `json:"successRate"`
	Attempted     int     `json:"attempted"`
}

// BrandColors is the palette extracted from a rendered page.
type BrandColors struct {
	Primary   string   `json:"primary"`
	Secondary string   `json:"secondary"`
	Palette   []string `json:"palette"`
}

// BrandExtraction is the full brand payload for one URL.
type BrandExtraction struct {
	Logo       *string     `json:"logo"`
	LogoRaw    *string     `json:"logoRaw"`
	Colors     BrandColors `json:"colors"`
	About      *string     `json:"about"`
	Disclaimer *string     `json:"disclaimer"`
}
