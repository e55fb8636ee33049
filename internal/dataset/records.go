// Package dataset holds the hard-coded market statistics the dashboard
// presents: the trailing five-year table, the FY25 quarterly table, the
// sector breakdown, the earnings-downgrade trajectory, the forward valuation
// scenarios, and the source registry. Figures are compiled from exchange
// filings and broker research as of the data-updated stamp and change only
// with a release.
package dataset

// FiveYearRow is one fiscal year of trailing Nifty 50 aggregates. Growth
// figures are year over year; margins are absolute percentages.
type FiveYearRow struct {
	FiscalYear    string  `json:"fiscal_year" validate:"required"`
	RevenueGrowth float64 `json:"revenue_growth" validate:"gt=-100,lt=100"`
	EBITDAGrowth  float64 `json:"ebitda_growth" validate:"gt=-100,lt=100"`
	PATGrowth     float64 `json:"pat_growth" validate:"gt=-100,lt=100"`
	EBITDAMargin  float64 `json:"ebitda_margin" validate:"gt=0,lt=100"`
	PATMargin     float64 `json:"pat_margin" validate:"gt=0,lt=100"`
}

// QuarterRow is one reported quarter of FY2025 growth figures.
type QuarterRow struct {
	Quarter       string  `json:"quarter" validate:"required"`
	RevenueGrowth float64 `json:"revenue_growth" validate:"gt=-100,lt=100"`
	EBITDAGrowth  float64 `json:"ebitda_growth" validate:"gt=-100,lt=100"`
	PATGrowth     float64 `json:"pat_growth" validate:"gt=-100,lt=100"`
}

// Status is the qualitative health tag attached to a sector.
type Status string

// Known sector status tags.
const (
	StatusSlowing     Status = "🟡 SLOWING"
	StatusCrisis      Status = "🔴 CRISIS"
	StatusStabilizing Status = "🟢 STABILIZING"
	StatusStrong      Status = "🟢 STRONG"
	StatusMixed       Status = "⚠️ MIXED"
	StatusWeakening   Status = "⚠️ WEAKENING"
	StatusDeclining   Status = "⚠️ DECLINING"
	StatusExceptional Status = "🟢 EXCEPTIONAL"
)

// SectorRow is one Nifty sector's FY2025 performance. Weight is the sector's
// share of the index; weights across all rows sum to 100.
type SectorRow struct {
	Name          string  `json:"name" validate:"required"`
	RevenueGrowth float64 `json:"revenue_growth" validate:"gt=-100,lt=100"`
	ProfitGrowth  float64 `json:"profit_growth" validate:"gt=-100,lt=100"`
	Weight        float64 `json:"weight" validate:"gt=0,lte=100"`
	Status        Status  `json:"status" validate:"required"`
}

// DowngradeRow is one point on the FY25 consensus profit-growth estimate
// trajectory. Period is the month label derived from Date.
type DowngradeRow struct {
	Date     string  `json:"date" validate:"required"`
	Period   string  `json:"period" validate:"required"`
	Estimate float64 `json:"estimate" validate:"gt=-100,lt=100"`
}

// Canonical column names, shared by the CSV exports, the workbook sheets,
// and the API dataset payloads.
var (
	FiveYearColumns = []string{
		"Fiscal Year", "Revenue Growth (%)", "EBITDA Growth (%)",
		"PAT Growth (%)", "EBITDA Margin (%)", "PAT Margin (%)",
	}
	QuarterlyColumns = []string{
		"Quarter", "Revenue Growth (%)", "EBITDA Growth (%)", "PAT Growth (%)",
	}
	SectorColumns = []string{
		"Sector", "Revenue Growth FY25 (%)", "Profit Growth FY25 (%)",
		"Weight in Nifty (%)", "Status",
	}
	DowngradeColumns = []string{
		"Date", "Period", "FY25 Profit Growth (%)",
	}
)

var fiveYearRows = []FiveYearRow{
	{FiscalYear: "FY2021", RevenueGrowth: 10.5, EBITDAGrowth: 11.2, PATGrowth: 8.3, EBITDAMargin: 32.1, PATMargin: 9.8},
	{FiscalYear: "FY2022", RevenueGrowth: 15.4, EBITDAGrowth: 22.8, PATGrowth: 25.7, EBITDAMargin: 33.5, PATMargin: 10.4},
	{FiscalYear: "FY2023", RevenueGrowth: 13.8, EBITDAGrowth: 18.5, PATGrowth: 22.1, EBITDAMargin: 33.2, PATMargin: 10.6},
	{FiscalYear: "FY2024", RevenueGrowth: 10.7, EBITDAGrowth: 14.3, PATGrowth: 16.8, EBITDAMargin: 33.0, PATMargin: 10.5},
	{FiscalYear: "FY2025 YTD", RevenueGrowth: 6.9, EBITDAGrowth: 2.6, PATGrowth: 4.6, EBITDAMargin: 33.1, PATMargin: 10.7},
}

var quarterlyRows = []QuarterRow{
	{Quarter: "Q1FY25", RevenueGrowth: 9.6, EBITDAGrowth: 9.4, PATGrowth: 0.8},
	{Quarter: "Q2FY25", RevenueGrowth: 6.6, EBITDAGrowth: 1.3, PATGrowth: -1.0},
	{Quarter: "Q3FY25", RevenueGrowth: 4.5, EBITDAGrowth: 6.9, PATGrowth: 9.5},
}

var sectorRows = []SectorRow{
	{Name: "Financials", RevenueGrowth: 12.3, ProfitGrowth: 17.3, Weight: 32, Status: StatusSlowing},
	{Name: "Energy", RevenueGrowth: 1.4, ProfitGrowth: -35.4, Weight: 27, Status: StatusCrisis},
	{Name: "IT", RevenueGrowth: 7.0, ProfitGrowth: 8.7, Weight: 8, Status: StatusStabilizing},
	{Name: "Industrials", RevenueGrowth: 10.6, ProfitGrowth: 25.7, Weight: 5, Status: StatusStrong},
	{Name: "Materials", RevenueGrowth: 1.7, ProfitGrowth: -1.4, Weight: 10, Status: StatusMixed},
	{Name: "Consumer Disc.", RevenueGrowth: 10.5, ProfitGrowth: 6.6, Weight: 8, Status: StatusWeakening},
	{Name: "Healthcare", RevenueGrowth: 7.6, ProfitGrowth: 32.9, Weight: 3, Status: StatusStrong},
	{Name: "Consumer Staples", RevenueGrowth: 10.6, ProfitGrowth: 6.1, Weight: 3, Status: StatusMixed},
	{Name: "Utilities", RevenueGrowth: 7.5, ProfitGrowth: -6.9, Weight: 2, Status: StatusDeclining},
	{Name: "Telecom", RevenueGrowth: 8.0, ProfitGrowth: 95.9, Weight: 2, Status: StatusExceptional},
}

var downgradeRows = []DowngradeRow{
	{Date: "Sep 30, 2024", Period: "Sep-24", Estimate: 9.8},
	{Date: "Oct 31, 2024", Period: "Oct-24", Estimate: 8.2},
	{Date: "Nov 30, 2024", Period: "Nov-24", Estimate: 5.8},
	{Date: "Dec 31, 2024", Period: "Dec-24", Estimate: 3.2},
	{Date: "Jan 31, 2025", Period: "Jan-25", Estimate: 4.9},
	{Date: "Feb 21, 2025", Period: "Feb-25", Estimate: 3.2},
}

// FiveYear returns the trailing five-year table. Callers receive a copy.
func FiveYear() []FiveYearRow {
	return append([]FiveYearRow(nil), fiveYearRows...)
}

// Quarterly returns the FY2025 quarterly table. Callers receive a copy.
func Quarterly() []QuarterRow {
	return append([]QuarterRow(nil), quarterlyRows...)
}

// Sectors returns the sector breakdown. Callers receive a copy.
func Sectors() []SectorRow {
	return append([]SectorRow(nil), sectorRows...)
}

// Downgrades returns the estimate-revision trajectory. Callers receive a copy.
func Downgrades() []DowngradeRow {
	return append([]DowngradeRow(nil), downgradeRows...)
}
