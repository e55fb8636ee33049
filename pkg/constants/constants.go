// Package constants provides shared constants for the nifty-dashboard application.
package constants

// DateLayout is the format used for the data-updated stamp and downgrade dates.
const DateLayout = "Jan 2, 2006"

// Market reference defaults. These seed the configuration and can be
// overridden in the config file.
const (
	// DefaultBaseEPS is the Nifty 50 consolidated EPS for FY2024, the base
	// all forward scenario projections compound from.
	DefaultBaseEPS = 2150.0

	// DefaultNiftyLevel is the index level the analysis was prepared against.
	DefaultNiftyLevel = 23500.0

	// DefaultCurrentPE is the trailing P/E at the analysis date.
	DefaultCurrentPE = 25.0

	// DefaultFairPELow and DefaultFairPEHigh bound the fair-value P/E band.
	DefaultFairPELow  = 10.0
	DefaultFairPEHigh = 12.0
)

// Analysis window constants.
const (
	// ForwardYears is the number of fiscal years each scenario projects.
	ForwardYears = 3

	// BaseFiscalYear is the fiscal year the base EPS belongs to.
	BaseFiscalYear = 2024

	// AnalysisPeriod labels the trailing window the historical tables cover.
	AnalysisPeriod = "FY2021-FY2025"

	// CurrentQuarter is the most recent quarter with reported figures.
	CurrentQuarter = "Q3FY25"

	// DataUpdated is the stamp carried on every dataset.
	DataUpdated = "Feb 21, 2025"
)

// Display constants.
const (
	// LevelDisplayScale divides projected index levels for compact display
	// (56706.25 renders as 56.7K).
	LevelDisplayScale = 1000.0

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Dataset name constants, used by the CLI, the export routes, and validation.
const (
	DatasetFiveYear   = "five-year"
	DatasetQuarterly  = "quarterly"
	DatasetSectors    = "sectors"
	DatasetDowngrades = "downgrades"
	DatasetAll        = "all"
)

// Export filename constants.
const (
	ExportFileFiveYear   = "5_year_nifty_data.csv"
	ExportFileQuarterly  = "quarterly_fy25_data.csv"
	ExportFileSectors    = "sector_analysis.csv"
	ExportFileDowngrades = "earnings_downgrades.csv"
	ExportFileWorkbook   = "nifty_analysis.xlsx"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the dashboard
	DefaultServerAddress = ":8080"
)

// Threshold defaults for the key-metrics warning flags.
const (
	// DefaultRevenueWarning flags revenue growth below this percentage.
	DefaultRevenueWarning = 5.0

	// DefaultProfitWarning flags profit growth below this percentage.
	DefaultProfitWarning = 0.0

	// DefaultDivergenceAlert flags profit/revenue divergence above this percentage.
	DefaultDivergenceAlert = 40.0
)

// Validation constants
const (
	// ProbabilityTolerance is the tolerance for the scenario probability sum.
	ProbabilityTolerance = 1e-9

	// WeightTolerance is the tolerance for the sector weight sum.
	WeightTolerance = 0.01

	// GrowthBoundPercent bounds plausible growth-rate magnitudes in the tables.
	GrowthBoundPercent = 100.0
)
