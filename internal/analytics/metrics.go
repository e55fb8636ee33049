package analytics

import (
	"math"

	"go.uber.org/zap"

	"github.com/mountainpath/nifty-dashboard/internal/config"
	"github.com/mountainpath/nifty-dashboard/internal/dataset"
	"github.com/mountainpath/nifty-dashboard/pkg/mathutil"
)

// Trend labels reported by the key metrics.
const (
	TrendDecelerating  = "Decelerating"
	TrendStable        = "Stable"
	TrendMarginSupport = "Margin Support"
	TrendBalanced      = "Balanced"
)

// revenueTrendCutoff is the quarterly revenue growth (percent) below which
// the revenue trend reads Decelerating.
const revenueTrendCutoff = 8.0

// marginSupportCutoff is the divergence (percent) above which the profit
// trend reads Margin Support.
const marginSupportCutoff = 5.0

// CAGR returns the compound annual growth rate between two values as a
// percentage. Non-positive endpoints or periods yield 0 rather than a
// complex or infinite result.
func CAGR(start, end float64, periods int) float64 {
	if start <= 0 || end <= 0 || periods <= 0 {
		return 0
	}
	return (math.Pow(end/start, 1.0/float64(periods)) - 1) * 100
}

// KeyMetrics holds the headline figures across the top of the dashboard.
// The CAGR fields measure momentum of the growth rates themselves: how the
// reported year-over-year growth compounded from the first to the last
// fiscal year of the window.
type KeyMetrics struct {
	RevenueCAGR      float64 `json:"revenue_cagr"`
	PATCAGR          float64 `json:"pat_cagr"`
	Divergence       float64 `json:"divergence"`
	CurrentRevGrowth float64 `json:"current_revenue_growth"`
	CurrentPATGrowth float64 `json:"current_pat_growth"`
	RevenueTrend     string  `json:"revenue_trend"`
	ProfitTrend      string  `json:"profit_trend"`
	NiftyLevel       float64 `json:"nifty_level"`
	CurrentPE        float64 `json:"current_pe"`
	FairPELow        float64 `json:"fair_pe_low"`
	FairPEHigh       float64 `json:"fair_pe_high"`
	ValuationGapLow  float64 `json:"valuation_gap_low"`
	ValuationGapHigh float64 `json:"valuation_gap_high"`
	RevenueWarning   bool    `json:"revenue_warning"`
	ProfitWarning    bool    `json:"profit_warning"`
	DivergenceAlert  bool    `json:"divergence_alert"`
}

// ComputeKeyMetrics derives the headline momentum and valuation figures from
// the five-year and quarterly tables.
func ComputeKeyMetrics(logger *zap.Logger, bundle *dataset.Bundle, market config.MarketConfig, thresholds config.ThresholdsConfig) KeyMetrics {
	if logger == nil {
		logger = zap.NewNop()
	}

	var metrics KeyMetrics
	if len(bundle.FiveYear) == 0 || len(bundle.Quarterly) == 0 {
		logger.Warn("key metrics unavailable",
			zap.String("op", "analytics.ComputeKeyMetrics"),
			zap.Int("fiveYearRows", len(bundle.FiveYear)),
			zap.Int("quarterlyRows", len(bundle.Quarterly)),
		)
		return metrics
	}

	first := bundle.FiveYear[0]
	last := bundle.FiveYear[len(bundle.FiveYear)-1]
	periods := len(bundle.FiveYear) - 1
	metrics.RevenueCAGR = CAGR(first.RevenueGrowth, last.RevenueGrowth, periods)
	metrics.PATCAGR = CAGR(first.PATGrowth, last.PATGrowth, periods)
	metrics.Divergence = metrics.PATCAGR - metrics.RevenueCAGR

	current := bundle.Quarterly[len(bundle.Quarterly)-1]
	metrics.CurrentRevGrowth = current.RevenueGrowth
	metrics.CurrentPATGrowth = current.PATGrowth

	metrics.RevenueTrend = TrendStable
	if metrics.CurrentRevGrowth < revenueTrendCutoff {
		metrics.RevenueTrend = TrendDecelerating
	}
	metrics.ProfitTrend = TrendBalanced
	if metrics.Divergence > marginSupportCutoff {
		metrics.ProfitTrend = TrendMarginSupport
	}

	metrics.NiftyLevel = market.NiftyLevel
	metrics.CurrentPE = market.CurrentPE
	metrics.FairPELow = market.FairPELow
	metrics.FairPEHigh = market.FairPEHigh
	if market.CurrentPE > 0 {
		metrics.ValuationGapLow = mathutil.CalculatePercentage(market.FairPELow-market.CurrentPE, market.CurrentPE)
		metrics.ValuationGapHigh = mathutil.CalculatePercentage(market.FairPEHigh-market.CurrentPE, market.CurrentPE)
	}

	metrics.RevenueWarning = metrics.CurrentRevGrowth < thresholds.RevenueWarning
	metrics.ProfitWarning = metrics.CurrentPATGrowth < thresholds.ProfitWarning
	metrics.DivergenceAlert = metrics.Divergence > thresholds.DivergenceAlert

	return metrics
}
