// Package analytics computes the derived figures the dashboard presents:
// forward scenario projections, trailing growth momentum, and the dataset
// summary. Everything here is closed-form arithmetic over the loaded bundle.
package analytics

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/mountainpath/nifty-dashboard/internal/config"
	"github.com/mountainpath/nifty-dashboard/internal/dataset"
	"github.com/mountainpath/nifty-dashboard/pkg/constants"
	"github.com/mountainpath/nifty-dashboard/pkg/fiscal"
	"github.com/mountainpath/nifty-dashboard/pkg/mathutil"
)

// YearProjection is one projected fiscal year under a scenario's assumptions.
// Level is the raw projected index value; display scaling is left to callers.
type YearProjection struct {
	Year  string  `json:"year"`
	EPS   float64 `json:"eps"`
	PE    float64 `json:"pe"`
	Level float64 `json:"level"`
}

// ScenarioProjection pairs a scenario with its projected path and the
// figures implied by its assumptions.
type ScenarioProjection struct {
	Scenario      dataset.Scenario                       `json:"scenario"`
	Years         [constants.ForwardYears]YearProjection `json:"years"`
	EarningsCAGR  float64                                `json:"earnings_cagr"`
	PriceReturnPA float64                                `json:"price_return_pa"`
}

// Project compounds EPS forward from baseEPS and applies each year's multiple:
// eps_t = eps_{t-1} * (1 + growth_t/100), level_t = eps_t * pe_t.
func Project(baseEPS float64, growth, pe [constants.ForwardYears]float64) ([constants.ForwardYears]YearProjection, error) {
	var years [constants.ForwardYears]YearProjection
	if baseEPS <= 0 {
		return years, fmt.Errorf("base EPS must be positive, got %.2f", baseEPS)
	}

	labels := fiscal.ForwardShortLabels(constants.BaseFiscalYear, constants.ForwardYears)
	eps := baseEPS
	for i := 0; i < constants.ForwardYears; i++ {
		if pe[i] <= 0 {
			return [constants.ForwardYears]YearProjection{}, fmt.Errorf("%s P/E must be positive, got %.2f", labels[i], pe[i])
		}
		eps *= 1 + growth[i]/100
		level := eps * pe[i]
		if !mathutil.IsFinite(eps) || !mathutil.IsFinite(level) {
			return [constants.ForwardYears]YearProjection{}, fmt.Errorf("%s projection is not finite", labels[i])
		}
		years[i] = YearProjection{Year: labels[i], EPS: eps, PE: pe[i], Level: level}
	}
	return years, nil
}

// ProjectScenarios evaluates every scenario against the market anchors. A
// scenario whose assumptions cannot be projected contributes zeroed levels
// and a warning rather than failing the whole set.
func ProjectScenarios(logger *zap.Logger, market config.MarketConfig, scenarios []dataset.Scenario) []ScenarioProjection {
	if logger == nil {
		logger = zap.NewNop()
	}

	projections := make([]ScenarioProjection, 0, len(scenarios))
	for _, scenario := range scenarios {
		projection := ScenarioProjection{Scenario: scenario}
		years, err := Project(market.BaseEPS, scenario.EarningsGrowth, scenario.PERatio)
		if err != nil {
			logger.Warn("scenario projection failed",
				zap.String("op", "analytics.ProjectScenarios"),
				zap.String("scenario", scenario.Name),
				zap.Error(err),
			)
			for i, label := range fiscal.ForwardShortLabels(constants.BaseFiscalYear, constants.ForwardYears) {
				projection.Years[i] = YearProjection{Year: label}
			}
			projections = append(projections, projection)
			continue
		}
		projection.Years = years
		projection.EarningsCAGR = impliedEarningsCAGR(scenario.EarningsGrowth)
		projection.PriceReturnPA = impliedAnnualReturn(years[constants.ForwardYears-1].Level, market.NiftyLevel)
		projections = append(projections, projection)
	}
	return projections
}

// ExpectedLevel is the probability-weighted index level for one forward year.
type ExpectedLevel struct {
	Year  string  `json:"year"`
	Level float64 `json:"level"`
}

// ExpectedLevels collapses the scenario paths into one expected path by
// weighting each year's level with its scenario probability.
func ExpectedLevels(projections []ScenarioProjection) []ExpectedLevel {
	if len(projections) == 0 {
		return nil
	}
	levels := make([]ExpectedLevel, constants.ForwardYears)
	for i := range levels {
		levels[i].Year = projections[0].Years[i].Year
	}
	for _, projection := range projections {
		for i, year := range projection.Years {
			levels[i].Level += projection.Scenario.Probability * year.Level
		}
	}
	return levels
}

// impliedEarningsCAGR annualizes a scenario's growth assumptions.
func impliedEarningsCAGR(growth [constants.ForwardYears]float64) float64 {
	compounded := 1.0
	for _, g := range growth {
		compounded *= 1 + g/100
	}
	if compounded <= 0 {
		return 0
	}
	return (math.Pow(compounded, 1.0/float64(constants.ForwardYears)) - 1) * 100
}

// impliedAnnualReturn annualizes the move from the current index level to the
// terminal projected level.
func impliedAnnualReturn(terminalLevel, currentLevel float64) float64 {
	if terminalLevel <= 0 || currentLevel <= 0 {
		return 0
	}
	return (math.Pow(terminalLevel/currentLevel, 1.0/float64(constants.ForwardYears)) - 1) * 100
}
