package server

import (
	"fmt"

	"github.com/mountainpath/nifty-dashboard/internal/dataset"
	"github.com/mountainpath/nifty-dashboard/pkg/constants"
	"github.com/mountainpath/nifty-dashboard/pkg/format"
)

// pageData feeds the dashboard template. All figures are preformatted so the
// template stays free of formatting logic.
type pageData struct {
	Brand       string
	Author      string
	Experience  string
	Location    string
	Year        int
	Version     string
	DataUpdated string
	Quarter     string
	Degraded    bool
	Warnings    []string
	Cards       []metricCard
	Tables      []dataset.Table
	Scenarios   []scenarioView
	Expected    []levelView
	SummaryLine string
	Sources     []dataset.Source
}

type metricCard struct {
	Label string
	Value string
	Note  string
	Tone  string
}

type scenarioView struct {
	Label         string
	Description   string
	Color         string
	Years         []yearView
	EarningsCAGR  string
	PriceReturnPA string
}

type yearView struct {
	Year  string
	EPS   string
	Level string
}

type levelView struct {
	Year  string
	Level string
}

func (s *Server) buildPageData() pageData {
	branding := s.cfg.Branding
	data := pageData{
		Brand:      branding.Brand,
		Author:     branding.Author,
		Experience: branding.Experience,
		Location:   branding.Location,
		Year:       branding.Year,
		Version:    s.version,
		Quarter:    constants.CurrentQuarter,
		Degraded:   s.loadErr != nil,
	}
	if s.loadErr != nil {
		return data
	}

	data.DataUpdated = s.bundle.DataUpdated
	data.Tables = s.bundle.AllTables()
	data.Sources = s.bundle.Sources
	data.Cards = s.buildCards()
	data.Warnings = s.buildWarnings()
	data.SummaryLine = fmt.Sprintf(
		"%d fiscal periods, %d quarters, and %d sectors analyzed across %d scenarios. Strongest sector: %s. Weakest sector: %s.",
		s.summary.PeriodsAnalyzed, s.summary.QuartersAnalyzed, s.summary.SectorsAnalyzed,
		s.summary.ScenariosModeled, s.summary.BestSector, s.summary.WorstSector,
	)

	for _, projection := range s.projections {
		view := scenarioView{
			Label:         projection.Scenario.Label(),
			Description:   projection.Scenario.Description,
			Color:         projection.Scenario.Color,
			EarningsCAGR:  format.Percent(projection.EarningsCAGR),
			PriceReturnPA: format.Percent(projection.PriceReturnPA),
		}
		for _, year := range projection.Years {
			view.Years = append(view.Years, yearView{
				Year:  year.Year + "E",
				EPS:   format.Rupees(year.EPS),
				Level: format.Grouped(year.Level),
			})
		}
		data.Scenarios = append(data.Scenarios, view)
	}
	for _, level := range s.expected {
		data.Expected = append(data.Expected, levelView{
			Year:  level.Year + "E",
			Level: format.Grouped(level.Level),
		})
	}

	return data
}

func (s *Server) buildCards() []metricCard {
	m := s.metrics
	return []metricCard{
		{
			Label: "Revenue CAGR",
			Value: format.Percent(m.RevenueCAGR),
			Note:  constants.AnalysisPeriod + " growth momentum",
			Tone:  tone(m.RevenueCAGR),
		},
		{
			Label: "PAT CAGR",
			Value: format.Percent(m.PATCAGR),
			Note:  constants.AnalysisPeriod + " growth momentum",
			Tone:  tone(m.PATCAGR),
		},
		{
			Label: "Revenue Trend",
			Value: m.RevenueTrend,
			Note:  fmt.Sprintf("%s revenue growth %s", constants.CurrentQuarter, format.Percent(m.CurrentRevGrowth)),
			Tone:  warnTone(m.RevenueWarning),
		},
		{
			Label: "Profit Trend",
			Value: m.ProfitTrend,
			Note:  fmt.Sprintf("%s PAT growth %s", constants.CurrentQuarter, format.Percent(m.CurrentPATGrowth)),
			Tone:  warnTone(m.ProfitWarning || m.DivergenceAlert),
		},
		{
			Label: "Nifty Level",
			Value: format.Grouped(m.NiftyLevel),
			Note:  "at " + format.Multiple(m.CurrentPE) + " trailing P/E",
		},
		{
			Label: "Fair Value Gap",
			Value: fmt.Sprintf("%s to %s", format.SignedPercent(m.ValuationGapLow), format.SignedPercent(m.ValuationGapHigh)),
			Note:  fmt.Sprintf("against a %.0fx-%.0fx fair P/E band", m.FairPELow, m.FairPEHigh),
			Tone:  tone(m.ValuationGapHigh),
		},
	}
}

func (s *Server) buildWarnings() []string {
	m := s.metrics
	t := s.cfg.Thresholds
	var warnings []string

	if m.RevenueWarning {
		warnings = append(warnings, fmt.Sprintf(
			"%s revenue growth %s is below the %.1f%% warning threshold.",
			constants.CurrentQuarter, format.Percent(m.CurrentRevGrowth), t.RevenueWarning))
	}
	if m.ProfitWarning {
		warnings = append(warnings, fmt.Sprintf(
			"%s PAT growth %s is below the %.1f%% warning threshold.",
			constants.CurrentQuarter, format.Percent(m.CurrentPATGrowth), t.ProfitWarning))
	}
	if m.DivergenceAlert {
		warnings = append(warnings, fmt.Sprintf(
			"PAT growth diverges from revenue growth by %s; profit gains may not be backed by sales.",
			format.SignedPercent(m.Divergence)))
	}

	return warnings
}

func tone(value float64) string {
	switch {
	case value > 0:
		return "positive"
	case value < 0:
		return "negative"
	default:
		return ""
	}
}

func warnTone(flagged bool) string {
	if flagged {
		return "caution"
	}
	return ""
}
