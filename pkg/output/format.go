// Package output provides utilities for formatting and displaying dashboard results.
package output

import (
	"fmt"
	"strings"

	"github.com/mountainpath/nifty-dashboard/internal/analytics"
	"github.com/mountainpath/nifty-dashboard/internal/dataset"
	"github.com/mountainpath/nifty-dashboard/pkg/export"
	"github.com/mountainpath/nifty-dashboard/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable view of
// the given tables. Metrics and projections are printed after the tables and
// skipped when nil.
func PrettyFormat(tables []dataset.Table, metrics *analytics.KeyMetrics, projections []analytics.ScenarioProjection) {
	for _, table := range tables {
		prettyTable(table)
		fmt.Printf("\n")
	}
	if metrics != nil {
		prettyMetrics(*metrics)
		fmt.Printf("\n")
	}
	if len(projections) > 0 {
		prettyScenarios(projections)
	}
}

func prettyTable(table dataset.Table) {
	widths := make([]int, len(table.Columns))
	for i, column := range table.Columns {
		widths[i] = len([]rune(column))
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	fmt.Printf("--- %s ---\n", table.Title)
	headers := make([]string, len(table.Columns))
	rules := make([]string, len(table.Columns))
	for i, column := range table.Columns {
		headers[i] = pad(column, widths[i])
		rules[i] = strings.Repeat("_", widths[i])
	}
	fmt.Printf("%s\n", strings.Join(headers, " | "))
	fmt.Printf("%s\n", strings.Join(rules, " | "))

	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i < len(widths) {
				cells[i] = pad(cell, widths[i])
			} else {
				cells[i] = cell
			}
		}
		fmt.Printf("%s\n", strings.Join(cells, " | "))
	}
}

// pad right-pads by rune count so multi-byte cells line up.
func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func prettyMetrics(metrics analytics.KeyMetrics) {
	fmt.Printf("--- Key Growth Metrics ---\n")
	fmt.Printf("Revenue CAGR (FY2021-FY2025): %s\n", format.Percent(metrics.RevenueCAGR))
	fmt.Printf("PAT CAGR (FY2021-FY2025): %s\n", format.Percent(metrics.PATCAGR))
	fmt.Printf("Growth divergence: %s\n", format.SignedPercent(metrics.Divergence))
	fmt.Printf("Current quarter: revenue %s, PAT %s\n",
		format.Percent(metrics.CurrentRevGrowth), format.Percent(metrics.CurrentPATGrowth))
	fmt.Printf("Revenue trend: %s\n", metrics.RevenueTrend)
	fmt.Printf("Profit trend: %s\n", metrics.ProfitTrend)
	fmt.Printf("Nifty level: %s at %s trailing P/E\n",
		format.Grouped(metrics.NiftyLevel), format.Multiple(metrics.CurrentPE))
	fmt.Printf("Fair value band: %.0fx - %.0fx (gap %s to %s)\n",
		metrics.FairPELow, metrics.FairPEHigh,
		format.SignedPercent(metrics.ValuationGapLow), format.SignedPercent(metrics.ValuationGapHigh))

	if metrics.RevenueWarning || metrics.ProfitWarning || metrics.DivergenceAlert {
		fmt.Printf("Warnings:\n")
		if metrics.RevenueWarning {
			fmt.Printf("  revenue growth below threshold\n")
		}
		if metrics.ProfitWarning {
			fmt.Printf("  profit growth below threshold\n")
		}
		if metrics.DivergenceAlert {
			fmt.Printf("  profit growth diverging sharply from revenue\n")
		}
	}
}

func prettyScenarios(projections []analytics.ScenarioProjection) {
	fmt.Printf("--- Valuation Scenarios (FY2025-FY2027) ---\n")

	nameWidth := len("Probability Weighted")
	for _, p := range projections {
		if n := len([]rune(p.Scenario.Label())); n > nameWidth {
			nameWidth = n
		}
	}

	labels := make([]string, 0, 3)
	if len(projections) > 0 {
		for _, y := range projections[0].Years {
			labels = append(labels, y.Year+"E")
		}
	}
	fmt.Printf("%s | %s | Earnings CAGR | Price Return p.a.\n",
		pad("Scenario", nameWidth), strings.Join(padAll(labels, 6), " | "))

	for _, p := range projections {
		levels := make([]string, 0, len(p.Years))
		for _, y := range p.Years {
			levels = append(levels, pad(format.Level(y.Level), 6))
		}
		fmt.Printf("%s | %s | %s | %s\n",
			pad(p.Scenario.Label(), nameWidth), strings.Join(levels, " | "),
			pad(format.Percent(p.EarningsCAGR), 13), format.Percent(p.PriceReturnPA))
	}

	if expected := analytics.ExpectedLevels(projections); expected != nil {
		levels := make([]string, 0, len(expected))
		for _, e := range expected {
			levels = append(levels, pad(format.Level(e.Level), 6))
		}
		fmt.Printf("%s | %s |\n", pad("Probability Weighted", nameWidth), strings.Join(levels, " | "))
	}
}

func padAll(items []string, width int) []string {
	padded := make([]string, len(items))
	for i, item := range items {
		padded[i] = pad(item, width)
	}
	return padded
}

// CsvString renders the tables in comma-separated form, blank-line separated
// when more than one table is given.
func CsvString(tables []dataset.Table) (string, error) {
	var sb strings.Builder
	for i, table := range tables {
		out, err := export.CSV(table)
		if err != nil {
			return "", err
		}
		sb.Write(out)
		if i < len(tables)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// CsvFormat outputs the tables in comma-separated value format.
func CsvFormat(tables []dataset.Table) error {
	rendered, err := CsvString(tables)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}
