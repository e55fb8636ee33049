package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mountainpath/nifty-dashboard/internal/analytics"
	"github.com/mountainpath/nifty-dashboard/internal/dataset"
	"github.com/mountainpath/nifty-dashboard/pkg/format"
	"github.com/mountainpath/nifty-dashboard/pkg/mathutil"
)

// Sheet names in workbook order.
const (
	SheetFiveYear   = "5-Year Trend"
	SheetQuarterly  = "Quarterly"
	SheetSectors    = "Sectors"
	SheetDowngrades = "Downgrades"
	SheetMetrics    = "Key Metrics"
	SheetScenarios  = "Scenarios"
)

const (
	headerFillColor = "1F4E79"
	borderColor     = "B0B7BD"
	minColumnWidth  = 10.0
	maxColumnWidth  = 42.0
)

// sheetStyles carries the style identifiers used while populating a
// workbook. Zero identifiers mean styling was unavailable and cells are
// written plain.
type sheetStyles struct {
	header int
	body   int
}

// WorkbookBuilder assembles the full analysis workbook from the datasets
// and the computed figures.
type WorkbookBuilder struct {
	logger *zap.Logger
}

// NewWorkbookBuilder returns a WorkbookBuilder logging through the given
// logger.
func NewWorkbookBuilder(logger *zap.Logger) *WorkbookBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkbookBuilder{logger: logger}
}

// Workbook renders every dataset table plus the key metrics and scenario
// projections into a styled multi-sheet workbook and returns the encoded
// file. A style-creation failure degrades to unstyled cells rather than
// failing the export.
func (b *WorkbookBuilder) Workbook(bundle *dataset.Bundle, metrics analytics.KeyMetrics, projections []analytics.ScenarioProjection) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			b.logger.Warn("failed to close workbook",
				zap.String("op", "export.Workbook"),
				zap.Error(err),
			)
		}
	}()

	styles := b.newStyles(f)

	tables := []struct {
		sheet string
		table dataset.Table
	}{
		{SheetFiveYear, bundle.FiveYearTable()},
		{SheetQuarterly, bundle.QuarterlyTable()},
		{SheetSectors, bundle.SectorTable()},
		{SheetDowngrades, bundle.DowngradeTable()},
	}
	for _, tb := range tables {
		if err := b.addSheet(f, tb.sheet, tb.table.Columns, tb.table.Rows, styles); err != nil {
			return nil, err
		}
	}

	if err := b.addSheet(f, SheetMetrics, metricsColumns, metricsRows(bundle, metrics), styles); err != nil {
		return nil, err
	}
	if err := b.addSheet(f, SheetScenarios, scenarioColumns, scenarioRows(projections), styles); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(SheetFiveYear)
	if err != nil {
		return nil, fmt.Errorf("locate sheet %s: %w", SheetFiveYear, err)
	}
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}

	b.logger.Debug("assembled workbook",
		zap.String("op", "export.Workbook"),
		zap.Int("sheets", len(tables)+2),
		zap.Int("bytes", buf.Len()),
	)
	return buf, nil
}

// newStyles creates the header and body cell styles. On failure it logs a
// warning and returns zero identifiers so the sheets come out unstyled.
func (b *WorkbookBuilder) newStyles(f *excelize.File) sheetStyles {
	borders := []excelize.Border{
		{Type: "left", Color: borderColor, Style: 1},
		{Type: "right", Color: borderColor, Style: 1},
		{Type: "top", Color: borderColor, Style: 1},
		{Type: "bottom", Color: borderColor, Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Border: borders,
	})
	if err != nil {
		b.logger.Warn("failed to create header style, continuing unstyled",
			zap.String("op", "export.newStyles"),
			zap.Error(err),
		)
		return sheetStyles{}
	}

	body, err := f.NewStyle(&excelize.Style{Border: borders})
	if err != nil {
		b.logger.Warn("failed to create body style, continuing unstyled",
			zap.String("op", "export.newStyles"),
			zap.Error(err),
		)
		return sheetStyles{header: header}
	}

	return sheetStyles{header: header, body: body}
}

// addSheet creates one sheet, writes the header and rows, applies styling,
// and sizes the columns to their content.
func (b *WorkbookBuilder) addSheet(f *excelize.File, sheet string, columns []string, rows [][]string, styles sheetStyles) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("sheet %s header cell: %w", sheet, err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("sheet %s header %s: %w", sheet, name, err)
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("sheet %s cell: %w", sheet, err)
			}
			if err := f.SetCellValue(sheet, cell, cellValue(value)); err != nil {
				return fmt.Errorf("sheet %s cell %s: %w", sheet, cell, err)
			}
		}
	}

	if err := b.applyStyles(f, sheet, len(columns), len(rows), styles); err != nil {
		return err
	}
	return b.sizeColumns(f, sheet, columns, rows)
}

// cellValue converts a rendered cell back to a number where it parses as
// one, so spreadsheet formulas can operate on the figures directly.
func cellValue(s string) interface{} {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

func (b *WorkbookBuilder) applyStyles(f *excelize.File, sheet string, columns, rows int, styles sheetStyles) error {
	if styles.header != 0 {
		last, err := excelize.CoordinatesToCellName(columns, 1)
		if err != nil {
			return fmt.Errorf("sheet %s style range: %w", sheet, err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, styles.header); err != nil {
			return fmt.Errorf("sheet %s header style: %w", sheet, err)
		}
	}
	if styles.body != 0 && rows > 0 {
		last, err := excelize.CoordinatesToCellName(columns, rows+1)
		if err != nil {
			return fmt.Errorf("sheet %s style range: %w", sheet, err)
		}
		if err := f.SetCellStyle(sheet, "A2", last, styles.body); err != nil {
			return fmt.Errorf("sheet %s body style: %w", sheet, err)
		}
	}
	return nil
}

// sizeColumns widens each column to fit its longest cell, within bounds.
func (b *WorkbookBuilder) sizeColumns(f *excelize.File, sheet string, columns []string, rows [][]string) error {
	for col, name := range columns {
		width := float64(len([]rune(name)))
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			if w := float64(len([]rune(row[col]))); w > width {
				width = w
			}
		}
		width = width*1.2 + 2
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}

		letter, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("sheet %s column %d: %w", sheet, col+1, err)
		}
		if err := f.SetColWidth(sheet, letter, letter, width); err != nil {
			return fmt.Errorf("sheet %s column width %s: %w", sheet, letter, err)
		}
	}
	return nil
}

var metricsColumns = []string{"Metric", "Value"}

// metricsRows lays the computed key metrics out as labelled rows for the
// Key Metrics sheet.
func metricsRows(bundle *dataset.Bundle, metrics analytics.KeyMetrics) [][]string {
	return [][]string{
		{"Revenue Growth CAGR (FY2021-FY2025)", format.Percent(metrics.RevenueCAGR)},
		{"PAT Growth CAGR (FY2021-FY2025)", format.Percent(metrics.PATCAGR)},
		{"Growth Divergence (PAT vs Revenue)", format.SignedPercent(metrics.Divergence)},
		{"Current Quarter Revenue Growth", format.Percent(metrics.CurrentRevGrowth)},
		{"Current Quarter PAT Growth", format.Percent(metrics.CurrentPATGrowth)},
		{"Revenue Trend", metrics.RevenueTrend},
		{"Profit Trend", metrics.ProfitTrend},
		{"Nifty Level", format.Grouped(metrics.NiftyLevel)},
		{"Trailing P/E", format.Multiple(metrics.CurrentPE)},
		{"Fair Value P/E Band", fmt.Sprintf("%.0fx - %.0fx", metrics.FairPELow, metrics.FairPEHigh)},
		{"Valuation Gap to Fair Band", fmt.Sprintf("%s to %s", format.SignedPercent(metrics.ValuationGapLow), format.SignedPercent(metrics.ValuationGapHigh))},
		{"Data Updated", bundle.DataUpdated},
	}
}

var scenarioColumns = []string{
	"Scenario", "Probability (%)", "Description",
	"FY25E EPS", "FY25E P/E", "FY25E Nifty",
	"FY26E EPS", "FY26E P/E", "FY26E Nifty",
	"FY27E EPS", "FY27E P/E", "FY27E Nifty",
	"Implied Earnings CAGR (%)", "Implied Price Return p.a. (%)",
}

// scenarioRows flattens each scenario projection into one row, with a
// probability-weighted level row appended when projections are present.
func scenarioRows(projections []analytics.ScenarioProjection) [][]string {
	rows := make([][]string, 0, len(projections)+1)
	for _, p := range projections {
		row := []string{
			p.Scenario.Name,
			strconv.FormatFloat(p.Scenario.Probability*100, 'f', -1, 64),
			p.Scenario.Description,
		}
		for _, y := range p.Years {
			row = append(row,
				strconv.FormatFloat(mathutil.Round(y.EPS), 'f', -1, 64),
				strconv.FormatFloat(y.PE, 'f', -1, 64),
				strconv.FormatFloat(mathutil.Round(y.Level), 'f', -1, 64),
			)
		}
		row = append(row,
			strconv.FormatFloat(mathutil.Round(p.EarningsCAGR), 'f', -1, 64),
			strconv.FormatFloat(mathutil.Round(p.PriceReturnPA), 'f', -1, 64),
		)
		rows = append(rows, row)
	}

	if expected := analytics.ExpectedLevels(projections); expected != nil {
		row := []string{"Probability Weighted", "100", "Expected level across scenarios"}
		for _, e := range expected {
			row = append(row, "", "", strconv.FormatFloat(mathutil.Round(e.Level), 'f', -1, 64))
		}
		row = append(row, "", "")
		rows = append(rows, row)
	}
	return rows
}
