package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mountainpath/nifty-dashboard/internal/analytics"
	"github.com/mountainpath/nifty-dashboard/internal/config"
	"github.com/mountainpath/nifty-dashboard/internal/dataset"
)

func buildWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	bundle := loadBundle(t)
	cfg := config.Default()
	metrics := analytics.ComputeKeyMetrics(zap.NewNop(), bundle, cfg.Market, cfg.Thresholds)
	projections := analytics.ProjectScenarios(zap.NewNop(), cfg.Market, bundle.Scenarios)

	buf, err := NewWorkbookBuilder(zap.NewNop()).Workbook(bundle, metrics, projections)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := f.Close(); err != nil {
			t.Errorf("close workbook: %v", err)
		}
	})
	return f
}

func cellValueAt(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	value, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return value
}

func TestWorkbookSheets(t *testing.T) {
	f := buildWorkbook(t)

	want := []string{
		SheetFiveYear, SheetQuarterly, SheetSectors,
		SheetDowngrades, SheetMetrics, SheetScenarios,
	}
	assert.Equal(t, want, f.GetSheetList())
}

func TestWorkbookDatasetCells(t *testing.T) {
	f := buildWorkbook(t)

	assert.Equal(t, "Fiscal Year", cellValueAt(t, f, SheetFiveYear, "A1"))
	assert.Equal(t, "FY2021", cellValueAt(t, f, SheetFiveYear, "A2"))
	assert.Equal(t, "10.5", cellValueAt(t, f, SheetFiveYear, "B2"))
	assert.Equal(t, "FY2025 YTD", cellValueAt(t, f, SheetFiveYear, "A6"))

	assert.Equal(t, "Q3FY25", cellValueAt(t, f, SheetQuarterly, "A4"))
	assert.Equal(t, "4.5", cellValueAt(t, f, SheetQuarterly, "B4"))

	assert.Equal(t, "Energy", cellValueAt(t, f, SheetSectors, "A3"))
	assert.Equal(t, "-35.4", cellValueAt(t, f, SheetSectors, "C3"))
	assert.Equal(t, "27", cellValueAt(t, f, SheetSectors, "D3"))
	assert.Equal(t, "🔴 CRISIS", cellValueAt(t, f, SheetSectors, "E3"))

	assert.Equal(t, "Sep 30, 2024", cellValueAt(t, f, SheetDowngrades, "A2"))
	assert.Equal(t, "9.8", cellValueAt(t, f, SheetDowngrades, "C2"))
}

func TestWorkbookMetricsSheet(t *testing.T) {
	f := buildWorkbook(t)

	rows, err := f.GetRows(SheetMetrics)
	require.NoError(t, err)
	require.Len(t, rows, 13)

	assert.Equal(t, []string{"Metric", "Value"}, rows[0])
	assert.Equal(t, []string{"Revenue Growth CAGR (FY2021-FY2025)", "-10.0%"}, rows[1])
	assert.Equal(t, []string{"PAT Growth CAGR (FY2021-FY2025)", "-13.7%"}, rows[2])
	assert.Equal(t, []string{"Revenue Trend", "Decelerating"}, rows[6])
	assert.Equal(t, []string{"Profit Trend", "Balanced"}, rows[7])
	assert.Equal(t, []string{"Nifty Level", "23,500"}, rows[8])
	assert.Equal(t, []string{"Trailing P/E", "25.0x"}, rows[9])
	assert.Equal(t, []string{"Fair Value P/E Band", "10x - 12x"}, rows[10])
	assert.Equal(t, []string{"Valuation Gap to Fair Band", "-60.0% to -52.0%"}, rows[11])
	assert.Equal(t, []string{"Data Updated", "Feb 21, 2025"}, rows[12])
}

func TestWorkbookScenarioSheet(t *testing.T) {
	f := buildWorkbook(t)

	assert.Equal(t, "Scenario", cellValueAt(t, f, SheetScenarios, "A1"))
	assert.Equal(t, "FY25E Nifty", cellValueAt(t, f, SheetScenarios, "F1"))

	assert.Equal(t, "Base Case", cellValueAt(t, f, SheetScenarios, "A2"))
	assert.Equal(t, "50", cellValueAt(t, f, SheetScenarios, "B2"))
	assert.Equal(t, "2268.25", cellValueAt(t, f, SheetScenarios, "D2"))
	assert.Equal(t, "56706.25", cellValueAt(t, f, SheetScenarios, "F2"))
	assert.Equal(t, "67979.45", cellValueAt(t, f, SheetScenarios, "L2"))

	assert.Equal(t, "Bear Case", cellValueAt(t, f, SheetScenarios, "A3"))
	assert.Equal(t, "50439", cellValueAt(t, f, SheetScenarios, "F3"))
	assert.Equal(t, "Bull Case", cellValueAt(t, f, SheetScenarios, "A4"))
	assert.Equal(t, "59759.25", cellValueAt(t, f, SheetScenarios, "F4"))

	assert.Equal(t, "Probability Weighted", cellValueAt(t, f, SheetScenarios, "A5"))
	assert.Equal(t, "55902.69", cellValueAt(t, f, SheetScenarios, "F5"))
}

func TestWorkbookColumnWidths(t *testing.T) {
	f := buildWorkbook(t)

	width, err := f.GetColWidth(SheetDowngrades, "A")
	require.NoError(t, err)
	assert.InDelta(t, 16.4, width, 0.01)

	width, err = f.GetColWidth(SheetScenarios, "C")
	require.NoError(t, err)
	assert.InDelta(t, maxColumnWidth, width, 0.01)
}

func BenchmarkWorkbook(b *testing.B) {
	bundle, err := dataset.Load(zap.NewNop())
	if err != nil {
		b.Fatal(err)
	}
	cfg := config.Default()
	metrics := analytics.ComputeKeyMetrics(zap.NewNop(), bundle, cfg.Market, cfg.Thresholds)
	projections := analytics.ProjectScenarios(zap.NewNop(), cfg.Market, bundle.Scenarios)
	builder := NewWorkbookBuilder(zap.NewNop())

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Workbook(bundle, metrics, projections); err != nil {
			b.Fatal(err)
		}
	}
}
