package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mountainpath/nifty-dashboard/internal/analytics"
	"github.com/mountainpath/nifty-dashboard/internal/config"
	"github.com/mountainpath/nifty-dashboard/internal/dataset"
	"github.com/mountainpath/nifty-dashboard/pkg/constants"
	"github.com/mountainpath/nifty-dashboard/pkg/export"
	"github.com/mountainpath/nifty-dashboard/pkg/output"
	"github.com/mountainpath/nifty-dashboard/pkg/testutil"
	"go.uber.org/zap"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name        string
		logging     config.LoggingConfig
		override    string
		expectError bool
	}{
		{name: "default info", logging: config.LoggingConfig{}},
		{name: "debug level", logging: config.LoggingConfig{Level: "debug"}},
		{name: "warning alias", logging: config.LoggingConfig{Level: "warning"}},
		{name: "error level", logging: config.LoggingConfig{Level: "error"}},
		{name: "console format", logging: config.LoggingConfig{Format: "console"}},
		{name: "CLI override wins", logging: config.LoggingConfig{Level: "info"}, override: "debug"},
		{name: "invalid level", logging: config.LoggingConfig{Level: "verbose"}, expectError: true},
		{name: "invalid override", logging: config.LoggingConfig{}, override: "loud", expectError: true},
		{name: "invalid format", logging: config.LoggingConfig{Format: "xml"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.logging, tt.override)
			if tt.expectError {
				if err == nil {
					t.Errorf("initializeLogger() expected error for %+v", tt.logging)
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			_ = logger.Sync()
		})
	}
}

func TestInitializeLoggerFileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "dashboard.log")

	logger, err := initializeLogger(config.LoggingConfig{OutputFile: logPath}, "")
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Info("probe")
	_ = logger.Sync()

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("expected log file at %s: %v", logPath, err)
	}
}

// TestEndToEndBaseline walks the full graph the way the CLI does and pins the
// headline figures so a refactor anywhere in the chain cannot silently move
// them.
func TestEndToEndBaseline(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Fatalf("default configuration produced warnings: %v", warnings)
	}

	bundle, err := dataset.Load(logger)
	if err != nil {
		t.Fatalf("dataset.Load() error = %v", err)
	}

	metrics := analytics.ComputeKeyMetrics(logger, bundle, conf.Market, conf.Thresholds)
	if math.Abs(metrics.RevenueCAGR-(-9.9643)) > 0.01 {
		t.Errorf("RevenueCAGR = %v, want about -9.96", metrics.RevenueCAGR)
	}
	if metrics.ValuationGapLow != -60 || metrics.ValuationGapHigh != -52 {
		t.Errorf("valuation gap = [%v, %v], want [-60, -52]", metrics.ValuationGapLow, metrics.ValuationGapHigh)
	}

	projections := analytics.ProjectScenarios(logger, conf.Market, bundle.Scenarios)
	finalLevels := map[string]float64{
		"Base Case": 67979.4525,
		"Bear Case": 53219.998125,
		"Bull Case": 81770.690925,
	}
	for name, want := range finalLevels {
		projection := testutil.FindProjection(projections, name)
		if projection == nil {
			t.Fatalf("missing projection for %s", name)
		}
		got := projection.Years[constants.ForwardYears-1].Level
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("%s final level = %v, want %v", name, got, want)
		}
	}

	levels := analytics.ExpectedLevels(projections)
	if len(levels) != constants.ForwardYears {
		t.Fatalf("got %d expected levels, want %d", len(levels), constants.ForwardYears)
	}
	if math.Abs(levels[0].Level-55902.6875) > 1e-6 {
		t.Errorf("expected FY25 level = %v, want 55902.6875", levels[0].Level)
	}
	if math.Abs(levels[2].Level-67737.3985125) > 1e-6 {
		t.Errorf("expected FY27 level = %v, want 67737.3985125", levels[2].Level)
	}

	buf, err := export.NewWorkbookBuilder(logger).Workbook(bundle, metrics, projections)
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}
	if body := buf.Bytes(); len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Error("workbook is not a zip container")
	}
}

func TestEndToEndCSV(t *testing.T) {
	bundle, err := dataset.Load(zap.NewNop())
	if err != nil {
		t.Fatalf("dataset.Load() error = %v", err)
	}
	tables := bundle.AllTables()

	sectors := testutil.FindTable(tables, constants.DatasetSectors)
	if sectors == nil {
		t.Fatalf("missing sectors table")
	}
	if sectors.Filename != constants.ExportFileSectors {
		t.Errorf("sectors filename = %q, want %q", sectors.Filename, constants.ExportFileSectors)
	}

	csvText, err := output.CsvString(tables)
	if err != nil {
		t.Fatalf("CsvString() error = %v", err)
	}
	for _, want := range []string{
		"Fiscal Year,Revenue Growth (%),EBITDA Growth (%),PAT Growth (%),EBITDA Margin (%),PAT Margin (%)",
		"Quarter,Revenue Growth (%),EBITDA Growth (%),PAT Growth (%)",
		"Sector,Revenue Growth FY25 (%),Profit Growth FY25 (%),Weight in Nifty (%),Status",
		"Date,Period,FY25 Profit Growth (%)",
		"FY2021,10.5,11.2,8.3,32.1,9.8",
	} {
		if !strings.Contains(csvText, want) {
			t.Errorf("combined CSV missing %q", want)
		}
	}
}
