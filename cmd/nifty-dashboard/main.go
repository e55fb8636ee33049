package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mountainpath/nifty-dashboard/internal/analytics"
	"github.com/mountainpath/nifty-dashboard/internal/config"
	"github.com/mountainpath/nifty-dashboard/internal/dataset"
	"github.com/mountainpath/nifty-dashboard/internal/server"
	"github.com/mountainpath/nifty-dashboard/pkg/constants"
	"github.com/mountainpath/nifty-dashboard/pkg/export"
	"github.com/mountainpath/nifty-dashboard/pkg/output"
	"github.com/mountainpath/nifty-dashboard/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	addr := flag.String("addr", "", "listen address override (e.g. :8080)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	outputFormatFlag := flag.String("output-format", "", "print a dataset to stdout and exit: pretty, csv")
	datasetFlag := flag.String("dataset", constants.DatasetAll, "dataset for -output-format: five-year, quarterly, sectors, downgrades, all")
	exportPath := flag.String("export-xlsx", "", "write the analysis workbook to this path and exit")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *addr != "" {
		conf.Server.Address = *addr
	}

	switch {
	case *outputFormatFlag != "":
		printDatasets(logger, conf, *outputFormatFlag, *datasetFlag)
	case *exportPath != "":
		exportWorkbook(logger, conf, *exportPath)
	default:
		serve(logger, conf)
	}
}

// printDatasets renders the requested dataset tables to stdout.
func printDatasets(logger *zap.Logger, conf *config.Configuration, outputFormat, name string) {
	err := validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	err = validation.ValidateDatasetName(name)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	bundle, err := dataset.Load(logger)
	if err != nil {
		logger.Fatal("datasets failed integrity checks",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	var tables []dataset.Table
	if name == constants.DatasetAll {
		tables = bundle.AllTables()
	} else {
		table, err := bundle.TableByName(name)
		if err != nil {
			logger.Fatal("failed to resolve dataset",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		tables = []dataset.Table{table}
	}

	// Handle output. The full pretty view carries the derived figures; a
	// single dataset prints as a bare table.
	switch outputFormat {
	case constants.OutputFormatPretty:
		if name == constants.DatasetAll {
			metrics := analytics.ComputeKeyMetrics(logger, bundle, conf.Market, conf.Thresholds)
			projections := analytics.ProjectScenarios(logger, conf.Market, bundle.Scenarios)
			output.PrettyFormat(tables, &metrics, projections)
		} else {
			output.PrettyFormat(tables, nil, nil)
		}
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(tables); err != nil {
			logger.Fatal("failed to render CSV",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

// exportWorkbook writes the styled analysis workbook to the given path.
func exportWorkbook(logger *zap.Logger, conf *config.Configuration, path string) {
	bundle, err := dataset.Load(logger)
	if err != nil {
		logger.Fatal("datasets failed integrity checks",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	metrics := analytics.ComputeKeyMetrics(logger, bundle, conf.Market, conf.Thresholds)
	projections := analytics.ProjectScenarios(logger, conf.Market, bundle.Scenarios)

	buf, err := export.NewWorkbookBuilder(logger).Workbook(bundle, metrics, projections)
	if err != nil {
		logger.Fatal("failed to build workbook",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Fatal("failed to create output directory",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		logger.Fatal("failed to write workbook",
			zap.String("op", "main"),
			zap.String("path", path),
			zap.Error(err),
		)
	}

	logger.Info("workbook written",
		zap.String("op", "main"),
		zap.String("path", path),
		zap.Int("bytes", buf.Len()),
	)
}

// serve runs the dashboard HTTP server until interrupted.
func serve(logger *zap.Logger, conf *config.Configuration) {
	srv, err := server.New(logger, conf, version)
	if err != nil {
		logger.Fatal("failed to construct server",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	case sig := <-quit:
		logger.Info("received shutdown signal",
			zap.String("op", "main"),
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Fatal("failed to shut down cleanly",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
