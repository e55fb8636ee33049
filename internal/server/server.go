// Package server serves the dashboard web UI and the JSON API over the
// loaded datasets and their derived figures.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mountainpath/nifty-dashboard/internal/analytics"
	"github.com/mountainpath/nifty-dashboard/internal/config"
	"github.com/mountainpath/nifty-dashboard/internal/dataset"
	"github.com/mountainpath/nifty-dashboard/pkg/export"
)

//go:embed static
var staticFiles embed.FS

//go:embed templates
var templateFiles embed.FS

// Server wires the datasets, the computed figures, and the HTTP stack. The
// bundle is immutable after construction, so every derived figure is computed
// once here and shared by the handlers without locking.
type Server struct {
	logger  *zap.Logger
	cfg     *config.Configuration
	version string

	bundle      *dataset.Bundle
	loadErr     error
	metrics     analytics.KeyMetrics
	projections []analytics.ScenarioProjection
	expected    []analytics.ExpectedLevel
	summary     analytics.Summary

	workbook *export.WorkbookBuilder
	page     *template.Template
	pageData pageData

	router *mux.Router
	server *http.Server
}

// New constructs the server. A dataset that fails its integrity checks does
// not prevent startup: the server comes up degraded, serving the page with a
// warning banner and 503 on the data routes.
func New(logger *zap.Logger, cfg *config.Configuration, version string) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	s := &Server{
		logger:   logger,
		cfg:      cfg,
		version:  trimmedVersion,
		workbook: export.NewWorkbookBuilder(logger),
	}

	page, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded templates: %w", err)
	}
	s.page = page

	s.bundle, s.loadErr = dataset.Load(logger)
	if s.loadErr != nil {
		logger.Error("serving degraded: dataset failed integrity checks",
			zap.String("op", "server.New"),
			zap.Error(s.loadErr),
		)
	} else {
		s.metrics = analytics.ComputeKeyMetrics(logger, s.bundle, cfg.Market, cfg.Thresholds)
		s.projections = analytics.ProjectScenarios(logger, cfg.Market, s.bundle.Scenarios)
		s.expected = analytics.ExpectedLevels(s.projections)
		s.summary = analytics.Summarize(s.bundle)
	}
	s.pageData = s.buildPageData()

	s.router, err = s.setupRoutes()
	if err != nil {
		return nil, err
	}

	s.server = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      s.withMiddleware(s.router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting",
		zap.String("op", "server.Start"),
		zap.String("address", s.cfg.Server.Address),
		zap.Bool("degraded", s.loadErr != nil),
	)
	s.logger.Info("dashboard available",
		zap.String("op", "server.Start"),
		zap.String("url", fmt.Sprintf("http://%s", displayAddress(s.cfg.Server.Address))),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server", zap.String("op", "server.Shutdown"))

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server stopped", zap.String("op", "server.Shutdown"))
	return nil
}

// displayAddress turns a listen address like ":8080" into a host:port
// suitable for a clickable URL.
func displayAddress(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}

// staticFS returns the embedded static tree rooted at its contents.
func staticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare embedded static files: %w", err)
	}
	return sub, nil
}
