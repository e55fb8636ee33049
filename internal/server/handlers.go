package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mountainpath/nifty-dashboard/internal/dataset"
	"github.com/mountainpath/nifty-dashboard/pkg/constants"
	"github.com/mountainpath/nifty-dashboard/pkg/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type datasetResponse struct {
	Name  string      `json:"name"`
	Title string      `json:"title"`
	Rows  interface{} `json:"rows"`
}

type scenariosResponse struct {
	Scenarios      interface{} `json:"scenarios"`
	ExpectedLevels interface{} `json:"expected_levels"`
}

type sourcesResponse struct {
	Sources  []dataset.Source `json:"sources"`
	Primary  []string         `json:"primary"`
	Research []string         `json:"research"`
	Global   []string         `json:"global"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.page.ExecuteTemplate(&buf, "dashboard.html", s.pageData); err != nil {
		s.respondErrorWithOp(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to render page: %v", err), "server.handleIndex")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Error("failed to write page",
			zap.String("op", "server.handleIndex"),
			zap.Error(err),
		)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if s.loadErr != nil {
		status = "degraded"
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version": s.version,
		"brand":   s.cfg.Branding.Brand,
		"author":  s.cfg.Branding.Author,
	})
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	if !s.requireData(w, "server.handleDataset") {
		return
	}

	name := mux.Vars(r)["name"]
	table, err := s.bundle.TableByName(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrUnknownDataset) {
			status = http.StatusNotFound
		}
		s.respondErrorWithOp(w, status, err.Error(), "server.handleDataset")
		return
	}

	s.writeJSON(w, http.StatusOK, datasetResponse{
		Name:  name,
		Title: table.Title,
		Rows:  s.datasetRows(name),
	})
}

// datasetRows returns the typed rows behind a dataset name so the API serves
// structured fields rather than rendered cells.
func (s *Server) datasetRows(name string) interface{} {
	switch name {
	case constants.DatasetFiveYear:
		return s.bundle.FiveYear
	case constants.DatasetQuarterly:
		return s.bundle.Quarterly
	case constants.DatasetSectors:
		return s.bundle.Sectors
	case constants.DatasetDowngrades:
		return s.bundle.Downgrades
	default:
		return nil
	}
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	if !s.requireData(w, "server.handleScenarios") {
		return
	}

	s.writeJSON(w, http.StatusOK, scenariosResponse{
		Scenarios:      s.projections,
		ExpectedLevels: s.expected,
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !s.requireData(w, "server.handleMetrics") {
		return
	}

	s.writeJSON(w, http.StatusOK, s.metrics)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if !s.requireData(w, "server.handleSummary") {
		return
	}

	s.writeJSON(w, http.StatusOK, s.summary)
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	if !s.requireData(w, "server.handleSources") {
		return
	}

	s.writeJSON(w, http.StatusOK, sourcesResponse{
		Sources:  s.bundle.Sources,
		Primary:  dataset.PrimarySources(),
		Research: dataset.ResearchSources(),
		Global:   dataset.GlobalResearch(),
	})
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if !s.requireData(w, "server.handleExportCSV") {
		return
	}

	name := mux.Vars(r)["dataset"]
	table, err := s.bundle.TableByName(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrUnknownDataset) {
			status = http.StatusNotFound
		}
		s.respondErrorWithOp(w, status, err.Error(), "server.handleExportCSV")
		return
	}

	data, err := export.CSV(table)
	if err != nil {
		s.respondErrorWithOp(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to encode %s: %v", name, err), "server.handleExportCSV")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", table.Filename))
	if _, err := w.Write(data); err != nil {
		s.logger.Error("failed to write CSV export",
			zap.String("op", "server.handleExportCSV"),
			zap.String("dataset", name),
			zap.Error(err),
		)
	}
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	if !s.requireData(w, "server.handleExportXLSX") {
		return
	}

	start := time.Now()
	buf, err := s.workbook.Workbook(s.bundle, s.metrics, s.projections)
	if err != nil {
		s.respondErrorWithOp(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to build workbook: %v", err), "server.handleExportXLSX")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", constants.ExportFileWorkbook))
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Error("failed to write workbook export",
			zap.String("op", "server.handleExportXLSX"),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("workbook exported",
		zap.String("op", "server.handleExportXLSX"),
		zap.Int("bytes", buf.Len()),
		zap.Duration("duration", time.Since(start)),
	)
}

// requireData rejects data requests while the server is degraded.
func (s *Server) requireData(w http.ResponseWriter, op string) bool {
	if s.loadErr != nil {
		s.respondErrorWithOp(w, http.StatusServiceUnavailable,
			"datasets unavailable: failed integrity checks", op)
		return false
	}
	return true
}

func (s *Server) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	s.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
