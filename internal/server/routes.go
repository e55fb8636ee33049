package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// setupRoutes configures the UI and API routes.
func (s *Server) setupRoutes() (*mux.Router, error) {
	r := mux.NewRouter()

	// Web UI
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	static, err := staticFS()
	if err != nil {
		return nil, err
	}
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.FS(static)))).Methods(http.MethodGet)

	// JSON API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)
	api.HandleFunc("/datasets/{name}", s.handleDataset).Methods(http.MethodGet)
	api.HandleFunc("/scenarios", s.handleScenarios).Methods(http.MethodGet)
	api.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)
	api.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/sources", s.handleSources).Methods(http.MethodGet)
	api.HandleFunc("/export/csv/{dataset}", s.handleExportCSV).Methods(http.MethodGet)
	api.HandleFunc("/export/xlsx", s.handleExportXLSX).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)

	return r, nil
}

// handleNotFound returns JSON for unmatched API routes and plain text for
// everything else.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		s.respondErrorWithOp(w, http.StatusNotFound, "route not found", "server.handleNotFound")
		return
	}
	http.NotFound(w, r)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		s.respondErrorWithOp(w, http.StatusMethodNotAllowed,
			http.StatusText(http.StatusMethodNotAllowed), "server.handleMethodNotAllowed")
		return
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
