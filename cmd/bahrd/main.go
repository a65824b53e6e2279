// Command bahrd is a minimal JSON HTTP front end for the scanner: one
// process loads a scanner configuration once and serves scan requests over
// a small chi-routed API, each request tagged with a uuid for correlation
// in the trace log.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/npillmayer/bahr/config"
	"github.com/npillmayer/bahr/meter"
	"github.com/npillmayer/bahr/scan"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace { return tracing.Select("bahr.bahrd") }

type server struct {
	scanner *scan.Scanner
}

type scanRequest struct {
	Input     string `json:"input"`
	FirstOnly bool   `json:"first_only,omitempty"`
	ShowFeet  bool   `json:"show_feet,omitempty"`
}

type scanResponse struct {
	RequestID string            `json:"request_id"`
	Input     string            `json:"input"`
	Results   []scan.ScanResult `json:"results"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func newServer(scanner *scan.Scanner) *server {
	return &server{scanner: scanner}
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Post("/scan", s.handleScan)
	r.Get("/meters", s.handleMeters)
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *server) handleMeters(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	writeJSON(w, http.StatusOK, struct {
		RequestID string         `json:"request_id"`
		Meters    []*meter.Meter `json:"meters"`
	}{RequestID: reqID, Meters: s.scanner.Meters})
}

func (s *server) handleScan(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{RequestID: reqID, Error: err.Error()})
		return
	}
	tracer().Infof("[%s] scan %q", reqID, req.Input)
	results, err := s.scanner.Scan(req.Input, scan.Options{FirstOnly: req.FirstOnly, ShowFeet: req.ShowFeet})
	if err != nil {
		tracer().Errorf("[%s] scan failed: %v", reqID, err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{RequestID: reqID, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, scanResponse{RequestID: reqID, Input: req.Input, Results: results})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	configPath := flag.String("config", "", "path to a scanner YAML document (required)")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	flag.Parse()

	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	if *configPath == "" {
		tracer().Errorf("missing -config")
		os.Exit(2)
	}
	f, err := os.Open(*configPath)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	doc, err := config.LoadScanner(f)
	f.Close()
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	scanner, err := config.BuildScanner(doc)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}

	s := newServer(scanner)
	tracer().Infof("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, s.routes()); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
}
