// Package httpapi exposes the trip planner over HTTP, both as a small HTML
// frontend and as a JSON API documented by an embedded OpenAPI spec.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tripweaver/tripweaver/internal/renderer"
	"github.com/tripweaver/tripweaver/pkg/domain"
)

const (
	defaultDays = 5
	maxDays     = 30
)

// Planner runs one planning request end to end. It is satisfied by
// *tripweaver.Planner.
type Planner interface {
	PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.PlanResult, error)
}

// Server wires the planner to the HTTP surface. A nil planner means the
// service is up but not configured (no model credential); every planning
// route then answers with a configuration notice instead of running.
type Server struct {
	planner  Planner
	logger   *slog.Logger
	gatherer prometheus.Gatherer
	version  string
}

// Option adjusts server construction.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGatherer sets the registry served at /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		if g != nil {
			s.gatherer = g
		}
	}
}

// WithVersion sets the build version reported by /info.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// NewHandler builds the HTTP handler for the planner.
func NewHandler(planner Planner, opts ...Option) http.Handler {
	s := &Server{
		planner:  planner,
		logger:   slog.Default(),
		gatherer: prometheus.DefaultGatherer,
		version:  "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()

	r.Get("/", s.Index)
	r.Post("/plan", s.PlanForm)
	r.Post("/api/plan", s.PlanAPI)
	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		if _, err := Spec(); err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const configNotice = "The planner is not configured: no model API key is set. " +
	"Set TRIPWEAVER_MODEL_API_KEY (or GOOGLE_API_KEY / OPENAI_API_KEY) and restart."

// Index handles the GET / request.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	if s.planner == nil {
		s.renderError(w, http.StatusServiceUnavailable, configNotice)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, nil); err != nil {
		s.logger.Error("Index render failed", "error", err)
	}
}

// PlanForm handles the POST /plan form submission and answers with HTML.
func (s *Server) PlanForm(w http.ResponseWriter, r *http.Request) {
	if s.planner == nil {
		s.renderError(w, http.StatusServiceUnavailable, configNotice)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	req := domain.TripRequest{City: strings.TrimSpace(r.FormValue("city")), Days: defaultDays}
	if raw := strings.TrimSpace(r.FormValue("days")); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 1 || days > maxDays {
			s.renderError(w, http.StatusBadRequest, fmt.Sprintf("Days must be a number between 1 and %d.", maxDays))
			return
		}
		req.Days = days
	}

	result, err := s.planner.PlanTrip(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			s.renderError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}
		s.logger.Error("Planning failed", "city", req.City, "error", err)
		s.renderError(w, http.StatusInternalServerError,
			fmt.Sprintf("Planning %q failed before an answer was produced: %v", req.City, err))
		return
	}

	view := renderer.Render(req, result)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := planTmpl.Execute(w, map[string]any{"View": view}); err != nil {
		s.logger.Error("Plan render failed", "error", err)
	}
}

type planRequest struct {
	City string `json:"city"`
	Days int    `json:"days"`
}

type planResponse struct {
	City       string           `json:"city"`
	Days       int              `json:"days"`
	Outcome    string           `json:"outcome"`
	Plan       *domain.TripPlan `json:"plan,omitempty"`
	RawText    string           `json:"raw_text,omitempty"`
	ParseError string           `json:"parse_error,omitempty"`
}

// PlanAPI handles the POST /api/plan request.
func (s *Server) PlanAPI(w http.ResponseWriter, r *http.Request) {
	if s.planner == nil {
		http.Error(w, configNotice, http.StatusServiceUnavailable)
		return
	}

	var body planRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("PlanAPI: Invalid request body", "error", err)
		return
	}
	if body.Days == 0 {
		body.Days = defaultDays
	}
	if body.Days < 1 || body.Days > maxDays {
		http.Error(w, fmt.Sprintf("days must be between 1 and %d", maxDays), http.StatusBadRequest)
		return
	}

	req := domain.TripRequest{City: strings.TrimSpace(body.City), Days: body.Days}
	result, err := s.planner.PlanTrip(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Planning error: %v", err), http.StatusInternalServerError)
		s.logger.Error("Planning failed", "city", req.City, "error", err)
		return
	}

	resp := planResponse{City: req.City, Days: req.Days}
	if result.OK() {
		resp.Outcome = string(domain.OutcomeRendered)
		resp.Plan = result.Parsed
	} else {
		resp.Outcome = string(domain.OutcomeParseFailed)
		resp.RawText = result.RawText
		resp.ParseError = result.ParseError
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("PlanAPI response encode failed", "error", err)
	}
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := Spec(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	}

	resp := map[string]string{
		"app":         "tripweaver-http",
		"version":     strings.TrimSpace(s.version),
		"api_version": apiVersion,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := errorTmpl.Execute(w, map[string]string{"Message": message}); err != nil {
		s.logger.Error("Error page render failed", "error", err)
	}
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>TripWeaver API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
