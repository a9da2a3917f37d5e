// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/analysis"
	"github.com/okian/scout/internal/domain/catalog"
)

// DefaultMaxUploadBytes bounds a dataset upload when no limit is configured.
const DefaultMaxUploadBytes int64 = 32 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	StatsProvider

	// Catalog exposes positions and profiles.
	Catalog() *catalog.Catalog

	// Dataset sessions.
	LoadDataset(ctx context.Context, name string, r io.Reader) (service.DatasetInfo, error)
	DatasetInfo(ctx context.Context, id string) (service.DatasetInfo, error)
	DeleteDataset(ctx context.Context, id string) error

	// Analysis runs.
	Analyze(ctx context.Context, req service.AnalysisRequest) (*service.Analysis, error)
	Correlate(ctx context.Context, req service.AnalysisRequest, x, y string) (*analysis.Correlation, error)
}

// Option configures a Server.
type Option func(*Server)

// WithMaxUploadBytes caps the request body of a dataset upload.
func WithMaxUploadBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	datasetsHandler    *DatasetsHandler
	catalogHandler     *CatalogHandler
	rankingsHandler    *RankingsHandler
	correlationHandler *CorrelationHandler

	maxUploadBytes int64
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{maxUploadBytes: DefaultMaxUploadBytes}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(deps)
	s.datasetsHandler = NewDatasetsHandler(deps, s.maxUploadBytes)
	s.catalogHandler = NewCatalogHandler(deps)
	s.rankingsHandler = NewRankingsHandler(deps)
	s.correlationHandler = NewCorrelationHandler(deps)
	return s
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Handle("/metrics", s.healthHandler.MetricsHandler())
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/positions", MetricsMiddleware(s.catalogHandler.HandlePositions, "catalog_positions"))
		r.Get("/profiles", MetricsMiddleware(s.catalogHandler.HandleProfiles, "catalog_profiles"))
		r.Get("/profile", MetricsMiddleware(s.catalogHandler.HandleProfile, "catalog_profile"))
	})

	r.Route("/datasets", func(r chi.Router) {
		r.Post("/", MetricsMiddleware(s.datasetsHandler.HandleUpload, "datasets_upload"))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", MetricsMiddleware(s.datasetsHandler.HandleGet, "datasets_get"))
			r.Delete("/", MetricsMiddleware(s.datasetsHandler.HandleDelete, "datasets_delete"))
			r.Get("/rankings", MetricsMiddleware(s.rankingsHandler.HandleRankings, "rankings"))
			r.Get("/correlation", MetricsMiddleware(s.correlationHandler.HandleCorrelation, "correlation"))
		})
	})
}

// Routes returns a router with every API route registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	s.Register(r)
	return r
}

type errorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
