package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/analysis"
)

// CorrelationDependencies defines the interface for metric correlation.
type CorrelationDependencies interface {
	Correlate(ctx context.Context, req service.AnalysisRequest, x, y string) (*analysis.Correlation, error)
}

// CorrelationHandler handles metric correlation requests.
type CorrelationHandler struct {
	deps CorrelationDependencies
}

// NewCorrelationHandler creates a new correlation handler.
func NewCorrelationHandler(deps CorrelationDependencies) *CorrelationHandler {
	return &CorrelationHandler{deps: deps}
}

// HandleCorrelation handles GET /datasets/{id}/correlation requests. It accepts the
// rankings query plus the metric names x and y.
func (h *CorrelationHandler) HandleCorrelation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := parseAnalysisRequest(chi.URLParam(r, "id"), q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	x, y := strings.TrimSpace(q.Get("x")), strings.TrimSpace(q.Get("y"))
	if x == "" || y == "" {
		writeServiceError(w, badRequest("query parameters x and y are required"))
		return
	}
	out, err := h.deps.Correlate(r.Context(), req, x, y)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
