package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/filter"
)

// AnalysisDependencies defines the interface for scoring runs.
type AnalysisDependencies interface {
	Analyze(ctx context.Context, req service.AnalysisRequest) (*service.Analysis, error)
}

// RankingsHandler handles ranking requests.
type RankingsHandler struct {
	deps AnalysisDependencies
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps AnalysisDependencies) *RankingsHandler {
	return &RankingsHandler{deps: deps}
}

// HandleRankings handles GET /datasets/{id}/rankings requests.
// An empty pool answers 200 with noPlayers set.
func (h *RankingsHandler) HandleRankings(w http.ResponseWriter, r *http.Request) {
	req, err := parseAnalysisRequest(chi.URLParam(r, "id"), r.URL.Query())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out, err := h.deps.Analyze(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func parseAnalysisRequest(id string, q url.Values) (service.AnalysisRequest, error) {
	req := service.AnalysisRequest{
		DatasetID: id,
		Position:  strings.TrimSpace(q.Get("position")),
		Profile:   strings.TrimSpace(q.Get("profile")),
	}
	if req.Position == "" {
		return req, badRequest("query parameter position is required")
	}
	if v := q.Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return req, badRequest("invalid top %q", v)
		}
		req.TopN = n
	}

	var c filter.Criteria
	for _, b := range []struct {
		key string
		dst **float64
	}{
		{"min_age", &c.MinAge},
		{"max_age", &c.MaxAge},
		{"min_minutes", &c.MinMinutes},
		{"max_minutes", &c.MaxMinutes},
	} {
		v := q.Get(b.key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, badRequest("invalid %s %q", b.key, v)
		}
		*b.dst = &f
	}
	c.Passport = strings.TrimSpace(q.Get("passport"))
	req.Criteria = c
	return req, nil
}
