package api

import (
	"errors"
	"fmt"
	"net/http"

	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/analysis"
	"github.com/okian/scout/internal/domain/catalog"
	"github.com/okian/scout/internal/domain/dataset"
	"github.com/okian/scout/internal/domain/scoring"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrPayloadTooLarge = errors.New("payload too large")
)

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

// writeServiceError maps a service failure onto a status code and error body.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		maxErr *http.MaxBytesError
		ime    *scoring.InsufficientMetricsError
	)
	switch {
	case errors.As(err, &maxErr), errors.Is(err, ErrPayloadTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", err)
	case errors.As(err, &ime):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:    "insufficient_metrics",
			Message: err.Error(),
			Missing: ime.Missing,
		})
	case errors.Is(err, analysis.ErrUndefinedCorrelation):
		writeError(w, http.StatusUnprocessableEntity, "undefined_correlation", err)
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "dataset_not_found", err)
	case errors.Is(err, catalog.ErrConfigNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, dataset.ErrMissingColumn):
		writeError(w, http.StatusBadRequest, "missing_column", err)
	case errors.Is(err, dataset.ErrDataLoad):
		writeError(w, http.StatusBadRequest, "invalid_dataset", err)
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrProfileNotOffered),
		errors.Is(err, analysis.ErrUnknownMetric):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "unavailable", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
