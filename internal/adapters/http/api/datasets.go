package api

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	service "github.com/okian/scout/internal/app"
)

// uploadField is the multipart form field carrying the dataset file.
const uploadField = "file"

// DatasetDependencies defines the dataset session operations.
type DatasetDependencies interface {
	LoadDataset(ctx context.Context, name string, r io.Reader) (service.DatasetInfo, error)
	DatasetInfo(ctx context.Context, id string) (service.DatasetInfo, error)
	DeleteDataset(ctx context.Context, id string) error
}

// DatasetsHandler handles dataset upload and session requests.
type DatasetsHandler struct {
	deps     DatasetDependencies
	maxBytes int64
}

// NewDatasetsHandler creates a new datasets handler.
func NewDatasetsHandler(deps DatasetDependencies, maxBytes int64) *DatasetsHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &DatasetsHandler{deps: deps, maxBytes: maxBytes}
}

// HandleUpload handles POST /datasets requests.
// The file is read from the multipart field "file", or from the raw body when the
// request is not multipart; the raw form needs ?name= to pick the format.
func (h *DatasetsHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxBytes {
		writeServiceError(w, ErrPayloadTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	name, body, err := uploadSource(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	info, err := h.deps.LoadDataset(r.Context(), name, body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Location", "/datasets/"+info.ID)
	writeJSON(w, http.StatusCreated, info)
}

// HandleGet handles GET /datasets/{id} requests.
func (h *DatasetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	info, err := h.deps.DatasetInfo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// HandleDelete handles DELETE /datasets/{id} requests.
func (h *DatasetsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.DeleteDataset(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func uploadSource(r *http.Request) (string, io.Reader, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			return "", nil, badRequest("query parameter name is required for a raw upload")
		}
		return filepath.Base(name), r.Body, nil
	}

	mr, err := r.MultipartReader()
	if err != nil {
		return "", nil, badRequest("read multipart form: %v", err)
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return "", nil, badRequest("multipart form has no %q field", uploadField)
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, err
		}
		if err != nil {
			return "", nil, badRequest("read multipart form: %v", err)
		}
		if part.FormName() != uploadField {
			continue
		}
		name := part.FileName()
		if name == "" {
			name = r.URL.Query().Get("name")
		}
		if strings.TrimSpace(name) == "" {
			return "", nil, badRequest("uploaded file has no name")
		}
		return filepath.Base(name), part, nil
	}
}
