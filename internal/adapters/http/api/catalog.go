package api

import (
	"net/http"

	"github.com/okian/scout/internal/domain/catalog"
)

// CatalogProvider exposes the profile catalog.
type CatalogProvider interface {
	Catalog() *catalog.Catalog
}

// CatalogHandler handles position and profile lookups.
type CatalogHandler struct {
	deps CatalogProvider
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps CatalogProvider) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// HandlePositions handles GET /catalog/positions requests.
func (h *CatalogHandler) HandlePositions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Catalog().Positions())
}

// HandleProfiles handles GET /catalog/profiles requests. With ?position= it lists the
// profile names that position offers; otherwise every profile.
func (h *CatalogHandler) HandleProfiles(w http.ResponseWriter, r *http.Request) {
	c := h.deps.Catalog()
	position := r.URL.Query().Get("position")
	if position == "" {
		writeJSON(w, http.StatusOK, c.Profiles())
		return
	}
	names, err := c.ProfilesFor(position)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// HandleProfile handles GET /catalog/profile?name= requests.
func (h *CatalogHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeServiceError(w, badRequest("query parameter name is required"))
		return
	}
	p, err := h.deps.Catalog().Profile(name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
