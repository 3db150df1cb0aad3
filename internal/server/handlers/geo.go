// internal/server/handlers/geo.go

package handlers

import (
	"net/http"
	"time"

	"newsdash/internal/domain/geo"
	"newsdash/internal/service/filter"
	"newsdash/internal/view"
)

// GeoHandler serves the conflict map panel.
type GeoHandler struct {
	repo  geo.Repository
	clock func() time.Time
}

// NewGeoHandler creates a geo handler.
func NewGeoHandler(repo geo.Repository) *GeoHandler {
	return &GeoHandler{repo: repo, clock: time.Now}
}

// GetHotspots returns map markers for the selected region and criteria.
// The region filter applies the fixed coordinate-distance threshold.
func (h *GeoHandler) GetHotspots(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	limit := parseLimit(r, 0)

	spots, err := h.repo.Hotspots(r.Context(), criteria)
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Hotspot data unavailable", err)
		return
	}

	ranked := filter.Apply(criteria, spots, limit, h.clock())
	respondWithJSON(w, http.StatusOK, view.MapMarkers(ranked))
}
