package handlers

import (
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
	Venues int    `json:"venues"`
}

// Health provides a liveness check that also reports the loaded collection size.
func (h *VenueHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Venues: len(h.Venues)})
}
