package main

import "net/http"

// handleSpecies handles GET /mcp/species
//
// @Summary     Get all chemical species
// @Tags        species
// @Produce     json
func (h *RESTHandler) handleSpecies(w http.ResponseWriter, r *http.Request) {
	species, err := h.svc.ListSpecies(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, species)
}
