package main

import "net/http"

// handleNodes handles GET /mcp/nodes
//
// @Summary     Get all database nodes
// @Tags        nodes
// @Produce     json
func (h *RESTHandler) handleNodes(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.svc.ListNodes(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nodes)
}
