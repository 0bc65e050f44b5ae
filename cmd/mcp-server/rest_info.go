package main

import "net/http"

// handleServerInfo handles GET /mcp/server_info
//
// @Summary     Get server info
// @Tags        reference
// @Produce     json
func (h *RESTHandler) handleServerInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, serverInfo())
}

// handleOpenAPI handles GET /mcp/openapi.json
//
// @Summary     OpenAPI specification
// @Tags        reference
// @Produce     json
func (h *RESTHandler) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, openAPIDocument)
}
