// Package main provides the VAMDC MCP server with a plain HTTP/JSON layer.
//
// Both surfaces delegate to the same spectral.Service pipeline; the REST
// routes return raw JSON records, the MCP tools return markdown tables for
// species/nodes and JSON for lines.
package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/your-org/vamdc-mcp-server/spectral"
)

// RESTHandler wires the /mcp/* JSON routes onto a mux.
type RESTHandler struct {
	svc *spectral.Service
}

// Register attaches the /mcp/* routes and the /docs/ Swagger UI to mux.
// Everything else falls through to an empty 404.
func (h *RESTHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/mcp/lines", h.handleLines)
	mux.HandleFunc("/mcp/species", h.handleSpecies)
	mux.HandleFunc("/mcp/nodes", h.handleNodes)
	mux.HandleFunc("/mcp/server_info", h.handleServerInfo)
	mux.HandleFunc("/mcp/openapi.json", h.handleOpenAPI)

	// Swagger UI rendering the hand-maintained OpenAPI document.
	mux.Handle("/docs/", httpSwagger.Handler(
		httpSwagger.URL("/mcp/openapi.json"),
	))

	mux.HandleFunc("/", h.handleNotFound)
}

func (h *RESTHandler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

// writeJSON writes v as a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// writeFailure turns any pipeline error into a 500 whose body is the error
// text as plain text. No structured error code is produced.
func writeFailure(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = io.WriteString(w, err.Error())
}

// jsonResult serializes v to indented JSON and returns it as a tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to serialize response"), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
