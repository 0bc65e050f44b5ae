package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

var getServerInfoToolDef = mcp.NewTool("get_server_info",
	mcp.WithDescription("Get information about the VAMDC MCP server and available capabilities: server name, version, the list of available tools, and the endpoint descriptions."),
	mcp.WithReadOnlyHintAnnotation(true),
)

// serverInfo is shared by the get_server_info tool and GET /mcp/server_info.
func serverInfo() map[string]any {
	return map[string]any{
		"server_name":     serverName,
		"version":         serverVersion,
		"available_tools": []string{"get_server_info", "get_nodes", "get_species", "get_species_by_node", "get_lines"},
		"description":     "Server for accessing VAMDC spectroscopic databases",
		"endpoints": map[string]any{
			"server_info":     "Get server information and capabilities",
			"species":         "Get all available chemical species",
			"nodes":           "Get all available database nodes",
			"species_by_node": "Get chemical species from a specific database node",
			"lines":           "Get spectral lines within wavelength range",
			"openapi.json":    "OpenAPI specification for this server",
		},
	}
}

func handleGetServerInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(serverInfo())
}
