package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/your-org/vamdc-mcp-server/spectral"
)

var getNodesToolDef = mcp.NewTool("get_nodes",
	mcp.WithDescription("Gets all the database nodes available on the species database. Returns a markdown table with columns: Short Name (node identifier), TAP Endpoint (the URL used to query the node, and the value expected by get_lines listNodes and get_species_by_node), Topics (scientific topics covered by the node)."),
	mcp.WithReadOnlyHintAnnotation(true),
)

func handleGetNodes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodes, err := svc.ListNodes(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(spectral.NodesMarkdownTable(nodes)), nil
}
