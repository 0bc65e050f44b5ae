package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/your-org/vamdc-mcp-server/spectral"
)

var getSpeciesByNodeToolDef = mcp.NewTool("get_species_by_node",
	mcp.WithDescription("Gets chemical species data from a specific database node, identified by its TAP endpoint URL (exact match). Returns a markdown table with the same columns as get_species, restricted to that node. Example node_url: \"http://vald.astro.uu.se/atoms-12.07/tap/\""),
	mcp.WithString("node_url",
		mcp.Required(),
		mcp.Description("The TAP endpoint URL of the database node to query"),
	),
	mcp.WithReadOnlyHintAnnotation(true),
)

func handleGetSpeciesByNode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeURL, err := req.RequireString("node_url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	species, err := svc.ListSpeciesByNode(ctx, nodeURL)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(spectral.SpeciesMarkdownTable(species)), nil
}
