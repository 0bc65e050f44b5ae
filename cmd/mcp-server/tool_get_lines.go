package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

var getLinesToolDef = mcp.NewTool("get_lines",
	mcp.WithDescription("Gets spectral lines data within a specified wavelength range. Returns a list of line records carrying the species identifiers (InChIKey, InChI, formulas), the transition frequency and Einstein A coefficient, upper/lower state energies, statistical weights and quantum numbers, a queryToken, and the source_database that provided each line."),
	mcp.WithNumber("lambda_min",
		mcp.Required(),
		mcp.Description("Lower wavelength bound expressed in Angstrom"),
	),
	mcp.WithNumber("lambda_max",
		mcp.Required(),
		mcp.Description("Upper wavelength bound expressed in Angstrom"),
	),
	mcp.WithArray("listNodes",
		mcp.Description("List of database TAP endpoints (URLs) to restrict the search to. Candidates may be obtained from the get_nodes tool. Example: [\"http://cdms.astro.uni-koeln.de/tap\"]"),
		mcp.WithStringItems(),
	),
	mcp.WithArray("listSpecies",
		mcp.Description("List of species InChIKeys to restrict the search to. Candidates may be obtained from the get_species tool. Example: [\"UGFAIRIUMAVXCW-UHFFFAOYSA-N\"]"),
		mcp.WithStringItems(),
	),
	mcp.WithReadOnlyHintAnnotation(true),
)

func handleGetLines(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lambdaMin, err := req.RequireFloat("lambda_min")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lambdaMax, err := req.RequireFloat("lambda_max")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	listNodes := req.GetStringSlice("listNodes", nil)
	listSpecies := req.GetStringSlice("listSpecies", nil)

	records, err := svc.QueryLines(ctx, lambdaMin, lambdaMax, listNodes, listSpecies)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(records)
}
