package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/your-org/vamdc-mcp-server/spectral"
)

var getSpeciesToolDef = mcp.NewTool("get_species",
	mcp.WithDescription("Gets all the chemical information available on the species database. Returns a markdown table with columns: name, stoichiometricFormula, InChIKey, speciesType (molecule, atom, or particle), charge, massNumber, structuralFormula, shortName (database holding the species), # unique atoms, # total atoms, computed charge, computed mol_weight."),
	mcp.WithReadOnlyHintAnnotation(true),
)

func handleGetSpecies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	species, err := svc.ListSpecies(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(spectral.SpeciesMarkdownTable(species)), nil
}
