package main

// openAPIDocument is the hand-maintained OpenAPI description served at
// /mcp/openapi.json and rendered by the /docs/ Swagger UI.
var openAPIDocument = map[string]any{
	"openapi": "3.0.0",
	"info": map[string]any{
		"title":       serverName,
		"version":     serverVersion,
		"description": "HTTP server for the VAMDC MCP pipeline, exposing spectral lines, species, and nodes.",
	},
	"paths": map[string]any{
		"/mcp/lines": map[string]any{
			"get": map[string]any{
				"summary":     "Get spectral lines within a wavelength range",
				"description": "Gets spectral lines data within a specified wavelength range, optionally restricted to specific database nodes and species.",
				"parameters": []any{
					map[string]any{
						"name":        "lambda_min",
						"in":          "query",
						"required":    true,
						"schema":      map[string]any{"type": "number"},
						"description": "Lower wavelength bound in Angstrom (mandatory)",
					},
					map[string]any{
						"name":        "lambda_max",
						"in":          "query",
						"required":    true,
						"schema":      map[string]any{"type": "number"},
						"description": "Upper wavelength bound in Angstrom (mandatory)",
					},
					map[string]any{
						"name":        "listNodes",
						"in":          "query",
						"required":    false,
						"schema":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"description": "List of database tap-endpoints (URLs) to filter the search by specific databases.",
					},
					map[string]any{
						"name":        "listSpecies",
						"in":          "query",
						"required":    false,
						"schema":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"description": "List of InChIKeys of species to filter the search by.",
					},
				},
				"responses": map[string]any{
					"200": map[string]any{
						"description": "A list of dictionaries containing spectral line information.",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"InChIKey":                         map[string]any{"type": "string", "description": "InChI Key chemical unique identifier for the species"},
											"InChI":                            map[string]any{"type": "string", "description": "InChI chemical unique identifier for the species"},
											"Chemical name":                    map[string]any{"type": "string", "description": "Human readable name of the chemical species"},
											"Stoichiometric formula":           map[string]any{"type": "string", "description": "Stoichiometric formula of the species"},
											"Ordinary structural formula":      map[string]any{"type": "string", "description": "Structural formula of the species"},
											"Frequency":                        map[string]any{"type": "number", "description": "Frequency of the spectral line"},
											"A":                                map[string]any{"type": "number", "description": "Einstein A coefficient for the transition"},
											"Lower energy(1/cm)":               map[string]any{"type": "number", "description": "Lower state energy in wavenumbers (1/cm)"},
											"Lower total statistical weight":   map[string]any{"type": "integer", "description": "Total statistical weight of the lower state"},
											"Lower nuclear statistical weight": map[string]any{"type": "integer", "description": "Nuclear statistical weight of the lower state"},
											"Lower QNs":                        map[string]any{"type": "string", "description": "Quantum numbers of the lower state"},
											"Upper energy(1/cm)":               map[string]any{"type": "number", "description": "Upper state energy in wavenumbers (1/cm)"},
											"Upper total statistical weight":   map[string]any{"type": "integer", "description": "Total statistical weight of the upper state"},
											"Upper nuclear statistical weight": map[string]any{"type": "integer", "description": "Nuclear statistical weight of the upper state"},
											"Upper QNs":                        map[string]any{"type": "string", "description": "Quantum numbers of the upper state"},
											"queryToken":                       map[string]any{"type": "string", "description": "Token identifying the query that produced this line"},
											"source_database":                  map[string]any{"type": "string", "description": "Name of the database that provided this line data"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
		"/mcp/species": map[string]any{
			"get": map[string]any{
				"summary":     "Get all chemical species",
				"description": "Gets all the chemical information available on the species database.",
				"responses": map[string]any{
					"200": map[string]any{
						"description": "A list of dictionaries, each containing chemical species information.",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"shortname":               map[string]any{"type": "string", "description": "Human readable name for the database containing the current species"},
											"ivoIdentifier":           map[string]any{"type": "string", "description": "Unique identifier for the database containing the current species"},
											"InChI":                   map[string]any{"type": "string", "description": "InChI chemical unique identifier for the current species"},
											"InChIKey":                map[string]any{"type": "string", "description": "InChIKey derived from the InChI for the current species"},
											"stoichiometricFormula":   map[string]any{"type": "string", "description": "Stoichiometric formula for the current species"},
											"massNumber":              map[string]any{"type": "integer", "description": "Mass number for the current species"},
											"charge":                  map[string]any{"type": "integer", "description": "Electric charge for the current species"},
											"speciesType":             map[string]any{"type": "string", "description": "Type (admitted values are 'molecule', 'atom', 'particle') for the current species"},
											"structuralFormula":       map[string]any{"type": "string", "description": "Structural formula for the current species"},
											"name":                    map[string]any{"type": "string", "description": "Human readable species name for the current species"},
											"did":                     map[string]any{"type": "string", "description": "Alternative unique identifier for the current species"},
											"tapEndpoint":             map[string]any{"type": "string", "description": "Database TAP-endpoint URL for the database containing the current species"},
											"lastIngestionScriptDate": map[string]any{"type": "string", "format": "date", "description": "Last ingestion script execution for the database containing the current species"},
											"speciesLastSeenOn":       map[string]any{"type": "string", "format": "date", "description": "Last time species was updated for the database containing the current species"},
											"# unique atoms":          map[string]any{"type": "integer", "description": "Number of unique atoms in the current species"},
											"# total atoms":           map[string]any{"type": "integer", "description": "Total number of atoms in the current species"},
											"computed charge":         map[string]any{"type": "integer", "description": "Computed charge for the current species"},
											"computed mass number":    map[string]any{"type": "number", "description": "Computed mass number for the current species"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
		"/mcp/nodes": map[string]any{
			"get": map[string]any{
				"summary":     "Get all database nodes",
				"description": "Gets all the nodes available on the species database.",
				"responses": map[string]any{
					"200": map[string]any{
						"description": "A list of dictionaries, each containing node information.",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"shortName":     map[string]any{"type": "string", "description": "Short name identifier for the database node"},
											"description":   map[string]any{"type": "string", "description": "Descriptive text about the database node"},
											"contactEmail":  map[string]any{"type": "string", "description": "Email address for contacting the node maintainer"},
											"ivoIdentifier": map[string]any{"type": "string", "description": "Unique IVO (International Virtual Observatory) identifier for the node"},
											"tapEndpoint":   map[string]any{"type": "string", "description": "TAP (Table Access Protocol) endpoint URL for the database node"},
											"referenceUrl":  map[string]any{"type": "string", "description": "Reference URL with additional information about the node"},
											"lastUpdate":    map[string]any{"type": "string", "format": "date", "description": "Date when the node was last updated"},
											"lastSeen":      map[string]any{"type": "string", "format": "date", "description": "Date when the node was last seen/accessed"},
											"topics":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "List of strings describing the scientific topics covered by the node"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
		"/mcp/server_info": map[string]any{
			"get": map[string]any{
				"summary":     "Get server info",
				"description": "Get information about the VAMDC MCP server and available capabilities.",
				"responses": map[string]any{
					"200": map[string]any{
						"description": "Server info",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"server_name":     map[string]any{"type": "string"},
										"version":         map[string]any{"type": "string"},
										"available_tools": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
										"description":     map[string]any{"type": "string"},
										"endpoints": map[string]any{
											"type": "object",
											"properties": map[string]any{
												"species": map[string]any{"type": "string"},
												"nodes":   map[string]any{"type": "string"},
												"lines":   map[string]any{"type": "string"},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
		"/mcp/openapi.json": map[string]any{
			"get": map[string]any{
				"summary":     "OpenAPI specification",
				"description": "Returns the OpenAPI JSON specification for this server.",
				"responses": map[string]any{
					"200": map[string]any{
						"description": "OpenAPI JSON",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"type": "object"},
							},
						},
					},
				},
			},
		},
	},
}
