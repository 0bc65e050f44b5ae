package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/vamdc-mcp-server/spectral"
)

// resultText unwraps the text payload of a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	for _, c := range res.Content {
		if tc, ok := mcp.AsTextContent(c); ok {
			return tc.Text
		}
	}
	t.Fatal("tool result carries no text content")
	return ""
}

func setTestService(t *testing.T, catalog spectral.Catalog, lines spectral.LineProvider) {
	t.Helper()
	prev := svc
	svc = spectral.NewService(catalog, lines, nil)
	t.Cleanup(func() { svc = prev })
}

func TestPingTool(t *testing.T) {
	res, err := pingHandler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.Equal(t, "pong", resultText(t, res))
}

func TestGetServerInfoTool(t *testing.T) {
	res, err := handleGetServerInfo(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &info))
	assert.Equal(t, serverName, info["server_name"])
	assert.Contains(t, info["available_tools"], "get_species_by_node")
}

func TestGetSpeciesToolRendersMarkdown(t *testing.T) {
	setTestService(t, testCatalog(), &fakeLineProvider{})

	res, err := handleGetSpecies(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	lines := strings.Split(text, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "| name |"))
	assert.True(t, strings.HasPrefix(lines[1], "|---|"))
	assert.Contains(t, text, "| Water |")
	assert.Contains(t, text, "UGFAIRIUMAVXCW-UHFFFAOYSA-N")
}

func TestGetNodesToolRendersMarkdown(t *testing.T) {
	setTestService(t, testCatalog(), &fakeLineProvider{})

	res, err := handleGetNodes(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "|------------|--------------|--------|")
	assert.Contains(t, text, "CDMS")
	assert.Contains(t, text, "astrophysics, planetary")
}

func TestGetSpeciesByNodeTool(t *testing.T) {
	setTestService(t, testCatalog(), &fakeLineProvider{})

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"node_url": "http://jpl.example.org/tap"}

	res, err := handleGetSpeciesByNode(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "Carbon monoxide")
	assert.NotContains(t, text, "| Water |")
}

func TestGetSpeciesByNodeToolMissingParam(t *testing.T) {
	setTestService(t, testCatalog(), &fakeLineProvider{})

	res, err := handleGetSpeciesByNode(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestGetLinesTool(t *testing.T) {
	provider := &fakeLineProvider{
		tables: []spectral.DatabaseLines{
			{Database: "CDMS", Lines: []spectral.Line{{InChIKey: "UGFAIRIUMAVXCW-UHFFFAOYSA-N", Frequency: 115271.2}}},
		},
	}
	setTestService(t, testCatalog(), provider)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"lambda_min":  26000.0,
		"lambda_max":  26010.0,
		"listSpecies": []any{"UGFAIRIUMAVXCW-UHFFFAOYSA-N"},
	}

	res, err := handleGetLines(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "CDMS", records[0]["source_database"])
}

func TestGetLinesToolMissingBound(t *testing.T) {
	setTestService(t, testCatalog(), &fakeLineProvider{})

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"lambda_max": 26010.0}

	res, err := handleGetLines(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestQueryStatsToolWithoutAuditLog(t *testing.T) {
	res, err := handleQueryStats(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Query audit log not initialized", resultText(t, res))
}
