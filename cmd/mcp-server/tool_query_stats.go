package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

var queryStatsToolDef = mcp.NewTool("query_stats",
	mcp.WithDescription("Get per-tool usage statistics from this server's query audit log (diagnostic tool)."),
	mcp.WithReadOnlyHintAnnotation(true),
)

func handleQueryStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !auditAvailable() {
		return mcp.NewToolResultText("Query audit log not initialized"), nil
	}

	stats, err := toolUsageStats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read audit log: %v", err)), nil
	}

	return jsonResult(map[string]any{
		"count": len(stats),
		"tools": stats,
	})
}
