package main

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// instrument wraps a tool handler with duration logging and the async
// query audit log.
func instrument(
	name string,
	h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {

	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		res, err := h(ctx, req)

		duration := time.Since(start)

		resultCount := 0
		if res != nil {
			resultCount = len(res.Content)
		}

		args := map[string]any{}
		if m, ok := req.Params.Arguments.(map[string]any); ok {
			args = m
		}

		logQueryAsync(name, args, resultCount, duration)
		logger.Debug("tool call",
			"tool", name,
			"duration_ms", duration.Milliseconds(),
			"failed", err != nil || (res != nil && res.IsError))

		return res, err
	}
}
