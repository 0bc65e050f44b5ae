package main

import (
	"context"
	"net/http"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/pflag"

	"github.com/your-org/vamdc-mcp-server/spectral"
)

const (
	serverName    = "VAMDC MCP Server"
	serverVersion = "1.0.0"
)

var (
	logger hclog.Logger
	svc    *spectral.Service
)

func main() {
	transport := pflag.String("transport", envOr("MCP_TRANSPORT", "http"), "transport protocol: 'http' (SSE + streamable HTTP + REST) or 'stdio'")
	port := pflag.String("port", envOr("MCP_PORT", "8888"), "port to listen on (http transport only)")
	pflag.Parse()

	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "vamdc-mcp",
		Level:  hclog.LevelFromString(envOr("LOG_LEVEL", "info")),
		Output: os.Stderr,
	})

	svc = spectral.NewService(newCatalog(), spectral.NewTAPLineClient(), logger.Named("spectral"))

	if err := initAuditLog(); err != nil {
		logger.Warn("query audit log disabled", "error", err)
	}

	mcpServer := server.NewMCPServer(serverName, serverVersion)

	mcpServer.AddTool(
		mcp.NewTool("ping", mcp.WithDescription("Health check tool")),
		instrument("ping", pingHandler),
	)
	mcpServer.AddTool(getServerInfoToolDef, instrument("get_server_info", handleGetServerInfo))
	mcpServer.AddTool(getNodesToolDef, instrument("get_nodes", handleGetNodes))
	mcpServer.AddTool(getSpeciesToolDef, instrument("get_species", handleGetSpecies))
	mcpServer.AddTool(getSpeciesByNodeToolDef, instrument("get_species_by_node", handleGetSpeciesByNode))
	mcpServer.AddTool(getLinesToolDef, instrument("get_lines", handleGetLines))
	mcpServer.AddTool(queryStatsToolDef, instrument("query_stats", handleQueryStats))

	if *transport == "stdio" {
		logger.Info("starting MCP server on stdio")
		stdioServer := server.NewStdioServer(mcpServer)
		if err := stdioServer.Listen(context.Background(), os.Stdin, os.Stdout); err != nil {
			logger.Error("stdio server exited", "error", err)
			os.Exit(1)
		}
		return
	}

	baseURL := envOr("MCP_BASE_URL", "http://localhost:"+*port)

	sseServer := server.NewSSEServer(mcpServer,
		server.WithBaseURL(baseURL),
		server.WithStaticBasePath("/mcp"),
	)
	streamableServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithEndpointPath("/mcp-http"),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp-http", streamableServer)
	mux.Handle("/mcp/sse", sseServer)
	mux.Handle("/mcp/message", sseServer)

	rest := &RESTHandler{svc: svc}
	rest.Register(mux)

	listenAddr := ":" + *port
	logger.Info("starting MCP server",
		"addr", listenAddr,
		"sse", "/mcp/sse",
		"streamable_http", "/mcp-http",
		"rest", "/mcp/*",
		"docs", "/docs/")

	if err := http.ListenAndServe(listenAddr, mux); err != nil {
		logger.Error("http server exited", "error", err)
		os.Exit(1)
	}
}

// newCatalog prefers the PostgreSQL species mirror when DATABASE_URL is set
// and falls back to the public species database API.
func newCatalog() spectral.Catalog {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pg, err := spectral.NewPGCatalog(context.Background(), dsn)
		if err != nil {
			logger.Warn("database connection failed, using species API", "error", err)
		} else {
			logger.Info("using PostgreSQL species mirror")
			return pg
		}
	}
	return spectral.NewSpeciesAPIClient(os.Getenv("SPECIES_API_URL"))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// pingHandler is the health check tool implementation.
func pingHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong"), nil
}
