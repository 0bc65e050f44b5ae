// Command simple-client is a synchronous JSON-RPC test client for the VAMDC
// MCP server. It posts tools/list and tools/call requests over plain HTTP,
// walking the candidate endpoint paths the server variants expose.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// endpointSuffixes are tried in order until one answers with valid JSON.
var endpointSuffixes = []string{"", "/message", "/sse", "/mcp"}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      int       `json:"id"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params,omitempty"`
}

type rpcParams struct {
	Name      string         `json:"name,omitempty"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

func main() {
	serverURL := pflag.String("server", "http://localhost:8888", "base URL of the MCP server")
	toolName := pflag.String("tool", "", "tool to call (omit with --list to only list tools)")
	argsJSON := pflag.String("args", "{}", "tool arguments as a JSON object")
	list := pflag.Bool("list", false, "list available tools and exit")
	pflag.Parse()

	if *list {
		result, err := listTools(*serverURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		printJSON(result)
		return
	}

	if *toolName == "" {
		fmt.Fprintln(os.Stderr, "error: --tool is required unless --list is given")
		pflag.Usage()
		os.Exit(2)
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(*argsJSON), &args); err != nil {
		fmt.Fprintln(os.Stderr, "error: --args must be a JSON object:", err)
		os.Exit(2)
	}

	result, err := callTool(*serverURL, *toolName, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	printJSON(result)
}

// callTool sends a tools/call request, trying each endpoint suffix in turn.
func callTool(serverURL, name string, args map[string]any) (map[string]any, error) {
	return postRPC(serverURL, rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  rpcParams{Name: name, Arguments: args},
	})
}

// listTools sends a tools/list request.
func listTools(serverURL string) (map[string]any, error) {
	return postRPC(serverURL, rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/list",
	})
}

func postRPC(serverURL string, req rpcRequest) (map[string]any, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var lastErr error
	for _, suffix := range endpointSuffixes {
		url := serverURL + suffix
		fmt.Fprintf(os.Stderr, "trying %s\n", url)

		result, err := postOnce(url, body)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", url, err)
			continue
		}
		return result, nil
	}
	return nil, fmt.Errorf("all endpoints failed, last error: %w", lastErr)
}

func postOnce(url string, body []byte) (map[string]any, error) {
	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json, text/event-stream")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(data))
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	return result, nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
