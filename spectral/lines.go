package spectral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DatabaseLines is one source database's line table. An empty Database name
// marks a table that arrived without a per-database partition.
type DatabaseLines struct {
	Database string
	Lines    []Line
}

// LineProvider returns spectral lines within a wavelength interval,
// restricted to the given species and node tables, partitioned per source
// database in provider order.
type LineProvider interface {
	GetLines(ctx context.Context, lambdaMin, lambdaMax float64, species []Species, nodes []Node) ([]DatabaseLines, error)
}

// TAPLineClient queries each node's TAP endpoint synchronously and collects
// the per-database line tables in node order.
type TAPLineClient struct {
	httpClient *http.Client
}

func NewTAPLineClient() *TAPLineClient {
	return &TAPLineClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// GetLines queries every node in order. A failure from any one node fails
// the whole call; there are no partial results.
func (c *TAPLineClient) GetLines(ctx context.Context, lambdaMin, lambdaMax float64, species []Species, nodes []Node) ([]DatabaseLines, error) {
	keys := make([]string, 0, len(species))
	for _, s := range species {
		if s.InChIKey != "" {
			keys = append(keys, s.InChIKey)
		}
	}

	var out []DatabaseLines
	for _, node := range nodes {
		tables, err := c.queryNode(ctx, node, lambdaMin, lambdaMax, keys)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", node.ShortName, err)
		}
		for _, t := range tables {
			// An unpartitioned table is attributed to the node that
			// produced it; its own partitions keep their database names.
			if t.Database == "" {
				t.Database = node.ShortName
			}
			out = append(out, t)
		}
	}
	return out, nil
}

func (c *TAPLineClient) queryNode(ctx context.Context, node Node, lambdaMin, lambdaMax float64, inchiKeys []string) ([]DatabaseLines, error) {
	q := fmt.Sprintf("select * where RadTransWavelength >= %g and RadTransWavelength <= %g", lambdaMin, lambdaMax)
	if len(inchiKeys) > 0 {
		quoted := make([]string, len(inchiKeys))
		for i, k := range inchiKeys {
			quoted[i] = "'" + k + "'"
		}
		q += " and InchiKey in (" + strings.Join(quoted, ",") + ")"
	}

	v := url.Values{}
	v.Set("LANG", "VSS2")
	v.Set("FORMAT", "JSON")
	v.Set("QUERY", q)
	u := strings.TrimRight(node.TAPEndpoint, "/") + "/sync?" + v.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("no response from TAP endpoint: %w", err)
	}
	defer resp.Body.Close()

	// 204 means the node holds nothing in this interval.
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("TAP endpoint error (%d): %s", resp.StatusCode, resp.Status)
	}

	return decodeLineTables(body)
}

// decodeLineTables normalizes the two response shapes a line source may
// produce: a mapping from database name to line table, or a single flat
// table. The mapping's key order is preserved by walking the JSON document
// with a token decoder instead of decoding into a Go map.
func decodeLineTables(body []byte) ([]DatabaseLines, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var lines []Line
		if err := json.Unmarshal(trimmed, &lines); err != nil {
			return nil, fmt.Errorf("failed to parse line table: %w", err)
		}
		if len(lines) == 0 {
			return nil, nil
		}
		return []DatabaseLines{{Lines: lines}}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse line tables: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("unexpected line table shape: %v", tok)
	}

	var out []DatabaseLines
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse line tables: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected line table key: %v", keyTok)
		}
		var lines []Line
		if err := dec.Decode(&lines); err != nil {
			return nil, fmt.Errorf("failed to parse line table %q: %w", name, err)
		}
		out = append(out, DatabaseLines{Database: name, Lines: lines})
	}
	return out, nil
}
