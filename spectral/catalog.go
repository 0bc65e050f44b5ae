package spectral

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Catalog supplies the full species and node tables. Implementations do
// their own networking and caching; the pipeline always asks for everything
// and filters locally.
type Catalog interface {
	GetAll(ctx context.Context) ([]Species, []Node, error)
}

const defaultSpeciesAPIURL = "https://species.vamdc.eu/web-service/api/v12.07"

// SpeciesAPIClient is the HTTP-backed Catalog talking to the VAMDC species
// database web service.
type SpeciesAPIClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewSpeciesAPIClient returns a client for the species database API.
// An empty baseURL selects the public VAMDC endpoint.
func NewSpeciesAPIClient(baseURL string) *SpeciesAPIClient {
	if baseURL == "" {
		baseURL = defaultSpeciesAPIURL
	}
	return &SpeciesAPIClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
	}
}

// GetAll fetches the complete species and node tables, always unfiltered.
func (c *SpeciesAPIClient) GetAll(ctx context.Context) ([]Species, []Node, error) {
	var species []Species
	if err := c.getJSON(ctx, "/species", &species); err != nil {
		return nil, nil, err
	}
	var nodes []Node
	if err := c.getJSON(ctx, "/nodes", &nodes); err != nil {
		return nil, nil, err
	}
	return species, nodes, nil
}

func (c *SpeciesAPIClient) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.doGet(ctx, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return nil
}

func (c *SpeciesAPIClient) doGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("no response from species database: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("species database error (%d): %s", resp.StatusCode, resp.Status)
	}

	return body, nil
}
