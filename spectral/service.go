package spectral

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/semaphore"
)

// ErrMissingParameter reports a required wavelength bound that is absent or
// not numeric.
var ErrMissingParameter = errors.New("missing required parameter")

// RetrievalError wraps a failure from the catalog or line provider. The
// provider's own message is carried through unchanged.
type RetrievalError struct {
	Source string
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s retrieval failed: %v", e.Source, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// defaultMaxProviderCalls bounds concurrently in-flight provider calls
// across all requests.
const defaultMaxProviderCalls = 8

// Service is the query-and-reshape pipeline shared by the MCP tools and the
// REST routes. It holds no per-request state; every entity it returns lives
// for the duration of one call.
type Service struct {
	catalog Catalog
	lines   LineProvider
	log     hclog.Logger
	gate    *semaphore.Weighted
}

func NewService(catalog Catalog, lines LineProvider, log hclog.Logger) *Service {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Service{
		catalog: catalog,
		lines:   lines,
		log:     log,
		gate:    semaphore.NewWeighted(defaultMaxProviderCalls),
	}
}

// fetchCatalog runs the blocking catalog call through the provider gate.
func (s *Service) fetchCatalog(ctx context.Context) ([]Species, []Node, error) {
	if err := s.gate.Acquire(ctx, 1); err != nil {
		return nil, nil, err
	}
	defer s.gate.Release(1)
	return s.catalog.GetAll(ctx)
}

// QueryLines fetches the catalog, applies the optional node and species
// filters, queries the line provider, and flattens the per-database tables
// into one sequence stamped with source_database. Output order is provider
// database order, then row order; no cross-database sort or dedup. Any
// provider failure aborts the whole call.
func (s *Service) QueryLines(ctx context.Context, lambdaMin, lambdaMax float64, nodeFilter, speciesFilter []string) ([]Line, error) {
	allSpecies, allNodes, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, &RetrievalError{Source: "catalog", Err: err}
	}

	if len(nodeFilter) > 0 {
		allNodes, err = FilterNodesContaining(allNodes, "tapEndpoint", nodeFilter)
		if err != nil {
			return nil, err
		}
	}
	if len(speciesFilter) > 0 {
		allSpecies, err = FilterSpeciesContaining(allSpecies, "InChIKey", speciesFilter)
		if err != nil {
			return nil, err
		}
	}

	s.log.Debug("querying lines",
		"lambda_min", lambdaMin, "lambda_max", lambdaMax,
		"species", len(allSpecies), "nodes", len(allNodes))

	if err := s.gate.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	tables, err := s.lines.GetLines(ctx, lambdaMin, lambdaMax, allSpecies, allNodes)
	s.gate.Release(1)
	if err != nil {
		return nil, &RetrievalError{Source: "lines", Err: err}
	}

	records := make([]Line, 0)
	for _, t := range tables {
		for _, line := range t.Lines {
			line.SourceDatabase = t.Database
			records = append(records, line)
		}
	}
	return records, nil
}

// ListSpecies returns the full species table.
func (s *Service) ListSpecies(ctx context.Context) ([]Species, error) {
	species, _, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, &RetrievalError{Source: "catalog", Err: err}
	}
	return species, nil
}

// ListNodes returns the full node table.
func (s *Service) ListNodes(ctx context.Context) ([]Node, error) {
	_, nodes, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, &RetrievalError{Source: "catalog", Err: err}
	}
	return nodes, nil
}

// ListSpeciesByNode returns the species whose tapEndpoint equals nodeURL.
// This is an exact match, unlike the substring filter used for line
// queries. No match yields an empty slice, not an error.
func (s *Service) ListSpeciesByNode(ctx context.Context, nodeURL string) ([]Species, error) {
	species, _, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, &RetrievalError{Source: "catalog", Err: err}
	}
	matched := make([]Species, 0)
	for _, sp := range species {
		if sp.TAPEndpoint == nodeURL {
			matched = append(matched, sp)
		}
	}
	return matched, nil
}
