package spectral

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGCatalog reads the species and node tables from a PostgreSQL mirror of
// the species database. Used when a local replica is available; the HTTP
// client remains the fallback.
type PGCatalog struct {
	pool *pgxpool.Pool
}

// NewPGCatalog connects to the mirror database and verifies the connection.
func NewPGCatalog(ctx context.Context, dsn string) (*PGCatalog, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PGCatalog{pool: pool}, nil
}

// Close releases the connection pool.
func (c *PGCatalog) Close() {
	c.pool.Close()
}

// GetAll loads both mirror tables in full.
func (c *PGCatalog) GetAll(ctx context.Context) ([]Species, []Node, error) {
	species, err := c.allSpecies(ctx)
	if err != nil {
		return nil, nil, err
	}
	nodes, err := c.allNodes(ctx)
	if err != nil {
		return nil, nil, err
	}
	return species, nodes, nil
}

func (c *PGCatalog) allSpecies(ctx context.Context) ([]Species, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT shortname, ivo_identifier, inchi, inchikey,
		       stoichiometric_formula, mass_number, charge, species_type,
		       structural_formula, name, did, tap_endpoint,
		       last_ingestion_script_date::text, species_last_seen_on::text,
		       unique_atoms, total_atoms, computed_charge, computed_mass_number
		FROM species
		ORDER BY inchikey, tap_endpoint`)
	if err != nil {
		return nil, fmt.Errorf("failed to query species mirror: %w", err)
	}
	defer rows.Close()

	var out []Species
	for rows.Next() {
		var s Species
		if err := rows.Scan(
			&s.ShortName, &s.IvoIdentifier, &s.InChI, &s.InChIKey,
			&s.StoichiometricFormula, &s.MassNumber, &s.Charge, &s.SpeciesType,
			&s.StructuralFormula, &s.Name, &s.DID, &s.TAPEndpoint,
			&s.LastIngestionDate, &s.LastSeenOn,
			&s.UniqueAtoms, &s.TotalAtoms, &s.ComputedCharge, &s.ComputedMassNumber,
		); err != nil {
			return nil, fmt.Errorf("failed to scan species row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (c *PGCatalog) allNodes(ctx context.Context) ([]Node, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT short_name, description, contact_email, ivo_identifier,
		       tap_endpoint, reference_url, last_update::text, last_seen::text,
		       topics
		FROM nodes
		ORDER BY short_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes mirror: %w", err)
	}
	defer rows.Close()

	var out []Node
	for rows.Next() {
		var n Node
		if err := rows.Scan(
			&n.ShortName, &n.Description, &n.ContactEmail, &n.IvoIdentifier,
			&n.TAPEndpoint, &n.ReferenceURL, &n.LastUpdate, &n.LastSeen,
			&n.Topics,
		); err != nil {
			return nil, fmt.Errorf("failed to scan node row: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
