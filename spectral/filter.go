package spectral

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColumn reports a filter column that is not part of the dataset
// schema. It is raised instead of silently dropping every row.
var ErrInvalidColumn = errors.New("invalid filter column")

// FilterSpeciesContaining returns the species rows whose value in column
// contains at least one of targets as a substring (case-sensitive,
// unanchored). Row order is preserved. An empty targets slice is the
// identity.
func FilterSpeciesContaining(rows []Species, column string, targets []string) ([]Species, error) {
	return filterContaining(rows, column, targets, speciesColumns)
}

// FilterNodesContaining is FilterSpeciesContaining for node rows.
func FilterNodesContaining(rows []Node, column string, targets []string) ([]Node, error) {
	return filterContaining(rows, column, targets, nodeColumns)
}

type columnRow interface {
	columnValue(name string) (string, bool)
}

func filterContaining[T columnRow](rows []T, column string, targets []string, schema map[string]struct{}) ([]T, error) {
	// The schema check runs against the static column set, so a bad column
	// is reported even for an empty table.
	if _, ok := schema[column]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
	}
	if len(targets) == 0 {
		return rows, nil
	}
	var out []T
	for _, r := range rows {
		v, _ := r.columnValue(column)
		for _, t := range targets {
			if strings.Contains(v, t) {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}
