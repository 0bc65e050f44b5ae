package spectral

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	species []Species
	nodes   []Node
	err     error
	calls   int
}

func (f *fakeCatalog) GetAll(ctx context.Context) ([]Species, []Node, error) {
	f.calls++
	return f.species, f.nodes, f.err
}

type fakeLineProvider struct {
	tables []DatabaseLines
	err    error

	gotLambdaMin float64
	gotLambdaMax float64
	gotSpecies   []Species
	gotNodes     []Node
}

func (f *fakeLineProvider) GetLines(ctx context.Context, lambdaMin, lambdaMax float64, species []Species, nodes []Node) ([]DatabaseLines, error) {
	f.gotLambdaMin = lambdaMin
	f.gotLambdaMax = lambdaMax
	f.gotSpecies = species
	f.gotNodes = nodes
	return f.tables, f.err
}

func TestQueryLinesFiltersSpeciesBeforeProvider(t *testing.T) {
	catalog := &fakeCatalog{
		species: []Species{
			{Name: "Carbon monoxide", InChIKey: "UGFAIRIUMAVXCW-UHFFFAOYSA-N", TAPEndpoint: "http://cdms.astro.uni-koeln.de/tap"},
			{Name: "Water", InChIKey: "XLYOFNOQVPJJNP-UHFFFAOYSA-N", TAPEndpoint: "http://jpl.nasa.gov/tap"},
		},
		nodes: []Node{{ShortName: "CDMS", TAPEndpoint: "http://cdms.astro.uni-koeln.de/tap"}},
	}
	provider := &fakeLineProvider{
		tables: []DatabaseLines{{
			Database: "CDMS",
			Lines:    []Line{{InChIKey: "UGFAIRIUMAVXCW-UHFFFAOYSA-N", Frequency: 115271.2018}},
		}},
	}
	svc := NewService(catalog, provider, nil)

	records, err := svc.QueryLines(context.Background(), 4000.0, 5000.0, nil, []string{"UGFAIRIUMAVXCW-UHFFFAOYSA-N"})
	require.NoError(t, err)

	// The species table is narrowed to the one matching row before the
	// provider sees it; the node table passes through untouched.
	require.Len(t, provider.gotSpecies, 1)
	assert.Equal(t, "UGFAIRIUMAVXCW-UHFFFAOYSA-N", provider.gotSpecies[0].InChIKey)
	assert.Len(t, provider.gotNodes, 1)
	assert.Equal(t, 4000.0, provider.gotLambdaMin)
	assert.Equal(t, 5000.0, provider.gotLambdaMax)

	require.Len(t, records, 1)
	assert.Equal(t, "UGFAIRIUMAVXCW-UHFFFAOYSA-N", records[0].InChIKey)
	assert.Equal(t, "CDMS", records[0].SourceDatabase)
}

func TestQueryLinesStampsSourceDatabaseInProviderOrder(t *testing.T) {
	catalog := &fakeCatalog{}
	provider := &fakeLineProvider{
		tables: []DatabaseLines{
			{Database: "CDMS", Lines: []Line{{QueryToken: "a"}, {QueryToken: "b"}}},
			{Database: "JPL", Lines: []Line{{QueryToken: "c"}}},
		},
	}
	svc := NewService(catalog, provider, nil)

	records, err := svc.QueryLines(context.Background(), 1, 2, nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "CDMS", records[0].SourceDatabase)
	assert.Equal(t, "a", records[0].QueryToken)
	assert.Equal(t, "CDMS", records[1].SourceDatabase)
	assert.Equal(t, "JPL", records[2].SourceDatabase)
	assert.Equal(t, "c", records[2].QueryToken)
}

func TestQueryLinesPreservesUpstreamFields(t *testing.T) {
	catalog := &fakeCatalog{}
	line := Line{
		InChIKey:     "X",
		ChemicalName: "test",
		Frequency:    42.5,
		LowerQNs:     "J=1",
		QueryToken:   "tok",
		Extra:        map[string]any{"vendor column": "v"},
	}
	provider := &fakeLineProvider{tables: []DatabaseLines{{Database: "VALD", Lines: []Line{line}}}}
	svc := NewService(catalog, provider, nil)

	records, err := svc.QueryLines(context.Background(), 1, 2, nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	want := line
	want.SourceDatabase = "VALD"
	assert.Equal(t, want, records[0])
}

func TestQueryLinesFlatTableLeavesSourceDatabaseUnset(t *testing.T) {
	catalog := &fakeCatalog{}
	provider := &fakeLineProvider{tables: []DatabaseLines{{Lines: []Line{{QueryToken: "a"}}}}}
	svc := NewService(catalog, provider, nil)

	records, err := svc.QueryLines(context.Background(), 1, 2, nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].SourceDatabase)
}

func TestQueryLinesCatalogFailure(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("species database unreachable")}
	svc := NewService(catalog, &fakeLineProvider{}, nil)

	_, err := svc.QueryLines(context.Background(), 1, 2, nil, nil)
	var re *RetrievalError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "catalog", re.Source)
	assert.Contains(t, err.Error(), "species database unreachable")
}

func TestQueryLinesProviderFailureAbortsWholeCall(t *testing.T) {
	catalog := &fakeCatalog{}
	provider := &fakeLineProvider{
		tables: []DatabaseLines{{Database: "CDMS", Lines: []Line{{QueryToken: "a"}}}},
		err:    errors.New("node timeout"),
	}
	svc := NewService(catalog, provider, nil)

	records, err := svc.QueryLines(context.Background(), 1, 2, nil, nil)
	var re *RetrievalError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "lines", re.Source)
	assert.Nil(t, records)
}

func TestQueryLinesEmptyResultIsNotNil(t *testing.T) {
	svc := NewService(&fakeCatalog{}, &fakeLineProvider{}, nil)

	records, err := svc.QueryLines(context.Background(), 1, 2, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestListSpeciesByNodeExactMatch(t *testing.T) {
	catalog := &fakeCatalog{
		species: []Species{
			{InChIKey: "A", TAPEndpoint: "http://cdms.astro.uni-koeln.de/tap"},
			{InChIKey: "B", TAPEndpoint: "http://cdms.astro.uni-koeln.de/tap-extended"},
		},
	}
	svc := NewService(catalog, &fakeLineProvider{}, nil)

	// Exact match only: the longer endpoint must not be included.
	got, err := svc.ListSpeciesByNode(context.Background(), "http://cdms.astro.uni-koeln.de/tap")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].InChIKey)
}

func TestListSpeciesByNodeNoMatchReturnsEmpty(t *testing.T) {
	catalog := &fakeCatalog{species: []Species{{InChIKey: "A", TAPEndpoint: "http://x/tap"}}}
	svc := NewService(catalog, &fakeLineProvider{}, nil)

	got, err := svc.ListSpeciesByNode(context.Background(), "http://nowhere/tap")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListSpeciesAndNodes(t *testing.T) {
	catalog := &fakeCatalog{
		species: []Species{{InChIKey: "A"}},
		nodes:   []Node{{ShortName: "CDMS"}},
	}
	svc := NewService(catalog, &fakeLineProvider{}, nil)

	species, err := svc.ListSpecies(context.Background())
	require.NoError(t, err)
	assert.Len(t, species, 1)

	nodes, err := svc.ListNodes(context.Background())
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
}
