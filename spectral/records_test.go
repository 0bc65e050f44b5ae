package spectral

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeciesExtraColumnsRoundTrip(t *testing.T) {
	payload := `{
		"shortname": "CDMS",
		"InChIKey": "UGFAIRIUMAVXCW-UHFFFAOYSA-N",
		"massNumber": 28,
		"computed mass number": 28.0101,
		"computed mol_weight": 28.0101,
		"vamdcSpeciesID": "XXVAMDC123"
	}`

	var s Species
	require.NoError(t, json.Unmarshal([]byte(payload), &s))

	assert.Equal(t, "CDMS", s.ShortName)
	assert.Equal(t, 28, s.MassNumber)
	assert.Equal(t, 28.0101, s.ComputedMassNumber)
	// Undocumented provider columns land in Extra.
	assert.Equal(t, 28.0101, s.Extra["computed mol_weight"])
	assert.Equal(t, "XXVAMDC123", s.Extra["vamdcSpeciesID"])

	out, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "XXVAMDC123", m["vamdcSpeciesID"])
	assert.Equal(t, "UGFAIRIUMAVXCW-UHFFFAOYSA-N", m["InChIKey"])
	assert.Equal(t, 28.0101, m["computed mass number"])
}

func TestLineSourceDatabaseOmittedWhenUnset(t *testing.T) {
	out, err := json.Marshal(Line{InChIKey: "X", Frequency: 1.5})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	_, present := m["source_database"]
	assert.False(t, present)

	out, err = json.Marshal(Line{InChIKey: "X", SourceDatabase: "CDMS"})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "CDMS", m["source_database"])
}

func TestDecodeLineTablesMappingPreservesOrder(t *testing.T) {
	body := `{
		"JPL":  [{"queryToken": "j1"}],
		"CDMS": [{"queryToken": "c1"}, {"queryToken": "c2"}],
		"VALD": []
	}`

	tables, err := decodeLineTables([]byte(body))
	require.NoError(t, err)
	require.Len(t, tables, 3)

	// Document order, not lexical order.
	assert.Equal(t, "JPL", tables[0].Database)
	assert.Equal(t, "CDMS", tables[1].Database)
	assert.Equal(t, "VALD", tables[2].Database)
	assert.Len(t, tables[1].Lines, 2)
	assert.Empty(t, tables[2].Lines)
}

func TestDecodeLineTablesFlatTable(t *testing.T) {
	body := `[{"queryToken": "a"}, {"queryToken": "b"}]`

	tables, err := decodeLineTables([]byte(body))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Empty(t, tables[0].Database)
	assert.Len(t, tables[0].Lines, 2)
}

func TestDecodeLineTablesEmptyBody(t *testing.T) {
	tables, err := decodeLineTables([]byte("  "))
	require.NoError(t, err)
	assert.Empty(t, tables)
}
