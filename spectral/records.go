// Package spectral implements the query-and-reshape pipeline over the VAMDC
// species database and the per-node TAP endpoints: catalog retrieval, row
// filtering, line queries, and markdown/JSON rendering of the results.
package spectral

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Species is one chemical entity as returned by the species database,
// identified by InChIKey plus its originating node's TAP endpoint.
// Columns the provider emits beyond the documented set are kept in Extra
// and round-trip through JSON untouched.
type Species struct {
	ShortName             string  `json:"shortname"`
	IvoIdentifier         string  `json:"ivoIdentifier"`
	InChI                 string  `json:"InChI"`
	InChIKey              string  `json:"InChIKey"`
	StoichiometricFormula string  `json:"stoichiometricFormula"`
	MassNumber            int     `json:"massNumber"`
	Charge                int     `json:"charge"`
	SpeciesType           string  `json:"speciesType"`
	StructuralFormula     string  `json:"structuralFormula"`
	Name                  string  `json:"name"`
	DID                   string  `json:"did"`
	TAPEndpoint           string  `json:"tapEndpoint"`
	LastIngestionDate     string  `json:"lastIngestionScriptDate"`
	LastSeenOn            string  `json:"speciesLastSeenOn"`
	UniqueAtoms           int     `json:"# unique atoms"`
	TotalAtoms            int     `json:"# total atoms"`
	ComputedCharge        int     `json:"computed charge"`
	ComputedMassNumber    float64 `json:"computed mass number"`

	Extra map[string]any `json:"-"`
}

// Node is one observing database node. Its TAP endpoint URL acts as the
// natural identifier.
type Node struct {
	ShortName     string   `json:"shortName"`
	Description   string   `json:"description"`
	ContactEmail  string   `json:"contactEmail"`
	IvoIdentifier string   `json:"ivoIdentifier"`
	TAPEndpoint   string   `json:"tapEndpoint"`
	ReferenceURL  string   `json:"referenceUrl"`
	LastUpdate    string   `json:"lastUpdate"`
	LastSeen      string   `json:"lastSeen"`
	Topics        []string `json:"topics"`
}

// Line is one spectral transition. SourceDatabase is synthesized by the
// pipeline when the provider partitions its result per database; it is never
// set by the provider itself. Databases emit different physical schema
// supersets, so undocumented columns are kept in Extra.
type Line struct {
	InChIKey               string  `json:"InChIKey"`
	InChI                  string  `json:"InChI"`
	ChemicalName           string  `json:"Chemical name"`
	StoichiometricFormula  string  `json:"Stoichiometric formula"`
	StructuralFormula      string  `json:"Ordinary structural formula"`
	Frequency              float64 `json:"Frequency"`
	EinsteinA              float64 `json:"A"`
	LowerEnergy            float64 `json:"Lower energy(1/cm)"`
	LowerTotalStatWeight   float64 `json:"Lower total statistical weight"`
	LowerNuclearStatWeight float64 `json:"Lower nuclear statistical weight"`
	LowerQNs               string  `json:"Lower QNs"`
	UpperEnergy            float64 `json:"Upper energy(1/cm)"`
	UpperTotalStatWeight   float64 `json:"Upper total statistical weight"`
	UpperNuclearStatWeight float64 `json:"Upper nuclear statistical weight"`
	UpperQNs               string  `json:"Upper QNs"`
	QueryToken             string  `json:"queryToken"`
	SourceDatabase         string  `json:"source_database,omitempty"`

	Extra map[string]any `json:"-"`
}

// speciesColumns is the static species schema: the set of column names the
// row filter accepts. "shortname" and "shortName" both appear upstream.
var speciesColumns = map[string]struct{}{
	"shortname":               {},
	"shortName":               {},
	"ivoIdentifier":           {},
	"InChI":                   {},
	"InChIKey":                {},
	"stoichiometricFormula":   {},
	"massNumber":              {},
	"charge":                  {},
	"speciesType":             {},
	"structuralFormula":       {},
	"name":                    {},
	"did":                     {},
	"tapEndpoint":             {},
	"lastIngestionScriptDate": {},
	"speciesLastSeenOn":       {},
	"# unique atoms":          {},
	"# total atoms":           {},
	"computed charge":         {},
	"computed mass number":    {},
}

// nodeColumns is the static node schema.
var nodeColumns = map[string]struct{}{
	"shortName":     {},
	"description":   {},
	"contactEmail":  {},
	"ivoIdentifier": {},
	"tapEndpoint":   {},
	"referenceUrl":  {},
	"lastUpdate":    {},
	"lastSeen":      {},
	"topics":        {},
}

// columnValue returns the string form of the named column. Unknown names
// fall back to the Extra map; the second return reports whether the column
// carried a value at all.
func (s Species) columnValue(name string) (string, bool) {
	switch name {
	case "shortname", "shortName":
		return s.ShortName, true
	case "ivoIdentifier":
		return s.IvoIdentifier, true
	case "InChI":
		return s.InChI, true
	case "InChIKey":
		return s.InChIKey, true
	case "stoichiometricFormula":
		return s.StoichiometricFormula, true
	case "massNumber":
		return strconv.Itoa(s.MassNumber), true
	case "charge":
		return strconv.Itoa(s.Charge), true
	case "speciesType":
		return s.SpeciesType, true
	case "structuralFormula":
		return s.StructuralFormula, true
	case "name":
		return s.Name, true
	case "did":
		return s.DID, true
	case "tapEndpoint":
		return s.TAPEndpoint, true
	case "lastIngestionScriptDate":
		return s.LastIngestionDate, true
	case "speciesLastSeenOn":
		return s.LastSeenOn, true
	case "# unique atoms":
		return strconv.Itoa(s.UniqueAtoms), true
	case "# total atoms":
		return strconv.Itoa(s.TotalAtoms), true
	case "computed charge":
		return strconv.Itoa(s.ComputedCharge), true
	case "computed mass number":
		return formatFloat(s.ComputedMassNumber), true
	}
	if v, ok := s.Extra[name]; ok {
		return stringify(v), true
	}
	return "", false
}

func (n Node) columnValue(name string) (string, bool) {
	switch name {
	case "shortName":
		return n.ShortName, true
	case "description":
		return n.Description, true
	case "contactEmail":
		return n.ContactEmail, true
	case "ivoIdentifier":
		return n.IvoIdentifier, true
	case "tapEndpoint":
		return n.TAPEndpoint, true
	case "referenceUrl":
		return n.ReferenceURL, true
	case "lastUpdate":
		return n.LastUpdate, true
	case "lastSeen":
		return n.LastSeen, true
	case "topics":
		return strings.Join(n.Topics, ", "), true
	}
	return "", false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// stringify coerces a decoded JSON value to its display form. Dates and any
// other non-primitive values end up as their string representation.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return formatFloat(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// speciesJSONFields lists the JSON keys bound to struct fields, used to
// split provider payloads into known columns and Extra passthrough.
var speciesJSONFields = []string{
	"shortname", "ivoIdentifier", "InChI", "InChIKey", "stoichiometricFormula",
	"massNumber", "charge", "speciesType", "structuralFormula", "name", "did",
	"tapEndpoint", "lastIngestionScriptDate", "speciesLastSeenOn",
	"# unique atoms", "# total atoms", "computed charge", "computed mass number",
}

var lineJSONFields = []string{
	"InChIKey", "InChI", "Chemical name", "Stoichiometric formula",
	"Ordinary structural formula", "Frequency", "A", "Lower energy(1/cm)",
	"Lower total statistical weight", "Lower nuclear statistical weight",
	"Lower QNs", "Upper energy(1/cm)", "Upper total statistical weight",
	"Upper nuclear statistical weight", "Upper QNs", "queryToken",
	"source_database",
}

func (s *Species) UnmarshalJSON(data []byte) error {
	type plain Species
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := extraFields(data, speciesJSONFields)
	if err != nil {
		return err
	}
	p.Extra = extra
	*s = Species(p)
	return nil
}

func (s Species) MarshalJSON() ([]byte, error) {
	type plain Species
	return mergeExtra(plain(s), s.Extra)
}

func (l *Line) UnmarshalJSON(data []byte) error {
	type plain Line
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := extraFields(data, lineJSONFields)
	if err != nil {
		return err
	}
	p.Extra = extra
	*l = Line(p)
	return nil
}

func (l Line) MarshalJSON() ([]byte, error) {
	type plain Line
	return mergeExtra(plain(l), l.Extra)
}

// extraFields decodes data into a generic map and strips the known keys,
// leaving only undocumented provider columns. Returns nil when none remain.
func extraFields(data []byte, known []string) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// mergeExtra marshals the struct form of a record and overlays the Extra
// columns. Known fields always win over a clashing Extra key.
func mergeExtra(v any, extra map[string]any) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = val
		}
	}
	return json.Marshal(merged)
}
