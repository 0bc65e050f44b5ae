package spectral

import "strings"

// speciesMarkdownColumns is the fixed projection for species tables. The
// "computed mol_weight" column is only present on some catalog revisions
// and renders as an empty cell when absent.
var speciesMarkdownColumns = []string{
	"name",
	"stoichiometricFormula",
	"InChIKey",
	"speciesType",
	"charge",
	"massNumber",
	"structuralFormula",
	"shortName",
	"# unique atoms",
	"# total atoms",
	"computed charge",
	"computed mol_weight",
}

// SpeciesMarkdownTable renders species rows as a markdown table over the
// fixed column projection. Literal pipes in cell values are escaped.
func SpeciesMarkdownTable(rows []Species) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(speciesMarkdownColumns, " | ") + " |\n")
	b.WriteString("|")
	for range speciesMarkdownColumns {
		b.WriteString("---|")
	}

	for _, row := range rows {
		b.WriteString("\n| ")
		for i, col := range speciesMarkdownColumns {
			if i > 0 {
				b.WriteString(" | ")
			}
			v, _ := row.columnValue(col)
			b.WriteString(escapePipes(v))
		}
		b.WriteString(" |")
	}
	return b.String()
}

// NodesMarkdownTable renders node rows with the historical three-column
// header. The separator row is width-matched to the header, not the usual
// bare --- cells.
func NodesMarkdownTable(rows []Node) string {
	lines := []string{
		"| Short Name | TAP Endpoint | Topics |",
		"|------------|--------------|--------|",
	}
	for _, n := range rows {
		lines = append(lines, "| "+escapePipes(n.ShortName)+
			" | "+escapePipes(n.TAPEndpoint)+
			" | "+escapePipes(strings.Join(n.Topics, ", "))+" |")
	}
	return strings.Join(lines, "\n")
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
