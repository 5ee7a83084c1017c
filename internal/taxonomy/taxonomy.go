// internal/taxonomy/taxonomy.go
//
// Package taxonomy maps strain names to phyla. The source is a spreadsheet
// whose classification column holds a semicolon-delimited GTDB lineage with
// a p__<Phylum> token.
package taxonomy

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	strainColumn  = "Strain"
	lineageColumn = "GTDB-Tk"
)

var underscoreRuns = regexp.MustCompile(`_+`)

// PhylumFromLineage extracts the phylum from a lineage string: the value of
// the first p__ token up to the next ';', with repeated underscores
// collapsed and surrounding underscores trimmed. Firmicutes sub-lineages
// (Firmicutes_A and friends) collapse to plain Firmicutes.
func PhylumFromLineage(lineage string) (string, bool) {
	i := strings.Index(lineage, "p__")
	if i < 0 {
		return "", false
	}
	v := lineage[i+len("p__"):]
	if j := strings.IndexByte(v, ';'); j >= 0 {
		v = v[:j]
	}
	v = underscoreRuns.ReplaceAllString(v, "_")
	v = strings.Trim(v, "_")
	if v == "" {
		return "", false
	}
	if strings.HasPrefix(v, "Firmicutes") {
		v = "Firmicutes"
	}
	return v, true
}

// LoadWorkbook reads the strain → phylum mapping from the first sheet of an
// xlsx workbook. The header sits on the second row, matching the sheet
// layout the published pipeline consumed; strains whose lineage carries no
// phylum token are omitted.
func LoadWorkbook(path string) (map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no header row", path)
	}

	header := rows[1]
	strainCol, lineageCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case strainColumn:
			strainCol = i
		case lineageColumn:
			lineageCol = i
		}
	}
	if strainCol < 0 || lineageCol < 0 {
		return nil, fmt.Errorf("%s: missing %q or %q column", path, strainColumn, lineageColumn)
	}

	m := make(map[string]string)
	for _, row := range rows[2:] {
		if strainCol >= len(row) || lineageCol >= len(row) {
			continue
		}
		strain := strings.TrimSpace(row[strainCol])
		if strain == "" {
			continue
		}
		if phylum, ok := PhylumFromLineage(row[lineageCol]); ok {
			m[strain] = phylum
		}
	}
	return m, nil
}

// Phyla returns the distinct phylum names in a mapping, sorted.
func Phyla(m map[string]string) []string {
	seen := make(map[string]bool, len(m))
	var out []string
	for _, p := range m {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
