// core/gff/reader.go
package gff

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dotmap-core/geneset"
)

// Extension is the annotation file suffix the pipeline discovers.
const Extension = ".gff"

const (
	commentMarker = "#"
	minFields     = 9 // standard 9-column GFF record
	nameAttr      = "Name"
)

// GenomeID derives the genome identifier from an annotation file path: the
// base name with the extension stripped (".gff.gz" counts as one extension).
func GenomeID(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Parse scans one annotation record stream and returns the presence vector
// for the gene panel: presence[i] = 1 iff genes.Names()[i] appeared as the
// exact Name attribute of at least one feature record. Lines that are
// comments, have fewer than 9 tab-separated fields, or carry no Name
// attribute are skipped; only read errors are fatal.
func Parse(r io.Reader, genes *geneset.Set) ([]int, error) {
	presence := make([]int, genes.Len())

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < minFields {
			continue
		}
		name, ok := attrValue(fields[8], nameAttr)
		if !ok {
			continue
		}
		if i := genes.Index(name); i >= 0 {
			presence[i] = 1
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return presence, nil
}

// ParseFile opens one annotation file and returns its GenomeID together with
// the presence vector. An unreadable file fails the whole genome; there are
// no partial vectors.
func ParseFile(path string, genes *geneset.Set) (string, []int, error) {
	rc, err := openReader(path)
	if err != nil {
		return "", nil, err
	}
	defer func() { _ = rc.Close() }()

	presence, err := Parse(rc, genes)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	return GenomeID(path), presence, nil
}
