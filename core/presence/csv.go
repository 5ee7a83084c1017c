// core/presence/csv.go
package presence

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSV persists the table: header "Genome,<gene...>" then one 0/1 row
// per genome in insertion order.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append([]string{"Genome"}, t.genes.Names()...)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, 1+t.genes.Len())
	for r, genome := range t.genomes {
		row[0] = genome
		for c, v := range t.cells[r] {
			row[1+c] = strconv.Itoa(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to path, creating parent directories.
func (t *Table) WriteCSVFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WriteCSV(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
