// core/matrix/csv.go
package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSV persists the matrix as a square table: header
// "Genome,<genome...>" then one labeled 0/1 row per genome.
func (m *Matrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Genome"}, m.index...)); err != nil {
		return err
	}
	row := make([]string, 1+len(m.index))
	for i, genome := range m.index {
		row[0] = genome
		for j := range m.index {
			row[1+j] = strconv.Itoa(m.at(i, j))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the matrix to path, creating parent directories.
func (m *Matrix) WriteCSVFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.WriteCSV(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// ReadCSV parses a matrix written by WriteCSV. Any nonzero cell counts as
// presence. Column labels must mirror the row labels.
func ReadCSV(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("matrix: table too short (%d rows)", len(records))
	}
	header := records[0][1:]
	n := len(header)
	if len(records)-1 != n {
		return nil, fmt.Errorf("matrix: %d columns but %d rows", n, len(records)-1)
	}
	cells := make([]float64, n*n)
	index := make([]string, n)
	for i, rec := range records[1:] {
		if len(rec) != n+1 {
			return nil, fmt.Errorf("matrix: row %d has %d fields, want %d", i+1, len(rec), n+1)
		}
		if rec[0] != header[i] {
			return nil, fmt.Errorf("matrix: row label %q does not match column label %q", rec[0], header[i])
		}
		index[i] = rec[0]
		for j, cell := range rec[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("matrix: row %d col %d: %w", i+1, j+1, err)
			}
			if v != 0 {
				cells[i*n+j] = 1
			}
		}
	}
	return New(index, cells)
}

// ReadCSVFile reads a matrix CSV from disk.
func ReadCSVFile(path string) (*Matrix, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	m, err := ReadCSV(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
