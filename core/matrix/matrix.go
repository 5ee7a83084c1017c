// core/matrix/matrix.go
package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"dotmap-core/presence"
)

// ErrEmptyIntersection marks a reindex order that shares no genome with the
// matrix. It is distinguishable from a populated result so the caller can
// skip the gene and keep going.
var ErrEmptyIntersection = errors.New("no genomes shared between tree order and matrix")

// Matrix is a square binary matrix with one GenomeID labeling each
// row/column pair. Both axes always carry the same labels in the same order.
type Matrix struct {
	index []string
	pos   map[string]int
	data  *mat.Dense
}

// New builds a Matrix from labels and a row-major 0/1 cell slice of
// len(index)² entries.
func New(index []string, cells []float64) (*Matrix, error) {
	n := len(index)
	if n == 0 {
		return nil, fmt.Errorf("matrix: no genome labels")
	}
	if len(cells) != n*n {
		return nil, fmt.Errorf("matrix: %d labels need %d cells, got %d", n, n*n, len(cells))
	}
	pos := make(map[string]int, n)
	for i, name := range index {
		if _, dup := pos[name]; dup {
			return nil, fmt.Errorf("matrix: duplicate genome label %q", name)
		}
		pos[name] = i
	}
	return &Matrix{index: append([]string(nil), index...), pos: pos, data: mat.NewDense(n, n, cells)}, nil
}

// CoPresence derives the genome × genome co-presence matrix for one gene:
// the outer logical-AND of the gene's presence column with itself. The
// result is symmetric by construction and its diagonal equals the presence
// column; labels preserve the table's row order.
func CoPresence(t *presence.Table, gene string) (*Matrix, error) {
	col, err := t.Column(gene)
	if err != nil {
		return nil, err
	}
	n := len(col)
	if n == 0 {
		return nil, fmt.Errorf("matrix: presence table has no genomes")
	}
	v := mat.NewVecDense(n, nil)
	for i, b := range col {
		v.SetVec(i, float64(b))
	}
	d := mat.NewDense(n, n, nil)
	d.Outer(1, v, v) // 0/1 entries, so outer product == logical AND
	pos := make(map[string]int, n)
	for i, name := range t.Genomes() {
		pos[name] = i
	}
	return &Matrix{index: append([]string(nil), t.Genomes()...), pos: pos, data: d}, nil
}

// Index returns the genome labels shared by both axes.
func (m *Matrix) Index() []string { return m.index }

// Len returns the matrix dimension.
func (m *Matrix) Len() int { return len(m.index) }

// At returns the cell for a pair of genome labels.
func (m *Matrix) At(a, b string) (int, error) {
	i, ok := m.pos[a]
	if !ok {
		return 0, fmt.Errorf("matrix: unknown genome %q", a)
	}
	j, ok := m.pos[b]
	if !ok {
		return 0, fmt.Errorf("matrix: unknown genome %q", b)
	}
	if m.data.At(i, j) != 0 {
		return 1, nil
	}
	return 0, nil
}

// at returns the positional cell as 0/1.
func (m *Matrix) at(i, j int) int {
	if m.data.At(i, j) != 0 {
		return 1
	}
	return 0
}

// Reindex selects rows and columns simultaneously to the subsequence of
// order whose names exist in the matrix, preserving order's ordering.
// Genomes on either side of the intersection are silently dropped; Dropped
// reports them when the caller wants a diagnostic. An empty intersection
// returns ErrEmptyIntersection.
func (m *Matrix) Reindex(order []string) (*Matrix, error) {
	var valid []string
	for _, name := range order {
		if _, ok := m.pos[name]; ok {
			valid = append(valid, name)
		}
	}
	if len(valid) == 0 {
		return nil, ErrEmptyIntersection
	}
	n := len(valid)
	d := mat.NewDense(n, n, nil)
	pos := make(map[string]int, n)
	for i, a := range valid {
		pos[a] = i
		for j, b := range valid {
			d.Set(i, j, float64(m.at(m.pos[a], m.pos[b])))
		}
	}
	return &Matrix{index: valid, pos: pos, data: d}, nil
}

// Dropped returns the matrix genomes that would not survive a Reindex by
// order, in matrix-index order.
func (m *Matrix) Dropped(order []string) []string {
	keep := make(map[string]bool, len(order))
	for _, name := range order {
		keep[name] = true
	}
	var dropped []string
	for _, name := range m.index {
		if !keep[name] {
			dropped = append(dropped, name)
		}
	}
	return dropped
}
