// core/presence/table.go
package presence

import (
	"fmt"

	"dotmap-core/geneset"
)

// Table is a genome × gene presence/absence table. Rows keep insertion
// (discovery) order; every cell is defined and holds 0 or 1.
type Table struct {
	genes   *geneset.Set
	genomes []string
	rowOf   map[string]int
	cells   [][]int
}

// DuplicateGenomeError reports two input files that map to the same GenomeID.
type DuplicateGenomeError struct {
	Genome string
}

func (e *DuplicateGenomeError) Error() string {
	return fmt.Sprintf("duplicate genome %q across input files", e.Genome)
}

// NewTable returns an empty table over the given gene panel.
func NewTable(genes *geneset.Set) *Table {
	return &Table{genes: genes, rowOf: make(map[string]int)}
}

// AddRow appends one genome's presence vector. The vector must be aligned
// with the panel; a repeated GenomeID is a fatal configuration error, never a
// silent overwrite.
func (t *Table) AddRow(genome string, vec []int) error {
	if len(vec) != t.genes.Len() {
		return fmt.Errorf("presence: genome %q vector has %d entries, panel has %d",
			genome, len(vec), t.genes.Len())
	}
	if _, dup := t.rowOf[genome]; dup {
		return &DuplicateGenomeError{Genome: genome}
	}
	row := make([]int, len(vec))
	for i, v := range vec {
		if v != 0 {
			row[i] = 1
		}
	}
	t.rowOf[genome] = len(t.genomes)
	t.genomes = append(t.genomes, genome)
	t.cells = append(t.cells, row)
	return nil
}

// Genomes returns the row labels in insertion order.
func (t *Table) Genomes() []string { return t.genomes }

// Genes returns the gene panel backing the columns.
func (t *Table) Genes() *geneset.Set { return t.genes }

// Len returns the number of genome rows.
func (t *Table) Len() int { return len(t.genomes) }

// Get returns the presence bit for (genome, gene), or an error when either
// label is unknown.
func (t *Table) Get(genome, gene string) (int, error) {
	r, ok := t.rowOf[genome]
	if !ok {
		return 0, fmt.Errorf("presence: unknown genome %q", genome)
	}
	c := t.genes.Index(gene)
	if c < 0 {
		return 0, fmt.Errorf("presence: unknown gene %q", gene)
	}
	return t.cells[r][c], nil
}

// Column returns the presence column for one gene, aligned with Genomes().
func (t *Table) Column(gene string) ([]int, error) {
	c := t.genes.Index(gene)
	if c < 0 {
		return nil, fmt.Errorf("presence: unknown gene %q", gene)
	}
	col := make([]int, len(t.cells))
	for r := range t.cells {
		col[r] = t.cells[r][c]
	}
	return col, nil
}
