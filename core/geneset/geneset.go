// core/geneset/geneset.go
package geneset

import (
	"fmt"
)

// Set is an ordered, duplicate-free panel of gene names. The order fixes the
// column order of presence tables and the emission order of comparison
// matrices.
type Set struct {
	names []string
	index map[string]int
}

// New builds a Set from names in the given order.
// Duplicate names are a configuration error.
func New(names ...string) (*Set, error) {
	s := &Set{index: make(map[string]int, len(names))}
	for _, n := range names {
		if n == "" {
			return nil, fmt.Errorf("geneset: empty gene name")
		}
		if _, dup := s.index[n]; dup {
			return nil, fmt.Errorf("geneset: duplicate gene %q", n)
		}
		s.index[n] = len(s.names)
		s.names = append(s.names, n)
	}
	if len(s.names) == 0 {
		return nil, fmt.Errorf("geneset: empty gene set")
	}
	return s, nil
}

// MustNew is New for compile-time panels.
func MustNew(names ...string) *Set {
	s, err := New(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the panel in order. Callers must not mutate the slice.
func (s *Set) Names() []string { return s.names }

// Len returns the number of genes in the panel.
func (s *Set) Len() int { return len(s.names) }

// Index returns the column position of gene, or -1 when absent.
// Matching is exact string equality.
func (s *Set) Index(gene string) int {
	i, ok := s.index[gene]
	if !ok {
		return -1
	}
	return i
}

// Contains reports whether gene is part of the panel (exact match).
func (s *Set) Contains(gene string) bool { return s.Index(gene) >= 0 }

// Default panels from the published pipeline. They are passed into the
// pipeline by the caller; nothing below the CLI layer assumes them.
func DefaultHGT() *Set { return MustNew("mecA", "cmlA", "tetA", "tetM", "vanA") }
func DefaultVGT() *Set { return MustNew("gapA", "gyrA", "gyrB", "recA", "rpoB") }
