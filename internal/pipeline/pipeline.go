// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dotmap-core/geneset"
	"dotmap-core/matrix"
	"dotmap-core/newick"
	"dotmap-core/presence"

	"dotmap/internal/cmdutil"
)

// Category is one gene panel processed as an independent unit.
type Category struct {
	Label string // e.g. "HGT" or "VGT"; prefixes output names and progress lines
	Genes *geneset.Set
}

// Config carries the per-run paths shared by both categories.
type Config struct {
	GFFDir   string // flat folder of annotation files
	TreeFile string // Newick tree ordering the matrices
	Quiet    bool
}

// Summary counts the per-gene outcomes of one category run.
type Summary struct {
	PresencePath string
	Written      int // ordered matrices persisted
	Skipped      int // genes with no tree/matrix overlap
	Failed       int // genes whose ordering step failed
}

// OrderedMatrixName is the deterministic output name for one gene.
func OrderedMatrixName(gene string) string {
	return fmt.Sprintf("%s_comparison_matrix_ordered_by_tree.csv", gene)
}

// PresenceMatrixName is the deterministic output name for one category.
func PresenceMatrixName(label string) string {
	return fmt.Sprintf("%s_gene_presence_matrix.csv", label)
}

// ProcessCategory builds and persists the presence table for cat, then one
// ordered comparison matrix per gene under outDir. The presence build is the
// category's fatal stage; afterwards every gene is an independent unit of
// work and already-written files survive later failures.
func ProcessCategory(ctx context.Context, cfg Config, cat Category, outDir string, stdout, stderr io.Writer) (Summary, error) {
	var sum Summary

	table, err := presence.Build(cfg.GFFDir, cat.Genes)
	if err != nil {
		return sum, fmt.Errorf("[%s] building presence table: %w", cat.Label, err)
	}

	sum.PresencePath = filepath.Join(outDir, PresenceMatrixName(cat.Label))
	if err := table.WriteCSVFile(sum.PresencePath); err != nil {
		return sum, fmt.Errorf("[%s] writing presence table: %w", cat.Label, err)
	}
	cmdutil.Logf(stdout, cfg.Quiet, "[%s] presence/absence matrix saved: %s (%d genomes × %d genes)",
		cat.Label, sum.PresencePath, table.Len(), cat.Genes.Len())

	for _, gene := range cat.Genes.Names() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		co, err := matrix.CoPresence(table, gene)
		if err != nil {
			cmdutil.Errorf(stderr, "[%s] %s: %v", cat.Label, gene, err)
			sum.Failed++
			continue
		}

		// The tree is parsed fresh for each gene so one bad tree read only
		// fails the gene it was read for.
		tree, err := newick.ParseFile(cfg.TreeFile)
		if err != nil {
			cmdutil.Errorf(stderr, "[%s] %s: %v", cat.Label, gene, err)
			sum.Failed++
			continue
		}
		order := tree.Leaves()

		ordered, err := co.Reindex(order)
		if errors.Is(err, matrix.ErrEmptyIntersection) {
			cmdutil.Warnf(stderr, cfg.Quiet, "[%s] %s: %v; skipping", cat.Label, gene, err)
			sum.Skipped++
			continue
		}
		if err != nil {
			cmdutil.Errorf(stderr, "[%s] %s: %v", cat.Label, gene, err)
			sum.Failed++
			continue
		}
		if dropped := co.Dropped(order); len(dropped) > 0 {
			cmdutil.Warnf(stderr, cfg.Quiet, "[%s] %s: %d genome(s) absent from tree dropped: %s",
				cat.Label, gene, len(dropped), strings.Join(dropped, ", "))
		}

		path := filepath.Join(outDir, OrderedMatrixName(gene))
		if err := ordered.WriteCSVFile(path); err != nil {
			cmdutil.Errorf(stderr, "[%s] %s: %v", cat.Label, gene, err)
			sum.Failed++
			continue
		}
		cmdutil.Logf(stdout, cfg.Quiet, "[%s] %s ordered comparison matrix saved: %s (%d genomes)",
			cat.Label, gene, path, ordered.Len())
		sum.Written++
	}
	return sum, nil
}
