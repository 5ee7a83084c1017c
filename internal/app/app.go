// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dotmap-core/geneset"

	"dotmap/internal/cli"
	"dotmap/internal/cmdutil"
	"dotmap/internal/collate"
	"dotmap/internal/pipeline"
	"dotmap/internal/version"
)

// Exit codes follow the house convention: 0 success, 1 completed with
// per-gene/category failures, 2 configuration or usage error, 3 I/O error,
// 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dotmap")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dotmap version %s\n", version.Version)
		return 0
	}

	categories, err := loadCategories(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// Stage 1: collate annotation files from nested subfolders into one
	// flat working directory.
	gffDir := filepath.Join(opts.Output, "gff")
	n, err := collate.Flatten(opts.Input, gffDir)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if n == 0 {
		_, _ = fmt.Fprintf(stderr, "no annotation files found under %s\n", opts.Input)
		return 2
	}
	cmdutil.Logf(outw, opts.Quiet, "collated %d annotation files into %s", n, gffDir)

	cfg := pipeline.Config{
		GFFDir:   gffDir,
		TreeFile: opts.TreeFile,
		Quiet:    opts.Quiet,
	}

	// Stage 2+3: each category is an independent unit of work; a fatal
	// error in one is reported and the other still runs.
	failures := 0
	for _, cat := range categories {
		outDir := filepath.Join(opts.Output, dirFor(cat.Label))
		sum, err := pipeline.ProcessCategory(parent, cfg, cat, outDir, outw, stderr)
		if errors.Is(err, context.Canceled) {
			return 130
		}
		if err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			failures++
			continue
		}
		cmdutil.Logf(outw, opts.Quiet, "[%s] done: %d matrices written, %d skipped, %d failed",
			cat.Label, sum.Written, sum.Skipped, sum.Failed)
		failures += sum.Failed
	}

	if e := outw.Flush(); e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	if failures > 0 {
		return 1
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadCategories resolves the two gene panels: built-in defaults, or custom
// panel files when supplied.
func loadCategories(opts cli.Options) ([]pipeline.Category, error) {
	hgt := geneset.DefaultHGT()
	if opts.HGTGenes != "" {
		var err error
		if hgt, err = geneset.Load(opts.HGTGenes); err != nil {
			return nil, err
		}
	}
	vgt := geneset.DefaultVGT()
	if opts.VGTGenes != "" {
		var err error
		if vgt, err = geneset.Load(opts.VGTGenes); err != nil {
			return nil, err
		}
	}
	return []pipeline.Category{
		{Label: "HGT", Genes: hgt},
		{Label: "VGT", Genes: vgt},
	}, nil
}

func dirFor(label string) string { return strings.ToLower(label) }
