// internal/plotapp/app.go
package plotapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"dotmap/internal/cmdutil"
	"dotmap/internal/plotcli"
	"dotmap/internal/render"
	"dotmap/internal/taxonomy"
	"dotmap/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := plotcli.NewFlagSet("dotmap-plot")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		_, _ = plotcli.ParseArgs(fs, []string{"-h"})
		return 0
	}

	opts, err := plotcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "dotmap-plot version %s\n", version.Version)
		return 0
	}

	// A broken phylum workbook degrades to an uncolored dotmap, matching
	// the viewer this replaces.
	var phyla map[string]string
	if opts.PhylumFile != "" {
		phyla, err = taxonomy.LoadWorkbook(opts.PhylumFile)
		if err != nil {
			cmdutil.Warnf(stderr, opts.Quiet, "could not load phylum mapping: %v", err)
			phyla = nil
		}
	}

	failures := 0
	for _, folder := range []string{opts.HGTFolder, opts.VGTFolder} {
		if folder == "" {
			continue
		}
		if err := parent.Err(); err != nil {
			return 130
		}
		out, err := render.Dotmap(folder, phyla)
		if errors.Is(err, render.ErrNoMatrices) {
			cmdutil.Warnf(stderr, opts.Quiet, "%v", err)
			continue
		}
		if err != nil {
			cmdutil.Errorf(stderr, "%s: %v", folder, err)
			failures++
			continue
		}
		cmdutil.Logf(outw, opts.Quiet, "dotmap saved: %s", out)
	}

	if failures > 0 {
		return 1
	}
	return 0
}
