// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"dotmap/internal/version"
)

// Options holds all CLI flags for the matrix pipeline.
type Options struct {
	// Input
	Input    string // root directory with nested annotated genome folders
	TreeFile string // Newick tree file

	// Gene panels (empty = built-in panel)
	HGTGenes string
	VGTGenes string

	// Output
	Output string // destination root for gff/, hgt/, vgt/

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: gene presence matrices ordered by a phylogenetic tree

Scans genome annotation files for two gene panels (horizontally and
vertically transferred), builds per-gene pairwise co-presence matrices,
and reorders them to the tip order of a Newick tree.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "input", "", "folder containing annotated genome subfolders with .gff files [*]")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Output, "output", "", "destination folder for output matrices [*]")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.StringVar(&opt.TreeFile, "tree", "", "Newick tree file ordering the matrices [*]")
	fs.StringVar(&opt.TreeFile, "t", "", "alias of --tree")

	fs.StringVar(&opt.HGTGenes, "hgt-genes", "", "file with one HGT gene per line (default: built-in panel)")
	fs.StringVar(&opt.VGTGenes, "vgt-genes", "", "file with one VGT gene per line (default: built-in panel)")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress and warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Input == "" {
		return opt, errors.New("--input is required")
	}
	if opt.Output == "" {
		return opt, errors.New("--output is required")
	}
	if opt.TreeFile == "" {
		return opt, errors.New("--tree is required")
	}
	if len(fs.Args()) > 0 {
		return opt, fmt.Errorf("unexpected positional arguments: %v", fs.Args())
	}
	return opt, nil
}
