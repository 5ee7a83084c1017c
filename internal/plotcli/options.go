// internal/plotcli/options.go
package plotcli

import (
	"errors"
	"flag"
	"fmt"

	"dotmap/internal/version"
)

// Options holds all CLI flags for the dotmap renderer.
type Options struct {
	HGTFolder  string
	VGTFolder  string
	PhylumFile string // optional xlsx mapping Strain → GTDB lineage

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: render combined dotmaps from ordered comparison matrices

Overlays every *_comparison_matrix_ordered_by_tree.csv in a folder as a
colored scatter layer and saves combined_dotmap.png next to the matrices.
An optional phylum workbook adds taxonomic color stripes along both axes.

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

	fs.StringVar(&opt.HGTFolder, "hgt-folder", "", "folder with ordered HGT matrices")
	fs.StringVar(&opt.VGTFolder, "vgt-folder", "", "folder with ordered VGT matrices")
	fs.StringVar(&opt.PhylumFile, "phylum-file", "", "xlsx workbook mapping strains to GTDB lineages (optional)")

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

	if opt.HGTFolder == "" && opt.VGTFolder == "" {
		return opt, errors.New("provide --hgt-folder and/or --vgt-folder")
	}
	if len(fs.Args()) > 0 {
		return opt, fmt.Errorf("unexpected positional arguments: %v", fs.Args())
	}
	return opt, nil
}
