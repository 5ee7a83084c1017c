// internal/render/render.go
//
// Package render draws the combined dotmap: every ordered comparison matrix
// in a folder overlaid as one scatter layer per gene, square glyphs at each
// nonzero cell, axes in tree order.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"dotmap-core/matrix"
)

// OutputName is the PNG written next to the matrices.
const OutputName = "combined_dotmap.png"

const matrixSuffix = "_comparison_matrix_ordered_by_tree.csv"

// ErrNoMatrices marks a folder with no ordered comparison matrices.
var ErrNoMatrices = errors.New("no ordered comparison matrices found")

var unknownGray = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}

// MatrixFiles returns the ordered-matrix CSVs in folder, sorted by name for
// a consistent overlay order, keyed by gene name.
func MatrixFiles(folder string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(folder, "*"+matrixSuffix))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMatrices, folder)
	}
	sort.Strings(paths)
	return paths, nil
}

// GeneName recovers the gene from an ordered-matrix file name.
func GeneName(path string) string {
	return strings.SplitN(filepath.Base(path), "_comparison_matrix", 2)[0]
}

// Dotmap renders every ordered matrix in folder into one PNG and returns
// its path. When phyla is non-nil, colored stripe markers along both axes
// show each strain's phylum; unmapped strains render gray.
func Dotmap(folder string, phyla map[string]string) (string, error) {
	files, err := MatrixFiles(folder)
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = "Gene co-presence dotmap"
	p.X.Label.Text = "Strain (tree order)"
	p.Y.Label.Text = "Strain (tree order)"

	var axis []string // tree-ordered strain labels, from the first matrix
	for i, path := range files {
		m, err := matrix.ReadCSVFile(path)
		if err != nil {
			return "", err
		}
		if axis == nil {
			axis = m.Index()
		}
		s, err := plotter.NewScatter(nonzeroCells(m))
		if err != nil {
			return "", err
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Color = plotutil.Color(i)
		p.Add(s)
		p.Legend.Add(GeneName(path), s)
	}

	if phyla != nil {
		addPhylumStripes(p, axis, phyla, len(files))
	}

	setStrainTicks(p, axis)
	p.Legend.Top = true
	p.Legend.Left = false

	out := filepath.Join(folder, OutputName)
	size := plotSize(len(axis))
	if err := p.Save(size, size, out); err != nil {
		return "", err
	}
	return out, nil
}

// nonzeroCells converts a matrix to scatter points: one point per cell
// marking co-presence, x = column position, y = row position.
func nonzeroCells(m *matrix.Matrix) plotter.XYs {
	var pts plotter.XYs
	idx := m.Index()
	for i, a := range idx {
		for j, b := range idx {
			if v, _ := m.At(a, b); v != 0 {
				pts = append(pts, plotter.XY{X: float64(j), Y: float64(i)})
			}
		}
	}
	return pts
}

// addPhylumStripes draws three rows/columns of colored markers just outside
// the axes, one scatter per phylum so each gets a legend entry.
func addPhylumStripes(p *plot.Plot, axis []string, phyla map[string]string, colorOffset int) {
	groups := make(map[string]plotter.XYs)
	for i, strain := range axis {
		name, ok := phyla[strain]
		if !ok {
			name = "" // neutral gray, no legend entry
		}
		for off := 2; off <= 4; off++ {
			groups[name] = append(groups[name],
				plotter.XY{X: float64(i), Y: float64(-off)}, // below the x axis
				plotter.XY{X: float64(-off), Y: float64(i)}, // left of the y axis
			)
		}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for i, name := range names {
		s, err := plotter.NewScatter(groups[name])
		if err != nil {
			continue
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Color = plotutil.Color(colorOffset + i)
		p.Add(s)
		p.Legend.Add(name, s)
	}
	if pts, ok := groups[""]; ok {
		if s, err := plotter.NewScatter(pts); err == nil {
			s.GlyphStyle.Shape = draw.BoxGlyph{}
			s.GlyphStyle.Radius = vg.Points(2)
			s.GlyphStyle.Color = unknownGray
			p.Add(s)
		}
	}
}

// setStrainTicks labels both axes with strain names at a font small enough
// for dense matrices.
func setStrainTicks(p *plot.Plot, axis []string) {
	ticks := make([]plot.Tick, len(axis))
	for i, name := range axis {
		ticks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Font.Size = vg.Points(3)
	p.Y.Tick.Label.Font.Size = vg.Points(3)
}

// plotSize scales the canvas with the genome count, clamped to a sane range.
func plotSize(n int) vg.Length {
	const inchPerTenStrains = 0.5
	size := vg.Length(float64(n)/10*inchPerTenStrains) * vg.Inch
	if size < 6*vg.Inch {
		size = 6 * vg.Inch
	}
	if size > 25*vg.Inch {
		size = 25 * vg.Inch
	}
	return size
}
