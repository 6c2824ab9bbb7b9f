/*
 * histogram.go, part of molcore.
 *
 *
 * Copyright 2025 The molcore Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chemplot

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	chem "github.com/rmera/molcore"
)

// Size of the saved plots.
var (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

// Distances returns the distances, in Angstroms, between the atoms of mol.
// If bonded is true, only the distances between bonded atoms are returned,
// in the order of the bonds. Otherwise all the pairs are returned.
func Distances(mol *chem.Molecule, bonded bool) []float64 {
	coords := mol.Coords()
	if coords == nil {
		return nil
	}
	if bonded {
		ret := make([]float64, 0, mol.NBonds())
		for _, b := range mol.Bonds() {
			ret = append(ret, coords.Distance(b.Atom1, b.Atom2))
		}
		return ret
	}
	n := mol.Len()
	ret := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ret = append(ret, coords.Distance(i, j))
		}
	}
	return ret
}

// Summary returns the mean, population standard deviation, minimum and maximum of
// values. ok is false if values is empty.
func Summary(values []float64) (mean, std, min, max float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, 0, 0, false
	}
	mean, std = stat.PopMeanStdDev(values, nil)
	return mean, std, floats.Min(values), floats.Max(values), true
}

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Distance (Å)"
	p.Y.Label.Text = "Count"
	p.Add(plotter.NewGrid())
	return p
}

// DistanceHistogram plots a histogram of the distances between the atoms of mol, or only
// between the bonded ones if bonded is true, and saves it to filename. The image format is
// given by the extension of filename (png, svg, pdf, eps, jpg or tiff). If bins is not
// positive, the square root of the number of distances is used. It returns an error if
// there are no distances to plot.
func DistanceHistogram(mol *chem.Molecule, bins int, bonded bool, filename string) error {
	values := Distances(mol, bonded)
	if len(values) == 0 {
		return fmt.Errorf("DistanceHistogram: no distances to plot")
	}
	title := "Interatomic distances, " + chem.Formula(mol)
	if bonded {
		title = "Bond lengths, " + chem.Formula(mol)
	}
	p := basicPlot(title)
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("DistanceHistogram: %w", err)
	}
	h.FillColor = colors(0, 1)
	p.Add(h)
	if err := p.Save(Width, Height, filename); err != nil {
		return fmt.Errorf("DistanceHistogram: %w", err)
	}
	return nil
}

// BondLengths returns the bond lengths of mol grouped by the normalized symbols of the
// bonded atoms, in alphabetical order, i.e. "C-H", "C-O".
func BondLengths(mol *chem.Molecule) map[string][]float64 {
	ret := make(map[string][]float64)
	coords := mol.Coords()
	for _, b := range mol.Bonds() {
		s := []string{chem.NormalSymbol(mol.Atom(b.Atom1).Symbol), chem.NormalSymbol(mol.Atom(b.Atom2).Symbol)}
		sort.Strings(s)
		key := s[0] + "-" + s[1]
		ret[key] = append(ret[key], coords.Distance(b.Atom1, b.Atom2))
	}
	return ret
}

// BondLengthHistogram plots one histogram of bond lengths per pair of bonded
// elements, each in its own color, and saves the plot to filename. See DistanceHistogram.
func BondLengthHistogram(mol *chem.Molecule, bins int, filename string) error {
	groups := BondLengths(mol)
	if len(groups) == 0 {
		return fmt.Errorf("BondLengthHistogram: the molecule has no bonds")
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	p := basicPlot("Bond lengths by element, " + chem.Formula(mol))
	for i, k := range keys {
		h, err := plotter.NewHist(plotter.Values(groups[k]), bins)
		if err != nil {
			return fmt.Errorf("BondLengthHistogram: %s: %w", k, err)
		}
		c := colors(i, len(keys))
		c.A = 160
		h.FillColor = c
		p.Add(h)
		p.Legend.Add(k, h)
	}
	if err := p.Save(Width, Height, filename); err != nil {
		return fmt.Errorf("BondLengthHistogram: %w", err)
	}
	return nil
}
