/*
 * info.go, part of molcore.
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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	chem "github.com/rmera/molcore"
	"github.com/rmera/molcore/chemgraph"
	"github.com/rmera/molcore/chemplot"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>...",
	Short: "Print information about structure files",
	Long:  "Read the given structure files, in parallel, and print their formula, size, fragments and centers.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().Bool("json", false, "Print the information as JSON")
	_ = viper.BindPFlag("json", infoCmd.Flags().Lookup("json"))
	rootCmd.AddCommand(infoCmd)
}

type summary struct {
	File       string     `json:"file"`
	Formula    string     `json:"formula"`
	Atoms      int        `json:"atoms"`
	Bonds      int        `json:"bonds"`
	Fragments  int        `json:"fragments"`
	Centroid   chem.Vec3  `json:"centroid"`
	MassCenter *chem.Vec3 `json:"massCenter,omitempty"`
	VdwExtent  *chem.Vec3 `json:"vdwExtent,omitempty"`
	BondLength *lengths   `json:"bondLength,omitempty"`
}

type lengths struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

func summarize(name string, mol *chem.Molecule) summary {
	s := summary{
		File:      name,
		Formula:   chem.Formula(mol),
		Atoms:     mol.Len(),
		Bonds:     mol.NBonds(),
		Fragments: len(chemgraph.New(mol).Fragments()),
	}
	s.Centroid, _ = chem.Centroid(mol)
	if mc, err := chem.MassCenter(mol); err == nil {
		s.MassCenter = &mc
	}
	if min, max, err := chem.VdwBounds(mol); err == nil {
		s.VdwExtent = &chem.Vec3{max[0] - min[0], max[1] - min[1], max[2] - min[2]}
	}
	if mean, std, min, max, ok := chemplot.Summary(chemplot.Distances(mol, true)); ok {
		s.BondLength = &lengths{Mean: mean, Std: std, Min: min, Max: max}
	}
	return s
}

func printSummary(out io.Writer, s summary) {
	fmt.Fprintf(out, "%s\n", s.File)
	fmt.Fprintf(out, "  formula:     %s\n", s.Formula)
	fmt.Fprintf(out, "  atoms:       %d\n", s.Atoms)
	fmt.Fprintf(out, "  bonds:       %d\n", s.Bonds)
	fmt.Fprintf(out, "  fragments:   %d\n", s.Fragments)
	c := s.Centroid
	fmt.Fprintf(out, "  centroid:    %.3f %.3f %.3f\n", c[0], c[1], c[2])
	if m := s.MassCenter; m != nil {
		fmt.Fprintf(out, "  mass center: %.3f %.3f %.3f\n", m[0], m[1], m[2])
	}
	if e := s.VdwExtent; e != nil {
		fmt.Fprintf(out, "  vdW extent:  %.3f %.3f %.3f Å\n", e[0], e[1], e[2])
	}
	if b := s.BondLength; b != nil {
		fmt.Fprintf(out, "  bond length: %.3f ± %.3f Å (%.3f-%.3f)\n", b.Mean, b.Std, b.Min, b.Max)
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	mols, err := loadAll(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if viper.GetBool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		sums := make([]summary, 0, len(mols))
		for i, mol := range mols {
			sums = append(sums, summarize(args[i], mol))
		}
		return enc.Encode(sums)
	}
	for i, mol := range mols {
		printSummary(out, summarize(args[i], mol))
	}
	return nil
}
