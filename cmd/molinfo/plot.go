/*
 * plot.go, part of molcore.
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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmera/molcore/chemplot"
)

var plotCmd = &cobra.Command{
	Use:   "plot <file> <image>",
	Short: "Plot a histogram of the interatomic distances of a structure",
	Long:  "Plot the distances between all the atoms, or the bond lengths, of a structure file. The image format is given by its extension.",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().Int("bins", 0, "Number of bins (default: square root of the number of distances)")
	plotCmd.Flags().Bool("bonded", false, "Plot only the bond lengths")
	plotCmd.Flags().Bool("by-element", false, "Plot the bond lengths, one histogram per pair of elements")

	_ = viper.BindPFlag("bins", plotCmd.Flags().Lookup("bins"))
	_ = viper.BindPFlag("bonded", plotCmd.Flags().Lookup("bonded"))
	_ = viper.BindPFlag("by_element", plotCmd.Flags().Lookup("by-element"))

	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	mols, err := loadAll(cmd, args[:1])
	if err != nil {
		return err
	}
	mol, image := mols[0], args[1]
	bins := viper.GetInt("bins")
	if viper.GetBool("by_element") {
		err = chemplot.BondLengthHistogram(mol, bins, image)
	} else {
		err = chemplot.DistanceHistogram(mol, bins, viper.GetBool("bonded"), image)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "plot written to %s\n", image)
	return nil
}
