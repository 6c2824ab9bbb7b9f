/*
 * convert.go, part of molcore.
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

	chem "github.com/rmera/molcore"
	"github.com/rmera/molcore/session"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a structure file to another format",
	Long: "Read a structure or session file and write it in the format given by the extension of the output,\n" +
		"which can be a structure format (xyz, mol, sdf, pdb) or a session (json, msgpack, mpk).\n" +
		"Both can be followed by .gz or .zst (sessions .zst or .zstd) to compress them.",
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	var mol *chem.Molecule
	var err error
	if isSession(in) {
		mol, err = session.Load(in)
	} else {
		var mols []*chem.Molecule
		mols, err = loadAll(cmd, []string{in})
		if err == nil {
			mol = mols[0]
		}
	}
	if err != nil {
		return err
	}
	if isSession(out) {
		err = session.Save(out, mol)
	} else {
		err = chem.FileWrite(out, mol)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d atoms, %d bonds written to %s\n", chem.Formula(mol), mol.Len(), mol.NBonds(), out)
	return nil
}
