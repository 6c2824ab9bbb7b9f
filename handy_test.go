/*
 * handy_test.go, part of molcore.
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

package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormula(Te *testing.T) {
	cases := map[string]string{
		"3\nc\nO 0 0 0\nH 1 0 0\nH 0 1 0\n":                  "H2O",
		"4\nc\nC 0 0 0\nO 1 0 0\nH 0 1 0\nH 0 0 1\n":         "CH2O",
		"3\nc\nCL 0 0 0\nC 1 0 0\nBr 0 1 0\n":                "CBrCl",
		"3\nc\nNa 0 0 0\ncl 1 0 0\nCl 5 0 0\n":               "Cl2Na",
		"5\nc\nN 0 0 0\nH 1 0 0\nH 0 1 0\nH 0 0 1\nC 2 2 2\n": "CH3N",
	}
	for text, want := range cases {
		mol, err := XYZParse(text)
		if assert.NoError(Te, err) {
			assert.Equal(Te, want, Formula(mol))
		}
	}
}

func TestExtension(Te *testing.T) {
	cases := map[string]string{
		"a.xyz":          ".xyz",
		"A.XYZ":          ".xyz",
		"dir.d/a.pdb.gz": ".pdb",
		"a.sdf.ZST":      ".sdf",
		"pdb":            ".pdb",
		"dir/noext":      "",
		"":               "",
		".gz":            ".gz",
	}
	for name, want := range cases {
		assert.Equal(Te, want, extension(name), name)
	}
}
