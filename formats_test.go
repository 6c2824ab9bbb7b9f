/*
 * formats_test.go, part of molcore.
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
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waterXYZ = "3\nwater\nO 0 0 0\nH 0.96 0 0\nH -0.24 0.93 0\n"

func TestForName(Te *testing.T) {
	cases := map[string]string{
		"water.xyz":       "xyz",
		"WATER.XYZ":       "xyz",
		"xyz":             "xyz",
		".xyz":            "xyz",
		"dir/benzene.sdf": "mol",
		"a.mol.gz":        "mol",
		"1abc.pdb.zst":    "pdb",
		"1abc.ent":        "pdb",
	}
	for name, want := range cases {
		f, err := DefaultRegistry.ForName(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, want, f.Name(), name)
	}
	_, err := DefaultRegistry.ForName("structure.cif")
	require.Error(Te, err)
	assert.ErrorIs(Te, err, UnsupportedFormat)
	assert.True(Te, strings.HasPrefix(err.Error(), "Unsupported format: "))
	assert.Contains(Te, err.Error(), "xyz, mol, pdb")
}

func TestDetect(Te *testing.T) {
	pdb := pdbAtom(1, " O", 0, 0, 0, "O")
	cases := map[string]string{
		waterXYZ:            "xyz",
		formaldehyde(0, ""): "mol",
		pdb:                 "pdb",
		"REMARK\n" + pdb:    "pdb",
	}
	for text, want := range cases {
		f, err := DefaultRegistry.Detect("", text)
		require.NoError(Te, err)
		assert.Equal(Te, want, f.Name())
		//an unknown extension falls back to the content.
		f, err = DefaultRegistry.Detect("data.txt", text)
		require.NoError(Te, err)
		assert.Equal(Te, want, f.Name())
	}
	_, err := DefaultRegistry.Detect("notes.txt", "hello world\n")
	assert.ErrorIs(Te, err, UnsupportedFormat)
	assert.Contains(Te, err.Error(), "notes.txt")
	_, err = DefaultRegistry.Detect("", "")
	assert.ErrorIs(Te, err, UnsupportedFormat)
}

func TestParse(Te *testing.T) {
	mol, err := Parse("water.xyz", waterXYZ)
	require.NoError(Te, err)
	assert.Equal(Te, "H2O", Formula(mol))
	//the extension wins over the content.
	_, err = Parse("water.pdb", waterXYZ)
	assert.ErrorIs(Te, err, InvalidFormat)
	_, err = Parse("water.cif", "nothing")
	assert.ErrorIs(Te, err, UnsupportedFormat)
	e := asError(Te, err)
	assert.Equal(Te, []string{"Registry.Parse"}, e.Decorate(""))
}

// upper is a toy format: one atom per line, with the symbol in upper case.
type upper struct{}

func (u upper) Name() string               { return "upper" }
func (u upper) CanHandle(name string) bool { return extension(name) == ".up" }
func (u upper) Parse(text string) (*Molecule, error) {
	var atoms []Atom
	for i, l := range splitLines(text) {
		if blank(l) {
			continue
		}
		if strings.ToUpper(l) != l {
			return nil, lineError("upper", i+1, l, "symbols must be in upper case")
		}
		atoms = append(atoms, NewAtom(NormalSymbol(l), Vec3{float32(i), 0, 0}))
	}
	return NewMolecule(atoms, nil)
}

func TestRegister(Te *testing.T) {
	R := NewRegistry(&XYZ{})
	_, err := R.Parse("a.up", "C\nO\n")
	assert.ErrorIs(Te, err, UnsupportedFormat)
	R.Register(upper{})
	assert.Equal(Te, []string{"xyz", "upper"}, R.Formats())
	mol, err := R.Parse("a.up", "C\nO\n")
	require.NoError(Te, err)
	assert.Equal(Te, "CO", Formula(mol))
	_, err = R.Parse("a.up", "C\nCl\n")
	assert.Equal(Te, 2, asError(Te, err).Line())
	//upper can't write
	_, err = R.Writer("a.up")
	assert.ErrorIs(Te, err, UnsupportedFormat)
	w, err := R.Writer("a.xyz")
	require.NoError(Te, err)
	assert.IsType(Te, &XYZ{}, w)
}

func TestRegistryConcurrency(Te *testing.T) {
	R := NewRegistry(&XYZ{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			mol, err := R.Parse("", waterXYZ)
			if assert.NoError(Te, err) {
				assert.Equal(Te, 3, mol.Len())
			}
		}()
		go func() {
			defer wg.Done()
			R.Register(upper{})
		}()
	}
	wg.Wait()
	assert.Len(Te, R.Formats(), 9)
}
