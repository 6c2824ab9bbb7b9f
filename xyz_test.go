/*
 * xyz_test.go, part of molcore.
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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asError returns err as an *Error, failing the test if it isn't one.
func asError(Te *testing.T, err error) *Error {
	Te.Helper()
	var e *Error
	require.True(Te, errors.As(err, &e), "expected an *Error, got %T: %v", err, err)
	return e
}

func TestXYZParse(Te *testing.T) {
	mol, err := XYZParse("2\nComment\nC 0.0 0.0 0.0\nO 1.2 0.0 0.0\n")
	require.NoError(Te, err)
	require.Equal(Te, 2, mol.Len())
	assert.Equal(Te, 0, mol.NBonds())
	assert.Equal(Te, "C", mol.Atom(0).Symbol)
	assert.Equal(Te, Vec3{0, 0, 0}, mol.Atom(0).Position)
	assert.Equal(Te, "O", mol.Atom(1).Symbol)
	assert.Equal(Te, Vec3{1.2, 0, 0}, mol.Atom(1).Position)
}

func TestXYZParseTolerance(Te *testing.T) {
	cases := map[string]string{
		"crlf":             "2\r\nComment\r\nC 0 0 0\r\nO 1.2 0 0\r\n",
		"padded header":    "  2  \nComment\nC 0 0 0\nO 1.2 0 0",
		"tabs":             "2\nComment\nC\t0\t0\t0\nO\t1.2 0\t0\n",
		"trailing lines":   "2\nComment\nC 0 0 0\nO 1.2 0 0\nthis is not an atom\n\n",
		"blank comment":    "2\n\nC 0 0 0\nO 1.2 0 0\n",
		"exponent":         "2\nComment\nC 0 0 0\nO 1.2e0 0 0\n",
		"leading blank":    "\n2\nComment\nC 0 0 0\nO 1.2 0 0\n",
		"blank atom lines": "2\nComment\nC 0 0 0\n\nO 1.2 0 0\n",
	}
	for name, text := range cases {
		Te.Run(name, func(Te *testing.T) {
			mol, err := XYZParse(text)
			require.NoError(Te, err)
			require.Equal(Te, 2, mol.Len())
			assert.Equal(Te, Vec3{1.2, 0, 0}, mol.Atom(1).Position)
		})
	}
}

func TestXYZCountMismatch(Te *testing.T) {
	_, err := XYZParse("3\nComment\nC 0 0 0\nO 1 0 0\n")
	require.Error(Te, err)
	assert.ErrorIs(Te, err, InvalidFormat)
	assert.Contains(Te, err.Error(), "expected 3, found 2")
	e := asError(Te, err)
	exp, found, ok := e.Counts()
	assert.True(Te, ok)
	assert.Equal(Te, 3, exp)
	assert.Equal(Te, 2, found)
}

func TestXYZHugeCount(Te *testing.T) {
	for _, header := range []string{"100000000000", "9223372036854775807"} {
		_, err := XYZParse(header + "\nComment\nC 0 0 0\n")
		require.Error(Te, err, header)
		e := asError(Te, err)
		assert.Equal(Te, InvalidFormat, e.Kind(), header)
		assert.Contains(Te, err.Error(), "expected "+header+", found 1")
		_, found, ok := e.Counts()
		assert.True(Te, ok)
		assert.Equal(Te, 1, found)
	}
	//a blank comment still leaves room for only two atoms.
	_, err := XYZParse("3\n\nC 0 0 0\nO 1 0 0\n")
	assert.Contains(Te, err.Error(), "expected 3, found 2")
}

func TestXYZWrongTokens(Te *testing.T) {
	_, err := XYZParse("1\nComment\nC 0 0\n")
	require.Error(Te, err)
	e := asError(Te, err)
	assert.Equal(Te, InvalidFormat, e.Kind())
	assert.Equal(Te, 3, e.Line())
	assert.Equal(Te, "C 0 0", e.Content())
	assert.Contains(Te, err.Error(), "line 3")
	assert.Contains(Te, err.Error(), "C 0 0")

	_, err = XYZParse("1\nComment\nC 0 0 0 0\n")
	assert.Equal(Te, 3, asError(Te, err).Line())
}

func TestXYZBadCoordinate(Te *testing.T) {
	for _, c := range []string{"x", "1.0.0", "NaN", "Inf", "1,5"} {
		_, err := XYZParse("2\nComment\nC 0 0 0\nO 1 " + c + " 0\n")
		require.Error(Te, err, c)
		e := asError(Te, err)
		assert.Equal(Te, InvalidFormat, e.Kind())
		assert.Equal(Te, 4, e.Line(), c)
		assert.Contains(Te, err.Error(), c)
	}
}

func TestXYZTooShort(Te *testing.T) {
	for _, text := range []string{"", "2", "x\n\n\ny\n", "2\nComment\n", "\n\n\n\n"} {
		_, err := XYZParse(text)
		require.Error(Te, err, "%q", text)
		e := asError(Te, err)
		assert.Equal(Te, InvalidFormat, e.Kind())
		//rejected before looking at the content of any line.
		assert.Equal(Te, 0, e.Line())
		assert.Contains(Te, err.Error(), "at least 3 non-empty lines")
	}
}

func TestXYZBadHeader(Te *testing.T) {
	_, err := XYZParse("abc\n...\n...\n")
	require.Error(Te, err)
	e := asError(Te, err)
	assert.Equal(Te, InvalidFormat, e.Kind())
	assert.Equal(Te, 1, e.Line())
	assert.Equal(Te, "abc", e.Content())
	assert.Contains(Te, err.Error(), "atom count header")

	for _, header := range []string{"-1", "-9223372036854775808", "-9223372036854775809", "99999999999999999999"} {
		_, err = XYZParse(header + "\nComment\nC 0 0 0\n")
		require.Error(Te, err, header)
		e := asError(Te, err)
		assert.Equal(Te, InvalidFormat, e.Kind(), header)
		assert.Equal(Te, 1, e.Line(), header)
		assert.Equal(Te, header, e.Content())
	}
}

func TestXYZDeterminism(Te *testing.T) {
	text := "3\nwater\nO 0 0 0\nH 0.96 0 0\nH -0.24 0.93 0\n"
	a, err := (&XYZ{NewID: seqIDs()}).Parse(text)
	require.NoError(Te, err)
	b, err := (&XYZ{NewID: seqIDs()}).Parse(text)
	require.NoError(Te, err)
	assert.Equal(Te, a.ID(), b.ID())
	if diff := cmp.Diff(a.Atoms(), b.Atoms()); diff != "" {
		Te.Errorf("parses with the same identities differ (-first +second):\n%s", diff)
	}
	c, err := XYZParse(text)
	require.NoError(Te, err)
	assert.True(Te, a.SameStructure(c))
	assert.NotEqual(Te, a.Atom(0).ID, c.Atom(0).ID)
}

func TestXYZWrite(Te *testing.T) {
	mol := water(Te)
	var buf bytes.Buffer
	require.NoError(Te, XYZWrite(&buf, mol, "water\nmolecule"))
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(Te, "3", lines[0])
	assert.Equal(Te, "water molecule", lines[1])
	assert.Equal(Te, "O               0              0              0", lines[2])
	assert.Equal(Te, "H           -0.24           0.93              0", lines[4])
	back, err := XYZParse(buf.String())
	require.NoError(Te, err)
	assert.Equal(Te, 0, back.NBonds())
	if diff := cmp.Diff(mol.Atoms(), back.Atoms(), cmp.Comparer(func(a, b Atom) bool {
		return a.Symbol == b.Symbol && a.Position == b.Position
	})); diff != "" {
		Te.Errorf("atoms changed in the round trip (-want +got):\n%s", diff)
	}
	//one atom and no comment still gives a readable file.
	one, err := NewMolecule([]Atom{NewAtom("Ar", Vec3{1, 2, 3})}, nil)
	require.NoError(Te, err)
	buf.Reset()
	require.NoError(Te, XYZWrite(&buf, one, ""))
	back, err = XYZParse(buf.String())
	require.NoError(Te, err)
	assert.True(Te, one.SameStructure(back))
}
