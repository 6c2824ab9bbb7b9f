/*
 * mol.go, part of molcore.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// MOL reads and writes MDL molfiles (V2000), and the first record of SDF files.
// The zero value is ready to use.
type MOL struct {
	//NewID generates the identities of the parsed atoms, bonds and molecule.
	//If nil, random UUIDs are used.
	NewID func() uuid.UUID

	//Title is written as the first line of the files produced by Write.
	//If empty, the formula of the molecule is used.
	Title string
}

// Name returns "mol".
func (M *MOL) Name() string { return "mol" }

// CanHandle reports whether name has the mol, sdf, sd or mdl extension.
func (M *MOL) CanHandle(name string) bool {
	return isInString([]string{".mol", ".sdf", ".sd", ".mdl"}, extension(name))
}

// Sniff reports whether the fourth line of text is a V2000 or V3000 counts line.
func (M *MOL) Sniff(text string) bool {
	lines := splitLines(text)
	if len(lines) < 4 {
		return false
	}
	return strings.Contains(lines[3], "V2000") || strings.Contains(lines[3], "V3000")
}

// column returns the trimmed content of line between the 0-based from and to
// columns, or the part of it that exists if line is shorter.
func column(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	return strings.TrimSpace(line[from:min(to, len(line))])
}

// endOfBlock reports whether line ends the atom or bond blocks early.
func endOfBlock(line string) bool {
	return blank(line) || strings.HasPrefix(line, "M  ") || strings.HasPrefix(line, "$$$$")
}

// molOrder translates the bond type of a molfile into a bond order.
// Aromatic and query types are read as single bonds.
func molOrder(btype int) (int, bool) {
	switch {
	case btype >= 1 && btype <= 3:
		return btype, true
	case btype >= 4 && btype <= 8:
		return 1, true
	}
	return 0, false
}

// Parse parses the text of a V2000 molfile. For SDF files, only the first record is
// read. V3000 files return an UnsupportedFormat *Error, and any violation of the format
// an InvalidFormat *Error.
func (M *MOL) Parse(text string) (*Molecule, error) {
	const format = "mol"
	lines := splitLines(text)
	if len(lines) < 4 {
		err := NewError(InvalidFormat, "molfile must contain 3 header lines and a counts line, found %d lines", len(lines))
		err.format = format
		return nil, err
	}
	counts := lines[3]
	if strings.Contains(counts, "V3000") {
		err := NewError(UnsupportedFormat, "V3000 molfiles are not supported")
		err.format = format
		err.line = 4
		err.content = counts
		return nil, err
	}
	natoms, err1 := strconv.Atoi(column(counts, 0, 3))
	nbonds, err2 := strconv.Atoi(column(counts, 3, 6))
	if err1 != nil || err2 != nil || natoms < 0 || nbonds < 0 {
		return nil, lineError(format, 4, counts, "the counts line must start with the number of atoms and bonds")
	}
	atoms := make([]Atom, 0, natoms)
	for i := 4; len(atoms) < natoms; i++ {
		if i >= len(lines) || endOfBlock(lines[i]) {
			return nil, countError(format, "atom", natoms, len(atoms))
		}
		line := lines[i]
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, lineError(format, i+1, line, "expected 'X Y Z Symbol', found %d fields", len(fields))
		}
		var pos Vec3
		for k, f := range fields[:3] {
			c, err := parseCoord(f)
			if err != nil {
				return nil, lineError(format, i+1, line, "non-numeric coordinate %q", f)
			}
			pos[k] = c
		}
		atoms = append(atoms, NewAtom(fields[3], pos, newID(M.NewID)))
	}
	bonds := make([]Bond, 0, nbonds)
	for i := 4 + natoms; len(bonds) < nbonds; i++ {
		if i >= len(lines) || endOfBlock(lines[i]) {
			return nil, countError(format, "bond", nbonds, len(bonds))
		}
		line := lines[i]
		a1, err1 := strconv.Atoi(column(line, 0, 3))
		a2, err2 := strconv.Atoi(column(line, 3, 6))
		btype, err3 := strconv.Atoi(column(line, 6, 9))
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, lineError(format, i+1, line, "expected bond line with two atom numbers and a bond type")
		}
		for _, a := range []int{a1, a2} {
			if a < 1 || a > natoms {
				return nil, lineError(format, i+1, line, "bond references atom %d, but there are %d atoms", a, natoms)
			}
		}
		if a1 == a2 {
			return nil, lineError(format, i+1, line, "atom %d bonded to itself", a1)
		}
		order, ok := molOrder(btype)
		if !ok {
			return nil, lineError(format, i+1, line, "unknown bond type %d", btype)
		}
		bonds = append(bonds, NewBond(a1-1, a2-1, order, newID(M.NewID)))
	}
	mol, err := NewMolecule(atoms, bonds, newID(M.NewID))
	return mol, errDecorate(err, "MOL.Parse")
}

// Write writes mol to out as a V2000 molfile. It returns an error if mol has
// more than 999 atoms or bonds, or bonds of order higher than 3, which V2000
// cannot represent.
func (M *MOL) Write(out io.Writer, mol *Molecule) error {
	if mol.Len() > 999 || mol.NBonds() > 999 {
		return fmt.Errorf("MOL.Write: %d atoms and %d bonds don't fit in a V2000 molfile", mol.Len(), mol.NBonds())
	}
	title := strings.NewReplacer("\r", " ", "\n", " ").Replace(M.Title)
	if title == "" {
		title = Formula(mol)
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%s\n  molcore\n\n", title)
	fmt.Fprintf(w, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", mol.Len(), mol.NBonds())
	for i := 0; i < mol.Len(); i++ {
		a := mol.Atom(i)
		p := a.Position
		fmt.Fprintf(w, "%10.4f%10.4f%10.4f %-3s 0  0  0  0  0  0  0  0  0  0  0  0\n", p[0], p[1], p[2], a.Symbol)
	}
	for i := 0; i < mol.NBonds(); i++ {
		b := mol.Bond(i)
		if b.Order > 3 {
			return fmt.Errorf("MOL.Write: bond %d has order %d, V2000 only supports orders up to 3", i, b.Order)
		}
		fmt.Fprintf(w, "%3d%3d%3d  0\n", b.Atom1+1, b.Atom2+1, b.Order)
	}
	fmt.Fprintln(w, "M  END")
	if err := w.Flush(); err != nil {
		return fmt.Errorf("MOL.Write: %w", err)
	}
	return nil
}
