/*
 * xyz.go, part of molcore.
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
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// XYZ reads and writes the XYZ format: an atom count line, a comment line and one
// "Symbol X Y Z" line per atom. XYZ files carry no bonds.
// The zero value is ready to use.
type XYZ struct {
	//NewID generates the identities of the parsed atoms and molecule.
	//If nil, random UUIDs are used.
	NewID func() uuid.UUID

	//Comment is written as the second line of the files produced by Write.
	//If blank, a default comment is written.
	Comment string
}

// Name returns "xyz".
func (X *XYZ) Name() string { return "xyz" }

// CanHandle reports whether name has the xyz extension.
func (X *XYZ) CanHandle(name string) bool { return extension(name) == ".xyz" }

// splitLines splits text in lines, removing the carriage returns of CRLF files.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Sniff reports whether text starts with an integer line followed, after the
// comment, by a "Symbol X Y Z" line.
func (X *XYZ) Sniff(text string) bool {
	lines := splitLines(text)
	h := 0
	for h < len(lines) && blank(lines[h]) {
		h++
	}
	if h >= len(lines) {
		return false
	}
	if n, err := strconv.Atoi(strings.TrimSpace(lines[h])); err != nil || n < 0 {
		return false
	}
	for _, l := range lines[min(h+2, len(lines)):] {
		if blank(l) {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) != 4 {
			return false
		}
		for _, f := range fields[1:] {
			if _, err := parseCoord(f); err != nil {
				return false
			}
		}
		return true
	}
	return false
}

// Parse parses the text of an XYZ file. The first non-blank line is the atom count,
// the line after it a comment, and the following non-blank lines the atoms.
// Lines after the last expected atom are ignored. Any violation of the format
// returns an InvalidFormat *Error, and no Molecule.
func (X *XYZ) Parse(text string) (*Molecule, error) {
	const format = "xyz"
	lines := splitLines(text)
	nonempty := 0
	for _, l := range lines {
		if !blank(l) {
			nonempty++
		}
	}
	//count, comment, and at least one atom
	if nonempty < 3 {
		err := NewError(InvalidFormat, "XYZ file must contain at least 3 non-empty lines (atom count, comment and at least one atom), found %d", nonempty)
		err.format = format
		return nil, err
	}
	h := 0
	for blank(lines[h]) {
		h++
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[h]))
	if err != nil {
		return nil, lineError(format, h+1, lines[h], "the atom count header must be an integer")
	}
	if natoms < 0 {
		return nil, lineError(format, h+1, lines[h], "the atom count header must not be negative")
	}
	//lines[h+1] is the comment, we don't care about it.
	//the header counts as one non-empty line, the comment may or may not.
	if natoms > nonempty-1 {
		return nil, countError(format, "atom", natoms, atomLines(lines[min(h+2, len(lines)):], natoms))
	}
	atoms := make([]Atom, 0, natoms)
	for i := h + 2; i < len(lines) && len(atoms) < natoms; i++ {
		line := lines[i]
		if blank(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, lineError(format, i+1, line, "expected 'Symbol X Y Z', found %d fields", len(fields))
		}
		var pos Vec3
		for k, f := range fields[1:] {
			c, err := parseCoord(f)
			if err != nil {
				return nil, lineError(format, i+1, line, "non-numeric coordinate %q", f)
			}
			pos[k] = c
		}
		atoms = append(atoms, NewAtom(fields[0], pos, newID(X.NewID)))
	}
	if len(atoms) != natoms {
		return nil, countError(format, "atom", natoms, len(atoms))
	}
	mol, err := NewMolecule(atoms, nil, newID(X.NewID))
	return mol, errDecorate(err, "XYZ.Parse")
}

// atomLines returns the number of non-blank lines in lines, up to max.
func atomLines(lines []string, max int) int {
	n := 0
	for _, l := range lines {
		if n >= max {
			break
		}
		if !blank(l) {
			n++
		}
	}
	return n
}

// parseCoord parses a finite single-precision coordinate.
func parseCoord(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("coordinate %s is not finite", s)
	}
	return float32(f), nil
}

// formatCoord returns the shortest representation of c that parses back to c.
func formatCoord(c float32) string {
	return strconv.FormatFloat(float64(c), 'f', -1, 32)
}

// Write writes mol to out in the XYZ format. Bonds are not written.
func (X *XYZ) Write(out io.Writer, mol *Molecule) error {
	w := bufio.NewWriter(out)
	comment := strings.NewReplacer("\r", " ", "\n", " ").Replace(X.Comment)
	if blank(comment) {
		comment = "Written with molcore" //a blank comment would not count as a line when reading back.
	}
	fmt.Fprintf(w, "%d\n%s\n", mol.Len(), comment)
	for i := 0; i < mol.Len(); i++ {
		a := mol.Atom(i)
		p := a.Position
		fmt.Fprintf(w, "%-2s %14s %14s %14s\n", a.Symbol, formatCoord(p[0]), formatCoord(p[1]), formatCoord(p[2]))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("XYZ.Write: %w", err)
	}
	return nil
}

// XYZParse parses the text of an XYZ file with the default settings.
func XYZParse(text string) (*Molecule, error) {
	return new(XYZ).Parse(text)
}

// XYZWrite writes mol to out in the XYZ format, with the given comment line.
func XYZWrite(out io.Writer, mol *Molecule, comment string) error {
	X := &XYZ{Comment: comment}
	return X.Write(out, mol)
}
