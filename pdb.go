/*
 * pdb.go, part of molcore.
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

// PDB reads and writes the atoms and CONECT records of Protein Data Bank files.
// Only the first model of multi-model files is read. Residue, chain and other
// biomolecular information is ignored. The zero value is ready to use.
type PDB struct {
	//NewID generates the identities of the parsed atoms, bonds and molecule.
	//If nil, random UUIDs are used.
	NewID func() uuid.UUID
}

// Name returns "pdb".
func (P *PDB) Name() string { return "pdb" }

// CanHandle reports whether name has the pdb or ent extension.
func (P *PDB) CanHandle(name string) bool {
	return isInString([]string{".pdb", ".ent"}, extension(name))
}

func isAtomRecord(line string) bool {
	return strings.HasPrefix(line, "ATOM  ") || strings.HasPrefix(line, "HETATM")
}

// Sniff reports whether text contains an ATOM or HETATM record.
func (P *PDB) Sniff(text string) bool {
	for _, l := range splitLines(text) {
		if isAtomRecord(l) {
			return true
		}
	}
	return false
}

// symbolFromName guesses the element symbol from a PDB atom name. It only
// knows the elements common in biomolecules.
func symbolFromName(name string) (string, error) {
	name = strings.TrimLeft(strings.TrimSpace(name), "0123456789")
	symbol := ""
	switch {
	case name == "":
	case len(name) == 4 || name[0] == 'H': //Only Hs have 4-char names in amber.
		symbol = "H"
	case name[0] == 'C': //Ca is not considered here.
		switch name {
		case "CU":
			symbol = "Cu"
		case "CO":
			symbol = "Co"
		case "CL":
			symbol = "Cl"
		default:
			symbol = "C"
		}
	case name[0] == 'N':
		if name == "NA" {
			symbol = "Na"
		} else {
			symbol = "N"
		}
	case name[0] == 'O':
		symbol = "O"
	case name[0] == 'P':
		symbol = "P"
	case name[0] == 'S':
		if name == "SE" {
			symbol = "Se"
		} else {
			symbol = "S"
		}
	case strings.HasPrefix(name, "ZN"):
		symbol = "Zn"
	case strings.HasPrefix(name, "FE"):
		symbol = "Fe"
	case strings.HasPrefix(name, "MG"):
		symbol = "Mg"
	}
	if symbol == "" {
		return symbol, fmt.Errorf("couldn't guess the element from atom name %q", name)
	}
	return symbol, nil
}

type conect struct {
	from, to int //serials
	line     int
	content  string
}

type atomPair struct{ a, b int }

// Parse parses the text of a PDB file. The element is read from columns 77-78 or,
// if absent, guessed from the atom name, and normalized, so "CL" is read as "Cl".
// CONECT records are read as bonds: a partner listed twice by the same atom is a
// double bond, and three times a triple bond.
// Any violation of the format returns an InvalidFormat *Error.
func (P *PDB) Parse(text string) (*Molecule, error) {
	const format = "pdb"
	lines := splitLines(text)
	atoms := make([]Atom, 0, len(lines))
	serials := make(map[int]int) //serial to atom index
	var conects []conect
	firstmodel := true
reading:
	for i, line := range lines {
		switch {
		case isAtomRecord(line) && firstmodel:
			if len(line) < 54 {
				return nil, lineError(format, i+1, line, "ATOM/HETATM record too short, coordinates should be in columns 31-54")
			}
			serial, err := strconv.Atoi(column(line, 6, 11))
			if err != nil {
				return nil, lineError(format, i+1, line, "invalid atom serial %q", column(line, 6, 11))
			}
			if _, ok := serials[serial]; ok {
				return nil, lineError(format, i+1, line, "duplicated atom serial %d", serial)
			}
			var pos Vec3
			for k := range pos {
				f := column(line, 30+8*k, 38+8*k)
				c, err := parseCoord(f)
				if err != nil {
					return nil, lineError(format, i+1, line, "non-numeric coordinate %q", f)
				}
				pos[k] = c
			}
			symbol := column(line, 76, 78)
			if symbol == "" {
				symbol, err = symbolFromName(column(line, 12, 16))
				if err != nil {
					return nil, lineError(format, i+1, line, "%s", err.Error())
				}
			}
			serials[serial] = len(atoms)
			atoms = append(atoms, NewAtom(NormalSymbol(symbol), pos, newID(P.NewID)))
		case strings.HasPrefix(line, "ENDMDL"):
			firstmodel = false
		case strings.HasPrefix(line, "CONECT"):
			from, err := strconv.Atoi(column(line, 6, 11))
			if err != nil {
				return nil, lineError(format, i+1, line, "invalid atom serial %q", column(line, 6, 11))
			}
			for k := 11; k < 31; k += 5 {
				f := column(line, k, k+5)
				if f == "" {
					continue
				}
				to, err := strconv.Atoi(f)
				if err != nil {
					return nil, lineError(format, i+1, line, "invalid atom serial %q", f)
				}
				conects = append(conects, conect{from: from, to: to, line: i + 1, content: line})
			}
		case strings.HasPrefix(line, "END") && !strings.HasPrefix(line, "ENDMDL"):
			break reading
		}
	}
	if len(atoms) == 0 {
		err := NewError(InvalidFormat, "no ATOM or HETATM records found")
		err.format = format
		return nil, err
	}
	counts := make(map[atomPair]int)
	var pairs []atomPair //unordered pairs, in order of appearance
	for _, c := range conects {
		a, ok1 := serials[c.from]
		b, ok2 := serials[c.to]
		if !ok1 || !ok2 {
			missing := c.from
			if ok1 {
				missing = c.to
			}
			return nil, lineError(format, c.line, c.content, "CONECT references unknown atom serial %d", missing)
		}
		if a == b {
			return nil, lineError(format, c.line, c.content, "atom serial %d bonded to itself", c.from)
		}
		if _, ok := counts[atomPair{a, b}]; !ok {
			if _, ok := counts[atomPair{b, a}]; !ok {
				pairs = append(pairs, atomPair{min(a, b), max(a, b)})
			}
		}
		counts[atomPair{a, b}]++
	}
	bonds := make([]Bond, 0, len(pairs))
	for _, p := range pairs {
		order := min(max(counts[p], counts[atomPair{p.b, p.a}]), 3)
		bonds = append(bonds, NewBond(p.a, p.b, order, newID(P.NewID)))
	}
	mol, err := NewMolecule(atoms, bonds, newID(P.NewID))
	return mol, errDecorate(err, "PDB.Parse")
}

// Write writes mol to out as HETATM records of a single residue, followed by
// CONECT records for the bonds, where bonds of order n list their partner n times.
func (P *PDB) Write(out io.Writer, mol *Molecule) error {
	if mol.Len() > 99999 {
		return fmt.Errorf("PDB.Write: %d atoms don't fit in a PDB file", mol.Len())
	}
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "REMARK WRITTEN WITH MOLCORE")
	for i := 0; i < mol.Len(); i++ {
		a := mol.Atom(i)
		p := a.Position
		name := fmt.Sprintf("%-4s", a.Symbol)
		if len(a.Symbol) == 1 {
			name = fmt.Sprintf(" %-3s", a.Symbol)
		}
		fmt.Fprintf(w, "HETATM%5d %-4s MOL A   1    %8.3f%8.3f%8.3f  1.00  0.00          %2s\n",
			i+1, name, p[0], p[1], p[2], strings.ToUpper(a.Symbol))
	}
	for i := 0; i < mol.Len(); i++ {
		var partners []int
		for _, b := range mol.BondsOf(i) {
			for range b.Order {
				partners = append(partners, b.Cross(i)+1)
			}
		}
		for len(partners) > 0 {
			n := min(4, len(partners))
			fmt.Fprintf(w, "CONECT%5d", i+1)
			for _, p := range partners[:n] {
				fmt.Fprintf(w, "%5d", p)
			}
			fmt.Fprintln(w)
			partners = partners[n:]
		}
	}
	fmt.Fprintln(w, "END")
	if err := w.Flush(); err != nil {
		return fmt.Errorf("PDB.Write: %w", err)
	}
	return nil
}
