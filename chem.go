/*
 * chem.go, part of molcore.
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
	"github.com/google/uuid"

	v3 "github.com/rmera/molcore/v3"
)

/**Note: The accessors here panic when given an out-of-range index, as that is a
 * programming error in the caller. Everything that comes from outside (files, saved sessions)
 * is validated and returned as an *Error instead.**/

// Vec3 is a position in 3D space, in Angstroms.
type Vec3 [3]float32

// Atom is a single element instance with a 3D position.
// Symbol is kept with the case given by the source.
type Atom struct {
	ID       uuid.UUID
	Symbol   string
	Position Vec3
}

// NewAtom returns an Atom. If no id is given, or the given id is uuid.Nil,
// a fresh one is generated.
func NewAtom(symbol string, pos Vec3, id ...uuid.UUID) Atom {
	return Atom{ID: idOrNew(id), Symbol: symbol, Position: pos}
}

// Bond relates the atoms with indexes Atom1 and Atom2 in the owning
// Molecule. Order is 1, 2 or 3 for single, double or triple bonds.
type Bond struct {
	ID    uuid.UUID
	Atom1 int
	Atom2 int
	Order int
}

// NewBond returns a Bond. If no id is given, or the given id is uuid.Nil,
// a fresh one is generated.
func NewBond(atom1, atom2, order int, id ...uuid.UUID) Bond {
	return Bond{ID: idOrNew(id), Atom1: atom1, Atom2: atom2, Order: order}
}

// Cross returns the index of the atom at the other side of the bond from
// origin, or -1 if origin is not part of the bond.
func (B Bond) Cross(origin int) int {
	switch origin {
	case B.Atom1:
		return B.Atom2
	case B.Atom2:
		return B.Atom1
	}
	return -1
}

func idOrNew(id []uuid.UUID) uuid.UUID {
	if len(id) > 0 && id[0] != uuid.Nil {
		return id[0]
	}
	return uuid.New()
}

/*****Molecule type***/

// Molecule is an ordered collection of atoms and the bonds among them.
// A Molecule is immutable: all the accessors return copies, and
// there are no methods that change it.
type Molecule struct {
	id    uuid.UUID
	atoms []Atom
	bonds []Bond
}

// NewMolecule validates atoms and bonds and returns a Molecule holding copies
// of them. If no id is given, or the given id is uuid.Nil, a fresh one is generated.
// It returns an InvalidFormat *Error if an atom has an empty symbol, or a bond
// refers to an atom out of range, to the same atom twice, or has an order lower than 1.
func NewMolecule(atoms []Atom, bonds []Bond, id ...uuid.UUID) (*Molecule, error) {
	for i, a := range atoms {
		if a.Symbol == "" {
			return nil, NewError(InvalidFormat, "atom %d has an empty element symbol", i)
		}
	}
	n := len(atoms)
	for i, b := range bonds {
		if b.Atom1 < 0 || b.Atom1 >= n || b.Atom2 < 0 || b.Atom2 >= n {
			return nil, NewError(InvalidFormat, "bond %d (%d-%d) refers to an atom out of range [0, %d)", i, b.Atom1, b.Atom2, n)
		}
		if b.Atom1 == b.Atom2 {
			return nil, NewError(InvalidFormat, "bond %d bonds atom %d to itself", i, b.Atom1)
		}
		if b.Order < 1 {
			return nil, NewError(InvalidFormat, "bond %d has invalid order %d", i, b.Order)
		}
	}
	M := new(Molecule)
	M.id = idOrNew(id)
	M.atoms = append(make([]Atom, 0, n), atoms...)
	M.bonds = append(make([]Bond, 0, len(bonds)), bonds...)
	return M, nil
}

// ID returns the identity of the molecule.
func (M *Molecule) ID() uuid.UUID {
	return M.id
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

// NBonds returns the number of bonds in the molecule.
func (M *Molecule) NBonds() int {
	return len(M.bonds)
}

// Atom returns the Atom corresponding to the index i. Panics if
// out of range.
func (M *Molecule) Atom(i int) Atom {
	if i < 0 || i >= len(M.atoms) {
		panic(ErrAtomOutOfRange)
	}
	return M.atoms[i]
}

// Bond returns the Bond corresponding to the index i. Panics if
// out of range.
func (M *Molecule) Bond(i int) Bond {
	if i < 0 || i >= len(M.bonds) {
		panic(ErrBondOutOfRange)
	}
	return M.bonds[i]
}

// Atoms returns a copy of the atoms of the molecule, in declaration order.
func (M *Molecule) Atoms() []Atom {
	return append(make([]Atom, 0, len(M.atoms)), M.atoms...)
}

// Bonds returns a copy of the bonds of the molecule.
func (M *Molecule) Bonds() []Bond {
	return append(make([]Bond, 0, len(M.bonds)), M.bonds...)
}

// BondsOf returns the bonds that involve the atom with index i.
func (M *Molecule) BondsOf(i int) []Bond {
	var ret []Bond
	for _, b := range M.bonds {
		if b.Atom1 == i || b.Atom2 == i {
			ret = append(ret, b)
		}
	}
	return ret
}

// Coords returns a new v3.Matrix with the positions of all the atoms, one per
// row, or nil if the molecule has no atoms.
func (M *Molecule) Coords() *v3.Matrix {
	if len(M.atoms) == 0 {
		return nil
	}
	data := make([]float64, 0, 3*len(M.atoms))
	for _, a := range M.atoms {
		data = append(data, float64(a.Position[0]), float64(a.Position[1]), float64(a.Position[2]))
	}
	c, _ := v3.NewMatrix(data) //can't fail, the length is a non-zero multiple of 3.
	return c
}

// SameStructure reports whether M and other have the same atoms and bonds, in the
// same order, ignoring all identities.
func (M *Molecule) SameStructure(other *Molecule) bool {
	if M.Len() != other.Len() || M.NBonds() != other.NBonds() {
		return false
	}
	for i, a := range M.atoms {
		b := other.atoms[i]
		if a.Symbol != b.Symbol || a.Position != b.Position {
			return false
		}
	}
	for i, a := range M.bonds {
		b := other.bonds[i]
		if a.Atom1 != b.Atom1 || a.Atom2 != b.Atom2 || a.Order != b.Order {
			return false
		}
	}
	return true
}
