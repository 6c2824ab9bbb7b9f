/*
 * json.go, part of molcore.
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

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	chem "github.com/rmera/molcore"
)

// Atom is the persisted form of a chem.Atom.
type Atom struct {
	ID       uuid.UUID `json:"id" msgpack:"id"`
	Symbol   string    `json:"symbol" msgpack:"symbol"`
	Position []float32 `json:"position" msgpack:"position"`
}

// Bond is the persisted form of a chem.Bond.
type Bond struct {
	ID         uuid.UUID `json:"id" msgpack:"id"`
	Atom1Index int       `json:"atom1Index" msgpack:"atom1Index"`
	Atom2Index int       `json:"atom2Index" msgpack:"atom2Index"`
	Order      int       `json:"order" msgpack:"order"`
}

// Molecule is the persisted form of a chem.Molecule. The identities are always
// written, but may be absent (or nil) when read, in which case new ones are generated.
type Molecule struct {
	ID    uuid.UUID `json:"id" msgpack:"id"`
	Atoms []Atom    `json:"atoms" msgpack:"atoms"`
	Bonds []Bond    `json:"bonds" msgpack:"bonds"`
}

// FromMolecule returns the persisted form of mol.
func FromMolecule(mol *chem.Molecule) *Molecule {
	R := &Molecule{ID: mol.ID(), Atoms: make([]Atom, 0, mol.Len()), Bonds: make([]Bond, 0, mol.NBonds())}
	for _, a := range mol.Atoms() {
		p := a.Position
		R.Atoms = append(R.Atoms, Atom{ID: a.ID, Symbol: a.Symbol, Position: []float32{p[0], p[1], p[2]}})
	}
	for _, b := range mol.Bonds() {
		R.Bonds = append(R.Bonds, Bond{ID: b.ID, Atom1Index: b.Atom1, Atom2Index: b.Atom2, Order: b.Order})
	}
	return R
}

// ToMolecule validates the record and builds a chem.Molecule from it, preserving
// the order of atoms and bonds. Absent identities are generated with newID, if given,
// or randomly otherwise. An invalid record returns an InvalidFormat *chem.Error.
func (R *Molecule) ToMolecule(newID ...func() uuid.UUID) (*chem.Molecule, error) {
	gen := uuid.New
	if len(newID) > 0 && newID[0] != nil {
		gen = newID[0]
	}
	id := func(u uuid.UUID) uuid.UUID {
		if u == uuid.Nil {
			return gen()
		}
		return u
	}
	atoms := make([]chem.Atom, 0, len(R.Atoms))
	for i, a := range R.Atoms {
		if len(a.Position) != 3 {
			return nil, chem.NewError(chem.InvalidFormat, "atom %d has %d coordinates instead of 3", i, len(a.Position))
		}
		atoms = append(atoms, chem.NewAtom(a.Symbol, chem.Vec3{a.Position[0], a.Position[1], a.Position[2]}, id(a.ID)))
	}
	bonds := make([]chem.Bond, 0, len(R.Bonds))
	for _, b := range R.Bonds {
		bonds = append(bonds, chem.NewBond(b.Atom1Index, b.Atom2Index, b.Order, id(b.ID)))
	}
	return chem.NewMolecule(atoms, bonds, id(R.ID))
}

// Marshal returns the JSON encoding of mol.
func Marshal(mol *chem.Molecule) ([]byte, error) {
	ret, err := json.Marshal(FromMolecule(mol))
	if err != nil {
		return nil, fmt.Errorf("chemjson.Marshal: %w", err)
	}
	return ret, nil
}

// Unmarshal decodes a JSON molecule record. See Molecule.ToMolecule for the use of newID.
// Both malformed JSON and invalid records return an InvalidFormat *chem.Error.
func Unmarshal(data []byte, newID ...func() uuid.UUID) (*chem.Molecule, error) {
	R := new(Molecule)
	if err := json.Unmarshal(data, R); err != nil {
		return nil, chem.WrapError(chem.InvalidFormat, err, "malformed JSON molecule")
	}
	return R.ToMolecule(newID...)
}

// Encode writes the JSON encoding of mol, followed by a newline, to out.
func Encode(out io.Writer, mol *chem.Molecule) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(FromMolecule(mol)); err != nil {
		return fmt.Errorf("chemjson.Encode: %w", err)
	}
	return nil
}

// Decode reads one JSON molecule record from in. Several records can be read in sequence
// from the same json.Decoder with DecodeFrom.
func Decode(in io.Reader, newID ...func() uuid.UUID) (*chem.Molecule, error) {
	return DecodeFrom(json.NewDecoder(in), newID...)
}

// DecodeFrom reads the next molecule record from dec. It returns io.EOF, unwrapped, when
// there are no more records.
func DecodeFrom(dec *json.Decoder, newID ...func() uuid.UUID) (*chem.Molecule, error) {
	R := new(Molecule)
	if err := dec.Decode(R); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, chem.WrapError(chem.InvalidFormat, err, "malformed JSON molecule")
	}
	return R.ToMolecule(newID...)
}
