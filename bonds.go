/*
 * bonds.go, part of molcore.
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
	"fmt"
	"sort"
)

// constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

type candidate struct {
	at1, at2 int
	dist     float64
	removed  bool
}

// AssignBonds returns a new Molecule with the atoms of mol and bonds assigned
// based on a simple distance criterion, similar to that described in
// DOI:10.1186/1758-2946-3-33. Atoms with more bonds than their element allows
// lose their longest bonds. All the assigned bonds have order 1. The bonds
// already present in mol are discarded, and mol is not modified.
// It is quadratic in the number of atoms, so it's not thought for macromolecules.
func AssignBonds(mol *Molecule) (*Molecule, error) {
	tot := mol.Len()
	if tot == 0 {
		return NewMolecule(nil, nil)
	}
	coord := mol.Coords()
	radii := make([]float64, tot)
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		r, ok := CovalentRadius(at.Symbol)
		if !ok {
			return nil, fmt.Errorf("AssignBonds: couldn't find the covalent radius for %s %d", at.Symbol, i)
		}
		radii[i] = r
	}
	cands := make([]*candidate, 0, tot)
	perAtom := make([][]*candidate, tot)
	for i := 0; i < tot; i++ {
		for j := i + 1; j < tot; j++ {
			d := coord.Distance(i, j)
			if d < radii[i]+radii[j]+bondtol && d > tooclose {
				c := &candidate{at1: i, at2: j, dist: d}
				cands = append(cands, c)
				perAtom[i] = append(perAtom[i], c)
				perAtom[j] = append(perAtom[j], c)
			}
		}
	}
	//Now we check that no atom has too many bonds.
	for i := 0; i < tot; i++ {
		max := maxBonds(mol.Atom(i).Symbol)
		if max == 0 {
			continue
		}
		active := make([]*candidate, 0, len(perAtom[i]))
		for _, c := range perAtom[i] {
			if !c.removed {
				active = append(active, c)
			}
		}
		if len(active) <= max {
			continue
		}
		sort.SliceStable(active, func(a, b int) bool { return active[a].dist < active[b].dist })
		for _, c := range active[max:] {
			c.removed = true //we remove the longest bonds
		}
	}
	bonds := make([]Bond, 0, len(cands))
	for _, c := range cands {
		if !c.removed {
			bonds = append(bonds, NewBond(c.at1, c.at2, 1))
		}
	}
	return NewMolecule(mol.atoms, bonds)
}
