/*
 * geometric.go, part of molcore.
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
	"math"

	"gonum.org/v1/gonum/floats"
)

// Centroid returns the geometric center of the atoms of mol.
// ok is false if mol has no atoms.
func Centroid(mol *Molecule) (c Vec3, ok bool) {
	coords := mol.Coords()
	if coords == nil {
		return c, false
	}
	return toVec3(coords.Centroid().RawRowView(0)), true
}

// Bounds returns the corners of the axis-aligned box that contains all the
// atoms of mol. ok is false if mol has no atoms.
func Bounds(mol *Molecule) (min, max Vec3, ok bool) {
	coords := mol.Coords()
	if coords == nil {
		return min, max, false
	}
	mn, mx := coords.Bounds()
	return toVec3(mn[:]), toVec3(mx[:]), true
}

// MassCenter returns the center of mass of mol. It returns an error if mol
// has no atoms, or if the mass of some element is unknown.
func MassCenter(mol *Molecule) (Vec3, error) {
	var c Vec3
	if mol.Len() == 0 {
		return c, fmt.Errorf("MassCenter: molecule has no atoms")
	}
	coords := mol.Coords()
	masses := make([]float64, mol.Len())
	for i := range masses {
		m, ok := Mass(mol.Atom(i).Symbol)
		if !ok {
			return c, fmt.Errorf("MassCenter: unknown mass for element %s (atom %d)", mol.Atom(i).Symbol, i)
		}
		masses[i] = m
	}
	total := floats.Sum(masses)
	acc := make([]float64, 3)
	tmp := make([]float64, 3)
	for i, m := range masses {
		floats.AddScaled(acc, m, coords.RawRowView(i))
	}
	floats.ScaleTo(tmp, 1/total, acc)
	return toVec3(tmp), nil
}

// VdwBounds returns the corners of the axis-aligned box that contains the van der
// Waals spheres of all the atoms of mol. It returns an error if mol has no atoms,
// or if the radius of some element is unknown.
func VdwBounds(mol *Molecule) (min, max Vec3, err error) {
	if mol.Len() == 0 {
		return min, max, fmt.Errorf("VdwBounds: molecule has no atoms")
	}
	coords := mol.Coords()
	lo := []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i < mol.Len(); i++ {
		r, ok := VdwRadius(mol.Atom(i).Symbol)
		if !ok {
			return min, max, fmt.Errorf("VdwBounds: unknown van der Waals radius for element %s (atom %d)", mol.Atom(i).Symbol, i)
		}
		for k, v := range coords.RawRowView(i) {
			lo[k] = math.Min(lo[k], v-r)
			hi[k] = math.Max(hi[k], v+r)
		}
	}
	return toVec3(lo), toVec3(hi), nil
}

func toVec3(f []float64) Vec3 {
	return Vec3{float32(f[0]), float32(f[1]), float32(f[2])}
}
