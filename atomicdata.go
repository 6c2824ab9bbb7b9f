/*
 * atomicdata.go, part of molcore.
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

import "strings"

// element holds the tabulated data for one chemical element.
// Covalent radii are from Cordero et al., 2008 (DOI:10.1039/B801115J),
// van der Waals radii from 10.1021/j100785a001 and 10.1021/jp8111556,
// metal radii from 10.1023/A:1011625728803.
type element struct {
	mass     float64
	covrad   float64
	vdwrad   float64
	maxbonds int //0 means undefined, i.e. the atom is not checked for max bonds.
}

// Note that just common "bio-elements" and a few others are present.
var elements = map[string]element{
	"H":  {1.008, 0.40, 1.10, 1}, //covalent 0.31, made longer: the extra bonds of H get pruned anyway.
	"He": {4.003, 0.28, 1.40, 0},
	"Li": {6.94, 1.28, 1.82, 0},
	"Be": {9.012, 0.96, 1.53, 0},
	"B":  {10.81, 0.84, 1.92, 0},
	"C":  {12.011, 0.76, 1.70, 4}, //the sp3 radius
	"N":  {14.007, 0.71, 1.55, 0},
	"O":  {15.999, 0.66, 1.52, 2},
	"F":  {18.998, 0.57, 1.47, 1},
	"Ne": {20.180, 0.58, 1.54, 0},
	"Na": {22.99, 1.66, 2.27, 0},
	"Mg": {24.305, 1.41, 1.73, 0},
	"Al": {26.98, 1.21, 1.84, 0},
	"Si": {28.085, 1.11, 2.10, 0},
	"P":  {30.974, 1.07, 1.80, 0},
	"S":  {32.06, 1.05, 1.80, 0},
	"Cl": {35.45, 1.02, 1.75, 1},
	"Ar": {39.948, 1.06, 1.88, 0},
	"K":  {39.098, 2.03, 2.75, 0},
	"Ca": {40.078, 1.76, 2.31, 0},
	"Cr": {51.996, 1.39, 1.97, 0},
	"Mn": {54.938, 1.61, 1.96, 0}, //hs
	"Fe": {55.845, 1.52, 1.96, 0}, //hs
	"Co": {58.933, 1.50, 1.95, 0}, //hs
	"Ni": {58.693, 1.24, 1.63, 0},
	"Cu": {63.546, 1.32, 2.00, 0},
	"Zn": {65.38, 1.22, 2.02, 0},
	"Se": {78.971, 1.20, 1.90, 0},
	"Br": {79.904, 1.20, 1.83, 1},
	"I":  {126.90, 1.39, 1.98, 1},
}

// NormalSymbol returns the symbol, without spaces, with the first letter in upper case and the
// rest in lower case, i.e. "CL" -> "Cl".
func NormalSymbol(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func lookup(symbol string) (element, bool) {
	e, ok := elements[NormalSymbol(symbol)]
	return e, ok
}

// Mass returns the atomic mass of the element with the given symbol, in
// atomic mass units. ok is false if the element is not tabulated. The symbol
// is case-insensitive.
func Mass(symbol string) (mass float64, ok bool) {
	e, ok := lookup(symbol)
	return e.mass, ok
}

// CovalentRadius returns the covalent radius, in Angstroms, of the element with
// the given symbol. ok is false if the element is not tabulated.
func CovalentRadius(symbol string) (r float64, ok bool) {
	e, ok := lookup(symbol)
	return e.covrad, ok
}

// VdwRadius returns the van der Waals radius, in Angstroms, of the element with
// the given symbol. ok is false if the element is not tabulated.
func VdwRadius(symbol string) (r float64, ok bool) {
	e, ok := lookup(symbol)
	return e.vdwrad, ok
}

// maxBonds returns the maximum number of bonds allowed for the element,
// or 0 if there is no limit.
func maxBonds(symbol string) int {
	e, _ := lookup(symbol)
	return e.maxbonds
}
