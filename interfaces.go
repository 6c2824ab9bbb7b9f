/*
 * interfaces.go, part of molcore.
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

import "io"

// Atomer is the basic interface for a set of atoms.
type Atomer interface {

	//Atom returns the Atom with index i. Should panic if
	//out of range.
	Atom(i int) Atom

	Len() int
}

// Format is a strategy that turns the text of one structural file format into
// a Molecule. Formats are stateless and safe for concurrent use.
type Format interface {

	//Name returns a short, lowercase name for the format, i.e. "xyz".
	Name() string

	//CanHandle reports whether the format handles files with the given
	//name or extension ("mol.xyz", ".xyz" and "xyz" are all valid).
	CanHandle(name string) bool

	//Parse converts the whole text of a file into a Molecule.
	//It never returns a partial result.
	Parse(text string) (*Molecule, error)
}

// Sniffer is implemented by formats that can recognize their own content
// when no file name is available, or when the name doesn't match any format.
type Sniffer interface {
	Sniff(text string) bool
}

// Writer is implemented by formats that can also write a Molecule.
type Writer interface {
	Write(out io.Writer, mol *Molecule) error
}

//Errors

// DecoratedError is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type DecoratedError interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
}
