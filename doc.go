/*
 * doc.go, part of molcore.
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

/*
Package chem is the main package of molcore. It provides an immutable
Molecule made of atoms and bonds, and reads it from structural files.

	**Capabilities**

	Reads XYZ, MDL molfile/SDF (V2000) and PDB files, and writes them back.

	Chooses the format of a file by its extension or, failing that, by
	looking at its content. New formats can be added to a Registry by
	implementing the Format interface.

	Reads gzip and zstd compressed files transparently.

	Reports every failure to load a file as an *Error of one of three kinds
	(FileReadError, InvalidFormat, UnsupportedFormat) with the line, the
	offending content and the counts involved, whenever they are known.

	Assigns bonds from interatomic distances, and calculates the centroid,
	bounding box, center of mass and formula of molecules.

Related packages: chemjson persists molecules as JSON, session saves and
restores them and keeps the molecule being worked on, chemgraph builds
bond graphs, chemplot plots distance histograms and v3 holds the coordinate
matrices.
*/
package chem
