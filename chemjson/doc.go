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

// Package chemjson implements the serialization and unserialization of
// molcore molecules as JSON records of the form
//
//	{"id": "...", "atoms": [{"id": "...", "symbol": "C", "position": [0, 0, 0]}],
//	 "bonds": [{"id": "...", "atom1Index": 0, "atom2Index": 1, "order": 2}]}
//
// Records are meant to save and restore the state of a program, and to
// communicate molcore programs with other programs, which need not be written
// in Go. Identities are optional when reading, so records written by hand, or by
// older programs, can be read.
package chemjson
