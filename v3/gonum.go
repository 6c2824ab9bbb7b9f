/*
 * gonum.go, part of molcore.
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

//gonum.go contains what is needed for handling the gonum/mat types.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space, backed by a row-major gonum Dense.
// Within the package a "vector" is a row vector, i.e. the
// cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// data is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	if rows == 0 {
		return nil, Error{string(ErrNotEnoughElements), []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Errors

// Error is the error type of the v3 package. It satisfies the chem.DecoratedError interface.
type Error struct {
	message string
	deco    []string
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("molcore/v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("molcore/v3: not enough elements in Matrix")
	ErrIndexOutOfRange   = PanicMsg("molcore/v3: index out of range")
)
