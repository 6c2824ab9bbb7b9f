/*
 * gocoords.go, part of molcore.
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

package v3

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Distance returns the euclidean distance between the ith and jth vectors of F.
func (F *Matrix) Distance(i, j int) float64 {
	n := F.NVecs()
	if i < 0 || j < 0 || i >= n || j >= n {
		panic(ErrIndexOutOfRange)
	}
	return floats.Distance(F.RawRowView(i), F.RawRowView(j), 2)
}

// Centroid returns a 1x3 Matrix with the geometric center of the vectors in F.
func (F *Matrix) Centroid() *Matrix {
	n := F.NVecs()
	ret := Zeros(1)
	c := ret.RawRowView(0)
	for i := 0; i < n; i++ {
		floats.Add(c, F.RawRowView(i))
	}
	floats.Scale(1/float64(n), c)
	return ret
}

// Bounds returns the minimum and maximum value of each cartesian
// coordinate over all the vectors in F.
func (F *Matrix) Bounds() (min, max [3]float64) {
	for k := 0; k < 3; k++ {
		min[k] = math.Inf(1)
		max[k] = math.Inf(-1)
	}
	for i := 0; i < F.NVecs(); i++ {
		row := F.RawRowView(i)
		for k, v := range row {
			min[k] = math.Min(min[k], v)
			max[k] = math.Max(max[k], v)
		}
	}
	return min, max
}
