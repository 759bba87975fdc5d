// SPDX-License-Identifier: MIT

// Package matrix - Mat4x3: four rows of three columns, the storage shape of an
// affine transform (3x3 linear part plus a translation row).
//
// Only element-wise arithmetic and Transpose are provided; there is no
// product or inverse on this shape.

package matrix

import (
	"cmp"
	"io"

	"github.com/katalvlaran/cgmath/internal/scalar"
)

const (
	ctxMat4x3FromSlice = "Mat4x3FromSlice"
	ctxMat4x3WriteTo   = "Mat4x3.WriteTo"
)

// Mat4x3 is a 4x3 float32 matrix in row-major order (M[row][col]).
// The zero value is the zero matrix.
type Mat4x3 struct {
	_ [0]uint64
	M [4][3]float32
}

// NewMat4x3 builds a matrix from twelve elements listed row by row.
func NewMat4x3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22,
	m30, m31, m32 float32,
) Mat4x3 {
	return Mat4x3{M: [4][3]float32{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
		{m30, m31, m32},
	}}
}

// Mat4x3FromArray builds a matrix from a flat row-major array.
func Mat4x3FromArray(a [12]float32) Mat4x3 {
	var m Mat4x3
	for k, v := range a {
		m.M[k/3][k%3] = v
	}

	return m
}

// Mat4x3FromSlice builds a matrix from the first 12 elements of s.
// Returns ErrShortSlice when len(s) < 12.
func Mat4x3FromSlice(s []float32) (Mat4x3, error) {
	if err := validateSliceLen(ctxMat4x3FromSlice, s, 12); err != nil {
		return Mat4x3{}, err
	}

	return Mat4x3FromArray([12]float32(s[:12])), nil
}

// At returns element (row, col). Out-of-range indices panic.
func (m Mat4x3) At(row, col int) float32 { return m.M[row][col] }

// Set writes element (row, col). Out-of-range indices panic.
func (m *Mat4x3) Set(row, col int, v float32) { m.M[row][col] = v }

// Row returns a copy of row i.
func (m Mat4x3) Row(i int) [3]float32 { return m.M[i] }

// Elements returns the twelve elements in row-major order.
func (m Mat4x3) Elements() [12]float32 {
	var out [12]float32
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 3; j++ {
			out[i*3+j] = m.M[i][j]
		}
	}

	return out
}

// Add returns m + o element-wise.
func (m Mat4x3) Add(o Mat4x3) Mat4x3 {
	var r Mat4x3
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j] + o.M[i][j]
		}
	}

	return r
}

// Sub returns m - o element-wise.
func (m Mat4x3) Sub(o Mat4x3) Mat4x3 {
	var r Mat4x3
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j] - o.M[i][j]
		}
	}

	return r
}

// Scale returns s*m.
func (m Mat4x3) Scale(s float32) Mat4x3 {
	var r Mat4x3
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j] * s
		}
	}

	return r
}

// Transpose returns the 3x4 matrix mᵀ with result(i,j) = m(j,i).
func (m Mat4x3) Transpose() Mat3x4 {
	var r Mat3x4
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 3; j++ {
			r.M[j][i] = m.M[i][j]
		}
	}

	return r
}

// Equal reports exact element-wise equality.
func (m Mat4x3) Equal(o Mat4x3) bool { return m == o }

// ApproxEqual reports |m(i,j) − o(i,j)| <= eps for every element.
func (m Mat4x3) ApproxEqual(o Mat4x3, eps float32) bool {
	a, b := m.Elements(), o.Elements()
	for k := range a {
		if !scalar.NearlyEqual(a[k], b[k], eps) {
			return false
		}
	}

	return true
}

// Compare orders matrices lexicographically over row-major elements.
// NaN sorts below every other value and compares equal to NaN, so
// Compare can return 0 where Equal reports false.
func (m Mat4x3) Compare(o Mat4x3) int {
	a, b := m.Elements(), o.Elements()
	for k := range a {
		if c := cmp.Compare(a[k], b[k]); c != 0 {
			return c
		}
	}

	return 0
}

// String renders m with the default layout, one "| ... |" line per row.
func (m Mat4x3) String() string { return m.Render() }

// Render renders m with the given options over the defaults.
func (m Mat4x3) Render(opts ...FormatOption) string {
	e := m.Elements()

	return renderRows(e[:], 3, gatherFormatOptions(opts...))
}

// WriteTo writes String() and a trailing newline to w.
// A nil w yields ErrNilWriter; a typed-nil writer is not detected.
func (m Mat4x3) WriteTo(w io.Writer) (int64, error) {
	return writeRendered(ctxMat4x3WriteTo, w, m.String())
}
