// SPDX-License-Identifier: MIT

// Package matrix - Mat3x4: three rows of four columns. Exists as the result
// of Mat4x3.Transpose (and back), with the same element-wise surface.

package matrix

import (
	"cmp"
	"io"

	"github.com/katalvlaran/cgmath/internal/scalar"
)

const (
	ctxMat3x4FromSlice = "Mat3x4FromSlice"
	ctxMat3x4WriteTo   = "Mat3x4.WriteTo"
)

// Mat3x4 is a 3x4 float32 matrix in row-major order (M[row][col]).
// The zero value is the zero matrix.
type Mat3x4 struct {
	_ [0]uint64
	M [3][4]float32
}

// NewMat3x4 builds a matrix from twelve elements listed row by row.
func NewMat3x4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23 float32,
) Mat3x4 {
	return Mat3x4{M: [3][4]float32{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
	}}
}

// Mat3x4FromArray builds a matrix from a flat row-major array.
func Mat3x4FromArray(a [12]float32) Mat3x4 {
	var m Mat3x4
	for k, v := range a {
		m.M[k/4][k%4] = v
	}

	return m
}

// Mat3x4FromSlice builds a matrix from the first 12 elements of s.
// Returns ErrShortSlice when len(s) < 12.
func Mat3x4FromSlice(s []float32) (Mat3x4, error) {
	if err := validateSliceLen(ctxMat3x4FromSlice, s, 12); err != nil {
		return Mat3x4{}, err
	}

	return Mat3x4FromArray([12]float32(s[:12])), nil
}

// At returns element (row, col). Out-of-range indices panic.
func (m Mat3x4) At(row, col int) float32 { return m.M[row][col] }

// Set writes element (row, col). Out-of-range indices panic.
func (m *Mat3x4) Set(row, col int, v float32) { m.M[row][col] = v }

// Row returns a copy of row i.
func (m Mat3x4) Row(i int) [4]float32 { return m.M[i] }

// Elements returns the twelve elements in row-major order.
func (m Mat3x4) Elements() [12]float32 {
	var out [12]float32
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 4; j++ {
			out[i*4+j] = m.M[i][j]
		}
	}

	return out
}

// Add returns m + o element-wise.
func (m Mat3x4) Add(o Mat3x4) Mat3x4 {
	var r Mat3x4
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] + o.M[i][j]
		}
	}

	return r
}

// Sub returns m - o element-wise.
func (m Mat3x4) Sub(o Mat3x4) Mat3x4 {
	var r Mat3x4
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] - o.M[i][j]
		}
	}

	return r
}

// Scale returns s*m.
func (m Mat3x4) Scale(s float32) Mat3x4 {
	var r Mat3x4
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] * s
		}
	}

	return r
}

// Transpose returns the 4x3 matrix mᵀ with result(i,j) = m(j,i).
func (m Mat3x4) Transpose() Mat4x3 {
	var r Mat4x3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 4; j++ {
			r.M[j][i] = m.M[i][j]
		}
	}

	return r
}

// Equal reports exact element-wise equality.
func (m Mat3x4) Equal(o Mat3x4) bool { return m == o }

// ApproxEqual reports |m(i,j) − o(i,j)| <= eps for every element.
func (m Mat3x4) ApproxEqual(o Mat3x4, eps float32) bool {
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
func (m Mat3x4) Compare(o Mat3x4) int {
	a, b := m.Elements(), o.Elements()
	for k := range a {
		if c := cmp.Compare(a[k], b[k]); c != 0 {
			return c
		}
	}

	return 0
}

// String renders m with the default layout.
func (m Mat3x4) String() string { return m.Render() }

// Render renders m with the given options over the defaults.
func (m Mat3x4) Render(opts ...FormatOption) string {
	e := m.Elements()

	return renderRows(e[:], 4, gatherFormatOptions(opts...))
}

// WriteTo writes String() and a trailing newline to w.
// A nil w yields ErrNilWriter; a typed-nil writer is not detected.
func (m Mat3x4) WriteTo(w io.Writer) (int64, error) {
	return writeRendered(ctxMat3x4WriteTo, w, m.String())
}
