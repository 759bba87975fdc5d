// SPDX-License-Identifier: MIT

// Package matrix - Mat4x4: square 4x4 storage (homogeneous transforms).
// Element-wise arithmetic and Transpose only; product and inverse are
// deliberately limited to Mat3x3.

package matrix

import (
	"cmp"
	"io"

	"github.com/katalvlaran/cgmath/internal/scalar"
)

const (
	ctxMat4x4FromSlice = "Mat4x4FromSlice"
	ctxMat4x4WriteTo   = "Mat4x4.WriteTo"
)

// Mat4x4 is a 4x4 float32 matrix in row-major order (M[row][col]).
// Element storage is exactly 64 bytes; the zero value is the zero matrix.
type Mat4x4 struct {
	_ [0]uint64
	M [4][4]float32
}

// NewMat4x4 builds a matrix from sixteen elements listed row by row.
func NewMat4x4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Mat4x4 {
	return Mat4x4{M: [4][4]float32{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
		{m30, m31, m32, m33},
	}}
}

// Mat4x4FromArray builds a matrix from a flat row-major array.
func Mat4x4FromArray(a [16]float32) Mat4x4 {
	var m Mat4x4
	for k, v := range a {
		m.M[k/4][k%4] = v
	}

	return m
}

// Mat4x4FromSlice builds a matrix from the first 16 elements of s.
// Returns ErrShortSlice when len(s) < 16.
func Mat4x4FromSlice(s []float32) (Mat4x4, error) {
	if err := validateSliceLen(ctxMat4x4FromSlice, s, 16); err != nil {
		return Mat4x4{}, err
	}

	return Mat4x4FromArray([16]float32(s[:16])), nil
}

// Identity4x4 returns I4.
func Identity4x4() Mat4x4 {
	return NewMat4x4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// At returns element (row, col). Out-of-range indices panic.
func (m Mat4x4) At(row, col int) float32 { return m.M[row][col] }

// Set writes element (row, col). Out-of-range indices panic.
func (m *Mat4x4) Set(row, col int, v float32) { m.M[row][col] = v }

// Row returns a copy of row i.
func (m Mat4x4) Row(i int) [4]float32 { return m.M[i] }

// Elements returns the sixteen elements in row-major order.
func (m Mat4x4) Elements() [16]float32 {
	var out [16]float32
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			out[i*4+j] = m.M[i][j]
		}
	}

	return out
}

// Add returns m + o element-wise.
func (m Mat4x4) Add(o Mat4x4) Mat4x4 {
	var r Mat4x4
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] + o.M[i][j]
		}
	}

	return r
}

// Sub returns m - o element-wise.
func (m Mat4x4) Sub(o Mat4x4) Mat4x4 {
	var r Mat4x4
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] - o.M[i][j]
		}
	}

	return r
}

// Scale returns s*m.
func (m Mat4x4) Scale(s float32) Mat4x4 {
	var r Mat4x4
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] * s
		}
	}

	return r
}

// Transpose returns mᵀ: result(i,j) = m(j,i).
func (m Mat4x4) Transpose() Mat4x4 {
	var r Mat4x4
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			r.M[j][i] = m.M[i][j]
		}
	}

	return r
}

// Equal reports exact element-wise equality.
func (m Mat4x4) Equal(o Mat4x4) bool { return m == o }

// ApproxEqual reports |m(i,j) − o(i,j)| <= eps for every element.
func (m Mat4x4) ApproxEqual(o Mat4x4, eps float32) bool {
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
func (m Mat4x4) Compare(o Mat4x4) int {
	a, b := m.Elements(), o.Elements()
	for k := range a {
		if c := cmp.Compare(a[k], b[k]); c != 0 {
			return c
		}
	}

	return 0
}

// String renders m with the default layout.
func (m Mat4x4) String() string { return m.Render() }

// Render renders m with the given options over the defaults.
func (m Mat4x4) Render(opts ...FormatOption) string {
	e := m.Elements()

	return renderRows(e[:], 4, gatherFormatOptions(opts...))
}

// WriteTo writes String() and a trailing newline to w.
// A nil w yields ErrNilWriter; a typed-nil writer is not detected.
func (m Mat4x4) WriteTo(w io.Writer) (int64, error) {
	return writeRendered(ctxMat4x4WriteTo, w, m.String())
}
