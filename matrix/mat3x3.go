// SPDX-License-Identifier: MIT

// Package matrix - Mat3x3: the square 3x3 type and the only shape with a
// full algebra (product, determinant, inverse).
//
// Degenerate policy:
//   - Inverse of a matrix whose determinant is exactly 0 is the ZERO matrix.
//     No error, no panic, no NaN. Call IsInvertible first when it matters:
//     a singular transform silently collapses everything it touches to 0.
//
// Complexity quicksheet:
//   - Add/Sub/Scale/Transpose: 9 ops; Mul: 27 mul + 18 add;
//     Determinant: 9 mul + 5 add; Inverse: determinant + 18 mul + 9 scale.

package matrix

import (
	"cmp"
	"io"

	"github.com/katalvlaran/cgmath/internal/scalar"
)

const (
	ctxMat3x3FromSlice = "Mat3x3FromSlice"
	ctxMat3x3WriteTo   = "Mat3x3.WriteTo"
)

// Mat3x3 is a 3x3 float32 matrix in row-major order.
//   - M[r][c] is row r, column c (0-indexed); the classic _rc name is M[r-1][c-1].
//   - The zero value is the zero matrix, NOT the identity.
//   - The leading zero-length field raises alignment to 8 bytes (64-bit) without
//     adding storage; == compares elements exactly.
type Mat3x3 struct {
	_ [0]uint64
	M [3][3]float32
}

// NewMat3x3 builds a matrix from nine elements listed row by row.
func NewMat3x3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float32,
) Mat3x3 {
	return Mat3x3{M: [3][3]float32{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
	}}
}

// Mat3x3FromArray builds a matrix from a flat row-major array.
func Mat3x3FromArray(a [9]float32) Mat3x3 {
	return NewMat3x3(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

// Mat3x3FromSlice builds a matrix from the first 9 elements of s.
// Returns ErrShortSlice when len(s) < 9; extra elements are ignored.
func Mat3x3FromSlice(s []float32) (Mat3x3, error) {
	if err := validateSliceLen(ctxMat3x3FromSlice, s, 9); err != nil {
		return Mat3x3{}, err
	}

	return Mat3x3FromArray([9]float32(s[:9])), nil
}

// Identity3x3 returns I3.
func Identity3x3() Mat3x3 {
	return NewMat3x3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// At returns element (row, col). Out-of-range indices panic.
func (m Mat3x3) At(row, col int) float32 { return m.M[row][col] }

// Set writes element (row, col). Out-of-range indices panic.
func (m *Mat3x3) Set(row, col int, v float32) { m.M[row][col] = v }

// Row returns a copy of row i.
func (m Mat3x3) Row(i int) [3]float32 { return m.M[i] }

// Elements returns the nine elements in row-major order.
func (m Mat3x3) Elements() [9]float32 {
	return [9]float32{
		m.M[0][0], m.M[0][1], m.M[0][2],
		m.M[1][0], m.M[1][1], m.M[1][2],
		m.M[2][0], m.M[2][1], m.M[2][2],
	}
}

// Add returns m + o element-wise.
func (m Mat3x3) Add(o Mat3x3) Mat3x3 {
	var r Mat3x3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j] + o.M[i][j]
		}
	}

	return r
}

// Sub returns m - o element-wise.
func (m Mat3x3) Sub(o Mat3x3) Mat3x3 {
	var r Mat3x3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j] - o.M[i][j]
		}
	}

	return r
}

// Scale returns s*m.
func (m Mat3x3) Scale(s float32) Mat3x3 {
	var r Mat3x3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j] * s
		}
	}

	return r
}

// Transpose returns mᵀ: result(i,j) = m(j,i).
func (m Mat3x3) Transpose() Mat3x3 {
	return NewMat3x3(
		m.M[0][0], m.M[1][0], m.M[2][0],
		m.M[0][1], m.M[1][1], m.M[2][1],
		m.M[0][2], m.M[1][2], m.M[2][2],
	)
}

// Mul returns the matrix product m·o.
// MAIN DESCRIPTION:
//   - result(i,j) = Σ_k m(i,k) * o(k,j): row i of the left operand against
//     column j of the right operand.
//
// Determinism:
//   - Fixed i→j→k order; each k-sum is accumulated left to right.
func (m Mat3x3) Mul(o Mat3x3) Mat3x3 {
	var r Mat3x3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			r.M[i][j] = m.M[i][0]*o.M[0][j] + m.M[i][1]*o.M[1][j] + m.M[i][2]*o.M[2][j]
		}
	}

	return r
}

// Determinant returns det(m) by cofactor expansion along the first row:
//
//	| a b c |
//	| d e f |  ->  a(ei − fh) − b(di − fg) + c(dh − eg)
//	| g h i |
func (m Mat3x3) Determinant() float32 {
	a, b, c := m.M[0][0], m.M[0][1], m.M[0][2]
	d, e, f := m.M[1][0], m.M[1][1], m.M[1][2]
	g, h, i := m.M[2][0], m.M[2][1], m.M[2][2]

	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// IsInvertible reports Determinant() != 0 (exact, no epsilon).
// Nearly singular matrices pass; their inverse may be huge or inaccurate.
func (m Mat3x3) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Adjugate (transposed cofactor matrix) scaled by 1/det.
//
// Implementation:
//   - Stage 1: det via Determinant; exact zero → return the zero matrix.
//   - Stage 2: invDet = 1/det, one division for all nine entries.
//   - Stage 3: write cofactor(j,i)*invDet into (i,j).
//
// Behavior highlights:
//   - Singular input returns Mat3x3{} silently (see package notes).
func (m Mat3x3) Inverse() Mat3x3 {
	det := m.Determinant()
	if det == 0 {
		return Mat3x3{}
	}
	inv := 1 / det

	a, b, c := m.M[0][0], m.M[0][1], m.M[0][2]
	d, e, f := m.M[1][0], m.M[1][1], m.M[1][2]
	g, h, i := m.M[2][0], m.M[2][1], m.M[2][2]

	return NewMat3x3(
		(e*i-f*h)*inv, (c*h-b*i)*inv, (b*f-c*e)*inv,
		(f*g-d*i)*inv, (a*i-c*g)*inv, (c*d-a*f)*inv,
		(d*h-e*g)*inv, (b*g-a*h)*inv, (a*e-b*d)*inv,
	)
}

// Equal reports exact element-wise equality (same as m == o).
func (m Mat3x3) Equal(o Mat3x3) bool { return m == o }

// ApproxEqual reports |m(i,j) − o(i,j)| <= eps for every element.
func (m Mat3x3) ApproxEqual(o Mat3x3, eps float32) bool {
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			if !scalar.NearlyEqual(m.M[i][j], o.M[i][j], eps) {
				return false
			}
		}
	}

	return true
}

// Compare orders matrices lexicographically over row-major elements.
// Returns -1, 0 or +1. NaN sorts below every other value and compares equal
// to NaN, so Compare can return 0 where Equal reports false.
func (m Mat3x3) Compare(o Mat3x3) int {
	a, b := m.Elements(), o.Elements()
	for k := range a {
		if c := cmp.Compare(a[k], b[k]); c != 0 {
			return c
		}
	}

	return 0
}

// String renders m with the default layout ("| %.2f %.2f %.2f |" per row).
func (m Mat3x3) String() string { return m.Render() }

// Render renders m with the given options over the defaults.
func (m Mat3x3) Render(opts ...FormatOption) string {
	e := m.Elements()

	return renderRows(e[:], 3, gatherFormatOptions(opts...))
}

// WriteTo writes String() and a trailing newline to w.
// A nil w yields ErrNilWriter; a typed-nil writer is not detected.
func (m Mat3x3) WriteTo(w io.Writer) (int64, error) {
	return writeRendered(ctxMat3x3WriteTo, w, m.String())
}
