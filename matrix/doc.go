// Package matrix provides fixed-size float32 matrix value types.
//
// The matrix package provides:
//
//   - Mat3x3 with the full algebra: Add, Sub, Scale, Transpose, Mul,
//     Determinant, IsInvertible, Inverse.
//   - Mat4x3 (affine transform storage) and its transpose Mat3x4.
//   - Mat4x4 (homogeneous transform storage).
//
// Every type stores its elements row-major in an exported array field
// (m.M[row][col]), is comparable with ==, copies by value and never
// allocates. The zero value is the zero matrix; build identities with
// Identity3x3 / Identity4x4.
//
// Degenerate input never fails: Inverse of a singular Mat3x3 returns the zero
// matrix. Check IsInvertible first when a silently collapsed transform would
// be a bug.
//
// Only Mat3x3 has Mul and Inverse; the other shapes expose element-wise
// operations and Transpose and nothing more.
//
// Rendering (String, Render, WriteTo) uses "| 1.00 2.00 3.00 |" rows by
// default; see FormatOption for precision and delimiters.
package matrix
