// Package cgmath is the aggregation point of the library: small, fixed-size,
// single-precision math types for graphics, game and simulation code.
//
// What is inside?
//
//	vector/   Float2/3/4, Int2/3/4, Uint2/3/4 and the SIMD-layout Vector2/3/4
//	matrix/   Mat3x3 (full algebra), Mat4x3, Mat3x4, Mat4x4
//	cgmath    aliases for every type above, scalar math and named constants
//
// Everything is a plain value: arithmetic never allocates and holds no locks.
// Any operation may run concurrently on independent values.
//
// Degenerate input never fails. Normalizing a zero vector, dividing by a zero
// scalar and inverting a singular Mat3x3 all return zero. This keeps hot loops
// branch-free, and it also hides bugs: a singular transform silently collapses
// geometry to the origin. Check Mat3x3.IsInvertible (or the vector length)
// where that matters.
//
// Quick example:
//
//	m := cgmath.NewMat3x3(1, 2, 3, 0, 1, 4, 5, 6, 0)
//	fmt.Println(m.Determinant()) // 1
//	fmt.Println(m.Inverse().Mul(m) == cgmath.Identity3x3()) // true
//
//	go get github.com/katalvlaran/cgmath
package cgmath
