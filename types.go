// SPDX-License-Identifier: MIT

package cgmath

import (
	"github.com/katalvlaran/cgmath/matrix"
	"github.com/katalvlaran/cgmath/vector"
)

// Vector types.
type (
	Float2 = vector.Float2
	Float3 = vector.Float3
	Float4 = vector.Float4

	Int2 = vector.Int2
	Int3 = vector.Int3
	Int4 = vector.Int4

	Uint2 = vector.Uint2
	Uint3 = vector.Uint3
	Uint4 = vector.Uint4

	Vector2 = vector.Vector2
	Vector3 = vector.Vector3
	Vector4 = vector.Vector4
)

// Matrix types.
type (
	Mat3x3 = matrix.Mat3x3
	Mat3x4 = matrix.Mat3x4
	Mat4x3 = matrix.Mat4x3
	Mat4x4 = matrix.Mat4x4
)

// Constructors, forwarded so call sites need a single import.

// NewFloat2 returns a Float2 from its components.
func NewFloat2(x, y float32) Float2 { return vector.NewFloat2(x, y) }

// NewFloat3 returns a Float3 from its components.
func NewFloat3(x, y, z float32) Float3 { return vector.NewFloat3(x, y, z) }

// NewFloat4 returns a Float4 from its components.
func NewFloat4(x, y, z, w float32) Float4 { return vector.NewFloat4(x, y, z, w) }

// NewInt2 returns an Int2 from its components.
func NewInt2(x, y int32) Int2 { return vector.NewInt2(x, y) }

// NewInt3 returns an Int3 from its components.
func NewInt3(x, y, z int32) Int3 { return vector.NewInt3(x, y, z) }

// NewInt4 returns an Int4 from its components.
func NewInt4(x, y, z, w int32) Int4 { return vector.NewInt4(x, y, z, w) }

// NewUint2 returns a Uint2 from its components.
func NewUint2(x, y uint32) Uint2 { return vector.NewUint2(x, y) }

// NewUint3 returns a Uint3 from its components.
func NewUint3(x, y, z uint32) Uint3 { return vector.NewUint3(x, y, z) }

// NewUint4 returns a Uint4 from its components.
func NewUint4(x, y, z, w uint32) Uint4 { return vector.NewUint4(x, y, z, w) }

// NewVector2 returns a Vector2 from its components.
func NewVector2(x, y float32) Vector2 { return vector.NewVector2(x, y) }

// NewVector3 returns a Vector3 from its components.
func NewVector3(x, y, z float32) Vector3 { return vector.NewVector3(x, y, z) }

// NewVector4 returns a Vector4 from its components.
func NewVector4(x, y, z, w float32) Vector4 { return vector.NewVector4(x, y, z, w) }

// NewMat3x3 builds a 3x3 matrix from elements listed row by row.
func NewMat3x3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float32) Mat3x3 {
	return matrix.NewMat3x3(m00, m01, m02, m10, m11, m12, m20, m21, m22)
}

// NewMat4x3 builds a 4x3 matrix from elements listed row by row.
func NewMat4x3(m00, m01, m02, m10, m11, m12, m20, m21, m22, m30, m31, m32 float32) Mat4x3 {
	return matrix.NewMat4x3(m00, m01, m02, m10, m11, m12, m20, m21, m22, m30, m31, m32)
}

// NewMat3x4 builds a 3x4 matrix from elements listed row by row.
func NewMat3x4(m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23 float32) Mat3x4 {
	return matrix.NewMat3x4(m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23)
}

// NewMat4x4 builds a 4x4 matrix from elements listed row by row.
func NewMat4x4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Mat4x4 {
	return matrix.NewMat4x4(
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	)
}

// Identity3x3 returns the 3x3 identity.
func Identity3x3() Mat3x3 { return matrix.Identity3x3() }

// Identity4x4 returns the 4x4 identity.
func Identity4x4() Mat4x4 { return matrix.Identity4x4() }
