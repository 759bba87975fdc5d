// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/cgmath/internal/scalar"
)

const ctxVector3FromSlice = "Vector3FromSlice"

// Vector3 is a triple of float32 components padded to a 16-byte slot so an
// array of Vector3 can be streamed with 4-lane loads. The pad word is not
// addressable and never takes part in arithmetic or equality.
type Vector3 struct {
	X, Y, Z float32
	_       float32
}

// NewVector3 returns Vector3{x, y, z}.
func NewVector3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// SplatVector3 returns Vector3{s, s, s}.
func SplatVector3(s float32) Vector3 { return Vector3{X: s, Y: s, Z: s} }

// Vector3FromBits reinterprets three IEEE-754 bit patterns as components.
func Vector3FromBits(x, y, z uint32) Vector3 {
	return Vector3{
		X: math32.Float32frombits(x),
		Y: math32.Float32frombits(y),
		Z: math32.Float32frombits(z),
	}
}

// Vector3FromSlice builds a Vector3 from s[0:3]; ErrShortSlice if len(s) < 3.
func Vector3FromSlice(s []float32) (Vector3, error) {
	if err := validateSliceLen(ctxVector3FromSlice, len(s), 3); err != nil {
		return Vector3{}, err
	}

	return Vector3{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Bits returns the IEEE-754 bit patterns of X, Y and Z.
func (v Vector3) Bits() [3]uint32 {
	return [3]uint32{math32.Float32bits(v.X), math32.Float32bits(v.Y), math32.Float32bits(v.Z)}
}

// Add returns v + u.
func (v Vector3) Add(u Vector3) Vector3 { return Vector3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z} }

// Sub returns v - u.
func (v Vector3) Sub(u Vector3) Vector3 { return Vector3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z} }

// Mul returns the component-wise product.
func (v Vector3) Mul(u Vector3) Vector3 { return Vector3{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z} }

// Div returns the component-wise quotient; a zero divisor component yields 0.
func (v Vector3) Div(u Vector3) Vector3 {
	return Vector3{
		X: scalar.SafeDiv(v.X, u.X),
		Y: scalar.SafeDiv(v.Y, u.Y),
		Z: scalar.SafeDiv(v.Z, u.Z),
	}
}

// Scale returns v * s.
func (v Vector3) Scale(s float32) Vector3 { return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Vector3) DivScalar(s float32) Vector3 {
	return Vector3{X: scalar.SafeDiv(v.X, s), Y: scalar.SafeDiv(v.Y, s), Z: scalar.SafeDiv(v.Z, s)}
}

// Dot returns v·u.
func (v Vector3) Dot(u Vector3) float32 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Cross returns v × u (right-handed).
func (v Vector3) Cross(u Vector3) Vector3 {
	return Vector3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// LengthSquared returns v·v.
func (v Vector3) LengthSquared() float32 { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vector3) Length() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Normalized returns v / |v|, or the zero vector when |v| is not positive.
func (v Vector3) Normalized() Vector3 {
	l := v.Length()
	if !(l > 0) {
		return Vector3{}
	}

	return Vector3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Distance returns |v - u|.
func (v Vector3) Distance(u Vector3) float32 { return v.Sub(u).Length() }

// Clamp limits each component to [lo, hi] with C fmax/fmin semantics.
func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	return Vector3{
		X: scalar.FMax(lo.X, scalar.FMin(v.X, hi.X)),
		Y: scalar.FMax(lo.Y, scalar.FMin(v.Y, hi.Y)),
		Z: scalar.FMax(lo.Z, scalar.FMin(v.Z, hi.Z)),
	}
}

// Equal reports exact component equality.
func (v Vector3) Equal(u Vector3) bool { return v == u }

// ApproxEqual reports |v_i - u_i| <= eps for every component.
func (v Vector3) ApproxEqual(u Vector3, eps float32) bool {
	return scalar.NearlyEqual(v.X, u.X, eps) &&
		scalar.NearlyEqual(v.Y, u.Y, eps) &&
		scalar.NearlyEqual(v.Z, u.Z, eps)
}

// Compare orders vectors lexicographically (X, Y, Z).
// NaN sorts below every other value and compares equal to NaN, so
// Compare can return 0 where Equal reports false.
func (v Vector3) Compare(u Vector3) int {
	if c := cmp.Compare(v.X, u.X); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Y, u.Y); c != 0 {
		return c
	}

	return cmp.Compare(v.Z, u.Z)
}

// Float3 returns the packed equivalent.
func (v Vector3) Float3() Float3 { return Float3{X: v.X, Y: v.Y, Z: v.Z} }

// String renders "vector3(x, y, z)" with six decimals.
func (v Vector3) String() string {
	return fmt.Sprintf("vector3(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
