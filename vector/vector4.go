// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/cgmath/internal/scalar"
)

const ctxVector4FromSlice = "Vector4FromSlice"

// Vector4 is a quadruple of float32 components (one 16-byte lane group) with
// a raw uint32 bit view.
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector4 returns Vector4{x, y, z, w}.
func NewVector4(x, y, z, w float32) Vector4 { return Vector4{X: x, Y: y, Z: z, W: w} }

// SplatVector4 returns Vector4{s, s, s, s}.
func SplatVector4(s float32) Vector4 { return Vector4{X: s, Y: s, Z: s, W: s} }

// Vector4FromBits reinterprets four IEEE-754 bit patterns as components.
func Vector4FromBits(x, y, z, w uint32) Vector4 {
	return Vector4{
		X: math32.Float32frombits(x),
		Y: math32.Float32frombits(y),
		Z: math32.Float32frombits(z),
		W: math32.Float32frombits(w),
	}
}

// Vector4FromSlice builds a Vector4 from s[0:4]; ErrShortSlice if len(s) < 4.
func Vector4FromSlice(s []float32) (Vector4, error) {
	if err := validateSliceLen(ctxVector4FromSlice, len(s), 4); err != nil {
		return Vector4{}, err
	}

	return Vector4{X: s[0], Y: s[1], Z: s[2], W: s[3]}, nil
}

// Bits returns the IEEE-754 bit patterns of X, Y, Z and W.
func (v Vector4) Bits() [4]uint32 {
	return [4]uint32{
		math32.Float32bits(v.X),
		math32.Float32bits(v.Y),
		math32.Float32bits(v.Z),
		math32.Float32bits(v.W),
	}
}

// Add returns v + u.
func (v Vector4) Add(u Vector4) Vector4 {
	return Vector4{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z, W: v.W + u.W}
}

// Sub returns v - u.
func (v Vector4) Sub(u Vector4) Vector4 {
	return Vector4{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z, W: v.W - u.W}
}

// Mul returns the component-wise product.
func (v Vector4) Mul(u Vector4) Vector4 {
	return Vector4{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z, W: v.W * u.W}
}

// Div returns the component-wise quotient; a zero divisor component yields 0.
func (v Vector4) Div(u Vector4) Vector4 {
	return Vector4{
		X: scalar.SafeDiv(v.X, u.X),
		Y: scalar.SafeDiv(v.Y, u.Y),
		Z: scalar.SafeDiv(v.Z, u.Z),
		W: scalar.SafeDiv(v.W, u.W),
	}
}

// Scale returns v * s.
func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{
		X: scalar.SafeDiv(v.X, s),
		Y: scalar.SafeDiv(v.Y, s),
		Z: scalar.SafeDiv(v.Z, s),
		W: scalar.SafeDiv(v.W, s),
	}
}

// Dot returns v·u.
func (v Vector4) Dot(u Vector4) float32 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W }

// LengthSquared returns v·v.
func (v Vector4) LengthSquared() float32 { return v.Dot(v) }

// Length returns the Euclidean norm, sqrt(v·v).
func (v Vector4) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalized returns v / |v|, or the zero vector when |v| is not positive.
func (v Vector4) Normalized() Vector4 {
	l := v.Length()
	if !(l > 0) {
		return Vector4{}
	}

	return Vector4{X: v.X / l, Y: v.Y / l, Z: v.Z / l, W: v.W / l}
}

// Distance returns |v - u|.
func (v Vector4) Distance(u Vector4) float32 { return v.Sub(u).Length() }

// Clamp limits each component to [lo, hi] with C fmax/fmin semantics.
func (v Vector4) Clamp(lo, hi Vector4) Vector4 {
	return Vector4{
		X: scalar.FMax(lo.X, scalar.FMin(v.X, hi.X)),
		Y: scalar.FMax(lo.Y, scalar.FMin(v.Y, hi.Y)),
		Z: scalar.FMax(lo.Z, scalar.FMin(v.Z, hi.Z)),
		W: scalar.FMax(lo.W, scalar.FMin(v.W, hi.W)),
	}
}

// Equal reports exact component equality.
func (v Vector4) Equal(u Vector4) bool { return v == u }

// ApproxEqual reports |v_i - u_i| <= eps for every component.
func (v Vector4) ApproxEqual(u Vector4, eps float32) bool {
	return scalar.NearlyEqual(v.X, u.X, eps) &&
		scalar.NearlyEqual(v.Y, u.Y, eps) &&
		scalar.NearlyEqual(v.Z, u.Z, eps) &&
		scalar.NearlyEqual(v.W, u.W, eps)
}

// Compare orders vectors lexicographically (X, Y, Z, W).
// NaN sorts below every other value and compares equal to NaN, so
// Compare can return 0 where Equal reports false.
func (v Vector4) Compare(u Vector4) int {
	if c := cmp.Compare(v.X, u.X); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Y, u.Y); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Z, u.Z); c != 0 {
		return c
	}

	return cmp.Compare(v.W, u.W)
}

// Float4 returns the packed equivalent.
func (v Vector4) Float4() Float4 { return Float4{X: v.X, Y: v.Y, Z: v.Z, W: v.W} }

// String renders "vector4(x, y, z, w)" with six decimals.
func (v Vector4) String() string {
	return fmt.Sprintf("vector4(%.6f, %.6f, %.6f, %.6f)", v.X, v.Y, v.Z, v.W)
}
