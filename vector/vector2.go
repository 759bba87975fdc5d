// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/cgmath/internal/scalar"
)

const ctxVector2FromSlice = "Vector2FromSlice"

// Vector2 is a pair of float32 components aligned to 8 bytes (64-bit), the
// granularity of a 2-lane float load. Bits exposes the same components as
// raw uint32 words.
type Vector2 struct {
	_    [0]uint64
	X, Y float32
}

// NewVector2 returns Vector2{x, y}.
func NewVector2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// SplatVector2 returns Vector2{s, s}.
func SplatVector2(s float32) Vector2 { return Vector2{X: s, Y: s} }

// Vector2FromBits reinterprets two IEEE-754 bit patterns as components.
func Vector2FromBits(x, y uint32) Vector2 {
	return Vector2{X: math32.Float32frombits(x), Y: math32.Float32frombits(y)}
}

// Vector2FromSlice builds a Vector2 from s[0], s[1]; ErrShortSlice if len(s) < 2.
func Vector2FromSlice(s []float32) (Vector2, error) {
	if err := validateSliceLen(ctxVector2FromSlice, len(s), 2); err != nil {
		return Vector2{}, err
	}

	return Vector2{X: s[0], Y: s[1]}, nil
}

// Bits returns the IEEE-754 bit patterns of X and Y.
func (v Vector2) Bits() [2]uint32 {
	return [2]uint32{math32.Float32bits(v.X), math32.Float32bits(v.Y)}
}

// Add returns v + u.
func (v Vector2) Add(u Vector2) Vector2 { return Vector2{X: v.X + u.X, Y: v.Y + u.Y} }

// Sub returns v - u.
func (v Vector2) Sub(u Vector2) Vector2 { return Vector2{X: v.X - u.X, Y: v.Y - u.Y} }

// Mul returns the component-wise product.
func (v Vector2) Mul(u Vector2) Vector2 { return Vector2{X: v.X * u.X, Y: v.Y * u.Y} }

// Div returns the component-wise quotient; a zero divisor component yields 0.
func (v Vector2) Div(u Vector2) Vector2 {
	return Vector2{X: scalar.SafeDiv(v.X, u.X), Y: scalar.SafeDiv(v.Y, u.Y)}
}

// Scale returns v * s.
func (v Vector2) Scale(s float32) Vector2 { return Vector2{X: v.X * s, Y: v.Y * s} }

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Vector2) DivScalar(s float32) Vector2 {
	return Vector2{X: scalar.SafeDiv(v.X, s), Y: scalar.SafeDiv(v.Y, s)}
}

// Dot returns v·u.
func (v Vector2) Dot(u Vector2) float32 { return v.X*u.X + v.Y*u.Y }

// LengthSquared returns v·v.
func (v Vector2) LengthSquared() float32 { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vector2) Length() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normalized returns v / |v|, or the zero vector when |v| is not positive.
func (v Vector2) Normalized() Vector2 {
	l := v.Length()
	if !(l > 0) {
		return Vector2{}
	}

	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Distance returns |v - u|.
func (v Vector2) Distance(u Vector2) float32 { return v.Sub(u).Length() }

// Perpendicular returns v rotated 90° counter-clockwise: (-y, x).
func (v Vector2) Perpendicular() Vector2 { return Vector2{X: -v.Y, Y: v.X} }

// Clamp limits each component to [lo, hi] with C fmax/fmin semantics.
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return Vector2{
		X: scalar.FMax(lo.X, scalar.FMin(v.X, hi.X)),
		Y: scalar.FMax(lo.Y, scalar.FMin(v.Y, hi.Y)),
	}
}

// Equal reports exact component equality.
func (v Vector2) Equal(u Vector2) bool { return v == u }

// ApproxEqual reports |v_i - u_i| <= eps for every component.
func (v Vector2) ApproxEqual(u Vector2, eps float32) bool {
	return scalar.NearlyEqual(v.X, u.X, eps) && scalar.NearlyEqual(v.Y, u.Y, eps)
}

// Compare orders vectors lexicographically (X, then Y).
// NaN sorts below every other value and compares equal to NaN, so
// Compare can return 0 where Equal reports false.
func (v Vector2) Compare(u Vector2) int {
	if c := cmp.Compare(v.X, u.X); c != 0 {
		return c
	}

	return cmp.Compare(v.Y, u.Y)
}

// Float2 returns the packed equivalent.
func (v Vector2) Float2() Float2 { return Float2{X: v.X, Y: v.Y} }

// String renders "vector2(x, y)" with six decimals.
func (v Vector2) String() string { return fmt.Sprintf("vector2(%.6f, %.6f)", v.X, v.Y) }
