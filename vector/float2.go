// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/cgmath/internal/scalar"
)

const ctxFloat2FromSlice = "Float2FromSlice"

// Float2 is a packed pair of float32 components (8 bytes).
type Float2 struct {
	X, Y float32
}

// NewFloat2 returns Float2{x, y}.
func NewFloat2(x, y float32) Float2 { return Float2{X: x, Y: y} }

// Float2FromSlice builds a Float2 from s[0], s[1]; ErrShortSlice if len(s) < 2.
func Float2FromSlice(s []float32) (Float2, error) {
	if err := validateSliceLen(ctxFloat2FromSlice, len(s), 2); err != nil {
		return Float2{}, err
	}

	return Float2{X: s[0], Y: s[1]}, nil
}

// Add returns v + u.
func (v Float2) Add(u Float2) Float2 { return Float2{X: v.X + u.X, Y: v.Y + u.Y} }

// Sub returns v - u.
func (v Float2) Sub(u Float2) Float2 { return Float2{X: v.X - u.X, Y: v.Y - u.Y} }

// Mul returns the component-wise product.
func (v Float2) Mul(u Float2) Float2 { return Float2{X: v.X * u.X, Y: v.Y * u.Y} }

// Div returns the component-wise quotient; a zero divisor component yields 0.
func (v Float2) Div(u Float2) Float2 {
	return Float2{X: scalar.SafeDiv(v.X, u.X), Y: scalar.SafeDiv(v.Y, u.Y)}
}

// Scale returns v * s.
func (v Float2) Scale(s float32) Float2 { return Float2{X: v.X * s, Y: v.Y * s} }

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Float2) DivScalar(s float32) Float2 {
	return Float2{X: scalar.SafeDiv(v.X, s), Y: scalar.SafeDiv(v.Y, s)}
}

// Dot returns v·u.
func (v Float2) Dot(u Float2) float32 { return v.X*u.X + v.Y*u.Y }

// LengthSquared returns v·v.
func (v Float2) LengthSquared() float32 { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Float2) Length() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normalized returns v / |v|, or the zero vector when |v| is not positive.
func (v Float2) Normalized() Float2 {
	l := v.Length()
	if !(l > 0) {
		return Float2{}
	}

	return Float2{X: v.X / l, Y: v.Y / l}
}

// Distance returns |v - u|.
func (v Float2) Distance(u Float2) float32 { return v.Sub(u).Length() }

// Perpendicular returns v rotated 90° counter-clockwise: (-y, x).
func (v Float2) Perpendicular() Float2 { return Float2{X: -v.Y, Y: v.X} }

// Clamp limits each component to [lo, hi] with C fmax/fmin semantics.
func (v Float2) Clamp(lo, hi Float2) Float2 {
	return Float2{
		X: scalar.FMax(lo.X, scalar.FMin(v.X, hi.X)),
		Y: scalar.FMax(lo.Y, scalar.FMin(v.Y, hi.Y)),
	}
}

// Equal reports exact component equality.
func (v Float2) Equal(u Float2) bool { return v == u }

// ApproxEqual reports |v_i - u_i| <= eps for every component.
func (v Float2) ApproxEqual(u Float2, eps float32) bool {
	return scalar.NearlyEqual(v.X, u.X, eps) && scalar.NearlyEqual(v.Y, u.Y, eps)
}

// Compare orders vectors lexicographically (X, then Y).
// NaN sorts below every other value and compares equal to NaN, so
// Compare can return 0 where Equal reports false.
func (v Float2) Compare(u Float2) int {
	if c := cmp.Compare(v.X, u.X); c != 0 {
		return c
	}

	return cmp.Compare(v.Y, u.Y)
}

// Array returns the components as [X, Y].
func (v Float2) Array() [2]float32 { return [2]float32{v.X, v.Y} }

// String renders "float2(x, y)" with six decimals.
func (v Float2) String() string { return fmt.Sprintf("float2(%.6f, %.6f)", v.X, v.Y) }
