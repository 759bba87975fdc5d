// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/cgmath/internal/scalar"
)

const ctxFloat4FromSlice = "Float4FromSlice"

// Float4 is a packed quadruple of float32 components (16 bytes).
type Float4 struct {
	X, Y, Z, W float32
}

// NewFloat4 returns Float4{x, y, z, w}.
func NewFloat4(x, y, z, w float32) Float4 { return Float4{X: x, Y: y, Z: z, W: w} }

// Float4FromSlice builds a Float4 from s[0:4]; ErrShortSlice if len(s) < 4.
func Float4FromSlice(s []float32) (Float4, error) {
	if err := validateSliceLen(ctxFloat4FromSlice, len(s), 4); err != nil {
		return Float4{}, err
	}

	return Float4{X: s[0], Y: s[1], Z: s[2], W: s[3]}, nil
}

// Add returns v + u.
func (v Float4) Add(u Float4) Float4 {
	return Float4{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z, W: v.W + u.W}
}

// Sub returns v - u.
func (v Float4) Sub(u Float4) Float4 {
	return Float4{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z, W: v.W - u.W}
}

// Mul returns the component-wise product.
func (v Float4) Mul(u Float4) Float4 {
	return Float4{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z, W: v.W * u.W}
}

// Div returns the component-wise quotient; a zero divisor component yields 0.
func (v Float4) Div(u Float4) Float4 {
	return Float4{
		X: scalar.SafeDiv(v.X, u.X),
		Y: scalar.SafeDiv(v.Y, u.Y),
		Z: scalar.SafeDiv(v.Z, u.Z),
		W: scalar.SafeDiv(v.W, u.W),
	}
}

// Scale returns v * s.
func (v Float4) Scale(s float32) Float4 {
	return Float4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Float4) DivScalar(s float32) Float4 {
	return Float4{
		X: scalar.SafeDiv(v.X, s),
		Y: scalar.SafeDiv(v.Y, s),
		Z: scalar.SafeDiv(v.Z, s),
		W: scalar.SafeDiv(v.W, s),
	}
}

// Dot returns v·u.
func (v Float4) Dot(u Float4) float32 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W }

// LengthSquared returns v·v.
func (v Float4) LengthSquared() float32 { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Float4) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalized returns v / |v|, or the zero vector when |v| is not positive.
func (v Float4) Normalized() Float4 {
	l := v.Length()
	if !(l > 0) {
		return Float4{}
	}

	return Float4{X: v.X / l, Y: v.Y / l, Z: v.Z / l, W: v.W / l}
}

// Distance returns |v - u|.
func (v Float4) Distance(u Float4) float32 { return v.Sub(u).Length() }

// Clamp limits each component to [lo, hi] with C fmax/fmin semantics.
func (v Float4) Clamp(lo, hi Float4) Float4 {
	return Float4{
		X: scalar.FMax(lo.X, scalar.FMin(v.X, hi.X)),
		Y: scalar.FMax(lo.Y, scalar.FMin(v.Y, hi.Y)),
		Z: scalar.FMax(lo.Z, scalar.FMin(v.Z, hi.Z)),
		W: scalar.FMax(lo.W, scalar.FMin(v.W, hi.W)),
	}
}

// Equal reports exact component equality.
func (v Float4) Equal(u Float4) bool { return v == u }

// ApproxEqual reports |v_i - u_i| <= eps for every component.
func (v Float4) ApproxEqual(u Float4, eps float32) bool {
	return scalar.NearlyEqual(v.X, u.X, eps) &&
		scalar.NearlyEqual(v.Y, u.Y, eps) &&
		scalar.NearlyEqual(v.Z, u.Z, eps) &&
		scalar.NearlyEqual(v.W, u.W, eps)
}

// Compare orders vectors lexicographically (X, Y, Z, W).
// NaN sorts below every other value and compares equal to NaN, so
// Compare can return 0 where Equal reports false.
func (v Float4) Compare(u Float4) int {
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

// Array returns the components as [X, Y, Z, W].
func (v Float4) Array() [4]float32 { return [4]float32{v.X, v.Y, v.Z, v.W} }

// String renders "float4(x, y, z, w)" with six decimals.
func (v Float4) String() string {
	return fmt.Sprintf("float4(%.6f, %.6f, %.6f, %.6f)", v.X, v.Y, v.Z, v.W)
}
