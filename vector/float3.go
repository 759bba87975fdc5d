// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/cgmath/internal/scalar"
)

const ctxFloat3FromSlice = "Float3FromSlice"

// Float3 is a packed triple of float32 components (12 bytes).
type Float3 struct {
	X, Y, Z float32
}

// NewFloat3 returns Float3{x, y, z}.
func NewFloat3(x, y, z float32) Float3 { return Float3{X: x, Y: y, Z: z} }

// Float3FromSlice builds a Float3 from s[0:3]; ErrShortSlice if len(s) < 3.
func Float3FromSlice(s []float32) (Float3, error) {
	if err := validateSliceLen(ctxFloat3FromSlice, len(s), 3); err != nil {
		return Float3{}, err
	}

	return Float3{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Add returns v + u.
func (v Float3) Add(u Float3) Float3 { return Float3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z} }

// Sub returns v - u.
func (v Float3) Sub(u Float3) Float3 { return Float3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z} }

// Mul returns the component-wise product.
func (v Float3) Mul(u Float3) Float3 { return Float3{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z} }

// Div returns the component-wise quotient; a zero divisor component yields 0.
func (v Float3) Div(u Float3) Float3 {
	return Float3{
		X: scalar.SafeDiv(v.X, u.X),
		Y: scalar.SafeDiv(v.Y, u.Y),
		Z: scalar.SafeDiv(v.Z, u.Z),
	}
}

// Scale returns v * s.
func (v Float3) Scale(s float32) Float3 { return Float3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Float3) DivScalar(s float32) Float3 {
	return Float3{X: scalar.SafeDiv(v.X, s), Y: scalar.SafeDiv(v.Y, s), Z: scalar.SafeDiv(v.Z, s)}
}

// Dot returns v·u.
func (v Float3) Dot(u Float3) float32 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Cross returns v × u (right-handed).
func (v Float3) Cross(u Float3) Float3 {
	return Float3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// LengthSquared returns v·v.
func (v Float3) LengthSquared() float32 { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Float3) Length() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Normalized returns v / |v|, or the zero vector when |v| is not positive.
func (v Float3) Normalized() Float3 {
	l := v.Length()
	if !(l > 0) {
		return Float3{}
	}

	return Float3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Distance returns |v - u|.
func (v Float3) Distance(u Float3) float32 { return v.Sub(u).Length() }

// Clamp limits each component to [lo, hi] with C fmax/fmin semantics.
func (v Float3) Clamp(lo, hi Float3) Float3 {
	return Float3{
		X: scalar.FMax(lo.X, scalar.FMin(v.X, hi.X)),
		Y: scalar.FMax(lo.Y, scalar.FMin(v.Y, hi.Y)),
		Z: scalar.FMax(lo.Z, scalar.FMin(v.Z, hi.Z)),
	}
}

// Equal reports exact component equality.
func (v Float3) Equal(u Float3) bool { return v == u }

// ApproxEqual reports |v_i - u_i| <= eps for every component.
func (v Float3) ApproxEqual(u Float3, eps float32) bool {
	return scalar.NearlyEqual(v.X, u.X, eps) &&
		scalar.NearlyEqual(v.Y, u.Y, eps) &&
		scalar.NearlyEqual(v.Z, u.Z, eps)
}

// Compare orders vectors lexicographically (X, Y, Z).
// NaN sorts below every other value and compares equal to NaN, so
// Compare can return 0 where Equal reports false.
func (v Float3) Compare(u Float3) int {
	if c := cmp.Compare(v.X, u.X); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Y, u.Y); c != 0 {
		return c
	}

	return cmp.Compare(v.Z, u.Z)
}

// Array returns the components as [X, Y, Z].
func (v Float3) Array() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

// String renders "float3(x, y, z)" with six decimals.
func (v Float3) String() string {
	return fmt.Sprintf("float3(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
