// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/cgmath/internal/scalar"
)

const (
	ctxUint2FromSlice = "Uint2FromSlice"
	ctxUint3FromSlice = "Uint3FromSlice"
	ctxUint4FromSlice = "Uint4FromSlice"
)

// Uint2 is a pair of uint32 components. Arithmetic wraps modulo 2^32.
type Uint2 struct {
	X, Y uint32
}

// NewUint2 returns Uint2{x, y}.
func NewUint2(x, y uint32) Uint2 { return Uint2{X: x, Y: y} }

// Uint2FromSlice builds a Uint2 from s[0], s[1]; ErrShortSlice if len(s) < 2.
func Uint2FromSlice(s []uint32) (Uint2, error) {
	if err := validateSliceLen(ctxUint2FromSlice, len(s), 2); err != nil {
		return Uint2{}, err
	}

	return Uint2{X: s[0], Y: s[1]}, nil
}

// Add returns v + u.
func (v Uint2) Add(u Uint2) Uint2 { return Uint2{X: v.X + u.X, Y: v.Y + u.Y} }

// Sub returns v - u (wrapping).
func (v Uint2) Sub(u Uint2) Uint2 { return Uint2{X: v.X - u.X, Y: v.Y - u.Y} }

// Mul returns the component-wise product.
func (v Uint2) Mul(u Uint2) Uint2 { return Uint2{X: v.X * u.X, Y: v.Y * u.Y} }

// Div returns the component-wise quotient; zero divisors yield 0.
func (v Uint2) Div(u Uint2) Uint2 {
	return Uint2{X: scalar.SafeDiv(v.X, u.X), Y: scalar.SafeDiv(v.Y, u.Y)}
}

// Scale returns v * s.
func (v Uint2) Scale(s uint32) Uint2 { return Uint2{X: v.X * s, Y: v.Y * s} }

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Uint2) DivScalar(s uint32) Uint2 {
	return Uint2{X: scalar.SafeDiv(v.X, s), Y: scalar.SafeDiv(v.Y, s)}
}

// Mod returns v % s, or zero when s == 0.
func (v Uint2) Mod(s uint32) Uint2 {
	return Uint2{X: scalar.SafeMod(v.X, s), Y: scalar.SafeMod(v.Y, s)}
}

// ModVec returns the component-wise remainder; zero divisors yield 0.
func (v Uint2) ModVec(u Uint2) Uint2 {
	return Uint2{X: scalar.SafeMod(v.X, u.X), Y: scalar.SafeMod(v.Y, u.Y)}
}

// Equal reports component equality.
func (v Uint2) Equal(u Uint2) bool { return v == u }

// Array returns the components as [X, Y].
func (v Uint2) Array() [2]uint32 { return [2]uint32{v.X, v.Y} }

// String renders "uint2(x, y)".
func (v Uint2) String() string { return fmt.Sprintf("uint2(%d, %d)", v.X, v.Y) }

// Uint3 is a triple of uint32 components.
type Uint3 struct {
	X, Y, Z uint32
}

// NewUint3 returns Uint3{x, y, z}.
func NewUint3(x, y, z uint32) Uint3 { return Uint3{X: x, Y: y, Z: z} }

// Uint3FromSlice builds a Uint3 from s[0:3]; ErrShortSlice if len(s) < 3.
func Uint3FromSlice(s []uint32) (Uint3, error) {
	if err := validateSliceLen(ctxUint3FromSlice, len(s), 3); err != nil {
		return Uint3{}, err
	}

	return Uint3{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Add returns v + u.
func (v Uint3) Add(u Uint3) Uint3 { return Uint3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z} }

// Sub returns v - u (wrapping).
func (v Uint3) Sub(u Uint3) Uint3 { return Uint3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z} }

// Mul returns the component-wise product.
func (v Uint3) Mul(u Uint3) Uint3 { return Uint3{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z} }

// Div returns the component-wise quotient; zero divisors yield 0.
func (v Uint3) Div(u Uint3) Uint3 {
	return Uint3{X: scalar.SafeDiv(v.X, u.X), Y: scalar.SafeDiv(v.Y, u.Y), Z: scalar.SafeDiv(v.Z, u.Z)}
}

// Scale returns v * s.
func (v Uint3) Scale(s uint32) Uint3 { return Uint3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Uint3) DivScalar(s uint32) Uint3 {
	return Uint3{X: scalar.SafeDiv(v.X, s), Y: scalar.SafeDiv(v.Y, s), Z: scalar.SafeDiv(v.Z, s)}
}

// Mod returns v % s, or zero when s == 0.
func (v Uint3) Mod(s uint32) Uint3 {
	return Uint3{X: scalar.SafeMod(v.X, s), Y: scalar.SafeMod(v.Y, s), Z: scalar.SafeMod(v.Z, s)}
}

// ModVec returns the component-wise remainder; zero divisors yield 0.
func (v Uint3) ModVec(u Uint3) Uint3 {
	return Uint3{X: scalar.SafeMod(v.X, u.X), Y: scalar.SafeMod(v.Y, u.Y), Z: scalar.SafeMod(v.Z, u.Z)}
}

// Equal reports component equality.
func (v Uint3) Equal(u Uint3) bool { return v == u }

// Array returns the components as [X, Y, Z].
func (v Uint3) Array() [3]uint32 { return [3]uint32{v.X, v.Y, v.Z} }

// String renders "uint3(x, y, z)".
func (v Uint3) String() string { return fmt.Sprintf("uint3(%d, %d, %d)", v.X, v.Y, v.Z) }

// Uint4 is a quadruple of uint32 components.
type Uint4 struct {
	X, Y, Z, W uint32
}

// NewUint4 returns Uint4{x, y, z, w}.
func NewUint4(x, y, z, w uint32) Uint4 { return Uint4{X: x, Y: y, Z: z, W: w} }

// Uint4FromSlice builds a Uint4 from s[0:4]; ErrShortSlice if len(s) < 4.
func Uint4FromSlice(s []uint32) (Uint4, error) {
	if err := validateSliceLen(ctxUint4FromSlice, len(s), 4); err != nil {
		return Uint4{}, err
	}

	return Uint4{X: s[0], Y: s[1], Z: s[2], W: s[3]}, nil
}

// Add returns v + u.
func (v Uint4) Add(u Uint4) Uint4 {
	return Uint4{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z, W: v.W + u.W}
}

// Sub returns v - u (wrapping).
func (v Uint4) Sub(u Uint4) Uint4 {
	return Uint4{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z, W: v.W - u.W}
}

// Mul returns the component-wise product.
func (v Uint4) Mul(u Uint4) Uint4 {
	return Uint4{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z, W: v.W * u.W}
}

// Div returns the component-wise quotient; zero divisors yield 0.
func (v Uint4) Div(u Uint4) Uint4 {
	return Uint4{
		X: scalar.SafeDiv(v.X, u.X),
		Y: scalar.SafeDiv(v.Y, u.Y),
		Z: scalar.SafeDiv(v.Z, u.Z),
		W: scalar.SafeDiv(v.W, u.W),
	}
}

// Scale returns v * s.
func (v Uint4) Scale(s uint32) Uint4 {
	return Uint4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Uint4) DivScalar(s uint32) Uint4 {
	return Uint4{
		X: scalar.SafeDiv(v.X, s),
		Y: scalar.SafeDiv(v.Y, s),
		Z: scalar.SafeDiv(v.Z, s),
		W: scalar.SafeDiv(v.W, s),
	}
}

// Mod returns v % s, or zero when s == 0.
func (v Uint4) Mod(s uint32) Uint4 {
	return Uint4{
		X: scalar.SafeMod(v.X, s),
		Y: scalar.SafeMod(v.Y, s),
		Z: scalar.SafeMod(v.Z, s),
		W: scalar.SafeMod(v.W, s),
	}
}

// ModVec returns the component-wise remainder; zero divisors yield 0.
func (v Uint4) ModVec(u Uint4) Uint4 {
	return Uint4{
		X: scalar.SafeMod(v.X, u.X),
		Y: scalar.SafeMod(v.Y, u.Y),
		Z: scalar.SafeMod(v.Z, u.Z),
		W: scalar.SafeMod(v.W, u.W),
	}
}

// Equal reports component equality.
func (v Uint4) Equal(u Uint4) bool { return v == u }

// Array returns the components as [X, Y, Z, W].
func (v Uint4) Array() [4]uint32 { return [4]uint32{v.X, v.Y, v.Z, v.W} }

// String renders "uint4(x, y, z, w)".
func (v Uint4) String() string {
	return fmt.Sprintf("uint4(%d, %d, %d, %d)", v.X, v.Y, v.Z, v.W)
}
