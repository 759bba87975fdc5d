// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/cgmath/internal/scalar"
)

const (
	ctxInt2FromSlice = "Int2FromSlice"
	ctxInt3FromSlice = "Int3FromSlice"
	ctxInt4FromSlice = "Int4FromSlice"
)

// Int2 is a pair of int32 components. Overflow wraps (two's complement).
type Int2 struct {
	X, Y int32
}

// NewInt2 returns Int2{x, y}.
func NewInt2(x, y int32) Int2 { return Int2{X: x, Y: y} }

// Int2FromSlice builds an Int2 from s[0], s[1]; ErrShortSlice if len(s) < 2.
func Int2FromSlice(s []int32) (Int2, error) {
	if err := validateSliceLen(ctxInt2FromSlice, len(s), 2); err != nil {
		return Int2{}, err
	}

	return Int2{X: s[0], Y: s[1]}, nil
}

// Add returns v + u.
func (v Int2) Add(u Int2) Int2 { return Int2{X: v.X + u.X, Y: v.Y + u.Y} }

// Sub returns v - u.
func (v Int2) Sub(u Int2) Int2 { return Int2{X: v.X - u.X, Y: v.Y - u.Y} }

// Mul returns the component-wise product.
func (v Int2) Mul(u Int2) Int2 { return Int2{X: v.X * u.X, Y: v.Y * u.Y} }

// Div returns the truncated component-wise quotient; zero divisors yield 0.
func (v Int2) Div(u Int2) Int2 {
	return Int2{X: scalar.SafeDiv(v.X, u.X), Y: scalar.SafeDiv(v.Y, u.Y)}
}

// Scale returns v * s.
func (v Int2) Scale(s int32) Int2 { return Int2{X: v.X * s, Y: v.Y * s} }

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Int2) DivScalar(s int32) Int2 {
	return Int2{X: scalar.SafeDiv(v.X, s), Y: scalar.SafeDiv(v.Y, s)}
}

// Mod returns v % s (sign follows the dividend), or zero when s == 0.
func (v Int2) Mod(s int32) Int2 {
	return Int2{X: scalar.SafeMod(v.X, s), Y: scalar.SafeMod(v.Y, s)}
}

// ModVec returns the component-wise remainder; zero divisors yield 0.
func (v Int2) ModVec(u Int2) Int2 {
	return Int2{X: scalar.SafeMod(v.X, u.X), Y: scalar.SafeMod(v.Y, u.Y)}
}

// Equal reports component equality.
func (v Int2) Equal(u Int2) bool { return v == u }

// Array returns the components as [X, Y].
func (v Int2) Array() [2]int32 { return [2]int32{v.X, v.Y} }

// String renders "int2(x, y)".
func (v Int2) String() string { return fmt.Sprintf("int2(%d, %d)", v.X, v.Y) }

// Int3 is a triple of int32 components.
type Int3 struct {
	X, Y, Z int32
}

// NewInt3 returns Int3{x, y, z}.
func NewInt3(x, y, z int32) Int3 { return Int3{X: x, Y: y, Z: z} }

// Int3FromSlice builds an Int3 from s[0:3]; ErrShortSlice if len(s) < 3.
func Int3FromSlice(s []int32) (Int3, error) {
	if err := validateSliceLen(ctxInt3FromSlice, len(s), 3); err != nil {
		return Int3{}, err
	}

	return Int3{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Add returns v + u.
func (v Int3) Add(u Int3) Int3 { return Int3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z} }

// Sub returns v - u.
func (v Int3) Sub(u Int3) Int3 { return Int3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z} }

// Mul returns the component-wise product.
func (v Int3) Mul(u Int3) Int3 { return Int3{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z} }

// Div returns the truncated component-wise quotient; zero divisors yield 0.
func (v Int3) Div(u Int3) Int3 {
	return Int3{X: scalar.SafeDiv(v.X, u.X), Y: scalar.SafeDiv(v.Y, u.Y), Z: scalar.SafeDiv(v.Z, u.Z)}
}

// Scale returns v * s.
func (v Int3) Scale(s int32) Int3 { return Int3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Int3) DivScalar(s int32) Int3 {
	return Int3{X: scalar.SafeDiv(v.X, s), Y: scalar.SafeDiv(v.Y, s), Z: scalar.SafeDiv(v.Z, s)}
}

// Mod returns v % s, or zero when s == 0.
func (v Int3) Mod(s int32) Int3 {
	return Int3{X: scalar.SafeMod(v.X, s), Y: scalar.SafeMod(v.Y, s), Z: scalar.SafeMod(v.Z, s)}
}

// ModVec returns the component-wise remainder; zero divisors yield 0.
func (v Int3) ModVec(u Int3) Int3 {
	return Int3{X: scalar.SafeMod(v.X, u.X), Y: scalar.SafeMod(v.Y, u.Y), Z: scalar.SafeMod(v.Z, u.Z)}
}

// Equal reports component equality.
func (v Int3) Equal(u Int3) bool { return v == u }

// Array returns the components as [X, Y, Z].
func (v Int3) Array() [3]int32 { return [3]int32{v.X, v.Y, v.Z} }

// String renders "int3(x, y, z)".
func (v Int3) String() string { return fmt.Sprintf("int3(%d, %d, %d)", v.X, v.Y, v.Z) }

// Int4 is a quadruple of int32 components.
type Int4 struct {
	X, Y, Z, W int32
}

// NewInt4 returns Int4{x, y, z, w}.
func NewInt4(x, y, z, w int32) Int4 { return Int4{X: x, Y: y, Z: z, W: w} }

// Int4FromSlice builds an Int4 from s[0:4]; ErrShortSlice if len(s) < 4.
func Int4FromSlice(s []int32) (Int4, error) {
	if err := validateSliceLen(ctxInt4FromSlice, len(s), 4); err != nil {
		return Int4{}, err
	}

	return Int4{X: s[0], Y: s[1], Z: s[2], W: s[3]}, nil
}

// Add returns v + u.
func (v Int4) Add(u Int4) Int4 {
	return Int4{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z, W: v.W + u.W}
}

// Sub returns v - u.
func (v Int4) Sub(u Int4) Int4 {
	return Int4{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z, W: v.W - u.W}
}

// Mul returns the component-wise product.
func (v Int4) Mul(u Int4) Int4 {
	return Int4{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z, W: v.W * u.W}
}

// Div returns the truncated component-wise quotient; zero divisors yield 0.
func (v Int4) Div(u Int4) Int4 {
	return Int4{
		X: scalar.SafeDiv(v.X, u.X),
		Y: scalar.SafeDiv(v.Y, u.Y),
		Z: scalar.SafeDiv(v.Z, u.Z),
		W: scalar.SafeDiv(v.W, u.W),
	}
}

// Scale returns v * s.
func (v Int4) Scale(s int32) Int4 { return Int4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s} }

// DivScalar returns v / s, or the zero vector when s == 0.
func (v Int4) DivScalar(s int32) Int4 {
	return Int4{
		X: scalar.SafeDiv(v.X, s),
		Y: scalar.SafeDiv(v.Y, s),
		Z: scalar.SafeDiv(v.Z, s),
		W: scalar.SafeDiv(v.W, s),
	}
}

// Mod returns v % s, or zero when s == 0.
func (v Int4) Mod(s int32) Int4 {
	return Int4{
		X: scalar.SafeMod(v.X, s),
		Y: scalar.SafeMod(v.Y, s),
		Z: scalar.SafeMod(v.Z, s),
		W: scalar.SafeMod(v.W, s),
	}
}

// ModVec returns the component-wise remainder; zero divisors yield 0.
func (v Int4) ModVec(u Int4) Int4 {
	return Int4{
		X: scalar.SafeMod(v.X, u.X),
		Y: scalar.SafeMod(v.Y, u.Y),
		Z: scalar.SafeMod(v.Z, u.Z),
		W: scalar.SafeMod(v.W, u.W),
	}
}

// Equal reports component equality.
func (v Int4) Equal(u Int4) bool { return v == u }

// Array returns the components as [X, Y, Z, W].
func (v Int4) Array() [4]int32 { return [4]int32{v.X, v.Y, v.Z, v.W} }

// String renders "int4(x, y, z, w)".
func (v Int4) String() string {
	return fmt.Sprintf("int4(%d, %d, %d, %d)", v.X, v.Y, v.Z, v.W)
}
