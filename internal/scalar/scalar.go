// SPDX-License-Identifier: MIT

// Package scalar holds the generic per-component kernels shared by the
// vector, matrix and facade packages.
//
// Purpose:
//   - One definition of the degenerate-division policy (zero divisor -> 0).
//   - Ternary-style Min/Max/Clamp that keep operand order explicit, so NaN
//     handling matches the comparison-based definitions used everywhere else.
//   - C-style FMin/FMax for component clamps (a NaN operand yields the other).
package scalar

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is every element type the library stores.
type Number interface {
	constraints.Integer | constraints.Float
}

// Min returns a if a < b, otherwise b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns a if a > b, otherwise b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Clamp limits x to [lo, hi] as Max(Min(x, hi), lo).
// When lo > hi the result is lo.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(Min(x, hi), lo)
}

// Abs returns |x| using a sign comparison (-0 stays -0).
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// SafeDiv returns a / b, or 0 when b is exactly zero.
func SafeDiv[T Number](a, b T) T {
	if b == 0 {
		return 0
	}

	return a / b
}

// SafeMod returns a % b, or 0 when b is zero.
func SafeMod[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}

	return a % b
}

// FMin mirrors C fmin: if exactly one operand is NaN the other is returned.
func FMin(a, b float32) float32 {
	switch {
	case math32.IsNaN(a):
		return b
	case math32.IsNaN(b):
		return a
	case a < b:
		return a
	default:
		return b
	}
}

// FMax mirrors C fmax: if exactly one operand is NaN the other is returned.
func FMax(a, b float32) float32 {
	switch {
	case math32.IsNaN(a):
		return b
	case math32.IsNaN(b):
		return a
	case a > b:
		return a
	default:
		return b
	}
}

// NearlyEqual reports a == b or |a-b| <= eps. NaN never compares near anything.
func NearlyEqual(a, b, eps float32) bool {
	return a == b || math32.Abs(a-b) <= eps
}
