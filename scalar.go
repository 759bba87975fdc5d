// SPDX-License-Identifier: MIT

package cgmath

import (
	"github.com/chewxy/math32"
	"github.com/katalvlaran/cgmath/internal/scalar"
)

// Scalar helpers over float32. All are total: NaN and ±Inf propagate per
// IEEE 754 and nothing panics.

// ToRadians converts degrees to radians.
func ToRadians(deg float32) float32 { return deg * Deg2Rad }

// ToDegrees converts radians to degrees.
func ToDegrees(rad float32) float32 { return rad * Rad2Deg }

// ---------- arithmetic ----------

// Abs returns |x|.
func Abs(x float32) float32 { return scalar.Abs(x) }

// Min returns a if a < b, else b.
func Min(a, b float32) float32 { return scalar.Min(a, b) }

// Max returns a if a > b, else b.
func Max(a, b float32) float32 { return scalar.Max(a, b) }

// Clamp limits x to [lo, hi]; lo wins when lo > hi.
func Clamp(x, lo, hi float32) float32 { return scalar.Clamp(x, lo, hi) }

// ---------- interpolation ----------

// Lerp returns a + t(b − a). t is not clamped.
func Lerp(a, b, t float32) float32 { return a + t*(b-a) }

// Smoothstep returns the cubic Hermite ramp 3t² − 2t³ with
// t = clamp((x − edge0)/(edge1 − edge0), 0, 1).
func Smoothstep(edge0, edge1, x float32) float32 {
	t := scalar.Clamp((x-edge0)/(edge1-edge0), 0, 1)

	return t * t * (3 - 2*t)
}

// Step returns 0 for x < edge, else 1.
func Step(edge, x float32) float32 {
	if x < edge {
		return 0
	}

	return 1
}

// ---------- trigonometry ----------

// Sin returns the sine of x radians.
func Sin(x float32) float32 { return math32.Sin(x) }

// Cos returns the cosine of x radians.
func Cos(x float32) float32 { return math32.Cos(x) }

// Tan returns the tangent of x radians.
func Tan(x float32) float32 { return math32.Tan(x) }

// Asin returns the arcsine of x in radians.
func Asin(x float32) float32 { return math32.Asin(x) }

// Acos returns the arccosine of x in radians.
func Acos(x float32) float32 { return math32.Acos(x) }

// Atan returns the arctangent of x in radians.
func Atan(x float32) float32 { return math32.Atan(x) }

// Atan2 returns the arctangent of y/x, using the signs of both to pick the quadrant.
func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }

// ---------- powers and logarithms ----------

// Pow returns x**y.
func Pow(x, y float32) float32 { return math32.Pow(x, y) }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Log returns the natural logarithm of x.
func Log(x float32) float32 { return math32.Log(x) }

// Log2 returns the binary logarithm of x.
func Log2(x float32) float32 { return math32.Log2(x) }

// Log10 returns the decimal logarithm of x.
func Log10(x float32) float32 { return math32.Log10(x) }

// Rsqrt returns 1/√x (Inf at 0, NaN below 0).
func Rsqrt(x float32) float32 { return 1 / math32.Sqrt(x) }

// ---------- rounding ----------

// Floor returns the greatest integer value <= x.
func Floor(x float32) float32 { return math32.Floor(x) }

// Ceil returns the least integer value >= x.
func Ceil(x float32) float32 { return math32.Ceil(x) }

// Trunc returns the integer value of x, discarding the fraction.
func Trunc(x float32) float32 { return math32.Trunc(x) }

// Round rounds half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

// Fract returns x − Floor(x), in [0, 1) for finite x.
func Fract(x float32) float32 { return x - math32.Floor(x) }
