// SPDX-License-Identifier: MIT

package cgmath

import "github.com/chewxy/math32"

// Angles and numeric policy.
const (
	Pi      float32 = 3.14159265358979323846
	TwoPi   float32 = 6.28318530717958647692
	HalfPi  float32 = 1.57079632679489661923
	InvPi   float32 = 0.31830988618379067153 // 1 / Pi
	Deg2Rad float32 = Pi / 180
	Rad2Deg float32 = 180 / Pi

	// Epsilon is the default absolute tolerance for ApproxEqual comparisons.
	Epsilon float32 = 1e-6
)

// Inf is float32 positive infinity. Go constants cannot be infinite, so this
// is a variable; the library never writes to it.
var Inf = math32.Inf(1)

// Golden ratio.
const (
	Phi      float32 = 1.618033988749895 // φ
	InvPhi   float32 = 0.618033988749895 // 1 / φ
	FibRatio float32 = 1.618             // Fibonacci approximate ratio
)

// Physical constants (SI units).
const (
	SpeedOfLight float32 = 299792458.0    // m/s
	Gravity      float32 = 9.80665        // m/s²
	Planck       float32 = 6.62607015e-34 // J·s
	Boltzmann    float32 = 1.380649e-23   // J/K
)

// Zero and one vectors. Go has no struct constants; treat these as read-only.
var (
	ZeroFloat2 = Float2{}
	ZeroFloat3 = Float3{}
	ZeroFloat4 = Float4{}

	ZeroInt2 = Int2{}
	ZeroInt3 = Int3{}
	ZeroInt4 = Int4{}

	ZeroUint2 = Uint2{}
	ZeroUint3 = Uint3{}
	ZeroUint4 = Uint4{}

	OneFloat2 = Float2{X: 1, Y: 1}
	OneFloat3 = Float3{X: 1, Y: 1, Z: 1}
	OneFloat4 = Float4{X: 1, Y: 1, Z: 1, W: 1}

	OneInt2 = Int2{X: 1, Y: 1}
	OneInt3 = Int3{X: 1, Y: 1, Z: 1}
	OneInt4 = Int4{X: 1, Y: 1, Z: 1, W: 1}

	OneUint2 = Uint2{X: 1, Y: 1}
	OneUint3 = Uint3{X: 1, Y: 1, Z: 1}
	OneUint4 = Uint4{X: 1, Y: 1, Z: 1, W: 1}
)
