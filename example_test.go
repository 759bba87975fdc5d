package cgmath_test

import (
	"fmt"

	"github.com/katalvlaran/cgmath"
)

// Example walks through the single-import surface.
func Example() {
	a := cgmath.NewMat3x3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)
	fmt.Println("det:", a.Determinant())
	fmt.Println("inverse ok:", a.Inverse().Mul(a) == cgmath.Identity3x3())

	v := cgmath.NewVector4(3, 4, 0, 0)
	fmt.Println("length:", v.Length())
	fmt.Println(cgmath.NewInt2(7, 8).DivScalar(0))

	// Output:
	// det: 1
	// inverse ok: true
	// length: 5
	// int2(0, 0)
}

// ExampleSmoothstep samples the Hermite ramp.
func ExampleSmoothstep() {
	for _, x := range []float32{0, 0.25, 0.5, 1} {
		fmt.Printf("%.5f\n", cgmath.Smoothstep(0, 1, x))
	}

	// Output:
	// 0.00000
	// 0.15625
	// 0.50000
	// 1.00000
}
