package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cgmath/matrix"
)

// ExampleMat3x3_Inverse inverts a unimodular matrix and checks the product.
func ExampleMat3x3_Inverse() {
	a := matrix.NewMat3x3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)
	fmt.Println("det =", a.Determinant())
	inv := a.Inverse()
	fmt.Println(inv)
	fmt.Println("identity:", inv.Mul(a) == matrix.Identity3x3())

	// Output:
	// det = 1
	// | -24.00 18.00 5.00 |
	// | 20.00 -15.00 -4.00 |
	// | -5.00 4.00 1.00 |
	// identity: true
}

// ExampleMat3x3_Inverse_singular shows the zero-matrix fallback.
func ExampleMat3x3_Inverse_singular() {
	s := matrix.NewMat3x3(1, 2, 3, 2, 4, 6, 1, 1, 1)
	fmt.Println(s.IsInvertible())
	fmt.Println(s.Inverse() == matrix.Mat3x3{})

	// Output:
	// false
	// true
}

// ExampleMat4x3_Transpose converts an affine 4x3 into its 3x4 transpose.
func ExampleMat4x3_Transpose() {
	m := matrix.NewMat4x3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		5, 6, 7,
	)
	fmt.Println(m.Transpose().Render(matrix.WithPrecision(0)))

	// Output:
	// | 1 0 0 5 |
	// | 0 1 0 6 |
	// | 0 0 1 7 |
}

// ExampleMat4x4_WriteTo prints a matrix with a trailing newline.
func ExampleMat4x4_WriteTo() {
	_, _ = matrix.Identity4x4().WriteTo(os.Stdout)

	// Output:
	// | 1.00 0.00 0.00 0.00 |
	// | 0.00 1.00 0.00 0.00 |
	// | 0.00 0.00 1.00 0.00 |
	// | 0.00 0.00 0.00 1.00 |
}
