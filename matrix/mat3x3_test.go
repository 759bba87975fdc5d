// Package matrix_test contains unit tests for the Mat3x3 algebra.
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cgmath/matrix"
)

// Mat3x3Suite groups the square-matrix algebra tests.
type Mat3x3Suite struct {
	suite.Suite
	rng *rand.Rand
	I   matrix.Mat3x3
}

func (s *Mat3x3Suite) SetupTest() {
	s.rng = rand.New(rand.NewSource(1337))
	s.I = matrix.Identity3x3()
}

func TestMat3x3Suite(t *testing.T) {
	suite.Run(t, new(Mat3x3Suite))
}

// TestZeroValue: the default value is the zero matrix, not the identity.
func (s *Mat3x3Suite) TestZeroValue() {
	var m matrix.Mat3x3
	require.Equal(s.T(), matrix.NewMat3x3(0, 0, 0, 0, 0, 0, 0, 0, 0), m)
	require.True(s.T(), m.Equal(matrix.Mat3x3{}))
	require.NotEqual(s.T(), s.I, m)
}

// TestConstructors: element list, array and slice agree on row-major order.
func (s *Mat3x3Suite) TestConstructors() {
	want := matrix.NewMat3x3(1, 2, 3, 4, 5, 6, 7, 8, 9)

	require.Equal(s.T(), want, matrix.Mat3x3FromArray([9]float32{1, 2, 3, 4, 5, 6, 7, 8, 9}))

	got, err := matrix.Mat3x3FromSlice(sequence(9))
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, got)

	// extra trailing elements are ignored
	got, err = matrix.Mat3x3FromSlice(sequence(12))
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, got)

	require.Equal(s.T(), float32(6), want.At(1, 2))
	require.Equal(s.T(), [3]float32{7, 8, 9}, want.Row(2))
	require.Equal(s.T(), [9]float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, want.Elements())
}

// TestFromSliceShort: fewer than nine elements yields ErrShortSlice.
func (s *Mat3x3Suite) TestFromSliceShort() {
	m, err := matrix.Mat3x3FromSlice(sequence(8))
	require.ErrorIs(s.T(), err, matrix.ErrShortSlice)
	require.Contains(s.T(), err.Error(), "Mat3x3FromSlice")
	require.Equal(s.T(), matrix.Mat3x3{}, m)

	_, err = matrix.Mat3x3FromSlice(nil)
	require.ErrorIs(s.T(), err, matrix.ErrShortSlice)
}

// TestSetMutatesOnlyReceiver: value semantics, copies are independent.
func (s *Mat3x3Suite) TestSetMutatesOnlyReceiver() {
	a := scenario()
	b := a
	b.Set(0, 0, 42)

	require.Equal(s.T(), float32(1), a.At(0, 0))
	require.Equal(s.T(), float32(42), b.At(0, 0))
	require.Equal(s.T(), float32(42), b.M[0][0])
}

// TestAddSubRoundTrip: (A + B) - B == A exactly for integral data.
func (s *Mat3x3Suite) TestAddSubRoundTrip() {
	for k := 0; k < propertyRounds; k++ {
		a := randomMat3x3(s.rng, smallInt)
		b := randomMat3x3(s.rng, smallInt)
		require.Equal(s.T(), a, a.Add(b).Sub(b))
	}
}

// TestScale: element-wise multiply, including scale by zero.
func (s *Mat3x3Suite) TestScale() {
	got := scenario().Scale(2)
	require.Equal(s.T(), matrix.NewMat3x3(2, 4, 6, 0, 2, 8, 10, 12, 0), got)
	require.Equal(s.T(), matrix.Mat3x3{}, scenario().Scale(0))
}

// TestTranspose: (i,j) swaps with (j,i) and the operation is an involution.
func (s *Mat3x3Suite) TestTranspose() {
	m := matrix.NewMat3x3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(s.T(), matrix.NewMat3x3(1, 4, 7, 2, 5, 8, 3, 6, 9), m.Transpose())

	for k := 0; k < propertyRounds; k++ {
		a := randomMat3x3(s.rng, anyFloat)
		require.Equal(s.T(), a, a.Transpose().Transpose())
	}
}

// TestMulIdentity: A·I == I·A == A.
func (s *Mat3x3Suite) TestMulIdentity() {
	for k := 0; k < propertyRounds; k++ {
		a := randomMat3x3(s.rng, anyFloat)
		require.Equal(s.T(), a, a.Mul(s.I))
		require.Equal(s.T(), a, s.I.Mul(a))
	}
}

// TestMulKnownProduct: row-by-column ordering on a hand-computed product.
func (s *Mat3x3Suite) TestMulKnownProduct() {
	a := matrix.NewMat3x3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := matrix.NewMat3x3(9, 8, 7, 6, 5, 4, 3, 2, 1)

	require.Equal(s.T(), matrix.NewMat3x3(
		30, 24, 18,
		84, 69, 54,
		138, 114, 90,
	), a.Mul(b))
	require.Equal(s.T(), matrix.NewMat3x3(
		90, 114, 138,
		54, 69, 84,
		18, 24, 30,
	), b.Mul(a))
}

// TestMulTransposeRule: (AB)ᵀ == BᵀAᵀ exactly for integral data.
func (s *Mat3x3Suite) TestMulTransposeRule() {
	for k := 0; k < propertyRounds; k++ {
		a := randomMat3x3(s.rng, smallInt)
		b := randomMat3x3(s.rng, smallInt)
		require.Equal(s.T(), a.Mul(b).Transpose(), b.Transpose().Mul(a.Transpose()))
	}
}

// TestDeterminant covers identity, the unimodular scenario and zero rows.
func (s *Mat3x3Suite) TestDeterminant() {
	cases := []struct {
		name string
		m    matrix.Mat3x3
		want float32
	}{
		{"identity", s.I, 1},
		{"zero", matrix.Mat3x3{}, 0},
		{"scenario", scenario(), 1},
		{"diagonal", matrix.NewMat3x3(2, 0, 0, 0, 4, 0, 0, 0, 8), 64},
		{"zero first row", matrix.NewMat3x3(0, 0, 0, 1, 2, 3, 4, 5, 6), 0},
		{"zero middle row", matrix.NewMat3x3(1, 2, 3, 0, 0, 0, 4, 5, 6), 0},
		{"zero last row", matrix.NewMat3x3(1, 2, 3, 4, 5, 6, 0, 0, 0), 0},
		{"dependent rows", matrix.NewMat3x3(1, 2, 3, 2, 4, 6, 1, 1, 1), 0},
		{"general", matrix.NewMat3x3(4, 7, 2, 3, 6, 1, 2, 5, 3), 9},
		{"row swap flips sign", matrix.NewMat3x3(0, 1, 4, 1, 2, 3, 5, 6, 0), -1},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			require.Equal(s.T(), tc.want, tc.m.Determinant())
			require.Equal(s.T(), tc.want != 0, tc.m.IsInvertible())
		})
	}
}

// TestDeterminantOfTranspose: det(Aᵀ) == det(A) for integral data.
func (s *Mat3x3Suite) TestDeterminantOfTranspose() {
	for k := 0; k < propertyRounds; k++ {
		a := randomMat3x3(s.rng, smallInt)
		require.Equal(s.T(), a.Determinant(), a.Transpose().Determinant())
	}
}

// TestInverseScenario: det == 1 gives an exact integral adjugate.
func (s *Mat3x3Suite) TestInverseScenario() {
	inv := scenario().Inverse()
	require.Equal(s.T(), scenarioInverse(), inv)
	require.Equal(s.T(), s.I, inv.Mul(scenario()))
	require.Equal(s.T(), s.I, scenario().Mul(inv))
}

// TestInverseRoundTrip: inverse(A)·A ≈ I whenever A is invertible.
func (s *Mat3x3Suite) TestInverseRoundTrip() {
	cases := map[string]matrix.Mat3x3{
		"diagonal": matrix.NewMat3x3(2, 0, 0, 0, 4, 0, 0, 0, 8),
		"rotation": matrix.NewMat3x3(0, -1, 0, 1, 0, 0, 0, 0, 1),
		"general":  matrix.NewMat3x3(4, 7, 2, 3, 6, 1, 2, 5, 3),
		"scaled":   matrix.NewMat3x3(0.5, 0, 0.25, 0, 2, 0, 1, 0, 3),
	}
	for name, m := range cases {
		s.Run(name, func() {
			require.True(s.T(), m.IsInvertible())
			got := m.Inverse().Mul(m)
			require.Truef(s.T(), got.ApproxEqual(s.I, tolInverse), "inverse(A)·A =\n%s", got)
			got = m.Mul(m.Inverse())
			require.Truef(s.T(), got.ApproxEqual(s.I, tolInverse), "A·inverse(A) =\n%s", got)
		})
	}

	require.Equal(s.T(), matrix.NewMat3x3(0.5, 0, 0, 0, 0.25, 0, 0, 0, 0.125),
		matrix.NewMat3x3(2, 0, 0, 0, 4, 0, 0, 0, 8).Inverse())
}

// TestInverseSingularFallsBackToZero: det == 0 returns the zero matrix.
func (s *Mat3x3Suite) TestInverseSingularFallsBackToZero() {
	for _, m := range []matrix.Mat3x3{
		{},
		matrix.NewMat3x3(1, 2, 3, 0, 0, 0, 4, 5, 6),
		matrix.NewMat3x3(1, 2, 3, 2, 4, 6, 1, 1, 1),
		matrix.NewMat3x3(1, 1, 1, 1, 1, 1, 1, 1, 1),
	} {
		require.False(s.T(), m.IsInvertible())
		require.Equal(s.T(), matrix.Mat3x3{}, m.Inverse())
	}
}

// TestInverseOfIdentity: I⁻¹ == I.
func (s *Mat3x3Suite) TestInverseOfIdentity() {
	require.Equal(s.T(), s.I, s.I.Inverse())
}

// TestEqualityIsExact: no epsilon in Equal, ApproxEqual provides it.
func (s *Mat3x3Suite) TestEqualityIsExact() {
	a := s.I
	b := s.I
	b.Set(2, 2, 1+1e-7)

	require.False(s.T(), a.Equal(b))
	require.False(s.T(), a == b)
	require.True(s.T(), a.ApproxEqual(b, 1e-6))
	require.False(s.T(), a.ApproxEqual(b, 0))
}

// TestCompareLexicographic: row-major lexicographic ordering.
func (s *Mat3x3Suite) TestCompareLexicographic() {
	zero := matrix.Mat3x3{}
	require.Equal(s.T(), 0, s.I.Compare(s.I))
	require.Equal(s.T(), 1, s.I.Compare(zero))
	require.Equal(s.T(), -1, zero.Compare(s.I))

	// first difference decides, later elements are irrelevant
	a := matrix.NewMat3x3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := matrix.NewMat3x3(1, 2, 3, 4, 5, 7, 0, 0, 0)
	require.Equal(s.T(), -1, a.Compare(b))
	require.Equal(s.T(), 1, b.Compare(a))
}

// TestCompareNaN: NaN sorts first and equals itself under Compare only.
func (s *Mat3x3Suite) TestCompareNaN() {
	n := s.I
	n.Set(0, 0, float32(math.NaN()))

	require.False(s.T(), n.Equal(n))
	require.Equal(s.T(), 0, n.Compare(n))
	require.Equal(s.T(), -1, n.Compare(s.I))

	low := s.I
	low.Set(0, 0, float32(math.Inf(-1)))
	require.Equal(s.T(), -1, n.Compare(low))
	require.Equal(s.T(), 1, low.Compare(n))
}
