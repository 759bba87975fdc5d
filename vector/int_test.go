// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for the integer vectors.
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgmath/vector"
)

func TestInt_Arithmetic(t *testing.T) {
	a := vector.NewInt3(7, -7, 9)
	b := vector.NewInt3(2, 2, -4)

	assert.Equal(t, vector.NewInt3(9, -5, 5), a.Add(b))
	assert.Equal(t, vector.NewInt3(5, -9, 13), a.Sub(b))
	assert.Equal(t, vector.NewInt3(14, -14, -36), a.Mul(b))
	assert.Equal(t, vector.NewInt3(3, -3, -2), a.Div(b))
	assert.Equal(t, vector.NewInt3(21, -21, 27), a.Scale(3))
	assert.Equal(t, vector.NewInt3(1, -1, 1), a.ModVec(b))

	assert.Equal(t, vector.NewInt2(2, -2), vector.NewInt2(5, -5).DivScalar(2))
	assert.Equal(t, vector.NewInt4(1, -1, 0, 2), vector.NewInt4(4, -4, 3, 5).Mod(3))
}

// TestInt_ZeroDivisor: division and modulo by zero yield zero components.
func TestInt_ZeroDivisor(t *testing.T) {
	assert.Equal(t, vector.Int2{}, vector.NewInt2(3, 4).DivScalar(0))
	assert.Equal(t, vector.Int2{}, vector.NewInt2(3, 4).Mod(0))
	assert.Equal(t, vector.NewInt3(0, 2, 0), vector.NewInt3(5, 4, 3).Div(vector.NewInt3(0, 2, 0)))
	assert.Equal(t, vector.NewInt4(0, 1, 0, 0), vector.NewInt4(5, 5, 5, 5).ModVec(vector.NewInt4(0, 2, 0, 5)))

	assert.Equal(t, vector.Uint3{}, vector.NewUint3(1, 2, 3).DivScalar(0))
	assert.Equal(t, vector.Uint4{}, vector.NewUint4(1, 2, 3, 4).Mod(0))
	assert.Equal(t, vector.NewUint2(0, 3), vector.NewUint2(9, 9).Div(vector.NewUint2(0, 3)))
}

// TestInt_Wraparound: overflow wraps like two's complement arithmetic.
func TestInt_Wraparound(t *testing.T) {
	maxI := vector.NewInt2(math.MaxInt32, 0)
	assert.Equal(t, vector.NewInt2(math.MinInt32, 0), maxI.Add(vector.NewInt2(1, 0)))

	assert.Equal(t, vector.NewUint2(math.MaxUint32, 0), vector.NewUint2(0, 1).Sub(vector.NewUint2(1, 1)))
	assert.Equal(t, vector.NewUint3(0, 0, 0), vector.NewUint3(math.MaxUint32, 0, 0).Add(vector.NewUint3(1, 0, 0)))
}

func TestUint_Arithmetic(t *testing.T) {
	a := vector.NewUint4(10, 20, 30, 40)
	b := vector.NewUint4(3, 6, 7, 9)

	assert.Equal(t, vector.NewUint4(13, 26, 37, 49), a.Add(b))
	assert.Equal(t, vector.NewUint4(7, 14, 23, 31), a.Sub(b))
	assert.Equal(t, vector.NewUint4(30, 120, 210, 360), a.Mul(b))
	assert.Equal(t, vector.NewUint4(3, 3, 4, 4), a.Div(b))
	assert.Equal(t, vector.NewUint4(1, 2, 2, 4), a.ModVec(b))
	assert.Equal(t, vector.NewUint4(5, 10, 15, 20), a.DivScalar(2))
	assert.Equal(t, vector.NewUint4(20, 40, 60, 80), a.Scale(2))
	assert.Equal(t, vector.NewUint4(1, 2, 3, 4), a.Mod(9))
	assert.True(t, a.Equal(vector.NewUint4(10, 20, 30, 40)))
}

func TestInt_FromSliceArrayString(t *testing.T) {
	i4, err := vector.Int4FromSlice([]int32{1, -2, 3, -4})
	require.NoError(t, err)
	assert.Equal(t, [4]int32{1, -2, 3, -4}, i4.Array())
	assert.Equal(t, "int4(1, -2, 3, -4)", i4.String())

	i2, err := vector.Int2FromSlice([]int32{5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, "int2(5, 6)", i2.String())

	_, err = vector.Int3FromSlice([]int32{1, 2})
	require.ErrorIs(t, err, vector.ErrShortSlice)
	require.Contains(t, err.Error(), "Int3FromSlice")

	u3, err := vector.Uint3FromSlice([]uint32{7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, [3]uint32{7, 8, 9}, u3.Array())
	assert.Equal(t, "uint3(7, 8, 9)", u3.String())
	assert.Equal(t, "uint2(0, 4294967295)", vector.NewUint2(0, math.MaxUint32).String())
	assert.Equal(t, "int3(0, 0, 0)", vector.Int3{}.String())

	_, err = vector.Uint4FromSlice(nil)
	require.ErrorIs(t, err, vector.ErrShortSlice)
	_, err = vector.Uint2FromSlice([]uint32{1})
	require.ErrorIs(t, err, vector.ErrShortSlice)
}
