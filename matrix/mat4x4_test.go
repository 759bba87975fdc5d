// Package matrix_test contains unit tests for Mat4x4.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgmath/matrix"
)

func TestMat4x4_Identity(t *testing.T) {
	id := matrix.Identity4x4()
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			require.Equalf(t, want, id.At(i, j), "I4(%d,%d)", i, j)
		}
	}
	assert.Equal(t, id, id.Transpose())
	assert.NotEqual(t, id, matrix.Mat4x4{})
}

func TestMat4x4_ConstructorsAgree(t *testing.T) {
	got, err := matrix.Mat4x4FromSlice(sequence(16))
	require.NoError(t, err)
	assert.Equal(t, matrix.NewMat4x4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	), got)
	assert.Equal(t, got, matrix.Mat4x4FromArray([16]float32(sequence(16))))
	assert.Equal(t, [16]float32(sequence(16)), got.Elements())
}

func TestMat4x4_TransposeAndArithmetic(t *testing.T) {
	m := matrix.Mat4x4FromArray([16]float32(sequence(16)))
	tr := m.Transpose()
	assert.Equal(t, [4]float32{1, 5, 9, 13}, tr.Row(0))
	assert.Equal(t, [4]float32{4, 8, 12, 16}, tr.Row(3))

	rng := rand.New(rand.NewSource(17))
	for k := 0; k < propertyRounds; k++ {
		a := randomMat4x4(rng, smallInt)
		b := randomMat4x4(rng, smallInt)
		require.Equal(t, a, a.Add(b).Sub(b))
		require.Equal(t, a, a.Transpose().Transpose())
		require.Equal(t, a.Add(b).Transpose(), a.Transpose().Add(b.Transpose()))
	}
}

func TestMat4x4_SetAndCompare(t *testing.T) {
	var m matrix.Mat4x4
	m.Set(3, 3, -1)
	assert.Equal(t, float32(-1), m.M[3][3])
	assert.Equal(t, -1, m.Compare(matrix.Mat4x4{}))
	assert.False(t, m.Equal(matrix.Mat4x4{}))
	assert.True(t, m.ApproxEqual(matrix.Mat4x4{}, 1))
}
