// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the fixed-size matrix types.
//   - Keep generated data integral and small so sums/differences stay exact.

package matrix_test

import (
	"math/rand"

	"github.com/katalvlaran/cgmath/matrix"
)

// tolInverse is the absolute tolerance for inverse round trips on the
// fixtures below (entries of magnitude <= 10).
const tolInverse = 1e-5

// propertyRounds is the number of random draws per property test.
const propertyRounds = 200

// scenario is a non-trivial unimodular matrix (det == 1) with a known
// integral inverse.
func scenario() matrix.Mat3x3 {
	return matrix.NewMat3x3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)
}

// scenarioInverse is the exact inverse of scenario().
func scenarioInverse() matrix.Mat3x3 {
	return matrix.NewMat3x3(
		-24, 18, 5,
		20, -15, -4,
		-5, 4, 1,
	)
}

// smallInt draws an integer in [-100, 100] as float32 (exact in float32).
func smallInt(rng *rand.Rand) float32 {
	return float32(rng.Intn(201) - 100)
}

// anyFloat draws an arbitrary finite float32 in [-1e3, 1e3).
func anyFloat(rng *rand.Rand) float32 {
	return (rng.Float32()*2 - 1) * 1e3
}

// randomMat3x3 fills a Mat3x3 using gen.
func randomMat3x3(rng *rand.Rand, gen func(*rand.Rand) float32) matrix.Mat3x3 {
	var m matrix.Mat3x3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			m.Set(i, j, gen(rng))
		}
	}

	return m
}

// randomMat4x3 fills a Mat4x3 using gen.
func randomMat4x3(rng *rand.Rand, gen func(*rand.Rand) float32) matrix.Mat4x3 {
	var a [12]float32
	for k := range a {
		a[k] = gen(rng)
	}

	return matrix.Mat4x3FromArray(a)
}

// randomMat3x4 fills a Mat3x4 using gen.
func randomMat3x4(rng *rand.Rand, gen func(*rand.Rand) float32) matrix.Mat3x4 {
	var a [12]float32
	for k := range a {
		a[k] = gen(rng)
	}

	return matrix.Mat3x4FromArray(a)
}

// randomMat4x4 fills a Mat4x4 using gen.
func randomMat4x4(rng *rand.Rand, gen func(*rand.Rand) float32) matrix.Mat4x4 {
	var a [16]float32
	for k := range a {
		a[k] = gen(rng)
	}

	return matrix.Mat4x4FromArray(a)
}

// sequence returns 1, 2, ..., n as float32.
func sequence(n int) []float32 {
	out := make([]float32, n)
	for k := range out {
		out[k] = float32(k + 1)
	}

	return out
}
