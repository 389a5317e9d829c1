// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for matrix tests.

package matrix_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// wrapCols is a column count for which 4*wrapCols overflows int to exactly 0.
const wrapCols = 1 << (bits.UintSize - 2)

// mustNew allocates an r×c matrix or fails the test.
func mustNew[T matrix.Number](tb testing.TB, r, c int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustRandom allocates an r×c float64 matrix filled from a seeded generator.
func mustRandom(tb testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	m, err := matrix.NewRandom[float64](r, c, 1, -1, matrix.WithSeed(seed))
	require.NoError(tb, err)

	return m
}

// newRand returns a deterministic generator for a test.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// requireRows asserts the full contents of m against want.
func requireRows[T matrix.Number](tb testing.TB, want [][]T, m *matrix.Matrix[T]) {
	tb.Helper()
	require.NotNil(tb, m)
	require.Equal(tb, want, m.ToRows())
}
