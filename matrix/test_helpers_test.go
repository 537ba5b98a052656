// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathmodels/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set fallback in kernels under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustFrom builds a *Dense from a literal or fails the test.
func MustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RandomFill fills m with values in [-1,1) from a seeded source.
func RandomFill(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1))
		}
	}
}

// DiagDominant returns a random strictly diagonally dominant n×n matrix
// (always non-singular), useful for solver round-trips.
func DiagDominant(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, n, n)
	RandomFill(tb, m, seed)
	for i := 0; i < n; i++ {
		require.NoError(tb, m.Set(i, i, float64(n)+1))
	}

	return m
}

// RequireClose asserts AllClose(got, want) with the given absolute tolerance.
func RequireClose(tb testing.TB, want, got matrix.Matrix, atol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}
