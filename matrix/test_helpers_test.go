// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/matops/matrix"
)

// threshold is the acceptance tolerance used by the numeric fixtures.
const threshold = 0.001

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface (At/Set) fallback path.
type hide struct{ matrix.Matrix }

// Fixtures shared by several test files.
var (
	// rect3x4 is the copy-construction fixture.
	rect3x4 = [][]float64{
		{2.2, 1.2, 45.2, 7.1},
		{9.1, 2.3, 12.1, 2.3},
		{12.3, 4.5, 6.1, 7.9},
	}

	// quadA and quadB are the 4×4 operands of the add/sub fixtures.
	quadA = [][]float64{
		{0.1, 0.2, 0.3, 0.4},
		{1.4, 1.3, 1.2, 1.1},
		{1.0, 2.0, 3.0, 4.0},
		{11.1, 11.2, 11.3, 11.4},
	}
	quadB = [][]float64{
		{0.4, 0.3, 0.2, 0.1},
		{1.1, 1.2, 1.3, 1.4},
		{2.0, 2.0, 2.0, 2.0},
		{10.1, 11.2, 12.3, 13.4},
	}

	// invertible3 and its exact inverse.
	invertible3 = [][]float64{
		{-1.0, 2.0, -2.0},
		{2.0, -1.0, 5.0},
		{3.0, -2.0, 4.0},
	}
	inverse3 = [][]float64{
		{0.6, -0.4, 0.8},
		{0.7, 0.2, 0.1},
		{-0.1, 0.4, -0.3},
	}

	// zeroColumn3 is singular: its first column is all zeros.
	zeroColumn3 = [][]float64{
		{0.0, 2.0, -2.0},
		{0.0, -1.0, 5.0},
		{0.0, -2.0, 4.0},
	}
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows builds a *Dense from nested rows or fails the test.
func MustRows(t testing.TB, data [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(data)
	require.NoError(t, err, "FromRows")

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// RequireNearRows asserts m has the shape of want and every cell is within tol.
func RequireNearRows(t testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), tol, "cell (%d,%d)", i, j)
		}
	}
}

// CompareExact asserts m equals want cell-by-cell with ==.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	RequireNearRows(t, want, m, 0)
}

// RandIntDense returns an r×c matrix of integer-valued cells in [-span, span],
// drawn from a seeded generator. Integer cells keep sums and small products
// exact, so algebraic identities can be checked with ==.
func RandIntDense(t testing.TB, r, c, span int, seed uint64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, float64(rng.Intn(2*span+1)-span))
		}
	}

	return m
}

// RandDominantDense returns an n×n strictly diagonally dominant matrix with
// U(-1,1) off-diagonal cells; such matrices are well-conditioned and invertible.
func RandDominantDense(t testing.TB, n int, seed uint64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				MustSet(t, m, i, j, rng.Float64()*2-1)
			}
		}
		MustSet(t, m, i, i, float64(n)+rng.Float64())
	}

	return m
}
