// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernel tests.
//   - Keep all data finite and well-formed to avoid numeric-policy
//     interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decomp/matrix"
)

// hide WRAPS any Matrix to mask its concrete type from type assertions,
// forcing kernels onto their interface fallback path in tests.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows builds a *Dense from row slices or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows")

	return m
}

// MustAt reads element (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes element (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// CompareClose asserts got ≈ want element by element within tol.
func CompareClose(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "col count in row %d", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, got, i, j), tol, "element (%d,%d)", i, j)
		}
	}
}
