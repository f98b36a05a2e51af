// SPDX-License-Identifier: MIT
// Package qr_test: shared fixtures and residual helpers.

package qr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decomp/matrix"
)

// fixture5x5 returns the reference 5×5 matrix exercised against both QR
// strategies (full rank, mixed signs, zero entries).
func fixture5x5(t *testing.T) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromRows([][]float64{
		{3, 5, 0, 0, 1},
		{0, 2, 3, 0, 9},
		{-1, 1, 4, 2, 3},
		{6, 0, -9, 1, 0},
		{-8, 3, 1, -5, 2},
	})
	require.NoError(t, err, "fixture5x5")

	return m
}

// reconstructionResidual returns ‖Q·R − A‖_F.
func reconstructionResidual(t *testing.T, q, r, a matrix.Matrix) float64 {
	t.Helper()
	qr, err := matrix.Mul(q, r)
	require.NoError(t, err, "Q·R")
	diff, err := matrix.Sub(qr, a)
	require.NoError(t, err, "Q·R − A")
	res, err := matrix.Frobenius(diff)
	require.NoError(t, err, "residual norm")

	return res
}

// orthonormalityResidual returns ‖Qᵀ·Q − I‖_F.
func orthonormalityResidual(t *testing.T, q matrix.Matrix) float64 {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err, "Qᵀ")
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err, "Qᵀ·Q")
	id, err := matrix.NewIdentity(qtq.Rows())
	require.NoError(t, err, "identity")
	diff, err := matrix.Sub(qtq, id)
	require.NoError(t, err, "Qᵀ·Q − I")
	res, err := matrix.Frobenius(diff)
	require.NoError(t, err, "orthonormality norm")

	return res
}

// mustAt reads an element or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}
