// SPDX-License-Identifier: MIT
// Package lup: direct solvers riding on the LUP factors — Solve, Det and
// Inverse. All three factorize once and then run forward/backward
// substitution; none of them mutates the caller's input.

package lup

import (
	"errors"

	"github.com/katalvlaran/decomp/matrix"
)

// Operation tags for uniform error wrapping.
const (
	opSolve   = "Solve"
	opDet     = "Det"
	opInverse = "Inverse"
)

// Solve computes the solution x of the square linear system A·x = b using
// the LUP decomposition: factorize P·A = L·U once, permute b, then run
// forward substitution (L·y = P·b, unit diagonal) followed by backward
// substitution (U·x = y).
//
// Errors:
//   - matrix.ErrNilMatrix          — nil matrix.
//   - matrix.ErrNonSquare          — A is not square.
//   - matrix.ErrDimensionMismatch  — len(b) != A.Rows().
//   - matrix.ErrSingular           — A is singular (zero pivot).
//
// Complexity: O(n³) time for the factorization, O(n²) substitution.
func Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	// Stage 1: Validate shape and the right-hand side.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, lupErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, lupErrorf(opSolve, err)
	}

	// Stage 2: Factorize P·A = L·U.
	p, lu, err := Decompose(a)
	if err != nil {
		return nil, lupErrorf(opSolve, err)
	}

	// Stage 3: Substitute on the factors.
	x, err := solveFactors(p, lu, b)
	if err != nil {
		return nil, lupErrorf(opSolve, err)
	}

	return x, nil
}

// solveFactors runs the two substitution passes on already computed LUP
// factors of a square system. Internal helper shared by Solve and Inverse.
// Complexity: O(n²) time, O(n) memory.
func solveFactors(p []int, lu matrix.Matrix, b []float64) ([]float64, error) {
	n := lu.Rows()

	// Forward pass: L·y = P·b with unit diagonal, so no division.
	var i, k int
	var sum, v float64
	var err error
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = b[p[i]] // permuted right-hand side
		for k = 0; k < i; k++ {
			v, err = lu.At(i, k)
			if err != nil {
				return nil, err
			}
			sum -= v * y[k]
		}
		y[i] = sum
	}

	// Backward pass: U·x = y, dividing by the pivots.
	x := make([]float64, n)
	var pivot float64
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			v, err = lu.At(i, k)
			if err != nil {
				return nil, err
			}
			sum -= v * x[k]
		}
		pivot, err = lu.At(i, i)
		if err != nil {
			return nil, err
		}
		// Decompose already rejected zero pivots; keep the guard local anyway.
		if pivot == ZeroPivot {
			return nil, matrix.ErrSingular
		}
		x[i] = sum / pivot
	}

	return x, nil
}

// Det computes the determinant of a square matrix from its LUP factors:
// the product of U's diagonal times the sign of the permutation. A singular
// input (zero pivot during elimination) has determinant exactly 0 and is
// reported as such, not as an error.
//
// Errors:
//   - matrix.ErrNilMatrix — nil input.
//   - matrix.ErrNonSquare — A is not square.
//
// Complexity: O(n³) time, O(n²) memory.
func Det(a matrix.Matrix) (float64, error) {
	// Stage 1: Validate shape.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, lupErrorf(opDet, err)
	}

	// Stage 2: Factorize; a singular matrix simply has det = 0.
	p, lu, err := Decompose(a)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return 0, nil
		}

		return 0, lupErrorf(opDet, err)
	}

	// Stage 3: Multiply the U diagonal and apply the permutation sign.
	det := parity(p)
	n := lu.Rows()
	var v float64
	for i := 0; i < n; i++ {
		v, err = lu.At(i, i)
		if err != nil {
			return 0, lupErrorf(opDet, err)
		}
		det *= v
	}

	return det, nil
}

// Inverse computes A⁻¹ for a square matrix by factorizing once and solving
// A·x = e_j for every identity column e_j; column j of the result is x.
//
// Errors:
//   - matrix.ErrNilMatrix — nil input.
//   - matrix.ErrNonSquare — A is not square.
//   - matrix.ErrSingular  — A is not invertible.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse(a matrix.Matrix) (matrix.Matrix, error) {
	// Stage 1: Validate shape.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, lupErrorf(opInverse, err)
	}
	n := a.Rows()

	// Stage 2: Factorize once; reuse the factors for every column.
	p, lu, err := Decompose(a)
	if err != nil {
		return nil, lupErrorf(opInverse, err)
	}

	// Stage 3: Solve against each identity column.
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, lupErrorf(opInverse, err)
	}
	e := make([]float64, n)
	var i, j int
	var x []float64
	for j = 0; j < n; j++ {
		// Build e_j in place (reset the previous unit entry).
		if j > 0 {
			e[j-1] = 0
		}
		e[j] = 1
		x, err = solveFactors(p, lu, e)
		if err != nil {
			return nil, lupErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			_ = out.Set(i, j, x[i])
		}
	}

	return out, nil
}
