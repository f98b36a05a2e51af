// SPDX-License-Identifier: MIT

package lup

import (
	"fmt"
	"math"

	"github.com/katalvlaran/decomp/matrix"
)

// ZeroPivot is the sentinel value for detecting a zero pivot during
// elimination. A pivot comparing equal to it means the column is fully
// rank-deficient and the decomposition cannot continue.
const ZeroPivot = 0.0

// opDecompose tags Decompose errors for uniform wrapping.
const opDecompose = "Decompose"

// lupErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Call only when err != nil.
func lupErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Decompose computes the LUP decomposition of an m×n matrix using Crout's
// method with partial pivoting.
//
// Description:
//
//	A private working copy of A, a permutation array p (initialized to the
//	identity) and a combined factor matrix LU (m×n, zeroed) are carried
//	through r = min(m, n) pivot columns. For pivot column j:
//	 1. The U entries of column j above the pivot are computed by the
//	    accumulated dot-product elimination formula.
//	 2. Every candidate row i ≥ j gets its partially eliminated value
//	    a[i][j] − Σ_{k<j} LU[i][k]·LU[k][j]; the row with the largest
//	    absolute value wins the pivot (ties → first occurrence).
//	 3. A winning row other than j is swapped into place — in the working
//	    copy, in LU and in p.
//	 4. The pivot lands on LU[j][j]; rows below it are divided by the pivot
//	    to form column j of unit-lower L.
//	For wide matrices (m < n) the trailing columns r..n-1 are then computed
//	directly without further pivoting — there are no rows left to permute.
//
// Output: the permutation indices p (a bijection on {0..m-1}; row i of the
// pivoted system is row p[i] of A) and the combined factor matrix LU with
// unit-lower L below the diagonal and upper-trapezoidal U on/above it.
// Split separates the factors; PermutationMatrix expands p.
//
// Guarantee: P·A = L·U where P is the permutation matrix built from p.
//
// Errors:
//   - matrix.ErrNilMatrix — nil input.
//   - matrix.ErrSingular  — a zero pivot after elimination (the column is
//     fully rank-deficient). Surfaced as an error instead of letting the
//     division produce propagating ±Inf/NaN values.
//
// Complexity: O(m·n·min(m,n)) time, O(m·n) memory.
func Decompose(a matrix.Matrix) ([]int, matrix.Matrix, error) {
	// Stage 1: Validate input.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, lupErrorf(opDecompose, err)
	}
	m, n := a.Rows(), a.Cols() // input shape
	r := m                     // pivot columns = min(m, n)
	if n < r {
		r = n
	}

	// Stage 2: Prepare working state — a private row copy of A, the zeroed
	// combined factor matrix and the identity permutation.
	w, err := rowsOf(a)
	if err != nil {
		return nil, nil, lupErrorf(opDecompose, err)
	}
	lu := make([][]float64, m)
	p := make([]int, m)
	for i := 0; i < m; i++ {
		lu[i] = make([]float64, n)
		p[i] = i
	}

	// Stage 3: Eliminate pivot columns with partial pivoting.
	var (
		i, j, k    int     // loop indices
		sum        float64 // accumulated dot product
		best       int     // pivot row candidate
		bestAbs    float64 // |candidate| of the current winner
		cand       []float64
		pivot, abs float64
	)
	cand = make([]float64, m) // partially eliminated column values
	for j = 0; j < r; j++ {
		// 3.1: U entries of column j for rows above the pivot.
		for i = 0; i < j; i++ {
			sum = matrix.ZeroSum
			for k = 0; k < i; k++ {
				sum += lu[i][k] * lu[k][j]
			}
			lu[i][j] = w[i][j] - sum
		}

		// 3.2: Candidate values for rows j..m-1; the largest magnitude wins.
		best, bestAbs = j, -1.0
		for i = j; i < m; i++ {
			sum = matrix.ZeroSum
			for k = 0; k < j; k++ { // entries beyond k=j-1 are still zero
				sum += lu[i][k] * lu[k][j]
			}
			cand[i] = w[i][j] - sum
			abs = math.Abs(cand[i])
			if abs > bestAbs { // strict > keeps the first occurrence on ties
				best, bestAbs = i, abs
			}
		}

		// 3.3: Swap the winning row into the pivot position.
		if best != j {
			w[j], w[best] = w[best], w[j]
			lu[j], lu[best] = lu[best], lu[j] // L entries travel with the row
			p[j], p[best] = p[best], p[j]
			cand[j], cand[best] = cand[best], cand[j]
		}

		// 3.4: Reject a fully rank-deficient column instead of dividing by it.
		pivot = cand[j]
		if pivot == ZeroPivot {
			return nil, nil, lupErrorf(opDecompose, fmt.Errorf("zero pivot in column %d: %w", j, matrix.ErrSingular))
		}

		// 3.5: Place the pivot and the unit-lower column below it.
		lu[j][j] = pivot
		for i = j + 1; i < m; i++ {
			lu[i][j] = cand[i] / pivot
		}
	}

	// Stage 4: Wide matrix — trailing upper-trapezoidal columns, no pivoting.
	for j = r; j < n; j++ {
		for i = 0; i < m; i++ {
			sum = matrix.ZeroSum
			for k = 0; k < i; k++ {
				sum += lu[i][k] * lu[k][j]
			}
			lu[i][j] = w[i][j] - sum
		}
	}

	// Stage 5: Materialize the combined factor matrix.
	out, err := matrix.NewFromRows(lu)
	if err != nil {
		return nil, nil, lupErrorf(opDecompose, err)
	}

	return p, out, nil
}

// rowsOf copies the rows of a into private slices: rows[i][j] = a[i][j].
// Complexity: O(m·n) time and memory.
func rowsOf(a matrix.Matrix) ([][]float64, error) {
	m, n := a.Rows(), a.Cols()
	rows := make([][]float64, m)

	var i, j int
	var v float64
	var err error
	for i = 0; i < m; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			rows[i][j] = v
		}
	}

	return rows, nil
}
