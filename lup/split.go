// SPDX-License-Identifier: MIT

package lup

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/decomp/matrix"
)

// ErrBadPermutation indicates that an index array is not a bijection on
// {0..m-1} (out-of-range or repeated indices).
var ErrBadPermutation = errors.New("lup: permutation is not a bijection")

// Operation tags for uniform error wrapping.
const (
	opSplit       = "Split"
	opPermMatrix  = "PermutationMatrix"
	opPermute     = "Permute"
	opParityCheck = "validatePermutation"
)

// Split separates a combined factor matrix (as returned by Decompose) into
// unit-lower-triangular L and upper-trapezoidal U.
//
// Shapes: for an m×n combined matrix and r = min(m, n), L is m×r with ones
// forced on its diagonal and U is r×n, so that L·U reproduces the pivoted
// input P·A.
//
// Errors:
//   - matrix.ErrNilMatrix — nil input.
//
// Complexity: O(m·n) time and memory.
func Split(lu matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	// Stage 1: Validate input.
	if err := matrix.ValidateNotNil(lu); err != nil {
		return nil, nil, lupErrorf(opSplit, err)
	}
	m, n := lu.Rows(), lu.Cols()
	r := m // r = min(m, n)
	if n < r {
		r = n
	}

	// Stage 2: Allocate the factor shapes.
	l, err := matrix.NewDense(m, r)
	if err != nil {
		return nil, nil, lupErrorf(opSplit, err)
	}
	u, err := matrix.NewDense(r, n)
	if err != nil {
		return nil, nil, lupErrorf(opSplit, err)
	}

	// Stage 3: Copy the strict lower part into L, force the unit diagonal.
	var i, j int
	var v float64
	for i = 0; i < m; i++ {
		for j = 0; j < r && j < i; j++ { // strictly below the diagonal
			v, err = lu.At(i, j)
			if err != nil {
				return nil, nil, lupErrorf(opSplit, err)
			}
			_ = l.Set(i, j, v)
		}
		if i < r {
			_ = l.Set(i, i, 1.0) // unit diagonal by definition
		}
	}

	// Stage 4: Copy the upper-trapezoidal part into U.
	for i = 0; i < r; i++ {
		for j = i; j < n; j++ { // on/above the diagonal
			v, err = lu.At(i, j)
			if err != nil {
				return nil, nil, lupErrorf(opSplit, err)
			}
			_ = u.Set(i, j, v)
		}
	}

	return l, u, nil
}

// validatePermutation checks that p is a bijection on {0..len(p)-1}.
// Complexity: O(m) time and memory.
func validatePermutation(p []int) error {
	seen := make([]bool, len(p))
	for i, idx := range p {
		// Reject out-of-range targets.
		if idx < 0 || idx >= len(p) {
			return lupErrorf(opParityCheck, fmt.Errorf("index %d at position %d: %w", idx, i, ErrBadPermutation))
		}
		// Reject repeated targets.
		if seen[idx] {
			return lupErrorf(opParityCheck, fmt.Errorf("index %d repeated: %w", idx, ErrBadPermutation))
		}
		seen[idx] = true
	}

	return nil
}

// PermutationMatrix expands a permutation index array into its dense 0/1
// matrix form: row i holds a single 1 in column p[i], so that multiplying
// P·A reorders the rows of A exactly like Permute(p, A). The index array
// remains the canonical representation; this is a convenience view.
//
// Errors:
//   - ErrBadPermutation — p is not a bijection on {0..m-1}.
//
// Complexity: O(m²) time and memory.
func PermutationMatrix(p []int) (matrix.Matrix, error) {
	// Stage 1: Validate bijectivity.
	if err := validatePermutation(p); err != nil {
		return nil, lupErrorf(opPermMatrix, err)
	}

	// Stage 2: Scatter the ones.
	m := len(p)
	out, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, lupErrorf(opPermMatrix, err)
	}
	for i := 0; i < m; i++ {
		_ = out.Set(i, p[i], 1.0)
	}

	return out, nil
}

// Permute applies the permutation p to the rows of a, returning a fresh
// matrix whose row i is row p[i] of a — the P·A product without building
// the dense permutation matrix.
//
// Errors:
//   - matrix.ErrNilMatrix          — nil input.
//   - ErrBadPermutation            — p is not a bijection.
//   - matrix.ErrDimensionMismatch  — len(p) != a.Rows().
//
// Complexity: O(m·n) time and memory.
func Permute(p []int, a matrix.Matrix) (matrix.Matrix, error) {
	// Stage 1: Validate operands.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, lupErrorf(opPermute, err)
	}
	if len(p) != a.Rows() {
		return nil, lupErrorf(opPermute, matrix.ErrDimensionMismatch)
	}
	if err := validatePermutation(p); err != nil {
		return nil, lupErrorf(opPermute, err)
	}

	// Stage 2: Gather rows in permuted order.
	m, n := a.Rows(), a.Cols()
	out, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, lupErrorf(opPermute, err)
	}
	var i, j int
	var v float64
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			v, err = a.At(p[i], j)
			if err != nil {
				return nil, lupErrorf(opPermute, err)
			}
			_ = out.Set(i, j, v)
		}
	}

	return out, nil
}

// parity returns the sign (+1 or −1) of the permutation p, computed from
// its cycle decomposition. Assumes p is a valid bijection.
// Complexity: O(m) time and memory.
func parity(p []int) float64 {
	visited := make([]bool, len(p))
	sign := 1.0
	for i := range p {
		if visited[i] {
			continue
		}
		// Walk the cycle containing i; a cycle of length L contributes
		// (−1)^(L−1) transpositions.
		length := 0
		for j := i; !visited[j]; j = p[j] {
			visited[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}
