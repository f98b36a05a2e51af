// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// vector kernels (Dot, Axpy), element-wise addition and subtraction, matrix
// multiplication (gemm), transpose, scalar scaling, matrix-vector product
// and the Frobenius norm. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Notes:
//   - Kernels use central validators and return sentinels wrapped with an
//     operation tag via matrixErrorf at the facade.
//   - Operands are never mutated except Axpy's documented in-place update.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDot       = "Dot"
	opAxpy      = "Axpy"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opFrobenius = "Frobenius"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot computes the inner product Σ x[i]*y[i] of two equal-length vectors.
// Stage 1 (Validate): lengths must match exactly.
// Stage 2 (Execute): accumulate in fixed 0..n-1 order for determinism.
// Complexity: O(n) time, O(1) memory.
func Dot(x, y []float64) (float64, error) {
	// Validate equal lengths; never truncate the longer operand.
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}

	// Accumulate the products in index order.
	sum := ZeroSum
	for i := 0; i < len(x); i++ {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// Axpy performs the in-place update y := alpha·x + y.
// The mutation of y is the sole purpose of this kernel; x is read-only.
// Stage 1 (Validate): lengths must match exactly.
// Stage 2 (Execute): scaled accumulation in fixed index order.
// Complexity: O(n) time, O(1) memory.
func Axpy(alpha float64, x, y []float64) error {
	// Validate equal lengths before touching y.
	if len(x) != len(y) {
		return matrixErrorf(opAxpy, ErrDimensionMismatch)
	}

	// Accumulate alpha·x into y element by element.
	for i := 0; i < len(x); i++ {
		y[i] += alpha * x[i]
	}

	return nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation,
// allocation, and the *Dense fast path.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// direct element-wise combination on backing slices
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c) time, O(r*c) memory.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c) time, O(r*c) memory.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale computes C = alpha·A and returns a fresh Dense; A is not mutated.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time, O(r*c) memory.
func Scale(alpha float64, a Matrix) (Matrix, error) {
	// Validate the single operand.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: flat loop over *Dense backing storage.
	if da, ok := a.(*Dense); ok {
		for idx := 0; idx < rows*cols; idx++ {
			res.data[idx] = alpha * da.data[idx]
		}

		return res, nil
	}

	// Fallback: fixed i→j order through the interface.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, alpha*v); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Mul computes the matrix product C = A·B (gemm) and returns a fresh Dense.
// Stage 1 (Validate): non-nil operands, a.Cols == b.Rows (fail fast).
// Stage 2 (Execute): *Dense fast path over flat storage with i→k→j loop
// order for cache friendliness; generic At/Set fallback otherwise.
// Element (i,j) = Σ_l A[i,l]·B[l,j].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ).
// Complexity: O(m·k·n) time, O(m·n) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate operands and inner dimensions.
	if err := ValidateBinaryMulCompat(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate the m×n result.
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(m, n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: both *Dense → flat-slice triple loop (i,k,j order).
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var i, l, j int
			var av float64
			for i = 0; i < m; i++ {
				for l = 0; l < k; l++ {
					av = da.data[i*k+l] // A[i,l] reused across the j loop
					if av == NormZero { // skip null contributions
						continue
					}
					for j = 0; j < n; j++ {
						res.data[i*n+j] += av * db.data[l*n+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j→l order.
	var i, j, l int
	var sum, av, bv float64
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			sum = ZeroSum
			for l = 0; l < k; l++ {
				av, err = a.At(i, l)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, l, err))
				}
				bv, err = b.At(l, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", l, j, err))
				}
				sum += av * bv
			}
			if err = res.Set(i, j, sum); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns Aᵀ as a fresh Dense; the result never aliases the input.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time, O(r*c) memory.
func Transpose(a Matrix) (Matrix, error) {
	// Validate the single operand.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate the c×r result.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path: flat index remap over *Dense storage.
	if da, ok := a.(*Dense); ok {
		var i, j int
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = da.data[i*cols+j]
			}
		}

		return res, nil
	}

	// Fallback: fixed i→j order through the interface.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// MatVec computes the matrix-vector product y = A·x as a fresh slice.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != A.Cols()).
// Complexity: O(r*c) time, O(r) memory.
func MatVec(a Matrix, x []float64) ([]float64, error) {
	// Validate the matrix and the vector length.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// Allocate the result vector.
	y := make([]float64, rows)

	// Fast path: row-slice dot products over *Dense storage.
	if da, ok := a.(*Dense); ok {
		var i, j int
		var sum float64
		for i = 0; i < rows; i++ {
			sum = ZeroSum
			for j = 0; j < cols; j++ {
				sum += da.data[i*cols+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var sum, v float64
	var err error
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Frobenius returns the Frobenius norm sqrt(Σ a[i,j]²) of A.
// Handy for residual checks like ‖Q·R − A‖.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time, O(1) memory.
func Frobenius(a Matrix) (float64, error) {
	// Validate the single operand.
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	// Fast path: flat accumulation over *Dense storage.
	if da, ok := a.(*Dense); ok {
		sum := NormZero
		for idx := 0; idx < len(da.data); idx++ {
			sum += da.data[idx] * da.data[idx]
		}

		return math.Sqrt(sum), nil
	}

	// Fallback: fixed i→j order through the interface.
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var v, sum float64
	var err error
	sum = NormZero
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opFrobenius, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * v
		}
	}

	return math.Sqrt(sum), nil
}
