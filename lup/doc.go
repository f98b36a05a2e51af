// Package lup computes the row-pivoted LU decomposition P·A = L·U of a
// dense matrix via Crout's method with partial pivoting, plus the direct
// solvers that naturally ride on the factors.
//
// ✨ Key features:
//
//   - Rectangular-friendly: any m×n input; the factors come back
//     trapezoidal when m ≠ n (wide matrices get their trailing columns
//     eliminated without further pivoting).
//   - Partial pivoting by largest available pivot magnitude, ties broken
//     by first occurrence — deterministic for a given input.
//   - Compact permutation: Decompose returns an index array p (the
//     canonical form); PermutationMatrix expands it to a dense 0/1 view
//     on demand, and Permute applies it to any matrix.
//   - Combined storage: one m×n matrix carries unit-lower L below the
//     diagonal and upper-trapezoidal U on/above it; Split separates them.
//   - Solve / Det / Inverse for square systems via forward and backward
//     substitution on the factors.
//
// A zero pivot (a fully rank-deficient column after elimination) is
// surfaced as matrix.ErrSingular rather than silently dividing into ±Inf.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/decomp/lup"
//
//	p, lu, err := lup.Decompose(A)   // P·A = L·U
//	L, U, err := lup.Split(lu)       // separate factors
//	x, err := lup.Solve(A, b)        // A·x = b, square A
//
// All entry points are pure and reentrant; the input matrix is copied, not
// mutated.
//
// Complexity: O(m·n·min(m,n)) time, O(m·n) memory.
package lup
