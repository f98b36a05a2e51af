// SPDX-License-Identifier: MIT
// Package matrix_test: benchmarks for the hot kernels, fast path vs the
// interface fallback.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/decomp/matrix"
)

// fillSequential seeds an n×n Dense with small deterministic values.
func fillSequential(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, float64((i*n+j)%7)-3); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// benchmarkMul times A·A for an n×n operand, optionally hiding the concrete
// type to force the interface fallback.
func benchmarkMul(b *testing.B, n int, fallback bool) {
	a := fillSequential(b, n)
	var left matrix.Matrix = a
	if fallback {
		left = hide{a} // mask *Dense to de-opt the fast path
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(left, a); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkMul_Dense64 benchmarks the flat fast path on 64×64 operands.
func BenchmarkMul_Dense64(b *testing.B) { benchmarkMul(b, 64, false) }

// BenchmarkMul_Fallback64 benchmarks the interface path on 64×64 operands.
func BenchmarkMul_Fallback64(b *testing.B) { benchmarkMul(b, 64, true) }

// BenchmarkMul_Dense128 benchmarks the flat fast path on 128×128 operands.
func BenchmarkMul_Dense128(b *testing.B) { benchmarkMul(b, 128, false) }

// BenchmarkTranspose_Dense128 benchmarks Transpose on a 128×128 operand.
func BenchmarkTranspose_Dense128(b *testing.B) {
	a := fillSequential(b, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Transpose(a); err != nil {
			b.Fatalf("Transpose failed: %v", err)
		}
	}
}
