// Package lsq_test provides benchmarks for the decomposition pipeline,
// using deterministic random fill and diagonal shifts to keep inputs
// full-rank.
package lsq_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlinear/lsq"
	"github.com/katalvlaran/lvlinear/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
)

// fillDenseRand fills m with deterministic pseudo-random values in [-1, 1).
func fillDenseRand(b *testing.B, m *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// shiftDiagonal adds n+1 to every diagonal entry, pushing the matrix away
// from rank deficiency so the full pipeline runs to completion.
func shiftDiagonal(b *testing.B, m *matrix.Dense) {
	b.Helper()
	n := m.Rows()
	if m.Cols() < n {
		n = m.Cols()
	}
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			b.Fatal(err)
		}
		if err = m.Set(i, i, v+float64(n)+1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGramSchmidt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 303)
			shiftDiagonal(b, A)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Q, err := lsq.GramSchmidt(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = Q
			}
		})
	}
}

func BenchmarkQR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 404)
			shiftDiagonal(b, A)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Q, R, err := lsq.QR(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM, _ = Q, R
			}
		})
	}
}

func BenchmarkBackSubstitution(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			R := mustDense(b, n, n)
			fillDenseRand(b, R, 505)
			shiftDiagonal(b, R)
			rhs := mustDense(b, n, 1)
			fillDenseRand(b, rhs, 606)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := lsq.BackSubstitution(R, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = x
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, rows := range []int{32, 64, 128} {
		cols := rows / 2 // tall systems, the typical least-squares shape
		b.Run(fmt.Sprintf("r=%d,c=%d", rows, cols), func(b *testing.B) {
			A := mustDense(b, rows, cols)
			fillDenseRand(b, A, 707)
			shiftDiagonal(b, A)
			rhs := mustDense(b, rows, 1)
			fillDenseRand(b, rhs, 808)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := lsq.Solve(A, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = x
			}
		})
	}
}
