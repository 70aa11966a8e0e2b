// SPDX-License-Identifier: MIT
// Package lsq: triangular solve and the least-squares facade.

package lsq

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/matrix"
)

// BackSubstitution solves R·x = b for upper-triangular square R, resolving
// unknowns from the last equation to the first.
//
// Implementation:
//   - Stage 1: Validate R non-nil and square (ErrNonSquare), b a column
//     vector with one row per equation (ErrNotColumnVector).
//   - Stage 2: For i from n-1 down to 0:
//     x[i] = (b[i] - Σ_{j>i} R[i,j]·x[j]) / R[i,i].
//     *Dense operands use flat row-major indexing; others go through At.
//
// Behavior highlights:
//   - The diagonal divisors are deliberately UNCHECKED: a zero or near-zero
//     R[i,i] divides through to ±Inf/NaN in the result instead of raising an
//     error. This non-finite propagation is the documented contract of the
//     solve pipeline, not an oversight — callers who need a guarantee must
//     verify column independence upstream (see Solve).
//   - Entries of R below the diagonal are never read, so a dense R with
//     garbage under the diagonal still solves correctly.
//
// Inputs:
//   - r: upper-triangular n × n matrix.
//   - b: n × 1 right-hand side.
//
// Returns:
//   - *matrix.Dense: n × 1 solution vector x.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquare, ErrNotColumnVector.
//
// Determinism:
//   - Fixed i↓, j↑ loop orders; stable output for identical inputs.
//
// Complexity:
//   - Time O(n²), Space O(n).
func BackSubstitution(r, b matrix.Matrix) (*matrix.Dense, error) {
	// Validate the triangular operand.
	if err := matrix.ValidateNotNil(r); err != nil {
		return nil, lsqErrorf(opBackSub, err)
	}
	if r.Rows() != r.Cols() {
		return nil, lsqErrorf(opBackSub,
			fmt.Errorf("%dx%d: %w", r.Rows(), r.Cols(), ErrNonSquare))
	}
	// Validate the right-hand side: n×1, one row per equation.
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, lsqErrorf(opBackSub, err)
	}
	n := r.Rows()
	if b.Cols() != 1 || b.Rows() != n {
		return nil, lsqErrorf(opBackSub,
			fmt.Errorf("%dx%d against %d equations: %w", b.Rows(), b.Cols(), n, ErrNotColumnVector))
	}

	var (
		i, j int                  // loop iterators
		sum  float64              // Σ_{j>i} R[i,j]·x[j]
		bi   float64              // b[i]
		rij  float64              // R[i,j] temporary
		x    = make([]float64, n) // solution, filled back to front
		err  error
	)

	// Fast-path: both operands *Dense → flat row-major reads.
	dr, okR := r.(*matrix.Dense)
	db, okB := b.(*matrix.Dense)
	if okR && okB {
		for i = n - 1; i >= 0; i-- {
			sum = matrix.ZeroSum
			for j = i + 1; j < n; j++ {
				rij, _ = dr.AtFlat(i*n + j) // in-range after shape validation
				sum += rij * x[j]
			}
			bi, _ = db.AtFlat(i)
			rij, _ = dr.AtFlat(i*n + i)
			x[i] = (bi - sum) / rij // divisor deliberately unchecked
		}

		return matrix.NewColumnVector(n, x...)
	}

	// Fallback: generic interface reads.
	for i = n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		for j = i + 1; j < n; j++ {
			rij, err = r.At(i, j)
			if err != nil {
				return nil, lsqErrorf(opBackSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += rij * x[j]
		}
		bi, err = b.At(i, 0)
		if err != nil {
			return nil, lsqErrorf(opBackSub, fmt.Errorf("At(%d,0): %w", i, err))
		}
		rij, err = r.At(i, i)
		if err != nil {
			return nil, lsqErrorf(opBackSub, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		x[i] = (bi - sum) / rij // divisor deliberately unchecked
	}

	return matrix.NewColumnVector(n, x...)
}

// Solve computes the least-squares solution of A·x = b — exact when A is
// square and full-rank, the residual-minimizing x when A is tall.
//
// Implementation:
//   - Stage 1: (Q, R) := QR(A).
//   - Stage 2: return BackSubstitution(R, Qᵀ·b).
//
// Precondition (documented, caller-owned): A.Rows() ≥ A.Cols() with linearly
// independent columns, so R is square with nonzero diagonal. When
// independence is uncertain, verify via QR's rank signal
// (Q.Cols() == A.Cols()) before trusting the result. A rank-deficient A
// yields a rectangular R, which surfaces loudly as ErrNonSquare from the
// triangular solve; a merely ill-conditioned A propagates ±Inf/NaN per the
// BackSubstitution contract.
//
// Inputs:
//   - a:    coefficient matrix (r × c, r ≥ c).
//   - b:    right-hand side (r × 1).
//   - opts: numeric policy forwarded to QR (WithEpsilon).
//
// Returns:
//   - *matrix.Dense: c × 1 solution vector.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (b rows ≠ A rows),
//     ErrNonSquare (rank-deficient A), ErrNotColumnVector.
//
// Complexity:
//   - Time O(c²·r), Space O(r·c).
func Solve(a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	// Factor A; validation happens inside QR.
	q, r, err := QR(a, opts...)
	if err != nil {
		return nil, lsqErrorf(opSolve, err)
	}

	// Project the right-hand side onto the orthonormal basis: Qᵀ·b.
	qt, err := matrix.Transpose(q)
	if err != nil {
		return nil, lsqErrorf(opSolve, err)
	}
	qtb, err := matrix.Mul(qt, b)
	if err != nil {
		return nil, lsqErrorf(opSolve, err)
	}

	// Triangular solve finishes the job.
	x, err := BackSubstitution(r, qtb)
	if err != nil {
		return nil, lsqErrorf(opSolve, err)
	}

	return x, nil
}
