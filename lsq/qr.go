// SPDX-License-Identifier: MIT
// Package lsq: QR decomposition built from the row-oriented orthogonalizer.

package lsq

import "github.com/katalvlaran/lvlinear/matrix"

// QR computes Q and R such that Q·R == A up to floating-point rounding,
// with Q's COLUMNS orthonormal and R upper-triangular.
//
// Implementation:
//   - Stage 1: Validate a non-nil; resolve numeric policy.
//   - Stage 2: Orthogonalize A's columns by transposing, running the
//     row-oriented GramSchmidt, and transposing back:
//     Q := (GramSchmidt(Aᵀ))ᵀ, then R := Qᵀ·A.
//
// Behavior highlights:
//   - Rank deficiency is a VALID outcome, not an error: when A's columns are
//     linearly dependent, Q has fewer columns than A and R is rectangular
//     accordingly (Q.Cols() < A.Cols() is the caller's rank signal).
//
// Inputs:
//   - a:    matrix to factor (r × c).
//   - opts: numeric policy forwarded to GramSchmidt (WithEpsilon).
//
// Returns:
//   - q: r × k matrix with orthonormal columns, k ≤ c.
//   - r: k × c upper-triangular (square iff k == c).
//
// Errors:
//   - matrix.ErrNilMatrix (nil input); kernel errors propagated wrapped.
//
// Complexity:
//   - Time O(c²·r) for the orthogonalization plus O(k·r·c) for R.
func QR(a matrix.Matrix, opts ...Option) (q, r *matrix.Dense, err error) {
	// Validate input non-nil.
	if err = matrix.ValidateNotNil(a); err != nil {
		return nil, nil, lsqErrorf(opQR, err)
	}

	// Orthogonalize A's columns via the row-oriented kernel.
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, nil, lsqErrorf(opQR, err)
	}
	qt, err := GramSchmidt(at, opts...) // rows of qt = orthonormal columns of Q
	if err != nil {
		return nil, nil, lsqErrorf(opQR, err)
	}
	q, err = matrix.Transpose(qt)
	if err != nil {
		return nil, nil, lsqErrorf(opQR, err)
	}

	// R := Qᵀ·A — qt already IS Qᵀ, so reuse it instead of transposing back.
	r, err = matrix.Mul(qt, a)
	if err != nil {
		return nil, nil, lsqErrorf(opQR, err)
	}

	return q, r, nil
}
