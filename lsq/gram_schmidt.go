// SPDX-License-Identifier: MIT
// Package lsq: classical Gram–Schmidt orthogonalization with
// linear-dependency detection.

package lsq

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opGramSchmidt = "GramSchmidt"
	opQR          = "QR"
	opBackSub     = "BackSubstitution"
	opSolve       = "Solve"
)

// lsqErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match the sentinel. Use only when err != nil.
// Complexity: O(1).
func lsqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// GramSchmidt orthonormalizes the ROWS of m (each row is one vector in
// R^cols) via classical Gram–Schmidt, terminating early when a row proves
// linearly dependent on the rows accepted before it.
//
// Implementation:
//   - Stage 1: Validate m non-nil; resolve eps (DefaultEpsilon or WithEpsilon).
//   - Stage 2: For each row a_i in order: start from q := a_i, subtract the
//     projection Dot(q_j, a_i)·q_j for every already-accepted q_j in
//     insertion order, checking ‖q‖ after each subtraction. A residual with
//     ‖q‖ ≤ eps terminates the WHOLE procedure, returning the rows accepted
//     so far. Otherwise q is normalized and appended through a strict
//     RowBuilder.
//
// Behavior highlights:
//   - CLASSICAL variant: every projection coefficient uses the ORIGINAL row
//     a_i, not the running partially-orthogonalized q. This matches the
//     documented algorithm of this package; modified Gram–Schmidt would be
//     numerically stronger but is intentionally NOT substituted.
//   - A zero input row is trivially dependent and terminates immediately.
//
// Inputs:
//   - m:    matrix whose rows are the vector list (r × c).
//   - opts: numeric policy; WithEpsilon tunes dependency detection.
//
// Returns:
//   - *matrix.Dense: Q with Q.Rows() ≤ m.Rows() and Q.Cols() == m.Cols().
//     Q.Rows() == m.Rows() signals full linear independence; fewer rows
//     signal a dependency at the first dependent row (later rows are never
//     examined). Distinct rows of Q have dot ≈ 0 and each row has norm ≈ 1
//     within eps.
//
// Errors:
//   - matrix.ErrNilMatrix (nil input); kernel errors are propagated wrapped.
//
// Determinism:
//   - Fixed row order i, fixed projection order j; stable across runs.
//
// Complexity:
//   - Time O(r²·c), Space O(r·c).
func GramSchmidt(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	// Validate input non-nil.
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, lsqErrorf(opGramSchmidt, err)
	}
	// Resolve numeric policy.
	o := gatherOptions(opts...)

	var (
		accepted []*matrix.Dense      // orthonormal rows, insertion order
		acc      = matrix.NewRowBuilder() // strict accumulator for Q
		i, j     int                  // loop iterators
		ai       *matrix.Dense        // original row i (projection reference)
		q        *matrix.Dense        // running residual for row i
		coef     float64              // projection coefficient Dot(q_j, a_i)
		nrm      float64              // residual norm
		scaled   *matrix.Dense        // coef·q_j temporary
		err      error
	)
	for i = 0; i < m.Rows(); i++ {
		// Extract the original row; it stays fixed during projection.
		ai, err = matrix.Row(m, i)
		if err != nil {
			return nil, lsqErrorf(opGramSchmidt, err)
		}
		// The residual starts as a copy of the row.
		q = ai.Clone().(*matrix.Dense)

		// Orthogonalize against previously accepted rows in insertion order.
		for j = 0; j < len(accepted); j++ {
			// Classical GS: coefficient against the ORIGINAL row a_i.
			coef, err = matrix.Dot(accepted[j], ai)
			if err != nil {
				return nil, lsqErrorf(opGramSchmidt, err)
			}
			scaled, err = matrix.Scale(accepted[j], coef)
			if err != nil {
				return nil, lsqErrorf(opGramSchmidt, err)
			}
			q, err = matrix.Sub(q, scaled)
			if err != nil {
				return nil, lsqErrorf(opGramSchmidt, err)
			}

			// Dependency check after EVERY subtraction: a near-zero residual
			// means row i is a combination of the accepted rows — stop the
			// whole procedure and return what was accumulated so far.
			nrm, err = matrix.Norm(q)
			if err != nil {
				return nil, lsqErrorf(opGramSchmidt, err)
			}
			if nrm <= o.eps {
				return finalizeBasis(acc, m.Cols())
			}
		}

		// A zero row reaches here with no subtractions; it is trivially
		// dependent and must not be normalized (division by ~0).
		nrm, err = matrix.Norm(q)
		if err != nil {
			return nil, lsqErrorf(opGramSchmidt, err)
		}
		if nrm <= o.eps {
			return finalizeBasis(acc, m.Cols())
		}

		// Normalize the residual and accept it as the next basis row.
		q, err = matrix.Scale(q, 1/nrm)
		if err != nil {
			return nil, lsqErrorf(opGramSchmidt, err)
		}
		if err = acc.Append(q); err != nil {
			return nil, lsqErrorf(opGramSchmidt, err)
		}
		accepted = append(accepted, q)
	}

	return finalizeBasis(acc, m.Cols())
}

// finalizeBasis materializes the accumulated orthonormal rows.
// An empty accumulator yields 0×cols (not 0×0) so downstream shape algebra
// (QR on rank-zero input) stays well-defined.
// Complexity: O(r*c).
func finalizeBasis(acc *matrix.RowBuilder, cols int) (*matrix.Dense, error) {
	if acc.Rows() == 0 {
		// Width was never fixed by an append; restore it explicitly.
		return matrix.NewDense(0, cols)
	}

	return acc.Dense(), nil
}
