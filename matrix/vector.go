// SPDX-License-Identifier: MIT
// Package matrix: vector kernels — Frobenius norm and inner product.

package matrix

import (
	"fmt"
	"math"
)

// Norm computes the Frobenius norm of m: sqrt of the sum of all squared
// elements. Defined for any shape (a 0-element matrix has norm 0), though
// typically invoked on vectors, where it coincides with the Euclidean norm.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: Accumulate squares in fixed order; flat loop on *Dense,
//     i→j At fallback otherwise. Take the square root once at the end.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Norm(m Matrix) (float64, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	acc := NormZero // running sum of squares

	// Fast-path: flat accumulation over the backing slice.
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data { // deterministic 0..n-1
			acc += v * v
		}

		return math.Sqrt(acc), nil
	}

	// Fallback: generic interface loop in fixed i→j order.
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opNorm, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += v * v
		}
	}

	return math.Sqrt(acc), nil
}

// Dot computes the scalar inner product Σ xᵢ·yᵢ of two vectors.
// Both operands must be vectors (single row or single column — orientation
// is irrelevant) with equal total element counts.
//
// Implementation:
//   - Stage 1: ValidateVectorPair(x, y) — vector shapes, equal lengths.
//   - Stage 2: Accumulate products over flat offsets 0..n-1; *Dense operands
//     read their backing slices directly, others go through At with the
//     offset decomposed into (i,j).
//
// Errors:
//   - ErrNilMatrix      (nil operand).
//   - ErrNotVector      (operand is neither a row nor a column vector).
//   - ErrLengthMismatch (element counts differ).
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(x, y Matrix) (float64, error) {
	// Validate vector shapes and matching lengths.
	if err := ValidateVectorPair(x, y); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	n := x.Rows() * x.Cols() // total element count (equal on both sides)
	acc := ZeroSum           // running inner product

	// Fast-path: both *Dense → flat slice walk.
	if dx, okX := x.(*Dense); okX {
		if dy, okY := y.(*Dense); okY {
			for idx := 0; idx < n; idx++ { // deterministic 0..n-1
				acc += dx.data[idx] * dy.data[idx]
			}

			return acc, nil
		}
	}

	// Fallback: decompose the flat offset against each operand's own shape.
	var idx int
	var xv, yv float64
	var err error
	for idx = 0; idx < n; idx++ {
		xv, err = x.At(idx/x.Cols(), idx%x.Cols())
		if err != nil {
			return 0, matrixErrorf(opDot, fmt.Errorf("x offset %d: %w", idx, err))
		}
		yv, err = y.At(idx/y.Cols(), idx%y.Cols())
		if err != nil {
			return 0, matrixErrorf(opDot, fmt.Errorf("y offset %d: %w", idx, err))
		}
		acc += xv * yv
	}

	return acc, nil
}
