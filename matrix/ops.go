// SPDX-License-Identifier: MIT
// Package matrix: elementwise and product kernels over any Matrix
// implementation — Add, Sub, Scale, Mul and Transpose. All kernels perform
// strict fail-fast validation via the central validators, return clear
// sentinel errors on dimension mismatches, and never mutate their inputs.
//
// Every kernel keeps two paths:
//   - Fast-path: both operands are *Dense — single flat loop over the
//     backing slices with fixed, deterministic order.
//   - Fallback: generic At/Set traversal in fixed i→j order for foreign
//     Matrix implementations.

package matrix

import "fmt"

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for product accumulation and substitution.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opNorm      = "Norm"
	opDot       = "Dot"
	opRow       = "Row"
	opColumn    = "Column"
	opAppendRow = "AppendRow"
	opFromRows  = "FromRows"
	opApply     = "Apply"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match the sentinel. Use only when err != nil.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation, allocation,
// and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix          (from ValidateBinarySameShape when a or b is nil).
//   - ErrDimensionMismatch  (from ValidateBinarySameShape when shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a float avoids an extra branch inside the hot loop.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
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

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
//   - Commutative: Add(a, b) and Add(b, a) produce identical results.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh
// Dense result. Same validation, paths, errors and complexity as Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
// Always succeeds for well-formed input; shape preserved.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: If *Dense, flat multiply; else generic i→j At/Set scaling.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//   - NaN/Inf alpha propagates through; the kernel imposes no numeric policy.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//   - Result element (i,j) = Σ_k A(i,k)·B(k,j) under standard float64 semantics.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - Keep both operands as *Dense to unlock the row-major fast-path.
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// element (j,i) of the result equals m(i,j). The original is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// Notes:
//   - Transpose is a full materialization; Transpose(Transpose(m)) round-trips.
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result
	return res, nil
}
