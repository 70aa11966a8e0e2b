// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative. Zero-sized shapes are legal: the 0×0 empty matrix is the
	// identity value for row accumulation (see AppendRow, RowBuilder).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned by data-carrying constructors when the supplied
	// element count disagrees with rows*cols. The wrapped message reports the
	// expected and actual lengths.
	ErrBadShape = errors.New("matrix: data length does not match shape")

	// ErrOutOfRange indicates that an index (row, column or flat offset) is
	// outside valid bounds. Public indexers (At/AtFlat/Set) MUST return this,
	// not panic; the wrapped message names the index and its valid range.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotVector signals that a vector (single row or single column) was
	// required but the argument had neither shape.
	ErrNotVector = errors.New("matrix: operand is not a vector")

	// ErrLengthMismatch signals that two vectors differ in total element
	// count where equal lengths are required (Dot).
	ErrLengthMismatch = errors.New("matrix: vector lengths differ")

	// ErrRaggedRows is returned by FromRows when input rows have unequal
	// lengths; the wrapped message names the offending row.
	ErrRaggedRows = errors.New("matrix: ragged input rows")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
