// SPDX-License-Identifier: MIT
// Package matrix: RowBuilder — strict row-wise accumulation.
// The builder starts empty, fixes its width on the first append and fails
// loudly on every mismatched append afterwards, making the width-inference
// of incremental accumulation explicit instead of implicit.

package matrix

import "fmt"

// RowBuilder grows a matrix one row at a time.
//
// The zero-value-like state produced by NewRowBuilder holds a 0×0
// accumulator; the first Append fixes the column count, every later Append
// must match it. Dense() materializes the accumulated rows.
//
// RowBuilder is not safe for concurrent use; it is a local accumulation
// helper, not a shared container.
type RowBuilder struct {
	cols int       // fixed width; 0 until the first append
	data []float64 // accumulated row-major elements
	rows int       // number of appended rows
}

// NewRowBuilder returns an empty builder (0 rows, width not yet fixed).
// Complexity: O(1).
func NewRowBuilder() *RowBuilder {
	return &RowBuilder{}
}

// Rows returns the number of rows appended so far.
// Complexity: O(1).
func (b *RowBuilder) Rows() int { return b.rows }

// Cols returns the fixed width, or 0 before the first append.
// Complexity: O(1).
func (b *RowBuilder) Cols() int { return b.cols }

// Append adds one row to the accumulator.
// The row may be any vector shape (1×n or n×1); its total element count
// becomes the builder's width on the first append and must equal it on
// every later one.
//
// Implementation:
//   - Stage 1: ValidateVector(r); resolve or check the width.
//   - Stage 2: Append r's elements to the flat accumulator.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector   (shape of r).
//   - ErrDimensionMismatch         (width fixed and r disagrees).
//
// Complexity:
//   - Time O(c) amortized, Space O(c).
func (b *RowBuilder) Append(r Matrix) error {
	// Validate the appended row is a vector.
	if err := ValidateVector(r); err != nil {
		return matrixErrorf("RowBuilder.Append", err)
	}

	// Resolve the width on first insert; enforce it afterwards.
	n := r.Rows() * r.Cols()
	if b.rows == 0 {
		b.cols = n // first appended row fixes the column count
	} else if n != b.cols {
		return matrixErrorf("RowBuilder.Append",
			fmt.Errorf("row of %d elements into width %d: %w", n, b.cols, ErrDimensionMismatch))
	}

	// Append elements in r's row-major order.
	if dr, ok := r.(*Dense); ok {
		b.data = append(b.data, dr.data...)
	} else {
		var idx int
		var v float64
		var err error
		for idx = 0; idx < n; idx++ {
			v, err = r.At(idx/r.Cols(), idx%r.Cols())
			if err != nil {
				return matrixErrorf("RowBuilder.Append", fmt.Errorf("offset %d: %w", idx, err))
			}
			b.data = append(b.data, v)
		}
	}
	b.rows++

	return nil
}

// Dense materializes the accumulated rows as a fresh rows×cols matrix.
// An untouched builder yields the canonical 0×0 empty matrix. The builder
// remains usable afterwards; the returned matrix shares no storage with it.
// Complexity: O(r*c).
func (b *RowBuilder) Dense() *Dense {
	// Copy the accumulator so later appends cannot alias the result.
	buf := make([]float64, len(b.data))
	copy(buf, b.data)

	return &Dense{r: b.rows, c: b.cols, data: buf}
}
