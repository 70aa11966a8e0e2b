// SPDX-License-Identifier: MIT
// Package matrix: row/column extraction and row-wise accumulation.

package matrix

import "fmt"

// Row returns the i-th row of m as a fresh 1×cols matrix.
// Requires 0 ≤ i < Rows(); the ErrOutOfRange wrap reports the attempted
// index and the valid bound, for every shape including 0-sized matrices.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); bounds-check i.
//   - Stage 2: Copy the row; *Dense slices its backing storage directly,
//     the fallback reads via At in fixed j order.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(c).
func Row(m Matrix, i int) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	// Validate the row index against the valid bound.
	if rows := m.Rows(); i < 0 || i >= rows {
		return nil, matrixErrorf(opRow,
			fmt.Errorf("row %d outside [0,%d): %w", i, rows, ErrOutOfRange))
	}

	cols := m.Cols()
	res, err := NewDense(1, cols)
	if err != nil {
		return nil, matrixErrorf(opRow, err)
	}

	// Fast-path: copy the contiguous row slice.
	if dm, ok := m.(*Dense); ok {
		copy(res.data, dm.data[i*cols:(i+1)*cols])

		return res, nil
	}

	// Fallback: generic At loop.
	var j int
	var v float64
	for j = 0; j < cols; j++ {
		v, err = m.At(i, j)
		if err != nil {
			return nil, matrixErrorf(opRow, fmt.Errorf("At(%d,%d): %w", i, j, err))
		}
		res.data[j] = v
	}

	return res, nil
}

// Column returns the j-th column of m as a fresh rows×1 matrix — the
// library's canonical vector shape. Requires 0 ≤ j < Cols(); the
// ErrOutOfRange wrap reports the attempted index and the valid bound.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(r), Space O(r).
func Column(m Matrix, j int) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	// Validate the column index against the valid bound.
	if cols := m.Cols(); j < 0 || j >= cols {
		return nil, matrixErrorf(opColumn,
			fmt.Errorf("col %d outside [0,%d): %w", j, cols, ErrOutOfRange))
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, 1)
	if err != nil {
		return nil, matrixErrorf(opColumn, err)
	}

	// Fast-path: strided reads from the backing slice.
	var i int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			res.data[i] = dm.data[i*cols+j]
		}

		return res, nil
	}

	// Fallback: generic At loop.
	var v float64
	for i = 0; i < rows; i++ {
		v, err = m.At(i, j)
		if err != nil {
			return nil, matrixErrorf(opColumn, fmt.Errorf("At(%d,%d): %w", i, j, err))
		}
		res.data[i] = v
	}

	return res, nil
}

// AppendRow returns a fresh matrix with Rows()+1 rows: m's data followed by
// r's data. The column count is taken from m.Cols() when nonzero, otherwise
// inferred from r's total element count — this lets NewEmpty() grow
// incrementally, with the first appended row fixing the width.
//
// Width policy: once the width is fixed, a mismatched append fails loudly
// with ErrDimensionMismatch instead of silently concatenating malformed
// data, so the len(data)==rows*cols invariant can never be violated.
// RowBuilder wraps the same policy in a dedicated accumulator type.
//
// Implementation:
//   - Stage 1: Validate both operands non-nil; resolve the target width;
//     reject r when its element count disagrees with a fixed width.
//   - Stage 2: Concatenate m's elements and r's elements into fresh storage
//     (row-major order of r is preserved whether r is a row or a column).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func AppendRow(m, r Matrix) (*Dense, error) {
	// Validate both operands.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAppendRow, err)
	}
	if err := ValidateNotNil(r); err != nil {
		return nil, matrixErrorf(opAppendRow, err)
	}

	// Resolve the target width: existing width wins, first row infers it.
	rLen := r.Rows() * r.Cols() // appended element count
	cols := m.Cols()
	if cols == 0 {
		cols = rLen // first insert fixes the column count
	} else if rLen != cols {
		return nil, matrixErrorf(opAppendRow,
			fmt.Errorf("row of %d elements into width %d: %w", rLen, cols, ErrDimensionMismatch))
	}

	// Allocate the grown matrix and concatenate.
	rows := m.Rows()
	res, err := NewDense(rows+1, cols)
	if err != nil {
		return nil, matrixErrorf(opAppendRow, err)
	}

	// Copy m's elements (fast for *Dense, generic otherwise).
	if dm, ok := m.(*Dense); ok {
		copy(res.data, dm.data)
	} else {
		var i, j int
		var v float64
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opAppendRow, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				res.data[i*cols+j] = v
			}
		}
	}

	// Copy r's elements after m's, in r's own row-major order.
	base := rows * cols
	if dr, ok := r.(*Dense); ok {
		copy(res.data[base:], dr.data)
	} else {
		var idx int
		var v float64
		for idx = 0; idx < rLen; idx++ {
			v, err = r.At(idx/r.Cols(), idx%r.Cols())
			if err != nil {
				return nil, matrixErrorf(opAppendRow, fmt.Errorf("r offset %d: %w", idx, err))
			}
			res.data[base+idx] = v
		}
	}

	return res, nil
}
