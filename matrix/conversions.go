// SPDX-License-Identifier: MIT
// Package matrix: nested-slice converters and the elementwise map.
// FromRows/ToRows bridge row-major [][]float64 data in and out of Dense
// form with strict fail-fast validation; Apply transforms every element
// through a caller-supplied function without changing shape.

package matrix

import "fmt"

// FromRows builds a Dense matrix from row-major nested slices.
// Every row must have the same length as the first; a ragged input fails
// with ErrRaggedRows naming the offending row. An empty input yields the
// canonical 0×0 matrix.
//
// Implementation:
//   - Stage 1: Scan all rows against the width of rows[0] (fail-fast).
//   - Stage 2: Copy elements into fresh flat storage in row order.
//
// Errors:
//   - ErrRaggedRows (row length differs from the first row's length).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	// Empty input is the empty accumulator identity, not an error.
	if len(rows) == 0 {
		return NewEmpty(), nil
	}

	// Stage 1: validate rectangularity against the first row.
	cols := len(rows[0])
	var i int
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(rows[i]), cols, ErrRaggedRows))
		}
	}

	// Stage 2: copy into flat row-major storage.
	res, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i = range rows {
		copy(res.data[i*cols:(i+1)*cols], rows[i])
	}

	return res, nil
}

// ToRows exports m as row-major nested slices — the inverse of FromRows.
// The result shares no storage with m; m is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)

	// Fast-path: slice the backing storage row by row into copies.
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = make([]float64, cols)
			copy(out[i], dm.data[i*cols:(i+1)*cols])
		}

		return out, nil
	}

	// Fallback: generic At loop.
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToRows", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// Apply returns a fresh matrix with f applied to every element of m;
// the shape is preserved and m is never mutated. Typical use is display
// rounding or clamping before export.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil; also returned for a nil f).
//
// Complexity:
//   - Time O(r*c) plus r*c calls to f, Space O(r*c).
func Apply(m Matrix, f func(float64) float64) (*Dense, error) {
	// Validate input non-nil; a nil transform is the same caller bug.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	if f == nil {
		return nil, matrixErrorf(opApply, fmt.Errorf("nil transform: %w", ErrNilMatrix))
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opApply, err)
	}

	// Fast-path: flat walk over the backing slice.
	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data { // deterministic 0..n-1
			res.data[idx] = f(v)
		}

		return res, nil
	}

	// Fallback: generic At loop in fixed i→j order.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opApply, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = f(v)
		}
	}

	return res, nil
}
