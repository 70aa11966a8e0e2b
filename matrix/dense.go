// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order:
// element (i,j) lives at flat offset i*c+j.
//
// The invariant len(data) == r*c holds for every constructed Dense;
// constructors fail rather than produce a violating instance.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols >= 0 (0×0 is the legal empty shape).
// Stage 2 (Prepare): allocate flat backing slice, explicitly zeroed.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions; zero is allowed so accumulators can start empty.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice (zero-initialized by the runtime).
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseData creates an r×c Dense matrix backed by a copy of data.
// Stage 1 (Validate): dims >= 0 and len(data) == rows*cols.
// Stage 2 (Prepare): copy data so the caller's slice is never aliased.
// Stage 3 (Finalize): return new Dense, ErrInvalidDimensions or ErrBadShape.
// The ErrBadShape wrap reports both the expected and the actual length.
// Complexity: O(r*c) time and memory.
func NewDenseData(rows, cols int, data []float64) (*Dense, error) {
	// Validate dimensions first: shape errors take priority over length errors.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Validate the element count against the requested shape.
	if want := rows * cols; len(data) != want {
		return nil, fmt.Errorf("NewDenseData(%d,%d): want %d elements, got %d: %w",
			rows, cols, want, len(data), ErrBadShape)
	}
	// Copy into fresh storage; the result must not alias the input.
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewRowVector creates a 1×n row vector. With no data it is zero-filled;
// otherwise len(data) must equal n (ErrBadShape). Shape sugar over
// NewDense/NewDenseData.
func NewRowVector(n int, data ...float64) (*Dense, error) {
	if len(data) == 0 {
		return NewDense(1, n)
	}

	return NewDenseData(1, n, data)
}

// NewColumnVector creates an n×1 column vector, the library's canonical
// vector shape. With no data it is zero-filled; otherwise len(data) must
// equal n (ErrBadShape).
func NewColumnVector(n int, data ...float64) (*Dense, error) {
	if len(data) == 0 {
		return NewDense(n, 1)
	}

	return NewDenseData(n, 1, data)
}

// NewEmpty returns the canonical 0×0 matrix with empty data.
// It is the identity/start value for incremental row accumulation:
// the first appended row fixes the column count (see AppendRow, RowBuilder).
// Complexity: O(1).
func NewEmpty() *Dense {
	return &Dense{r: 0, c: 0, data: []float64{}}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// The error names which index failed and its valid range.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col,
			fmt.Errorf("row %d outside [0,%d): %w", row, m.r, ErrOutOfRange))
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col,
			fmt.Errorf("col %d outside [0,%d): %w", col, m.c, ErrOutOfRange))
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// AtFlat retrieves the element at flat row-major offset k.
// Requires 0 ≤ k < Rows()*Cols(); the ErrOutOfRange wrap reports the
// attempted offset and the valid range.
// Complexity: O(1).
func (m *Dense) AtFlat(k int) (float64, error) {
	// Validate flat offset against total element count.
	if n := len(m.data); k < 0 || k >= n {
		return 0, fmt.Errorf("Dense.AtFlat(%d): offset outside [0,%d): %w", k, n, ErrOutOfRange)
	}

	return m.data[k], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// The returned Matrix shares no storage with the receiver.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// IsVector reports whether m is a vector: a single row or a single column.
// Row vectors are accepted wherever the library requires a "vector"; the
// canonical shape remains the column vector.
// Complexity: O(1).
func IsVector(m Matrix) bool {
	return m.Rows() == 1 || m.Cols() == 1
}

// Equal reports structural equality: same rows, cols and elementwise data.
// Exact float64 comparison — use a tolerance-based check in numeric tests.
// Stage 1 (Validate): nil operands are only equal to each other.
// Stage 2 (Execute): compare shapes, then elements in fixed i→j order.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	// Nil handling: two nils are equal, a single nil is not.
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Shape comparison first — cheap rejection.
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast path: both *Dense → compare flat slices directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	// Fallback: generic elementwise comparison via At.
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j) // bounds already validated by the shape check
			bv, _ = b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: one bracketed,
// comma-separated row per line. Diagnostics only — never rely on the
// rendered text for equality checks.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')         // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
