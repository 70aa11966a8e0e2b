// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for the strict RowBuilder accumulator.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinear/matrix"
	"github.com/stretchr/testify/require"
)

// TestRowBuilderEmpty asserts an untouched builder materializes the 0×0 matrix.
func TestRowBuilderEmpty(t *testing.T) {
	b := matrix.NewRowBuilder()
	require.Equal(t, 0, b.Rows())
	require.Equal(t, 0, b.Cols()) // width not yet fixed

	m := b.Dense()
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

// TestRowBuilderFixesWidth verifies the first append fixes the column count
// and subsequent appends accumulate in order.
func TestRowBuilderFixesWidth(t *testing.T) {
	b := matrix.NewRowBuilder()

	require.NoError(t, b.Append(mustDense(t, 1, 3, 1, 2, 3))) // width becomes 3
	require.Equal(t, 3, b.Cols())
	require.NoError(t, b.Append(mustDense(t, 1, 3, 4, 5, 6)))
	require.Equal(t, 2, b.Rows())

	m := b.Dense()
	require.True(t, matrix.Equal(m, mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)))
}

// TestRowBuilderMismatch ensures a mismatched append fails loudly once the
// width is fixed — the strict replacement for permissive AppendRow inference.
func TestRowBuilderMismatch(t *testing.T) {
	b := matrix.NewRowBuilder()
	require.NoError(t, b.Append(mustDense(t, 1, 3, 1, 2, 3)))

	err := b.Append(mustDense(t, 1, 2, 9, 9))            // width 2 into width 3
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch
	require.Equal(t, 1, b.Rows())                        // failed append left no trace
}

// TestRowBuilderRejectsNonVector ensures only vector shapes can be appended.
func TestRowBuilderRejectsNonVector(t *testing.T) {
	b := matrix.NewRowBuilder()

	err := b.Append(mustDense(t, 2, 2))          // a 2×2 block is not a row
	require.ErrorIs(t, err, matrix.ErrNotVector) // expect ErrNotVector
}

// TestRowBuilderColumnVector accepts the canonical column shape as a row.
func TestRowBuilderColumnVector(t *testing.T) {
	b := matrix.NewRowBuilder()
	col, err := matrix.NewColumnVector(2, 7, 8)
	require.NoError(t, err)

	require.NoError(t, b.Append(col))
	require.Equal(t, 2, b.Cols()) // width taken from the element count
	require.True(t, matrix.Equal(b.Dense(), mustDense(t, 1, 2, 7, 8)))
}

// TestRowBuilderDenseIndependence ensures the materialized matrix shares no
// storage with the builder: later appends must not leak into earlier results.
func TestRowBuilderDenseIndependence(t *testing.T) {
	b := matrix.NewRowBuilder()
	require.NoError(t, b.Append(mustDense(t, 1, 2, 1, 2)))

	snapshot := b.Dense() // materialize after the first row

	require.NoError(t, b.Append(mustDense(t, 1, 2, 3, 4))) // keep growing

	require.Equal(t, 1, snapshot.Rows()) // snapshot unaffected
	require.True(t, matrix.Equal(snapshot, mustDense(t, 1, 2, 1, 2)))
}
