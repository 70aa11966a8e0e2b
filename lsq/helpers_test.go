// SPDX-License-Identifier: MIT
// Package lsq_test: shared helpers for the decomposition and solve tests.

package lsq_test

import (
	"testing"

	"github.com/katalvlaran/lvlinear/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks the concrete *Dense type behind the bare interface so kernels
// take their generic At/Set fallback paths.
type hide struct{ matrix.Matrix }

// mustDense builds a rows×cols Dense from row-major data, failing the test
// on any constructor error. Zero data yields a zero-filled matrix.
func mustDense(t testing.TB, rows, cols int, data ...float64) *matrix.Dense {
	t.Helper()
	if len(data) == 0 {
		m, err := matrix.NewDense(rows, cols)
		require.NoError(t, err)

		return m
	}
	m, err := matrix.NewDenseData(rows, cols, data)
	require.NoError(t, err)

	return m
}

// requireAllClose asserts a and b share a shape and agree elementwise
// within tol.
func requireAllClose(t testing.TB, a, b matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			require.NoError(t, err)
			bv, err := b.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, av, bv, tol, "element (%d,%d)", i, j)
		}
	}
}
