// SPDX-License-Identifier: MIT
// Package lsq_test: unit tests for the QR factorization.

package lsq_test

import (
	"testing"

	"github.com/katalvlaran/lvlinear/lsq"
	"github.com/katalvlaran/lvlinear/matrix"
	"github.com/stretchr/testify/require"
)

// qrTol bounds the reconstruction residual ‖Q·R − A‖ elementwise.
const qrTol = 1e-9

// TestQRReconstruction factors a tall full-rank matrix and asserts the two
// defining properties: Q·R reproduces A and Qᵀ·Q is the identity.
func TestQRReconstruction(t *testing.T) {
	a := mustDense(t, 4, 3,
		-1, -1, 1,
		1, 3, 3,
		-1, -1, 5,
		1, 3, 7,
	)

	q, r, err := lsq.QR(a)
	require.NoError(t, err)
	require.Equal(t, 4, q.Rows())
	require.Equal(t, 3, q.Cols()) // full column rank
	require.Equal(t, 3, r.Rows())
	require.Equal(t, 3, r.Cols())

	qr, err := matrix.Mul(q, r)
	require.NoError(t, err)
	requireAllClose(t, qr, a, qrTol) // Q·R ≈ A

	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	requireAllClose(t, qtq, mustDense(t, 3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 1), qrTol)
}

// TestQRUpperTriangular asserts R carries ~0 strictly below the diagonal.
func TestQRUpperTriangular(t *testing.T) {
	a := mustDense(t, 3, 3,
		2, 0, 1,
		1, 3, 0,
		0, 1, 4,
	)

	_, r, err := lsq.QR(a)
	require.NoError(t, err)

	for i := 1; i < r.Rows(); i++ {
		for j := 0; j < i; j++ {
			v, err := r.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, 0.0, v, qrTol, "R(%d,%d) below the diagonal", i, j)
		}
	}
}

// TestQRRankDeficient factors a matrix whose second column doubles the
// first: the deficiency is a valid outcome, reported through the shape of Q,
// and the factorization still reconstructs A (col 2 lies in Q's span).
func TestQRRankDeficient(t *testing.T) {
	a := mustDense(t, 3, 2,
		1, 2,
		2, 4,
		3, 6,
	)

	q, r, err := lsq.QR(a)
	require.NoError(t, err) // deficiency is not an error
	require.Equal(t, 1, q.Cols()) // rank signal: fewer columns than A
	require.Equal(t, 1, r.Rows())
	require.Equal(t, 2, r.Cols())

	qr, err := matrix.Mul(q, r)
	require.NoError(t, err)
	requireAllClose(t, qr, a, qrTol)
}

// TestQRNilInput ensures a nil matrix fails with the sentinel.
func TestQRNilInput(t *testing.T) {
	_, _, err := lsq.QR(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
}
