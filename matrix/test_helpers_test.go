// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and builders.
//   - Keep all data finite and well-formed to avoid numeric interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinear/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) kernel paths; wrap
// ONLY the operand you want to de-opt to isolate path differences.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense filled with data (or zeros when data is
// omitted) and fails the test fatally on constructor errors.
func mustDense(t testing.TB, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	if len(data) == 0 {
		m, err := matrix.NewDense(r, c)
		if err != nil {
			t.Fatalf("NewDense(%d,%d): %v", r, c, err)
		}

		return m
	}
	m, err := matrix.NewDenseData(r, c, data)
	if err != nil {
		t.Fatalf("NewDenseData(%d,%d): %v", r, c, err)
	}

	return m
}

// requireAllClose asserts elementwise |a-b| ≤ tol with matching shapes.
func requireAllClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if diff := av - bv; diff > tol || diff < -tol {
				t.Fatalf("element (%d,%d): %v vs %v exceeds tol %v", i, j, av, bv, tol)
			}
		}
	}
}
