// SPDX-License-Identifier: MIT
// Package lsq: sentinel error set.
// All user-triggered failures return these sentinels (or wrapped sentinels
// from the matrix package); tests match them via errors.Is.

package lsq

import "errors"

var (
	// ErrNonSquare signals that BackSubstitution received a non-square R.
	// The triangular solve is only defined for square systems; failing fast
	// here is the strict reading of an otherwise undefined contract.
	ErrNonSquare = errors.New("lsq: triangular matrix is not square")

	// ErrNotColumnVector signals that a right-hand side b was not a column
	// vector with one row per equation.
	ErrNotColumnVector = errors.New("lsq: right-hand side is not a matching column vector")
)
