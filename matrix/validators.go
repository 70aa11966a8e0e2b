// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
//
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVector – Ensures m is non-nil and has a vector shape
// (single row or single column).
//
// Errors: ErrNilMatrix, ErrNotVector.
// Complexity: O(1).
func ValidateVector(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVector", err)
	}
	if !IsVector(m) {
		return validatorErrorf("ValidateVector", ErrNotVector)
	}

	return nil
}

// ValidateVectorPair – Composite for Dot-like kernels:
// Vector(x) → Vector(y) → equal total element count.
//
// Errors: ErrNilMatrix, ErrNotVector, ErrLengthMismatch.
// Complexity: O(1).
func ValidateVectorPair(x, y Matrix) error {
	if err := ValidateVector(x); err != nil {
		return validatorErrorf("ValidateVectorPair", err)
	}
	if err := ValidateVector(y); err != nil {
		return validatorErrorf("ValidateVectorPair", err)
	}
	// Compare total element counts; row vs column orientation is irrelevant.
	if x.Rows()*x.Cols() != y.Rows()*y.Cols() {
		return validatorErrorf("ValidateVectorPair", ErrLengthMismatch)
	}

	return nil
}
