// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operators minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap them uniformly with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix pointer is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures rows and cols are non-negative and that rows*cols
// fits in an int.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return validatorErrorf("ValidateShape: overflow", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions. A mismatch in
// EITHER dimension is rejected.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRectangular ensures every row has the length of the first one.
// An empty input is rectangular.
// Complexity: O(rows).
func ValidateRectangular[T Number](rows [][]T) error {
	if len(rows) == 0 {
		return nil
	}
	want := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != want {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrRagged)
		}
	}

	return nil
}
