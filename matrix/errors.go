// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with a call-site tag and
// tests match them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for option constructors (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Wrap with
// matrixErrorf("Tag", ErrX) at the detection site; callers still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> dimension mismatch.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative or
	// that rows*cols overflows int.
	// Zero is legal in either dimension (empty matrices are first-class).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape is returned by Reshape when the requested shape does not hold
	// exactly the same number of elements.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged is returned by FromRowsChecked when rows have unequal lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilRand indicates that Randomize was called without a generator.
	ErrNilRand = errors.New("matrix: nil random source")
)

// ---------- error context tags ----------

const (
	opNew       = "New"
	opFromRows  = "FromRowsChecked"
	opAt        = "At"
	opSet       = "Set"
	opRow       = "Row"
	opResizeRaw = "ResizeRaw"
	opReshape   = "Reshape"
	opRemap     = "ReshapeRemap"
	opRandomize = "Randomize"
	opNewRandom = "NewRandom"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps an error with the method context and callsite indices.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
