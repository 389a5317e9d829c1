// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the element-type constraint and the Matrix container
// itself; constructors live in matrix.go, behavior in the ops files.
package matrix

// Number is the element-type constraint of Matrix: every built-in integer and
// floating-point kind (including named types over them). All members support
// + - * and conversion to and from float64, which Randomize and ScaleFloat rely on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Matrix is a rectangular grid of T stored as a slice of rows.
//   - rows, cols hold the shape.
//   - data[i] is row i; len(data) == rows and len(data[i]) == cols.
//
// The zero value is a ready-to-use 0×0 matrix.
//
// Invariant: the row-length rule above holds after every operation except
// FromRows on ragged input and ResizeRaw, both documented as caller risks.
//
// A Matrix owns its grid outright. Clone and every arithmetic operator return
// independent storage; Row is the only accessor that exposes live storage.
// Concurrent mutation of one Matrix must be synchronized by the caller.
type Matrix[T Number] struct {
	rows, cols int   // shape (>= 0)
	data       [][]T // row slices, each of length cols
}
