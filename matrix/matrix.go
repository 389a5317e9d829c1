// SPDX-License-Identifier: MIT

// Package matrix - construction & safe accessors.
//
// Purpose:
//   - Provide the three ways to obtain a Matrix: empty, zero-filled by shape,
//     and copied from literal rows.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead
//     of panicking.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; FromRows: O(r*c) copy; At/Set/Row: O(1); Clone: O(r*c).
package matrix

import "fmt"

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// Empty returns a 0×0 matrix. Equivalent to new(Matrix[T]).
// Complexity: O(1).
func Empty[T Number]() *Matrix[T] {
	return &Matrix[T]{}
}

// New creates a rows×cols matrix with every element set to the zero value of T.
// Zero is legal in either dimension; negative dimensions, or a shape whose
// element count overflows int, fail with ErrInvalidDimensions.
// Complexity: O(rows*cols) time and memory.
func New[T Number](rows, cols int) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: allocGrid[T](rows, cols)}, nil
}

// FromRows builds a matrix from literal rows. The row count is len(rows) and
// the column count is the length of the first row (0 when rows is empty).
// Every row is copied; the caller's slices are never aliased.
//
// The input must be rectangular. Ragged input is NOT checked: the result then
// holds rows whose lengths differ from Cols(), and later operations may fail or
// misbehave. Use FromRowsChecked for untrusted input.
// Complexity: O(rows*cols).
func FromRows[T Number](rows [][]T) *Matrix[T] {
	m := &Matrix[T]{rows: len(rows)}
	if len(rows) == 0 {
		return m
	}
	m.cols = len(rows[0])
	m.data = make([][]T, len(rows))
	for i, src := range rows {
		m.data[i] = append(make([]T, 0, len(src)), src...)
	}

	return m
}

// FromRowsChecked is FromRows with a rectangularity check: it returns ErrRagged
// when any row length differs from the first.
// Complexity: O(rows*cols).
func FromRowsChecked[T Number](rows [][]T) (*Matrix[T], error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	return FromRows(rows), nil
}

// allocGrid allocates a zeroed rows×cols grid backed by one contiguous buffer.
// Rows are capped at cols so appending to one row never spills into the next.
func allocGrid[T Number](rows, cols int) [][]T {
	if rows == 0 {
		return nil
	}
	buf := make([]T, rows*cols)
	grid := make([][]T, rows)
	for i := range grid {
		grid[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return grid
}

// Read accessors (Size, Rows, Cols, Len, At, Row, ToRows, String, WriteTo) accept a
// nil receiver and treat it as 0×0; At/Set/Row report ErrNilMatrix.
// Mutators (Fill, Randomize, Map, Apply, ResizeRaw, Reshape, Transpose, ...)
// on a nil receiver are a caller error and panic.

// Size returns the shape as (rows, cols). No side effects.
func (m *Matrix[T]) Size() (rows, cols int) {
	if m == nil {
		return 0, 0
	}

	return m.rows, m.cols
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int {
	r, _ := m.Size()
	return r
}

// Cols returns the column count.
func (m *Matrix[T]) Cols() int {
	_, c := m.Size()
	return c
}

// Len returns the number of elements, rows*cols.
func (m *Matrix[T]) Len() int {
	r, c := m.Size()
	return r * c
}

// inBounds reports whether (row, col) addresses an existing element.
// Assumes m is not nil.
func (m *Matrix[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols && col < len(m.data[row])
}

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if m == nil {
		var zero T
		return zero, indexErrorf(opAt, row, col, ErrNilMatrix)
	}
	if !m.inBounds(row, col) {
		var zero T
		return zero, indexErrorf(opAt, row, col, ErrOutOfRange)
	}

	return m.data[row][col], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if m == nil {
		return indexErrorf(opSet, row, col, ErrNilMatrix)
	}
	if !m.inBounds(row, col) {
		return indexErrorf(opSet, row, col, ErrOutOfRange)
	}
	m.data[row][col] = v

	return nil
}

// Row returns row i as a live slice: writes through it change the matrix.
// Callers must not append to it. Out-of-range i yields ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if m == nil {
		return nil, indexErrorf(opRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.rows {
		return nil, indexErrorf(opRow, i, 0, ErrOutOfRange)
	}

	return m.data[i], nil
}

// ToRows returns a deep copy of the grid as nested slices (nil for a nil m).
// Complexity: O(rows*cols).
func (m *Matrix[T]) ToRows() [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, m.rows)
	for i, row := range m.data {
		out[i] = append(make([]T, 0, len(row)), row...)
	}

	return out
}

// Clone returns a deep copy. Row lengths are preserved as-is, so a ragged
// matrix clones to an equally ragged one.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := &Matrix[T]{rows: m.rows, cols: m.cols}
	if m.rows > 0 {
		c.data = m.ToRows()
	}

	return c
}

// Equal reports whether m and b have the same shape and identical elements.
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Equal(b *Matrix[T]) bool {
	if m == nil || b == nil {
		return m == b
	}
	if ValidateSameShape(m, b) != nil {
		return false
	}
	for i := range m.data {
		if len(m.data[i]) != len(b.data[i]) {
			return false
		}
		for j, v := range m.data[i] {
			if b.data[i][j] != v {
				return false
			}
		}
	}

	return true
}

// ApproxEqual is Equal with an absolute tolerance |a-b| <= eps, compared in
// float64. eps defaults to DefaultEpsilon; override with WithEpsilon.
// Complexity: O(rows*cols).
func (m *Matrix[T]) ApproxEqual(b *Matrix[T], opts ...Option) bool {
	if m == nil || b == nil {
		return m == b
	}
	if ValidateSameShape(m, b) != nil {
		return false
	}
	eps := gatherOptions(opts...).eps
	for i := range m.data {
		if len(m.data[i]) != len(b.data[i]) {
			return false
		}
		for j, v := range m.data[i] {
			if !closeEnough(float64(v), float64(b.data[i][j]), eps) {
				return false
			}
		}
	}

	return true
}

// closeEnough treats equal values (including equal infinities) as close.
func closeEnough(a, b, eps float64) bool {
	if a == b {
		return true
	}
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= eps
}
