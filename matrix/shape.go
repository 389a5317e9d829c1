// SPDX-License-Identifier: MIT

// Package matrix - shape management.
//
// Three ways to change a shape, chosen intentionally by the caller:
//   - ResizeRaw: independent per-dimension resize; positions are NOT remapped
//     and logical contents may be corrupted when the element count changes.
//   - Reshape: only element-count-preserving shapes; row-major order is kept.
//   - ReshapeRemap: any shape; row-major order is kept, the tail is truncated
//     or zero-padded.
package matrix

// ResizeRaw resizes the row sequence to rows (new rows zero-filled, excess rows
// dropped), then resizes every row independently to cols (truncate or
// zero-extend). Elements keep their (i,j) positions; nothing is remapped, so
// when the element count changes the data is no longer meaningful as the same
// logical matrix. MAY CORRUPT LOGICAL CONTENTS; prefer Reshape or ReshapeRemap.
//
// Errors: ErrInvalidDimensions on negative or overflowing rows/cols (matrix left unchanged).
// Complexity: O(rows*cols) worst case.
func (m *Matrix[T]) ResizeRaw(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return matrixErrorf(opResizeRaw, err)
	}
	if rows <= len(m.data) {
		clear(m.data[rows:]) // drop references to discarded rows
		m.data = m.data[:rows]
	} else {
		m.data = append(m.data, make([][]T, rows-len(m.data))...)
	}
	for i, row := range m.data {
		m.data[i] = resizeRow(row, cols)
	}
	m.rows, m.cols = rows, cols

	return nil
}

// resizeRow truncates or zero-extends row to n elements. Truncation caps the
// capacity so a later extension never resurrects stale values.
func resizeRow[T Number](row []T, n int) []T {
	if n <= len(row) {
		return row[:n:n]
	}
	out := make([]T, n)
	copy(out, row)

	return out
}

// Reshape changes the shape to rows×cols keeping the row-major sequence of
// elements. Only shapes with the same element count are accepted.
//
// Errors: ErrInvalidDimensions on negative or overflowing shapes; ErrBadShape when
// rows*cols != Rows()*Cols(). The matrix is unchanged on error.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Reshape(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return matrixErrorf(opReshape, err)
	}
	if rows*cols != m.rows*m.cols {
		return matrixErrorf(opReshape, ErrBadShape)
	}
	m.remap(rows, cols)

	return nil
}

// ReshapeRemap changes the shape to any rows×cols keeping the row-major
// sequence: element k of the old order becomes element k of the new order.
// Growing zero-pads the tail; shrinking truncates it.
//
// Errors: ErrInvalidDimensions on negative or overflowing shapes (matrix unchanged).
// Complexity: O(rows*cols).
func (m *Matrix[T]) ReshapeRemap(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return matrixErrorf(opRemap, err)
	}
	m.remap(rows, cols)

	return nil
}

// remap rebuilds the grid from the flattened row-major sequence.
func (m *Matrix[T]) remap(rows, cols int) {
	grid := allocGrid[T](rows, cols)
	k, n := 0, rows*cols
	for _, row := range m.data {
		for _, v := range row {
			if k == n {
				break
			}
			grid[k/cols][k%cols] = v
			k++
		}
	}
	m.rows, m.cols, m.data = rows, cols, grid
}
