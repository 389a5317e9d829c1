// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = "\t"
	_fmtRowTerm = "\n"
)

// String renders m for diagnostics: every element printed with %v and followed
// by a tab, one line per row. A 0×0 or nil matrix renders as "". Not a parseable
// serialization format.
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}

// WriteTo writes the String form of m to w, implementing io.WriterTo.
// It returns the number of bytes written and the first write error.
// A nil matrix writes nothing.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, nil
	}
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for _, row := range m.data {
		for _, v := range row {
			fmt.Fprint(bw, v)
			bw.WriteString(_fmtSep)
		}
		bw.WriteString(_fmtRowTerm)
	}
	err := bw.Flush()

	return cw.n, err
}

// countingWriter tracks bytes that actually reached the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
