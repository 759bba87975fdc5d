// SPDX-License-Identifier: MIT

// Package matrix - textual rendering shared by every matrix shape.
//
// Layout (defaults):
//
//	| 1.00 2.00 3.00 |
//	| 0.00 1.00 4.00 |
//	| 5.00 6.00 0.00 |
//
// Rows are joined by "\n" with no trailing newline; WriteTo appends one.
// Each call builds its own buffer, so rendering is safe from any goroutine.

package matrix

import (
	"io"
	"strconv"
	"strings"
)

// renderRows formats a row-major element list with cols entries per row.
// Implementation:
//   - Stage 1: size the builder from the element count and precision.
//   - Stage 2: per row write boundary, separated elements, boundary.
//   - Stage 3: join rows with the row separator.
//
// Elements are widened to float64 before formatting, which is exact and
// matches printf("%.2f") of a float argument.
func renderRows(elems []float32, cols int, o FormatOptions) string {
	var b strings.Builder
	b.Grow(len(elems)*(o.precision+4) + 8*len(elems)/cols)

	var (
		buf  [32]byte
		i, j int
	)
	rows := len(elems) / cols
	for i = 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(o.rowSeparator)
		}
		if o.boundary != "" {
			b.WriteString(o.boundary)
			b.WriteString(o.separator)
		}
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(o.separator)
			}
			b.Write(strconv.AppendFloat(buf[:0], float64(elems[i*cols+j]), 'f', o.precision, 64))
		}
		if o.boundary != "" {
			b.WriteString(o.separator)
			b.WriteString(o.boundary)
		}
	}

	return b.String()
}

// writeRendered writes s plus a trailing newline to w.
// ErrNilWriter covers an untyped nil only; a nil pointer stored in a
// non-nil io.Writer is called as is and fails like any direct call would.
func writeRendered(tag string, w io.Writer, s string) (int64, error) {
	if w == nil {
		return 0, matrixErrorf(tag, ErrNilWriter)
	}
	n, err := io.WriteString(w, s+"\n")
	if err != nil {
		return int64(n), matrixErrorf(tag, err)
	}

	return int64(n), nil
}
