// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Arithmetic in this package never fails: degenerate input (a singular
// Mat3x3) falls back to a zero result. Errors exist only at the boundaries
// where Go can observe a caller mistake that the fixed-size core cannot:
// short input slices and broken writers.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for grep-ability. Call sites
// wrap with fmt.Errorf("Ctx: ...: %w", ErrX); callers match with errors.Is.

var (
	// ErrShortSlice is returned by the *FromSlice constructors when the input
	// holds fewer elements than the matrix shape requires.
	ErrShortSlice = errors.New("matrix: slice shorter than element count")

	// ErrNilWriter is returned by WriteTo when the destination writer is nil.
	ErrNilWriter = errors.New("matrix: nil writer")
)

// matrixErrorf wraps err with a call-site tag ("Mat3x3FromSlice", ...).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
