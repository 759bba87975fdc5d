// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the few boundary checks this package makes.
//   - Return plain sentinel errors wrapped with the constructor tag.
//
// Note:
//   - Arithmetic kernels never validate: every shape is fixed by the type.

package matrix

import "fmt"

// validateSliceLen ensures s holds at least want elements.
// Returns ErrShortSlice wrapped as "<tag>: need N elements, got M: ...".
func validateSliceLen(tag string, s []float32, want int) error {
	if len(s) < want {
		return fmt.Errorf("%s: need %d elements, got %d: %w", tag, want, len(s), ErrShortSlice)
	}

	return nil
}
