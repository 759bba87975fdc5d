// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Vector arithmetic never fails (zero-length normalization and zero divisors
// fall back to zero components). The only error is a short input slice.

package vector

import (
	"errors"
	"fmt"
)

// ErrShortSlice is returned by the *FromSlice constructors when the input
// holds fewer elements than the vector has components.
var ErrShortSlice = errors.New("vector: slice shorter than component count")

// validateSliceLen ensures got >= want, wrapping ErrShortSlice with the tag.
func validateSliceLen(tag string, got, want int) error {
	if got < want {
		return fmt.Errorf("%s: need %d components, got %d: %w", tag, want, got, ErrShortSlice)
	}

	return nil
}
