// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private rendering and validation helpers.
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY, without widening the API.
//
// Provided Surface:
//   - ExportedRenderRows: the shared row renderer.
//   - ExportedValidateSliceLen: the slice-length guard used by *FromSlice.
//   - GatherFormatOptions_TestOnly: resolved options snapshot.

var (
	// ExportedRenderRows exposes renderRows for white-box tests.
	ExportedRenderRows = renderRows
	// ExportedValidateSliceLen exposes validateSliceLen for white-box tests.
	ExportedValidateSliceLen = validateSliceLen
)

// GatherFormatOptions_TestOnly resolves opts exactly like the render paths do.
func GatherFormatOptions_TestOnly(opts ...FormatOption) FormatOptions {
	return gatherFormatOptions(opts...)
}
