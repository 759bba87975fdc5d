// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for textual rendering.
// This file defines:
//   - FormatOption / FormatOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal) that applies defaults then setters.
//
// Design goals:
//   - Defaults reproduce the canonical debug layout "| 1.00 2.00 3.00 |".
//   - No global state: every String/Render call resolves its own options, so
//     rendering is safe for concurrent use.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of decimal digits per element.
	DefaultPrecision = 2

	// DefaultBoundary opens and closes every rendered row.
	DefaultBoundary = "|"

	// DefaultSeparator sits between elements of a row.
	DefaultSeparator = " "

	// DefaultRowSeparator sits between rows (no trailing separator).
	DefaultRowSeparator = "\n"

	// DefaultEpsilon is the absolute tolerance suggested for ApproxEqual
	// after a round trip through Inverse/Mul.
	DefaultEpsilon = 1e-6
)

// maxPrecision caps WithPrecision; float32 carries ~9 significant digits and
// anything beyond this only prints noise.
const maxPrecision = 16

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: digits must be in [0, 16]"
)

// ---------- Public option type (functional) ----------

// FormatOption mutates internal rendering options. Safe to apply repeatedly.
type FormatOption func(*FormatOptions)

// FormatOptions stores the effective rendering configuration after applying
// FormatOption setters. Fields are unexported; public entry points accept
// `...FormatOption` and resolve them via gatherFormatOptions.
type FormatOptions struct {
	precision    int    // [0, maxPrecision]; DefaultPrecision
	boundary     string // DefaultBoundary
	separator    string // DefaultSeparator
	rowSeparator string // DefaultRowSeparator
}

// ---------- Constructors (WithX) ----------

// WithPrecision sets the number of decimal digits printed per element.
// Implementation:
//   - Stage 1: validate 0 <= digits <= 16.
//   - Stage 2: return a setter that writes digits into FormatOptions.
//
// Errors:
//   - Panics with a stable message when digits is out of range.
func WithPrecision(digits int) FormatOption {
	if digits < 0 || digits > maxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *FormatOptions) { o.precision = digits }
}

// WithBoundary sets the string that opens and closes each row.
// An empty boundary renders bare rows ("1.00 2.00 3.00").
func WithBoundary(s string) FormatOption {
	return func(o *FormatOptions) { o.boundary = s }
}

// WithSeparator sets the string placed between elements of a row.
func WithSeparator(s string) FormatOption {
	return func(o *FormatOptions) { o.separator = s }
}

// WithRowSeparator sets the string placed between rows.
func WithRowSeparator(s string) FormatOption {
	return func(o *FormatOptions) { o.rowSeparator = s }
}

// NewFormatOptions resolves opts over the defaults. Exposed so callers can
// inspect the effective configuration (Precision, Boundary, ...).
func NewFormatOptions(opts ...FormatOption) FormatOptions {
	return gatherFormatOptions(opts...)
}

// Precision returns the effective digits per element.
func (o FormatOptions) Precision() int { return o.precision }

// Boundary returns the effective row boundary.
func (o FormatOptions) Boundary() string { return o.boundary }

// Separator returns the effective element separator.
func (o FormatOptions) Separator() string { return o.separator }

// RowSeparator returns the effective row separator.
func (o FormatOptions) RowSeparator() string { return o.rowSeparator }

// defaultFormatOptions returns the documented defaults.
func defaultFormatOptions() FormatOptions {
	return FormatOptions{
		precision:    DefaultPrecision,
		boundary:     DefaultBoundary,
		separator:    DefaultSeparator,
		rowSeparator: DefaultRowSeparator,
	}
}

// gatherFormatOptions applies user setters over the defaults in order
// (last-writer-wins). Nil setters are skipped.
func gatherFormatOptions(user ...FormatOption) FormatOptions {
	o := defaultFormatOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o)
	}

	return o
}
