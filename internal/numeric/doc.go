// Package numeric holds the small arithmetic helpers every color formula in
// this module shares.
//
// # Rounding
//
// Round implements round-half-up (floor(x + 0.5)). It is NOT banker's
// rounding and it is not math.Round either: math.Round(-2.5) is -3 while
// Round(-2.5) is -2. Every integer-producing conversion depends on this exact
// tie-break, so do not substitute another rounding function.
//
// # Tolerance
//
// Floating-backed color values compare with an absolute tolerance of 1e-6
// (see NearlyEqual). The tolerance absorbs round-trip floating error.
//
// # Text
//
// ExtractFloats and ExtractInts tokenize comma-separated numeric strings. On
// any parse failure they return an empty slice instead of an error; callers
// turn the empty result into a format error through their arity check.
package numeric
