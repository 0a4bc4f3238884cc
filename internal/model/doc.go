// Package model defines the immutable, range-validated value types for every
// supported color model.
//
// # Models
//
//   - Rgb: R, G, B in 0-255
//   - Grayscale: Value in 0-255
//   - Hsb (HSV): H in 0-360, S and B in 0-100
//   - Hsl: H in 0-360, S and L in 0-100
//   - Cmyk: C, M, Y, K in 0-100
//   - YCrCb: Y, Cr, Cb in 0-255
//   - Xyz: CIE-XYZ, unbounded (D65-valid subrange via InD65Range)
//   - Lab: CIE-Lab, L in 0-100, a and b in -128..127
//
// Values are built only through the New*/Parse* factories, which reject
// anything outside the closed range with a *RangeError. Fields are unexported
// and there are no setters: a value is replaced, never edited.
//
// # Text
//
// Every model parses a comma-separated list of numbers in canonical field
// order (Parse* functions) and renders itself with Join(sep). Integer-backed
// models accept fractional tokens and round them half-up. A wrong token count
// or a non-numeric token is a *FormatError; a value outside the range is a
// *RangeError. String returns a tagged display form such as "RGB: (255,0,0)".
//
// Rgb additionally parses hex ("#ff0000", "ff0000", CSS shorthand "f00") and
// CSS/SVG color names ("teal").
//
// # Equality
//
// Integer-backed models are comparable with ==. Floating-backed models
// (Hsb, Hsl, Xyz, Lab) provide Equal, which compares every field with an
// absolute tolerance of 1e-6. go-cmp picks Equal up automatically.
package model
