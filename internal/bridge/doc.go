// Package bridge exposes a single color in every supported model at once.
//
// A bridge is built from one pivot value. The pivot is converted to RGB
// (Lab goes through XYZ first) and every other model is derived from that
// RGB value through a convert.Registry. Two variants share the Bridge
// interface:
//
//   - Eager derives every model during construction.
//   - Lazy derives only RGB and grayscale up front and memoizes every other
//     model on first access.
//
// Both variants can be copied from any other Bridge without recomputing
// values that are already known.
package bridge
