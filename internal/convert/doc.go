// Package convert dispatches conversions between color models and holds the
// conversion algorithms themselves.
//
// # Registry
//
// A Registry maps an ordered pair of model kinds (Pair) to a conversion
// function (Func). Register replaces any earlier function for the same pair;
// Convert looks the pair up and applies it, failing with a
// *NotRegisteredError when the pair is absent. Missing pairs are a
// configuration error and are never skipped silently.
//
// NewRegistry returns an empty table, handy in tests. NewDefaultRegistry and
// Default return one seeded with the default algorithm set:
//
//	rgb -> grayscale (luma)   grayscale -> rgb
//	rgb <-> hsb               rgb <-> hsl
//	rgb <-> cmyk              rgb <-> ycrcb
//	rgb <-> xyz               xyz <-> lab
//
// Callers may override any pair, e.g. swap in RgbToGrayscaleAverage, without
// touching the algorithms:
//
//	reg := convert.NewDefaultRegistry()
//	reg.Register(model.KindRgb, model.KindGrayscale, convert.Typed(convert.RgbToGrayscaleAverage))
//	gray, err := convert.To[model.Grayscale](reg, rgb)
//
// # Thread Safety
//
// Registry is safe for concurrent use. Writes take an exclusive lock; lookups
// share a read lock.
//
// # Algorithms
//
// The exported algorithm functions (RgbToHsb, LabToXyz, ...) are pure and
// deterministic. They do not re-validate their input, which the model
// package already guarantees; they do return the *model.RangeError of the
// output constructor should a result fall outside its model's range (for
// example Lab derived from an arbitrary, non-D65 XYZ value).
package convert
