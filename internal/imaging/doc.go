// Package imaging turns images into colors for the conversion engine.
//
// Every sampling function yields model.Rgb values, which callers feed into a
// bridge to see the sampled color in every model.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with (0,0) at the
// top-left corner. For regions, (X1,Y1) is inclusive and (X2,Y2) exclusive.
//
// # Sampling
//
//   - SampleColor reads one pixel.
//   - AverageColor averages a rectangular region.
//   - Palette lists the most common quantized colors.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The sampling functions are
// stateless and may run concurrently on the same image as long as nothing
// mutates it.
package imaging
