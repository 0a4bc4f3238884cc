package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/colorpad-mcp/internal/model"
)

// SampleColor returns the color of the pixel at (x, y).
//
// Coordinates are 0-based with origin at top-left. The pixel is read
// un-premultiplied, so a translucent pixel reports its own RGB rather than
// a color darkened by its alpha; the alpha itself is discarded.
func SampleColor(img image.Image, x, y int) (model.Rgb, error) {
	bounds := img.Bounds()
	if !image.Pt(x, y).In(bounds) {
		return model.Rgb{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return toRgb(img.At(x, y))
}

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r Region) rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// validate checks that r is non-empty and lies inside bounds.
func (r Region) validate(bounds image.Rectangle) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if !r.rect().In(bounds) {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

// NamedRegion resolves a named area of an image to a Region.
//
// Supported names: top-left, top-right, bottom-left, bottom-right, top-half,
// bottom-half, left-half, right-half, center (the middle 50%) and full.
func NamedRegion(img image.Image, name string) (Region, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	midX, midY := w/2, h/2

	var x1, y1, x2, y2 int
	switch name {
	case "full":
		x1, y1, x2, y2 = 0, 0, w, h
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW, qH := w/4, h/4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return Region{}, fmt.Errorf("unknown region: %s", name)
	}

	o := bounds.Min
	return Region{X1: o.X + x1, Y1: o.Y + y1, X2: o.X + x2, Y2: o.Y + y2}, nil
}

// AverageColor returns the mean color of region.
//
// The region is cropped and box-resampled down to a single pixel, which
// weights every source pixel equally.
func AverageColor(img image.Image, region Region) (model.Rgb, error) {
	if err := region.validate(img.Bounds()); err != nil {
		return model.Rgb{}, err
	}
	cropped := imaging.Crop(img, region.rect())
	pixel := imaging.Resize(cropped, 1, 1, imaging.Box)
	return toRgb(pixel.At(0, 0))
}

// Swatch is one entry of an image palette.
type Swatch struct {
	Color      model.Rgb
	Percentage float64 // share of sampled pixels, 0-100
}

// Palette extracts the count most common colors of an image or region.
//
// Colors are quantized by clearing the low four bits of each channel before
// counting, so #F0F0F0 and #FAFAFA land in the same bucket. Swatches are
// sorted by frequency, most common first; ties are broken by packed RGB
// value so the order is deterministic.
func Palette(img image.Image, count int, region *Region) ([]Swatch, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", count)
	}
	bounds := img.Bounds()
	if region != nil {
		if err := region.validate(bounds); err != nil {
			return nil, err
		}
		bounds = region.rect()
	}

	counts := make(map[model.Rgb]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			q, err := model.NewRgb(int(c.R&0xF0), int(c.G&0xF0), int(c.B&0xF0))
			if err != nil {
				return nil, err
			}
			counts[q]++
			total++
		}
	}

	swatches := make([]Swatch, 0, len(counts))
	for c, n := range counts {
		swatches = append(swatches, Swatch{
			Color:      c,
			Percentage: float64(n) / float64(total) * 100,
		})
	}
	sort.Slice(swatches, func(i, j int) bool {
		if swatches[i].Percentage != swatches[j].Percentage {
			return swatches[i].Percentage > swatches[j].Percentage
		}
		return swatches[i].Color.Int() < swatches[j].Color.Int()
	})

	if len(swatches) > count {
		swatches = swatches[:count]
	}
	return swatches, nil
}

func toRgb(c color.Color) (model.Rgb, error) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return model.NewRgb(int(n.R), int(n.G), int(n.B))
}
