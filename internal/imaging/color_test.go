package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/colorpad-mcp/internal/model"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func mustRgb(t *testing.T, r, g, b int) model.Rgb {
	t.Helper()
	c, err := model.NewRgb(r, g, b)
	if err != nil {
		t.Fatalf("NewRgb: %v", err)
	}
	return c
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	got, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if want := mustRgb(t, 255, 128, 64); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.Color
		wantHex string
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "FF0000"},
		{"pure green", color.RGBA{0, 255, 0, 255}, "00FF00"},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "0000FF"},
		{"white", color.RGBA{255, 255, 255, 255}, "FFFFFF"},
		{"black", color.RGBA{0, 0, 0, 255}, "000000"},
		{"gray", color.RGBA{128, 128, 128, 255}, "808080"},
		{"translucent red", color.NRGBA{255, 0, 0, 128}, "FF0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			got, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if got.Hex(true) != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", got.Hex(true), tt.wantHex)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColor_EdgeCoordinates(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"top-left", 0, 0},
		{"top-right", 99, 0},
		{"bottom-left", 0, 99},
		{"bottom-right", 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err != nil {
				t.Errorf("SampleColor failed for valid edge coordinate (%d,%d): %v", tt.x, tt.y, err)
			}
		})
	}
}

func TestNamedRegion(t *testing.T) {
	img := createPatternImage(100, 80)

	tests := []struct {
		name string
		want Region
	}{
		{"full", Region{0, 0, 100, 80}},
		{"top-left", Region{0, 0, 50, 40}},
		{"top-right", Region{50, 0, 100, 40}},
		{"bottom-left", Region{0, 40, 50, 80}},
		{"bottom-right", Region{50, 40, 100, 80}},
		{"top-half", Region{0, 0, 100, 40}},
		{"bottom-half", Region{0, 40, 100, 80}},
		{"left-half", Region{0, 0, 50, 80}},
		{"right-half", Region{50, 0, 100, 80}},
		{"center", Region{25, 20, 75, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NamedRegion(img, tt.name)
			if err != nil {
				t.Fatalf("NamedRegion failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := NamedRegion(img, "middle-ish"); err == nil {
		t.Error("NamedRegion should fail for unknown names")
	}
}

func TestAverageColor(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name   string
		region Region
		want   model.Rgb
	}{
		{"red quadrant", Region{0, 0, 50, 50}, mustRgb(t, 255, 0, 0)},
		{"single pixel", Region{75, 75, 76, 76}, model.White},
		{"inside blue", Region{10, 60, 40, 90}, mustRgb(t, 0, 0, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AverageColor(img, tt.region)
			if err != nil {
				t.Fatalf("AverageColor failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAverageColor_Mix(t *testing.T) {
	// Left half (200,100,0), right half (100,50,20): the mean is (150,75,10).
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if x < 20 {
				img.Set(x, y, color.RGBA{200, 100, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{100, 50, 20, 255})
			}
		}
	}

	got, err := AverageColor(img, Region{0, 0, 40, 20})
	if err != nil {
		t.Fatalf("AverageColor failed: %v", err)
	}
	near := func(a uint8, b int) bool { return int(a)-b <= 1 && b-int(a) <= 1 }
	if !near(got.R(), 150) || !near(got.G(), 75) || !near(got.B(), 10) {
		t.Errorf("got %v, want about (150,75,10)", got)
	}
}

func TestAverageColor_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{1, 2, 3, 255})

	tests := []struct {
		name   string
		region Region
	}{
		{"empty", Region{10, 10, 10, 20}},
		{"inverted", Region{20, 20, 10, 10}},
		{"outside", Region{40, 40, 60, 60}},
		{"negative", Region{-1, 0, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := AverageColor(img, tt.region); err == nil {
				t.Error("AverageColor should fail for invalid region")
			}
		})
	}
}

func TestPalette(t *testing.T) {
	// Create an image with mostly red, some green
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 80 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255}) // 80% red
			} else {
				img.Set(x, y, color.RGBA{0, 255, 0, 255}) // 20% green
			}
		}
	}

	swatches, err := Palette(img, 5, nil)
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if len(swatches) != 2 {
		t.Fatalf("expected 2 swatches, got %d", len(swatches))
	}

	// Colors are quantized to the high nibble: 255 -> 240.
	if want := mustRgb(t, 240, 0, 0); swatches[0].Color != want || swatches[0].Percentage != 80 {
		t.Errorf("first swatch: got %+v, want %v at 80%%", swatches[0], want)
	}
	if want := mustRgb(t, 0, 240, 0); swatches[1].Color != want || swatches[1].Percentage != 20 {
		t.Errorf("second swatch: got %+v, want %v at 20%%", swatches[1], want)
	}
}

func TestPalette_WithRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	swatches, err := Palette(img, 5, &Region{X1: 0, Y1: 0, X2: 50, Y2: 50})
	if err != nil {
		t.Fatalf("Palette with region failed: %v", err)
	}
	if len(swatches) != 1 || swatches[0].Percentage != 100 {
		t.Errorf("expected one swatch at 100%%, got %+v", swatches)
	}
}

func TestPalette_CountLimitsAndOrder(t *testing.T) {
	img := createPatternImage(100, 100)

	swatches, err := Palette(img, 3, nil)
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if len(swatches) != 3 {
		t.Fatalf("expected 3 swatches, got %d", len(swatches))
	}
	// Four equal quadrants tie at 25%, so packed RGB decides: blue, green, red.
	want := []model.Rgb{mustRgb(t, 0, 0, 240), mustRgb(t, 0, 240, 0), mustRgb(t, 240, 0, 0)}
	for i, s := range swatches {
		if s.Color != want[i] || s.Percentage != 25 {
			t.Errorf("swatch %d: got %+v, want %v at 25%%", i, s, want[i])
		}
	}
}

func TestPalette_InvalidArgs(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{128, 128, 128, 255})
	if _, err := Palette(img, 0, nil); err == nil {
		t.Error("Palette should reject count 0")
	}
	if _, err := Palette(img, 1, &Region{0, 0, 20, 20}); err == nil {
		t.Error("Palette should reject a region outside the image")
	}
}
