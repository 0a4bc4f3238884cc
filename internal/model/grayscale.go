package model

import (
	"strconv"

	"github.com/ironsheep/colorpad-mcp/internal/numeric"
)

// Grayscale is a single 8-bit intensity.
type Grayscale struct {
	v uint8
}

// NewGrayscale validates v (0-255).
func NewGrayscale(v int) (Grayscale, error) {
	if err := checkInt(KindGrayscale, "value", v, 0, 255); err != nil {
		return Grayscale{}, err
	}
	return Grayscale{uint8(v)}, nil
}

// ParseGrayscale parses a single number, rounding half-up.
func ParseGrayscale(s string) (Grayscale, error) {
	v := numeric.ExtractInts(s)
	if len(v) != 1 {
		return Grayscale{}, arityError(KindGrayscale, s, 1)
	}
	return NewGrayscale(v[0])
}

// Value returns the gray level.
func (g Grayscale) Value() uint8 { return g.v }

// Rgb replicates the intensity into all three channels.
func (g Grayscale) Rgb() Rgb {
	return Rgb{g.v, g.v, g.v}
}

// Kind returns KindGrayscale.
func (g Grayscale) Kind() Kind { return KindGrayscale }

// Join ignores sep: a grayscale value has a single field.
func (g Grayscale) Join(string) string {
	return strconv.Itoa(int(g.v))
}

// String renders the value in its display form.
func (g Grayscale) String() string {
	return "Grayscale: " + g.Join("")
}
