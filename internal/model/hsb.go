package model

import "github.com/ironsheep/colorpad-mcp/internal/numeric"

// Hsb is a color in the HSB (HSV) model.
//
// H is the hue in degrees (0-360), S the saturation and B the brightness
// (value), both in percent (0-100).
type Hsb struct {
	h, s, b float64
}

// NewHsb validates and returns an HSB color.
func NewHsb(h, s, b float64) (Hsb, error) {
	err := firstErr(
		checkFloat(KindHsb, "h", h, 0, 360),
		checkFloat(KindHsb, "s", s, 0, 100),
		checkFloat(KindHsb, "b", b, 0, 100),
	)
	if err != nil {
		return Hsb{}, err
	}
	return Hsb{h, s, b}, nil
}

// ParseHsb parses "H,S,B".
func ParseHsb(s string) (Hsb, error) {
	v := numeric.ExtractFloats(s)
	if len(v) != 3 {
		return Hsb{}, arityError(KindHsb, s, 3)
	}
	return NewHsb(v[0], v[1], v[2])
}

// H returns the hue in degrees.
func (c Hsb) H() float64 { return c.h }

// S returns the saturation percentage.
func (c Hsb) S() float64 { return c.s }

// B returns the brightness percentage.
func (c Hsb) B() float64 { return c.b }

// Equal compares field by field within numeric.Tolerance.
func (c Hsb) Equal(o Hsb) bool {
	return numeric.NearlyEqual(c.h, o.h) && numeric.NearlyEqual(c.s, o.s) && numeric.NearlyEqual(c.b, o.b)
}

// Kind returns KindHsb.
func (c Hsb) Kind() Kind { return KindHsb }

// Join renders each field with at most two decimals.
func (c Hsb) Join(sep string) string {
	return joinFloats(sep, 2, c.h, c.s, c.b)
}

// String renders the value in its display form.
func (c Hsb) String() string {
	return "HSB: (" + c.Join(",") + ")"
}
