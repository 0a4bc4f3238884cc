package model

import "github.com/ironsheep/colorpad-mcp/internal/numeric"

// Hsl is a color in the HSL model: hue in degrees (0-360), saturation and
// lightness in percent (0-100).
type Hsl struct {
	h, s, l float64
}

// NewHsl validates and returns an HSL color.
func NewHsl(h, s, l float64) (Hsl, error) {
	err := firstErr(
		checkFloat(KindHsl, "h", h, 0, 360),
		checkFloat(KindHsl, "s", s, 0, 100),
		checkFloat(KindHsl, "l", l, 0, 100),
	)
	if err != nil {
		return Hsl{}, err
	}
	return Hsl{h, s, l}, nil
}

// ParseHsl parses "H,S,L".
func ParseHsl(s string) (Hsl, error) {
	v := numeric.ExtractFloats(s)
	if len(v) != 3 {
		return Hsl{}, arityError(KindHsl, s, 3)
	}
	return NewHsl(v[0], v[1], v[2])
}

// H returns the hue in degrees.
func (c Hsl) H() float64 { return c.h }

// S returns the saturation percentage.
func (c Hsl) S() float64 { return c.s }

// L returns the lightness percentage.
func (c Hsl) L() float64 { return c.l }

// Equal compares field by field within numeric.Tolerance.
func (c Hsl) Equal(o Hsl) bool {
	return numeric.NearlyEqual(c.h, o.h) && numeric.NearlyEqual(c.s, o.s) && numeric.NearlyEqual(c.l, o.l)
}

// Kind returns KindHsl.
func (c Hsl) Kind() Kind { return KindHsl }

// Join renders the fields in canonical order separated by sep.
func (c Hsl) Join(sep string) string {
	return joinFloats(sep, 2, c.h, c.s, c.l)
}

// String renders the value in its display form.
func (c Hsl) String() string {
	return "HSL: (" + c.Join(",") + ")"
}
