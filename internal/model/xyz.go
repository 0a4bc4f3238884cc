package model

import "github.com/ironsheep/colorpad-mcp/internal/numeric"

// Upper bounds of the CIE-XYZ values reachable under illuminant D65 with the
// 2° observer. The lower bound of every component is 0.
const (
	D65MaxX = 0.95047
	D65MaxY = 1.0
	D65MaxZ = 1.08883
)

// Xyz holds CIE-XYZ tristimulus values. Construction is unbounded; use
// InD65Range or ParseXyzD65 when the D65 subrange matters.
type Xyz struct {
	x, y, z float64
}

// NewXyz returns an XYZ value. It never fails.
func NewXyz(x, y, z float64) Xyz {
	return Xyz{x, y, z}
}

// ParseXyz parses "X,Y,Z" without range limits.
func ParseXyz(s string) (Xyz, error) {
	v := numeric.ExtractFloats(s)
	if len(v) != 3 {
		return Xyz{}, arityError(KindXyz, s, 3)
	}
	return Xyz{v[0], v[1], v[2]}, nil
}

// ParseXyzD65 is ParseXyz followed by a D65 range check.
func ParseXyzD65(s string) (Xyz, error) {
	c, err := ParseXyz(s)
	if err != nil {
		return Xyz{}, err
	}
	err = firstErr(
		checkFloat(KindXyz, "x", c.x, 0, D65MaxX),
		checkFloat(KindXyz, "y", c.y, 0, D65MaxY),
		checkFloat(KindXyz, "z", c.z, 0, D65MaxZ),
	)
	if err != nil {
		return Xyz{}, err
	}
	return c, nil
}

// X returns the X tristimulus value.
func (c Xyz) X() float64 { return c.x }

// Y returns the luminance.
func (c Xyz) Y() float64 { return c.y }

// Z returns the Z tristimulus value.
func (c Xyz) Z() float64 { return c.z }

// InD65Range reports whether X, Y and Z lie within the D65 subrange.
func (c Xyz) InD65Range() bool {
	return c.x >= 0 && c.x <= D65MaxX && c.y >= 0 && c.y <= D65MaxY && c.z >= 0 && c.z <= D65MaxZ
}

// Equal compares field by field within numeric.Tolerance.
func (c Xyz) Equal(o Xyz) bool {
	return numeric.NearlyEqual(c.x, o.x) && numeric.NearlyEqual(c.y, o.y) && numeric.NearlyEqual(c.z, o.z)
}

// Kind returns KindXyz.
func (c Xyz) Kind() Kind { return KindXyz }

// Join renders five decimals per field, enough to survive a round trip
// through Lab.
func (c Xyz) Join(sep string) string {
	return joinFloats(sep, 5, c.x, c.y, c.z)
}

// String renders the value in its display form.
func (c Xyz) String() string {
	return "CIE-XYZ: (" + c.Join(",") + ")"
}
