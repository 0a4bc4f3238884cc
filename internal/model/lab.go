package model

import (
	"strings"

	"github.com/ironsheep/colorpad-mcp/internal/numeric"
)

// Lab is a CIE-Lab color: L in 0-100, a and b in -128..127.
type Lab struct {
	l, a, b float64
}

// NewLab validates and returns a CIE-Lab color.
func NewLab(l, a, b float64) (Lab, error) {
	err := firstErr(
		checkFloat(KindLab, "l", l, 0, 100),
		checkFloat(KindLab, "a", a, -128, 127),
		checkFloat(KindLab, "b", b, -128, 127),
	)
	if err != nil {
		return Lab{}, err
	}
	return Lab{l, a, b}, nil
}

// ParseLab parses "L,a,b".
func ParseLab(s string) (Lab, error) {
	v := numeric.ExtractFloats(s)
	if len(v) != 3 {
		return Lab{}, arityError(KindLab, s, 3)
	}
	return NewLab(v[0], v[1], v[2])
}

// L returns the lightness.
func (c Lab) L() float64 { return c.l }

// A returns the green-red axis.
func (c Lab) A() float64 { return c.a }

// B returns the blue-yellow axis.
func (c Lab) B() float64 { return c.b }

// Equal compares field by field within numeric.Tolerance.
func (c Lab) Equal(o Lab) bool {
	return numeric.NearlyEqual(c.l, o.l) && numeric.NearlyEqual(c.a, o.a) && numeric.NearlyEqual(c.b, o.b)
}

// Kind returns KindLab.
func (c Lab) Kind() Kind { return KindLab }

// Join renders the fields in canonical order separated by sep.
func (c Lab) Join(sep string) string {
	return joinFloats(sep, 2, c.l, c.a, c.b)
}

// String renders the value in its display form.
func (c Lab) String() string {
	return "CIE-Lab: (" + c.Join(",") + ")"
}

func joinFloats(sep string, digits int, values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = numeric.FormatFloat(v, digits)
	}
	return strings.Join(parts, sep)
}
