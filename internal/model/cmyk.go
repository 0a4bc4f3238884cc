package model

import (
	"fmt"

	"github.com/ironsheep/colorpad-mcp/internal/numeric"
)

// Cmyk is a color in the CMYK model with integer percentages (0-100).
type Cmyk struct {
	c, m, y, k uint8
}

// NewCmyk validates c, m, y and k (each 0-100).
func NewCmyk(c, m, y, k int) (Cmyk, error) {
	err := firstErr(
		checkInt(KindCmyk, "c", c, 0, 100),
		checkInt(KindCmyk, "m", m, 0, 100),
		checkInt(KindCmyk, "y", y, 0, 100),
		checkInt(KindCmyk, "k", k, 0, 100),
	)
	if err != nil {
		return Cmyk{}, err
	}
	return Cmyk{uint8(c), uint8(m), uint8(y), uint8(k)}, nil
}

// ParseCmyk parses "C,M,Y,K". Fractional tokens are rounded half-up.
func ParseCmyk(s string) (Cmyk, error) {
	v := numeric.ExtractInts(s)
	if len(v) != 4 {
		return Cmyk{}, arityError(KindCmyk, s, 4)
	}
	return NewCmyk(v[0], v[1], v[2], v[3])
}

// C returns the cyan percentage.
func (c Cmyk) C() uint8 { return c.c }

// M returns the magenta percentage.
func (c Cmyk) M() uint8 { return c.m }

// Y returns the yellow percentage.
func (c Cmyk) Y() uint8 { return c.y }

// K returns the key (black) percentage.
func (c Cmyk) K() uint8 { return c.k }

// Kind returns KindCmyk.
func (c Cmyk) Kind() Kind { return KindCmyk }

// Join renders the fields in canonical order separated by sep.
func (c Cmyk) Join(sep string) string {
	return fmt.Sprintf("%d%s%d%s%d%s%d", c.c, sep, c.m, sep, c.y, sep, c.k)
}

// String renders the value in its display form.
func (c Cmyk) String() string {
	return "CMYK: (" + c.Join(",") + ")"
}
