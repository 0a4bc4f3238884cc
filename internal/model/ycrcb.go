package model

import (
	"fmt"

	"github.com/ironsheep/colorpad-mcp/internal/numeric"
)

// YCrCb is a luma/chroma color with 8-bit components. Cr and Cb carry an
// offset of 128, so 128 means "no chroma".
type YCrCb struct {
	y, cr, cb uint8
}

// NewYCrCb validates y, cr and cb (each 0-255).
func NewYCrCb(y, cr, cb int) (YCrCb, error) {
	err := firstErr(
		checkInt(KindYCrCb, "y", y, 0, 255),
		checkInt(KindYCrCb, "cr", cr, 0, 255),
		checkInt(KindYCrCb, "cb", cb, 0, 255),
	)
	if err != nil {
		return YCrCb{}, err
	}
	return YCrCb{uint8(y), uint8(cr), uint8(cb)}, nil
}

// ParseYCrCb parses "Y,Cr,Cb". Fractional tokens are rounded half-up.
func ParseYCrCb(s string) (YCrCb, error) {
	v := numeric.ExtractInts(s)
	if len(v) != 3 {
		return YCrCb{}, arityError(KindYCrCb, s, 3)
	}
	return NewYCrCb(v[0], v[1], v[2])
}

// Y returns the luma.
func (c YCrCb) Y() uint8 { return c.y }

// Cr returns the red-difference chroma.
func (c YCrCb) Cr() uint8 { return c.cr }

// Cb returns the blue-difference chroma.
func (c YCrCb) Cb() uint8 { return c.cb }

// Kind returns KindYCrCb.
func (c YCrCb) Kind() Kind { return KindYCrCb }

// Join renders the fields in canonical order separated by sep.
func (c YCrCb) Join(sep string) string {
	return fmt.Sprintf("%d%s%d%s%d", c.y, sep, c.cr, sep, c.cb)
}

// String renders the value in its display form.
func (c YCrCb) String() string {
	return "YCrCb: (" + c.Join(",") + ")"
}
