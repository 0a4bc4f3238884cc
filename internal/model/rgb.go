package model

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/ironsheep/colorpad-mcp/internal/numeric"
)

// Rgb is an 8-bit-per-channel RGB color.
//
// The canonical packed form (see Int) stores R in bits 16-23, G in 8-15 and
// B in 0-7; it backs hex rendering and serves as a hash key.
type Rgb struct {
	r, g, b uint8
}

var (
	// White is RGB(255, 255, 255).
	White = Rgb{255, 255, 255}

	// Black is RGB(0, 0, 0).
	Black = Rgb{}
)

// NewRgb validates r, g and b (each 0-255) and returns the color.
func NewRgb(r, g, b int) (Rgb, error) {
	if err := checkRgb(r, g, b); err != nil {
		return Rgb{}, err
	}
	return Rgb{uint8(r), uint8(g), uint8(b)}, nil
}

// RgbFromInt unpacks the low 24 bits of v. Higher bits are ignored.
func RgbFromInt(v int) Rgb {
	return Rgb{uint8(v >> 16 & 0xff), uint8(v >> 8 & 0xff), uint8(v & 0xff)}
}

// ParseRgb parses "R,G,B". Fractional tokens are rounded half-up.
func ParseRgb(s string) (Rgb, error) {
	v := numeric.ExtractInts(s)
	if len(v) != 3 {
		return Rgb{}, arityError(KindRgb, s, 3)
	}
	return NewRgb(v[0], v[1], v[2])
}

// RgbFromHex parses exactly six hex digits with an optional leading '#'.
// Both upper and lower case digits are accepted.
func RgbFromHex(s string) (Rgb, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return Rgb{}, &FormatError{Kind: KindRgb, Input: s, Reason: "want 6 hex digits"}
	}
	return parseHexDigits(s, digits)
}

// RgbFromHexEnhanced is a relaxed RgbFromHex. It additionally accepts the
// 3-digit CSS shorthand ("f00" is "ff0000") and any hex string of at most six
// digits, which is read as an integer ("ff" is RGB(0, 0, 255)).
func RgbFromHexEnhanced(s string) (Rgb, error) {
	digits := strings.TrimPrefix(s, "#")
	if digits == "" || len(digits) > 6 {
		return Rgb{}, &FormatError{Kind: KindRgb, Input: s, Reason: "want 1 to 6 hex digits"}
	}
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return parseHexDigits(s, digits)
}

// RgbFromName looks up a CSS/SVG 1.1 color keyword such as "teal" or
// "DarkSlateGray" (case-insensitive).
func RgbFromName(name string) (Rgb, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Rgb{}, &FormatError{Kind: KindRgb, Input: name, Reason: "unknown color name"}
	}
	return Rgb{c.R, c.G, c.B}, nil
}

func parseHexDigits(input, digits string) (Rgb, error) {
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Rgb{}, &FormatError{Kind: KindRgb, Input: input, Reason: "invalid hex digits"}
	}
	return RgbFromInt(int(v)), nil
}

func checkRgb(r, g, b int) error {
	return firstErr(
		checkInt(KindRgb, "r", r, 0, 255),
		checkInt(KindRgb, "g", g, 0, 255),
		checkInt(KindRgb, "b", b, 0, 255),
	)
}

// R returns the red channel.
func (c Rgb) R() uint8 { return c.r }

// G returns the green channel.
func (c Rgb) G() uint8 { return c.g }

// B returns the blue channel.
func (c Rgb) B() uint8 { return c.b }

// Int returns the packed 24-bit form 0xRRGGBB.
func (c Rgb) Int() int {
	return int(c.r)<<16 | int(c.g)<<8 | int(c.b)
}

// Hex renders the color as six hex digits without '#'.
func (c Rgb) Hex(upper bool) string {
	if upper {
		return fmt.Sprintf("%06X", c.Int())
	}
	return fmt.Sprintf("%06x", c.Int())
}

// RGBA implements image/color.Color; the color is fully opaque.
func (c Rgb) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r)
	r |= r << 8
	g = uint32(c.g)
	g |= g << 8
	b = uint32(c.b)
	b |= b << 8
	return r, g, b, 0xffff
}

// Kind returns KindRgb.
func (c Rgb) Kind() Kind { return KindRgb }

// Join renders the fields in canonical order separated by sep.
func (c Rgb) Join(sep string) string {
	return fmt.Sprintf("%d%s%d%s%d", c.r, sep, c.g, sep, c.b)
}

// String renders the value in its display form.
func (c Rgb) String() string {
	return "RGB: (" + c.Join(",") + ")"
}
