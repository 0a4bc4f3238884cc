package bridge

import (
	"fmt"

	"github.com/ironsheep/colorpad-mcp/internal/convert"
	"github.com/ironsheep/colorpad-mcp/internal/model"
)

// Eager is a Bridge whose models are all computed at construction.
// It is immutable and safe for concurrent use.
type Eager struct {
	rgb   model.Rgb
	gray  model.Grayscale
	hsb   model.Hsb
	hsl   model.Hsl
	cmyk  model.Cmyk
	ycrcb model.YCrCb
	xyz   model.Xyz
	lab   model.Lab
}

var _ Bridge = (*Eager)(nil)

// NewEager builds an eager bridge from a pivot of any kind. A nil registry
// means convert.Default().
func NewEager(reg *convert.Registry, pivot model.Model) (*Eager, error) {
	switch p := pivot.(type) {
	case model.Rgb:
		return EagerFromRgb(reg, p)
	case model.Grayscale:
		return EagerFromGrayscale(reg, p)
	case model.Hsb:
		return EagerFromHsb(reg, p)
	case model.Hsl:
		return EagerFromHsl(reg, p)
	case model.Cmyk:
		return EagerFromCmyk(reg, p)
	case model.YCrCb:
		return EagerFromYCrCb(reg, p)
	case model.Xyz:
		return EagerFromXyz(reg, p)
	case model.Lab:
		return EagerFromLab(reg, p)
	default:
		return nil, fmt.Errorf("bridge: unsupported pivot %T", pivot)
	}
}

// EagerFromRgb derives every other model from c.
func EagerFromRgb(reg *convert.Registry, c model.Rgb) (*Eager, error) {
	return deriveEager(registry(reg), c, model.KindRgb)
}

// EagerFromGrayscale pivots on the gray value replicated into RGB.
func EagerFromGrayscale(reg *convert.Registry, c model.Grayscale) (*Eager, error) {
	return eagerVia(reg, c, func(*Eager) {})
}

// EagerFromHsb keeps c as given and derives the rest from its RGB.
func EagerFromHsb(reg *convert.Registry, c model.Hsb) (*Eager, error) {
	return eagerVia(reg, c, func(b *Eager) { b.hsb = c })
}

// EagerFromHsl keeps c as given and derives the rest from its RGB.
func EagerFromHsl(reg *convert.Registry, c model.Hsl) (*Eager, error) {
	return eagerVia(reg, c, func(b *Eager) { b.hsl = c })
}

// EagerFromCmyk keeps c as given and derives the rest from its RGB.
func EagerFromCmyk(reg *convert.Registry, c model.Cmyk) (*Eager, error) {
	return eagerVia(reg, c, func(b *Eager) { b.cmyk = c })
}

// EagerFromYCrCb keeps c as given and derives the rest from its RGB.
func EagerFromYCrCb(reg *convert.Registry, c model.YCrCb) (*Eager, error) {
	return eagerVia(reg, c, func(b *Eager) { b.ycrcb = c })
}

// EagerFromXyz keeps c as given and derives Lab from it rather than from
// the RGB pivot.
func EagerFromXyz(reg *convert.Registry, c model.Xyz) (*Eager, error) {
	reg = registry(reg)
	rgb, err := toRgb(reg, c)
	if err != nil {
		return nil, err
	}
	b, err := deriveEager(reg, rgb, model.KindXyz)
	if err != nil {
		return nil, err
	}
	b.xyz = c
	if b.lab, err = convert.To[model.Lab](reg, c); err != nil {
		return nil, err
	}
	return b, nil
}

// EagerFromLab resolves RGB through XYZ and keeps both the given Lab and the
// intermediate XYZ value.
func EagerFromLab(reg *convert.Registry, c model.Lab) (*Eager, error) {
	reg = registry(reg)
	xyz, err := convert.To[model.Xyz](reg, c)
	if err != nil {
		return nil, err
	}
	rgb, err := toRgb(reg, xyz)
	if err != nil {
		return nil, err
	}
	b, err := deriveEager(reg, rgb, model.KindXyz)
	if err != nil {
		return nil, err
	}
	b.xyz, b.lab = xyz, c
	return b, nil
}

// EagerFrom copies every model out of src.
func EagerFrom(src Bridge) (*Eager, error) {
	if e, ok := src.(*Eager); ok {
		return e.Clone(), nil
	}
	b := &Eager{rgb: src.Rgb(), gray: src.Grayscale()}
	var err error
	if b.hsb, err = src.Hsb(); err != nil {
		return nil, err
	}
	if b.hsl, err = src.Hsl(); err != nil {
		return nil, err
	}
	if b.cmyk, err = src.Cmyk(); err != nil {
		return nil, err
	}
	if b.ycrcb, err = src.YCrCb(); err != nil {
		return nil, err
	}
	if b.xyz, err = src.Xyz(); err != nil {
		return nil, err
	}
	if b.lab, err = src.Lab(); err != nil {
		return nil, err
	}
	return b, nil
}

// eagerVia converts pivot to RGB, derives every model except pivot's own,
// then lets set store the pivot itself.
func eagerVia(reg *convert.Registry, pivot model.Model, set func(*Eager)) (*Eager, error) {
	reg = registry(reg)
	rgb, err := toRgb(reg, pivot)
	if err != nil {
		return nil, err
	}
	b, err := deriveEager(reg, rgb, pivot.Kind())
	if err != nil {
		return nil, err
	}
	set(b)
	return b, nil
}

// deriveEager computes grayscale and every model other than avoid from rgb.
// Avoiding XYZ also skips Lab, which the caller then fills in.
func deriveEager(reg *convert.Registry, rgb model.Rgb, avoid model.Kind) (*Eager, error) {
	b := &Eager{rgb: rgb}
	var err error
	if b.gray, err = convert.To[model.Grayscale](reg, rgb); err != nil {
		return nil, err
	}
	if avoid != model.KindHsb {
		if b.hsb, err = convert.To[model.Hsb](reg, rgb); err != nil {
			return nil, err
		}
	}
	if avoid != model.KindHsl {
		if b.hsl, err = convert.To[model.Hsl](reg, rgb); err != nil {
			return nil, err
		}
	}
	if avoid != model.KindCmyk {
		if b.cmyk, err = convert.To[model.Cmyk](reg, rgb); err != nil {
			return nil, err
		}
	}
	if avoid != model.KindYCrCb {
		if b.ycrcb, err = convert.To[model.YCrCb](reg, rgb); err != nil {
			return nil, err
		}
	}
	if avoid != model.KindXyz && avoid != model.KindLab {
		if b.xyz, err = convert.To[model.Xyz](reg, rgb); err != nil {
			return nil, err
		}
		if b.lab, err = convert.To[model.Lab](reg, b.xyz); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Clone returns a copy of b.
func (b *Eager) Clone() *Eager {
	c := *b
	return &c
}

// Rgb returns the pivot color.
func (b *Eager) Rgb() model.Rgb { return b.rgb }

// Grayscale returns the gray level of the pivot.
func (b *Eager) Grayscale() model.Grayscale { return b.gray }

// Hsb returns the derived HSB value.
func (b *Eager) Hsb() (model.Hsb, error) { return b.hsb, nil }

// Hsl returns the derived HSL value.
func (b *Eager) Hsl() (model.Hsl, error) { return b.hsl, nil }

// Cmyk returns the derived CMYK value.
func (b *Eager) Cmyk() (model.Cmyk, error) { return b.cmyk, nil }

// YCrCb returns the derived YCrCb value.
func (b *Eager) YCrCb() (model.YCrCb, error) { return b.ycrcb, nil }

// Xyz returns the derived CIE-XYZ value.
func (b *Eager) Xyz() (model.Xyz, error) { return b.xyz, nil }

// Lab returns the derived CIE-Lab value.
func (b *Eager) Lab() (model.Lab, error) { return b.lab, nil }

// Hex renders the pivot as six hex digits.
func (b *Eager) Hex(upper bool) string { return b.rgb.Hex(upper) }
